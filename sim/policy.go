package sim

import "fmt"

// Environment is the engine state a Policy may consult while selecting and
// dispatching. The Simulator implements it.
type Environment interface {
	// Now returns the current simulated clock (in ticks).
	Now() int64
	// Processes returns the engine-owned process queue.
	Processes() *ProcessQueue
	// NextEventTime returns the time of the next queued event strictly after
	// Now, or math.MaxInt64 when nothing else is scheduled.
	NextEventTime() int64
}

// Policy decides which process runs next and for how long.
//
// Select must not change process state or the clock; it may reorder the
// queue through ProcessQueue.MoveToTail or ProcessQueue.Rerank. It returns nil
// when no process is ready, which the engine treats as an idle CPU.
//
// Dispatch is the only place process state and remaining time change. It
// marks the process running, executes it for the policy's duration, moves it
// to terminated or back to ready, and returns exactly one Event describing
// the outcome.
type Policy interface {
	Name() string
	Select(last Event, env Environment) *Process
	Dispatch(p *Process, env Environment) Event
}

// Policy names accepted by NewPolicy.
const (
	PolicyFCFS = "fcfs"
	PolicySJF  = "sjf"
	PolicyRR   = "rr"
	PolicySRTF = "srtf"
)

// ValidPolicies is the set of recognized policy names.
// Shared by PolicyConfig.Validate() and NewPolicy() to avoid duplication.
var ValidPolicies = map[string]bool{PolicyFCFS: true, PolicySJF: true, PolicyRR: true, PolicySRTF: true}

// PolicyNames lists the policies in the order the compare command runs them.
var PolicyNames = []string{PolicyFCFS, PolicySJF, PolicyRR, PolicySRTF}

// IsValidPolicy returns true if name is a recognized policy.
func IsValidPolicy(name string) bool {
	return ValidPolicies[name]
}

// NewPolicy creates a Policy from its configuration.
// Misconfiguration (unknown name, non-positive RR quantum) is reported here so
// that dispatch can never loop on a zero-length slice.
func NewPolicy(cfg PolicyConfig) (Policy, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	switch cfg.Name {
	case PolicyFCFS:
		return &FCFS{}, nil
	case PolicySJF:
		return &SJF{}, nil
	case PolicyRR:
		return &RR{Quantum: cfg.Quantum}, nil
	case PolicySRTF:
		return &SRTF{}, nil
	default:
		return nil, fmt.Errorf("unhandled policy %q", cfg.Name)
	}
}

// runToCompletion is the non-preemptive dispatch shared by FCFS and SJF.
func runToCompletion(p *Process, env Environment) Event {
	p.State = StateRunning
	now := env.Now()
	done := now + p.RunFor(p.ServiceTime, now)
	p.State = StateTerminated
	return NewEvent(p.ID, EventCPUDone, done)
}

// runSlice executes p for at most duration ticks and reports the outcome.
// finished decides termination from the remaining time after the slice.
func runSlice(p *Process, env Environment, duration int64, finished func(remaining int64) bool) Event {
	p.State = StateRunning
	now := env.Now()
	end := now + p.RunFor(duration, now)
	if finished(p.RemainingTime) {
		p.State = StateTerminated
		return NewEvent(p.ID, EventCPUDone, end)
	}
	p.State = StateReady
	return NewEvent(p.ID, EventCPURequest, end)
}
