// Defines the Process struct that models a unit of CPU work in the simulation.
// Tracks arrival, service requirement, remaining time and the execution slices
// credited to it by dispatches.

package sim

import "fmt"

// ProcessState represents the lifecycle state of a process.
type ProcessState string

const (
	StateNew        ProcessState = "new"
	StateReady      ProcessState = "ready"
	StateRunning    ProcessState = "running"
	StateWaiting    ProcessState = "waiting"
	StateTerminated ProcessState = "terminated"
)

// ExecSlice is one contiguous interval of CPU time credited to a process.
type ExecSlice struct {
	Start int64
	End   int64
}

// Duration returns the length of the slice in ticks.
func (s ExecSlice) Duration() int64 {
	return s.End - s.Start
}

type Process struct {
	ID          int   // Unique identifier, stable for the lifetime of the simulation
	ArrivalTime int64 // Tick at which the process becomes eligible to run
	ServiceTime int64 // Total CPU ticks required (immutable input)

	RemainingTime int64        // CPU ticks still owed; 0 at natural completion
	State         ProcessState // new, ready, running, waiting, terminated
	Slices        []ExecSlice  // Execution history, in dispatch order
}

// NewProcess creates a process in the new state owing its full service time.
func NewProcess(id int, arrival, service int64) *Process {
	return &Process{
		ID:            id,
		ArrivalTime:   arrival,
		ServiceTime:   service,
		RemainingTime: service,
		State:         StateNew,
	}
}

// RunFor executes the process for up to duration ticks starting at start.
// It never runs past RemainingTime and returns the ticks actually consumed.
func (p *Process) RunFor(duration, start int64) int64 {
	elapsed := min(max(duration, 0), p.RemainingTime)
	if elapsed <= 0 {
		return 0
	}
	p.RemainingTime -= elapsed
	p.Slices = append(p.Slices, ExecSlice{Start: start, End: start + elapsed})
	return elapsed
}

// CompletionTime returns the end of the last execution slice, or -1 if the
// process has not terminated.
func (p *Process) CompletionTime() int64 {
	if p.State != StateTerminated || len(p.Slices) == 0 {
		return -1
	}
	return p.Slices[len(p.Slices)-1].End
}

// TurnaroundTime is completion minus arrival; -1 until terminated.
func (p *Process) TurnaroundTime() int64 {
	done := p.CompletionTime()
	if done < 0 {
		return -1
	}
	return done - p.ArrivalTime
}

// WaitingTime is turnaround minus service; -1 until terminated.
func (p *Process) WaitingTime() int64 {
	ta := p.TurnaroundTime()
	if ta < 0 {
		return -1
	}
	return ta - p.ServiceTime
}

// CreditedTime sums all execution slices.
func (p *Process) CreditedTime() int64 {
	var total int64
	for _, s := range p.Slices {
		total += s.Duration()
	}
	return total
}

func (p *Process) String() string {
	return fmt.Sprintf("P%d(%s, remaining=%d)", p.ID, p.State, p.RemainingTime)
}
