package sim

import "fmt"

// RR gives the process named by the triggering event one quantum, then sends
// it to the back of the queue.
type RR struct {
	Quantum int64 // maximum ticks per dispatch, > 0
}

func (r *RR) Name() string { return PolicyRR }

// Select moves the event's process to the tail of the queue and returns it.
// Panics if the event names a process the engine does not know: that is an
// inconsistency between the event stream and the queue, not an idle CPU.
// A known process that is not ready (e.g. already terminated) yields nil.
func (r *RR) Select(last Event, env Environment) *Process {
	procs := env.Processes()
	p := procs.Find(last.ProcessID())
	if p == nil {
		panic(fmt.Sprintf("RR.Select: event %v names unknown process %d", last, last.ProcessID()))
	}
	if p.State != StateReady {
		return nil
	}
	return procs.MoveToTail(p.ID)
}

func (r *RR) Dispatch(p *Process, env Environment) Event {
	return runSlice(p, env, r.Quantum, func(remaining int64) bool { return remaining == 0 })
}

// SRTF runs the ready process with the least remaining time until it finishes
// or the next scheduled event, whichever comes first.
type SRTF struct{}

func (s *SRTF) Name() string { return PolicySRTF }

// Select re-ranks the queue itself by remaining time so the shortest
// remaining process stays at the front between selections.
func (s *SRTF) Select(_ Event, env Environment) *Process {
	procs := env.Processes()
	procs.Rerank(func(a, b *Process) bool {
		return a.RemainingTime < b.RemainingTime
	})
	return procs.FirstReady()
}

// Dispatch bounds the slice by the next event so that an arrival can preempt.
// Termination uses remaining <= 0.
func (s *SRTF) Dispatch(p *Process, env Environment) Event {
	until := env.NextEventTime()
	duration := p.RemainingTime
	if until-env.Now() < duration {
		duration = until - env.Now()
	}
	return runSlice(p, env, duration, func(remaining int64) bool { return remaining <= 0 })
}
