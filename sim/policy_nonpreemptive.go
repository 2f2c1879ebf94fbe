package sim

// FCFS runs ready processes in queue order, each to completion.
type FCFS struct{}

func (f *FCFS) Name() string { return PolicyFCFS }

// Select returns the first ready process in queue order. No sorting: insertion
// order is the service order.
func (f *FCFS) Select(_ Event, env Environment) *Process {
	return env.Processes().FirstReady()
}

func (f *FCFS) Dispatch(p *Process, env Environment) Event {
	return runToCompletion(p, env)
}

// SJF runs the ready process with the smallest service time to completion.
// Ties keep queue order. Warning: SJF can starve long processes under load.
type SJF struct{}

func (s *SJF) Name() string { return PolicySJF }

// Select picks from a sorted view; the queue order itself is left untouched.
func (s *SJF) Select(_ Event, env Environment) *Process {
	view := env.Processes().SortedView(func(a, b *Process) bool {
		return a.ServiceTime < b.ServiceTime
	})
	return firstReady(view)
}

func (s *SJF) Dispatch(p *Process, env Environment) Event {
	return runToCompletion(p, env)
}
