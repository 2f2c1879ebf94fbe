package sim

import "math"

// stubEnv is a fixed Environment for exercising policies without an engine.
type stubEnv struct {
	now   int64
	procs *ProcessQueue
	next  int64
}

func newStubEnv(now int64, procs ...*Process) *stubEnv {
	return &stubEnv{now: now, procs: NewProcessQueue(procs...), next: math.MaxInt64}
}

func (e *stubEnv) Now() int64               { return e.now }
func (e *stubEnv) Processes() *ProcessQueue { return e.procs }
func (e *stubEnv) NextEventTime() int64     { return e.next }

// readyProcess creates a process already admitted to the ready state.
func readyProcess(id int, arrival, service int64) *Process {
	p := NewProcess(id, arrival, service)
	p.State = StateReady
	return p
}

// mustSimulator builds a simulator or panics; for tests with known-good input.
func mustSimulator(cfg SimConfig, policy Policy, procs []*Process) *Simulator {
	s, err := NewSimulator(cfg, policy, procs)
	if err != nil {
		panic(err)
	}
	return s
}

func defaultTestConfig() SimConfig {
	return NewSimConfig(math.MaxInt64, 0, "dispatches")
}

func mustPolicy(name string, quantum int64) Policy {
	p, err := NewPolicy(NewPolicyConfig(name, quantum))
	if err != nil {
		panic(err)
	}
	return p
}
