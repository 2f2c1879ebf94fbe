// sim/simulator.go
package sim

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/schedsim/schedsim/sim/trace"
)

// Simulator is the core object that holds simulation time, the process queue
// and the event loop. It drives the active Policy: every executed event is a
// scheduling point at which the policy selects and dispatches a process.
type Simulator struct {
	Clock   int64
	Horizon int64
	// Events holds all pending events: arrivals and dispatch outcomes.
	Events *EventHeap
	// Procs is the engine-owned queue that policies select from.
	Procs  *ProcessQueue
	Policy Policy
	// ContextSwitch ticks are charged whenever the CPU changes process.
	ContextSwitch int64
	Trace         *trace.SimulationTrace
	// Timeline lists dispatch outcomes in the order they were produced.
	Timeline  []Event
	StepCount int

	inputOrder []*Process
	lastRunID  int
	hasRun     bool
}

// Result is the outcome of a finished simulation.
type Result struct {
	Policy    string
	EndTime   int64
	Timeline  []Event
	Processes []*Process // in input order
	Trace     *trace.SimulationTrace
}

// NewSimulator creates a simulator over procs and seeds one arrival event per
// process. The simulator takes ownership of procs; their state is mutated by
// the run. Misconfiguration (bad config, nil policy, duplicate ids,
// non-positive service times) is reported as an error.
func NewSimulator(cfg SimConfig, policy Policy, procs []*Process) (*Simulator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid simulator config: %w", err)
	}
	if policy == nil {
		return nil, fmt.Errorf("policy must not be nil")
	}
	seen := make(map[int]bool, len(procs))
	for _, p := range procs {
		if p == nil {
			return nil, fmt.Errorf("process list contains nil")
		}
		if seen[p.ID] {
			return nil, fmt.Errorf("duplicate process id %d", p.ID)
		}
		seen[p.ID] = true
		if p.ServiceTime <= 0 {
			return nil, fmt.Errorf("process %d: service time must be positive, got %d", p.ID, p.ServiceTime)
		}
		if p.ArrivalTime < 0 {
			return nil, fmt.Errorf("process %d: arrival time must be non-negative, got %d", p.ID, p.ArrivalTime)
		}
	}

	level := cfg.TraceLevel
	if level == "" {
		level = trace.TraceLevelNone
	}
	s := &Simulator{
		Clock:         0,
		Horizon:       cfg.Horizon,
		Events:        NewEventHeap(),
		Procs:         NewProcessQueue(procs...),
		Policy:        policy,
		ContextSwitch: cfg.ContextSwitch,
		Trace:         trace.NewSimulationTrace(trace.TraceConfig{Level: level}),
		Timeline:      make([]Event, 0, len(procs)),
		inputOrder:    append([]*Process(nil), procs...),
	}
	for _, p := range procs {
		s.Schedule(NewEvent(p.ID, EventArrives, p.ArrivalTime))
	}
	return s, nil
}

// Now implements Environment.
func (sim *Simulator) Now() int64 { return sim.Clock }

// Processes implements Environment.
func (sim *Simulator) Processes() *ProcessQueue { return sim.Procs }

// NextEventTime implements Environment.
func (sim *Simulator) NextEventTime() int64 { return sim.Events.NextTimeAfter(sim.Clock) }

// Schedule pushes an event into the simulator's event heap.
func (sim *Simulator) Schedule(ev Event) {
	sim.Events.Schedule(ev)
}

// Step executes the next event. It returns false when no events remain.
// Each call is atomic with respect to the clock and the process queue, so a
// driver may interleave Step calls with inspection of the simulator.
func (sim *Simulator) Step() bool {
	ev, ok := sim.Events.PopNext()
	if !ok {
		return false
	}
	sim.StepCount++
	// the CPU may still be busy past the event's time; never move the clock back
	if ev.Timestamp() > sim.Clock {
		sim.Clock = ev.Timestamp()
	}
	logrus.Debugf("[tick %07d] Executing %v", sim.Clock, ev)
	sim.admitArrivals()

	p := sim.Policy.Select(ev, sim)
	if p == nil {
		logrus.Debugf("[tick %07d] CPU idle after %v", sim.Clock, ev)
		if sim.Trace.Config.Level.Enabled() {
			sim.Trace.RecordIdle(trace.IdleRecord{Clock: sim.Clock, Trigger: ev.String()})
		}
		return true
	}

	switched := sim.hasRun && sim.lastRunID != p.ID
	if switched && sim.ContextSwitch > 0 {
		sim.Clock += sim.ContextSwitch
		// processes that arrived during the switch compete for this dispatch
		sim.admitArrivals()
		if next := sim.Policy.Select(ev, sim); next != nil {
			p = next
		}
	}
	start := sim.Clock
	before := p.RemainingTime
	out := sim.Policy.Dispatch(p, sim)
	sim.lastRunID, sim.hasRun = p.ID, true

	sim.Clock = out.Timestamp()
	sim.Timeline = append(sim.Timeline, out)
	sim.Schedule(out)
	logrus.Debugf("[tick %07d] %s ran P%d for %d ticks -> %v", sim.Clock, sim.Policy.Name(), p.ID, before-p.RemainingTime, out)

	if sim.Trace.Config.Level.Enabled() {
		sim.Trace.RecordDispatch(trace.DispatchRecord{
			Clock:     start,
			ProcessID: p.ID,
			Policy:    sim.Policy.Name(),
			Ran:       before - p.RemainingTime,
			Outcome:   string(out.Type()),
			Remaining: p.RemainingTime,
			Switched:  switched,
		})
	}
	return true
}

// Run steps until no events remain or the clock passes the horizon.
func (sim *Simulator) Run() *Result {
	logrus.Infof("Starting %s simulation with %d processes, horizon=%d ticks", sim.Policy.Name(), sim.Procs.Len(), sim.Horizon)
	for sim.Step() {
		if sim.Clock > sim.Horizon {
			if sim.Procs.Pending() {
				logrus.Warnf("[tick %07d] Horizon %d reached with unfinished processes", sim.Clock, sim.Horizon)
			}
			break
		}
	}
	logrus.Infof("[tick %07d] Simulation ended after %d events", sim.Clock, sim.StepCount)
	return sim.Result()
}

// Result snapshots the simulator state.
func (sim *Simulator) Result() *Result {
	return &Result{
		Policy:    sim.Policy.Name(),
		EndTime:   min(sim.Clock, sim.Horizon),
		Timeline:  sim.Timeline,
		Processes: sim.inputOrder,
		Trace:     sim.Trace,
	}
}

// admitArrivals moves every new process that has arrived by now to ready.
func (sim *Simulator) admitArrivals() {
	for _, p := range sim.Procs.Items() {
		if p.State == StateNew && p.ArrivalTime <= sim.Clock {
			p.State = StateReady
		}
	}
}
