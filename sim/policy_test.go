package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPolicy_ValidNames(t *testing.T) {
	tests := []struct {
		name    string
		quantum int64
		want    Policy
	}{
		{"fcfs", 0, &FCFS{}},
		{"sjf", 0, &SJF{}},
		{"rr", 4, &RR{Quantum: 4}},
		{"srtf", 0, &SRTF{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewPolicy(NewPolicyConfig(tt.name, tt.quantum))
			require.NoError(t, err)
			assert.Equal(t, tt.want, p)
			assert.Equal(t, tt.name, p.Name())
		})
	}
}

func TestNewPolicy_Misconfiguration_Rejected(t *testing.T) {
	tests := []struct {
		name string
		cfg  PolicyConfig
	}{
		{"unknown name", NewPolicyConfig("lottery", 0)},
		{"empty name", NewPolicyConfig("", 0)},
		{"rr zero quantum", NewPolicyConfig("rr", 0)},
		{"rr negative quantum", NewPolicyConfig("rr", -3)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewPolicy(tt.cfg)
			assert.Error(t, err)
		})
	}
}

func TestFCFS_Select_FirstReadyInQueueOrder(t *testing.T) {
	// GIVEN [P0 terminated, P1 ready(9), P2 ready(1)]
	done := NewProcess(0, 0, 3)
	done.State = StateTerminated
	env := newStubEnv(0, done, readyProcess(1, 0, 9), readyProcess(2, 0, 1))

	// WHEN FCFS selects
	got := (&FCFS{}).Select(Event{}, env)

	// THEN queue order wins over service time
	assert.Equal(t, 1, got.ID)
}

func TestFCFS_Dispatch_RunsToCompletion(t *testing.T) {
	// GIVEN a ready process with service 5 at tick 10
	p := readyProcess(0, 0, 5)
	env := newStubEnv(10, p)

	// WHEN dispatched
	ev := (&FCFS{}).Dispatch(p, env)

	// THEN it terminates and reports completion at 15
	assert.Equal(t, NewEvent(0, EventCPUDone, 15), ev)
	assert.Equal(t, StateTerminated, p.State)
	assert.Equal(t, int64(0), p.RemainingTime)
}

func TestSJF_Select_ShortestServiceWithoutMutatingQueue(t *testing.T) {
	// GIVEN A(5), B(2), C(8) all ready
	env := newStubEnv(0, readyProcess(0, 0, 5), readyProcess(1, 0, 2), readyProcess(2, 0, 8))

	// WHEN SJF selects
	got := (&SJF{}).Select(Event{}, env)

	// THEN B is chosen and queue order is unchanged
	assert.Equal(t, 1, got.ID)
	assert.Equal(t, []int{0, 1, 2}, env.procs.IDs())
}

func TestSJF_Select_TiesKeepQueueOrder(t *testing.T) {
	env := newStubEnv(0, readyProcess(0, 0, 4), readyProcess(1, 0, 4))
	assert.Equal(t, 0, (&SJF{}).Select(Event{}, env).ID)
}

func TestSJF_Select_SkipsShorterTerminated(t *testing.T) {
	short := NewProcess(0, 0, 1)
	short.State = StateTerminated
	env := newStubEnv(0, short, readyProcess(1, 0, 6), readyProcess(2, 0, 3))
	assert.Equal(t, 2, (&SJF{}).Select(Event{}, env).ID)
}

func TestRR_Select_MovesEventProcessToTail(t *testing.T) {
	// GIVEN [P0, P1, P2] all ready
	env := newStubEnv(0, readyProcess(0, 0, 5), readyProcess(1, 0, 5), readyProcess(2, 0, 5))

	// WHEN the triggering event names P0
	got := (&RR{Quantum: 2}).Select(NewEvent(0, EventCPURequest, 0), env)

	// THEN P0 is returned and now sits at the tail
	assert.Equal(t, 0, got.ID)
	assert.Equal(t, []int{1, 2, 0}, env.procs.IDs())
}

func TestRR_Select_UnknownProcess_Panics(t *testing.T) {
	env := newStubEnv(0, readyProcess(0, 0, 5))
	assert.Panics(t, func() {
		(&RR{Quantum: 2}).Select(NewEvent(99, EventCPURequest, 0), env)
	})
}

func TestRR_Select_TerminatedProcess_ReturnsNil(t *testing.T) {
	// GIVEN the event names a terminated process
	done := NewProcess(0, 0, 5)
	done.State = StateTerminated
	env := newStubEnv(0, done, readyProcess(1, 0, 5))

	// WHEN RR selects
	got := (&RR{Quantum: 2}).Select(NewEvent(0, EventCPUDone, 0), env)

	// THEN nothing is selected and the queue is untouched
	assert.Nil(t, got)
	assert.Equal(t, []int{0, 1}, env.procs.IDs())
}

func TestRR_Dispatch_Outcomes(t *testing.T) {
	tests := []struct {
		name      string
		remaining int64
		wantEvent Event
		wantState ProcessState
	}{
		{"longer than quantum requeues", 5, NewEvent(0, EventCPURequest, 12), StateReady},
		{"exactly quantum terminates", 2, NewEvent(0, EventCPUDone, 12), StateTerminated},
		{"shorter than quantum terminates early", 1, NewEvent(0, EventCPUDone, 11), StateTerminated},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := readyProcess(0, 0, tt.remaining)
			env := newStubEnv(10, p)
			got := (&RR{Quantum: 2}).Dispatch(p, env)
			assert.Equal(t, tt.wantEvent, got)
			assert.Equal(t, tt.wantState, p.State)
		})
	}
}

func TestSRTF_Select_RerankQueueInPlace(t *testing.T) {
	// GIVEN [P0 rem 6, P1 rem 3 (not yet arrived), P2 rem 4]
	notArrived := NewProcess(1, 50, 3)
	env := newStubEnv(0, readyProcess(0, 0, 6), notArrived, readyProcess(2, 0, 4))

	// WHEN SRTF selects
	got := (&SRTF{}).Select(Event{}, env)

	// THEN the queue itself is ranked by remaining time and the shortest ready wins
	assert.Equal(t, 2, got.ID)
	assert.Equal(t, []int{1, 2, 0}, env.procs.IDs())
}

func TestSRTF_Dispatch_PreemptedByNextEvent(t *testing.T) {
	// GIVEN a process owing 8 at tick 0 and an event scheduled at 3
	p := readyProcess(0, 0, 8)
	env := newStubEnv(0, p)
	env.next = 3

	// WHEN dispatched
	got := (&SRTF{}).Dispatch(p, env)

	// THEN it runs until the event and requeues
	assert.Equal(t, NewEvent(0, EventCPURequest, 3), got)
	assert.Equal(t, StateReady, p.State)
	assert.Equal(t, int64(5), p.RemainingTime)
}

func TestSRTF_Dispatch_FinishesBeforeNextEvent(t *testing.T) {
	p := readyProcess(0, 0, 2)
	env := newStubEnv(4, p)
	env.next = 20

	got := (&SRTF{}).Dispatch(p, env)

	assert.Equal(t, NewEvent(0, EventCPUDone, 6), got)
	assert.Equal(t, StateTerminated, p.State)
}

func TestSRTF_Dispatch_NoFutureEvents_RunsToCompletion(t *testing.T) {
	p := readyProcess(0, 0, 9)
	env := newStubEnv(1, p)

	got := (&SRTF{}).Dispatch(p, env)

	assert.Equal(t, NewEvent(0, EventCPUDone, 10), got)
}

func TestPolicies_NeverSelectTerminated(t *testing.T) {
	// GIVEN only terminated processes
	for _, name := range PolicyNames {
		t.Run(name, func(t *testing.T) {
			a, b := NewProcess(0, 0, 1), NewProcess(1, 0, 2)
			a.State, b.State = StateTerminated, StateTerminated
			env := newStubEnv(5, a, b)
			policy := mustPolicy(name, 1)

			// WHEN selecting repeatedly
			for i := 0; i < 3; i++ {
				// THEN nothing is ever chosen
				assert.Nil(t, policy.Select(NewEvent(i%2, EventCPUDone, 5), env))
			}
		})
	}
}
