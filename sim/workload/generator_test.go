package workload

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schedsim/schedsim/sim"
)

func TestGenerate_ExplicitProcesses_KeepOrder(t *testing.T) {
	// GIVEN an explicit process list
	spec := ScenarioThreeJobs()

	// WHEN generated
	procs, err := Generate(spec)

	// THEN processes match the listing and are fresh
	require.NoError(t, err)
	require.Len(t, procs, 3)
	assert.Equal(t, []int64{5, 2, 8}, []int64{procs[0].ServiceTime, procs[1].ServiceTime, procs[2].ServiceTime})
	for _, p := range procs {
		assert.Equal(t, sim.StateNew, p.State)
		assert.Equal(t, p.ServiceTime, p.RemainingTime)
	}
}

func TestGenerate_Synthetic_Deterministic(t *testing.T) {
	// GIVEN the same seeded spec
	spec := ScenarioPoisson(42, 20, 0.2, 6)

	// WHEN generated twice
	a, err := Generate(spec)
	require.NoError(t, err)
	b, err := Generate(spec)
	require.NoError(t, err)

	// THEN the sequences are identical but independent objects
	require.Len(t, a, 20)
	for i := range a {
		assert.Equal(t, a[i].ArrivalTime, b[i].ArrivalTime)
		assert.Equal(t, a[i].ServiceTime, b[i].ServiceTime)
		assert.NotSame(t, a[i], b[i])
	}
}

func TestGenerate_Synthetic_WellFormed(t *testing.T) {
	procs, err := Generate(ScenarioPoisson(7, 50, 0.5, 3))
	require.NoError(t, err)

	// sequential ids, first arrival at 0, non-decreasing arrivals, positive service
	assert.Equal(t, int64(0), procs[0].ArrivalTime)
	for i, p := range procs {
		assert.Equal(t, i, p.ID)
		assert.GreaterOrEqual(t, p.ServiceTime, int64(1))
		if i > 0 {
			assert.GreaterOrEqual(t, p.ArrivalTime, procs[i-1].ArrivalTime)
		}
	}
}

func TestGenerate_DifferentSeeds_Differ(t *testing.T) {
	a, _ := Generate(ScenarioPoisson(1, 30, 0.3, 5))
	b, _ := Generate(ScenarioPoisson(2, 30, 0.3, 5))
	same := true
	for i := range a {
		if a[i].ServiceTime != b[i].ServiceTime || a[i].ArrivalTime != b[i].ArrivalTime {
			same = false
			break
		}
	}
	assert.False(t, same)
}

func TestGenerate_Constant(t *testing.T) {
	// GIVEN constant arrivals every 4 ticks and constant service of 3
	spec := &Spec{
		NumProcesses: 3,
		Arrival:      ArrivalSpec{Process: "constant", Rate: 0.25},
		Service:      ServiceSpec{Type: "constant", Mean: 3},
	}

	procs, err := Generate(spec)

	require.NoError(t, err)
	assert.Equal(t, []int64{0, 4, 8}, []int64{procs[0].ArrivalTime, procs[1].ArrivalTime, procs[2].ArrivalTime})
	for _, p := range procs {
		assert.Equal(t, int64(3), p.ServiceTime)
	}
}

func TestGenerate_InvalidSpec_Error(t *testing.T) {
	_, err := Generate(&Spec{NumProcesses: 0})
	assert.Error(t, err)
}

func TestGenerate_FeedsEverySimulator(t *testing.T) {
	// GIVEN a synthetic workload
	spec := ScenarioPoisson(3, 15, 0.25, 4)
	for _, name := range sim.PolicyNames {
		t.Run(name, func(t *testing.T) {
			procs, err := Generate(spec)
			require.NoError(t, err)
			policy, err := sim.NewPolicy(sim.NewPolicyConfig(name, 2))
			require.NoError(t, err)
			s, err := sim.NewSimulator(sim.NewSimConfig(1<<40, 0, "none"), policy, procs)
			require.NoError(t, err)

			// WHEN simulated
			s.Run()

			// THEN everything terminates with its full service credited
			for _, p := range procs {
				assert.Equal(t, sim.StateTerminated, p.State)
				assert.Equal(t, p.ServiceTime, p.CreditedTime())
			}
		})
	}
}
