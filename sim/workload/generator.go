package workload

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/schedsim/schedsim/sim"
)

// Generate builds a fresh process list from a workload spec.
// Deterministic given the same spec: every call returns new, unrun processes
// with identical ids, arrivals and service times, so one spec can feed several
// policies.
//
// Explicit processes keep their listed order. Synthesized processes get
// sequential ids starting at 0, in arrival order; the first arrives at tick 0.
func Generate(spec *Spec) ([]*sim.Process, error) {
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("invalid workload spec: %w", err)
	}
	if len(spec.Processes) > 0 {
		procs := make([]*sim.Process, len(spec.Processes))
		for i, p := range spec.Processes {
			procs[i] = sim.NewProcess(p.ID, p.Arrival, p.Service)
		}
		return procs, nil
	}

	streams := sim.NewRandStreams(spec.Seed)
	arrivalRNG := streams.Stream(sim.StreamArrivals)
	serviceRNG := streams.Stream(sim.StreamService)
	arrivals := NewArrivalSampler(spec.Arrival)
	services := NewServiceSampler(spec.Service)

	procs := make([]*sim.Process, spec.NumProcesses)
	var now int64
	for i := range procs {
		if i > 0 {
			now += arrivals.SampleIAT(arrivalRNG)
		}
		procs[i] = sim.NewProcess(i, now, services.Sample(serviceRNG))
	}
	logrus.Debugf("generated %d processes (seed=%d), last arrival at %d", len(procs), spec.Seed, now)
	return procs, nil
}
