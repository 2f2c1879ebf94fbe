package workload

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/schedsim/schedsim/sim"
)

// Scenario is a complete simulation setup loadable from one YAML file.
// Zero-valued engine fields mean "not set" and leave CLI defaults in place.
//
//	policy:
//	  name: rr
//	  quantum: 2
//	context_switch: 0
//	workload:
//	  processes:
//	    - {id: 0, arrival: 0, service: 5}
//	    - {id: 1, arrival: 0, service: 3}
type Scenario struct {
	Policy        sim.PolicyConfig `yaml:"policy"`
	ContextSwitch *int64           `yaml:"context_switch,omitempty"`
	Horizon       *int64           `yaml:"horizon,omitempty"`
	Workload      Spec             `yaml:"workload"`
}

// LoadScenario reads and parses a YAML scenario file.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scenario: %w", err)
	}
	var sc Scenario
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&sc); err != nil {
		return nil, fmt.Errorf("parsing scenario: %w", err)
	}
	return &sc, nil
}

// Validate checks the workload and the engine parameters. The policy section
// may be left empty in files used with the compare command.
func (sc *Scenario) Validate() error {
	if sc.Policy.Name != "" {
		if err := sc.Policy.Validate(); err != nil {
			return fmt.Errorf("policy: %w", err)
		}
	}
	if sc.ContextSwitch != nil && *sc.ContextSwitch < 0 {
		return fmt.Errorf("context_switch must be non-negative, got %d", *sc.ContextSwitch)
	}
	if sc.Horizon != nil && *sc.Horizon <= 0 {
		return fmt.Errorf("horizon must be positive, got %d", *sc.Horizon)
	}
	if err := sc.Workload.Validate(); err != nil {
		return fmt.Errorf("workload: %w", err)
	}
	return nil
}

// Built-in workload presets.

// ScenarioTwoJobs is A(service=5), B(service=3), both ready at t=0.
func ScenarioTwoJobs() *Spec {
	return &Spec{Processes: []ProcessSpec{
		{ID: 0, Arrival: 0, Service: 5},
		{ID: 1, Arrival: 0, Service: 3},
	}}
}

// ScenarioThreeJobs is A(5), B(2), C(8), all ready at t=0.
func ScenarioThreeJobs() *Spec {
	return &Spec{Processes: []ProcessSpec{
		{ID: 0, Arrival: 0, Service: 5},
		{ID: 1, Arrival: 0, Service: 2},
		{ID: 2, Arrival: 0, Service: 8},
	}}
}

// ScenarioLateShortJob is a long job at t=0 and a short job arriving at t=3.
func ScenarioLateShortJob() *Spec {
	return &Spec{Processes: []ProcessSpec{
		{ID: 0, Arrival: 0, Service: 8},
		{ID: 1, Arrival: 3, Service: 2},
	}}
}

// ScenarioPoisson synthesizes n processes with Poisson arrivals and
// exponential service times.
func ScenarioPoisson(seed int64, n int, rate, meanService float64) *Spec {
	return &Spec{
		Seed:         seed,
		NumProcesses: n,
		Arrival:      ArrivalSpec{Process: "poisson", Rate: rate},
		Service:      ServiceSpec{Type: "exponential", Mean: meanService},
	}
}

// Presets maps preset names accepted by --preset to their specs.
var Presets = map[string]func() *Spec{
	"two-jobs":       ScenarioTwoJobs,
	"three-jobs":     ScenarioThreeJobs,
	"late-short-job": ScenarioLateShortJob,
}
