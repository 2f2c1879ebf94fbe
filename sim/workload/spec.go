package workload

import (
	"bytes"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

// Spec describes the set of processes to simulate. Either Processes lists
// them explicitly, or NumProcesses are synthesized from the arrival and
// service distributions using Seed.
type Spec struct {
	Seed         int64         `yaml:"seed"`
	NumProcesses int           `yaml:"num_processes,omitempty"`
	Arrival      ArrivalSpec   `yaml:"arrival,omitempty"`
	Service      ServiceSpec   `yaml:"service,omitempty"`
	Processes    []ProcessSpec `yaml:"processes,omitempty"`
}

// ArrivalSpec configures the inter-arrival time process.
type ArrivalSpec struct {
	Process string  `yaml:"process"` // "poisson" (default) or "constant"
	Rate    float64 `yaml:"rate"`    // arrivals per tick
}

// ServiceSpec configures the service time distribution.
type ServiceSpec struct {
	Type string  `yaml:"type"` // "exponential" (default) or "constant"
	Mean float64 `yaml:"mean"` // mean service time in ticks
}

// ProcessSpec is one explicitly listed process.
type ProcessSpec struct {
	ID      int   `yaml:"id"`
	Arrival int64 `yaml:"arrival"`
	Service int64 `yaml:"service"`
}

// MinArrivalRate is the smallest accepted arrival rate (arrivals per tick).
const MinArrivalRate = 1e-9

var validArrivalProcesses = map[string]bool{"": true, "poisson": true, "constant": true}

var validServiceTypes = map[string]bool{"": true, "exponential": true, "constant": true}

// LoadSpec reads and parses a YAML workload file.
// Unknown keys are rejected so that typos do not silently fall back to defaults.
func LoadSpec(path string) (*Spec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading workload spec: %w", err)
	}
	var spec Spec
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&spec); err != nil {
		return nil, fmt.Errorf("parsing workload spec: %w", err)
	}
	return &spec, nil
}

// Validate checks that s can produce a well-formed process list.
// Non-positive service times are misconfiguration and are rejected here rather
// than left for the policies to trip over.
func (s *Spec) Validate() error {
	if len(s.Processes) > 0 {
		if s.NumProcesses != 0 {
			return fmt.Errorf("num_processes and processes are mutually exclusive")
		}
		seen := make(map[int]bool, len(s.Processes))
		for i, p := range s.Processes {
			if seen[p.ID] {
				return fmt.Errorf("processes[%d]: duplicate id %d", i, p.ID)
			}
			seen[p.ID] = true
			if p.Service <= 0 {
				return fmt.Errorf("processes[%d]: service must be positive, got %d", i, p.Service)
			}
			if p.Arrival < 0 {
				return fmt.Errorf("processes[%d]: arrival must be non-negative, got %d", i, p.Arrival)
			}
		}
		return nil
	}
	if s.NumProcesses <= 0 {
		return fmt.Errorf("num_processes must be positive, got %d", s.NumProcesses)
	}
	if !validArrivalProcesses[s.Arrival.Process] {
		return fmt.Errorf("unknown arrival process %q; valid: poisson, constant", s.Arrival.Process)
	}
	if err := validateFinitePositive("arrival.rate", s.Arrival.Rate); err != nil {
		return err
	}
	if s.Arrival.Rate < MinArrivalRate {
		return fmt.Errorf("arrival.rate must be at least %g, got %g", MinArrivalRate, s.Arrival.Rate)
	}
	if !validServiceTypes[s.Service.Type] {
		return fmt.Errorf("unknown service type %q; valid: exponential, constant", s.Service.Type)
	}
	return validateFinitePositive("service.mean", s.Service.Mean)
}

func validateFinitePositive(name string, val float64) error {
	if math.IsNaN(val) || math.IsInf(val, 0) {
		return fmt.Errorf("%s must be a finite number, got %f", name, val)
	}
	if val <= 0 {
		return fmt.Errorf("%s must be positive, got %f", name, val)
	}
	return nil
}
