package sim

import (
	"fmt"

	"github.com/schedsim/schedsim/sim/trace"
)

// PolicyConfig selects a scheduling policy and its parameters.
type PolicyConfig struct {
	Name    string `yaml:"name"`    // "fcfs", "sjf", "rr" or "srtf"
	Quantum int64  `yaml:"quantum"` // RR time slice in ticks (must be > 0 for rr, ignored otherwise)
}

// NewPolicyConfig creates a PolicyConfig with all fields explicitly set.
func NewPolicyConfig(name string, quantum int64) PolicyConfig {
	return PolicyConfig{Name: name, Quantum: quantum}
}

// Validate rejects unknown policies and a non-positive RR quantum.
func (c PolicyConfig) Validate() error {
	if !IsValidPolicy(c.Name) {
		return fmt.Errorf("unknown policy %q", c.Name)
	}
	if c.Name == PolicyRR && c.Quantum <= 0 {
		return fmt.Errorf("rr quantum must be positive, got %d", c.Quantum)
	}
	return nil
}

// SimConfig groups engine parameters that are independent of the policy.
type SimConfig struct {
	Horizon       int64            // stop once the clock passes this tick
	ContextSwitch int64            // ticks charged when the CPU changes process (default 0)
	TraceLevel    trace.TraceLevel // dispatch trace verbosity
}

// NewSimConfig creates a SimConfig with all fields explicitly set.
func NewSimConfig(horizon, contextSwitch int64, level trace.TraceLevel) SimConfig {
	return SimConfig{Horizon: horizon, ContextSwitch: contextSwitch, TraceLevel: level}
}

// Validate checks parameter ranges.
func (c SimConfig) Validate() error {
	if c.Horizon <= 0 {
		return fmt.Errorf("horizon must be positive, got %d", c.Horizon)
	}
	if c.ContextSwitch < 0 {
		return fmt.Errorf("context switch must be non-negative, got %d", c.ContextSwitch)
	}
	if !trace.IsValidTraceLevel(string(c.TraceLevel)) {
		return fmt.Errorf("unknown trace level %q", c.TraceLevel)
	}
	return nil
}
