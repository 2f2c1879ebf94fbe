package workload

import (
	"math"
	"math/rand"
)

// maxSampleTicks caps any single sampled duration so that float overflow
// (+Inf) never reaches an int64 conversion.
const maxSampleTicks = int64(1) << 53

// toTicks converts a non-negative sampled duration to ticks, saturating at
// maxSampleTicks.
func toTicks(v float64) int64 {
	if math.IsNaN(v) || v <= 0 {
		return 0
	}
	if v >= float64(maxSampleTicks) {
		return maxSampleTicks
	}
	return int64(v)
}

// ArrivalSampler generates inter-arrival times.
type ArrivalSampler interface {
	// SampleIAT returns the next inter-arrival time in ticks (>= 0).
	SampleIAT(rng *rand.Rand) int64
}

// PoissonSampler generates exponentially-distributed inter-arrival times.
type PoissonSampler struct {
	rate float64 // arrivals per tick
}

func (s *PoissonSampler) SampleIAT(rng *rand.Rand) int64 {
	return toTicks(math.Floor(rng.ExpFloat64() / s.rate))
}

// ConstantArrivalSampler spaces arrivals exactly 1/rate ticks apart.
type ConstantArrivalSampler struct {
	rate float64
}

func (s *ConstantArrivalSampler) SampleIAT(_ *rand.Rand) int64 {
	return toTicks(math.Round(1 / s.rate))
}

// NewArrivalSampler creates an ArrivalSampler from a validated spec.
func NewArrivalSampler(spec ArrivalSpec) ArrivalSampler {
	if spec.Process == "constant" {
		return &ConstantArrivalSampler{rate: spec.Rate}
	}
	return &PoissonSampler{rate: spec.Rate}
}

// ServiceSampler generates service times.
type ServiceSampler interface {
	// Sample returns a positive service time in ticks (>= 1).
	Sample(rng *rand.Rand) int64
}

// ExponentialSampler produces exponentially-distributed service times.
type ExponentialSampler struct {
	mean float64
}

func (s *ExponentialSampler) Sample(rng *rand.Rand) int64 {
	result := toTicks(math.Round(rng.ExpFloat64() * s.mean))
	if result < 1 {
		return 1
	}
	return result
}

// ConstantSampler returns the mean every time.
type ConstantSampler struct {
	value int64
}

func (s *ConstantSampler) Sample(_ *rand.Rand) int64 {
	return s.value
}

// NewServiceSampler creates a ServiceSampler from a validated spec.
func NewServiceSampler(spec ServiceSpec) ServiceSampler {
	if spec.Type == "constant" {
		return &ConstantSampler{value: max(toTicks(math.Round(spec.Mean)), 1)}
	}
	return &ExponentialSampler{mean: spec.Mean}
}
