package sim

import (
	"hash/fnv"
	"math/rand"
)

// Named random streams drawn by workload generation.
const (
	// StreamArrivals drives inter-arrival times and is seeded with the workload seed itself.
	StreamArrivals = "arrivals"
	// StreamService drives service times.
	StreamService = "service"
)

// RandStreams hands out one independent *rand.Rand per named stream, all
// derived from a single workload seed. Drawing more service times never
// shifts the arrival sequence, and the same seed always yields the same
// processes.
//
// A stream's seed is the workload seed for StreamArrivals and
// seed XOR fnv1a64(name) for every other name.
//
// Not safe for concurrent use.
type RandStreams struct {
	seed    int64
	streams map[string]*rand.Rand
}

// NewRandStreams creates the stream set for a workload seed.
func NewRandStreams(seed int64) *RandStreams {
	return &RandStreams{seed: seed, streams: make(map[string]*rand.Rand)}
}

// Stream returns the generator for name, creating it on first use.
// Repeated calls with the same name return the same generator.
func (r *RandStreams) Stream(name string) *rand.Rand {
	if s, ok := r.streams[name]; ok {
		return s
	}
	s := rand.New(rand.NewSource(streamSeed(r.seed, name)))
	r.streams[name] = s
	return s
}

func streamSeed(seed int64, name string) int64 {
	if name == StreamArrivals {
		return seed
	}
	h := fnv.New64a()
	h.Write([]byte(name))
	return seed ^ int64(h.Sum64())
}
