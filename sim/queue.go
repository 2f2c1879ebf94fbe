// Implements the ProcessQueue, the engine-owned ordered collection of processes.
// Policies reorder it only through MoveToTail and Rerank.

package sim

import (
	"fmt"
	"sort"
	"strings"
)

// ProcessQueue holds every process of a simulation in scheduling order.
// New processes are appended in arrival order; terminated processes stay in
// place so that list-scanning policies see a stable sequence.
type ProcessQueue struct {
	queue []*Process
}

// NewProcessQueue creates a queue holding procs in the given order.
func NewProcessQueue(procs ...*Process) *ProcessQueue {
	pq := &ProcessQueue{queue: make([]*Process, 0, len(procs))}
	for _, p := range procs {
		pq.Add(p)
	}
	return pq
}

// Add appends a process to the back of the queue.
func (pq *ProcessQueue) Add(p *Process) {
	if p == nil {
		panic("Add: process must not be nil")
	}
	pq.queue = append(pq.queue, p)
}

// Len returns the number of processes in the queue.
func (pq *ProcessQueue) Len() int {
	return len(pq.queue)
}

// Items returns the queue contents for iteration.
// The returned slice is the queue's internal storage -- callers MUST NOT
// append to, reslice or reorder it. Use MoveToTail or Rerank instead.
func (pq *ProcessQueue) Items() []*Process {
	return pq.queue
}

// IDs returns the process ids in queue order.
func (pq *ProcessQueue) IDs() []int {
	ids := make([]int, len(pq.queue))
	for i, p := range pq.queue {
		ids[i] = p.ID
	}
	return ids
}

// FirstReady returns the first process in queue order whose state is ready,
// or nil if none is.
func (pq *ProcessQueue) FirstReady() *Process {
	return firstReady(pq.queue)
}

// Find returns the process with the given id, or nil.
func (pq *ProcessQueue) Find(id int) *Process {
	if i := pq.indexOf(id); i >= 0 {
		return pq.queue[i]
	}
	return nil
}

// MoveToTail moves the process with the given id to the back of the queue,
// preserving the relative order of all others. Returns the moved process, or
// nil if no process has that id.
func (pq *ProcessQueue) MoveToTail(id int) *Process {
	i := pq.indexOf(id)
	if i < 0 {
		return nil
	}
	p := pq.queue[i]
	copy(pq.queue[i:], pq.queue[i+1:])
	pq.queue[len(pq.queue)-1] = p
	return p
}

// Rerank stable-sorts the queue in place using less.
func (pq *ProcessQueue) Rerank(less func(a, b *Process) bool) {
	if less == nil {
		panic("Rerank: less must not be nil")
	}
	sort.SliceStable(pq.queue, func(i, j int) bool {
		return less(pq.queue[i], pq.queue[j])
	})
}

// SortedView returns a stable-sorted copy of the queue. The queue itself is
// not modified.
func (pq *ProcessQueue) SortedView(less func(a, b *Process) bool) []*Process {
	if less == nil {
		panic("SortedView: less must not be nil")
	}
	view := make([]*Process, len(pq.queue))
	copy(view, pq.queue)
	sort.SliceStable(view, func(i, j int) bool {
		return less(view[i], view[j])
	})
	return view
}

// Pending reports whether any process has not yet terminated.
func (pq *ProcessQueue) Pending() bool {
	for _, p := range pq.queue {
		if p.State != StateTerminated {
			return true
		}
	}
	return false
}

func (pq *ProcessQueue) String() string {
	var sb strings.Builder
	sb.WriteString("[")
	for i, p := range pq.queue {
		sb.WriteString(fmt.Sprint(p))
		if i < len(pq.queue)-1 {
			sb.WriteString(" ")
		}
	}
	sb.WriteString("]")
	return sb.String()
}

func (pq *ProcessQueue) indexOf(id int) int {
	for i, p := range pq.queue {
		if p.ID == id {
			return i
		}
	}
	return -1
}

func firstReady(procs []*Process) *Process {
	for _, p := range procs {
		if p.State == StateReady {
			return p
		}
	}
	return nil
}
