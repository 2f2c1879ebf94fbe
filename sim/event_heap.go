package sim

import (
	"container/heap"
	"math"
)

type queuedEvent struct {
	ev  Event
	seq uint64
}

// EventHeap implements a priority queue with deterministic ordering.
// Ordering: timestamp → insertion sequence.
type EventHeap struct {
	events  []queuedEvent
	nextSeq uint64
}

// NewEventHeap creates a new event heap
func NewEventHeap() *EventHeap {
	h := &EventHeap{
		events: make([]queuedEvent, 0),
	}
	heap.Init(h)
	return h
}

// Len implements heap.Interface
func (h *EventHeap) Len() int {
	return len(h.events)
}

// Less implements heap.Interface with deterministic ordering
func (h *EventHeap) Less(i, j int) bool {
	ei, ej := h.events[i], h.events[j]
	if ei.ev.Timestamp() != ej.ev.Timestamp() {
		return ei.ev.Timestamp() < ej.ev.Timestamp()
	}
	return ei.seq < ej.seq
}

// Swap implements heap.Interface
func (h *EventHeap) Swap(i, j int) {
	h.events[i], h.events[j] = h.events[j], h.events[i]
}

// Push implements heap.Interface
func (h *EventHeap) Push(x any) {
	h.events = append(h.events, x.(queuedEvent))
}

// Pop implements heap.Interface
func (h *EventHeap) Pop() any {
	old := h.events
	n := len(old)
	item := old[n-1]
	h.events = old[0 : n-1]
	return item
}

// Schedule adds an event to the heap
func (h *EventHeap) Schedule(e Event) {
	heap.Push(h, queuedEvent{ev: e, seq: h.nextSeq})
	h.nextSeq++
}

// PopNext removes and returns the next event. ok is false when the heap is empty.
func (h *EventHeap) PopNext() (Event, bool) {
	if h.Len() == 0 {
		return Event{}, false
	}
	return heap.Pop(h).(queuedEvent).ev, true
}

// NextTimeAfter returns the earliest queued event time strictly greater than t,
// or math.MaxInt64 when no such event exists.
func (h *EventHeap) NextTimeAfter(t int64) int64 {
	next := int64(math.MaxInt64)
	for _, qe := range h.events {
		if ts := qe.ev.Timestamp(); ts > t && ts < next {
			next = ts
		}
	}
	return next
}
