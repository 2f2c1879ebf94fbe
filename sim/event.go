package sim

import "fmt"

// EventType enumerates what happened to a process at an event's time.
type EventType string

const (
	// EventArrives marks a process entering the system.
	EventArrives EventType = "PROC_ARRIVES"
	// EventCPURequest marks a process asking for the CPU again after preemption.
	EventCPURequest EventType = "PROC_CPU_REQ"
	// EventCPUDone marks a process finishing its service.
	EventCPUDone EventType = "PROC_CPU_DONE"
)

// Event is an immutable record produced by arrivals and dispatches.
// Ordering between events of equal time is decided by the EventHeap.
type Event struct {
	processID int
	typ       EventType
	time      int64
}

// NewEvent constructs an Event value.
func NewEvent(processID int, typ EventType, time int64) Event {
	return Event{processID: processID, typ: typ, time: time}
}

// ProcessID returns the id of the process the event concerns.
func (e Event) ProcessID() int { return e.processID }

// Type returns the event type.
func (e Event) Type() EventType { return e.typ }

// Timestamp returns the absolute simulated time of the event (in ticks).
func (e Event) Timestamp() int64 { return e.time }

func (e Event) String() string {
	return fmt.Sprintf("%s(P%d@%d)", e.typ, e.processID, e.time)
}
