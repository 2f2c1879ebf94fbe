// Package sim provides a discrete-event simulator for single-CPU scheduling policies.
//
// # Reading Guide
//
// Start with these files to understand the simulation kernel:
//   - process.go: Process lifecycle (new → ready → running → terminated) and accounting
//   - event.go: Event types that drive the simulation (PROC_ARRIVES, PROC_CPU_REQ, PROC_CPU_DONE)
//   - simulator.go: The event loop that invokes the active policy at every scheduling point
//
// # Architecture
//
// The engine owns the clock, the event heap and the process queue. Policies
// see them only through the Environment interface. Sub-packages:
//   - sim/workload/: Workload specs, presets, scenario files and process generation
//   - sim/trace/: Dispatch decision recording
//
// # Key Interfaces
//
//   - Policy: Select picks the next process at a scheduling point, Dispatch
//     runs it and returns the event describing the outcome
//   - Environment: read access to the clock, the process queue and the time
//     of the next scheduled event
//
// Four policies are built in: FCFS, SJF, RR and SRTF. See NewPolicy.
package sim
