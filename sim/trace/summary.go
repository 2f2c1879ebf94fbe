package trace

// PreemptedOutcome is the outcome string of a dispatch that left work behind.
const PreemptedOutcome = "PROC_CPU_REQ"

// TraceSummary aggregates counts from a SimulationTrace.
type TraceSummary struct {
	TotalDispatches      int
	Preemptions          int
	Completions          int
	IdlePoints           int
	ContextSwitches      int
	DispatchesPerProcess map[int]int // process ID → number of dispatches
	TicksPerProcess      map[int]int64
}

// Summarize computes aggregate counts from a SimulationTrace.
// Safe for nil or empty traces (returns zero-value fields).
func Summarize(st *SimulationTrace) *TraceSummary {
	summary := &TraceSummary{
		DispatchesPerProcess: make(map[int]int),
		TicksPerProcess:      make(map[int]int64),
	}
	if st == nil {
		return summary
	}

	summary.TotalDispatches = len(st.Dispatches)
	summary.IdlePoints = len(st.Idles)
	for _, d := range st.Dispatches {
		summary.DispatchesPerProcess[d.ProcessID]++
		summary.TicksPerProcess[d.ProcessID] += d.Ran
		if d.Outcome == PreemptedOutcome {
			summary.Preemptions++
		} else {
			summary.Completions++
		}
		if d.Switched {
			summary.ContextSwitches++
		}
	}
	return summary
}
