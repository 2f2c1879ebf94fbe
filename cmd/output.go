package cmd

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"gopkg.in/yaml.v3"

	"github.com/schedsim/schedsim/sim"
	"github.com/schedsim/schedsim/sim/trace"
)

const (
	outputTable = "table"
	outputYAML  = "yaml"
)

// resultDoc is the YAML rendering of a finished run.
type resultDoc struct {
	Policy    string                 `yaml:"policy"`
	EndTime   int64                  `yaml:"end_time"`
	Timeline  []eventDoc             `yaml:"timeline"`
	Processes []processDoc           `yaml:"processes"`
	Trace     *trace.SimulationTrace `yaml:"trace,omitempty"`
}

type eventDoc struct {
	Process int    `yaml:"process"`
	Type    string `yaml:"type"`
	Time    int64  `yaml:"time"`
}

type processDoc struct {
	ID         int    `yaml:"id"`
	Arrival    int64  `yaml:"arrival"`
	Service    int64  `yaml:"service"`
	State      string `yaml:"state"`
	Remaining  int64  `yaml:"remaining"`
	Completion int64  `yaml:"completion"`
	Turnaround int64  `yaml:"turnaround"`
	Waiting    int64  `yaml:"waiting"`
}

func newResultDoc(res *sim.Result) resultDoc {
	doc := resultDoc{
		Policy:    res.Policy,
		EndTime:   res.EndTime,
		Timeline:  make([]eventDoc, 0, len(res.Timeline)),
		Processes: make([]processDoc, 0, len(res.Processes)),
	}
	for _, ev := range res.Timeline {
		doc.Timeline = append(doc.Timeline, eventDoc{Process: ev.ProcessID(), Type: string(ev.Type()), Time: ev.Timestamp()})
	}
	for _, p := range res.Processes {
		doc.Processes = append(doc.Processes, processDoc{
			ID:         p.ID,
			Arrival:    p.ArrivalTime,
			Service:    p.ServiceTime,
			State:      string(p.State),
			Remaining:  p.RemainingTime,
			Completion: p.CompletionTime(),
			Turnaround: p.TurnaroundTime(),
			Waiting:    p.WaitingTime(),
		})
	}
	if res.Trace != nil && res.Trace.Config.Level.Enabled() {
		doc.Trace = res.Trace
	}
	return doc
}

// writeResult renders res to w in the requested format.
func writeResult(w io.Writer, res *sim.Result, format string) error {
	switch format {
	case outputTable:
		writeTables(w, res)
		return nil
	case outputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(newResultDoc(res)); err != nil {
			return fmt.Errorf("encoding result: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

// writeTables prints the dispatch timeline followed by the per-process table.
func writeTables(w io.Writer, res *sim.Result) {
	fmt.Fprintf(w, "=== %s timeline ===\n", res.Policy)
	timeline := tablewriter.NewWriter(w)
	timeline.SetHeader([]string{"Time", "Process", "Event"})
	for _, ev := range res.Timeline {
		timeline.Append([]string{
			strconv.FormatInt(ev.Timestamp(), 10),
			"P" + strconv.Itoa(ev.ProcessID()),
			string(ev.Type()),
		})
	}
	timeline.SetFooter([]string{"end", "", strconv.FormatInt(res.EndTime, 10)})
	timeline.Render()

	procs := tablewriter.NewWriter(w)
	procs.SetHeader([]string{"Process", "Arrival", "Service", "State", "Completion", "Turnaround", "Waiting"})
	for _, p := range res.Processes {
		procs.Append([]string{
			"P" + strconv.Itoa(p.ID),
			strconv.FormatInt(p.ArrivalTime, 10),
			strconv.FormatInt(p.ServiceTime, 10),
			string(p.State),
			formatTick(p.CompletionTime()),
			formatTick(p.TurnaroundTime()),
			formatTick(p.WaitingTime()),
		})
	}
	procs.Render()

	if res.Trace != nil && res.Trace.Config.Level.Enabled() {
		s := trace.Summarize(res.Trace)
		fmt.Fprintf(w, "dispatches=%d preemptions=%d completions=%d idle=%d switches=%d run=%s\n",
			s.TotalDispatches, s.Preemptions, s.Completions, s.IdlePoints, s.ContextSwitches, res.Trace.RunID)
	}
}

// formatTick prints "-" for the -1 sentinel of unfinished processes.
func formatTick(t int64) string {
	if t < 0 {
		return "-"
	}
	return strconv.FormatInt(t, 10)
}
