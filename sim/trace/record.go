// Package trace provides dispatch-decision recording for scheduling policy analysis.
// It has no dependencies on sim/ and stores only pure data types.
package trace

// DispatchRecord captures a single select-and-dispatch cycle.
type DispatchRecord struct {
	Clock     int64  `yaml:"clock"`     // tick at which the process started running
	ProcessID int    `yaml:"process"`   // process chosen by the policy
	Policy    string `yaml:"policy"`    // policy name
	Ran       int64  `yaml:"ran"`       // ticks credited by this dispatch
	Outcome   string `yaml:"outcome"`   // event type returned by the dispatch
	Remaining int64  `yaml:"remaining"` // remaining time after the dispatch
	Switched  bool   `yaml:"switched"`  // true if a context switch preceded the dispatch
}

// IdleRecord captures a scheduling point at which no process was ready.
type IdleRecord struct {
	Clock   int64  `yaml:"clock"`
	Trigger string `yaml:"trigger"` // event that invoked the policy
}
