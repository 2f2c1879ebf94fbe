// Package testutil provides shared test infrastructure for the scheduling simulator.
// It holds the golden dataset types and assertion helpers used by sim/ tests.
package testutil

import (
	"encoding/json"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

// GoldenDataset represents the structure of testdata/goldendataset.json.
type GoldenDataset struct {
	Tests []GoldenTestCase `json:"tests"`
}

// GoldenTestCase is one scenario with its expected dispatch timeline.
type GoldenTestCase struct {
	Name          string          `json:"name"`
	Policy        string          `json:"policy"`
	Quantum       int64           `json:"quantum"`
	ContextSwitch int64           `json:"context_switch"`
	Processes     []GoldenProcess `json:"processes"`
	Timeline      []GoldenEvent   `json:"timeline"`
	EndTime       int64           `json:"end_time"`
}

// GoldenProcess is one input process.
type GoldenProcess struct {
	ID      int   `json:"id"`
	Arrival int64 `json:"arrival"`
	Service int64 `json:"service"`
}

// GoldenEvent is one expected dispatch outcome.
type GoldenEvent struct {
	Process int    `json:"process"`
	Type    string `json:"type"`
	Time    int64  `json:"time"`
}

// LoadGoldenDataset loads the golden dataset from the testdata directory.
// The path is resolved relative to this source file: sim/internal/testutil/ → testdata/.
func LoadGoldenDataset(t *testing.T) *GoldenDataset {
	t.Helper()

	_, thisFile, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("Failed to get current file path")
	}
	// Navigate from sim/internal/testutil/ to repo root testdata/
	path := filepath.Join(filepath.Dir(thisFile), "..", "..", "..", "testdata", "goldendataset.json")
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read golden dataset: %v", err)
	}

	var dataset GoldenDataset
	if err := json.Unmarshal(data, &dataset); err != nil {
		t.Fatalf("Failed to parse golden dataset: %v", err)
	}
	if len(dataset.Tests) == 0 {
		t.Fatal("Golden dataset has no test cases")
	}

	return &dataset
}

// AssertTimelineEqual compares an observed timeline against the golden one,
// reporting the first divergence with its index.
func AssertTimelineEqual(t *testing.T, name string, want, got []GoldenEvent) {
	t.Helper()
	if len(want) != len(got) {
		t.Errorf("%s: timeline length got %d, want %d\n got: %v\nwant: %v", name, len(got), len(want), got, want)
		return
	}
	for i := range want {
		if want[i] != got[i] {
			t.Errorf("%s: timeline[%d] got %+v, want %+v", name, i, got[i], want[i])
			return
		}
	}
}
