package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/schedsim/schedsim/sim"
)

// compareCmd runs every policy over the same workload.
var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Run all scheduling policies over the same workload",
	Run: func(cmd *cobra.Command, args []string) {
		setupLogging()

		opts, err := resolveRunOptions(cmd.Flags().Changed)
		if err != nil {
			logrus.Fatalf("Invalid configuration: %v", err)
		}
		if err := compare(os.Stdout, opts, outputFormat); err != nil {
			logrus.Fatalf("Comparison failed: %v", err)
		}
	},
}

// compare runs each policy in PolicyNames order on a freshly generated copy
// of the workload. opts.Policy.Name is ignored; its quantum is used for rr.
func compare(w io.Writer, opts runOptions, format string) error {
	for i, name := range sim.PolicyNames {
		run := opts
		run.Policy = sim.NewPolicyConfig(name, opts.Policy.Quantum)
		if err := run.Policy.Validate(); err != nil {
			return err
		}
		res, err := simulate(run)
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		if i > 0 {
			// separate tables with a blank line, YAML runs with a document marker
			sep := "\n"
			if format == outputYAML {
				sep = "---\n"
			}
			fmt.Fprint(w, sep)
		}
		if err := writeResult(w, res, format); err != nil {
			return err
		}
	}
	return nil
}
