package cmd

import (
	"fmt"
	"math"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/schedsim/schedsim/sim"
	"github.com/schedsim/schedsim/sim/trace"
	"github.com/schedsim/schedsim/sim/workload"
)

var (
	// CLI flags for the policy and engine
	policyName    string // Scheduling policy name
	quantum       int64  // RR time slice (in ticks)
	contextSwitch int64  // Ticks charged when the CPU changes process
	horizon       int64  // Total simulation time (in ticks)
	logLevel      string // Log verbosity level
	traceLevel    string // Dispatch trace verbosity
	outputFormat  string // table or yaml

	// CLI flags for the workload
	scenarioPath string  // YAML scenario file (policy + engine + workload)
	workloadPath string  // YAML workload file
	preset       string  // Built-in workload preset
	seed         int64   // Seed for synthetic workloads
	numProcesses int     // Number of synthetic processes
	arrivalRate  float64 // Synthetic arrivals per tick
	meanService  float64 // Synthetic mean service time (in ticks)
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "schedsim",
	Short: "Discrete-event simulator for CPU scheduling policies",
}

// runOptions is the fully resolved input of one simulation.
type runOptions struct {
	Policy   sim.PolicyConfig
	Sim      sim.SimConfig
	Workload *workload.Spec
}

// runCmd executes one simulation using parameters from CLI flags and an optional scenario file
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run one scheduling policy over a workload",
	Run: func(cmd *cobra.Command, args []string) {
		setupLogging()

		opts, err := resolveRunOptions(cmd.Flags().Changed)
		if err != nil {
			logrus.Fatalf("Invalid configuration: %v", err)
		}
		res, err := simulate(opts)
		if err != nil {
			logrus.Fatalf("Simulation failed: %v", err)
		}
		if err := writeResult(os.Stdout, res, outputFormat); err != nil {
			logrus.Fatalf("Writing results: %v", err)
		}
		logrus.Info("Simulation complete.")
	},
}

// setupLogging applies --log to logrus.
func setupLogging() {
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		logrus.Fatalf("Invalid log level: %s", logLevel)
	}
	logrus.SetLevel(level)
}

// resolveRunOptions merges flags with the scenario file. A scenario value is
// used unless the corresponding flag was set explicitly on the command line.
func resolveRunOptions(changed func(string) bool) (runOptions, error) {
	opts := runOptions{
		Policy: sim.NewPolicyConfig(policyName, quantum),
		Sim:    sim.NewSimConfig(horizon, contextSwitch, trace.TraceLevel(traceLevel)),
	}

	if scenarioPath != "" {
		sc, err := workload.LoadScenario(scenarioPath)
		if err != nil {
			return opts, err
		}
		if err := sc.Validate(); err != nil {
			return opts, fmt.Errorf("scenario %s: %w", scenarioPath, err)
		}
		if sc.Policy.Name != "" && !changed("policy") {
			opts.Policy.Name = sc.Policy.Name
		}
		if sc.Policy.Quantum != 0 && !changed("quantum") {
			opts.Policy.Quantum = sc.Policy.Quantum
		}
		if sc.ContextSwitch != nil && !changed("context-switch") {
			opts.Sim.ContextSwitch = *sc.ContextSwitch
		}
		if sc.Horizon != nil && !changed("horizon") {
			opts.Sim.Horizon = *sc.Horizon
		}
		opts.Workload = &sc.Workload
	}

	if opts.Workload == nil || changed("workload") || changed("preset") {
		spec, err := resolveWorkload()
		if err != nil {
			return opts, err
		}
		opts.Workload = spec
	}
	if changed("seed") {
		opts.Workload.Seed = seed
	}

	if err := opts.Policy.Validate(); err != nil {
		return opts, err
	}
	if err := opts.Sim.Validate(); err != nil {
		return opts, err
	}
	return opts, nil
}

// resolveWorkload picks, in order: --workload file, --preset, synthetic flags.
func resolveWorkload() (*workload.Spec, error) {
	if workloadPath != "" {
		return workload.LoadSpec(workloadPath)
	}
	if preset != "" {
		build, ok := workload.Presets[preset]
		if !ok {
			return nil, fmt.Errorf("unknown preset %q", preset)
		}
		logrus.Infof("Using preset workload %v", preset)
		return build(), nil
	}
	return workload.ScenarioPoisson(seed, numProcesses, arrivalRate, meanService), nil
}

// simulate builds a fresh process list and runs one policy over it.
func simulate(opts runOptions) (*sim.Result, error) {
	procs, err := workload.Generate(opts.Workload)
	if err != nil {
		return nil, err
	}
	policy, err := sim.NewPolicy(opts.Policy)
	if err != nil {
		return nil, err
	}
	s, err := sim.NewSimulator(opts.Sim, policy, procs)
	if err != nil {
		return nil, err
	}
	res := s.Run()
	logrus.WithFields(logrus.Fields{
		"run_id": res.Trace.RunID,
		"policy": res.Policy,
	}).Infof("Finished at tick %d with %d dispatches", res.EndTime, len(res.Timeline))
	return res, nil
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// addCommonFlags registers the workload and engine flags shared by run and compare.
func addCommonFlags(c *cobra.Command) {
	c.Flags().Int64Var(&horizon, "horizon", math.MaxInt64, "Total simulation horizon (in ticks)")
	c.Flags().Int64Var(&contextSwitch, "context-switch", 0, "Ticks charged when the CPU switches to a different process")
	c.Flags().StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")
	c.Flags().StringVar(&traceLevel, "trace-level", "dispatches", "Dispatch trace verbosity (none, dispatches)")
	c.Flags().StringVar(&outputFormat, "output", "table", "Output format (table, yaml)")

	c.Flags().StringVar(&scenarioPath, "scenario", "", "YAML scenario file (policy, engine and workload)")
	c.Flags().StringVar(&workloadPath, "workload", "", "YAML workload file")
	c.Flags().StringVar(&preset, "preset", "", "Built-in workload (two-jobs, three-jobs, late-short-job)")
	c.Flags().Int64Var(&seed, "seed", 42, "Seed for synthetic workloads")
	c.Flags().IntVar(&numProcesses, "num-processes", 10, "Number of synthetic processes")
	c.Flags().Float64Var(&arrivalRate, "arrival-rate", 0.2, "Synthetic arrivals per tick")
	c.Flags().Float64Var(&meanService, "mean-service", 4, "Synthetic mean service time (in ticks)")
}

// init sets up CLI flags and subcommands
func init() {
	addCommonFlags(runCmd)
	runCmd.Flags().StringVar(&policyName, "policy", sim.PolicyFCFS, "Scheduling policy (fcfs, sjf, rr, srtf)")
	runCmd.Flags().Int64Var(&quantum, "quantum", 2, "Round-robin time slice (in ticks)")

	addCommonFlags(compareCmd)
	compareCmd.Flags().Int64Var(&quantum, "quantum", 2, "Round-robin time slice (in ticks)")

	// Attach subcommands to `root`
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(compareCmd)
}
