package cmd

import (
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	sim "github.com/biased-timer/biased-timer/sim"
)

var (
	// CLI flags for the simulation batch
	probs        []float64 // Base weekly probability per event, in original (penalty) order
	samples      int       // Number of independent trials
	horizon      int       // Max weeks per trial before saturation
	resolution   string    // Time-stepping granularity (weekly, daily)
	seed         int64     // Master seed for per-trial RNG derivation
	workers      int       // Worker goroutines for the batch (1 = sequential)
	logLevel     string    // Log verbosity level
	outputFile   string    // Optional CSV destination for the raw result collection
	scenarioFile string    // YAML file with named probability presets
	scenario     string    // Name of the preset to use from scenarioFile
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "biased-timer",
	Short: "Monte Carlo simulator for the biased pause-timer model",
}

// runCmd executes one simulation batch using parameters from CLI flags
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the pause-timer simulation",
	Run: func(cmd *cobra.Command, args []string) {
		// Set up logging
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)

		eventProbs := probs
		if scenario != "" {
			preset := GetScenarioConfig(scenarioFile, scenario)
			if preset == nil {
				logrus.Fatalf("Scenario %q not found in %s", scenario, scenarioFile)
			}
			eventProbs = preset.Probs
		}

		res, err := sim.ParseResolution(resolution)
		if err != nil {
			logrus.Fatalf("Invalid resolution: %v", err)
		}

		cfg := sim.NewConfig(eventProbs, samples, horizon, res)
		s, err := sim.NewSimulator(cfg, seed)
		if err != nil {
			logrus.Fatalf("Invalid configuration: %v", err)
		}

		logrus.Infof("Starting simulation with probs=%v, samples=%d, horizon=%d weeks, seed=%d",
			eventProbs, samples, horizon, seed)
		startTime := time.Now()

		results := s.RunParallel(workers)

		metrics := sim.NewMetrics(results, horizon)
		metrics.Print()
		logrus.Infof("Simulation took %v", time.Since(startTime))

		if outputFile != "" {
			sim.SaveToFile(results, outputFile)
		}
	},
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	runCmd.Flags().Float64SliceVar(&probs, "probs", []float64{0.1, 0.1, 0.1, 0.1, 0.1}, "Comma-separated base weekly probability per event, in penalty order")
	runCmd.Flags().IntVar(&samples, "samples", 10000, "Number of simulation trials")
	runCmd.Flags().IntVar(&horizon, "horizon", 200, "Max weeks to simulate per trial")
	runCmd.Flags().StringVar(&resolution, "resolution", "weekly", "Time resolution (weekly, daily)")
	runCmd.Flags().Int64Var(&seed, "seed", 42, "Seed for per-trial random generation")
	runCmd.Flags().IntVar(&workers, "workers", 1, "Worker goroutines for the batch (1 = sequential)")
	runCmd.Flags().StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")
	runCmd.Flags().StringVar(&outputFile, "output", "", "CSV file for the raw completion weeks (empty = no file)")
	runCmd.Flags().StringVar(&scenarioFile, "scenario-file", "scenarios.yaml", "YAML file with named probability presets")
	runCmd.Flags().StringVar(&scenario, "scenario", "", "Preset name from the scenario file (overrides --probs)")

	// Attach `run` as a subcommand to `root`
	rootCmd.AddCommand(runCmd)
}
