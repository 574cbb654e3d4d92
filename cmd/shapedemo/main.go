// Command shapedemo runs dispatch scenarios from YAML files (or the built-in
// gallery) and prints the per-strategy transcripts.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/polymorph/demo"
)

var (
	// Global flags
	verbose bool

	// Logger
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "shapedemo",
	Short: "shapedemo - polymorphic dispatch scenarios over three storage strategies",
	Long: `shapedemo builds Shape/Oval/Circle variants, stores them by value,
behind exclusive-ownership handles, and behind shared handles, then invokes
Describe through each storage strategy.

Value slots narrow to the base variant; handle slots keep the most-derived
identity. The transcripts make the difference visible.

Run without arguments to execute the built-in gallery scenario.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		if verbose {
			config = zap.NewDevelopmentConfig()
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runScenario(demo.DefaultScenario())
	},
}

// runCmd executes a scenario loaded from a YAML file
var runCmd = &cobra.Command{
	Use:   "run [scenario.yaml]",
	Short: "Run a YAML-defined dispatch scenario",
	Long: `Loads a scenario file listing shapes (kind, name, dimensions) and
storage strategies, then runs it end to end.

Example:
  shapedemo run scenarios/gallery.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sc, err := demo.LoadScenarioFile(args[0])
		if err != nil {
			return err
		}
		return runScenario(sc)
	},
}

// kindsCmd lists the registered variant kinds
var kindsCmd = &cobra.Command{
	Use:   "kinds",
	Short: "List the variant kinds the built-in registry can construct",
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, k := range demo.DefaultOptions().Registry.Kinds() {
			fmt.Println(k)
		}
		return nil
	},
}

// runScenario executes sc and prints its transcripts in strategy order.
func runScenario(sc demo.Scenario) error {
	report, err := demo.Run(sc, demo.WithLogger(logger))
	if err != nil {
		return err
	}

	fmt.Printf("scenario: %s\n", report.Scenario)
	for _, strategy := range report.Strategies {
		fmt.Printf("\n[%s]\n", strategy)
		for _, line := range report.Transcripts[strategy] {
			fmt.Println(line)
		}
	}
	if len(report.Released) > 0 {
		fmt.Printf("\nowned instances released: %d\n", len(report.Released))
	}

	return nil
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(kindsCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
