package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"vocatest/internal/config"
)

// Exit codes for CLI commands.
const (
	// ExitCodeSuccess indicates successful execution: every executed test
	// category passed (or no categories ran).
	ExitCodeSuccess = 0
	// ExitCodeError indicates failure: a failed environment check, at
	// least one failed test category, or an interrupted run.
	ExitCodeError = 1
)

var (
	flagConfig     string
	flagCategories []string
	flagVerbose    bool
	flagBenchmark  bool
	flagCheckEnv   bool
	flagCleanup    bool
)

// rootCmd represents the base command for the vocatest application.
// The test run itself is the root command; version and self-update are the
// only subcommands.
var rootCmd = &cobra.Command{
	Use:   "vocatest",
	Short: "Test orchestrator for the vocabulary learning app",
	Long: `vocatest drives the vocabulary learning app's test suite: it verifies
the environment, executes pytest test categories against the running
API, benchmarks response times and memory usage, and aggregates the
results into console and JSON reports.`,
	// SilenceUsage prevents Cobra from printing the usage message on errors
	// that are handled by the application.
	SilenceUsage: true,
	RunE:         runRoot,
}

// SetVersion sets the version for the root command.
// This function is typically called from the main package to inject the
// application version at build time.
func SetVersion(v string) {
	rootCmd.Version = v
}

// GetVersion returns the current version of the application.
func GetVersion() string {
	return rootCmd.Version
}

// Execute is the main entry point for the CLI application.
// It is called by main.main().
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "vocatest version %s\n" .Version}}`)
	rootCmd.SilenceErrors = true

	err := rootCmd.Execute()
	if err != nil {
		// Errors wrapped in errReported were already printed by the run.
		if !errors.Is(err, errReported) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(ExitCodeError)
	}
}

func init() {
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newSelfUpdateCmd())

	rootCmd.Flags().StringVar(&flagConfig, "config", config.DefaultConfigFile, "Test configuration file")
	rootCmd.Flags().StringSliceVar(&flagCategories, "categories", nil, "Test categories to run (unit, integration, api, performance, security)")
	rootCmd.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "Verbose output")
	rootCmd.Flags().BoolVarP(&flagBenchmark, "benchmark", "b", false, "Run performance benchmarks")
	rootCmd.Flags().BoolVar(&flagCheckEnv, "check-env", false, "Only check environment and exit")
	rootCmd.Flags().BoolVar(&flagCleanup, "cleanup", false, "Clean up test environment")
}
