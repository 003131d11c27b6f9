// Command depgraph is the thin CLI driver around the inference core
// (SPEC_FULL §6.2): it selects an input spec and an output directory and
// is not itself part of the core.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	verbose    bool
	configPath string
	historyPath string

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "depgraph",
	Short: "Infer an operation dependency DAG from an OpenAPI v3 document",
	Long: `depgraph statically analyzes an OpenAPI v3 specification and produces
a minimized, acyclic dependency graph over its HTTP operations, for
downstream test-sequence generation, fuzzing, and API exploration.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := zap.NewProductionConfig()
		if verbose {
			cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = cfg.Build()
		if err != nil {
			return fmt.Errorf("initializing logger: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a depgraph TOML config file")
	rootCmd.PersistentFlags().StringVar(&historyPath, "history", "", "optional sqlite build-history database path")

	rootCmd.AddCommand(buildCmd, serveCmd, watchCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
