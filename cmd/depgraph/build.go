package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/viant/depgraph"
	"github.com/viant/depgraph/buildreport"
	"github.com/viant/depgraph/config"
	"github.com/viant/depgraph/export"
	"github.com/viant/depgraph/openapi"
)

var outDir string

var buildCmd = &cobra.Command{
	Use:   "build <spec>",
	Short: "Run the pipeline once and write the graph/annotation artifacts",
	Args:  cobra.ExactArgs(1),
	RunE:  runBuild,
}

func init() {
	buildCmd.Flags().StringVarP(&outDir, "out", "o", ".", "output directory for build artifacts")
}

func runBuild(cmd *cobra.Command, args []string) error {
	result, cfg, err := buildOnce(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	if err := writeArtifacts(result, cfg, outDir); err != nil {
		return err
	}
	if err := writeAnnotated(filepath.Join(outDir, "annotated.openapi.yaml"), result); err != nil {
		return err
	}
	printSummary(result.Report)
	return nil
}

// buildOnce loads --config, runs depgraph.Build, and optionally records
// the result in the --history database.
func buildOnce(ctx context.Context, loc string) (*depgraph.Result, *config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, err
	}

	result, err := depgraph.Build(ctx, openapi.NewFileSource(), loc, depgraph.WithConfig(cfg), depgraph.WithLogger(logger))
	if err != nil {
		return nil, nil, err
	}

	if historyPath != "" {
		h, err := buildreport.OpenHistory(historyPath)
		if err != nil {
			return nil, nil, err
		}
		defer h.Close()
		if err := h.Record(result.Report); err != nil {
			return nil, nil, err
		}
	}

	return result, cfg, nil
}

func writeArtifacts(result *depgraph.Result, cfg *config.Config, dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating output directory %s: %w", dir, err)
	}

	doc := export.Graph(result.Graph)
	if err := writeJSON(filepath.Join(dir, "graph.json"), doc); err != nil {
		return err
	}

	if cfg.Output.EmitDOT {
		if err := os.WriteFile(filepath.Join(dir, "graph.dot"), []byte(export.DOT(result.Graph)), 0o644); err != nil {
			return fmt.Errorf("writing graph.dot: %w", err)
		}
	}
	if cfg.Output.EmitGraphML {
		if err := os.WriteFile(filepath.Join(dir, "graph.graphml"), []byte(export.GraphML(result.Graph)), 0o644); err != nil {
			return fmt.Errorf("writing graph.graphml: %w", err)
		}
	}

	return nil
}

func writeJSON(path string, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

func writeAnnotated(path string, result *depgraph.Result) error {
	annotated := result.Document.Annotate(result.Graph)
	data, err := yaml.Marshal(annotated)
	if err != nil {
		return fmt.Errorf("encoding annotated document: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

var (
	summaryTitle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63"))
	summaryLine  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	summaryWarn  = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
)

func printSummary(r *buildreport.Report) {
	fmt.Println(summaryTitle.Render(fmt.Sprintf("build %s — %d operations", r.ID, r.NumOperations)))
	for _, line := range r.Summary() {
		fmt.Println(summaryLine.Render("  " + line))
	}
	if r.CycleRejections > 0 {
		fmt.Println(summaryWarn.Render(fmt.Sprintf("  %d candidate edge(s) rejected as cycles", r.CycleRejections)))
	}
	if len(r.AnalyzerFailures) > 0 {
		fmt.Println(summaryWarn.Render(fmt.Sprintf("  %d analyzer failure(s), isolated and skipped", len(r.AnalyzerFailures))))
	}
	if len(r.ReferenceWarnings) > 0 {
		fmt.Println(summaryWarn.Render(fmt.Sprintf("  %d unresolved $ref warning(s)", len(r.ReferenceWarnings))))
	}
}
