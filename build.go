// Package depgraph is the end-to-end orchestrator named in SPEC_FULL §2:
// it wires the OpenAPI reader, the analyzer stage, the serial graph
// pipeline (conflict resolution, DAG construction, transitive reduction)
// and the build-report/export layers into a single Build call, owning
// the concerns spec.md leaves to "downstream tooling" — logging,
// configuration, and reporting.
package depgraph

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/viant/depgraph/analyzer"
	"github.com/viant/depgraph/buildreport"
	"github.com/viant/depgraph/config"
	"github.com/viant/depgraph/graph"
	"github.com/viant/depgraph/openapi"
	"github.com/viant/depgraph/workspace"
)

// Result is the complete outcome of one Build call: the reduced graph
// ready for the query surface and export, plus its build report.
type Result struct {
	Graph    *graph.Graph
	Report   *buildreport.Report
	Document *openapi.Document
}

// Option configures a Build call.
type Option func(*buildConfig)

type buildConfig struct {
	cfg    *config.Config
	logger *zap.Logger
}

// WithConfig overrides the engine-tunable knobs (§6.4); defaults to
// config.Default() when omitted.
func WithConfig(cfg *config.Config) Option {
	return func(c *buildConfig) { c.cfg = cfg }
}

// WithLogger attaches a zap.Logger for analyzer-failure/debug output.
func WithLogger(logger *zap.Logger) Option {
	return func(c *buildConfig) { c.logger = logger }
}

// Build runs the full pipeline once over the document at loc, loaded
// through src. It returns a fatal error only for the conditions §7
// classifies as fatal (InputError, OperationIDCollision); everything
// else (reference warnings, cycle rejections, isolated analyzer
// failures) is captured in Result.Report instead of aborting the build.
func Build(ctx context.Context, src openapi.Source, loc string, opts ...Option) (*Result, error) {
	cfg := &buildConfig{cfg: config.Default(), logger: zap.NewNop()}
	for _, opt := range opts {
		opt(cfg)
	}

	doc, err := src.Load(ctx, loc)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", loc, err)
	}

	ops, err := openapi.Extract(doc, openapi.Options{IgnoreSegments: cfg.cfg.IgnoreSegmentSet()})
	if err != nil {
		return nil, fmt.Errorf("extracting operations from %s: %w", loc, err)
	}

	analyzed := analyzer.Run(ctx, ops, analyzer.WithLogger(cfg.logger))

	g, build, reduced := graph.Assemble(ops, analyzed.Candidates)

	mod, err := workspace.Detect(loc)
	if err != nil {
		cfg.logger.Debug("workspace detection failed", zap.Error(err))
	}

	report, err := buildreport.New(g, build, reduced, analyzed.Failed, doc.Warnings, mod)
	if err != nil {
		return nil, fmt.Errorf("computing build report: %w", err)
	}

	return &Result{Graph: g, Report: report, Document: doc}, nil
}
