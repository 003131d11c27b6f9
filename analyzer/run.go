package analyzer

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/multierr"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/viant/depgraph/model"
)

// Option configures a Run, following the teacher's functional-option idiom.
type Option func(*runConfig)

type runConfig struct {
	analyzers []Analyzer
	logger    *zap.Logger
}

// Default returns the five analyzers named in spec §2, in a fixed order
// (order only affects candidate-slice concatenation; final ordering for
// admission is decided by the conflict resolver, not by this order).
func Default() []Analyzer {
	return []Analyzer{
		ParameterFlow{},
		CRUD{},
		Logical{},
		NestedResource{},
		Constraint{},
	}
}

// WithAnalyzers overrides the analyzer set, e.g. to disable one under test.
func WithAnalyzers(analyzers ...Analyzer) Option {
	return func(c *runConfig) { c.analyzers = analyzers }
}

// WithLogger attaches a zap.Logger for per-analyzer failure/debug logging.
func WithLogger(logger *zap.Logger) Option {
	return func(c *runConfig) { c.logger = logger }
}

// Result is the outcome of running every analyzer once.
type Result struct {
	Candidates []*Candidate
	// Failed names the analyzers that returned an error or panicked; each
	// is isolated and does not cancel its siblings (§7 AnalyzerFailure).
	Failed error
}

// Run executes every configured analyzer concurrently over the shared,
// read-only operation slice (§5: analyzers may parallelize within a
// stage), recovering a panicking analyzer into an AnalyzerFailure rather
// than letting it take down the build.
func Run(ctx context.Context, ops []*model.Operation, opts ...Option) Result {
	cfg := &runConfig{analyzers: Default(), logger: zap.NewNop()}
	for _, opt := range opts {
		opt(cfg)
	}
	if err := ctx.Err(); err != nil {
		return Result{Failed: err}
	}

	results := make([][]*Candidate, len(cfg.analyzers))
	var (
		g        errgroup.Group
		mu       sync.Mutex
		failures error
	)

	for i, a := range cfg.analyzers {
		i, a := i, a
		g.Go(func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					err = fmt.Errorf("analyzer %s panicked: %v", a.Name(), r)
				}
				if err != nil {
					mu.Lock()
					failures = multierr.Append(failures, err)
					mu.Unlock()
					cfg.logger.Warn("analyzer failed; isolating and continuing", zap.Error(err))
				}
			}()
			candidates, runErr := a.Analyze(ops)
			if runErr != nil {
				return fmt.Errorf("analyzer %s: %w", a.Name(), runErr)
			}
			results[i] = candidates
			return nil
		})
	}
	// every goroutine above also appends its own error to `failures`; the
	// group has no context, so one analyzer failing never cancels or
	// discards a sibling's results. g.Wait() returns only the first error,
	// which `failures` already holds, so its return is ignored.
	_ = g.Wait()

	var out []*Candidate
	for _, r := range results {
		out = append(out, r...)
	}
	return Result{Candidates: out, Failed: failures}
}
