// Package config loads the engine-tunable knobs named in SPEC_FULL §6.4:
// the resource_type ignore-segment hook the design notes ask implementers
// to expose, an x-operation-annotation confidence threshold value, and the
// optional secondary export sinks. Precedence follows the pack's TOML
// config convention: env (DEPGRAPH_*) > file > built-in defaults. No
// command-line flag overrides an individual knob; the CLI's --config flag
// only selects the file.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
)

// Config is the full set of engine-tunable knobs.
type Config struct {
	Resource   ResourceConfig   `toml:"resource"`
	Confidence ConfidenceConfig `toml:"confidence"`
	Output     OutputConfig     `toml:"output"`
}

// ResourceConfig addresses the resource_type Open Question (§9): path
// segments to exclude when deriving resource_type, for query-only/search
// endpoints where the last segment isn't a meaningful resource name.
type ResourceConfig struct {
	IgnoreSegments []string `toml:"ignore_segments"`
}

// ConfidenceConfig holds a dep-operations threshold for the
// x-operation-annotation extension (§6). The value is loaded and
// overridable, but nothing reads it: export.OperationAnnotations applies
// its own fixed 0.7 threshold regardless of this setting.
type ConfidenceConfig struct {
	MinDependencyAnnotation float64 `toml:"min_dependency_annotation"`
}

// OutputConfig toggles the unspecified secondary export sinks (§6).
type OutputConfig struct {
	EmitDOT     bool `toml:"emit_dot"`
	EmitGraphML bool `toml:"emit_graphml"`
}

// Default returns the built-in defaults, used when no file or env
// override applies.
func Default() *Config {
	return &Config{
		Resource: ResourceConfig{
			IgnoreSegments: []string{"search", "query"},
		},
		Confidence: ConfidenceConfig{
			MinDependencyAnnotation: 0.7,
		},
		Output: OutputConfig{
			EmitDOT:     false,
			EmitGraphML: false,
		},
	}
}

// Load builds a Config from defaults, an optional TOML file, and
// DEPGRAPH_* environment variables, in that increasing-precedence order.
// path may be empty, in which case only env/defaults apply.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, fmt.Errorf("reading config file %s: %w", path, err)
		}
	}
	cfg.applyEnv()
	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv("DEPGRAPH_IGNORE_SEGMENTS"); v != "" {
		c.Resource.IgnoreSegments = strings.Split(v, ",")
	}
	if v := os.Getenv("DEPGRAPH_MIN_DEPENDENCY_ANNOTATION"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			c.Confidence.MinDependencyAnnotation = f
		}
	}
	if v := os.Getenv("DEPGRAPH_EMIT_DOT"); v != "" {
		c.Output.EmitDOT = v == "true" || v == "1"
	}
	if v := os.Getenv("DEPGRAPH_EMIT_GRAPHML"); v != "" {
		c.Output.EmitGraphML = v == "true" || v == "1"
	}
}

// IgnoreSegmentSet returns ResourceConfig.IgnoreSegments as the
// lower-cased set shape openapi.Options.IgnoreSegments expects.
func (c *Config) IgnoreSegmentSet() map[string]bool {
	out := make(map[string]bool, len(c.Resource.IgnoreSegments))
	for _, seg := range c.Resource.IgnoreSegments {
		out[strings.ToLower(seg)] = true
	}
	return out
}
