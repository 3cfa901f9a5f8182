// Package config holds the run-level settings object. Settings are built
// explicitly (defaults, optional YAML overlay, CLI flags) and passed down
// into the catalog, scheduler and enumerator; there is no process-wide
// singleton.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Defaults for every bound and timeout the planner knows about.
const (
	DefaultTimeout        = 600 * time.Second
	DefaultEvalTimeout    = time.Millisecond
	DefaultAnytimeTimeout = 10 * time.Second

	DefaultMaxLiterals  = 40
	DefaultMaxSolutions = 1
	DefaultMaxRules     = 2
	DefaultMaxVars      = 6
	DefaultMaxBody      = 6
	DefaultMaxExamples  = 10000
	DefaultBatchSize    = 20000

	DefaultSolver = "rc2"
)

// Duration is a time.Duration that decodes from YAML strings like "30s"
// or from plain integer seconds.
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err == nil {
		parsed, err := time.ParseDuration(s)
		if err != nil {
			return fmt.Errorf("invalid duration %q: %w", s, err)
		}
		*d = Duration(parsed)
		return nil
	}
	var seconds float64
	if err := value.Decode(&seconds); err != nil {
		return fmt.Errorf("invalid duration %v", value.Value)
	}
	*d = Duration(time.Duration(seconds * float64(time.Second)))
	return nil
}

// Std returns the wrapped time.Duration.
func (d Duration) Std() time.Duration { return time.Duration(d) }

// Settings is the run configuration. Solver fields are opaque names handed
// to the external combine stage; the planner never interprets them.
type Settings struct {
	KBPath   string `yaml:"kbpath"`
	BKFile   string `yaml:"bk_file"`
	ExFile   string `yaml:"ex_file"`
	BiasFile string `yaml:"bias_file"`

	Timeout        Duration `yaml:"timeout"`
	EvalTimeout    Duration `yaml:"eval_timeout"`
	AnytimeTimeout Duration `yaml:"anytime_timeout"`

	MaxLiterals int `yaml:"max_literals"`
	MaxBody     int `yaml:"max_body"`
	MaxVars     int `yaml:"max_vars"`
	MaxRules    int `yaml:"max_rules"`
	MaxExamples int `yaml:"max_examples"`
	BatchSize   int `yaml:"batch_size"`

	Noisy          bool `yaml:"noisy"`
	BKCons         bool `yaml:"bkcons"`
	ShowStats      bool `yaml:"stats"`
	Quiet          bool `yaml:"quiet"`
	Debug          bool `yaml:"debug"`
	ShowCons       bool `yaml:"showcons"`
	FunctionalTest bool `yaml:"functional_test"`

	// Datalog selects recall-directed literal ordering.
	Datalog bool `yaml:"datalog"`
	// NoBias widens the search-space sweep to unbiased shape ranges.
	NoBias bool `yaml:"no_bias"`
	// OrderSpace sorts the search order by estimated space size.
	OrderSpace bool `yaml:"order_space"`

	Solver        string `yaml:"solver"`
	AnytimeSolver string `yaml:"anytime_solver"`
}

// Default returns the baseline settings.
func Default() Settings {
	return Settings{
		Timeout:        Duration(DefaultTimeout),
		EvalTimeout:    Duration(DefaultEvalTimeout),
		AnytimeTimeout: Duration(DefaultAnytimeTimeout),
		MaxLiterals:    DefaultMaxLiterals,
		MaxBody:        DefaultMaxBody,
		MaxVars:        DefaultMaxVars,
		MaxRules:       DefaultMaxRules,
		MaxExamples:    DefaultMaxExamples,
		BatchSize:      DefaultBatchSize,
		Solver:         DefaultSolver,
	}
}

// Load overlays a YAML settings file on the defaults. Fields absent from
// the file keep their default values.
func Load(path string) (Settings, error) {
	settings := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return settings, fmt.Errorf("load settings: %w", err)
	}
	if err := yaml.Unmarshal(data, &settings); err != nil {
		return settings, fmt.Errorf("parse settings %s: %w", path, err)
	}
	if settings.KBPath != "" {
		settings.ResolveKB(settings.KBPath)
	}
	return settings, nil
}

// ResolveKB fills the background-knowledge, example and bias file paths
// from a knowledge-base directory, keeping any path already set
// explicitly.
func (s *Settings) ResolveKB(kbpath string) {
	s.KBPath = kbpath
	if s.BKFile == "" {
		s.BKFile = filepath.Join(kbpath, "bk.pl")
	}
	if s.ExFile == "" {
		s.ExFile = filepath.Join(kbpath, "exs.pl")
	}
	if s.BiasFile == "" {
		s.BiasFile = filepath.Join(kbpath, "bias.pl")
	}
}
