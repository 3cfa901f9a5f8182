// lakatos is the planning layer of an inductive program-search system. It
// compiles a declarative bias vocabulary into a predicate catalog, orders
// rule bodies into binding-safe execution sequences, and enumerates the
// shape configurations the outer iterative-deepening search will attempt.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"lakatos/internal/bias"
	"lakatos/internal/catalog"
	"lakatos/internal/config"
	"lakatos/internal/profile"
)

var (
	// Global flags
	verbose      bool
	quiet        bool
	showStats    bool
	settingsFile string
	maxLiterals  int
	maxBody      int
	maxVars      int
	maxRules     int
	runTimeout   time.Duration
	useDatalog   bool
	noBias       bool
	orderSpace   bool

	// Logger and run-wide instrumentation
	logger *zap.Logger
	stats  *profile.Stats
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "lakatos",
	Short: "lakatos - planning core for inductive program search",
	Long: `lakatos is the planning layer of an inductive logic-program search
system. It compiles bias declarations into cached lookup structures,
schedules rule bodies into deterministic binding-safe order, enumerates
the search-space configurations for iterative deepening, and
canonicalizes candidate programs for deduplication and subsumption.

The hypothesis generation, grounding and evaluation stages are external
collaborators; lakatos produces the ordering and canonicalization
services they call into.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := zap.NewProductionConfig()
		if verbose {
			cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		if quiet {
			cfg.Level = zap.NewAtomicLevelAt(zapcore.ErrorLevel)
		}
		var err error
		logger, err = cfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		stats = profile.New()
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if showStats && stats != nil {
			fmt.Println(stats.Render())
		}
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "print debugging information")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "hide information during planning")
	rootCmd.PersistentFlags().BoolVar(&showStats, "stats", false, "print statistics at end of execution")
	rootCmd.PersistentFlags().StringVar(&settingsFile, "settings", "", "YAML settings file overlaying the defaults")
	rootCmd.PersistentFlags().IntVar(&maxLiterals, "max-literals", config.DefaultMaxLiterals, "maximum number of literals allowed in a program")
	rootCmd.PersistentFlags().IntVar(&maxBody, "max-body", config.DefaultMaxBody, "maximum number of body literals allowed in a rule")
	rootCmd.PersistentFlags().IntVar(&maxVars, "max-vars", config.DefaultMaxVars, "maximum number of variables allowed in a rule")
	rootCmd.PersistentFlags().IntVar(&maxRules, "max-rules", config.DefaultMaxRules, "maximum number of rules allowed in a recursive program")
	rootCmd.PersistentFlags().DurationVar(&runTimeout, "timeout", config.DefaultTimeout, "overall timeout")
	rootCmd.PersistentFlags().BoolVar(&useDatalog, "datalog", false, "use recall to order literals in rules")
	rootCmd.PersistentFlags().BoolVar(&noBias, "no-bias", false, "do not use language bias when sweeping the search space")
	rootCmd.PersistentFlags().BoolVar(&orderSpace, "order-space", false, "order the search space by estimated size")
}

// loadSettings resolves the run settings: defaults, then the optional YAML
// overlay, then explicit flag values.
func loadSettings(cmd *cobra.Command) (config.Settings, error) {
	settings := config.Default()
	if settingsFile != "" {
		loaded, err := config.Load(settingsFile)
		if err != nil {
			return settings, err
		}
		settings = loaded
	}
	if cmd.Flags().Changed("max-literals") {
		settings.MaxLiterals = maxLiterals
	}
	if cmd.Flags().Changed("max-body") {
		settings.MaxBody = maxBody
	}
	if cmd.Flags().Changed("max-vars") {
		settings.MaxVars = maxVars
	}
	if cmd.Flags().Changed("max-rules") {
		settings.MaxRules = maxRules
	}
	if cmd.Flags().Changed("timeout") {
		settings.Timeout = config.Duration(runTimeout)
	}
	settings.Datalog = settings.Datalog || useDatalog
	settings.NoBias = settings.NoBias || noBias
	settings.OrderSpace = settings.OrderSpace || orderSpace
	settings.ShowStats = settings.ShowStats || showStats
	settings.Quiet = settings.Quiet || quiet
	settings.Debug = settings.Debug || verbose
	return settings, nil
}

// buildCatalog loads and compiles the bias file. Configuration errors here
// are fatal: they are reported once and the process exits non-zero.
func buildCatalog(path string, settings config.Settings) (*catalog.Catalog, error) {
	defer stats.Duration("catalog")()

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open bias file: %w", err)
	}
	defer f.Close()

	facts, err := bias.Parse(f)
	if err != nil {
		return nil, err
	}
	return catalog.Build(facts, catalog.Options{
		MaxBody:  settings.MaxBody,
		MaxVars:  settings.MaxVars,
		MaxRules: settings.MaxRules,
	}, logger)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
