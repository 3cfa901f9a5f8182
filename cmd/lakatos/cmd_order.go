package main

import (
	"errors"
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"lakatos/internal/bias"
	"lakatos/internal/rule"
	"lakatos/internal/schedule"
)

// orderCmd schedules the bodies of candidate rules read from a file.
var orderCmd = &cobra.Command{
	Use:   "order <bias-file> <rules-file>",
	Short: "Reorder rule bodies into binding-safe execution order",
	Long: `Reads candidate rules in clause syntax, attaches binding modes from the
bias catalog, and prints each rule with its body in a deterministic,
binding-safe order. Rules whose bodies cannot be grounded are logged as
warnings and dropped from the output; they do not fail the run.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := loadSettings(cmd)
		if err != nil {
			return err
		}
		cat, err := buildCatalog(args[0], settings)
		if err != nil {
			return err
		}

		f, err := os.Open(args[1])
		if err != nil {
			return fmt.Errorf("open rules file: %w", err)
		}
		defer f.Close()

		rules, err := bias.ParseRules(f, cat.ModeSource)
		if err != nil {
			return err
		}

		var orderer schedule.Orderer
		if settings.Datalog {
			orderer = schedule.NewRecallOrderer(cat.RecallScore, logger)
		} else {
			orderer = schedule.NewModeOrderer(logger)
		}

		// Each rule schedules independently; the batch fans out across
		// cores and results keep input order.
		ordered := make([]*rule.Rule, len(rules))
		g := new(errgroup.Group)
		g.SetLimit(runtime.GOMAXPROCS(0))
		for i, r := range rules {
			g.Go(func() error {
				defer stats.Duration("order")()
				out, err := orderer.OrderRule(r)
				if err != nil {
					var gerr *schedule.GroundingError
					if errors.As(err, &gerr) {
						return nil // already logged; drop the rule
					}
					return err
				}
				ordered[i] = &out
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return err
		}

		kept := 0
		for _, r := range ordered {
			if r == nil {
				continue
			}
			fmt.Println(r)
			kept++
		}
		stats.AddPrograms(kept)
		logger.Debug("rules ordered", zap.Int("input", len(rules)), zap.Int("kept", kept))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(orderCmd)
}
