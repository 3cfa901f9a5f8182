package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"lakatos/internal/space"
)

// planCmd prints the search-order table for a bias file.
var planCmd = &cobra.Command{
	Use:   "plan <bias-file>",
	Short: "Enumerate the search-space configurations for iterative deepening",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := loadSettings(cmd)
		if err != nil {
			return err
		}
		cat, err := buildCatalog(args[0], settings)
		if err != nil {
			return err
		}

		defer stats.Duration("plan")()
		entries := space.Enumerate(space.Options{
			MaxLiterals:   settings.MaxLiterals,
			MaxVars:       cat.MaxVars,
			MaxRules:      cat.MaxRules,
			MaxBody:       cat.MaxBody,
			MaxArity:      cat.MaxArity,
			BodyPredCount: len(cat.BodyPreds),
			NoBias:        settings.NoBias,
			OrderBySpace:  settings.OrderSpace,
		})
		for _, entry := range entries {
			fmt.Println(entry)
		}
		logger.Debug("search order enumerated", zap.Int("configurations", len(entries)))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(planCmd)
}
