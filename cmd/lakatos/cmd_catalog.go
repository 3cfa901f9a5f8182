package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"lakatos/internal/bias"
)

// catalogCmd compiles a bias file and describes the resulting catalog.
var catalogCmd = &cobra.Command{
	Use:   "catalog <bias-file>",
	Short: "Compile a bias file and describe the predicate catalog",
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

		fmt.Printf("head: %s/%d\n", cat.HeadPred, cat.HeadArity)
		fmt.Printf("max_body: %d  max_vars: %d  max_rules: %d  max_arity: %d\n",
			cat.MaxBody, cat.MaxVars, cat.MaxRules, cat.MaxArity)
		fmt.Printf("recursion: %v  invention: %v  single_solve: %v\n",
			cat.RecursionEnabled, cat.InventionEnabled, cat.SingleSolve)

		decls := make([]bias.PredDecl, 0, len(cat.BodyPreds))
		for decl := range cat.BodyPreds {
			decls = append(decls, decl)
		}
		sort.Slice(decls, func(i, j int) bool {
			if decls[i].Symbol != decls[j].Symbol {
				return decls[i].Symbol < decls[j].Symbol
			}
			return decls[i].Arity < decls[j].Arity
		})
		for _, decl := range decls {
			line := fmt.Sprintf("body_pred: %s/%d", decl.Symbol, decl.Arity)
			if modes, ok := cat.Modes[decl.Symbol]; ok {
				spelled := make([]string, len(modes))
				for i, m := range modes {
					spelled[i] = m.String()
				}
				line += fmt.Sprintf("  modes=(%s)", strings.Join(spelled, ","))
			}
			if types, ok := cat.BodyTypes[decl.Symbol]; ok {
				line += fmt.Sprintf("  types=(%s)", strings.Join(types, ","))
			}
			fmt.Println(line)
		}
		if len(cat.HeadTypes) > 0 {
			fmt.Printf("head types: (%s)\n", strings.Join(cat.HeadTypes, ","))
		}
		fmt.Printf("cached argument tuples: %d\n", len(cat.ArgPerms))
		fmt.Printf("cached literal templates: %d\n", len(cat.Templates))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(catalogCmd)
}
