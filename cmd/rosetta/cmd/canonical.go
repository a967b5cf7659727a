package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/rosetta/core/rosetta"
)

var canonicalCmd = &cobra.Command{
	Use:   "canonical <term>...",
	Short: "Resolve source terms to their canonical forms",
	Long: `Resolves one or more dialect-specific source terms to their
canonical forms. Matching is exact and case-sensitive; the first
canonical entry whose synonym list contains the term wins.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCanonical,
}

func init() {
	rootCmd.AddCommand(canonicalCmd)
}

func runCanonical(cmd *cobra.Command, args []string) error {
	registry, err := loadRegistry()
	if err != nil {
		return err
	}

	dialect := rosetta.Dialect(dialectName)

	for _, term := range args {
		canonical, err := registry.Canonical(term, dialect)
		if err != nil {
			logger.LogError(err)
			return err
		}
		fmt.Printf("%s\t%s\n", term, canonical)
	}

	return nil
}
