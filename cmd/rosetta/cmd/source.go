package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/rosetta/core/rosetta"
)

var sourceCmd = &cobra.Command{
	Use:   "source <term>...",
	Short: "Resolve canonical terms to dialect source terms",
	Long: `Resolves one or more canonical terms back to dialect-specific
source terms. Without a prior forward resolution in the same process
this is the first synonym listed in the dictionary.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSource,
}

func init() {
	rootCmd.AddCommand(sourceCmd)
}

func runSource(cmd *cobra.Command, args []string) error {
	registry, err := loadRegistry()
	if err != nil {
		return err
	}

	dialect := rosetta.Dialect(dialectName)

	for _, term := range args {
		source, err := registry.Source(term, dialect)
		if err != nil {
			logger.LogError(err)
			return err
		}
		fmt.Printf("%s\t%s\n", term, source)
	}

	return nil
}
