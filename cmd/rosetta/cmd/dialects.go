package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var dialectsCmd = &cobra.Command{
	Use:   "dialects",
	Short: "List the dialects of the loaded system dictionary",
	RunE:  runDialects,
}

func init() {
	rootCmd.AddCommand(dialectsCmd)
}

func runDialects(cmd *cobra.Command, args []string) error {
	registry, err := loadRegistry()
	if err != nil {
		return err
	}

	for _, dialect := range registry.Dialects() {
		fmt.Println(dialect)
	}

	return nil
}
