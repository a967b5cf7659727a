package cmd

import (
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/msto63/rosetta/core/dictionary"
	"github.com/msto63/rosetta/core/log"
	"github.com/msto63/rosetta/core/rosetta"
)

var (
	dictionaryPath string
	systemName     string
	dialectName    string
	logFormat      string
	verbose        bool

	logger *log.Logger
)

var rootCmd = &cobra.Command{
	Use:   "rosetta",
	Short: "Bidirectional term translation across system dialects",
	Long: `rosetta resolves dialect-specific source terms to canonical terms
and back, using the dictionary configured for a system.

Lookups are bidirectional: a forward resolution remembers which source
term was observed, so a later reverse lookup for the same canonical term
returns that term instead of the dictionary default.`,
	PersistentPreRunE: setupLogger,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dictionaryPath, "dictionary", "", "Dictionary file (default: ./dictionaries.toml, then packaged assets)")
	rootCmd.PersistentFlags().StringVarP(&systemName, "system", "s", "", "System to load the dictionary for")
	rootCmd.PersistentFlags().StringVarP(&dialectName, "dialect", "d", "", "Dialect to resolve terms in")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text", "Log output format (text, json)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")
}

// setupLogger builds the per-invocation logger with a correlation ID
func setupLogger(cmd *cobra.Command, args []string) error {
	format, err := log.ParseFormat(logFormat)
	if err != nil {
		return err
	}

	level := log.LevelWarn
	if verbose {
		level = log.LevelDebug
	}

	logger = log.NewWithConfig(log.Config{
		Level:  level,
		Format: format,
		Name:   "rosetta-cli",
	}).WithCorrelationID(uuid.NewString())

	return nil
}

// loadRegistry wires discovery and registry load for the lookup commands
func loadRegistry() (*rosetta.Registry, error) {
	registry, err := dictionary.NewRegistry(rosetta.SystemType(systemName), dictionaryPath)
	if err != nil {
		logger.LogError(err)
		return nil, err
	}

	logger.Debug("dictionary loaded", log.Fields{
		"system":   registry.System().ShortName(),
		"dialects": len(registry.Dialects()),
	})

	return registry, nil
}
