package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"pksave/internal/profile"
	"pksave/internal/savefile"
)

var (
	verbose     bool
	profilePath string
	forceSlot   int

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "pksave",
	Short: "Inspect generation-III GBA save images",
	Long: `pksave reads 128 KiB flash save images, validates their sectors,
picks the active save slot and decodes the trainer and party data.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&profilePath, "profile", "", "YAML game profile (default: vanilla Emerald)")
	rootCmd.PersistentFlags().IntVar(&forceSlot, "slot", 0, "force active slot 1 or 2 instead of using counters")

	rootCmd.AddCommand(inspectCmd, sectorsCmd, scanCmd)
}

func loadProfile() (*profile.Profile, error) {
	if profilePath == "" {
		return profile.Vanilla(), nil
	}
	return profile.Load(profilePath)
}

func newParser() (*savefile.Parser, error) {
	prof, err := loadProfile()
	if err != nil {
		return nil, err
	}
	var opts []savefile.Option
	if forceSlot != 0 {
		opts = append(opts, savefile.ForceSlot(forceSlot))
	}
	return savefile.NewParser(prof, logger, opts...), nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
