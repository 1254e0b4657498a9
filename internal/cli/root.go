// Package cli implements zalias's command-line subcommands.
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/zarlcorp/zalias/internal/config"
	"github.com/zarlcorp/zalias/internal/mailcow"
)

var (
	cfgPath string
	debug   bool
)

var rootCmd = &cobra.Command{
	Use:   "zalias",
	Short: "Manage mailcow aliases with generated usernames",
	Long: `zalias manages aliases on a mailcow instance. New aliases get their
usernames from a configurable template, so addresses never have to be
invented on the spot.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if debug {
			slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			})))
		}
	},
}

// Execute runs the root command with the build version.
func Execute(ctx context.Context, version string) error {
	rootCmd.Version = version
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "",
		"config file (default ~/.config/zalias/config.yaml, or ZALIAS_CONFIG)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
}

// loadConfig reads the config file, writing a starter file on first run.
func loadConfig() (*config.Config, error) {
	path := cfgPath
	if path == "" {
		path = config.DefaultPath()
	}

	cfg, created, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if created {
		return nil, fmt.Errorf("wrote starter config to %s; set instance and api_key before continuing", path)
	}
	return cfg, nil
}

// clientFor builds a mailcow client for the profile.
func clientFor(p config.Profile) (*mailcow.Client, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return mailcow.NewClient(mailcow.Config{
		Instance:  p.Instance,
		APIKey:    p.APIKey,
		ForceIPv4: p.ForceIPv4,
	}), nil
}

// parseAliasIDs converts command arguments to alias IDs.
func parseAliasIDs(args []string) ([]int, error) {
	ids := make([]int, 0, len(args))
	for _, arg := range args {
		id, err := strconv.Atoi(arg)
		if err != nil {
			return nil, fmt.Errorf("alias id %q is not a number", arg)
		}
		ids = append(ids, id)
	}
	return ids, nil
}
