package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/zarlcorp/zalias/internal/mailcow"
)

var enableGoto string

var enableCmd = &cobra.Command{
	Use:   "enable <id>...",
	Short: "Restore delivery for aliases",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runEnable,
}

func init() {
	rootCmd.AddCommand(enableCmd)
	enableCmd.Flags().StringVarP(&enableGoto, "goto", "g", "", "forward address (default from config)")
}

func runEnable(cmd *cobra.Command, args []string) error {
	ids, err := parseAliasIDs(args)
	if err != nil {
		return err
	}
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	client, err := clientFor(cfg.ProfileFor(cfg.RelayDomain))
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	for _, id := range ids {
		alias, err := client.GetAlias(ctx, id)
		if err != nil {
			return err
		}
		target := enableGoto
		if target == "" {
			// the restored goto follows the alias's own domain profile
			target = cfg.ProfileFor(alias.Domain).Goto
		}
		if target == "" {
			return fmt.Errorf("no goto address configured for %s", alias.Domain)
		}

		res, err := client.EditAlias(ctx, []int{id}, mailcow.EditAttrs{Goto: target})
		if err != nil {
			return err
		}
		printResult("enabled", res)
	}
	return nil
}
