package cli

import (
	"github.com/spf13/cobra"
	"github.com/zarlcorp/zalias/internal/mailcow"
)

var disableCmd = &cobra.Command{
	Use:   "disable <id>...",
	Short: "Silently discard mail for aliases",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runDisable,
}

func init() {
	rootCmd.AddCommand(disableCmd)
}

func runDisable(cmd *cobra.Command, args []string) error {
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

	for _, id := range ids {
		res, err := client.EditAlias(cmd.Context(), []int{id}, mailcow.EditAttrs{GotoNull: true})
		if err != nil {
			return err
		}
		printResult("disabled", res)
	}
	return nil
}
