package cli

import (
	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <id>...",
	Short: "Delete aliases",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runDelete,
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}

func runDelete(cmd *cobra.Command, args []string) error {
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
		res, err := client.DeleteAliases(cmd.Context(), []int{id})
		if err != nil {
			return err
		}
		printResult("deleted", res)
	}
	return nil
}
