package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/zarlcorp/zalias/internal/mailcow"
)

var spamCmd = &cobra.Command{
	Use:   "spam <id>...",
	Short: "Route aliases to the spam folder",
	Long: `Route mail for aliases to the spam folder instead of the inbox. The
previous comment is preserved inside the new one, so the alias still
tells which service leaked the address.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSpam,
}

func init() {
	rootCmd.AddCommand(spamCmd)
}

func runSpam(cmd *cobra.Command, args []string) error {
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

		comment := spamComment(alias.PublicComment)
		res, err := client.EditAlias(ctx, []int{id}, mailcow.EditAttrs{
			GotoSpam:      true,
			PublicComment: &comment,
		})
		if err != nil {
			return err
		}
		printResult("marked spam", res)
	}
	return nil
}

// spamComment wraps the previous comment so it survives the rerouting.
func spamComment(old string) string {
	if old == "" {
		return "spam"
	}
	return fmt.Sprintf("spam (%s)", old)
}
