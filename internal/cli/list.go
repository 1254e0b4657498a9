package cli

import (
	"fmt"
	"os"
	"slices"

	"github.com/spf13/cobra"
	"github.com/zarlcorp/zalias/internal/mailcow"
)

var listJSON bool

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List aliases on the configured domains",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().BoolVar(&listJSON, "json", false, "print aliases as JSON")
}

func runList(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	client, err := clientFor(cfg.ProfileFor(cfg.RelayDomain))
	if err != nil {
		return err
	}

	aliases, err := client.ListAliases(cmd.Context())
	if err != nil {
		return err
	}
	aliases = filterDomains(aliases, cfg.PossibleDomains())

	if listJSON {
		return printJSON(os.Stdout, aliases)
	}
	if len(aliases) == 0 {
		fmt.Println("no aliases")
		return nil
	}
	return renderAliasTable(os.Stdout, aliases)
}

// filterDomains keeps the aliases on domains zalias manages. The
// instance may carry unrelated domains.
func filterDomains(aliases []mailcow.Alias, domains []string) []mailcow.Alias {
	keep := make([]mailcow.Alias, 0, len(aliases))
	for _, a := range aliases {
		if slices.Contains(domains, a.Domain) {
			keep = append(keep, a)
		}
	}
	return keep
}
