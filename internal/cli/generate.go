package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/zarlcorp/zalias/internal/username"
)

var (
	generateCount    int
	generateTemplate string
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate usernames without touching mailcow",
	Args:  cobra.NoArgs,
	RunE:  runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)
	generateCmd.Flags().IntVarP(&generateCount, "count", "n", 1, "how many usernames to generate")
	generateCmd.Flags().StringVarP(&generateTemplate, "template", "t", "", "template to render (default from config)")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	tmpl := generateTemplate
	source := "the --template flag"
	if tmpl == "" {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		p := cfg.ProfileFor(cfg.RelayDomain)
		tmpl, source = p.Template, p.Domain
	}

	gen := username.New()
	for range generateCount {
		name, err := generateName(gen, tmpl, source)
		if err != nil {
			return err
		}
		fmt.Println(name)
	}
	return nil
}

// generateName renders the template, or a pronounceable handle when no
// template is configured anywhere.
func generateName(gen *username.Generator, tmpl, source string) (string, error) {
	if tmpl == "" {
		return username.Handle(), nil
	}
	return gen.Render(tmpl, source)
}
