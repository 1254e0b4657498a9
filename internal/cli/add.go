package cli

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"os"

	"github.com/spf13/cobra"
	"github.com/zarlcorp/core/pkg/zstyle"
	"github.com/zarlcorp/zalias/internal/config"
	"github.com/zarlcorp/zalias/internal/mailcow"
	"github.com/zarlcorp/zalias/internal/tui"
	"github.com/zarlcorp/zalias/internal/username"
)

// candidateCount is how many template renders one prompt batch shows.
// A pronounceable fallback handle always joins them.
const candidateCount = 9

var (
	addDomain       string
	addGoto         string
	addComment      string
	addRandomDomain bool
	addAutomatic    bool
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a new alias",
	Long: `Create a new alias with a generated username. By default add walks
through domain and username prompts; with --automatic, or when not
attached to a terminal, it creates a pronounceable handle on the relay
domain without asking.`,
	Args: cobra.NoArgs,
	RunE: runAdd,
}

func init() {
	rootCmd.AddCommand(addCmd)
	addCmd.Flags().StringVarP(&addDomain, "domain", "d", "", "domain for the alias (default: ask, or the relay domain)")
	addCmd.Flags().StringVarP(&addGoto, "goto", "g", "", "forward address (default from config)")
	addCmd.Flags().StringVarP(&addComment, "comment", "c", "", "public comment for the alias")
	addCmd.Flags().BoolVarP(&addRandomDomain, "random-domain", "r", false, "use a random domain from the config")
	addCmd.Flags().BoolVarP(&addAutomatic, "automatic", "a", false, "take a generated handle without asking")
}

func runAdd(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	interactive := tui.Interactive() && !addAutomatic

	var name string
	var profile config.Profile
	if interactive {
		name, profile, err = interactiveAlias(ctx, cfg, username.New())
		if err != nil {
			if errors.Is(err, tui.ErrAborted) {
				fmt.Fprintln(os.Stderr, zstyle.MutedText.Render("aborted"))
				return nil
			}
			return err
		}
	} else {
		name, profile = automaticAlias(cfg)
	}

	client, err := clientFor(profile)
	if err != nil {
		return err
	}

	if addGoto != "" {
		profile.Goto = addGoto
	}
	if profile.Goto == "" {
		return fmt.Errorf("no goto address configured for %s", profile.Domain)
	}

	req := mailcow.CreateRequest{
		Address:       name + "@" + profile.Domain,
		Goto:          profile.Goto,
		PublicComment: addComment,
	}
	res, err := createAlias(ctx, client, req, interactive)
	if err != nil {
		return err
	}
	printResult("created", res)
	return nil
}

// addDomainFor resolves the alias domain from the flags. Empty means
// nothing was pinned and the caller decides.
func addDomainFor(cfg *config.Config) string {
	if addDomain != "" {
		return addDomain
	}
	if addRandomDomain {
		domains := cfg.PossibleDomains()
		return domains[randIndex(len(domains))]
	}
	return ""
}

// automaticAlias picks a pronounceable handle on the relay domain, no
// prompts involved.
func automaticAlias(cfg *config.Config) (string, config.Profile) {
	domain := addDomainFor(cfg)
	if domain == "" {
		domain = cfg.PossibleDomains()[0]
	}
	return username.Handle(), cfg.ProfileFor(domain)
}

// interactiveAlias walks the prompts until the user confirms an address.
// Declining the confirmation starts over, including the domain pick.
func interactiveAlias(ctx context.Context, cfg *config.Config, gen *username.Generator) (string, config.Profile, error) {
	for {
		domain := addDomainFor(cfg)
		if domain == "" {
			var err error
			domain, err = tui.PickDomain(ctx, cfg.PossibleDomains())
			if err != nil {
				return "", config.Profile{}, err
			}
		}
		profile := cfg.ProfileFor(domain)

		name, err := aliasName(ctx, gen, profile)
		if err != nil {
			return "", config.Profile{}, err
		}

		ok, err := tui.ConfirmAddress(ctx, name+"@"+domain)
		if err != nil {
			return "", config.Profile{}, err
		}
		if ok {
			return name, profile, nil
		}
	}
}

// aliasName prompts over generated candidates, or takes a handle
// directly when the profile has no template.
func aliasName(ctx context.Context, gen *username.Generator, profile config.Profile) (string, error) {
	if profile.Template == "" {
		return username.Handle(), nil
	}
	return chooseCandidate(ctx, gen, profile)
}

// chooseCandidate runs the username prompt, generating fresh batches and
// falling back to manual entry on request.
func chooseCandidate(ctx context.Context, gen *username.Generator, profile config.Profile) (string, error) {
	for {
		batch, err := candidates(gen, profile)
		if err != nil {
			return "", err
		}

		name, choice, err := tui.PickUsername(ctx, batch)
		if err != nil {
			return "", err
		}
		switch choice {
		case tui.ChoiceMore:
			continue
		case tui.ChoiceManual:
			return tui.ManualUsername(ctx, manualUsernameValid)
		}
		return name, nil
	}
}

// candidates renders one batch of suggestions from the profile template
// plus one pronounceable handle.
func candidates(gen *username.Generator, p config.Profile) ([]string, error) {
	names := make([]string, 0, candidateCount+1)
	for range candidateCount {
		name, err := gen.Render(p.Template, p.Domain)
		if err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return append(names, username.Handle()), nil
}

// manualUsernameValid gates typed usernames before they reach mailcow.
func manualUsernameValid(s string) error {
	if s == "" {
		return errors.New("username must not be empty")
	}
	if !username.ValidLocalPart(s) {
		return errors.New("not a valid address local part (lowercase ASCII only)")
	}
	return nil
}

// createAlias calls mailcow, behind a spinner when interactive.
func createAlias(ctx context.Context, client *mailcow.Client, req mailcow.CreateRequest, interactive bool) (mailcow.Result, error) {
	if !interactive {
		return client.CreateAlias(ctx, req)
	}

	var res mailcow.Result
	err := tui.Spin(ctx, "creating "+req.Address, func(ctx context.Context) error {
		var err error
		res, err = client.CreateAlias(ctx, req)
		return err
	})
	return res, err
}

// randIndex picks an index with crypto/rand, matching the generator's
// source.
func randIndex(n int) int {
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		panic("crypto/rand: " + err.Error())
	}
	return int(v.Int64())
}
