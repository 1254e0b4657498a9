// Package tui provides the interactive prompts for alias creation.
package tui

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/huh/spinner"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// ErrAborted reports that the user quit a prompt.
var ErrAborted = errors.New("aborted")

var addressStyle = lipgloss.NewStyle().Bold(true)

// Choice is the user's decision at the username prompt.
type Choice int

const (
	// ChoiceUse accepts the selected candidate.
	ChoiceUse Choice = iota
	// ChoiceMore asks for a fresh batch of candidates.
	ChoiceMore
	// ChoiceManual switches to manual entry.
	ChoiceManual
)

const (
	optionMore   = "none of these"
	optionManual = "choose my own"
	optionQuit   = "quit"
)

// Interactive reports whether stdin and stdout are attached to a
// terminal.
func Interactive() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

// PickDomain asks which domain the alias goes on. A single configured
// domain is returned without prompting.
func PickDomain(ctx context.Context, domains []string) (string, error) {
	if len(domains) == 1 {
		return domains[0], nil
	}

	var domain string
	form := huh.NewForm(huh.NewGroup(
		huh.NewSelect[string]().
			Title("Domain").
			Options(huh.NewOptions(domains...)...).
			Value(&domain),
	))
	if err := form.RunWithContext(ctx); err != nil {
		return "", promptErr(ctx, err)
	}
	return domain, nil
}

// PickUsername offers the candidate usernames plus the escape hatches
// for a fresh batch, manual entry, and quitting.
func PickUsername(ctx context.Context, candidates []string) (string, Choice, error) {
	options := huh.NewOptions(candidates...)
	options = append(options,
		huh.NewOption(optionMore, optionMore),
		huh.NewOption(optionManual, optionManual),
		huh.NewOption(optionQuit, optionQuit),
	)

	var picked string
	form := huh.NewForm(huh.NewGroup(
		huh.NewSelect[string]().
			Title("Username").
			Description("pick a username for the new alias").
			Options(options...).
			Value(&picked),
	))
	if err := form.RunWithContext(ctx); err != nil {
		return "", 0, promptErr(ctx, err)
	}

	switch picked {
	case optionMore:
		return "", ChoiceMore, nil
	case optionManual:
		return "", ChoiceManual, nil
	case optionQuit:
		return "", 0, ErrAborted
	}
	return picked, ChoiceUse, nil
}

// ManualUsername reads a username typed by the user. validate rejects
// input that would not form a valid address, re-prompting until it
// passes.
func ManualUsername(ctx context.Context, validate func(string) error) (string, error) {
	var name string
	form := huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title("Username").
			Placeholder("user.name").
			Validate(validate).
			Value(&name),
	))
	if err := form.RunWithContext(ctx); err != nil {
		return "", promptErr(ctx, err)
	}
	return name, nil
}

// ConfirmAddress asks whether to create address. Enter accepts.
func ConfirmAddress(ctx context.Context, address string) (bool, error) {
	ok := true
	form := huh.NewForm(huh.NewGroup(
		huh.NewConfirm().
			Title(fmt.Sprintf("Do you want to use %s?", addressStyle.Render(address))).
			Value(&ok),
	))
	if err := form.RunWithContext(ctx); err != nil {
		return false, promptErr(ctx, err)
	}
	return ok, nil
}

// Spin runs fn behind a spinner so slow mailcow calls show progress.
func Spin(ctx context.Context, title string, fn func(context.Context) error) error {
	return spinner.New().
		Title(title).
		Context(ctx).
		ActionWithErr(fn).
		Run()
}

// promptErr folds user escapes into ErrAborted; a canceled context
// means the signal handler fired mid-prompt.
func promptErr(ctx context.Context, err error) error {
	if errors.Is(err, huh.ErrUserAborted) || ctx.Err() != nil {
		return ErrAborted
	}
	return err
}
