package tui

import (
	"context"
	"errors"
	"testing"

	"github.com/charmbracelet/huh"
)

func TestPickDomainSingleDomain(t *testing.T) {
	got, err := PickDomain(context.Background(), []string{"relay.example.com"})
	if err != nil {
		t.Fatalf("PickDomain() error = %v", err)
	}
	if got != "relay.example.com" {
		t.Errorf("PickDomain() = %q, want the sole domain", got)
	}
}

func TestPromptErr(t *testing.T) {
	ctx := context.Background()

	if err := promptErr(ctx, huh.ErrUserAborted); !errors.Is(err, ErrAborted) {
		t.Errorf("user abort = %v, want ErrAborted", err)
	}

	canceled, cancel := context.WithCancel(ctx)
	cancel()
	if err := promptErr(canceled, errors.New("program killed")); !errors.Is(err, ErrAborted) {
		t.Errorf("canceled context = %v, want ErrAborted", err)
	}

	boom := errors.New("boom")
	if err := promptErr(ctx, boom); !errors.Is(err, boom) {
		t.Errorf("promptErr() = %v, want the original error", err)
	}
}
