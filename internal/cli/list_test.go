package cli

import (
	"testing"

	"github.com/zarlcorp/zalias/internal/mailcow"
)

func TestFilterDomains(t *testing.T) {
	aliases := []mailcow.Alias{
		{ID: 1, Domain: "relay.example.com"},
		{ID: 2, Domain: "unrelated.example.com"},
		{ID: 3, Domain: "shop.example.com"},
		{ID: 4, Domain: "relay.example.com"},
	}

	got := filterDomains(aliases, []string{"relay.example.com", "shop.example.com"})
	if len(got) != 3 {
		t.Fatalf("got %d aliases, want 3", len(got))
	}
	for i, wantID := range []int{1, 3, 4} {
		if got[i].ID != wantID {
			t.Errorf("alias %d has ID %d, want %d", i, got[i].ID, wantID)
		}
	}
}

func TestFilterDomainsKeepsNothingWithoutMatches(t *testing.T) {
	aliases := []mailcow.Alias{{ID: 1, Domain: "unrelated.example.com"}}
	if got := filterDomains(aliases, []string{"relay.example.com"}); len(got) != 0 {
		t.Errorf("got %d aliases, want 0", len(got))
	}
}
