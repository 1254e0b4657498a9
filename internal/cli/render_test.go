package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/zarlcorp/zalias/internal/mailcow"
)

func TestRenderAliasTable(t *testing.T) {
	aliases := []mailcow.Alias{
		{ID: 5, Address: "kulo.rifa@relay.example.com", PublicComment: "web shop", Goto: "me@example.com"},
		{ID: 7, Address: "xevu.bagi@relay.example.com", Goto: "spam@localhost"},
	}

	var buf bytes.Buffer
	if err := renderAliasTable(&buf, aliases); err != nil {
		t.Fatalf("renderAliasTable() error = %v", err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3:\n%s", len(lines), buf.String())
	}

	head := lines[0]
	if !strings.HasPrefix(head, "ID") {
		t.Errorf("header = %q", head)
	}

	// tabwriter keeps the columns aligned with the header
	if strings.Index(head, "ADDRESS") != strings.Index(lines[1], "kulo.rifa@relay.example.com") {
		t.Errorf("address column misaligned:\n%s", buf.String())
	}
	if strings.Index(head, "STATUS") != strings.Index(lines[1], "Active") {
		t.Errorf("status column misaligned:\n%s", buf.String())
	}
	if !strings.Contains(lines[2], "Spam") {
		t.Errorf("spam alias row = %q", lines[2])
	}
}

func TestRenderAliasTableEmptyComment(t *testing.T) {
	aliases := []mailcow.Alias{
		{ID: 9, Address: "mita@relay.example.com", Goto: "null@localhost"},
	}

	var buf bytes.Buffer
	if err := renderAliasTable(&buf, aliases); err != nil {
		t.Fatalf("renderAliasTable() error = %v", err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if strings.Index(lines[0], "STATUS") != strings.Index(lines[1], "Discard") {
		t.Errorf("status column misaligned with empty comment:\n%s", buf.String())
	}
}

func TestPrintJSON(t *testing.T) {
	var buf bytes.Buffer
	err := printJSON(&buf, []mailcow.Alias{{ID: 5, Address: "kulo.rifa@relay.example.com"}})
	if err != nil {
		t.Fatalf("printJSON() error = %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, `"address": "kulo.rifa@relay.example.com"`) {
		t.Errorf("output = %s", out)
	}
	if !strings.HasPrefix(out, "[\n  {") {
		t.Errorf("output not indented: %s", out)
	}
}
