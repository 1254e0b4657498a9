package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/zarlcorp/core/pkg/zstyle"
	"github.com/zarlcorp/zalias/internal/mailcow"
)

// renderAliasTable writes aliases as an aligned table.
func renderAliasTable(w io.Writer, aliases []mailcow.Alias) error {
	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tADDRESS\tCOMMENT\tSTATUS")
	for _, a := range aliases {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", a.ID, a.Address, a.PublicComment, a.State())
	}
	return tw.Flush()
}

// printJSON writes v as indented JSON.
func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// printResult reports a completed mutation on one line.
func printResult(verb string, res mailcow.Result) {
	detail := res.Address
	if res.ID != 0 {
		detail = fmt.Sprintf("%s (id %d)", detail, res.ID)
	}
	if res.Comment != "" {
		detail += " " + zstyle.MutedText.Render("# "+res.Comment)
	}
	fmt.Printf("%s %s\n", zstyle.StatusOK.Render(verb), detail)
}
