package key

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"github.com/guildner/tasklist/pkg/glyph"
)

// Key prints the bullet kinds and their page markers.
type Key struct{}

func (k *Key) Do(ctx context.Context) error {
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(glyph.Bold("Marker"), glyph.Bold("Symbol"), glyph.Bold("Meaning"))
	for _, g := range glyph.DefaultGlyphs() {
		tbl.AddRow(g.Marker, g.Symbol, g.Meaning)
	}

	_, _ = fmt.Fprintln(color.Output, glyph.Bold(glyph.Underline("\nBullets")))
	_, _ = fmt.Fprintln(color.Output, tbl)
	return nil
}
