// Package render formats inferred schemas for terminal display.
package render

import (
	"fmt"
	"strings"

	"github.com/gookit/color"
	"github.com/mattn/go-runewidth"

	"github.com/dbsmedya/goschema/internal/types"
)

const columnPadding = 4

// SchemaTable renders a collection's flattened schema as an aligned
// two-column table of dotted field paths and their observed types.
func SchemaTable(collection string, fields *types.FlatFields) string {
	var sb strings.Builder

	header := fmt.Sprintf("Collection: %s (%d fields)", collection, fields.Len())
	sb.WriteString(color.Bold.Render(header))
	sb.WriteByte('\n')
	sb.WriteString(strings.Repeat("=", runewidth.StringWidth(header)))
	sb.WriteByte('\n')

	if fields.Len() == 0 {
		sb.WriteString("  (no fields discovered)\n")
		return sb.String()
	}

	pathHeading := "FIELD PATH"
	pathWidth := runewidth.StringWidth(pathHeading)
	for el := fields.Front(); el != nil; el = el.Next() {
		if w := runewidth.StringWidth(el.Key); w > pathWidth {
			pathWidth = w
		}
	}

	writeRow(&sb, pathHeading, "TYPES", pathWidth)
	writeRow(&sb, strings.Repeat("-", pathWidth), strings.Repeat("-", 5), pathWidth)

	for el := fields.Front(); el != nil; el = el.Next() {
		padded := pad(el.Key, pathWidth)
		sb.WriteString("  ")
		sb.WriteString(color.Cyan.Render(padded))
		sb.WriteString(strings.Repeat(" ", columnPadding))
		sb.WriteString(el.Value)
		sb.WriteByte('\n')
	}

	return sb.String()
}

// writeRow writes an uncolored two-column row.
func writeRow(sb *strings.Builder, left, right string, pathWidth int) {
	sb.WriteString("  ")
	sb.WriteString(pad(left, pathWidth))
	sb.WriteString(strings.Repeat(" ", columnPadding))
	sb.WriteString(right)
	sb.WriteByte('\n')
}

// pad right-pads a string to the given visual width, accounting for wide runes.
func pad(s string, width int) string {
	gap := width - runewidth.StringWidth(s)
	if gap <= 0 {
		return s
	}
	return s + strings.Repeat(" ", gap)
}
