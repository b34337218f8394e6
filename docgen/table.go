package docgen

import (
	"fmt"
	"io"
	"strings"

	"github.com/gomarkdown/markdown"

	"github.com/gogpu/defaults"
)

// Row is one entry of the default asset reference.
type Row struct {
	Name        string
	Type        string
	Key         string
	Description string
}

// SlotRows returns one row per default asset slot, in declaration order.
func SlotRows() []Row {
	ids := defaults.AllSlots()
	rows := make([]Row, 0, len(ids))
	for _, id := range ids {
		info := id.Info()
		rows = append(rows, Row{
			Name:        info.Name,
			Type:        info.Category.String(),
			Key:         info.Key,
			Description: info.Description,
		})
	}
	return rows
}

// escapeCell keeps cell text from splitting the table.
func escapeCell(s string) string {
	return strings.ReplaceAll(CleanForTable(s), "|", `\|`)
}

// WriteSlotTable writes rows as a markdown reference: a heading, one table
// row per asset, then a short description section per asset.
func WriteSlotTable(w io.Writer, rows []Row, lookup Lookup) error {
	var b strings.Builder
	b.WriteString("# Default Assets\n\n")
	b.WriteString("| Name | Type | Key | Description |\n")
	b.WriteString("|---|---|---|---|\n")
	for _, r := range rows {
		fmt.Fprintf(&b, "| %s | %s | `%s` | %s |\n",
			escapeCell(r.Name),
			escapeCell(TypeName(r.Type, lookup)),
			r.Key,
			escapeCell(r.Description))
	}
	for _, r := range rows {
		fmt.Fprintf(&b, "\n## %s\n\n%s\n", DisplayName(r.Key), CleanForDescription(r.Description))
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// ToHTML renders markdown with the gomarkdown defaults.
func ToHTML(md []byte) []byte {
	return markdown.ToHTML(md, nil, nil)
}
