// SPDX-License-Identifier: MIT
package handlers

import (
	"fmt"
	"html"
	"strings"

	"github.com/thatcatcamp/contrastkitty/internal/matrix"
)

// renderMatrixTable renders the matrix as a table. Row headers are the
// backgrounds, column headers the foregrounds.
func renderMatrixTable(m matrix.Matrix) string {
	if m.Empty() {
		return `<p class="muted">No named colors yet. Give at least one color a name to see its contrast.</p>`
	}

	var b strings.Builder
	b.WriteString(`<table class="matrix"><thead><tr><th></th>`)
	for _, col := range m.Columns {
		b.WriteString(`<th scope="col">` + html.EscapeString(col.Name) + `</th>`)
	}
	b.WriteString(`</tr></thead><tbody>`)

	for i, row := range m.Rows {
		b.WriteString(`<tr><th scope="row">` + html.EscapeString(row.Name) + `</th>`)
		for _, cell := range m.Cells[i] {
			class := cell.Rating.Class()
			if cell.SelfPair {
				class += " self-pair"
			}
			b.WriteString(fmt.Sprintf(
				`<td class="%s" style="background-color:%s;color:%s" title="%s on %s">%s<span class="rating">%s</span></td>`,
				class, cell.Background.Hex(), cell.Foreground.Hex(),
				cell.Foreground.Hex(), cell.Background.Hex(),
				cell.RatioText(), cell.Rating.String()))
		}
		b.WriteString(`</tr>`)
	}

	b.WriteString(`</tbody></table>`)
	return b.String()
}

// renderSummary renders the per-rating counts under the table
func renderSummary(m matrix.Matrix) string {
	if m.Empty() {
		return ""
	}
	s := m.Summary()
	return fmt.Sprintf(`<p class="summary"><span class="aaa">%d AAA</span> · <span class="aa">%d AA</span> · <span class="fail">%d Fail</span></p>`,
		s.AAA, s.AA, s.Fail)
}
