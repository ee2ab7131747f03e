// SPDX-License-Identifier: MIT
package handlers

import (
	"fmt"
	"html"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/thatcatcamp/contrastkitty/internal/contrast"
	"github.com/thatcatcamp/contrastkitty/internal/palette"
	"github.com/thatcatcamp/contrastkitty/internal/picker"
	"github.com/thatcatcamp/contrastkitty/internal/themes"
)

// newRowColor is the color given to rows added with the "Add color" button
var newRowColor = contrast.MustParseColor("#000000")

// Form edits that could not be applied in full are reported back to the
// editor through the redirect as notice codes. Codes are not palette
// parameters, so they never reach a share link.
const (
	paramNotice = "notice"
	noticeColor = "color"
	noticeLimit = "limit"
)

var formNotices = map[string]string{
	noticeColor: "Some colors could not be read and kept their previous value.",
	noticeLimit: "This palette is limited to %d colors; extra rows were dropped.",
}

// formNotice returns the message for a notice code, or "" for unknown codes
func (h *Handlers) formNotice(code string) string {
	msg, ok := formNotices[code]
	if !ok {
		return ""
	}
	if code == noticeLimit {
		return fmt.Sprintf(msg, h.Codec.MaxEntries)
	}
	return msg
}

// EditorHandler renders the palette editor, the matrix and the share link
// for the palette in the query string
func (h *Handlers) EditorHandler(c *gin.Context) {
	g := h.generate(c, h.resolve(c))
	mode := c.DefaultQuery("mode", "hex")

	for _, code := range c.QueryArray(paramNotice) {
		if msg := h.formNotice(code); msg != "" {
			g.Notices = append(g.Notices, msg)
		}
	}

	var body strings.Builder
	for _, notice := range g.Notices {
		body.WriteString(`<div class="notice">` + html.EscapeString(notice) + `</div>`)
	}

	body.WriteString(renderEditorForm(g.Model, mode))
	body.WriteString(renderPresetPicker())

	if g.Err == nil {
		body.WriteString(`<div class="card">`)
		body.WriteString(renderMatrixTable(g.Matrix))
		body.WriteString(renderSummary(g.Matrix))
		body.WriteString(`</div>`)
		body.WriteString(renderShare(g.ShareURL))
	}

	title := "Contrast matrix"
	if g.Palette.Title != "" {
		title = g.Palette.Title + " - " + title
	}

	htmlOutput := fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
	<meta charset="utf-8">
	<meta name="viewport" content="width=device-width, initial-scale=1">
	<title>%s</title>
	<style>
%s
	</style>
</head>
<body>
	<h1>Contrast matrix</h1>
	%s
</body>
</html>
`, html.EscapeString(title), h.CSS, body.String())

	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(htmlOutput))
}

// PaletteFormHandler applies one edit from the editor form and redirects
// to the link for the resulting palette. Rows arrive as aligned n (name),
// v (color text) and p (previous valid color) fields.
func (h *Handlers) PaletteFormHandler(c *gin.Context) {
	if err := c.Request.ParseForm(); err != nil {
		c.String(http.StatusBadRequest, "Invalid form")
		return
	}
	form := c.Request.PostForm

	names := form["n"]
	values := form["v"]
	previous := form["p"]
	mode := form.Get("mode")
	colorPicker := picker.ForMode(mode)

	rows := len(names)
	if len(values) < rows {
		rows = len(values)
	}
	var notices []string
	if h.Codec.MaxEntries > 0 && rows > h.Codec.MaxEntries {
		rows = h.Codec.MaxEntries
		notices = append(notices, noticeLimit)
	}

	m := palette.NewModel()
	m.SetTitle(form.Get("title"))

	ids := make([]palette.EntryID, 0, rows)
	var unread []palette.EntryID
	for i := 0; i < rows; i++ {
		prev := newRowColor
		if i < len(previous) {
			if pc, err := contrast.ParseColor(previous[i]); err == nil {
				prev = pc
			}
		}
		id := m.AddEntry(names[i], prev)
		// Invalid input keeps the previous color
		if err := m.SetColorFrom(id, colorPicker, values[i]); err != nil {
			unread = append(unread, id)
		}
		ids = append(ids, id)
	}

	if raw := form.Get("remove"); raw != "" {
		if idx, err := strconv.Atoi(raw); err == nil && idx >= 0 && idx < len(ids) {
			m.RemoveEntry(ids[idx])
		}
	}

	for _, id := range unread {
		// A removed row needs no notice
		if _, ok := m.Entry(id); ok {
			notices = append([]string{noticeColor}, notices...)
			break
		}
	}

	if form.Get("add") != "" && (h.Codec.MaxEntries == 0 || m.Len() < h.Codec.MaxEntries) {
		m.AddEntry("", newRowColor)
	}

	query := h.Codec.Encode(m.Snapshot())
	if mode != "" && mode != "hex" {
		if query != "" {
			query += "&"
		}
		query += "mode=" + url.QueryEscape(mode)
	}
	for _, code := range notices {
		if query != "" {
			query += "&"
		}
		query += paramNotice + "=" + code
	}
	target := "/"
	if query != "" {
		target += "?" + query
	}
	c.Redirect(http.StatusSeeOther, target)
}

// renderEditorForm renders one row per model entry. The remove button
// submits the row's position in this form, which the form handler maps
// back to the entry it rebuilt for that position.
func renderEditorForm(m *palette.Model, mode string) string {
	var b strings.Builder

	b.WriteString(`<form class="card" action="/palette" method="POST">`)
	b.WriteString(fmt.Sprintf(`<div class="row"><label for="title">Title</label>
		<input type="text" id="title" name="title" value="%s" placeholder="Palette title"></div>`,
		html.EscapeString(m.Title())))

	for i, e := range m.Entries() {
		b.WriteString(`<div class="row">`)
		b.WriteString(fmt.Sprintf(`<span class="swatch" style="background-color:%s"></span>`, e.Color.Hex()))
		b.WriteString(fmt.Sprintf(`<input type="text" name="n" value="%s" placeholder="Color name">`,
			html.EscapeString(e.Name)))
		b.WriteString(colorInput(e.Color, mode))
		b.WriteString(fmt.Sprintf(`<input type="hidden" name="p" value="%s">`, e.Color.Raw()))
		b.WriteString(fmt.Sprintf(`<button type="submit" class="secondary" name="remove" value="%d">Remove</button>`, i))
		b.WriteString(`</div>`)
	}

	b.WriteString(`<div class="row">`)
	b.WriteString(`<select name="mode">`)
	for _, m := range picker.Modes {
		selected := ""
		if m == mode {
			selected = " selected"
		}
		b.WriteString(fmt.Sprintf(`<option value="%s"%s>%s</option>`, m, selected, strings.ToUpper(m)))
	}
	b.WriteString(`</select>`)
	b.WriteString(`<button type="submit" name="add" value="1">Add color</button>`)
	b.WriteString(`<button type="submit">Generate</button>`)
	b.WriteString(`</div></form>`)

	return b.String()
}

// colorInput renders the color field in the notation the mode expects
func colorInput(c contrast.Color, mode string) string {
	r, g, b := c.RGB()
	switch mode {
	case "native":
		return fmt.Sprintf(`<input type="color" name="v" value="#%s">`, c.Key())
	case "rgb":
		return fmt.Sprintf(`<input type="text" name="v" value="rgb(%d, %d, %d)">`, r, g, b)
	default:
		// hsl mode shows hex too: an untouched field fails to parse as HSL
		// and the row keeps its previous color
		return fmt.Sprintf(`<input type="text" name="v" value="%s">`, c.Hex())
	}
}

// renderPresetPicker renders a GET form that loads a preset palette
func renderPresetPicker() string {
	var b strings.Builder
	b.WriteString(`<form class="card row" action="/" method="GET"><label for="preset">Start from</label>`)
	b.WriteString(`<select id="preset" name="preset">`)
	for _, name := range themes.PresetNames() {
		b.WriteString(fmt.Sprintf(`<option value="%s">%s</option>`, name, name))
	}
	b.WriteString(`</select><button type="submit">Load</button></form>`)
	return b.String()
}

// renderShare renders the share link and the PNG download link
func renderShare(shareURL string) string {
	exportURL := "/export.png"
	if i := strings.IndexByte(shareURL, '?'); i >= 0 {
		exportURL += shareURL[i:]
	}
	return fmt.Sprintf(`<div class="card share">
		<p>Share this palette:</p>
		<p><a id="share-link" href="%s">%s</a></p>
		<input type="text" readonly value="%s">
		<p><a href="%s">Download PNG</a></p>
	</div>`, html.EscapeString(shareURL), html.EscapeString(shareURL), html.EscapeString(shareURL), html.EscapeString(exportURL))
}
