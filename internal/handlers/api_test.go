// SPDX-License-Identifier: MIT
package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/thatcatcamp/contrastkitty/internal/contrast"
	"github.com/thatcatcamp/contrastkitty/internal/themes"
)

func postJSON(h http.Handler, target, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	h.ServeHTTP(w, req)
	return w
}

func decodeMatrix(t *testing.T, w *httptest.ResponseRecorder) MatrixResponse {
	t.Helper()
	var resp MatrixResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to decode response: %v\n%s", err, w.Body.String())
	}
	return resp
}

func TestMatrixAPIHandler(t *testing.T) {
	r := setupRouter(New(""))

	w := get(r, "/api/matrix?title=Demo&n=Yellow&v=FEDC2A&n=Plum&v=5A3B5D")
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}

	resp := decodeMatrix(t, w)
	if resp.Title != "Demo" {
		t.Errorf("Title = %q, want Demo", resp.Title)
	}
	if resp.ShareURL != "http://example.com/?title=Demo&n=Yellow&v=FEDC2A&n=Plum&v=5A3B5D" {
		t.Errorf("Unexpected share URL %q", resp.ShareURL)
	}
	if len(resp.Rows) != 2 || len(resp.Cells) != 2 || len(resp.Cells[0]) != 2 {
		t.Fatalf("Expected a 2x2 matrix, got %d rows", len(resp.Rows))
	}
	if resp.Rows[1].Name != "Plum" || !resp.Rows[1].Color.Equal(contrast.MustParseColor("5a3b5d")) {
		t.Errorf("Unexpected second row %+v", resp.Rows[1])
	}

	cell := resp.Cells[0][1]
	if cell.RatioText() != "6.98" || cell.Rating != contrast.AA {
		t.Errorf("Yellow/Plum = %s %s, want 6.98 AA", cell.RatioText(), cell.Rating)
	}
	if !resp.Cells[1][1].SelfPair {
		t.Error("Diagonal should be a self pair")
	}
	if resp.Summary.AA != 2 || resp.Summary.AAA != 0 || resp.Summary.Fail != 0 {
		t.Errorf("Unexpected summary %+v", resp.Summary)
	}
	if resp.Fallback || resp.ColorsOnly {
		t.Error("Valid link should not be a fallback")
	}
}

func TestMatrixAPIHandler_Fallback(t *testing.T) {
	r := setupRouter(New(""))

	tests := []struct {
		name       string
		query      string
		fallback   bool
		colorsOnly bool
		rows       int
	}{
		{name: "No link", query: "", rows: 5},
		{name: "Malformed", query: "?v=12345", fallback: true, rows: 5},
		{name: "Unknown preset", query: "?preset=missing", fallback: true, rows: 5},
		{name: "Colors only", query: "?n=A&v=FFFFFF&v=000000", colorsOnly: true, rows: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := decodeMatrix(t, get(r, "/api/matrix"+tt.query))
			if resp.Fallback != tt.fallback {
				t.Errorf("Fallback = %v, want %v", resp.Fallback, tt.fallback)
			}
			if resp.ColorsOnly != tt.colorsOnly {
				t.Errorf("ColorsOnly = %v, want %v", resp.ColorsOnly, tt.colorsOnly)
			}
			if len(resp.Rows) != tt.rows {
				t.Errorf("Expected %d rows, got %d", tt.rows, len(resp.Rows))
			}
		})
	}
}

func TestMatrixAPIHandler_QuestionMarkInTitle(t *testing.T) {
	r := setupRouter(New(""))

	resp := decodeMatrix(t, get(r, "/api/matrix?title=Q?&n=a&v=FFFFFF&n=b&v=000000"))
	if resp.Title != "Q?" {
		t.Errorf("Title = %q, want Q?", resp.Title)
	}
	if resp.Fallback || resp.ColorsOnly {
		t.Error("An unescaped ? in the title should not change how the link is read")
	}
	if len(resp.Rows) != 2 || resp.Rows[0].Name != "a" {
		t.Errorf("Unexpected rows %+v", resp.Rows)
	}
}

func TestMatrixAPIHandler_RequireTitle(t *testing.T) {
	h := New("")
	h.RequireTitle = true
	r := setupRouter(h)

	w := get(r, "/api/matrix?n=White&v=FFFFFF")
	if w.Code != http.StatusUnprocessableEntity {
		t.Errorf("Expected status 422, got %d", w.Code)
	}

	w = get(r, "/api/matrix?title=%20Named%20&n=White&v=FFFFFF")
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}
	if resp := decodeMatrix(t, w); resp.Title != "Named" {
		t.Errorf("Title should be trimmed, got %q", resp.Title)
	}
}

func TestPaletteAPIHandler(t *testing.T) {
	r := setupRouter(New(""))

	w := postJSON(r, "/api/palette", `{
		"title": "Greys",
		"entries": [
			{"name": "Paper", "color": "#FFFFFF"},
			{"name": "Ink", "color": "595959"},
			{"name": "", "color": "000000"}
		]
	}`)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", w.Code, w.Body.String())
	}

	resp := decodeMatrix(t, w)
	if len(resp.Rows) != 2 {
		t.Fatalf("Unnamed entry should be excluded, got %d rows", len(resp.Rows))
	}
	if got := resp.Cells[1][0]; got.RatioText() != "7.00" || got.Rating != contrast.AAA {
		t.Errorf("Ink/Paper = %s %s, want 7.00 AAA", got.RatioText(), got.Rating)
	}
	if resp.ShareURL != "http://example.com/?title=Greys&n=Paper&v=FFFFFF&n=Ink&v=595959" {
		t.Errorf("Unexpected share URL %q", resp.ShareURL)
	}
}

func TestPaletteAPIHandler_Errors(t *testing.T) {
	h := New("")
	h.Codec.MaxEntries = 2
	r := setupRouter(h)

	tests := []struct {
		name string
		body string
		code int
	}{
		{name: "Bad JSON", body: `{"title":`, code: http.StatusBadRequest},
		{name: "Missing entries", body: `{"title":"x"}`, code: http.StatusBadRequest},
		{name: "Missing color", body: `{"entries":[{"name":"a"}]}`, code: http.StatusBadRequest},
		{name: "Invalid color", body: `{"entries":[{"name":"a","color":"#12345"}]}`, code: http.StatusBadRequest},
		{name: "Too many", body: `{"entries":[{"color":"000000"},{"color":"111111"},{"color":"222222"}]}`, code: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := postJSON(r, "/api/palette", tt.body)
			if w.Code != tt.code {
				t.Errorf("Expected status %d, got %d: %s", tt.code, w.Code, w.Body.String())
			}
		})
	}
}

func TestPaletteAPIHandler_RequireTitle(t *testing.T) {
	h := New("")
	h.RequireTitle = true
	r := setupRouter(h)

	w := postJSON(r, "/api/palette", `{"title":"   ","entries":[{"name":"a","color":"FFFFFF"}]}`)
	if w.Code != http.StatusUnprocessableEntity {
		t.Errorf("Expected status 422, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "title is required") {
		t.Errorf("Unexpected body %s", w.Body.String())
	}
}

func TestPresetsHandler(t *testing.T) {
	r := setupRouter(New(""))

	w := get(r, "/presets")
	if w.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", w.Code)
	}

	var resp struct {
		Presets []PresetInfo `json:"presets"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}

	if len(resp.Presets) != len(themes.PresetNames()) {
		t.Fatalf("Expected %d presets, got %d", len(themes.PresetNames()), len(resp.Presets))
	}
	first := resp.Presets[0]
	if first.Name != themes.DefaultPreset || first.Colors != 5 {
		t.Errorf("First preset should be the default palette, got %+v", first)
	}
	if !strings.HasPrefix(first.ShareURL, "http://example.com/?n=White&v=FFFFFF") {
		t.Errorf("Unexpected share URL %q", first.ShareURL)
	}
}
