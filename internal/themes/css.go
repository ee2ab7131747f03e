// SPDX-License-Identifier: MIT
package themes

import "fmt"

// GenerateCSS generates the page stylesheet with color variables and the
// matrix rating classes
func GenerateCSS(colors *Colors) string {
	return fmt.Sprintf(`:root {
  --color-primary: %s;
  --color-primary-contrast: %s;
  --color-secondary: %s;
  --color-bg: %s;
  --color-surface: %s;
  --color-text: %s;
  --color-text-muted: %s;
  --color-border: %s;
  --color-aaa: %s;
  --color-aa: %s;
  --color-fail: %s;
}

body {
  background-color: var(--color-bg);
  color: var(--color-text);
  font-family: system-ui, sans-serif;
  max-width: 1100px;
  margin: 0 auto;
  padding: 20px;
  line-height: 1.5;
}

a { color: var(--color-primary); text-decoration: none; }
a:hover { text-decoration: underline; }

button, .btn {
  background-color: var(--color-primary);
  color: var(--color-primary-contrast);
  border: none;
  padding: 8px 16px;
  border-radius: 4px;
  cursor: pointer;
}
button.secondary { background: transparent; color: var(--color-fail); }

.card {
  background-color: var(--color-surface);
  border: 1px solid var(--color-border);
  border-radius: 8px;
  padding: 16px;
  margin-bottom: 20px;
}

input, select {
  border: 1px solid var(--color-border);
  background-color: var(--color-surface);
  color: var(--color-text);
  padding: 6px 8px;
  border-radius: 4px;
}

.row { display: flex; align-items: center; gap: 12px; margin-bottom: 8px; }
.row .swatch { width: 28px; height: 28px; border: 1px solid var(--color-border); border-radius: 4px; }

.notice { padding: 10px 14px; border-left: 4px solid var(--color-fail); background: var(--color-surface); margin-bottom: 16px; }
.muted { color: var(--color-text-muted); }

/* Matrix */
table.matrix { border-collapse: collapse; width: 100%%; }
table.matrix th { padding: 8px; border: 1px solid var(--color-border); background: var(--color-surface); }
table.matrix td { padding: 8px; border: 1px solid var(--color-border); text-align: center; font-size: 0.9em; }
table.matrix td .rating { display: block; font-size: 0.75em; font-weight: 600; }
table.matrix td.pass-aaa .rating::before { content: "✓ "; }
table.matrix td.pass-aa .rating::before { content: "✓ "; }
table.matrix td.fail { opacity: 0.55; }
table.matrix td.self-pair { opacity: 0; }

.summary .aaa { color: var(--color-aaa); }
.summary .aa { color: var(--color-aa); }
.summary .fail { color: var(--color-fail); }

.share input { width: 100%%; }
`, colors.Primary, colors.PrimaryContrast, colors.Secondary, colors.Background,
		colors.Surface, colors.Text, colors.TextMuted, colors.Border,
		colors.Success, colors.Warning, colors.Error)
}
