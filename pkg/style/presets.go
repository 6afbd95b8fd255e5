package style

// TextKey indexes the preset applied to bare text outside any host element,
// following DOM node naming. A replacement table may override it like any tag.
const TextKey = "#text"

// Presets maps tag names to the style layer applied before inline styles.
// The table is caller-owned and read-only; partial overrides are the caller's
// responsibility (merge over DefaultPresets before passing it in).
type Presets map[string]Map

// DefaultPresets returns a fresh table of built-in per-tag presets, modeled
// on browser user-agent defaults. Callers may use it as-is, merge over it,
// or replace it entirely.
func DefaultPresets() Presets {
	return Presets{
		"h1": {
			"fontSize":     "2em",
			"fontWeight":   700,
			"marginTop":    "0.67em",
			"marginBottom": "0.67em",
		},
		"h2": {
			"fontSize":     "1.5em",
			"fontWeight":   700,
			"marginTop":    "0.83em",
			"marginBottom": "0.83em",
		},
		"h3": {
			"fontSize":     "1.17em",
			"fontWeight":   700,
			"marginTop":    "1em",
			"marginBottom": "1em",
		},
		"h4": {
			"fontWeight":   700,
			"marginTop":    "1.33em",
			"marginBottom": "1.33em",
		},
		"h5": {
			"fontSize":     "0.83em",
			"fontWeight":   700,
			"marginTop":    "1.67em",
			"marginBottom": "1.67em",
		},
		"h6": {
			"fontSize":     "0.67em",
			"fontWeight":   700,
			"marginTop":    "2.33em",
			"marginBottom": "2.33em",
		},
		"p": {
			"marginTop":    "1em",
			"marginBottom": "1em",
		},
		"a": {
			"color":          "#0645ad",
			"textDecoration": "underline",
		},
		"b":      {"fontWeight": 700},
		"strong": {"fontWeight": 700},
		"i":      {"fontStyle": "italic"},
		"em":     {"fontStyle": "italic"},
		"u":      {"textDecoration": "underline"},
		"s":      {"textDecoration": "line-through"},
		"del":    {"textDecoration": "line-through"},
		"code":   {"fontFamily": "monospace"},
		"pre": {
			"fontFamily":   "monospace",
			"whiteSpace":   "pre",
			"marginTop":    "1em",
			"marginBottom": "1em",
		},
		"blockquote": {
			"marginTop":    "1em",
			"marginBottom": "1em",
			"marginLeft":   "40px",
			"marginRight":  "40px",
		},
		"ul": {
			"marginTop":    "1em",
			"marginBottom": "1em",
			"paddingLeft":  "40px",
		},
		"ol": {
			"marginTop":    "1em",
			"marginBottom": "1em",
			"paddingLeft":  "40px",
		},
		"hr": {
			"marginTop":    "0.5em",
			"marginBottom": "0.5em",
			"borderWidth":  "1px",
		},
	}
}
