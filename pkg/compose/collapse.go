package compose

import (
	"strings"

	"hokusai/pkg/element"
)

// collapseText returns the concatenated text of a host element's children
// when the subtree is pure text, so a text run becomes a single Text node
// instead of a structurally meaningless single-child container. The renderer
// measures and wraps Text and Container nodes differently, so over-nesting
// here would change rendered layout, not just tree shape.
//
// A single primitive child yields its string form. A sequence collapses only
// if every entry is itself a primitive; any renderable element abandons the
// collapse. A single fragment wrapper is unwrapped and the check re-applied.
func collapseText(children any) (string, bool) {
	switch v := element.Normalize(children).(type) {
	case element.Raw:
		return v.Value, true
	case element.Fragment:
		return collapseText(v.Children)
	case element.List:
		s, seen, ok := collapseList(v.Items)
		if !ok || !seen {
			return "", false
		}
		return s, true
	}
	return "", false
}

// collapseList concatenates the primitive entries of a sequence, recursing
// through nested sequences. Empty entries (nil, false) are skipped rather
// than abandoning the collapse, so conditional inclusion inside a text run
// still yields a single Text node. Any renderable entry abandons. The seen
// result reports whether any primitive content was found at all: a sequence
// with none is not a text run and must fall through to structural
// processing, not become an empty Text node.
func collapseList(items []any) (s string, seen, ok bool) {
	var sb strings.Builder
	for _, item := range items {
		switch v := element.Normalize(item).(type) {
		case element.Empty:
		case element.Raw:
			sb.WriteString(v.Value)
			seen = true
		case element.List:
			nested, nestedSeen, ok := collapseList(v.Items)
			if !ok {
				return "", false, false
			}
			sb.WriteString(nested)
			seen = seen || nestedSeen
		default:
			return "", false, false
		}
	}
	return sb.String(), seen, true
}
