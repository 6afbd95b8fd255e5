package style

import "hokusai/pkg/element"

// Resolved holds the two style layers for one element, kept as distinct
// fields. Precedence between them (preset < inline < utility class) is the
// downstream renderer's concern, never merged here.
type Resolved struct {
	Preset Map
	Inline Map
}

// Resolve computes the preset and inline layers for a host element. A nil
// preset table disables preset lookup entirely. Resolve never fails: values
// of the wrong shape degrade to absent.
func Resolve(tag string, props element.Props, presets Presets) Resolved {
	var out Resolved

	// Preset lookup is keyed purely by tag name; no props are consulted.
	if presets != nil {
		if preset, ok := presets[tag]; ok && !preset.Empty() {
			out.Preset = preset.Clone()
		}
	}

	// Inline style is attached only when it carries at least one property.
	if props != nil {
		out.Inline = asMap(props["style"]).Clone()
	}

	return out
}

// ForText computes the style layers for a bare text leaf, which has no tag
// and no props. Only the tag-less preset can apply.
func ForText(presets Presets) Resolved {
	var out Resolved
	if presets != nil {
		if preset, ok := presets[TextKey]; ok && !preset.Empty() {
			out.Preset = preset.Clone()
		}
	}
	return out
}

// UtilityClass extracts the raw utility-class string from props under the
// given property name. Only a string value is accepted; anything else is
// treated as absent, never coerced. The string is passed through unresolved.
func UtilityClass(props element.Props, prop string) string {
	s, _ := props.String(prop)
	return s
}

func asMap(v any) Map {
	switch m := v.(type) {
	case Map:
		return m
	case map[string]any:
		return Map(m)
	}
	return nil
}
