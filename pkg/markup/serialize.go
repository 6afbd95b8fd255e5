package markup

import (
	"fmt"
	"sort"
	"strings"
	"unicode"

	g "maragu.dev/gomponents"

	"hokusai/pkg/element"
	"hokusai/pkg/style"
)

// Serialize renders a host element subtree as markup text. It is used to turn
// an svg element into an image source. Only static content can be serialized:
// hosts, primitives, sequences, and fragments. Dynamic variants (components,
// deferred values) must be resolved before serialization.
//
// utilityProp names the prop carried out-of-band on render nodes; it is not a
// markup attribute and is skipped at every depth. Pass "" to skip nothing.
func Serialize(h element.Host, utilityProp string) (string, error) {
	lw := lowerer{utilityProp: utilityProp}
	n, err := lw.host(h)
	if err != nil {
		return "", err
	}
	var sb strings.Builder
	if err := n.Render(&sb); err != nil {
		return "", fmt.Errorf("markup: rendering <%s>: %w", h.Tag, err)
	}
	return sb.String(), nil
}

type lowerer struct {
	utilityProp string
}

// host converts a host element into a gomponents node. Escaping and
// void-element handling come from the library.
func (lw lowerer) host(h element.Host) (g.Node, error) {
	var parts []g.Node

	// Attributes in sorted order for deterministic output. Attribute names
	// are kept verbatim: svg attributes are case-sensitive (viewBox).
	keys := make([]string, 0, len(h.Props))
	for k := range h.Props {
		if k == "children" || k == "style" || (lw.utilityProp != "" && k == lw.utilityProp) {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		parts = append(parts, g.Attr(k, fmt.Sprint(h.Props[k])))
	}

	if css := cssText(h.Props["style"]); css != "" {
		parts = append(parts, g.Attr("style", css))
	}

	children, err := lw.lower(h.Props.Children())
	if err != nil {
		return nil, fmt.Errorf("markup: in <%s>: %w", h.Tag, err)
	}
	parts = append(parts, children...)

	return g.El(h.Tag, parts...), nil
}

func (lw lowerer) lower(x any) ([]g.Node, error) {
	switch v := element.Normalize(x).(type) {
	case element.Empty:
		return nil, nil
	case element.Raw:
		return []g.Node{g.Text(v.Value)}, nil
	case element.Host:
		n, err := lw.host(v)
		if err != nil {
			return nil, err
		}
		return []g.Node{n}, nil
	case element.Fragment:
		return lw.lower(v.Children)
	case element.List:
		var out []g.Node
		for _, item := range v.Items {
			ns, err := lw.lower(item)
			if err != nil {
				return nil, err
			}
			out = append(out, ns...)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("cannot serialize %s element", v.Kind())
	}
}

// cssText flattens a style map into CSS declaration text, converting
// camelCase property names to kebab-case. Keys are sorted so output is stable.
func cssText(v any) string {
	var m style.Map
	switch s := v.(type) {
	case style.Map:
		m = s
	case map[string]any:
		m = style.Map(s)
	}
	if m.Empty() {
		return ""
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	var sb strings.Builder
	for i, k := range keys {
		if i > 0 {
			sb.WriteByte(';')
		}
		sb.WriteString(kebab(k))
		sb.WriteByte(':')
		sb.WriteString(fmt.Sprint(m[k]))
	}
	return sb.String()
}

func kebab(s string) string {
	var sb strings.Builder
	for _, r := range s {
		if unicode.IsUpper(r) {
			sb.WriteByte('-')
			sb.WriteRune(unicode.ToLower(r))
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}
