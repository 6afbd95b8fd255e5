package node

import "hokusai/pkg/style"

// Builders attach the preset, inline-style, and utility-class fields only
// when present; an empty layer never serializes as an empty object.

// NewContainer builds a Container over the given children.
func NewContainer(children []Node, resolved style.Resolved, tw string) *Container {
	c := &Container{Children: children, Tw: tw}
	if !resolved.Preset.Empty() {
		c.Preset = resolved.Preset
	}
	if !resolved.Inline.Empty() {
		c.Style = resolved.Inline
	}
	return c
}

// NewText builds a Text leaf with the given content.
func NewText(text string, resolved style.Resolved, tw string) *Text {
	t := &Text{Text: text, Tw: tw}
	if !resolved.Preset.Empty() {
		t.Preset = resolved.Preset
	}
	if !resolved.Inline.Empty() {
		t.Style = resolved.Inline
	}
	return t
}

// NewImage builds an Image leaf. Callers must guarantee src is non-empty;
// width and height are optional.
func NewImage(src string, width, height *float64, resolved style.Resolved, tw string) *Image {
	i := &Image{Src: src, Width: width, Height: height, Tw: tw}
	if !resolved.Preset.Empty() {
		i.Preset = resolved.Preset
	}
	if !resolved.Inline.Empty() {
		i.Style = resolved.Inline
	}
	return i
}
