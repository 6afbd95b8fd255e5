package node

import (
	"encoding/json"

	"hokusai/pkg/style"
)

// Node is one node of the render tree handed to the external rasterization
// engine. It is a closed union of Container, Text, and Image.
type Node interface {
	node()
}

// Container holds ordered child nodes.
type Container struct {
	Children []Node    `json:"children,omitempty"`
	Preset   style.Map `json:"preset,omitempty"`
	Style    style.Map `json:"style,omitempty"`
	Tw       string    `json:"tw,omitempty"`
}

// Text is a leaf text run. The renderer measures and wraps it as a unit.
type Text struct {
	Text   string    `json:"text"`
	Preset style.Map `json:"preset,omitempty"`
	Style  style.Map `json:"style,omitempty"`
	Tw     string    `json:"tw,omitempty"`
}

// Image is a leaf image. Src is always present and non-empty.
type Image struct {
	Src    string    `json:"src"`
	Width  *float64  `json:"width,omitempty"`
	Height *float64  `json:"height,omitempty"`
	Preset style.Map `json:"preset,omitempty"`
	Style  style.Map `json:"style,omitempty"`
	Tw     string    `json:"tw,omitempty"`
}

func (*Container) node() {}
func (*Text) node()      {}
func (*Image) node()     {}

// The wire shape is a tagged union: every node carries a "type" field so the
// renderer can decode the tree without structural guessing.

type taggedContainer struct {
	Type string `json:"type"`
	*containerAlias
}

type containerAlias Container

func (c *Container) MarshalJSON() ([]byte, error) {
	return json.Marshal(taggedContainer{Type: "container", containerAlias: (*containerAlias)(c)})
}

type taggedText struct {
	Type string `json:"type"`
	*textAlias
}

type textAlias Text

func (t *Text) MarshalJSON() ([]byte, error) {
	return json.Marshal(taggedText{Type: "text", textAlias: (*textAlias)(t)})
}

type taggedImage struct {
	Type string `json:"type"`
	*imageAlias
}

type imageAlias Image

func (i *Image) MarshalJSON() ([]byte, error) {
	return json.Marshal(taggedImage{Type: "image", imageAlias: (*imageAlias)(i)})
}
