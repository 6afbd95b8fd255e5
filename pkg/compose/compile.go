package compose

import (
	"context"

	"hokusai/pkg/node"
	"hokusai/pkg/style"
)

// Compile converts an element tree into exactly one render node for the
// external rasterization engine. A single root element that resolves to one
// node is returned as-is, preserving the 1:1 root mapping the renderer relies
// on for sizing. Multiple top-level siblings are wrapped in a synthetic
// full-bleed container; empty input yields an empty container.
func Compile(ctx context.Context, root any, opts ...Option) (node.Node, error) {
	nodes, err := Resolve(ctx, root, opts...)
	if err != nil {
		return nil, err
	}

	Logger().Debug("compiled", "roots", len(nodes))

	switch len(nodes) {
	case 0:
		return &node.Container{}, nil
	case 1:
		return nodes[0], nil
	}
	return &node.Container{
		Children: nodes,
		Style:    style.Map{"width": "100%", "height": "100%"},
	}, nil
}

// Resolve walks an element tree and returns its render nodes in document
// order. Most callers want Compile; Resolve is the flattening walk beneath it.
func Resolve(ctx context.Context, root any, opts ...Option) ([]node.Node, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	r := &resolver{cfg: cfg}
	return r.resolve(ctx, root)
}
