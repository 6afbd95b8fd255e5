package render

import (
	"context"
	"image"

	"hokusai/pkg/node"
)

// Options controls a single render of a node tree.
type Options struct {
	Width  int
	Height int
	// Format is the requested output encoding ("png", "webp", ...);
	// interpretation is up to the engine.
	Format string
}

// Engine rasterizes a render-node tree. hokusai never implements Engine; it
// is the boundary to the external layout and rasterization collaborator.
// Compile output is passed to Render verbatim.
type Engine interface {
	Render(ctx context.Context, root node.Node, opts Options) (image.Image, error)
}

// EngineFunc adapts a plain function to the Engine interface.
type EngineFunc func(ctx context.Context, root node.Node, opts Options) (image.Image, error)

func (f EngineFunc) Render(ctx context.Context, root node.Node, opts Options) (image.Image, error) {
	return f(ctx, root, opts)
}
