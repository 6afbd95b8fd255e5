package compose

import (
	"context"
	"strconv"

	"golang.org/x/sync/errgroup"

	"hokusai/pkg/element"
	"hokusai/pkg/markup"
	"hokusai/pkg/node"
	"hokusai/pkg/style"
)

// voidTags produce no render output; their subtrees are discarded entirely.
var voidTags = map[string]bool{
	"head":   true,
	"meta":   true,
	"link":   true,
	"style":  true,
	"script": true,
}

type resolver struct {
	cfg config
}

// resolve walks one element and returns its render nodes in document order.
// Even a leaf resolves to a one-element sequence; callers flatten. The first
// error wins and unwinds the whole walk.
func (r *resolver) resolve(ctx context.Context, x any) ([]node.Node, error) {
	switch v := element.Normalize(x).(type) {
	case element.Empty:
		return nil, nil

	case element.Pending:
		// The only true suspension point besides fan-out admission.
		inner, err := v.Value.Await(ctx)
		if err != nil {
			return nil, err
		}
		return r.resolve(ctx, inner)

	case element.List:
		return r.fanOut(ctx, v.Items)

	case element.Func:
		out, err := v.Render(v.Props)
		if err != nil {
			return nil, err
		}
		return r.resolve(ctx, out)

	case element.ForwardRef:
		out, err := v.Render(v.Props, nil)
		if err != nil {
			return nil, err
		}
		return r.resolve(ctx, out)

	case element.Memo:
		return r.resolveMemo(ctx, v)

	case element.Fragment:
		// A fragment contributes its children directly, no node of its own.
		return r.resolve(ctx, v.Children)

	case element.Host:
		return r.resolveHost(ctx, v)

	case element.Raw:
		return []node.Node{node.NewText(v.Value, style.ForText(r.cfg.presets), "")}, nil
	}

	// Normalize is total; no other variant exists.
	return nil, nil
}

// resolveMemo unwraps one level and re-dispatches. The memo wrapper's props,
// when set, replace the inner target's props.
func (r *resolver) resolveMemo(ctx context.Context, m element.Memo) ([]node.Node, error) {
	switch inner := element.Normalize(m.Inner).(type) {
	case element.Func:
		props := inner.Props
		if m.Props != nil {
			props = m.Props
		}
		out, err := inner.Render(props)
		if err != nil {
			return nil, err
		}
		return r.resolve(ctx, out)
	case element.Host:
		// Rare path: a memoized host-shaped element.
		if m.Props != nil {
			inner.Props = m.Props
		}
		return r.resolveHost(ctx, inner)
	default:
		return r.resolve(ctx, m.Inner)
	}
}

// fanOut resolves sequence entries with bounded concurrency. Each entry gets
// an index as it is admitted and writes its result into that index's slot, so
// output order always matches input order regardless of completion order.
// Admission is credit-based: once the cap is reached, the next entry waits
// for any one in-flight resolution to finish.
func (r *resolver) fanOut(ctx context.Context, items []any) ([]node.Node, error) {
	if len(items) == 0 {
		return nil, nil
	}

	Logger().Debug("fan-out", "items", len(items), "limit", r.cfg.concurrency)

	slots := make([][]node.Node, len(items))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(r.cfg.concurrency)
	for i, item := range items {
		i, item := i, item
		g.Go(func() error {
			nodes, err := r.resolve(ctx, item)
			if err != nil {
				return err
			}
			slots[i] = nodes
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var out []node.Node
	for _, s := range slots {
		out = append(out, s...)
	}
	return out, nil
}

func (r *resolver) resolveHost(ctx context.Context, h element.Host) ([]node.Node, error) {
	if voidTags[h.Tag] {
		return nil, nil
	}

	resolved := style.Resolve(h.Tag, h.Props, r.cfg.presets)
	tw := style.UtilityClass(h.Props, r.cfg.utilityProp)

	switch h.Tag {
	case "br":
		return []node.Node{node.NewText("\n", resolved, tw)}, nil

	case "img":
		src, _ := h.Props.String("src")
		if src == "" {
			return nil, &MissingSourceError{Tag: h.Tag}
		}
		w := numeric(h.Props["width"])
		ht := numeric(h.Props["height"])
		return []node.Node{node.NewImage(src, w, ht, resolved, tw)}, nil

	case "svg":
		src, err := markup.Serialize(h, r.cfg.utilityProp)
		if err != nil {
			return nil, err
		}
		if src == "" {
			return nil, &MissingSourceError{Tag: h.Tag}
		}
		w := numeric(h.Props["width"])
		ht := numeric(h.Props["height"])
		return []node.Node{node.NewImage(src, w, ht, resolved, tw)}, nil
	}

	if text, ok := collapseText(h.Props.Children()); ok {
		return []node.Node{node.NewText(text, resolved, tw)}, nil
	}

	children, err := r.resolve(ctx, h.Props.Children())
	if err != nil {
		return nil, err
	}
	return []node.Node{node.NewContainer(children, resolved, tw)}, nil
}

// numeric coerces image dimensions from whatever was supplied. Go numeric
// types and numeric strings are accepted; anything else is absent.
func numeric(v any) *float64 {
	var f float64
	switch n := v.(type) {
	case int:
		f = float64(n)
	case int32:
		f = float64(n)
	case int64:
		f = float64(n)
	case uint:
		f = float64(n)
	case float32:
		f = float64(n)
	case float64:
		f = n
	case string:
		parsed, err := strconv.ParseFloat(n, 64)
		if err != nil {
			return nil
		}
		f = parsed
	default:
		return nil
	}
	return &f
}
