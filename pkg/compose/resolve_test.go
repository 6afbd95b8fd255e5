package compose

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"hokusai/pkg/element"
	"hokusai/pkg/node"
)

func TestResolve_EmptiesYieldNothing(t *testing.T) {
	for _, input := range []any{nil, false} {
		nodes, err := Resolve(context.Background(), input)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(nodes) != 0 {
			t.Errorf("expected no nodes for %v, got %d", input, len(nodes))
		}
	}
}

func TestResolve_PrimitiveYieldsText(t *testing.T) {
	nodes, err := Resolve(context.Background(), "hello", WithoutPresets())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []node.Node{&node.Text{Text: "hello"}}
	if diff := cmp.Diff(want, nodes); diff != "" {
		t.Errorf("unexpected nodes (-want +got):\n%s", diff)
	}
}

func TestResolve_VoidTagsVanish(t *testing.T) {
	for _, tag := range []string{"head", "meta", "link", "style", "script"} {
		nodes, err := Resolve(context.Background(), element.Host{
			Tag:   tag,
			Props: element.Props{"children": []any{"discarded", element.Host{Tag: "div"}}},
		})
		if err != nil {
			t.Fatalf("<%s>: unexpected error: %v", tag, err)
		}
		if len(nodes) != 0 {
			t.Errorf("expected <%s> subtree to vanish, got %d nodes", tag, len(nodes))
		}
	}
}

func TestResolve_BreakYieldsNewline(t *testing.T) {
	nodes, err := Resolve(context.Background(), element.Host{Tag: "br"}, WithoutPresets())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []node.Node{&node.Text{Text: "\n"}}
	if diff := cmp.Diff(want, nodes); diff != "" {
		t.Errorf("unexpected nodes (-want +got):\n%s", diff)
	}
}

func TestResolve_ImageWithDimensions(t *testing.T) {
	nodes, err := Resolve(context.Background(), element.Host{
		Tag: "img",
		Props: element.Props{
			"src":    "logo.png",
			"width":  "120",
			"height": 64,
		},
	}, WithoutPresets())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	img, ok := nodes[0].(*node.Image)
	if !ok {
		t.Fatalf("expected Image, got %T", nodes[0])
	}
	if img.Src != "logo.png" {
		t.Errorf("expected src 'logo.png', got '%s'", img.Src)
	}
	if img.Width == nil || *img.Width != 120 {
		t.Errorf("expected width 120, got %v", img.Width)
	}
	if img.Height == nil || *img.Height != 64 {
		t.Errorf("expected height 64, got %v", img.Height)
	}
}

func TestResolve_ImageNonNumericDimensionAbsent(t *testing.T) {
	nodes, err := Resolve(context.Background(), element.Host{
		Tag:   "img",
		Props: element.Props{"src": "a.png", "width": "wide"},
	}, WithoutPresets())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if img := nodes[0].(*node.Image); img.Width != nil {
		t.Errorf("expected unparseable width to be absent, got %v", *img.Width)
	}
}

func TestResolve_MissingImageSourceErrors(t *testing.T) {
	_, err := Resolve(context.Background(), element.Host{Tag: "img", Props: element.Props{}})
	if err == nil {
		t.Fatal("expected an error")
	}
	var missing *MissingSourceError
	if !errors.As(err, &missing) {
		t.Fatalf("expected MissingSourceError, got %v", err)
	}
	if missing.Tag != "img" {
		t.Errorf("expected tag 'img', got '%s'", missing.Tag)
	}
}

func TestResolve_SVGSerializesToImageSource(t *testing.T) {
	nodes, err := Resolve(context.Background(), element.Host{
		Tag: "svg",
		Props: element.Props{
			"viewBox":  "0 0 10 10",
			"width":    10,
			"children": element.Host{Tag: "path", Props: element.Props{"d": "M0 0"}},
		},
	}, WithoutPresets())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	img, ok := nodes[0].(*node.Image)
	if !ok {
		t.Fatalf("expected Image, got %T", nodes[0])
	}
	if !strings.HasPrefix(img.Src, "<svg") || !strings.Contains(img.Src, "<path") {
		t.Errorf("expected serialized markup as source, got %s", img.Src)
	}
	if img.Width == nil || *img.Width != 10 {
		t.Errorf("expected width 10, got %v", img.Width)
	}
}

func TestResolve_SVGUtilityClassNotInMarkup(t *testing.T) {
	nodes, err := Resolve(context.Background(), element.Host{
		Tag:   "svg",
		Props: element.Props{"viewBox": "0 0 4 4", "tw": "w-8"},
	}, WithoutPresets())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	img := nodes[0].(*node.Image)
	if img.Tw != "w-8" {
		t.Errorf("expected utility string on the node, got '%s'", img.Tw)
	}
	if strings.Contains(img.Src, "tw=") {
		t.Errorf("expected utility prop absent from markup source, got %s", img.Src)
	}
}

func TestResolve_TextCollapsing(t *testing.T) {
	nodes, err := Resolve(context.Background(), element.Host{
		Tag:   "p",
		Props: element.Props{"children": []any{"Hello ", "World"}},
	}, WithoutPresets())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []node.Node{&node.Text{Text: "Hello World"}}
	if diff := cmp.Diff(want, nodes); diff != "" {
		t.Errorf("unexpected nodes (-want +got):\n%s", diff)
	}
}

func TestResolve_EmptyChildSequenceYieldsContainer(t *testing.T) {
	nodes, err := Resolve(context.Background(), element.Host{
		Tag:   "div",
		Props: element.Props{"children": []any{}},
	}, WithoutPresets())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []node.Node{&node.Container{}}
	if diff := cmp.Diff(want, nodes); diff != "" {
		t.Errorf("unexpected nodes (-want +got):\n%s", diff)
	}
}

func TestResolve_ConditionalTextStillCollapses(t *testing.T) {
	nodes, err := Resolve(context.Background(), element.Host{
		Tag:   "p",
		Props: element.Props{"children": []any{"always", false, " sometimes"}},
	}, WithoutPresets())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []node.Node{&node.Text{Text: "always sometimes"}}
	if diff := cmp.Diff(want, nodes); diff != "" {
		t.Errorf("unexpected nodes (-want +got):\n%s", diff)
	}
}

func TestResolve_MixedChildrenDoNotCollapse(t *testing.T) {
	nodes, err := Resolve(context.Background(), element.Host{
		Tag: "p",
		Props: element.Props{"children": []any{
			"Hello ",
			element.Host{Tag: "span", Props: element.Props{"children": "World"}},
		}},
	}, WithoutPresets())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []node.Node{
		&node.Container{Children: []node.Node{
			&node.Text{Text: "Hello "},
			&node.Text{Text: "World"},
		}},
	}
	if diff := cmp.Diff(want, nodes); diff != "" {
		t.Errorf("unexpected nodes (-want +got):\n%s", diff)
	}
}

func TestResolve_FragmentContributesChildrenDirectly(t *testing.T) {
	nodes, err := Resolve(context.Background(), element.Fragment{
		Children: []any{"a", element.Host{Tag: "br"}},
	}, WithoutPresets())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []node.Node{
		&node.Text{Text: "a"},
		&node.Text{Text: "\n"},
	}
	if diff := cmp.Diff(want, nodes); diff != "" {
		t.Errorf("unexpected nodes (-want +got):\n%s", diff)
	}
}

func TestResolve_FunctionComponent(t *testing.T) {
	component := element.Func{
		Render: func(p element.Props) (any, error) {
			return element.Host{Tag: "p", Props: element.Props{"children": p["greeting"]}}, nil
		},
		Props: element.Props{"greeting": "hi"},
	}

	nodes, err := Resolve(context.Background(), component, WithoutPresets())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []node.Node{&node.Text{Text: "hi"}}
	if diff := cmp.Diff(want, nodes); diff != "" {
		t.Errorf("unexpected nodes (-want +got):\n%s", diff)
	}
}

func TestResolve_FunctionComponentReturningDeferred(t *testing.T) {
	component := element.Func{
		Render: func(element.Props) (any, error) {
			return element.Go(func() (any, error) { return "later", nil }), nil
		},
	}

	nodes, err := Resolve(context.Background(), component, WithoutPresets())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []node.Node{&node.Text{Text: "later"}}
	if diff := cmp.Diff(want, nodes); diff != "" {
		t.Errorf("unexpected nodes (-want +got):\n%s", diff)
	}
}

func TestResolve_ForwardRefGetsNilRef(t *testing.T) {
	var seenRef any = "sentinel"
	wrapper := element.ForwardRef{
		Render: func(_ element.Props, ref any) (any, error) {
			seenRef = ref
			return "forwarded", nil
		},
	}

	nodes, err := Resolve(context.Background(), wrapper, WithoutPresets())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if seenRef != nil {
		t.Errorf("expected nil ref, got %v", seenRef)
	}
	want := []node.Node{&node.Text{Text: "forwarded"}}
	if diff := cmp.Diff(want, nodes); diff != "" {
		t.Errorf("unexpected nodes (-want +got):\n%s", diff)
	}
}

func TestResolve_MemoizedComponent(t *testing.T) {
	memo := element.Memo{
		Inner: element.Func{
			Render: func(p element.Props) (any, error) { return p["label"], nil },
		},
		Props: element.Props{"label": "memoized"},
	}

	nodes, err := Resolve(context.Background(), memo, WithoutPresets())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []node.Node{&node.Text{Text: "memoized"}}
	if diff := cmp.Diff(want, nodes); diff != "" {
		t.Errorf("unexpected nodes (-want +got):\n%s", diff)
	}
}

func TestResolve_MemoizedHostElement(t *testing.T) {
	memo := element.Memo{
		Inner: element.Host{Tag: "p"},
		Props: element.Props{"children": "from memo"},
	}

	nodes, err := Resolve(context.Background(), memo, WithoutPresets())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []node.Node{&node.Text{Text: "from memo"}}
	if diff := cmp.Diff(want, nodes); diff != "" {
		t.Errorf("unexpected nodes (-want +got):\n%s", diff)
	}
}

func TestResolve_DeferredRejectionPropagates(t *testing.T) {
	boom := errors.New("fetch failed")
	_, err := Resolve(context.Background(), []any{
		"sibling",
		element.Failed(boom),
	})
	if !errors.Is(err, boom) {
		t.Errorf("expected the deferred failure unwrapped, got %v", err)
	}
}

func TestResolve_ComponentErrorAborts(t *testing.T) {
	boom := errors.New("render failed")
	_, err := Resolve(context.Background(), element.Func{
		Render: func(element.Props) (any, error) { return nil, boom },
	})
	if !errors.Is(err, boom) {
		t.Errorf("expected component error, got %v", err)
	}
}

func TestResolve_UtilityClassPassthrough(t *testing.T) {
	nodes, err := Resolve(context.Background(), element.Host{
		Tag:   "div",
		Props: element.Props{"tw": "flex p-4", "children": "x"},
	}, WithoutPresets())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	text := nodes[0].(*node.Text)
	if text.Tw != "flex p-4" {
		t.Errorf("expected raw utility string, got '%s'", text.Tw)
	}
}

func TestResolve_UtilityClassPropConfigurable(t *testing.T) {
	nodes, err := Resolve(context.Background(), element.Host{
		Tag:   "div",
		Props: element.Props{"className": "p-2", "tw": "ignored"},
	}, WithoutPresets(), WithUtilityProp("className"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	container := nodes[0].(*node.Container)
	if container.Tw != "p-2" {
		t.Errorf("expected 'p-2' from renamed prop, got '%s'", container.Tw)
	}
}
