package element

import (
	"fmt"
	"reflect"
)

// Kind identifies which variant of the element union a value belongs to.
type Kind int

const (
	KindEmpty Kind = iota
	KindPrimitive
	KindDeferred
	KindSequence
	KindHost
	KindFunc
	KindForwardRef
	KindMemo
	KindFragment
)

func (k Kind) String() string {
	switch k {
	case KindEmpty:
		return "empty"
	case KindPrimitive:
		return "primitive"
	case KindDeferred:
		return "deferred"
	case KindSequence:
		return "sequence"
	case KindHost:
		return "host"
	case KindFunc:
		return "func"
	case KindForwardRef:
		return "forwardref"
	case KindMemo:
		return "memo"
	case KindFragment:
		return "fragment"
	}
	return "unknown"
}

// Element is the closed union of inputs the compiler understands. Arbitrary
// caller values are normalized into exactly one of these variants by
// Normalize; downstream code switches over the variants and nothing else.
type Element interface {
	Kind() Kind
	element()
}

// Empty produces no render output. It stands in for nil, absent, and
// boolean-false inputs so conditional-inclusion idioms work.
type Empty struct{}

// Raw is a primitive leaf: text that becomes a Text render node.
type Raw struct {
	Value string
}

// Pending wraps a deferred value that must be awaited before processing.
type Pending struct {
	Value Deferred
}

// List is an ordered sequence of child inputs. Items are kept as raw values
// and normalized individually as they are resolved.
type List struct {
	Items []any
}

// Host is a concrete markup element with a string tag.
type Host struct {
	Tag   string
	Props Props
}

// Func is a function component: invoked with its props, it returns the
// element to render in its place. The returned value may itself be deferred.
type Func struct {
	Render func(Props) (any, error)
	Props  Props
}

// ForwardRef is a reference-forwarding wrapper. The compiler invokes Render
// with a nil reference.
type ForwardRef struct {
	Render func(props Props, ref any) (any, error)
	Props  Props
}

// Memo wraps another component or host-shaped element one level deep. Props,
// when non-nil, replace the inner element's props on unwrap.
type Memo struct {
	Inner any
	Props Props
}

// Fragment groups children without producing a node of its own.
type Fragment struct {
	Children any
}

func (Empty) Kind() Kind      { return KindEmpty }
func (Raw) Kind() Kind        { return KindPrimitive }
func (Pending) Kind() Kind    { return KindDeferred }
func (List) Kind() Kind       { return KindSequence }
func (Host) Kind() Kind       { return KindHost }
func (Func) Kind() Kind       { return KindFunc }
func (ForwardRef) Kind() Kind { return KindForwardRef }
func (Memo) Kind() Kind       { return KindMemo }
func (Fragment) Kind() Kind   { return KindFragment }

func (Empty) element()      {}
func (Raw) element()        {}
func (Pending) element()    {}
func (List) element()       {}
func (Host) element()       {}
func (Func) element()       {}
func (ForwardRef) element() {}
func (Memo) element()       {}
func (Fragment) element()   {}

// Props carries a host element's attributes, including the conventional
// "children" and "style" entries.
type Props map[string]any

// Children returns the child input under the "children" key, or nil.
func (p Props) Children() any {
	if p == nil {
		return nil
	}
	return p["children"]
}

// String returns the value for key if it is present and a string.
// Non-string values are never coerced.
func (p Props) String(key string) (string, bool) {
	if p == nil {
		return "", false
	}
	s, ok := p[key].(string)
	return s, ok
}

// Normalize converts an arbitrary input value into exactly one Element
// variant. It is total and never fails: unrecognized values are coerced to a
// primitive via string conversion. The check order matters: empties first,
// then deferred values, then sequences, then renderable shapes.
func Normalize(x any) Element {
	switch v := x.(type) {
	case nil:
		return Empty{}
	case bool:
		if !v {
			return Empty{}
		}
		return Raw{Value: "true"}
	case Element:
		return v
	case Deferred:
		return Pending{Value: v}
	case string:
		return Raw{Value: v}
	case []any:
		return List{Items: v}
	case func(Props) (any, error):
		return Func{Render: v}
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return Raw{Value: fmt.Sprint(v)}
	}

	// The single duck-typed step: any other slice or array is a sequence.
	rv := reflect.ValueOf(x)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		items := make([]any, rv.Len())
		for i := range items {
			items[i] = rv.Index(i).Interface()
		}
		return List{Items: items}
	case reflect.Ptr, reflect.Interface:
		if rv.IsNil() {
			return Empty{}
		}
	}

	return Raw{Value: fmt.Sprint(x)}
}

// Classify reports which variant of the union x normalizes to.
func Classify(x any) Kind {
	return Normalize(x).Kind()
}
