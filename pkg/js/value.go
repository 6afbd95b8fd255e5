package js

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/dop251/goja"

	"hokusai/pkg/element"
)

// FromValue converts a goja value into an element input. The mapping follows
// the shapes JavaScript callers author:
//
//   - null/undefined         -> nil (empty)
//   - arrays                 -> sequences
//   - promises               -> deferred values
//   - bare functions         -> function components
//   - {type: string, props}  -> host elements
//   - {type: func, props}    -> function components with bound props
//   - {type: symbol, props}  -> fragments
//   - {render: func}         -> forward-ref wrappers
//   - everything else        -> exported as-is for primitive coercion
func FromValue(vm *goja.Runtime, v goja.Value) any {
	if v == nil || goja.IsUndefined(v) || goja.IsNull(v) {
		return nil
	}

	if p, ok := v.Export().(*goja.Promise); ok {
		return deferredFromPromise(vm, p)
	}

	if fn, ok := goja.AssertFunction(v); ok {
		return componentFromFunction(vm, fn, nil)
	}

	obj, ok := v.(*goja.Object)
	if !ok {
		return v.Export()
	}

	if obj.ClassName() == "Array" {
		length := int(obj.Get("length").ToInteger())
		items := make([]any, length)
		for i := 0; i < length; i++ {
			items[i] = FromValue(vm, obj.Get(strconv.Itoa(i)))
		}
		return element.List{Items: items}
	}

	typ := obj.Get("type")
	if typ != nil && !goja.IsUndefined(typ) && !goja.IsNull(typ) {
		props := propsFromValue(vm, obj.Get("props"))
		if _, isSymbol := typ.(*goja.Symbol); isSymbol {
			return element.Fragment{Children: props.Children()}
		}
		if fn, isFn := goja.AssertFunction(typ); isFn {
			return componentFromFunction(vm, fn, obj.Get("props"))
		}
		if tag := typ.String(); tag != "" {
			return element.Host{Tag: tag, Props: props}
		}
	}

	if render := obj.Get("render"); render != nil {
		if fn, isFn := goja.AssertFunction(render); isFn {
			propsVal := obj.Get("props")
			return element.ForwardRef{
				Render: func(element.Props, any) (any, error) {
					out, err := fn(goja.Undefined(), jsValueOrUndefined(propsVal), goja.Null())
					if err != nil {
						return nil, fmt.Errorf("js: forward-ref render: %w", err)
					}
					return FromValue(vm, out), nil
				},
				Props: propsFromValue(vm, propsVal),
			}
		}
	}

	// A plain object: export it raw so style maps survive as map[string]any.
	return obj.Export()
}

// componentFromFunction wraps a JS function as a function component. The
// original JS props value, when present, is passed on invocation; the Go-side
// props are only informational.
func componentFromFunction(vm *goja.Runtime, fn goja.Callable, propsVal goja.Value) any {
	return element.Func{
		Render: func(element.Props) (any, error) {
			out, err := fn(goja.Undefined(), jsValueOrUndefined(propsVal))
			if err != nil {
				return nil, fmt.Errorf("js: component: %w", err)
			}
			return FromValue(vm, out), nil
		},
		Props: propsFromValue(vm, propsVal),
	}
}

// deferredFromPromise adapts a settled promise. A promise still pending after
// evaluation has an external resolver goja cannot drive, so awaiting it would
// never finish; it surfaces as a deferred failure instead.
func deferredFromPromise(vm *goja.Runtime, p *goja.Promise) element.Deferred {
	switch p.State() {
	case goja.PromiseStateFulfilled:
		return element.Resolved(FromValue(vm, p.Result()))
	case goja.PromiseStateRejected:
		return element.Failed(fmt.Errorf("js: promise rejected: %s", p.Result().String()))
	}
	return element.Failed(errors.New("js: promise still pending after evaluation"))
}

func propsFromValue(vm *goja.Runtime, v goja.Value) element.Props {
	if v == nil || goja.IsUndefined(v) || goja.IsNull(v) {
		return nil
	}
	obj, ok := v.(*goja.Object)
	if !ok {
		return nil
	}
	props := element.Props{}
	for _, k := range obj.Keys() {
		props[k] = FromValue(vm, obj.Get(k))
	}
	return props
}

func jsValueOrUndefined(v goja.Value) goja.Value {
	if v == nil {
		return goja.Undefined()
	}
	return v
}
