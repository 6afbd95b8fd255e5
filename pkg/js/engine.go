package js

import (
	"fmt"

	"github.com/dop251/goja"
)

// Engine evaluates JavaScript that builds element trees.
type Engine struct {
	vm *goja.Runtime
}

// New creates a new JS engine with a fresh goja runtime. The runtime gets a
// console API and an `h(type, props, ...children)` element constructor.
func New() *Engine {
	vm := goja.New()
	e := &Engine{vm: vm}

	consoleAPI{}.register(vm)
	registerH(vm)

	return e
}

// Runtime exposes the underlying goja runtime so callers can install their
// own globals before evaluating.
func (e *Engine) Runtime() *goja.Runtime {
	return e.vm
}

// Evaluate runs src and converts its completion value into an element input
// suitable for compose.Compile. goja drains the promise job queue before
// RunString returns, so promises settled by script code arrive resolved.
func (e *Engine) Evaluate(src string) (any, error) {
	v, err := e.vm.RunString(src)
	if err != nil {
		return nil, fmt.Errorf("js: %w", err)
	}
	return FromValue(e.vm, v), nil
}

// registerH installs the hyperscript-style element constructor:
// h(type, props, ...children) returns {type, props: {...props, children}}.
func registerH(vm *goja.Runtime) {
	vm.Set("h", func(call goja.FunctionCall) goja.Value {
		obj := vm.NewObject()

		var typ goja.Value = goja.Undefined()
		if len(call.Arguments) > 0 {
			typ = call.Arguments[0]
		}
		obj.Set("type", typ)

		props := vm.NewObject()
		if len(call.Arguments) > 1 {
			if po, ok := call.Arguments[1].(*goja.Object); ok {
				for _, k := range po.Keys() {
					props.Set(k, po.Get(k))
				}
			}
		}

		if rest := call.Arguments; len(rest) > 2 {
			rest = rest[2:]
			if len(rest) == 1 {
				props.Set("children", rest[0])
			} else {
				items := make([]interface{}, len(rest))
				for i, a := range rest {
					items[i] = a
				}
				props.Set("children", vm.NewArray(items...))
			}
		}

		obj.Set("props", props)
		return obj
	})
}
