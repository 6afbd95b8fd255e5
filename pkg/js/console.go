package js

import (
	"context"
	"log/slog"
	"strings"

	"github.com/dop251/goja"

	"hokusai/pkg/compose"
)

// consoleAPI bridges console.log, console.info, console.warn, and
// console.error onto the compose logger. Script diagnostics follow the host
// application's logging configuration and are silent by default, rather than
// writing to stdio from library code.
type consoleAPI struct{}

func (c consoleAPI) register(vm *goja.Runtime) {
	console := vm.NewObject()
	console.Set("log", c.emit(slog.LevelInfo))
	console.Set("info", c.emit(slog.LevelInfo))
	console.Set("warn", c.emit(slog.LevelWarn))
	console.Set("error", c.emit(slog.LevelError))
	vm.Set("console", console)
}

func (c consoleAPI) emit(level slog.Level) func(goja.FunctionCall) goja.Value {
	return func(call goja.FunctionCall) goja.Value {
		logger := compose.Logger()
		if !logger.Enabled(context.Background(), level) {
			return goja.Undefined()
		}
		parts := make([]string, len(call.Arguments))
		for i, arg := range call.Arguments {
			parts[i] = arg.String()
		}
		logger.Log(context.Background(), level, strings.Join(parts, " "), "source", "js")
		return goja.Undefined()
	}
}
