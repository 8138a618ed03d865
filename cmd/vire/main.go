// Command vire is a thin demonstrator around the runtime core: it
// wires a toy Compiler/Interpreter pair (see demo.go) and the native
// builtin modules into a frame.Runtime, then runs whatever source is
// given against exec()'s six-step contract. A host
// embedding the core for real supplies its own Compiler and
// Interpreter; this binary exists to exercise the wiring, not to be
// one.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/vire-lang/vire/internal/config"
	"github.com/vire-lang/vire/internal/exc"
	"github.com/vire-lang/vire/internal/frame"
	"github.com/vire-lang/vire/internal/object"
	"github.com/vire-lang/vire/internal/opdispatch"
	"github.com/vire-lang/vire/internal/vmod"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

	if len(os.Args) < 2 {
		fmt.Fprintf(os.Stderr, "usage: %s 'name(arg, ...)'\n", os.Args[0])
		os.Exit(2)
	}
	source := os.Args[1]

	tunables, err := loadTunables()
	if err != nil {
		logger.Error("loading config overlay", "error", err)
		os.Exit(1)
	}

	rt, err := newRuntime(tunables)
	if err != nil {
		logger.Error("building runtime", "error", err)
		os.Exit(1)
	}

	globals := object.NewMap(opdispatch.Hash, opdispatch.ObjectEq)
	logger.Debug("running", "source", source)

	result, exception := frame.Exec(rt, object.Str(source), globals, nil, nil)
	if exception != nil {
		printTraceback(exception)
		os.Exit(1)
	}
	fmt.Println(repr(result))
}

// loadTunables applies an optional TOML overlay named by VIRE_CONFIG,
// falling back to config's package defaults when unset.
func loadTunables() (config.Tunables, error) {
	path := os.Getenv("VIRE_CONFIG")
	if path == "" {
		return config.Resolve(nil), nil
	}
	overlay, err := config.LoadOverlay(path)
	if err != nil {
		return config.Tunables{}, err
	}
	return config.Resolve(overlay), nil
}

func newRuntime(tunables config.Tunables) (*frame.Runtime, error) {
	builtins, exception := (&frame.ModuleDef{
		Name: "builtins",
		Members: adaptMembers(func(set func(string, object.Value) error) error {
			if err := vmod.BuiltinsMembers(set); err != nil {
				return err
			}
			if err := vmod.NetRPCMembers(set); err != nil {
				return err
			}
			return vmod.StoreMembers(set)
		}),
	}).Build(opdispatch.Hash, opdispatch.ObjectEq)
	if exception != nil {
		return nil, fmt.Errorf("building builtins module: %s", exception.Error())
	}

	return &frame.Runtime{
		Thread:      frame.NewThreadState(tunables.RecursionLimit),
		Compiler:    demoCompiler{},
		Interpreter: demoInterpreter{},
		Builtins:    builtins.Globals,
		Hash:        opdispatch.Hash,
		Eq:          opdispatch.ObjectEq,
	}, nil
}

// adaptMembers bridges internal/vmod's set-callback signature to
// frame.ModuleDef.Members's mod-argument signature.
func adaptMembers(populate func(set func(string, object.Value) error) error) func(mod *frame.Module) *exc.Exception {
	return func(mod *frame.Module) *exc.Exception {
		err := populate(func(name string, v object.Value) error {
			return mod.Globals.Set(object.Str(name), v)
		})
		if err != nil {
			return exc.New(exc.InterpreterError, "%v", err)
		}
		return nil
	}
}

func repr(v object.Value) string {
	s, exception := opdispatch.Repr(v)
	if exception != nil {
		return fmt.Sprintf("<unreprable: %s>", exception.Error())
	}
	return s
}

// printTraceback writes a short uncaught-exception report, colourised
// only when stderr is a real terminal.
func printTraceback(e *exc.Exception) {
	if isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd()) {
		fmt.Fprintf(os.Stderr, "\x1b[31m%s\x1b[0m: %s\n", e.Kind(), e.Message())
	} else {
		fmt.Fprintf(os.Stderr, "%s: %s\n", e.Kind(), e.Message())
	}
}
