package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/vk/chainctl/internal/cli"
	"github.com/vk/chainctl/internal/ctxlog"
	"github.com/vk/chainctl/internal/resolver"
	"github.com/vk/chainctl/internal/validator"
)

// errNoCommand is the failure for an argument vector with no command token
// at all.
var errNoCommand = errors.New("no command given")

// Run drives one invocation through the pipeline: command lookup, argument
// resolution, validation, and the executor handoff. Every user-input
// failure is recovered into usage output on outW plus a non-fatal ExitError;
// nothing past this point should panic.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	rem := a.config.Remainder
	if len(rem) == 0 {
		return a.usage(ctx, "", errNoCommand)
	}
	name, tokens := rem[0], rem[1:]

	if name == "help" {
		// The registry carries help's own manifest, but rendering never
		// needs resolution: a single optional token selects the command.
		target := ""
		if len(tokens) > 0 {
			target = tokens[0]
		}
		fmt.Fprint(a.outW, a.formatter.CommandUsage(target))
		return nil
	}

	cmd, ok := a.registry.Lookup(name)
	if !ok {
		return a.usage(ctx, "", fmt.Errorf("unrecognized command %q", name))
	}

	args, err := resolver.Resolve(ctx, cmd, tokens)
	if err != nil {
		return a.usage(ctx, name, err)
	}

	if err := validator.Validate(ctx, a.registry, name, args); err != nil {
		return a.usage(ctx, name, err)
	}

	if name == "docs" {
		return a.renderDocs()
	}

	inv := &Invocation{
		Command:   name,
		Args:      args,
		DryRun:    a.config.DryRun,
		Estimate:  a.config.Estimate,
		Unsafe:    a.config.Unsafe,
		Overrides: a.config.Overrides,
		Settings:  a.settings,
	}

	a.logger.Debug("Handing invocation to executor.", "command", name, "argc", len(args))
	return a.executor.Execute(ctx, inv)
}

// usage recovers a parse, resolve, or validation failure into help output:
// command-specific when the command name was recognized, the full index
// otherwise. The returned ExitError keeps the process contract (exit 1,
// never execute) without treating bad input as a crash.
func (a *App) usage(ctx context.Context, command string, cause error) error {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Rendering usage after input failure.", "command", command, "reason", cause)

	if command == "" {
		fmt.Fprint(a.outW, a.formatter.CommandIndex())
	} else {
		fmt.Fprint(a.outW, a.formatter.CommandUsage(command))
	}

	return &cli.ExitError{Code: 1, Message: cause.Error()}
}

// docArg is the machine-readable form of one argument declaration.
type docArg struct {
	Name       string `json:"name"`
	Pattern    string `json:"pattern,omitempty"`
	Realtype   string `json:"realtype,omitempty"`
	Positional bool   `json:"positional,omitempty"`
}

// docCommand is the machine-readable form of one command definition.
type docCommand struct {
	Name    string   `json:"name"`
	Group   string   `json:"group"`
	MinArgs int      `json:"min_args"`
	MaxArgs int      `json:"max_args"`
	Help    string   `json:"help"`
	Args    []docArg `json:"args,omitempty"`
}

// renderDocs dumps the entire command surface as JSON, for documentation
// generators.
func (a *App) renderDocs() error {
	cmds := a.registry.Commands()
	out := make([]docCommand, 0, len(cmds))
	for _, cmd := range cmds {
		doc := docCommand{
			Name:    cmd.Name,
			Group:   cmd.Group,
			MinArgs: cmd.MinArgs,
			MaxArgs: cmd.MaxArgs,
			Help:    cmd.Help,
		}
		for _, arg := range cmd.Args {
			doc.Args = append(doc.Args, docArg{
				Name:       arg.Name,
				Pattern:    arg.PatternSource,
				Realtype:   arg.Realtype,
				Positional: arg.Positional,
			})
		}
		out = append(out, doc)
	}

	encoded, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode command docs: %w", err)
	}
	fmt.Fprintln(a.outW, string(encoded))
	return nil
}
