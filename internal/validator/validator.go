// Package validator checks a resolved argument vector against the command's
// declared arity bounds and value patterns. Validation is purely structural
// and textual; whether a key or name actually exists on-chain is the
// executor's problem.
package validator

import (
	"context"
	"errors"

	"github.com/vk/chainctl/internal/ctxlog"
	"github.com/vk/chainctl/internal/registry"
)

// ErrInvalidArguments is the single aggregate failure signal. Per-field
// diagnostics are deliberately not surfaced; callers render usage text
// instead.
var ErrInvalidArguments = errors.New("validator: invalid arguments")

// ErrUnrecognizedCommand is returned when the command name is not present in
// the registry.
var ErrUnrecognizedCommand = errors.New("validator: unrecognized command")

// Validate accepts iff name exists in the registry, len(args) falls within
// the command's inclusive arity bounds, and every value matches the pattern
// of the declaration at its index. Declarations without a pattern accept any
// value.
func Validate(ctx context.Context, reg *registry.Registry, name string, args []string) error {
	logger := ctxlog.FromContext(ctx)

	cmd, ok := reg.Lookup(name)
	if !ok {
		return ErrUnrecognizedCommand
	}

	if len(args) < cmd.MinArgs || len(args) > cmd.MaxArgs {
		logger.Debug("Argument count outside arity bounds.", "command", name, "argc", len(args), "min", cmd.MinArgs, "max", cmd.MaxArgs)
		return ErrInvalidArguments
	}

	for i, val := range args {
		if i >= len(cmd.Args) {
			// Arity permits more values than were declared; nothing to
			// match them against.
			break
		}
		pattern := cmd.Args[i].Pattern
		if pattern == nil {
			continue
		}
		if !pattern.MatchString(val) {
			logger.Debug("Argument failed its pattern check.", "command", name, "arg", cmd.Args[i].Name)
			return ErrInvalidArguments
		}
	}

	logger.Debug("Arguments validated.", "command", name, "argc", len(args))
	return nil
}
