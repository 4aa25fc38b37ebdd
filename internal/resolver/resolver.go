package resolver

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/vk/chainctl/internal/ctxlog"
	"github.com/vk/chainctl/internal/model"
)

var (
	// ErrDuplicateArgument is returned when the same --name is supplied more
	// than once.
	ErrDuplicateArgument = errors.New("resolver: duplicate argument")
	// ErrMissingValue is returned when a --name flag has no following token.
	ErrMissingValue = errors.New("resolver: missing value")
	// ErrUnknownArgument is returned when a --name flag matches no declared
	// argument of the command.
	ErrUnknownArgument = errors.New("resolver: unknown argument")
)

// Resolve turns the token vector following a command name into the canonical
// argument vector for cmd. Tokens may mix bare positional values with
// `--name value` pairs in any order. The result may be shorter than the
// declared argument list; arity bounds are the validator's concern.
func Resolve(ctx context.Context, cmd *model.Command, tokens []string) ([]string, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Resolving command arguments.", "command", cmd.Name, "tokens", len(tokens))

	byName := make(map[string]string)
	var positionals []string

	for i := 0; i < len(tokens); i++ {
		tok := tokens[i]
		if !strings.HasPrefix(tok, "--") {
			positionals = append(positionals, tok)
			continue
		}

		argName := strings.TrimPrefix(tok, "--")
		if _, dup := byName[argName]; dup {
			return nil, fmt.Errorf("%w: --%s supplied more than once", ErrDuplicateArgument, argName)
		}
		if i+1 >= len(tokens) {
			return nil, fmt.Errorf("%w: --%s has no value", ErrMissingValue, argName)
		}
		if def, _ := cmd.ArgNamed(argName); def == nil {
			return nil, fmt.Errorf("%w: --%s is not an argument of %s", ErrUnknownArgument, argName, cmd.Name)
		}

		byName[argName] = tokens[i+1]
		i++
	}

	// Emit in declared order. Keyword-captured slots win and are skipped for
	// positional fill; the remaining slots consume positionals left to right
	// until they run out.
	out := make([]string, 0, len(cmd.Args))
	next := 0
	for _, def := range cmd.Args {
		if val, ok := byName[def.Name]; ok && !def.Positional {
			out = append(out, val)
			continue
		}
		if next >= len(positionals) {
			break
		}
		out = append(out, positionals[next])
		next++
	}

	logger.Debug("Arguments resolved.", "command", cmd.Name, "argc", len(out))
	return out, nil
}
