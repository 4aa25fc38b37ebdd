package registry

import (
	"context"
	"fmt"
	"strings"

	"github.com/vk/chainctl/internal/ctxlog"
)

// ValidateRegistry performs a sanity check over every registered definition.
// Inverted arity bounds make a command impossible to invoke, so they are
// rejected; declaring fewer args than max_args only degrades help output and
// is surfaced as a warning.
func (r *Registry) ValidateRegistry(ctx context.Context) error {
	var errs []string
	logger := ctxlog.FromContext(ctx)

	for _, cmd := range r.Commands() {
		if cmd.MinArgs > cmd.MaxArgs {
			errs = append(errs, fmt.Sprintf("command '%s': min_args %d exceeds max_args %d", cmd.Name, cmd.MinArgs, cmd.MaxArgs))
		}
		if len(cmd.Args) < cmd.MaxArgs {
			logger.Warn("Manifest declares fewer args than max_args; trailing arguments will render without names in help output.", "command", cmd.Name, "args", len(cmd.Args), "max_args", cmd.MaxArgs)
		}
		if cmd.Group == "" {
			errs = append(errs, fmt.Sprintf("command '%s': group must not be empty", cmd.Name))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("registry validation failed:\n- %s", strings.Join(errs, "\n- "))
	}

	return nil
}
