package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/vk/chainctl/internal/ctxlog"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Options holds the outcome of a global-flag scan: which boolean flags were
// present, the values of the value-taking flags that were supplied, and the
// remainder of tokens that no flag consumed.
type Options struct {
	booleans map[byte]bool
	values   map[byte]string

	// Remainder contains every token not consumed as a flag or flag value,
	// in original order. The first remainder token is the command name.
	Remainder []string
}

// Bool reports whether the boolean flag was present.
func (o *Options) Bool(flag byte) bool {
	return o.booleans[flag]
}

// Value returns the value supplied for a value-taking flag. A flag whose
// value token was missing from the command line reports ok=false; required
// global flags are the executor's concern, not an error here.
func (o *Options) Value(flag byte) (string, bool) {
	v, ok := o.values[flag]
	return v, ok
}

// ParseOptions scans args for the flags declared in spec. Each character of
// spec is a flag letter; a ':' suffix marks it as value-taking. A malformed
// spec is a programming error and panics.
func ParseOptions(ctx context.Context, args []string, spec string) *Options {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Global flag scan started.", "spec", spec, "argc", len(args))

	opts := &Options{
		booleans: make(map[byte]bool),
		values:   make(map[byte]string),
	}

	consumed := make([]bool, len(args))

	for i := 0; i < len(spec); i++ {
		letter := spec[i]
		if letter == ':' {
			panic(fmt.Sprintf("cli: flag spec %q has a ':' with no preceding flag letter", spec))
		}
		takesValue := i+1 < len(spec) && spec[i+1] == ':'
		if takesValue {
			i++
		}

		scanFlag(args, consumed, opts, letter, takesValue)
	}

	for i, tok := range args {
		if consumed[i] || tok == "--" {
			continue
		}
		opts.Remainder = append(opts.Remainder, tok)
	}

	logger.Debug("Global flag scan finished.", "remainder", len(opts.Remainder))
	return opts
}

// scanFlag performs the single-token lookup for one declared flag. The scan
// stops at the first unconsumed "--" token; each flag restarts its own scan
// from the top of the buffer, so flags are position-independent.
func scanFlag(args []string, consumed []bool, opts *Options, letter byte, takesValue bool) {
	want := "-" + string(letter)

	for i := 0; i < len(args); i++ {
		if consumed[i] {
			continue
		}
		if args[i] == "--" {
			return
		}
		if args[i] != want {
			continue
		}

		if !takesValue {
			opts.booleans[letter] = true
			consumed[i] = true
			return
		}

		if i+1 >= len(args) {
			// A value flag with no following token stays unset.
			return
		}
		opts.values[letter] = args[i+1]
		consumed[i] = true
		consumed[i+1] = true
		return
	}
}

// ValidateSpec checks a flag specification string for duplicate letters.
// Like a malformed spec, duplicates are an authoring bug, so this is meant
// for init-time use.
func ValidateSpec(spec string) error {
	seen := make(map[byte]struct{})
	for i := 0; i < len(spec); i++ {
		letter := spec[i]
		if letter == ':' {
			continue
		}
		if _, dup := seen[letter]; dup {
			return fmt.Errorf("flag spec %q declares '-%s' twice", spec, string(letter))
		}
		seen[letter] = struct{}{}
	}
	if strings.HasPrefix(spec, ":") {
		return fmt.Errorf("flag spec %q starts with ':'", spec)
	}
	return nil
}
