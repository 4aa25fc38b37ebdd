package model

import "regexp"

// ArgDefinition is the fully parsed declaration of a single command argument.
type ArgDefinition struct {
	// Name is the argument's name, taken from the HCL block label. For
	// example, in `arg "address" {}`, the Name is "address".
	Name string

	// Pattern is the compiled value contract, or nil when the declaration
	// carries no pattern. A nil Pattern accepts any non-empty string.
	// Patterns are compiled once at manifest load and kept here as data so
	// validation never recompiles them.
	Pattern *regexp.Regexp

	// PatternSource is the original pattern text, kept for diagnostics.
	PatternSource string

	// Realtype is a documentation-only label for the expected content
	// (e.g. "private_key", "url"). It never drives coercion; every value
	// stays text.
	Realtype string

	// Positional marks an argument that may only be supplied by position,
	// never as a `--name value` pair.
	Positional bool
}

// Command is the format-agnostic representation of a command manifest.
type Command struct {
	Name  string
	Group string

	// MinArgs and MaxArgs are the inclusive bounds on the supplied argument
	// count. Args may be declared at MaxArgs length while MinArgs marks the
	// boundary beyond which arguments are optional; the engine does not
	// require the bounds to agree with len(Args).
	MinArgs int
	MaxArgs int

	// Help is free-form prose. Lines starting with "$" or four spaces are
	// literal example blocks and are never re-wrapped.
	Help string

	// Internal hides the command from the rendered index without
	// unregistering it.
	Internal bool

	// Args is ordered; the index of a declaration is its position on the
	// command line and its slot in the canonical argument vector.
	Args []*ArgDefinition
}

// Required reports whether the argument at index i must be supplied, which
// is derived from the arity lower bound rather than stored per argument.
func (c *Command) Required(i int) bool {
	return i < c.MinArgs
}

// ArgNamed returns the declaration whose name is name and its position, or
// (nil, -1). Purely positional declarations never match by name.
func (c *Command) ArgNamed(name string) (*ArgDefinition, int) {
	for i, a := range c.Args {
		if a.Positional {
			continue
		}
		if a.Name == name {
			return a, i
		}
	}
	return nil, -1
}
