package help

import (
	"fmt"
	"sort"
	"strings"

	"github.com/mitchellh/go-wordwrap"

	"github.com/vk/chainctl/internal/model"
	"github.com/vk/chainctl/internal/registry"
)

// DefaultWidth is the column limit used when none is configured.
const DefaultWidth = 80

// bodyIndent is the left indent for synopses and wrapped prose.
const bodyIndent = 2

// Formatter renders usage text from an immutable registry. It holds no
// mutable state, so identical inputs always produce identical output.
type Formatter struct {
	reg   *registry.Registry
	width int
}

// New creates a Formatter over reg rendering at DefaultWidth.
func New(reg *registry.Registry) *Formatter {
	return NewWithWidth(reg, DefaultWidth)
}

// NewWithWidth creates a Formatter with an explicit column limit.
func NewWithWidth(reg *registry.Registry, width int) *Formatter {
	if width < 16 {
		width = 16
	}
	return &Formatter{reg: reg, width: width}
}

// CommandUsage renders the full usage text for one command: both synopsis
// forms followed by the wrapped help prose. An unknown command name falls
// back to the full command index rather than erroring.
func (f *Formatter) CommandUsage(name string) string {
	cmd, ok := f.reg.Lookup(name)
	if !ok {
		return f.CommandIndex()
	}

	var b strings.Builder
	pad := strings.Repeat(" ", bodyIndent)

	b.WriteString("usage:\n\n")
	b.WriteString(pad + rawSynopsis(cmd) + "\n\n")
	for _, line := range keywordSynopsis(cmd) {
		b.WriteString(pad + line + "\n")
	}
	b.WriteString("\n")
	b.WriteString(WrapText(cmd.Help, f.width, bodyIndent))

	return b.String()
}

// CommandIndex renders every non-internal command, clustered by group.
// Groups are sorted lexicographically and names within a group are rendered
// as a wrapped, comma-separated list.
func (f *Formatter) CommandIndex() string {
	byGroup := make(map[string][]string)
	for _, cmd := range f.reg.Commands() {
		if cmd.Internal {
			continue
		}
		byGroup[cmd.Group] = append(byGroup[cmd.Group], cmd.Name)
	}

	groups := make([]string, 0, len(byGroup))
	for g := range byGroup {
		groups = append(groups, g)
	}
	sort.Strings(groups)

	var b strings.Builder
	b.WriteString("All commands (run \"help COMMAND\" for details):\n")

	pad := strings.Repeat(" ", bodyIndent*2)
	for _, g := range groups {
		names := byGroup[g]
		sort.Strings(names)

		b.WriteString("\n" + strings.Repeat(" ", bodyIndent) + g + ":\n")
		joined := strings.Join(names, ", ")
		for _, line := range strings.Split(wordwrap.WrapString(joined, uint(f.width-bodyIndent*2)), "\n") {
			b.WriteString(pad + line + "\n")
		}
	}

	return b.String()
}

// rawSynopsis renders the positional form: the command name followed by
// uppercased argument names, bracketed once the arity lower bound is passed.
func rawSynopsis(cmd *model.Command) string {
	parts := []string{cmd.Name}
	for i, arg := range cmd.Args {
		token := strings.ToUpper(arg.Name)
		if !cmd.Required(i) {
			token = "[" + token + "]"
		}
		parts = append(parts, token)
	}
	return strings.Join(parts, " ")
}

// keywordSynopsis renders the flag form: one line per declared argument,
// with the realtype uppercased as the value placeholder. Purely positional
// arguments have no flag form and keep their positional rendering.
func keywordSynopsis(cmd *model.Command) []string {
	lines := []string{cmd.Name}
	for i, arg := range cmd.Args {
		var token string
		if arg.Positional {
			token = strings.ToUpper(arg.Name)
		} else {
			token = fmt.Sprintf("--%s %s", arg.Name, typePlaceholder(arg))
		}
		if !cmd.Required(i) {
			token = "[" + token + "]"
		}
		lines = append(lines, strings.Repeat(" ", bodyIndent*2)+token)
	}
	return lines
}

// typePlaceholder uppercases the realtype label, falling back to the
// argument name when the declaration carries no realtype.
func typePlaceholder(arg *model.ArgDefinition) string {
	if arg.Realtype != "" {
		return strings.ToUpper(arg.Realtype)
	}
	return strings.ToUpper(arg.Name)
}
