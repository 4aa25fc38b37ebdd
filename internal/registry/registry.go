package registry

import (
	"fmt"
	"sort"

	"github.com/vk/chainctl/internal/model"
)

// Registry holds every registered command definition for a single
// application instance. Populate it through the Load functions before first
// use and treat it as read-only afterwards.
type Registry struct {
	commands map[string]*model.Command
}

// New creates and initializes a new, empty Registry instance.
func New() *Registry {
	return &Registry{
		commands: make(map[string]*model.Command),
	}
}

// Register adds a command definition. Two manifests declaring the same
// command name is an authoring error, not something to resolve at runtime.
func (r *Registry) Register(cmd *model.Command) error {
	if _, exists := r.commands[cmd.Name]; exists {
		return fmt.Errorf("command %q already registered", cmd.Name)
	}
	r.commands[cmd.Name] = cmd
	return nil
}

// Lookup returns the definition for name and whether it exists. Lookups are
// case-sensitive.
func (r *Registry) Lookup(name string) (*model.Command, bool) {
	cmd, ok := r.commands[name]
	return cmd, ok
}

// Len returns the number of registered commands.
func (r *Registry) Len() int {
	return len(r.commands)
}

// Commands returns every registered definition sorted by name.
func (r *Registry) Commands() []*model.Command {
	out := make([]*model.Command, 0, len(r.commands))
	for _, cmd := range r.commands {
		out = append(out, cmd)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
