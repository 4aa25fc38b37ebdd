package app

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/vk/chainctl/internal/netconfig"
)

// Invocation is the product of the parse pipeline: a validated command,
// its canonical argument vector, the merged network settings, and the
// executor-directed flag overrides.
type Invocation struct {
	Command   string             `json:"command"`
	Args      []string           `json:"args"`
	DryRun    bool               `json:"dry_run,omitempty"`
	Estimate  bool               `json:"estimate,omitempty"`
	Unsafe    bool               `json:"unsafe,omitempty"`
	Overrides map[string]string  `json:"overrides,omitempty"`
	Settings  netconfig.Settings `json:"settings"`
}

// Executor consumes validated invocations. The implementations that talk to
// key stores, transaction builders, and storage hubs live outside this
// layer; this package only defines the handoff.
type Executor interface {
	Execute(ctx context.Context, inv *Invocation) error
}

// EchoExecutor renders the invocation it receives as indented JSON. It is
// the default collaborator wired by the entrypoint, which makes the binary
// usable as a parse/validate front end on its own.
type EchoExecutor struct {
	W io.Writer
}

// Execute implements Executor.
func (e *EchoExecutor) Execute(ctx context.Context, inv *Invocation) error {
	out, err := json.MarshalIndent(inv, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode invocation: %w", err)
	}
	fmt.Fprintln(e.W, string(out))
	return nil
}
