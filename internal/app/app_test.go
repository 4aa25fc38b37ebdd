package app

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vk/chainctl/internal/cli"
)

// testKey is a syntactically valid private key for exercising key-taking
// commands.
const testKey = "5512d64244fb3b38f5439109403436d31ce8b2ca97e1eb219564ad4bbe4b4b01"

// captureExecutor records the invocation it receives instead of executing
// anything.
type captureExecutor struct {
	inv *Invocation
}

func (c *captureExecutor) Execute(_ context.Context, inv *Invocation) error {
	c.inv = inv
	return nil
}

// newTestApp builds an App over the given raw argument vector with a capture
// executor wired in.
func newTestApp(t *testing.T, args ...string) (*App, *captureExecutor, *bytes.Buffer) {
	t.Helper()
	var outW, errW bytes.Buffer
	exec := &captureExecutor{}
	cfg := NewConfig(context.Background(), args)
	return NewApp(&outW, &errW, cfg, exec), exec, &outW
}

func TestRun_HandsValidatedInvocationToExecutor(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	app, exec, _ := newTestApp(t, "get_address", testKey)

	// --- Act ---
	err := app.Run(context.Background())

	// --- Assert ---
	require.NoError(t, err)
	require.NotNil(t, exec.inv)
	require.Equal(t, "get_address", exec.inv.Command)
	require.Equal(t, []string{testKey}, exec.inv.Args)
	require.Equal(t, "https://api.chainid.org", exec.inv.Settings.APIURL)
}

func TestRun_KeywordArgumentsAreResolvedBeforeHandoff(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	app, exec, _ := newTestApp(t, "whois", "--blockchain_id", "alice.id")

	// --- Act ---
	err := app.Run(context.Background())

	// --- Assert ---
	require.NoError(t, err)
	require.Equal(t, []string{"alice.id"}, exec.inv.Args)
}

func TestRun_GlobalFlagsFlowIntoTheInvocation(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	app, exec, _ := newTestApp(t, "-n", "-e", "-F", "250", "whois", "alice.id")

	// --- Act ---
	err := app.Run(context.Background())

	// --- Assert ---
	require.NoError(t, err)
	require.True(t, exec.inv.DryRun)
	require.True(t, exec.inv.Estimate)
	require.Equal(t, map[string]string{"fee_rate": "250"}, exec.inv.Overrides)
}

func TestRun_EndpointOverridesLandInSettingsNotOverrides(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	app, exec, _ := newTestApp(t, "-H", "http://localhost:16268", "whois", "alice.id")

	// --- Act ---
	err := app.Run(context.Background())

	// --- Assert ---
	require.NoError(t, err)
	require.Equal(t, "http://localhost:16268", exec.inv.Settings.APIURL)
	require.NotContains(t, exec.inv.Overrides, "api_url")
}

func TestRun_NoCommandRendersIndexAndExitsNonZero(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	app, exec, outW := newTestApp(t)

	// --- Act ---
	err := app.Run(context.Background())

	// --- Assert ---
	var exitErr *cli.ExitError
	require.ErrorAs(t, err, &exitErr)
	require.Equal(t, 1, exitErr.Code)
	require.Contains(t, outW.String(), "All commands")
	require.Nil(t, exec.inv, "nothing may reach the executor")
}

func TestRun_UnrecognizedCommandRendersIndex(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	app, exec, outW := newTestApp(t, "frobnicate")

	// --- Act ---
	err := app.Run(context.Background())

	// --- Assert ---
	var exitErr *cli.ExitError
	require.ErrorAs(t, err, &exitErr)
	require.Equal(t, 1, exitErr.Code)
	require.Contains(t, exitErr.Message, `unrecognized command "frobnicate"`)
	require.Contains(t, outW.String(), "All commands")
	require.Nil(t, exec.inv)
}

func TestRun_ValidationFailureRendersCommandUsage(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	app, exec, outW := newTestApp(t, "get_address", "not-a-key")

	// --- Act ---
	err := app.Run(context.Background())

	// --- Assert ---
	var exitErr *cli.ExitError
	require.ErrorAs(t, err, &exitErr)
	require.Equal(t, 1, exitErr.Code)
	require.Contains(t, outW.String(), "usage:")
	require.Contains(t, outW.String(), "get_address")
	require.Nil(t, exec.inv, "an invalid vector must never execute")
}

func TestRun_HelpRendersUsageWithoutExecuting(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	app, exec, outW := newTestApp(t, "help", "whois")

	// --- Act ---
	err := app.Run(context.Background())

	// --- Assert ---
	require.NoError(t, err, "help is a successful invocation")
	require.Contains(t, outW.String(), "usage:")
	require.Contains(t, outW.String(), "whois BLOCKCHAIN_ID")
	require.Nil(t, exec.inv)
}

func TestRun_BareHelpRendersIndex(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	app, _, outW := newTestApp(t, "help")

	// --- Act ---
	err := app.Run(context.Background())

	// --- Assert ---
	require.NoError(t, err)
	require.Contains(t, outW.String(), "All commands")
}

func TestRun_DocsDumpsTheCommandSurfaceAsJSON(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	app, exec, outW := newTestApp(t, "docs")

	// --- Act ---
	err := app.Run(context.Background())

	// --- Assert ---
	require.NoError(t, err)
	require.Nil(t, exec.inv, "docs is handled before the executor")

	var docs []struct {
		Name    string `json:"name"`
		Group   string `json:"group"`
		MinArgs int    `json:"min_args"`
		MaxArgs int    `json:"max_args"`
	}
	require.NoError(t, json.Unmarshal(outW.Bytes(), &docs))
	require.Equal(t, app.Registry().Len(), len(docs))
}

func TestEchoExecutor_RendersInvocationAsJSON(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	var buf bytes.Buffer
	exec := &EchoExecutor{W: &buf}
	inv := &Invocation{Command: "whois", Args: []string{"alice.id"}}

	// --- Act ---
	err := exec.Execute(context.Background(), inv)

	// --- Assert ---
	require.NoError(t, err)

	var decoded Invocation
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Equal(t, "whois", decoded.Command)
	require.Equal(t, []string{"alice.id"}, decoded.Args)
}
