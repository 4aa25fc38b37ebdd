package model

import (
	"context"
	"testing"

	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/stretchr/testify/require"
)

// parseSource is a test helper that runs ParseManifestFile over an in-memory
// manifest.
func parseSource(t *testing.T, src string) ([]*Command, error) {
	t.Helper()
	hclFile, diags := hclparse.NewParser().ParseHCL([]byte(src), "test.hcl")
	require.False(t, diags.HasErrors(), "test manifest should be syntactically valid: %s", diags)
	return NewCommands(context.Background(), hclFile, "test.hcl")
}

func TestParseManifestFile_FullCommand(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	src := `
command "whois" {
  group    = "Blockchain Queries"
  min_args = 1
  max_args = 2

  help = <<-EOT
    Look up the registration record for a blockchain ID.
  EOT

  arg "blockchain_id" {
    pattern  = "^([a-z0-9\\-_.+]{3,37})\\.([a-z0-9\\-_+]{1,19})$"
    realtype = "blockchain_id"
  }
  arg "page" {
    pattern  = "^[0-9]+$"
    realtype = "integer"
  }
}
`

	// --- Act ---
	commands, err := parseSource(t, src)

	// --- Assert ---
	require.NoError(t, err)
	require.Len(t, commands, 1)

	cmd := commands[0]
	require.Equal(t, "whois", cmd.Name)
	require.Equal(t, "Blockchain Queries", cmd.Group)
	require.Equal(t, 1, cmd.MinArgs)
	require.Equal(t, 2, cmd.MaxArgs)
	require.Contains(t, cmd.Help, "registration record")
	require.Len(t, cmd.Args, 2)

	// Declaration order is the positional order.
	require.Equal(t, "blockchain_id", cmd.Args[0].Name)
	require.Equal(t, "page", cmd.Args[1].Name)

	// Patterns are compiled at load time and usable as-is.
	require.NotNil(t, cmd.Args[0].Pattern)
	require.True(t, cmd.Args[0].Pattern.MatchString("alice.id"))
	require.False(t, cmd.Args[0].Pattern.MatchString("alice"))

	// Required is derived from the arity lower bound.
	require.True(t, cmd.Required(0))
	require.False(t, cmd.Required(1))
}

func TestParseManifestFile_ArgWithoutPatternAcceptsAnything(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	src := `
command "zonefile_push" {
  group    = "Name Operations"
  min_args = 1
  max_args = 1
  help     = "Push a zone file."

  arg "zonefile" {
    realtype = "path"
  }
}
`

	// --- Act ---
	commands, err := parseSource(t, src)

	// --- Assert ---
	require.NoError(t, err)
	require.Nil(t, commands[0].Args[0].Pattern, "an arg without a pattern declaration carries no compiled pattern")
}

func TestParseManifestFile_DuplicateArgIsAnError(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	src := `
command "broken" {
  group    = "Test"
  min_args = 1
  max_args = 2
  help     = "Broken on purpose."

  arg "name" {}
  arg "name" {}
}
`

	// --- Act ---
	_, err := parseSource(t, src)

	// --- Assert ---
	require.Error(t, err)
	require.Contains(t, err.Error(), "Duplicate arg definition")
}

func TestParseManifestFile_BadPatternIsAnError(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	src := `
command "broken" {
  group    = "Test"
  min_args = 1
  max_args = 1
  help     = "Broken on purpose."

  arg "name" {
    pattern = "^([unclosed$"
  }
}
`

	// --- Act ---
	_, err := parseSource(t, src)

	// --- Assert ---
	require.Error(t, err)
	require.Contains(t, err.Error(), "Invalid value pattern")
}

func TestParseManifestFile_NegativeArityIsAnError(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	src := `
command "broken" {
  group    = "Test"
  min_args = -1
  max_args = 1
  help     = "Broken on purpose."
}
`

	// --- Act ---
	_, err := parseSource(t, src)

	// --- Assert ---
	require.Error(t, err)
	require.Contains(t, err.Error(), "Invalid arity value")
}

func TestArgNamed_SkipsPurelyPositionalArgs(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	src := `
command "example" {
  group    = "Test"
  min_args = 2
  max_args = 2
  help     = "Example."

  arg "data" {
    positional = true
  }
  arg "target" {}
}
`
	commands, err := parseSource(t, src)
	require.NoError(t, err)
	cmd := commands[0]

	// --- Act / Assert ---
	def, pos := cmd.ArgNamed("target")
	require.NotNil(t, def)
	require.Equal(t, 1, pos)

	def, pos = cmd.ArgNamed("data")
	require.Nil(t, def, "a purely positional arg must never match by name")
	require.Equal(t, -1, pos)
}
