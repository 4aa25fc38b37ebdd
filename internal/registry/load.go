package registry

import (
	"context"
	"embed"
	"fmt"

	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/vk/chainctl/internal/ctxlog"
	"github.com/vk/chainctl/internal/fsutil"
	"github.com/vk/chainctl/internal/model"
)

//go:embed manifests/*.hcl
var embeddedManifests embed.FS

// LoadEmbedded parses the built-in command manifests compiled into the
// binary and registers every definition. A failure here means the shipped
// manifests are broken, which is a build problem rather than user input.
func (r *Registry) LoadEmbedded(ctx context.Context) error {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Registry loading embedded command manifests...")

	entries, err := embeddedManifests.ReadDir("manifests")
	if err != nil {
		return fmt.Errorf("failed to read embedded manifests: %w", err)
	}

	parser := hclparse.NewParser()

	for _, entry := range entries {
		name := "manifests/" + entry.Name()
		src, err := embeddedManifests.ReadFile(name)
		if err != nil {
			return fmt.Errorf("failed to read embedded manifest %s: %w", name, err)
		}

		if err := r.loadSource(ctx, parser, src, name); err != nil {
			return err
		}
	}

	logger.Info("Registry loaded successfully.", "commands_registered", r.Len())
	return nil
}

// LoadDirectory recursively parses every .hcl manifest under path and
// registers the definitions it finds, on top of whatever is already
// registered. An empty directory is not an error.
func (r *Registry) LoadDirectory(ctx context.Context, path string) error {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Registry loading command manifests from path...", "path", path)

	filePaths, err := fsutil.FindFilesByExtension(path, ".hcl")
	if err != nil {
		logger.Error("Failed to walk manifest directory", "path", path, "error", err)
		return err
	}

	if len(filePaths) == 0 {
		logger.Warn("No .hcl manifest files found in path", "path", path)
		return nil
	}

	logger.Debug("Found HCL files to load", "files", filePaths)

	parser := hclparse.NewParser()

	for _, filePath := range filePaths {
		src, diags := parser.ParseHCLFile(filePath)
		if diags.HasErrors() {
			return fmt.Errorf("failed to parse HCL file %s: %w", filePath, diags)
		}

		commands, err := model.NewCommands(ctx, src, filePath)
		if err != nil {
			return fmt.Errorf("failed to process command definitions in %s: %w", filePath, err)
		}
		for _, cmd := range commands {
			if err := r.Register(cmd); err != nil {
				return fmt.Errorf("manifest %s: %w", filePath, err)
			}
		}
		logger.Debug("Successfully loaded definitions from HCL file", "file", filePath)
	}

	return nil
}

// loadSource parses one in-memory manifest and registers its commands.
func (r *Registry) loadSource(ctx context.Context, parser *hclparse.Parser, src []byte, name string) error {
	hclFile, diags := parser.ParseHCL(src, name)
	if diags.HasErrors() {
		return fmt.Errorf("failed to parse HCL manifest %s: %w", name, diags)
	}

	commands, err := model.NewCommands(ctx, hclFile, name)
	if err != nil {
		return fmt.Errorf("failed to process command definitions in %s: %w", name, err)
	}
	for _, cmd := range commands {
		if err := r.Register(cmd); err != nil {
			return fmt.Errorf("manifest %s: %w", name, err)
		}
	}

	return nil
}
