package model

import (
	"context"
	"fmt"
	"regexp"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/zclconf/go-cty/cty/gocty"

	"github.com/vk/chainctl/internal/ctxlog"
)

// manifestRootSchema defines the top-level structure of a manifest file,
// expecting one or more 'command' blocks.
type manifestRootSchema struct {
	Commands []*hclCommand `hcl:"command,block"`
}

// hclCommand represents a single 'command' block in the HCL file for
// decoding purposes.
type hclCommand struct {
	Name string   `hcl:"name,label"`
	Body hcl.Body `hcl:",remain"`
}

// commandBodySchema is the HCL schema for the body of a 'command' block.
var commandBodySchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{
		{Name: "group", Required: true},
		{Name: "min_args", Required: true},
		{Name: "max_args", Required: true},
		{Name: "help", Required: true},
		{Name: "internal"},
	},
	Blocks: []hcl.BlockHeaderSchema{
		{Type: "arg", LabelNames: []string{"name"}},
	},
}

// argBodySchema is the HCL schema for the body of an 'arg' block. Every
// attribute is optional: a bare `arg "name" {}` declares an unconstrained
// argument.
var argBodySchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{
		{Name: "pattern"},
		{Name: "realtype"},
		{Name: "positional"},
	},
}

// NewCommands is a factory function for creating command definitions from a
// parsed manifest file.
func NewCommands(ctx context.Context, hclFile *hcl.File, filePath string) ([]*Command, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Creating command definitions", "file_path", filePath)

	commands, diags := ParseManifestFile(ctx, hclFile, filePath)
	if diags.HasErrors() {
		return nil, diags
	}

	return commands, nil
}

// ParseManifestFile decodes an HCL file that contains one or more 'command'
// blocks into Command definitions, compiling each declared value pattern
// exactly once.
func ParseManifestFile(ctx context.Context, hclFile *hcl.File, filePath string) ([]*Command, hcl.Diagnostics) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Parsing command definitions from file", "file_path", filePath)

	var allDiags hcl.Diagnostics
	if hclFile == nil {
		allDiags = append(allDiags, &hcl.Diagnostic{
			Severity: hcl.DiagError,
			Summary:  "HCL file is nil",
		})
		return nil, allDiags
	}

	root := &manifestRootSchema{}
	diags := gohcl.DecodeBody(hclFile.Body, nil, root)
	allDiags = append(allDiags, diags...)
	if diags.HasErrors() {
		return nil, allDiags
	}

	commands := make([]*Command, 0, len(root.Commands))

	for _, parsed := range root.Commands {
		bodyContent, contentDiags := parsed.Body.Content(commandBodySchema)
		allDiags = append(allDiags, contentDiags...)
		if contentDiags.HasErrors() {
			continue // Skip this command but keep parsing the others.
		}

		definition := &Command{Name: parsed.Name}

		if attr, exists := bodyContent.Attributes["group"]; exists {
			exprDiags := gohcl.DecodeExpression(attr.Expr, nil, &definition.Group)
			allDiags = append(allDiags, exprDiags...)
		}
		if attr, exists := bodyContent.Attributes["help"]; exists {
			exprDiags := gohcl.DecodeExpression(attr.Expr, nil, &definition.Help)
			allDiags = append(allDiags, exprDiags...)
		}
		if attr, exists := bodyContent.Attributes["internal"]; exists {
			exprDiags := gohcl.DecodeExpression(attr.Expr, nil, &definition.Internal)
			allDiags = append(allDiags, exprDiags...)
		}

		var arityDiags hcl.Diagnostics
		definition.MinArgs, arityDiags = decodeArity(bodyContent.Attributes["min_args"])
		allDiags = append(allDiags, arityDiags...)
		definition.MaxArgs, arityDiags = decodeArity(bodyContent.Attributes["max_args"])
		allDiags = append(allDiags, arityDiags...)

		var argDiags hcl.Diagnostics
		definition.Args, argDiags = parseArgs(bodyContent.Blocks)
		allDiags = append(allDiags, argDiags...)

		commands = append(commands, definition)
	}

	if allDiags.HasErrors() {
		return nil, allDiags
	}

	logger.Debug("Successfully parsed command definitions", "count", len(commands))
	return commands, nil
}

// decodeArity evaluates an arity attribute into a non-negative count.
// Arities must be literal numbers; no evaluation context is provided.
func decodeArity(attr *hcl.Attribute) (int, hcl.Diagnostics) {
	var diags hcl.Diagnostics
	if attr == nil {
		// Content() already reported the missing required attribute.
		return 0, diags
	}

	val, valDiags := attr.Expr.Value(nil)
	diags = append(diags, valDiags...)
	if valDiags.HasErrors() {
		return 0, diags
	}

	var n int
	if err := gocty.FromCtyValue(val, &n); err != nil {
		diags = append(diags, &hcl.Diagnostic{
			Severity: hcl.DiagError,
			Summary:  "Invalid arity value",
			Detail:   fmt.Sprintf("The '%s' attribute must be a whole number: %v.", attr.Name, err),
			Subject:  attr.Expr.Range().Ptr(),
		})
		return 0, diags
	}
	if n < 0 {
		diags = append(diags, &hcl.Diagnostic{
			Severity: hcl.DiagError,
			Summary:  "Invalid arity value",
			Detail:   fmt.Sprintf("The '%s' attribute must not be negative.", attr.Name),
			Subject:  attr.Expr.Range().Ptr(),
		})
		return 0, diags
	}

	return n, diags
}

// parseArgs finds and decodes all 'arg' blocks from a command's HCL body,
// preserving declaration order.
func parseArgs(blocks hcl.Blocks) ([]*ArgDefinition, hcl.Diagnostics) {
	var diags hcl.Diagnostics
	var args []*ArgDefinition
	seen := make(map[string]struct{})

	for _, block := range blocks.OfType("arg") {
		// The schema guarantees us one label.
		argName := block.Labels[0]

		if _, exists := seen[argName]; exists {
			diags = append(diags, &hcl.Diagnostic{
				Severity: hcl.DiagError,
				Summary:  "Duplicate arg definition",
				Detail:   fmt.Sprintf("An arg named '%s' has already been defined for this command.", argName),
				Subject:  &block.DefRange,
			})
			continue
		}
		seen[argName] = struct{}{}

		bodyContent, contentDiags := block.Body.Content(argBodySchema)
		diags = append(diags, contentDiags...)
		if contentDiags.HasErrors() {
			continue
		}

		def := &ArgDefinition{Name: argName}

		if attr, exists := bodyContent.Attributes["pattern"]; exists {
			evalDiags := gohcl.DecodeExpression(attr.Expr, nil, &def.PatternSource)
			diags = append(diags, evalDiags...)
			if evalDiags.HasErrors() {
				continue
			}

			re, err := regexp.Compile(def.PatternSource)
			if err != nil {
				diags = append(diags, &hcl.Diagnostic{
					Severity: hcl.DiagError,
					Summary:  "Invalid value pattern",
					Detail:   fmt.Sprintf("The pattern for '%s' does not compile: %v.", argName, err),
					Subject:  attr.Expr.Range().Ptr(),
				})
				continue
			}
			def.Pattern = re
		}
		if attr, exists := bodyContent.Attributes["realtype"]; exists {
			evalDiags := gohcl.DecodeExpression(attr.Expr, nil, &def.Realtype)
			diags = append(diags, evalDiags...)
		}
		if attr, exists := bodyContent.Attributes["positional"]; exists {
			evalDiags := gohcl.DecodeExpression(attr.Expr, nil, &def.Positional)
			diags = append(diags, evalDiags...)
		}

		args = append(args, def)
	}

	return args, diags
}
