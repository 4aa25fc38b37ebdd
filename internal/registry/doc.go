// Package registry provides the central command table for the CLI.
//
// The Registry maps the command names typed by users (e.g. "lookup",
// "namespace_preorder") to their parsed definitions: argument declarations,
// arity bounds, display group, and help prose. The built-in command surface
// ships as HCL manifests embedded in the binary; an optional extension
// directory may contribute further manifests at startup.
//
// During application startup the registry is populated and then validated.
// After that point it is immutable: it is built once, passed by reference
// into every component that needs it, and never mutated again, which makes
// it safe to share without synchronization.
package registry
