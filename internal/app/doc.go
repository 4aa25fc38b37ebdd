// Package app contains the core application logic. It wires the command
// registry, the global-flag scan, argument resolution, validation, help
// rendering, and the network configuration into one pipeline, decoupled
// from any specific entrypoint.
//
// The pipeline never executes a command. Its product is a validated
// Invocation — the command name, the canonical argument vector, and the
// merged network settings — handed to an Executor collaborator. Every
// user-input failure along the way is recovered into usage output; only
// programmer errors (broken embedded manifests, an unknown network
// selector) escape as panics.
package app
