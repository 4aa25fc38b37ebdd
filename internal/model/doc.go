// Package model defines the format-agnostic representation of the command
// schema: which commands exist, which arguments each one declares, how those
// arguments are constrained, and the help prose attached to them.
//
// Why have a formal Command definition?
//
// By defining a clear, typed schema for a command's arguments, we establish a
// formal "contract" or "API". This contract is the key to everything the
// front end derives from the registry:
//
//  1. Resolution: a `--name value` pair on the command line can be matched
//     against the declared argument list and folded into the canonical
//     positional order.
//
//  2. Validation: each supplied value can be checked against the pattern its
//     declaration carries, and the supplied count against the declared arity
//     bounds, before anything is handed to an executor.
//
//  3. Documentation: usage synopses and the grouped command index are
//     rendered from the same declarations, so help text can never drift from
//     what the parser actually accepts.
//
// This approach shifts error detection to the edge of the process, providing
// fast and consistent feedback before any remote operation is attempted.
package model
