// Package resolver merges the mixed positional and keyword tokens that
// follow a command name into one canonical argument vector, ordered exactly
// as the command's manifest declares its arguments.
//
// A keyword-supplied argument fills its declared slot, and that slot is then
// skipped during positional fill rather than reassigned; positional tokens
// fill the remaining slots in declaration order. This tie-break is part of
// the command-line contract and must not be "simplified".
package resolver
