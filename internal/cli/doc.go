// Package cli extracts the single-letter global flags from the raw process
// argument vector, leaving a remainder of non-flag tokens for the command
// layer. It also owns process-level concerns like exit codes.
//
// Flags are declared by a compact specification string: each character is a
// flag letter, optionally followed by ':' meaning the flag takes a value.
// Each flag is an independent single-token lookup over the argument vector,
// not a left-to-right grouped parse; a literal "--" token only terminates
// the search of the flag currently being looked up. Tokens that do not match
// any declared flag, including unrecognized "-x" tokens, pass through to the
// remainder untouched and in their original relative order.
package cli
