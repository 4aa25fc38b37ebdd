// Package help renders usage text from the command registry: per-command
// synopses in both positional and keyword form, word-wrapped help prose, and
// the grouped command index. Rendering is pure; callers decide where the
// text goes.
package help
