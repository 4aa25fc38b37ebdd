package help

import (
	"strings"

	"github.com/mitchellh/go-wordwrap"
)

// WrapText word-wraps prose to the given column limit with a left indent of
// the given number of spaces. Lines that begin with a shell-prompt marker
// ("$") or with four spaces are example blocks and pass through unwrapped;
// blank lines are preserved as paragraph breaks rather than collapsed.
func WrapText(text string, width int, indent int) string {
	pad := strings.Repeat(" ", indent)
	limit := width - indent
	if limit < 1 {
		limit = 1
	}

	var out []string
	var paragraph []string

	flush := func() {
		if len(paragraph) == 0 {
			return
		}
		joined := strings.Join(paragraph, " ")
		for _, wrapped := range strings.Split(wordwrap.WrapString(joined, uint(limit)), "\n") {
			out = append(out, pad+wrapped)
		}
		paragraph = paragraph[:0]
	}

	for _, line := range strings.Split(strings.TrimRight(text, "\n"), "\n") {
		switch {
		case strings.TrimSpace(line) == "":
			flush()
			out = append(out, "")
		case strings.HasPrefix(line, "$") || strings.HasPrefix(line, "    "):
			flush()
			out = append(out, pad+line)
		default:
			paragraph = append(paragraph, strings.TrimSpace(line))
		}
	}
	flush()

	return strings.Join(out, "\n") + "\n"
}
