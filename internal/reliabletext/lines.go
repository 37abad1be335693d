package reliabletext

import (
	"iter"
	"strings"
)

// Lines yields the lines of text lazily. The separator splits lines rather
// than terminating them, so text without a separator is exactly one line and
// a trailing separator produces a final empty line. Carriage returns are
// ordinary characters.
func Lines(text string) iter.Seq[string] {
	return strings.SplitSeq(text, LineSeparator)
}
