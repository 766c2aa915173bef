package formatter

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"cstyle/internal/options"
)

// wrapMaxCodeLength splits line into one or more lines no wider than
// o.MaxCodeLength display columns, trying split points in priority
// order: last ';' (a for-statement's clauses), last "&&"/"||", last
// ',', last '(', then last whitespace. Continuation lines inherit
// line's leading indent plus one extra in-statement indent step. A
// line with no eligible split point, or MaxCodeLength == 0, is
// returned unchanged.
func wrapMaxCodeLength(o *options.Options, line string) []string {
	if o.MaxCodeLength <= 0 || runewidth.StringWidth(line) <= o.MaxCodeLength {
		return []string{line}
	}

	indent := leadingWhitespace(line)
	contIndent := indent + continuationIndent(o)

	var out []string
	rest := line
	for runewidth.StringWidth(rest) > o.MaxCodeLength {
		cut := findSplitPoint(o, rest, o.MaxCodeLength)
		if cut <= 0 {
			break
		}
		head := strings.TrimRight(rest[:cut], " \t")
		if head == "" {
			break
		}
		out = append(out, head)
		tail := strings.TrimLeft(rest[cut:], " \t")
		if tail == "" {
			rest = ""
			break
		}
		rest = contIndent + tail
	}
	if rest != "" {
		out = append(out, rest)
	}
	if len(out) == 0 {
		return []string{line}
	}
	return out
}

// findSplitPoint returns a byte offset into line at or before the
// display-width budget, preferring ';' over "&&"/"||" over ',' over
// '(' over plain whitespace. It returns 0 if no eligible point exists
// past the leading indent.
func findSplitPoint(o *options.Options, line string, budget int) int {
	limit := widthLimitOffset(line, budget)
	if limit <= 0 {
		return 0
	}
	indentLen := len(leadingWhitespace(line))

	if i := lastByte(line, ';', indentLen, limit); i > 0 {
		return i + 1
	}
	if i := lastLogicalOp(line, indentLen, limit); i > 0 {
		if o.BreakAfterLogical {
			return i + 2
		}
		return i
	}
	if i := lastByte(line, ',', indentLen, limit); i > 0 {
		return i + 1
	}
	if i := lastByte(line, '(', indentLen, limit); i > 0 {
		return i + 1
	}
	if i := lastWhitespace(line, indentLen, limit); i > 0 {
		return i
	}
	return 0
}

// widthLimitOffset returns the byte offset just past the last rune
// that still fits within budget display columns.
func widthLimitOffset(line string, budget int) int {
	width := 0
	for i, r := range line {
		w := runewidth.RuneWidth(r)
		if width+w > budget {
			return i
		}
		width += w
	}
	return len(line)
}

func lastByte(s string, b byte, from, to int) int {
	if to > len(s) {
		to = len(s)
	}
	for i := to - 1; i >= from; i-- {
		if s[i] == b {
			return i
		}
	}
	return -1
}

func lastLogicalOp(s string, from, to int) int {
	if to > len(s) {
		to = len(s)
	}
	for i := to - 2; i >= from; i-- {
		if (s[i] == '&' && s[i+1] == '&') || (s[i] == '|' && s[i+1] == '|') {
			return i
		}
	}
	return -1
}

func lastWhitespace(s string, from, to int) int {
	if to > len(s) {
		to = len(s)
	}
	for i := to - 1; i >= from; i-- {
		if s[i] == ' ' || s[i] == '\t' {
			return i
		}
	}
	return -1
}

func leadingWhitespace(s string) string {
	i := 0
	for i < len(s) && (s[i] == ' ' || s[i] == '\t') {
		i++
	}
	return s[:i]
}

func continuationIndent(o *options.Options) string {
	n := o.IndentLength
	if n <= 0 {
		n = 4
	}
	if o.IndentMode == options.IndentForceTab || o.IndentMode == options.IndentForceTabX {
		return "\t"
	}
	return strings.Repeat(" ", n)
}
