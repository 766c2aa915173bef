package formatter

import (
	"strings"

	"cstyle/internal/lexrules"
	"cstyle/internal/options"
)

// alignPointersAndReferences re-spaces a lone '*' or '&' that sits
// between a type token and a declared name, per o.PointerAlign /
// o.ReferenceAlign. Multi-char operators (&&, *=, ->, **) and anything
// in a quote or comment are left untouched.
func alignPointersAndReferences(o *options.Options, line string) string {
	ptrAlign := o.PointerAlign
	refAlign := o.ReferenceAlign
	if refAlign == options.ReferenceAlignSameAsPtr {
		refAlign = options.ReferenceAlign(ptrAlign)
	}
	if ptrAlign == options.PointerAlignNone && refAlign == options.ReferenceAlignNone {
		return line
	}

	var out strings.Builder
	var st scanState
	i := 0
	for i < len(line) {
		if skip, next := st.advance(line, i); skip {
			out.WriteString(line[i:next])
			i = next
			continue
		}
		ch := line[i]
		if (ch == '*' || ch == '&') && isAlignableSigil(line, i, out.String()) {
			align := options.PointerAlign(ptrAlign)
			if ch == '&' {
				align = options.PointerAlign(refAlign)
			}
			writeAligned(&out, line, i, align)
			i = skipSigilAndSpace(line, i)
			continue
		}
		out.WriteByte(ch)
		i++
	}
	return out.String()
}

// isAlignableSigil reports whether the '*'/'&' at i is a single
// pointer/reference sigil in declaration position: preceded (ignoring
// space) by an identifier or ')'/']'/'>' character, not doubled, and
// not itself part of a compound operator like *= or &&.
func isAlignableSigil(line string, i int, prefix string) bool {
	ch := line[i]
	if i+1 < len(line) {
		next := line[i+1]
		if next == ch || next == '=' {
			return false
		}
	}
	trimmed := strings.TrimRight(prefix, " \t")
	if trimmed == "" {
		return false
	}
	last := trimmed[len(trimmed)-1]
	if !lexrules.IsLegalNameChar(last) && last != ')' && last != ']' && last != '>' {
		return false
	}
	j := i + 1
	for j < len(line) && line[j] == ' ' {
		j++
	}
	if j >= len(line) {
		return false
	}
	return lexrules.IsLegalNameChar(line[j]) || line[j] == '*' || line[j] == '&'
}

func skipSigilAndSpace(line string, i int) int {
	i++
	for i < len(line) && line[i] == ' ' {
		i++
	}
	return i
}

func writeAligned(out *strings.Builder, line string, i int, align options.PointerAlign) {
	sigil := line[i]
	trimTrailingSpace(out)
	switch align {
	case options.PointerAlignType:
		out.WriteByte(sigil)
		out.WriteByte(' ')
	case options.PointerAlignName:
		out.WriteByte(' ')
		out.WriteByte(sigil)
	case options.PointerAlignMiddle:
		out.WriteByte(' ')
		out.WriteByte(sigil)
		out.WriteByte(' ')
	default:
		out.WriteByte(' ')
		out.WriteByte(sigil)
		out.WriteByte(' ')
	}
}
