package formatter

import (
	"strings"

	"cstyle/internal/brackettype"
	"cstyle/internal/keyword"
	"cstyle/internal/options"
)

// piece is one structural fragment produced while splitting a
// reshaped line: either plain text, an opening brace, a closing
// brace, or a statement terminator, tagged with the bracket kind that
// applies if it is a brace.
type piece struct {
	text    string
	isOpen  bool
	isClose bool
	kind    brackettype.Type
}

// classifyBrace derives the bracket-type bitmask for an opening brace
// whose preceding header word (possibly empty) is header.
func classifyBrace(header string) brackettype.Type {
	var t brackettype.Type
	switch header {
	case "namespace":
		t = brackettype.Namespace
	case "class":
		t = brackettype.Class
	case "struct":
		t = brackettype.Struct
	case "interface":
		t = brackettype.Interface
	default:
		t = brackettype.Command
	}
	return brackettype.WithStructuralDerivedBits(t)
}

// attachesFor reports whether a brace of kind t should attach to its
// header line under the active BracketFormat.
func attachesFor(o *options.Options, t brackettype.Type) bool {
	switch o.BracketFormat {
	case options.AttachMode:
		switch {
		case t.Has(brackettype.Namespace):
			return o.AttachNamespaces
		case t.Has(brackettype.Class):
			return o.AttachClasses
		case t.Has(brackettype.Interface):
			return o.AttachClasses
		case t.Has(brackettype.Extern):
			return o.AttachExternC
		default:
			return true
		}
	case options.LinuxMode:
		return !t.Has(brackettype.Definition)
	case options.RunInMode:
		return true
	default:
		return false
	}
}

// splitLine walks one reshaped logical line and breaks it into the
// physical output lines it should become, honoring brace placement,
// one-line block/statement retention, and brace add/remove. header is
// the pending pre-definition header word carried over from a previous
// line that ended without its own brace (e.g. "class A\n{"), or ""
// otherwise;
// lastHeader reports the most recent header word seen, for the
// caller to carry into the next raw line.
func splitLine(o *options.Options, line string, header string) (out []string, lastHeader string, bracketsRemoved int) {
	pieces, lastHeader := tokenizeStructure(line, header)
	pieces, removed := maybeRemoveBrackets(o.RemoveBrackets, pieces)
	return assemble(o, pieces), lastHeader, removed
}

// tokenizeStructure scans line once, producing a flat sequence of
// text/open-brace/close-brace/statement-end pieces and tracking the
// most recent header-looking word so classifyBrace has context.
func tokenizeStructure(line string, carriedHeader string) ([]piece, string) {
	var pieces []piece
	var textBuf strings.Builder
	var st scanState
	header := carriedHeader
	pendingHeader := ""

	flush := func() {
		if textBuf.Len() > 0 {
			pieces = append(pieces, piece{text: textBuf.String()})
			textBuf.Reset()
		}
	}

	i := 0
	for i < len(line) {
		if skip, next := st.advance(line, i); skip {
			textBuf.WriteString(line[i:next])
			i = next
			continue
		}
		ch := line[i]
		switch {
		case ch == '{':
			flush()
			pieces = append(pieces, piece{isOpen: true, kind: classifyBrace(header)})
			header = ""
			pendingHeader = ""
			i++
		case ch == '}':
			flush()
			j := i + 1
			for j < len(line) && line[j] == ' ' {
				j++
			}
			if j < len(line) && line[j] == ';' {
				pieces = append(pieces, piece{isClose: true, text: ";"})
				i = j + 1
			} else {
				pieces = append(pieces, piece{isClose: true})
				i++
			}
		case ch == ';':
			textBuf.WriteByte(';')
			flush()
			pieces = append(pieces, piece{text: "\x00stmt"})
			header = ""
			i++
			for i < len(line) && line[i] == ' ' {
				i++
			}
		case isWordStart(line, i):
			w := readWord(line, i)
			textBuf.WriteString(w)
			if keyword.PreDefinitionHeaders.Contains(w) {
				pendingHeader = w
				header = w
			}
			i += len(w)
		default:
			textBuf.WriteByte(ch)
			i++
		}
	}
	flush()
	if pendingHeader != "" {
		header = pendingHeader
	}
	return pieces, header
}

func isWordStart(line string, i int) bool {
	ch := line[i]
	return ch == '_' || (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

func readWord(line string, i int) string {
	j := i
	for j < len(line) {
		ch := line[j]
		if ch == '_' || (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || (ch >= '0' && ch <= '9') {
			j++
			continue
		}
		break
	}
	return line[i:j]
}

// assemble turns the flat piece list into physical output lines,
// applying attach/break placement and one-line retention.
func assemble(o *options.Options, pieces []piece) []string {
	var lines []string
	var cur strings.Builder

	flushCur := func() {
		s := strings.TrimRight(cur.String(), " ")
		if s != "" {
			lines = append(lines, s)
		}
		cur.Reset()
	}

	for idx := 0; idx < len(pieces); idx++ {
		p := pieces[idx]
		switch {
		case p.isOpen:
			if attachesFor(o, p.kind) {
				trimTrailingSpace(&cur)
				cur.WriteByte(' ')
				cur.WriteByte('{')
			} else {
				flushCur()
				cur.WriteByte('{')
			}
			if !o.KeepOneLineBlocks {
				flushCur()
			}
		case p.isClose:
			if cur.Len() > 0 && !o.KeepOneLineBlocks {
				flushCur()
			}
			cur.WriteByte('}')
			cur.WriteString(p.text)
			flushCur()
		case p.text == "\x00stmt":
			if !o.KeepOneLineStatements {
				flushCur()
			} else {
				cur.WriteByte(' ')
			}
		default:
			cur.WriteString(p.text)
		}
	}
	flushCur()
	return lines
}
