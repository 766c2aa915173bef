package formatter

import (
	"strings"

	"cstyle/internal/brackettype"
)

// declarationLeaders are the primitive type keywords used to guess
// whether a candidate single-statement body declares a variable —
// add-brackets and remove-brackets both refuse to touch a body that
// looks like a declaration. Without full type resolution this is a
// heuristic, not a proof: it only catches the common built-in-type
// spelling, not typedef'd or templated declarations.
var declarationLeaders = map[string]bool{
	"int": true, "char": true, "float": true, "double": true,
	"long": true, "short": true, "unsigned": true, "signed": true,
	"void": true, "bool": true, "auto": true, "const": true,
	"static": true, "struct": true, "class": true, "var": true, "let": true,
}

func looksLikeDeclaration(text string) bool {
	text = strings.TrimSpace(text)
	if text == "" || !isWordStart(text, 0) {
		return false
	}
	return declarationLeaders[readWord(text, 0)]
}

// isBareControlHeader reports whether line is a control-flow header
// with no attached brace and no already-complete body of its own —
// "if (x)", "else if (x)", "while (x)", "for (...)", bare "else", or
// bare "do" — the shape add-brackets/add-one-line-brackets wraps.
func isBareControlHeader(line string) bool {
	line = strings.TrimSpace(line)
	if line == "else" || line == "do" {
		return true
	}
	depth := 0
	for i := 0; i < len(line); i++ {
		switch line[i] {
		case '{', '}':
			return false
		case '(':
			depth++
		case ')':
			depth--
		case ';':
			if depth <= 0 {
				return false
			}
		}
	}
	for _, kw := range []string{"if", "for", "while"} {
		if line == kw {
			continue
		}
		if strings.HasPrefix(line, kw+" (") || strings.HasPrefix(line, kw+"(") {
			return strings.HasSuffix(line, ")")
		}
		if strings.HasPrefix(line, "else "+kw+" (") || strings.HasPrefix(line, "else "+kw+"(") {
			return strings.HasSuffix(line, ")")
		}
	}
	return false
}

// isSingleSafeStatement reports whether line is a single statement
// eligible to become a bracket-wrapped body: it has no braces of its
// own, ends with exactly one top-level ';', and does not look like a
// variable declaration.
func isSingleSafeStatement(line string) bool {
	line = strings.TrimSpace(line)
	if line == "" || strings.ContainsAny(line, "{}") {
		return false
	}
	if strings.Count(line, ";") != 1 || !strings.HasSuffix(line, ";") {
		return false
	}
	return !looksLikeDeclaration(line)
}

// isRemovableBraceKind reports whether a brace of kind t is eligible
// for remove-brackets: plain control-statement bodies only, never a
// namespace/class/struct/interface definition.
func isRemovableBraceKind(t brackettype.Type) bool {
	return !t.Has(brackettype.Definition)
}

// maybeRemoveBrackets strips a { ...single-statement... } triple from
// pieces wherever it safely can. It only recognizes a brace pair
// opened and closed within the SAME tokenized line (e.g.
// "if (x) { y; }" on one physical source line); a header/body/close
// split across separate raw lines is left alone, a documented
// limitation of the line-at-a-time pull architecture.
func maybeRemoveBrackets(removeBrackets bool, pieces []piece) ([]piece, int) {
	if !removeBrackets {
		return pieces, 0
	}
	var out []piece
	removed := 0
	i := 0
	for i < len(pieces) {
		p := pieces[i]
		if p.isOpen && isRemovableBraceKind(p.kind) {
			j := i + 1
			var body []piece
			ok := true
			for j < len(pieces) && !pieces[j].isClose {
				if pieces[j].isOpen {
					ok = false
					break
				}
				body = append(body, pieces[j])
				j++
			}
			if ok && j < len(pieces) && isSingleSafeBody(body) {
				joinBracelessBody(&out, body)
				removed++
				i = j + 1
				continue
			}
		}
		out = append(out, p)
		i++
	}
	return out, removed
}

// joinBracelessBody appends body to out with exactly one space
// between the header text already in out and the body's own text, so
// stripping the braces doesn't jam "if (x)" and "y;" together into
// "if (x)y;".
func joinBracelessBody(out *[]piece, body []piece) {
	if n := len(*out); n > 0 {
		last := &(*out)[n-1]
		if !last.isOpen && !last.isClose {
			last.text = strings.TrimRight(last.text, " \t")
		}
	}
	if len(body) > 0 && !body[0].isOpen && !body[0].isClose {
		body[0].text = strings.TrimLeft(body[0].text, " \t")
	}
	*out = append(*out, piece{text: " "})
	*out = append(*out, body...)
}

func isSingleSafeBody(body []piece) bool {
	if len(body) == 0 {
		return false
	}
	stmts := 0
	var text strings.Builder
	for _, p := range body {
		if p.text == "\x00stmt" {
			stmts++
			continue
		}
		text.WriteString(p.text)
	}
	if stmts != 1 {
		return false
	}
	return !looksLikeDeclaration(text.String())
}
