// Package beautifier computes the leading indentation for lines that
// have already been reshaped by the formatter pass.
package beautifier

import (
	"strings"

	"cstyle/internal/keyword"
	"cstyle/internal/lexrules"
	"cstyle/internal/options"
	"cstyle/internal/trace"
)

// switchFrame tracks one active switch statement's brace depth and
// whether indent-switches added an extra pending level to its body.
type switchFrame struct {
	braceDepth int // brace depth after the switch's '{', including any extra level
	extraLevel bool
}

// scopeFrame tracks one active namespace/class/struct/union/interface
// definition's brace depth and whether indent-namespaces or
// indent-classes added an extra pending level to its body, mirroring
// switchFrame's own bookkeeping for indent-switches.
type scopeFrame struct {
	braceDepth int
	extraLevel bool
}

// preprocFrame remembers the indent state a multi-line #define
// continuation should return to.
type preprocFrame struct {
	indent      int
	spaceIndent int
}

// Beautifier is the per-file stateful indenter. Init must be called
// before formatting each file; a single instance may be reused across
// files sequentially.
type Beautifier struct {
	opts *options.Options
	tr   trace.Tracer

	headerStack      []string
	switchStack      []switchFrame
	scopeStack       []scopeFrame
	preprocStack     []preprocFrame
	parenIndentStack []int

	braceDepth       int
	inStatementIndent int

	isInComment     bool
	isInLineComment bool
	isInQuote       bool
	quoteChar       byte

	inPreprocDefine     bool
	preprocDefineIndent int
}

// New creates a Beautifier bound to opts. opts is read-only for the
// lifetime of the Beautifier; it is shared, not copied, so the same
// Options value must not be mutated concurrently with formatting.
func New(opts *options.Options) *Beautifier {
	b := &Beautifier{opts: opts, tr: trace.Nop}
	b.Init()
	return b
}

// SetTracer installs a tracer for phase/line-scope events. Passing nil
// restores the no-op tracer.
func (b *Beautifier) SetTracer(t trace.Tracer) {
	if t == nil {
		t = trace.Nop
	}
	b.tr = t
}

// Init clears all per-file state, allowing a Beautifier instance to be
// reused across files.
func (b *Beautifier) Init() {
	b.headerStack = b.headerStack[:0]
	b.switchStack = b.switchStack[:0]
	b.scopeStack = b.scopeStack[:0]
	b.preprocStack = b.preprocStack[:0]
	b.parenIndentStack = b.parenIndentStack[:0]
	b.braceDepth = 0
	b.inStatementIndent = 0
	b.isInComment = false
	b.isInLineComment = false
	b.isInQuote = false
	b.quoteChar = 0
	b.inPreprocDefine = false
	b.preprocDefineIndent = 0
}

// Beautify returns line with correct leading whitespace prepended.
// line has already had its leading indentation stripped by the
// formatter (or is unindented raw input).
func (b *Beautifier) Beautify(line string) string {
	span := trace.Begin(b.tr, trace.ScopeLine, "beautify", 0)
	defer span.End("")

	trimmed := strings.TrimLeft(line, " \t")
	leadingCloses := countLeadingCloseBraces(trimmed)

	indentLevel := b.braceDepth - leadingCloses - b.extraLevelsInLeadingCloses(leadingCloses)
	if indentLevel < 0 {
		indentLevel = 0
	}

	isPreprocessorLine := strings.HasPrefix(trimmed, "#")
	var prefix string
	switch {
	case isPreprocessorLine && !b.opts.IndentPreprocCond:
		prefix = ""
	case b.inPreprocDefine && b.opts.IndentPreprocDefine:
		prefix = b.indentUnit(b.preprocDefineIndent + 1)
	case trimmed != "" && b.inStatementIndent > 0:
		prefix = strings.Repeat(" ", b.inStatementIndent)
	default:
		prefix = b.indentUnit(indentLevel)
	}

	b.scanLine(trimmed, isPreprocessorLine, len(prefix))
	b.updateInStatementIndent()

	if trimmed == "" {
		return ""
	}
	return prefix + trimmed
}

// updateInStatementIndent recomputes the continuation-indent column
// register for the line after this one, from the paren-indent stack
// scanLine just finished updating: an unmatched '(' registers the
// column just past it as where a line still inside that expression
// should align, clamped so it never exceeds max-in-statement-indent.
// An empty stack means the statement ended (or never opened a paren
// in the first place), so the next line falls back to ordinary
// brace-depth indentation.
func (b *Beautifier) updateInStatementIndent() {
	if n := len(b.parenIndentStack); n > 0 {
		col := b.parenIndentStack[n-1]
		if max := b.opts.MaxInStatementIndent; max > 0 && col > max {
			col = max
		}
		b.inStatementIndent = col
		return
	}
	b.inStatementIndent = 0
}

// indentUnit renders n levels of the configured indent character(s).
func (b *Beautifier) indentUnit(n int) string {
	if n <= 0 {
		return ""
	}
	unit := b.opts.IndentString()
	return strings.Repeat(unit, n)
}

func countLeadingCloseBraces(s string) int {
	n := 0
	for n < len(s) && s[n] == '}' {
		n++
	}
	return n
}

// extraLevelsInLeadingCloses reports how many of the n closing braces
// about to be scanned on this line will pop a switch/scope frame that
// added an extra indent level, without mutating switchStack/scopeStack.
// Beautify needs this count up front because a line's own prefix is
// computed before scanLine runs the matching onCloseBrace calls.
func (b *Beautifier) extraLevelsInLeadingCloses(n int) int {
	depth := b.braceDepth
	si, ci := len(b.switchStack)-1, len(b.scopeStack)-1
	extra := 0
	for k := 0; k < n && depth > 0; k++ {
		switch {
		case si >= 0 && b.switchStack[si].braceDepth == depth:
			if b.switchStack[si].extraLevel {
				extra++
				depth--
			}
			si--
		case ci >= 0 && b.scopeStack[ci].braceDepth == depth:
			if b.scopeStack[ci].extraLevel {
				extra++
				depth--
			}
			ci--
		}
		depth--
	}
	return extra
}

// scanLine walks trimmed character by character, updating brace
// depth, the switch stack, the paren-indent stack, and quote/comment
// state for the next call. It is a deliberately lighter scan than the
// formatter's: the formatter already removed/placed string, char, and
// comment content consistently, so the beautifier only needs enough
// lexical tracking to find unescaped braces, parens, and line
// comments. col0 is the output column the line's first character
// will land on (the width of its own indent prefix), so a paren's
// recorded column is an absolute position in the line cstyle emits,
// not an offset into the trimmed text scanLine actually walks.
func (b *Beautifier) scanLine(line string, isPreprocessorLine bool, col0 int) {
	if isPreprocessorLine {
		header := strings.TrimPrefix(line, "#")
		header = strings.TrimLeft(header, " \t")
		switch {
		case strings.HasPrefix(header, "define"):
			b.inPreprocDefine = strings.HasSuffix(line, "\\")
			b.preprocDefineIndent = b.braceDepth
		default:
		}
		if b.inPreprocDefine && !strings.HasSuffix(line, "\\") {
			b.inPreprocDefine = false
		}
		return
	}
	if b.inPreprocDefine {
		if !strings.HasSuffix(line, "\\") {
			b.inPreprocDefine = false
		}
	}

	b.isInLineComment = false
	i := 0
	for i < len(line) {
		ch := line[i]

		if b.isInLineComment {
			break
		}
		if b.isInComment {
			if ch == '*' && i+1 < len(line) && line[i+1] == '/' {
				b.isInComment = false
				i += 2
				continue
			}
			i++
			continue
		}
		if b.isInQuote {
			if ch == '\\' {
				i += 2
				continue
			}
			if ch == b.quoteChar {
				b.isInQuote = false
			}
			i++
			continue
		}

		switch {
		case ch == '"' || ch == '\'':
			b.isInQuote = true
			b.quoteChar = ch
			i++
		case ch == '/' && i+1 < len(line) && line[i+1] == '/':
			b.isInLineComment = true
			i += 2
		case ch == '/' && i+1 < len(line) && line[i+1] == '*':
			b.isInComment = true
			i += 2
		case ch == '{':
			b.onOpenBrace()
			i++
		case ch == '}':
			b.onCloseBrace()
			i++
		case ch == '(':
			b.parenIndentStack = append(b.parenIndentStack, col0+i+1)
			i++
		case ch == ')':
			if n := len(b.parenIndentStack); n > 0 {
				b.parenIndentStack = b.parenIndentStack[:n-1]
			}
			i++
		case ch == ';':
			b.onStatementEnd()
			i++
		case lexrules.IsCharPotentialHeader(line, i):
			word := lexrules.GetCurrentWord(line, i)
			b.onWord(word)
			i += len(word)
		default:
			i++
		}
	}
}

func (b *Beautifier) onOpenBrace() {
	var headerWord string
	if n := len(b.headerStack); n > 0 {
		headerWord = b.headerStack[n-1]
		b.headerStack = b.headerStack[:n-1]
	}
	b.braceDepth++
	switch headerWord {
	case "switch":
		extra := b.opts.IndentSwitches
		if extra {
			b.braceDepth++
		}
		b.switchStack = append(b.switchStack, switchFrame{
			braceDepth: b.braceDepth,
			extraLevel: extra,
		})
	case "namespace":
		b.pushScopeFrame(b.opts.IndentNamespaces)
	case "class", "struct", "union", "interface":
		b.pushScopeFrame(b.opts.IndentClasses)
	}
}

// pushScopeFrame records the brace just opened as a namespace/class-
// like scope, adding one extra indent level to its body when extra is
// true (indent-namespaces or indent-classes), the same mechanism
// onOpenBrace already uses for indent-switches. braceDepth is recorded
// after the extra bump so onCloseBrace's matching close sees the same
// depth value the body was actually indented at.
func (b *Beautifier) pushScopeFrame(extra bool) {
	if extra {
		b.braceDepth++
	}
	b.scopeStack = append(b.scopeStack, scopeFrame{
		braceDepth: b.braceDepth,
		extraLevel: extra,
	})
}

// onStatementEnd pops a pending non-brace header (e.g. "if (x) y;")
// whose single-statement body just ended without opening a block.
func (b *Beautifier) onStatementEnd() {
	if n := len(b.headerStack); n > 0 {
		b.headerStack = b.headerStack[:n-1]
	}
}

func (b *Beautifier) onCloseBrace() {
	switch {
	case len(b.switchStack) > 0 && b.switchStack[len(b.switchStack)-1].braceDepth == b.braceDepth:
		n := len(b.switchStack)
		if b.switchStack[n-1].extraLevel {
			b.braceDepth--
		}
		b.switchStack = b.switchStack[:n-1]
	case len(b.scopeStack) > 0 && b.scopeStack[len(b.scopeStack)-1].braceDepth == b.braceDepth:
		n := len(b.scopeStack)
		if b.scopeStack[n-1].extraLevel {
			b.braceDepth--
		}
		b.scopeStack = b.scopeStack[:n-1]
	}
	if b.braceDepth > 0 {
		b.braceDepth--
	}
}

func (b *Beautifier) onWord(word string) {
	if keyword.Headers.Contains(word) || keyword.PreBlockStatements.Contains(word) {
		b.headerStack = append(b.headerStack, word)
	}
}

// BraceDepth exposes the current nesting depth for invariant checks
// and for the enhancer's switch/case unindent pass.
func (b *Beautifier) BraceDepth() int { return b.braceDepth }

// InSwitchBody reports whether depth sits directly inside the
// innermost active switch's body, and that switch's own brace depth
// (the level a case label should return to when indent-cases is off).
func (b *Beautifier) InSwitchBody() (inSwitch bool, switchBraceDepth int) {
	if len(b.switchStack) == 0 {
		return false, 0
	}
	top := b.switchStack[len(b.switchStack)-1]
	return b.braceDepth >= top.braceDepth, top.braceDepth - 1
}
