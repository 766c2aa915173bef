// Package enhancer applies a set of post-indentation passes kept
// separate from the Beautifier: event-table and SQL declare-section
// extra indenting, case/default and goto label unindenting, access
// modifier and column-1 comment indenting, and tab/space conversion
// of already-placed leading whitespace.
package enhancer

import (
	"strings"

	"cstyle/internal/beautifier"
	"cstyle/internal/options"
)

// Enhancer holds the small amount of cross-line state its passes
// need: whether the current line sits inside a wxWidgets event table
// or an EXEC SQL declare section, both of which get one extra indent
// level between their markers regardless of brace depth.
type Enhancer struct {
	opts *options.Options

	inEventTable        bool
	inSQLDeclareSection bool
}

// New creates an Enhancer bound to opts.
func New(opts *options.Options) *Enhancer {
	return &Enhancer{opts: opts}
}

// Init resets per-file state, mirroring Beautifier.Init.
func (e *Enhancer) Init() {
	e.inEventTable = false
	e.inSQLDeclareSection = false
}

// Process takes a line already indented by beaut.Beautify and applies
// the enhancer passes in order: event-table/SQL declare-section extra
// indent, case/modifier/goto label unindent, column-1 comment
// override, then tab/space conversion of the resulting leading
// whitespace.
func (e *Enhancer) Process(line string, beaut *beautifier.Beautifier) string {
	trimmed := strings.TrimLeft(line, " \t")
	indent := line[:len(line)-len(trimmed)]

	extraLevels := 0
	if e.eventTableBody(trimmed) {
		extraLevels++
	}
	if e.sqlDeclareSectionBody(trimmed) {
		extraLevels++
	}
	if extraLevels > 0 {
		indent += strings.Repeat(e.opts.IndentString(), extraLevels)
	}

	if !e.opts.IndentCases {
		if inSwitch, _ := beaut.InSwitchBody(); inSwitch && isCaseLabel(trimmed) {
			indent = unindentOneLevel(indent, e.opts)
		}
	}

	if !e.opts.IndentModifiers && isAccessModifierLabel(trimmed) {
		indent = unindentOneLevel(indent, e.opts)
	}

	if !e.opts.IndentLabels && isGotoLabel(trimmed) {
		indent = unindentOneLevel(indent, e.opts)
	}

	if !e.opts.IndentCol1Comments && isCommentOpener(trimmed) {
		indent = ""
	}

	indent = convertIndentWhitespace(indent, e.opts)

	if trimmed == "" {
		return ""
	}
	return indent + trimmed
}

// eventTableBody tracks BEGIN_EVENT_TABLE/END_EVENT_TABLE markers and
// reports whether trimmed is a line strictly between them, which gets
// one extra indent level. The marker lines themselves stay at their
// ordinary brace-depth indent.
func (e *Enhancer) eventTableBody(trimmed string) bool {
	switch {
	case strings.Contains(trimmed, "BEGIN_EVENT_TABLE"):
		e.inEventTable = true
		return false
	case strings.Contains(trimmed, "END_EVENT_TABLE"):
		e.inEventTable = false
		return false
	default:
		return e.inEventTable
	}
}

// sqlDeclareSectionBody tracks EXEC SQL BEGIN/END DECLARE SECTION
// markers and reports whether trimmed is a line strictly between
// them, which gets one extra indent level (host-variable declarations
// read more clearly set off from the surrounding code).
func (e *Enhancer) sqlDeclareSectionBody(trimmed string) bool {
	upper := strings.ToUpper(trimmed)
	switch {
	case strings.Contains(upper, "EXEC SQL BEGIN DECLARE SECTION"):
		e.inSQLDeclareSection = true
		return false
	case strings.Contains(upper, "EXEC SQL END DECLARE SECTION"):
		e.inSQLDeclareSection = false
		return false
	default:
		return e.inSQLDeclareSection
	}
}

// isCaseLabel reports whether trimmed opens a switch case or default
// label. It intentionally does not match "default:" inside a ternary
// or other non-label context; that ambiguity does not arise at the
// start of a beautified line.
func isCaseLabel(trimmed string) bool {
	if strings.HasPrefix(trimmed, "case ") || strings.HasPrefix(trimmed, "case(") {
		return true
	}
	return trimmed == "default:" || strings.HasPrefix(trimmed, "default:")
}

// isAccessModifierLabel reports whether trimmed is a bare class access
// specifier: "public:", "protected:", or "private:".
func isAccessModifierLabel(trimmed string) bool {
	switch trimmed {
	case "public:", "protected:", "private:":
		return true
	default:
		return false
	}
}

// isGotoLabel reports whether trimmed is a bare "identifier:" goto
// target. Case/default labels and access modifiers are excluded since
// they are handled by their own dedicated checks, and a trailing "::"
// (scope resolution) is excluded so a qualified name is never mistaken
// for a label.
func isGotoLabel(trimmed string) bool {
	if trimmed == "" || isCaseLabel(trimmed) || isAccessModifierLabel(trimmed) {
		return false
	}
	if !strings.HasSuffix(trimmed, ":") || strings.HasSuffix(trimmed, "::") {
		return false
	}
	return isIdentifier(strings.TrimSuffix(trimmed, ":"))
}

func isIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		ch := s[i]
		switch {
		case ch == '_' || (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z'):
		case i > 0 && ch >= '0' && ch <= '9':
		default:
			return false
		}
	}
	return true
}

// isCommentOpener reports whether trimmed begins a line comment or a
// block comment.
func isCommentOpener(trimmed string) bool {
	return strings.HasPrefix(trimmed, "//") || strings.HasPrefix(trimmed, "/*")
}

// unindentOneLevel removes one indent unit from the front of indent,
// without going negative.
func unindentOneLevel(indent string, o *options.Options) string {
	unit := o.IndentString()
	if strings.HasPrefix(indent, unit) {
		return indent[len(unit):]
	}
	if len(indent) >= 1 {
		return indent[1:]
	}
	return indent
}

// convertIndentWhitespace rewrites a line's already-placed leading
// whitespace to match o.IndentMode: ForceTab/ForceTabX collapse every
// IndentLength (or TabLength) run of spaces into a tab, and
// ConvertTabs expands any leading tab into spaces.
func convertIndentWhitespace(indent string, o *options.Options) string {
	switch {
	case o.IndentMode == options.IndentForceTab || o.IndentMode == options.IndentForceTabX:
		width := o.IndentLength
		if o.IndentMode == options.IndentForceTabX {
			width = o.TabLength
		}
		if width <= 0 {
			return indent
		}
		spaceRun := strings.Count(indent, " ")
		tabs := spaceRun / width
		rem := spaceRun % width
		return strings.Repeat("\t", tabs) + strings.Repeat(" ", rem) + strings.Repeat("\t", strings.Count(indent, "\t"))
	case o.ConvertTabs:
		return strings.ReplaceAll(indent, "\t", spacesFor(o.IndentLength))
	default:
		return indent
	}
}

func spacesFor(n int) string {
	if n <= 0 {
		n = 1
	}
	return strings.Repeat(" ", n)
}
