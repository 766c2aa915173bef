// Package options implements the formatter's configuration record:
// the bracket-style composition, every primitive formatting field, and
// the two ways a caller may populate it — inline option text and a
// persisted `.cstylerc` TOML file.
package options

// IndentMode selects what character(s) make up one indent level.
type IndentMode uint8

const (
	IndentSpaces   IndentMode = iota // N spaces per level
	IndentTab                        // one tab per level
	IndentForceTab                   // convert existing space indents to tabs
	IndentForceTabX                  // like ForceTab but tab-length != indent-length
)

// MinConditionalIndent controls how deeply a wrapped conditional
// expression like `if (a &&\n    b)` is indented.
type MinConditionalIndent uint8

const (
	MinCondZero MinConditionalIndent = iota
	MinCondOne
	MinCondTwo
	MinCondOneHalf
)

// PointerAlign controls attachment of '*' in pointer declarations.
type PointerAlign uint8

const (
	PointerAlignNone PointerAlign = iota
	PointerAlignType
	PointerAlignMiddle
	PointerAlignName
)

// ReferenceAlign controls attachment of '&' in reference declarations.
type ReferenceAlign uint8

const (
	ReferenceAlignSameAsPtr ReferenceAlign = iota
	ReferenceAlignNone
	ReferenceAlignType
	ReferenceAlignMiddle
	ReferenceAlignName
)

// LineEndStyle selects the output end-of-line sequence.
type LineEndStyle uint8

const (
	LineEndDefault LineEndStyle = iota // match input file's majority
	LineEndCRLF
	LineEndLF
	LineEndCR
)

// ObjCColonPad controls padding of the ':' in Objective-C method calls.
type ObjCColonPad uint8

const (
	ObjCColonPadNone ObjCColonPad = iota
	ObjCColonPadAll
	ObjCColonPadAfter
	ObjCColonPadBefore
)

// ParenPad controls space insertion inside/outside/around parentheses.
type ParenPad struct {
	Outside bool
	Inside  bool
	First   bool // pad-first-paren-out: only the opening paren of a header
	Header  bool // pad-header: only headers (if/for/while/switch), not calls
}

// Options is the full configuration record read by the Formatter,
// Beautifier, and Enhancer. It is populated once per file (or once and
// reused across many files with identical options) and is never
// mutated by the core while formatting is in progress.
type Options struct {
	Style Style

	// Indent
	IndentMode   IndentMode
	IndentLength int // 2-20
	TabLength    int // independent only when IndentMode == IndentForceTabX

	// Indent scopes
	IndentClasses       bool
	IndentModifiers      bool
	IndentSwitches       bool
	IndentCases          bool
	IndentNamespaces     bool
	IndentLabels         bool
	IndentPreprocDefine  bool
	IndentPreprocCond    bool
	IndentCol1Comments   bool

	// Limits
	MinConditionalIndent MinConditionalIndent
	MaxInStatementIndent int // 40-120
	MaxCodeLength        int // 50-200, 0 = unlimited

	// Padding
	PadOper            bool
	ParenPad           ParenPad
	UnpadParen         bool
	DeleteEmptyLines   bool
	FillEmptyLines     bool
	ConvertTabs        bool
	CloseTemplates     bool
	RemoveCommentPrefix bool
	BreakAfterLogical  bool

	// Brace placement
	BracketFormat         BracketFormatMode
	AttachClasses          bool
	AttachNamespaces       bool
	AttachInlines          bool
	AttachExternC          bool
	BreakClosingBrackets   bool
	BreakElseIfs           bool
	AddBrackets            bool
	AddOneLineBrackets     bool
	RemoveBrackets         bool
	KeepOneLineBlocks      bool
	KeepOneLineStatements  bool
	BreakBlocks            bool
	BreakBlocksAll         bool

	// Pointer / reference
	PointerAlign   PointerAlign
	ReferenceAlign ReferenceAlign

	// Line end
	LineEnd LineEndStyle

	// Objective-C
	AlignMethodColon  bool
	PadMethodPrefix   bool
	UnpadMethodPrefix bool
	PadMethodColon    ObjCColonPad
}

// Default returns the option bag AStyle-family tools ship with before
// any style or explicit flag is applied: 4-space indent, attach-style
// brackets off (break mode), no padding, keep neither one-line form.
func Default() *Options {
	return &Options{
		Style:                StyleNone,
		IndentMode:           IndentSpaces,
		IndentLength:         4,
		TabLength:            4,
		MinConditionalIndent: MinCondTwo,
		MaxInStatementIndent: 40,
		MaxCodeLength:        0,
		BracketFormat:        BreakMode,
		PointerAlign:         PointerAlignNone,
		ReferenceAlign:       ReferenceAlignSameAsPtr,
		LineEnd:              LineEndDefault,
		PadMethodColon:       ObjCColonPadNone,
	}
}

// IndentString returns the leading-whitespace unit for one indent
// level given the current IndentMode.
func (o *Options) IndentString() string {
	switch o.IndentMode {
	case IndentTab, IndentForceTab, IndentForceTabX:
		return "\t"
	default:
		return spaces(o.IndentLength)
	}
}

func spaces(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = ' '
	}
	return string(b)
}
