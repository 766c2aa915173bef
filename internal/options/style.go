package options

// BracketFormatMode selects how '{' is placed relative to its header line.
type BracketFormatMode uint8

const (
	BreakMode  BracketFormatMode = iota // '{' on its own line
	AttachMode                          // '{' attached to the end of the header line
	LinuxMode                           // break for function defs, attach otherwise
	RunInMode                           // '{' at end of header line, first statement shares its line
)

// Style is a named composition of primitive formatting options.
type Style uint8

const (
	StyleNone Style = iota
	StyleAllman
	StyleJava
	StyleKR
	StyleStroustrup
	StyleWhitesmith
	StyleBanner
	StyleGNU
	StyleLinux
	StyleHorstmann
	Style1TBS
	StyleGoogle
	StylePico
	StyleLisp
)

var styleNames = map[string]Style{
	"allman": StyleAllman, "ansi": StyleAllman, "bsd": StyleAllman,
	"java":       StyleJava,
	"kr":         StyleKR, "k&r": StyleKR, "k/r": StyleKR,
	"stroustrup": StyleStroustrup,
	"whitesmith": StyleWhitesmith,
	"banner":     StyleBanner,
	"gnu":        StyleGNU,
	"linux":      StyleLinux,
	"horstmann":  StyleHorstmann,
	"1tbs":       Style1TBS, "otbs": Style1TBS,
	"google": StyleGoogle,
	"pico":   StylePico,
	"lisp":   StyleLisp,
	"none":   StyleNone,
}

// ParseStyle resolves a style name (case-insensitive) from --style=NAME.
func ParseStyle(name string) (Style, bool) {
	s, ok := styleNames[lower(name)]
	return s, ok
}

func lower(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c + ('a' - 'A')
		}
	}
	return string(b)
}

// ApplyStyle sets every primitive option a named style composes.
// Callers must call ApplyStyle before applying any explicit primitive
// option so the later, more specific setting wins.
func ApplyStyle(o *Options, style Style) {
	switch style {
	case StyleAllman:
		o.BracketFormat = BreakMode
		o.IndentClasses = true
		o.IndentSwitches = false
		o.BreakClosingBrackets = false
		o.BreakElseIfs = false
	case StyleJava:
		o.BracketFormat = AttachMode
		o.IndentClasses = true
		o.IndentSwitches = false
	case StyleKR:
		o.BracketFormat = AttachMode
		o.AttachNamespaces = false
		o.AttachClasses = false
		o.IndentClasses = true
	case StyleStroustrup:
		o.BracketFormat = AttachMode
		o.IndentClasses = true
		o.BreakClosingBrackets = false
	case StyleWhitesmith:
		o.BracketFormat = BreakMode
		o.IndentClasses = true
		o.IndentSwitches = true
		o.IndentNamespaces = true
	case StyleBanner:
		o.BracketFormat = AttachMode
		o.IndentClasses = true
		o.IndentNamespaces = true
	case StyleGNU:
		o.BracketFormat = BreakMode
		o.IndentClasses = true
		o.IndentNamespaces = false
		o.MaxInStatementIndent = 40
	case StyleLinux:
		o.BracketFormat = LinuxMode
		o.IndentClasses = false
		o.MinConditionalIndent = MinCondZero
	case StyleHorstmann:
		o.BracketFormat = RunInMode
		o.IndentClasses = true
		o.IndentSwitches = true
	case Style1TBS:
		o.BracketFormat = AttachMode
		o.AddBrackets = true
		o.IndentClasses = true
	case StyleGoogle:
		o.BracketFormat = AttachMode
		o.IndentClasses = true
		o.IndentModifiers = true
		o.PointerAlign = PointerAlignType
	case StylePico:
		o.BracketFormat = RunInMode
		o.KeepOneLineStatements = true
		o.KeepOneLineBlocks = true
	case StyleLisp:
		o.BracketFormat = AttachMode
		o.KeepOneLineStatements = true
		o.AttachClasses = true
	case StyleNone:
		// leave current primitives untouched
	}
	o.Style = style
}
