package options

import (
	"fmt"
	"strconv"
	"strings"

	"cstyle/internal/cerr"
)

// setter applies one parsed option (with its string value, "" if the
// option takes none) to o, returning an error describing why the value
// was rejected.
type setter func(o *Options, value string) error

var longOptions = map[string]setter{
	"style": func(o *Options, v string) error {
		s, ok := ParseStyle(v)
		if !ok {
			return fmt.Errorf("unknown style %q", v)
		}
		ApplyStyle(o, s)
		return nil
	},
	"indent": func(o *Options, v string) error {
		switch lower(v) {
		case "spaces":
			o.IndentMode = IndentSpaces
		case "tab":
			o.IndentMode = IndentTab
		case "force-tab":
			o.IndentMode = IndentForceTab
		case "force-tab-x":
			o.IndentMode = IndentForceTabX
		default:
			return fmt.Errorf("unknown indent mode %q", v)
		}
		return nil
	},
	"indent-length": intSetter(func(o *Options, n int) { o.IndentLength = n }, 2, 20),
	"tab-length":    intSetter(func(o *Options, n int) { o.TabLength = n }, 2, 20),

	"indent-classes":       boolSetter(func(o *Options, b bool) { o.IndentClasses = b }),
	"indent-modifiers":     boolSetter(func(o *Options, b bool) { o.IndentModifiers = b }),
	"indent-switches":      boolSetter(func(o *Options, b bool) { o.IndentSwitches = b }),
	"indent-cases":         boolSetter(func(o *Options, b bool) { o.IndentCases = b }),
	"indent-namespaces":    boolSetter(func(o *Options, b bool) { o.IndentNamespaces = b }),
	"indent-labels":        boolSetter(func(o *Options, b bool) { o.IndentLabels = b }),
	"indent-preproc-define": boolSetter(func(o *Options, b bool) { o.IndentPreprocDefine = b }),
	"indent-preproc-cond":  boolSetter(func(o *Options, b bool) { o.IndentPreprocCond = b }),
	"indent-col1-comments": boolSetter(func(o *Options, b bool) { o.IndentCol1Comments = b }),

	"min-conditional-indent": func(o *Options, v string) error {
		switch lower(v) {
		case "0":
			o.MinConditionalIndent = MinCondZero
		case "1":
			o.MinConditionalIndent = MinCondOne
		case "2":
			o.MinConditionalIndent = MinCondTwo
		case "one-half":
			o.MinConditionalIndent = MinCondOneHalf
		default:
			return fmt.Errorf("unknown min-conditional-indent %q", v)
		}
		return nil
	},
	"max-in-statement-indent": intSetter(func(o *Options, n int) { o.MaxInStatementIndent = n }, 40, 120),
	"max-code-length":         intSetter(func(o *Options, n int) { o.MaxCodeLength = n }, 50, 200),

	"pad-oper":              boolSetter(func(o *Options, b bool) { o.PadOper = b }),
	"pad-paren-out":         boolSetter(func(o *Options, b bool) { o.ParenPad.Outside = b }),
	"pad-paren-in":          boolSetter(func(o *Options, b bool) { o.ParenPad.Inside = b }),
	"pad-first-paren-out":   boolSetter(func(o *Options, b bool) { o.ParenPad.First = b }),
	"pad-header":            boolSetter(func(o *Options, b bool) { o.ParenPad.Header = b }),
	"unpad-paren":           boolSetter(func(o *Options, b bool) { o.UnpadParen = b }),
	"delete-empty-lines":    boolSetter(func(o *Options, b bool) { o.DeleteEmptyLines = b }),
	"fill-empty-lines":      boolSetter(func(o *Options, b bool) { o.FillEmptyLines = b }),
	"convert-tabs":          boolSetter(func(o *Options, b bool) { o.ConvertTabs = b }),
	"close-templates":       boolSetter(func(o *Options, b bool) { o.CloseTemplates = b }),
	"remove-comment-prefix": boolSetter(func(o *Options, b bool) { o.RemoveCommentPrefix = b }),
	"break-after-logical":   boolSetter(func(o *Options, b bool) { o.BreakAfterLogical = b }),

	"attach-classes":        boolSetter(func(o *Options, b bool) { o.AttachClasses = b }),
	"attach-namespaces":     boolSetter(func(o *Options, b bool) { o.AttachNamespaces = b }),
	"attach-inlines":        boolSetter(func(o *Options, b bool) { o.AttachInlines = b }),
	"attach-extern-c":       boolSetter(func(o *Options, b bool) { o.AttachExternC = b }),
	"break-closing-brackets": boolSetter(func(o *Options, b bool) { o.BreakClosingBrackets = b }),
	"break-elseifs":         boolSetter(func(o *Options, b bool) { o.BreakElseIfs = b }),
	"add-brackets":          boolSetter(func(o *Options, b bool) { o.AddBrackets = b }),
	"add-one-line-brackets": boolSetter(func(o *Options, b bool) { o.AddOneLineBrackets = b }),
	"remove-brackets":       boolSetter(func(o *Options, b bool) { o.RemoveBrackets = b }),
	"keep-one-line-blocks":  boolSetter(func(o *Options, b bool) { o.KeepOneLineBlocks = b }),
	"keep-one-line-statements": boolSetter(func(o *Options, b bool) { o.KeepOneLineStatements = b }),
	"break-blocks":          boolSetter(func(o *Options, b bool) { o.BreakBlocks = b }),
	"break-blocks-all":      boolSetter(func(o *Options, b bool) { o.BreakBlocksAll = b }),

	"align-pointer": func(o *Options, v string) error {
		pa, ok := map[string]PointerAlign{
			"none": PointerAlignNone, "type": PointerAlignType,
			"middle": PointerAlignMiddle, "name": PointerAlignName,
		}[lower(v)]
		if !ok {
			return fmt.Errorf("unknown align-pointer %q", v)
		}
		o.PointerAlign = pa
		return nil
	},
	"align-reference": func(o *Options, v string) error {
		ra, ok := map[string]ReferenceAlign{
			"same-as-ptr": ReferenceAlignSameAsPtr, "none": ReferenceAlignNone,
			"type": ReferenceAlignType, "middle": ReferenceAlignMiddle, "name": ReferenceAlignName,
		}[lower(v)]
		if !ok {
			return fmt.Errorf("unknown align-reference %q", v)
		}
		o.ReferenceAlign = ra
		return nil
	},
	"lineend": func(o *Options, v string) error {
		le, ok := map[string]LineEndStyle{
			"default": LineEndDefault, "windows": LineEndCRLF, "crlf": LineEndCRLF,
			"linux": LineEndLF, "lf": LineEndLF, "macold": LineEndCR, "cr": LineEndCR,
		}[lower(v)]
		if !ok {
			return fmt.Errorf("unknown lineend %q", v)
		}
		o.LineEnd = le
		return nil
	},

	"align-method-colon":  boolSetter(func(o *Options, b bool) { o.AlignMethodColon = b }),
	"pad-method-prefix":   boolSetter(func(o *Options, b bool) { o.PadMethodPrefix = b }),
	"unpad-method-prefix": boolSetter(func(o *Options, b bool) { o.UnpadMethodPrefix = b }),
	"pad-method-colon": func(o *Options, v string) error {
		pc, ok := map[string]ObjCColonPad{
			"none": ObjCColonPadNone, "all": ObjCColonPadAll,
			"after": ObjCColonPadAfter, "before": ObjCColonPadBefore,
		}[lower(v)]
		if !ok {
			return fmt.Errorf("unknown pad-method-colon %q", v)
		}
		o.PadMethodColon = pc
		return nil
	},
}

func boolSetter(apply func(*Options, bool)) setter {
	return func(o *Options, v string) error {
		if v == "" {
			apply(o, true)
			return nil
		}
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("expected boolean value, got %q", v)
		}
		apply(o, b)
		return nil
	}
}

func intSetter(apply func(*Options, int), lo, hi int) setter {
	return func(o *Options, v string) error {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("expected integer value, got %q", v)
		}
		if n < lo || n > hi {
			return fmt.Errorf("value %d out of range [%d,%d]", n, lo, hi)
		}
		apply(o, n)
		return nil
	}
}

// ParseText parses the space/comma/newline/tab-separated option text
// accepted by the public Format entry point. '#' begins a line
// comment. Parsing never stops at the first bad token: every error is
// collected so the caller can report them all before aborting.
func ParseText(o *Options, text string) *cerr.Bag {
	bag := cerr.NewBag(0)
	for _, line := range strings.Split(text, "\n") {
		if idx := strings.IndexByte(line, '#'); idx >= 0 {
			line = line[:idx]
		}
		for _, tok := range strings.FieldsFunc(line, func(r rune) bool {
			return r == ' ' || r == ',' || r == '\t'
		}) {
			parseToken(o, tok, bag)
		}
	}
	return bag
}

func parseToken(o *Options, tok string, bag *cerr.Bag) {
	switch {
	case strings.HasPrefix(tok, "--"):
		parseLongOption(o, tok[2:], bag)
	case strings.HasPrefix(tok, "-") && len(tok) > 1:
		parseShortGroup(o, tok[1:], bag)
	default:
		bag.Add(cerr.Diagnostic{
			Kind: cerr.OptionError, Severity: cerr.SevError,
			Message: "option must begin with - or --", Token: tok,
		})
	}
}

func parseLongOption(o *Options, body string, bag *cerr.Bag) {
	name, value, hasValue := strings.Cut(body, "=")
	fn, ok := longOptions[name]
	if !ok {
		bag.Add(cerr.Diagnostic{
			Kind: cerr.OptionError, Severity: cerr.SevError,
			Message: "unrecognized option", Token: "--" + name,
		})
		return
	}
	if !hasValue {
		value = ""
	}
	if err := fn(o, value); err != nil {
		bag.Add(cerr.Diagnostic{
			Kind: cerr.OptionError, Severity: cerr.SevError,
			Message: err.Error(), Token: "--" + body,
		})
	}
}
