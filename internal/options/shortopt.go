package options

import (
	"fmt"

	"cstyle/internal/cerr"
)

// shortAlias binds a one- or two-character short option code (two-
// character codes always start with 'x') to a long-option setter.
// numeric marks codes that consume a trailing digit run as their
// value, e.g. "-s4" sets indent-length to 4.
type shortAlias struct {
	code    string
	long    string
	numeric bool
}

// shortAliases is declared in fixed order; duplicate codes are a
// programmer error caught by the init-time check below rather than a
// runtime OptionError.
var shortAliases = []shortAlias{
	{"s", "indent-length", true},
	{"T", "tab-length", true},
	{"t", "indent", false}, // "-t" => indent=tab, handled specially
	{"p", "pad-oper", false},
	{"P", "pad-paren-out", false},
	{"H", "pad-header", false},
	{"U", "unpad-paren", false},
	{"xc", "attach-classes", false},
	{"xn", "attach-namespaces", false},
	{"xl", "attach-inlines", false},
	{"xw", "attach-extern-c", false},
	{"xb", "break-closing-brackets", false},
	{"xe", "break-elseifs", false},
	{"xj", "add-brackets", false},
	{"xo", "add-one-line-brackets", false},
	{"xr", "remove-brackets", false},
	{"xk", "keep-one-line-blocks", false},
	{"xg", "keep-one-line-statements", false},
	{"xd", "delete-empty-lines", false},
	{"xf", "fill-empty-lines", false},
	{"xt", "convert-tabs", false},
	{"xm", "close-templates", false},
	{"xp", "remove-comment-prefix", false},
}

var shortAliasTable map[string]shortAlias

func init() {
	shortAliasTable = make(map[string]shortAlias, len(shortAliases))
	for _, a := range shortAliases {
		if _, dup := shortAliasTable[a.code]; dup {
			panic(fmt.Sprintf("options: duplicate short option code %q", a.code))
		}
		shortAliasTable[a.code] = a
	}
}

// parseShortGroup parses a concatenated short-option group such as
// "bps4" (from "-bps4") into its constituent options: "-b -p -s4".
// The scan terminates a code before any alphabetic character
// following 'x', since 'x'-prefixed codes are two characters wide.
func parseShortGroup(o *Options, group string, bag *cerr.Bag) {
	i := 0
	for i < len(group) {
		var code string
		if group[i] == 'x' && i+1 < len(group) {
			code = group[i : i+2]
			i += 2
		} else {
			code = group[i : i+1]
			i++
		}

		a, ok := shortAliasTable[code]
		if !ok {
			bag.Add(cerr.Diagnostic{
				Kind: cerr.OptionError, Severity: cerr.SevError,
				Message: "unrecognized short option", Token: "-" + code,
			})
			continue
		}

		value := ""
		if a.numeric {
			start := i
			for i < len(group) && group[i] >= '0' && group[i] <= '9' {
				i++
			}
			value = group[start:i]
			if value == "" {
				bag.Add(cerr.Diagnostic{
					Kind: cerr.OptionError, Severity: cerr.SevError,
					Message: "expected numeric value", Token: "-" + code,
				})
				continue
			}
		}

		if code == "t" {
			if err := longOptions["indent"](o, "tab"); err != nil {
				bag.Add(cerr.Diagnostic{Kind: cerr.OptionError, Severity: cerr.SevError, Message: err.Error(), Token: "-t"})
			}
			continue
		}

		fn := longOptions[a.long]
		if err := fn(o, value); err != nil {
			bag.Add(cerr.Diagnostic{
				Kind: cerr.OptionError, Severity: cerr.SevError,
				Message: err.Error(), Token: "-" + code,
			})
		}
	}
}

// canonicalShortForm renders the long option name a short code binds
// to.
func canonicalShortForm(code string) (string, bool) {
	a, ok := shortAliasTable[code]
	if !ok {
		return "", false
	}
	return a.long, true
}
