package options

import (
	"fmt"

	"cstyle/internal/cerr"
)

// Validate checks field ranges that the setters alone cannot enforce
// (fields can be reached directly, not only through ParseText) and
// reports every violation rather than stopping at the first.
func Validate(o *Options) *cerr.Bag {
	bag := cerr.NewBag(0)

	rangeCheck(bag, "indent-length", o.IndentLength, 2, 20)
	rangeCheck(bag, "tab-length", o.TabLength, 2, 20)
	rangeCheck(bag, "max-in-statement-indent", o.MaxInStatementIndent, 40, 120)
	if o.MaxCodeLength != 0 {
		rangeCheck(bag, "max-code-length", o.MaxCodeLength, 50, 200)
	}

	if o.AddBrackets && o.RemoveBrackets {
		bag.Add(cerr.Diagnostic{
			Kind: cerr.OptionError, Severity: cerr.SevError,
			Message: "add-brackets and remove-brackets are mutually exclusive",
		})
	}
	if o.IndentMode == IndentForceTabX && o.TabLength == o.IndentLength {
		bag.Add(cerr.Diagnostic{
			Kind: cerr.OptionError, Severity: cerr.SevError,
			Message: "force-tab-x requires tab-length different from indent-length",
		})
	}

	return bag
}

func rangeCheck(bag *cerr.Bag, name string, v, lo, hi int) {
	if v < lo || v > hi {
		bag.Add(cerr.Diagnostic{
			Kind: cerr.OptionError, Severity: cerr.SevError,
			Message: fmt.Sprintf("%s=%d out of range [%d,%d]", name, v, lo, hi),
		})
	}
}
