// Package localize is a tagged translation bundle keyed by language
// code: it renders diagnostic and option-parsing text in whichever
// language tag the caller selects, falling back to English for
// anything the bundle has not been taught.
package localize

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"

	"cstyle/internal/cerr"
)

// Bundle is a small wrapper over a message catalog, scoped to the
// handful of strings this module ever needs to translate.
type Bundle struct {
	printer *message.Printer
}

var cat *catalog.Builder

func init() {
	cat = catalog.NewBuilder(catalog.Fallback(language.English))

	must(cat.SetString(language.English, "unknown option", "unknown option"))
	must(cat.SetString(language.Russian, "unknown option", "неизвестная опция"))

	must(cat.SetString(language.English, "option requires a value", "option requires a value"))
	must(cat.SetString(language.Russian, "option requires a value", "опция требует значения"))

	must(cat.SetString(language.English, "lexical anomaly", "lexical anomaly"))
	must(cat.SetString(language.Russian, "lexical anomaly", "лексическая аномалия"))

	must(cat.SetString(language.English, "checksum mismatch", "input/output checksum mismatch"))
	must(cat.SetString(language.Russian, "checksum mismatch", "несовпадение контрольной суммы ввода/вывода"))

	must(cat.SetString(language.English, "iterator fault", "line iterator fault"))
	must(cat.SetString(language.Russian, "iterator fault", "сбой построчного итератора"))
}

func must(err error) {
	if err != nil {
		panic("localize: " + err.Error())
	}
}

// New returns a Bundle that renders text for tag, falling back to
// English when tag is unsupported or not registered.
func New(tag language.Tag) *Bundle {
	return &Bundle{printer: message.NewPrinter(tag, message.Catalog(cat))}
}

// KindText returns the localized, human-readable label for a
// diagnostic kind, used when rendering a cerr.Diagnostic for
// display.
func (b *Bundle) KindText(k cerr.Kind) string {
	switch k {
	case cerr.OptionError:
		return b.printer.Sprintf("unknown option")
	case cerr.LexicalAnomaly:
		return b.printer.Sprintf("lexical anomaly")
	case cerr.ChecksumMismatch:
		return b.printer.Sprintf("checksum mismatch")
	case cerr.IteratorFault:
		return b.printer.Sprintf("iterator fault")
	default:
		return b.printer.Sprintf("unknown option")
	}
}

// Diagnostic renders d fully localized: "<kind>: <message> (<file>:<line>)".
func (b *Bundle) Diagnostic(d cerr.Diagnostic) string {
	kind := b.KindText(d.Kind)
	if d.File == "" {
		return fmt.Sprintf("%s: %s", kind, d.Message)
	}
	return fmt.Sprintf("%s: %s (%s:%d)", kind, d.Message, d.File, d.Line)
}

// ParseTag resolves a BCP 47 language tag string (e.g. "ru", "en-US"),
// falling back to English on a malformed tag.
func ParseTag(s string) language.Tag {
	tag, err := language.Parse(s)
	if err != nil {
		return language.English
	}
	return tag
}
