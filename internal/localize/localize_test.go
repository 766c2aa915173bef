package localize

import (
	"strings"
	"testing"

	"golang.org/x/text/language"

	"cstyle/internal/cerr"
)

func TestEnglishKindText(t *testing.T) {
	b := New(language.English)
	if got := b.KindText(cerr.OptionError); got != "unknown option" {
		t.Fatalf("KindText(OptionError) = %q, want %q", got, "unknown option")
	}
}

func TestRussianKindText(t *testing.T) {
	b := New(language.Russian)
	if got := b.KindText(cerr.ChecksumMismatch); got == "checksum mismatch" {
		t.Fatalf("expected a Russian translation, got the English fallback string")
	}
}

func TestUnregisteredTagFallsBackToEnglish(t *testing.T) {
	b := New(language.Japanese)
	if got := b.KindText(cerr.IteratorFault); got != "iterator fault" {
		t.Fatalf("KindText(IteratorFault) = %q, want English fallback %q", got, "iterator fault")
	}
}

func TestDiagnosticIncludesFileAndLine(t *testing.T) {
	b := New(language.English)
	d := cerr.Diagnostic{Kind: cerr.LexicalAnomaly, Message: "unterminated string literal", File: "a.c", Line: 7}
	got := b.Diagnostic(d)
	if !strings.Contains(got, "a.c:7") {
		t.Fatalf("Diagnostic() = %q, want it to contain %q", got, "a.c:7")
	}
	if !strings.Contains(got, "unterminated string literal") {
		t.Fatalf("Diagnostic() = %q, want it to contain the original message", got)
	}
}

func TestParseTagFallsBackOnGarbage(t *testing.T) {
	if tag := ParseTag("not-a-real-tag-!!"); tag != language.English {
		t.Fatalf("ParseTag(garbage) = %v, want English fallback", tag)
	}
}

func TestParseTagAcceptsValidBCP47(t *testing.T) {
	if tag := ParseTag("ru"); tag != language.Russian {
		t.Fatalf("ParseTag(\"ru\") = %v, want %v", tag, language.Russian)
	}
}
