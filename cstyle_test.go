package cstyle

import (
	"bytes"
	"testing"

	"cstyle/internal/cerr"
	"cstyle/internal/options"
)

func TestFormatAllmanScenario(t *testing.T) {
	got, err := Format([]byte("if(x){y;}"), "--style=allman", nil)
	if err != nil {
		t.Fatalf("Format returned error: %v", err)
	}
	want := "if (x)\n{\n    y;\n}"
	if string(got) != want {
		t.Fatalf("Format() = %q, want %q", got, want)
	}
}

func TestFormatRejectsUnknownOption(t *testing.T) {
	var diags []string
	_, err := Format([]byte("a;"), "--not-a-real-option", func(d cerr.Diagnostic) {
		diags = append(diags, d.Error())
	})
	if err == nil {
		t.Fatalf("expected an error for an unrecognized option")
	}
	if len(diags) == 0 {
		t.Fatalf("expected at least one diagnostic to be reported")
	}
}

func TestFormatWithBaseLayersOntoProvidedOptions(t *testing.T) {
	base := options.Default()
	options.ApplyStyle(base, options.StyleAllman)
	got, err := FormatWithBase([]byte("if(x){y;}"), base, "--pad-oper", nil)
	if err != nil {
		t.Fatalf("FormatWithBase returned error: %v", err)
	}
	want := "if (x)\n{\n    y;\n}"
	if string(got) != want {
		t.Fatalf("FormatWithBase() = %q, want %q", got, want)
	}
}

func TestFormatLineEndOverride(t *testing.T) {
	got, err := Format([]byte("a;\nb;\n"), "--lineend=windows", nil)
	if err != nil {
		t.Fatalf("Format returned error: %v", err)
	}
	if !bytes.Contains(got, []byte("\r\n")) {
		t.Fatalf("Format() with lineend=windows did not use CRLF: %q", got)
	}
}

var idempotentSeeds = []string{
	"if(x){y;}",
	"for(i=0;i<10;i++){foo();}",
	"class A\n{\n};",
	"int *p;\nint* q;\n",
	"switch(x){case 1:foo();break;}",
	"",
	"a;\n\n\nb;\n",
}

func FuzzFormatIdempotent(f *testing.F) {
	for _, s := range idempotentSeeds {
		f.Add(s)
	}
	f.Fuzz(func(t *testing.T, src string) {
		first, err := Format([]byte(src), "--style=allman --pad-oper", nil)
		if err != nil {
			return
		}
		second, err := Format(first, "--style=allman --pad-oper", nil)
		if err != nil {
			t.Fatalf("second Format pass failed on already-formatted output: %v", err)
		}
		if !bytes.Equal(first, second) {
			t.Fatalf("formatting is not idempotent:\nfirst:  %q\nsecond: %q", first, second)
		}
	})
}
