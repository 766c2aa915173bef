package formatter

import (
	"testing"

	"cstyle/internal/iterator"
	"cstyle/internal/options"
)

func collect(f *Formatter, src string) []string {
	f.Init(iterator.New([]byte(src)))
	var got []string
	for f.HasMoreLines() {
		line, ok := f.NextLine()
		if !ok {
			break
		}
		got = append(got, line)
	}
	return got
}

func assertLines(t *testing.T, got, want []string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %d lines %q, want %d lines %q", len(got), got, len(want), want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("line %d: got %q, want %q", i, got[i], want[i])
		}
	}
}

func TestAllmanBreaksInlineBlock(t *testing.T) {
	o := options.Default()
	f := New(o)
	got := collect(f, "if(x){y;}")
	assertLines(t, got, []string{"if (x)", "{", "    y;", "}"})
}

func TestAttachClassesMergesBrace(t *testing.T) {
	o := options.Default()
	o.BracketFormat = options.AttachMode
	o.AttachClasses = true
	f := New(o)
	got := collect(f, "class A\n{\n};")
	assertLines(t, got, []string{"class A {", "};"})
}

func TestPadOperators(t *testing.T) {
	o := options.Default()
	o.PadOper = true
	f := New(o)
	got := collect(f, "a=b+c;")
	assertLines(t, got, []string{"a = b + c;"})
}

func TestPointerAlignType(t *testing.T) {
	o := options.Default()
	o.PointerAlign = options.PointerAlignType
	f := New(o)
	got := collect(f, "int *p;")
	assertLines(t, got, []string{"int* p;"})
}

func TestPointerAlignName(t *testing.T) {
	o := options.Default()
	o.PointerAlign = options.PointerAlignName
	f := New(o)
	got := collect(f, "int* p;")
	assertLines(t, got, []string{"int *p;"})
}

func TestMaxCodeLengthSplitsAtLastComma(t *testing.T) {
	o := options.Default()
	o.MaxCodeLength = 30
	f := New(o)
	got := collect(f, "foo(aaaaaaaaaa, bbbbbbbbbb, cccccccccc, dddddddddd);")
	assertLines(t, got, []string{
		"foo(aaaaaaaaaa, bbbbbbbbbb,",
		"    cccccccccc, dddddddddd);",
	})
}

func TestMaxCodeLengthLeavesShortLinesAlone(t *testing.T) {
	o := options.Default()
	o.MaxCodeLength = 80
	f := New(o)
	got := collect(f, "foo(a, b);")
	assertLines(t, got, []string{"foo(a, b);"})
}

func TestChecksumTracksNonWhitespace(t *testing.T) {
	o := options.Default()
	f := New(o)
	collect(f, "a;")
	in, out := f.Checksum()
	if in != out {
		t.Fatalf("Checksum() in=%d out=%d, want equal for a pure-reshape run", in, out)
	}
}

func TestAddBracketsWrapsBareIfBody(t *testing.T) {
	o := options.Default()
	o.AddBrackets = true
	f := New(o)
	got := collect(f, "if(x)\ny;")
	assertLines(t, got, []string{"if (x) {", "    y;", "}"})

	in, out := f.Checksum()
	if in != out {
		t.Fatalf("Checksum() in=%d out=%d, want equal after add-brackets", in, out)
	}
}

func TestAddOneLineBracketsKeepsSingleLine(t *testing.T) {
	o := options.Default()
	o.AddOneLineBrackets = true
	f := New(o)
	got := collect(f, "if(x)\ny;")
	assertLines(t, got, []string{"if (x) { y; }"})

	in, out := f.Checksum()
	if in != out {
		t.Fatalf("Checksum() in=%d out=%d, want equal after add-one-line-brackets", in, out)
	}
}

func TestAddBracketsLeavesDeclarationBodyAlone(t *testing.T) {
	o := options.Default()
	o.AddBrackets = true
	f := New(o)
	got := collect(f, "if(x)\nint y;")
	assertLines(t, got, []string{"if (x)", "int y;"})
}

func TestRemoveBracketsCollapsesSingleStatementBlock(t *testing.T) {
	o := options.Default()
	o.RemoveBrackets = true
	f := New(o)
	got := collect(f, "if(x){y;}")
	assertLines(t, got, []string{"if (x) y;"})

	in, out := f.Checksum()
	if in != out {
		t.Fatalf("Checksum() in=%d out=%d, want equal after remove-brackets", in, out)
	}
}

func TestRemoveBracketsLeavesMultiStatementBlockAlone(t *testing.T) {
	o := options.Default()
	o.RemoveBrackets = true
	f := New(o)
	got := collect(f, "if(x){y;z;}")
	assertLines(t, got, []string{"if (x)", "{", "    y;", "    z;", "}"})
}

func TestRemoveBracketsLeavesClassDefinitionAlone(t *testing.T) {
	o := options.Default()
	o.RemoveBrackets = true
	f := New(o)
	got := collect(f, "class A{int x;};")
	assertLines(t, got, []string{"class A", "{", "    int x;", "};"})
}

func TestInterfaceRecognizedAsPreDefinitionHeader(t *testing.T) {
	o := options.Default()
	f := New(o)
	got := collect(f, "interface A{int x;};")
	assertLines(t, got, []string{"interface A", "{", "    int x;", "};"})
}

func TestAttachClassesMergesInterfaceBrace(t *testing.T) {
	o := options.Default()
	o.BracketFormat = options.AttachMode
	o.AttachClasses = true
	f := New(o)
	got := collect(f, "interface A\n{\n};")
	assertLines(t, got, []string{"interface A {", "};"})
}
