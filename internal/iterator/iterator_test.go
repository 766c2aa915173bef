package iterator

import "testing"

func TestHasMoreLinesAndNextLine(t *testing.T) {
	it := New([]byte("a\nb\nc"))
	var got []string
	for it.HasMoreLines() {
		line, ok := it.NextLine(false)
		if !ok {
			t.Fatal("NextLine returned ok=false while HasMoreLines was true")
		}
		got = append(got, line)
	}
	want := []string{"a", "b", "c"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestPeekDoesNotAdvanceRealCursor(t *testing.T) {
	it := New([]byte("a\nb\nc\n"))
	p1, _ := it.PeekNextLine()
	p2, _ := it.PeekNextLine()
	if p1 != "a" || p2 != "b" {
		t.Fatalf("peek sequence = %q, %q, want a, b", p1, p2)
	}
	it.PeekReset()
	line, _ := it.NextLine(false)
	if line != "a" {
		t.Fatalf("NextLine after PeekReset = %q, want a (cursor must be unchanged)", line)
	}
}

func TestMajorityEOLDetection(t *testing.T) {
	it := New([]byte("a\r\nb\r\nc\n"))
	if got := it.GetOutputEOL(); got != EOLCRLF {
		t.Fatalf("GetOutputEOL() = %v, want CRLF (2 CRLF vs 1 LF)", got)
	}
}

func TestGetLineEndChange(t *testing.T) {
	it := New([]byte("a\r\nb\n"))
	if !it.GetLineEndChange(EOLLF) {
		t.Fatal("expected a line-end change since input mixes CRLF and LF")
	}
	it2 := New([]byte("a\nb\n"))
	if it2.GetLineEndChange(EOLLF) {
		t.Fatal("expected no line-end change when every input line already uses LF")
	}
}

func TestSaveLastInputLine(t *testing.T) {
	it := New([]byte("a\nb\nlast"))
	for it.HasMoreLines() {
		it.NextLine(false)
	}
	if got := it.SaveLastInputLine(); got != "last" {
		t.Fatalf("SaveLastInputLine() = %q, want %q", got, "last")
	}
}

func TestNoTrailingNewlineLastLine(t *testing.T) {
	it := New([]byte("a\nb"))
	if it.LineCount() != 2 {
		t.Fatalf("LineCount() = %d, want 2", it.LineCount())
	}
}
