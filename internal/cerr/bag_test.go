package cerr

import "testing"

func TestBagHasErrors(t *testing.T) {
	b := NewBag(0)
	if b.HasErrors() {
		t.Fatal("empty bag should have no errors")
	}
	b.Add(Diagnostic{Kind: LexicalAnomaly, Severity: SevInfo, Message: "unterminated comment"})
	if b.HasErrors() {
		t.Fatal("info-severity diagnostic should not count as an error")
	}
	b.Add(Diagnostic{Kind: OptionError, Severity: SevError, Message: "bad option"})
	if !b.HasErrors() {
		t.Fatal("error-severity diagnostic should count as an error")
	}
}

func TestBagCapacity(t *testing.T) {
	b := NewBag(2)
	if !b.Add(Diagnostic{Message: "a"}) {
		t.Fatal("first add should succeed")
	}
	if !b.Add(Diagnostic{Message: "b"}) {
		t.Fatal("second add should succeed")
	}
	if b.Add(Diagnostic{Message: "c"}) {
		t.Fatal("third add should be dropped at capacity")
	}
	if b.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", b.Len())
	}
}

func TestBagDedup(t *testing.T) {
	b := NewBag(0)
	d := Diagnostic{Kind: OptionError, Severity: SevError, Message: "dup"}
	b.Add(d)
	b.Add(d)
	b.Dedup()
	if b.Len() != 1 {
		t.Fatalf("Len() after Dedup = %d, want 1", b.Len())
	}
}

func TestBagAsError(t *testing.T) {
	b := NewBag(0)
	if b.AsError() != nil {
		t.Fatal("AsError() on empty bag should be nil")
	}
	b.Add(Diagnostic{Kind: OptionError, Severity: SevError, Message: "boom", Token: "--x"})
	if err := b.AsError(); err == nil {
		t.Fatal("AsError() should be non-nil once an error-severity diagnostic is present")
	}
}
