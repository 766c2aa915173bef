package options

import "testing"

func TestParseTextLongOptions(t *testing.T) {
	o := Default()
	bag := ParseText(o, "--style=allman --pad-oper --indent-length=2")
	if bag.HasErrors() {
		t.Fatalf("unexpected errors: %v", bag.Items())
	}
	if o.Style != StyleAllman {
		t.Errorf("Style = %v, want StyleAllman", o.Style)
	}
	if !o.PadOper {
		t.Error("PadOper = false, want true")
	}
	if o.IndentLength != 2 {
		t.Errorf("IndentLength = %d, want 2", o.IndentLength)
	}
}

func TestParseTextComment(t *testing.T) {
	o := Default()
	bag := ParseText(o, "--pad-oper # trailing comment\n--indent-length=3")
	if bag.HasErrors() {
		t.Fatalf("unexpected errors: %v", bag.Items())
	}
	if o.IndentLength != 3 {
		t.Errorf("IndentLength = %d, want 3", o.IndentLength)
	}
}

func TestParseTextUnknownOption(t *testing.T) {
	o := Default()
	bag := ParseText(o, "--not-a-real-option")
	if !bag.HasErrors() {
		t.Fatal("expected an error for unknown option")
	}
}

func TestParseTextCollectsAllErrors(t *testing.T) {
	o := Default()
	bag := ParseText(o, "--bogus-one --bogus-two --bogus-three")
	if bag.Len() != 3 {
		t.Fatalf("Len() = %d, want 3 (parsing should not stop at first error)", bag.Len())
	}
}

func TestParseShortOptionGroup(t *testing.T) {
	o := Default()
	bag := ParseText(o, "-ps4")
	if bag.HasErrors() {
		t.Fatalf("unexpected errors: %v", bag.Items())
	}
	if !o.PadOper {
		t.Error("-p should set PadOper")
	}
	if o.IndentLength != 4 {
		t.Errorf("IndentLength = %d, want 4", o.IndentLength)
	}
}

func TestParseShortOptionXPrefixIsTwoChars(t *testing.T) {
	o := Default()
	bag := ParseText(o, "-xj")
	if bag.HasErrors() {
		t.Fatalf("unexpected errors: %v", bag.Items())
	}
	if !o.AddBrackets {
		t.Error("-xj should be treated as a single two-character code binding add-brackets")
	}
}

func TestValidateRejectsConflictingBrackets(t *testing.T) {
	o := Default()
	o.AddBrackets = true
	o.RemoveBrackets = true
	if !Validate(o).HasErrors() {
		t.Fatal("expected a validation error for add-brackets + remove-brackets")
	}
}

func TestValidateRangeChecks(t *testing.T) {
	o := Default()
	o.IndentLength = 100
	if !Validate(o).HasErrors() {
		t.Fatal("expected a validation error for out-of-range indent-length")
	}
}

func TestApplyStyleThenExplicitOverrides(t *testing.T) {
	o := Default()
	ParseText(o, "--style=allman --indent-switches")
	if o.BracketFormat != BreakMode {
		t.Errorf("BracketFormat = %v, want BreakMode from allman style", o.BracketFormat)
	}
	if !o.IndentSwitches {
		t.Error("explicit --indent-switches after --style=allman should still apply")
	}
}
