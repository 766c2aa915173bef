package keyword

import "testing"

func TestTablesAreSorted(t *testing.T) {
	for name, tbl := range map[string]*Table{
		"Operators":              Operators,
		"AssignmentOperators":    AssignmentOperators,
		"NonAssignmentOperators": NonAssignmentOperators,
	} {
		entries := tbl.Entries()
		for i := 1; i < len(entries); i++ {
			if len(entries[i-1]) < len(entries[i]) {
				t.Errorf("%s: entries not sorted longest-first at %d: %q before %q", name, i, entries[i-1], entries[i])
			}
		}
	}

	for name, tbl := range map[string]*Table{
		"Headers":            Headers,
		"PreBlockStatements": PreBlockStatements,
	} {
		entries := tbl.Entries()
		for i := 1; i < len(entries); i++ {
			if entries[i-1] > entries[i] {
				t.Errorf("%s: entries not sorted alphabetically at %d: %q before %q", name, i, entries[i-1], entries[i])
			}
		}
	}
}

func TestMatchOperatorLongestFirst(t *testing.T) {
	op, n := Operators.MatchOperator(">>>=", 0)
	if op != GrGrGrAssign || n != 4 {
		t.Fatalf("MatchOperator(\">>>=\") = (%q, %d), want (%q, 4)", op, n, GrGrGrAssign)
	}

	op, n = Operators.MatchOperator(">>", 0)
	if op != GrGr || n != 2 {
		t.Fatalf("MatchOperator(\">>\") = (%q, %d), want (%q, 2)", op, n, GrGr)
	}
}

func TestMatchHeader(t *testing.T) {
	if kw := Headers.MatchHeader("switch (x) {", 0); kw != "switch" {
		t.Fatalf("MatchHeader(switch) = %q, want switch", kw)
	}
	if kw := Headers.MatchHeader("switchboard()", 0); kw != "" {
		t.Fatalf("MatchHeader(switchboard) = %q, want empty", kw)
	}
}

func TestContains(t *testing.T) {
	if !PreBlockStatements.Contains("class") {
		t.Fatal("PreBlockStatements should contain class")
	}
	if PreBlockStatements.Contains("if") {
		t.Fatal("PreBlockStatements should not contain if")
	}
}
