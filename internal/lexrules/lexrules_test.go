package lexrules

import "testing"

func TestIsWhiteSpace(t *testing.T) {
	cases := map[byte]bool{' ': true, '\t': true, 'a': false, '\n': false, '0': false}
	for ch, want := range cases {
		if got := IsWhiteSpace(ch); got != want {
			t.Errorf("IsWhiteSpace(%q) = %v, want %v", ch, got, want)
		}
	}
}

func TestIsLegalNameChar(t *testing.T) {
	cases := map[byte]bool{
		'a': true, 'Z': true, '_': true, '.': true, '9': true,
		' ': false, '+': false, '(': false,
	}
	for ch, want := range cases {
		if got := IsLegalNameChar(ch); got != want {
			t.Errorf("IsLegalNameChar(%q) = %v, want %v", ch, got, want)
		}
	}
}

func TestIsCharPotentialHeader(t *testing.T) {
	tests := []struct {
		line string
		i    int
		want bool
	}{
		{"if (x)", 0, true},        // start of line
		{"  if (x)", 2, true},      // after whitespace
		{"int xif = 0;", 5, false}, // mid-identifier, prev char is legal name char
		{"a.b", 2, false},          // prev char '.' is itself a legal name char
	}
	for _, tt := range tests {
		if got := IsCharPotentialHeader(tt.line, tt.i); got != tt.want {
			t.Errorf("IsCharPotentialHeader(%q, %d) = %v, want %v", tt.line, tt.i, got, tt.want)
		}
	}
}

func TestFindKeyword(t *testing.T) {
	tests := []struct {
		line    string
		i       int
		keyword string
		want    bool
	}{
		{"if (x) y();", 0, "if", true},
		{"ifdef FOO", 0, "if", false},       // longer identifier
		{"void foo(int, bool)", 14, "bool", false}, // followed by ')'
		{"return x;", 0, "return", true},
	}
	for _, tt := range tests {
		if got := FindKeyword(tt.line, tt.i, tt.keyword); got != tt.want {
			t.Errorf("FindKeyword(%q, %d, %q) = %v, want %v", tt.line, tt.i, tt.keyword, got, tt.want)
		}
	}
}

func TestGetCurrentWord(t *testing.T) {
	tests := []struct {
		line  string
		index int
		want  string
	}{
		{"int x = 0;", 0, "int"},
		{"foo_bar(1);", 0, "foo_bar"},
		{"a.b.c", 0, "a.b.c"},
	}
	for _, tt := range tests {
		if got := GetCurrentWord(tt.line, tt.index); got != tt.want {
			t.Errorf("GetCurrentWord(%q, %d) = %q, want %q", tt.line, tt.index, got, tt.want)
		}
	}
}

func TestIsCharPotentialOperator(t *testing.T) {
	cases := map[byte]bool{
		'+': true, '=': true, '<': true, '>': true, '!': true,
		'{': false, '}': false, '(': false, ')': false,
		'[': false, ']': false, ';': false, ',': false,
		'#': false, '\\': false, '\'': false, '"': false,
		'a': false, '0': false,
	}
	for ch, want := range cases {
		if got := IsCharPotentialOperator(ch); got != want {
			t.Errorf("IsCharPotentialOperator(%q) = %v, want %v", ch, got, want)
		}
	}
}

func TestPeekNextChar(t *testing.T) {
	tests := []struct {
		line string
		i    int
		want byte
	}{
		{"a   b", 0, 'b'},
		{"a", 0, ' '},
		{"a,b", 0, ','},
	}
	for _, tt := range tests {
		if got := PeekNextChar(tt.line, tt.i); got != tt.want {
			t.Errorf("PeekNextChar(%q, %d) = %q, want %q", tt.line, tt.i, got, tt.want)
		}
	}
}
