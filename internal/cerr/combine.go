package cerr

import "strings"

// multiError joins a bag's diagnostics into a single error value so
// callers that only care about "did formatting fail" can use the
// ordinary error interface, while callers that want the detail can
// still call Bag.Items.
type multiError struct {
	diags []Diagnostic
}

func (m *multiError) Error() string {
	var sb strings.Builder
	for i, d := range m.diags {
		if i > 0 {
			sb.WriteString("; ")
		}
		sb.WriteString(d.Error())
	}
	return sb.String()
}

// AsError returns nil if the bag has no error-severity diagnostics, or
// a single error summarizing all of them.
func (b *Bag) AsError() error {
	if !b.HasErrors() {
		return nil
	}
	errs := make([]Diagnostic, 0, len(b.items))
	for _, d := range b.items {
		if d.Severity >= SevError {
			errs = append(errs, d)
		}
	}
	return &multiError{diags: errs}
}
