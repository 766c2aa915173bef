package cerr

import (
	"fmt"
	"sort"
)

// Bag collects diagnostics gathered while parsing options or
// formatting a file. Option parsing keeps going after the first bad
// token so every error in a run can be reported at once.
type Bag struct {
	items []Diagnostic
	max   int
}

// NewBag creates a Bag with capacity max. A max of 0 means unbounded.
func NewBag(max int) *Bag {
	return &Bag{items: make([]Diagnostic, 0, max), max: max}
}

// Add appends d unless the bag has reached its capacity. Returns false
// if the diagnostic was dropped because the bag is full.
func (b *Bag) Add(d Diagnostic) bool {
	if b.max > 0 && len(b.items) >= b.max {
		return false
	}
	b.items = append(b.items, d)
	return true
}

func (b *Bag) Cap() int { return b.max }
func (b *Bag) Len() int { return len(b.items) }

// HasErrors reports whether any diagnostic has Severity >= SevError.
func (b *Bag) HasErrors() bool {
	for _, d := range b.items {
		if d.Severity >= SevError {
			return true
		}
	}
	return false
}

// Items returns the bag's diagnostics. Callers must not mutate the
// returned slice; it aliases the bag's backing array.
func (b *Bag) Items() []Diagnostic {
	return b.items
}

// Merge appends other's diagnostics, growing capacity if needed.
func (b *Bag) Merge(other *Bag) {
	total := len(b.items) + len(other.items)
	if b.max > 0 && total > b.max {
		b.max = total
	}
	b.items = append(b.items, other.items...)
}

// Sort orders diagnostics by file, line, severity (descending), then
// kind, for deterministic reporting.
func (b *Bag) Sort() {
	sort.SliceStable(b.items, func(i, j int) bool {
		di, dj := b.items[i], b.items[j]
		if di.File != dj.File {
			return di.File < dj.File
		}
		if di.Line != dj.Line {
			return di.Line < dj.Line
		}
		if di.Severity != dj.Severity {
			return di.Severity > dj.Severity
		}
		return di.Kind < dj.Kind
	})
}

// Dedup removes exact duplicate diagnostics (same kind, file, line,
// message), keeping the first occurrence.
func (b *Bag) Dedup() {
	seen := make(map[string]bool, len(b.items))
	kept := make([]Diagnostic, 0, len(b.items))
	for _, d := range b.items {
		key := fmt.Sprintf("%s:%s:%d:%s", d.Kind, d.File, d.Line, d.Message)
		if seen[key] {
			continue
		}
		seen[key] = true
		kept = append(kept, d)
	}
	b.items = kept
}
