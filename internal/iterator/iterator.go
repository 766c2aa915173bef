// Package iterator implements a pull-based source line iterator:
// has-more/next/peek/peek-reset plus majority-based end-of-line
// detection.
package iterator

import "fortio.org/safecast"

// EOL identifies a line-ending sequence.
type EOL uint8

const (
	EOLNone EOL = iota // no terminator (last line of a file without a trailing newline)
	EOLLF
	EOLCR
	EOLCRLF
)

func (e EOL) String() string {
	switch e {
	case EOLCRLF:
		return "\r\n"
	case EOLLF:
		return "\n"
	case EOLCR:
		return "\r"
	default:
		return ""
	}
}

// LineIterator reads an in-memory source buffer one logical line at a
// time. It is not safe for concurrent use; each formatting run owns
// exactly one instance.
type LineIterator struct {
	lines []string
	eols  []EOL

	pos int // index of the next line NextLine will return

	peeking  bool
	peekPos  int

	countCRLF int
	countLF   int
	countCR   int

	lastInputLine string
}

// New splits source into logical lines, recording each line's
// original terminator for EOL-majority detection and later
// re-emission.
func New(source []byte) *LineIterator {
	it := &LineIterator{}
	it.split(source)
	return it
}

func (it *LineIterator) split(source []byte) {
	start := 0
	n := len(source)
	for i := 0; i < n; i++ {
		switch source[i] {
		case '\n':
			it.lines = append(it.lines, string(source[start:i]))
			it.eols = append(it.eols, EOLLF)
			it.countLF++
			start = i + 1
		case '\r':
			if i+1 < n && source[i+1] == '\n' {
				it.lines = append(it.lines, string(source[start:i]))
				it.eols = append(it.eols, EOLCRLF)
				it.countCRLF++
				i++
				start = i + 1
			} else {
				it.lines = append(it.lines, string(source[start:i]))
				it.eols = append(it.eols, EOLCR)
				it.countCR++
				start = i + 1
			}
		}
	}
	if start < n {
		it.lines = append(it.lines, string(source[start:n]))
		it.eols = append(it.eols, EOLNone)
	}
	if len(it.lastInputLine) == 0 && len(it.lines) > 0 {
		it.lastInputLine = it.lines[len(it.lines)-1]
	}
}

// HasMoreLines reports whether NextLine would return another line.
func (it *LineIterator) HasMoreLines() bool {
	return it.pos < len(it.lines)
}

// NextLine returns the next logical line and advances the read
// cursor. emptyLineWasDeleted signals to the iterator that the
// Formatter discarded a blank line (delete-empty-lines); the iterator
// ignores it, and it does not change iteration order.
func (it *LineIterator) NextLine(emptyLineWasDeleted bool) (string, bool) {
	_ = emptyLineWasDeleted
	if !it.HasMoreLines() {
		return "", false
	}
	line := it.lines[it.pos]
	it.pos++
	if it.pos == len(it.lines) {
		it.lastInputLine = line
	}
	return line, true
}

// PeekNextLine returns the line after the current read position
// without consuming it. The first call in a peek sequence saves the
// cursor; subsequent calls advance a separate peek cursor until
// PeekReset rewinds it.
func (it *LineIterator) PeekNextLine() (string, bool) {
	if !it.peeking {
		it.peeking = true
		it.peekPos = it.pos
	}
	if it.peekPos >= len(it.lines) {
		return "", false
	}
	line := it.lines[it.peekPos]
	it.peekPos++
	return line, true
}

// PeekReset rewinds the peek cursor so the next PeekNextLine call
// returns the same line NextLine would return. It leaves the real
// read cursor untouched no matter how many PeekNextLine calls
// preceded it.
func (it *LineIterator) PeekReset() {
	it.peeking = false
	it.peekPos = it.pos
}

// GetOutputEOL returns the majority line-end style observed in the
// input so far, defaulting to LF when no terminator has been seen at
// all.
func (it *LineIterator) GetOutputEOL() EOL {
	crlf, _ := safecast.Conv[int64](it.countCRLF)
	lf, _ := safecast.Conv[int64](it.countLF)
	cr, _ := safecast.Conv[int64](it.countCR)
	switch {
	case crlf >= lf && crlf >= cr && crlf > 0:
		return EOLCRLF
	case lf >= cr && lf > 0:
		return EOLLF
	case cr > 0:
		return EOLCR
	default:
		return EOLLF
	}
}

// GetLineEndChange reports whether any input line used an end-of-line
// sequence other than requested.
func (it *LineIterator) GetLineEndChange(requested EOL) bool {
	for _, e := range it.eols {
		if e != EOLNone && e != requested {
			return true
		}
	}
	return false
}

// SaveLastInputLine retains the final pre-EOF line so the driver can
// compare input vs. output verbatim when deciding whether a file was
// left unchanged.
func (it *LineIterator) SaveLastInputLine() string {
	return it.lastInputLine
}

// LineCount returns the number of logical lines produced by split,
// used by invariant checks that compare input/output line counts.
func (it *LineIterator) LineCount() int {
	return len(it.lines)
}
