// Package formatter reshapes one source line at a time: operator and
// parenthesis padding, pointer/reference alignment, and brace
// placement/splitting. It owns a Beautifier by composition to attach
// correct indentation before handing lines back to the caller, and
// tracks the input/output checksums that gate a formatting run's
// integrity.
package formatter

import (
	"strings"

	"cstyle/internal/beautifier"
	"cstyle/internal/enhancer"
	"cstyle/internal/iterator"
	"cstyle/internal/options"
	"cstyle/internal/trace"
)

// Formatter is the per-file reshaping pass. A single instance is
// bound to one source buffer via Init and consumed with the
// HasMoreLines/NextLine pull protocol, mirroring the iterator it
// wraps.
type Formatter struct {
	opts  *options.Options
	beaut *beautifier.Beautifier
	enh   *enhancer.Enhancer
	it    *iterator.LineIterator
	tr    trace.Tracer

	outQueue []string
	held     string
	heldSet  bool

	carriedHeader string

	checksumIn  int64
	checksumOut int64

	insertedBracketAdjust int64
	removedBracketAdjust  int64
}

// New creates a Formatter bound to opts, with its own Beautifier
// instance — composition, not inheritance.
func New(opts *options.Options) *Formatter {
	return &Formatter{
		opts:  opts,
		beaut: beautifier.New(opts),
		enh:   enhancer.New(opts),
		tr:    trace.Nop,
	}
}

// SetTracer installs a tracer for the formatter and its beautifier.
func (f *Formatter) SetTracer(t trace.Tracer) {
	if t == nil {
		t = trace.Nop
	}
	f.tr = t
	f.beaut.SetTracer(t)
}

// Init binds a new source buffer, resetting all per-file state so the
// Formatter (and its Beautifier) can be reused across files.
func (f *Formatter) Init(it *iterator.LineIterator) {
	f.it = it
	f.outQueue = f.outQueue[:0]
	f.held = ""
	f.heldSet = false
	f.carriedHeader = ""
	f.checksumIn = 0
	f.checksumOut = 0
	f.insertedBracketAdjust = 0
	f.removedBracketAdjust = 0
	f.beaut.Init()
	f.enh.Init()
}

// Checksum returns the running non-whitespace character sums over
// everything pulled from the iterator and everything emitted so far,
// adjusted for any brace insertion/removal. checksumOut naturally
// already includes any '{'/'}' characters add-brackets synthesized
// (they were written to the output stream like any other character)
// and excludes any remove-brackets stripped, so the adjustment runs
// the other way: subtract what was inserted, add back what was
// removed, to recover the figure comparable to checksumIn.
func (f *Formatter) Checksum() (in, out int64) {
	return f.checksumIn, f.checksumOut - f.insertedBracketAdjust + f.removedBracketAdjust
}

// HasMoreLines reports whether NextLine would return another line.
func (f *Formatter) HasMoreLines() bool {
	if len(f.outQueue) > 0 {
		return true
	}
	if f.it.HasMoreLines() {
		return true
	}
	return f.heldSet
}

// NextLine pulls, reshapes, and indents the next output line.
// Continuation lines produced by max-code-length wrapping are already
// indented and counted in checksumOut, so they are returned as-is.
func (f *Formatter) NextLine() (string, bool) {
	const wrappedMark = "\x00wrap"
	for len(f.outQueue) == 0 {
		if !f.fillQueue() {
			break
		}
	}
	if len(f.outQueue) == 0 {
		return "", false
	}
	line := f.outQueue[0]
	f.outQueue = f.outQueue[1:]
	if cont, ok := strings.CutPrefix(line, wrappedMark); ok {
		return cont, true
	}

	indented := f.beaut.Beautify(line)
	enhanced := f.enh.Process(indented, f.beaut)
	f.checksumOut += sumNonWhitespace(enhanced)

	wrapped := wrapMaxCodeLength(f.opts, enhanced)
	if len(wrapped) > 1 {
		cont := make([]string, 0, len(wrapped)-1+len(f.outQueue))
		for _, w := range wrapped[1:] {
			cont = append(cont, wrappedMark+w)
		}
		f.outQueue = append(cont, f.outQueue...)
	}
	return wrapped[0], true
}

// fillQueue processes exactly one raw input line (or flushes the held
// line at EOF), appending to outQueue. It returns false once there is
// nothing left to process.
func (f *Formatter) fillQueue() bool {
	if !f.it.HasMoreLines() {
		if f.heldSet {
			f.outQueue = append(f.outQueue, f.held)
			f.held = ""
			f.heldSet = false
			return true
		}
		return false
	}

	span := trace.Begin(f.tr, trace.ScopeLine, "format", 0)
	defer span.End("")

	raw, _ := f.it.NextLine(false)
	f.checksumIn += sumNonWhitespace(raw)

	trimmedRaw := strings.TrimSpace(raw)
	if trimmedRaw == "" {
		if f.opts.DeleteEmptyLines {
			return true
		}
		if f.heldSet {
			f.outQueue = append(f.outQueue, f.held)
			f.held = ""
			f.heldSet = false
		}
		f.outQueue = append(f.outQueue, "")
		return true
	}

	reshaped := padHeaderParens(trimmedRaw)
	reshaped = padOperators(f.opts, reshaped)
	reshaped = padParens(f.opts, reshaped)
	reshaped = alignPointersAndReferences(f.opts, reshaped)

	if f.heldSet && (f.opts.AddBrackets || f.opts.AddOneLineBrackets) &&
		isBareControlHeader(f.held) && isSingleSafeStatement(reshaped) {
		header := strings.TrimRight(f.held, " ")
		f.held = ""
		f.heldSet = false
		f.insertedBracketAdjust += bracePairWeight
		if f.opts.AddOneLineBrackets {
			f.outQueue = append(f.outQueue, header+" { "+reshaped+" }")
		} else {
			f.outQueue = append(f.outQueue, header+" {", reshaped, "}")
		}
		f.carriedHeader = ""
		return true
	}

	if trimmedRaw == "{" {
		kind := classifyBrace(f.carriedHeader)
		if attachesFor(f.opts, kind) && f.heldSet {
			f.held = strings.TrimRight(f.held, " ") + " {"
			f.carriedHeader = ""
			f.outQueue = append(f.outQueue, f.held)
			f.held = ""
			f.heldSet = false
			return true
		}
	}

	pieces, lastHeader, removedBrackets := splitLine(f.opts, reshaped, f.carriedHeader)
	f.carriedHeader = lastHeader
	f.removedBracketAdjust += int64(removedBrackets) * bracePairWeight
	if len(pieces) == 0 {
		return true
	}

	if f.heldSet {
		f.outQueue = append(f.outQueue, f.held)
		f.held = ""
		f.heldSet = false
	}
	f.outQueue = append(f.outQueue, pieces[:len(pieces)-1]...)
	f.held = pieces[len(pieces)-1]
	f.heldSet = true
	return true
}
