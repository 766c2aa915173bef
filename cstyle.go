// Package cstyle is the library entry point for the C-family source
// beautifier: Format reshapes and re-indents a source buffer
// according to an inline option string, with no C allocator callback
// to thread through since Go already garbage-collects.
package cstyle

import (
	"strings"

	"cstyle/internal/cerr"
	"cstyle/internal/formatter"
	"cstyle/internal/iterator"
	"cstyle/internal/options"
)

// ErrorFunc receives every diagnostic collected while formatting,
// regardless of severity; callers that only care about failure
// should inspect the returned error instead.
type ErrorFunc func(cerr.Diagnostic)

// StrictChecksum, when true, turns a checksum-mismatch diagnostic
// into an Error-severity diagnostic that fails the run instead of
// being silently dropped.
var StrictChecksum = false

// Format parses optionsText, then reshapes source line by line
// through a Formatter (which owns a Beautifier and an Enhancer by
// composition), returning the reformatted buffer with the input's
// majority line ending preserved unless optionsText requests a
// specific one.
func Format(source []byte, optionsText string, onError ErrorFunc) ([]byte, error) {
	return FormatWithBase(source, options.Default(), optionsText, onError)
}

// FormatWithBase is Format, but layering optionsText onto a caller-
// supplied base instead of options.Default(). Callers that merge a
// project's .cstylerc before applying command-line flags (cmd/cstyle)
// use this to avoid re-serializing the merged option set back into
// text. base is copied, never mutated, so one *options.Options can be
// shared across concurrent calls (e.g. one per file in a directory).
func FormatWithBase(source []byte, base *options.Options, optionsText string, onError ErrorFunc) ([]byte, error) {
	copied := *base
	opts := &copied
	bag := options.ParseText(opts, optionsText)
	if vbag := options.Validate(opts); vbag.Len() > 0 {
		bag.Merge(vbag)
	}
	reportAll(bag, onError)
	if bag.HasErrors() {
		return nil, bag.AsError()
	}

	it := iterator.New(source)
	f := formatter.New(opts)
	f.Init(it)

	eol := resolveEOL(opts, it)

	var out strings.Builder
	first := true
	for f.HasMoreLines() {
		line, ok := f.NextLine()
		if !ok {
			break
		}
		if !first {
			out.WriteString(eol.String())
		}
		first = false
		out.WriteString(line)
	}

	checksumIn, checksumOut := f.Checksum()
	if checksumIn != checksumOut {
		d := cerr.Diagnostic{
			Kind:    cerr.ChecksumMismatch,
			Message: "formatter input/output non-whitespace checksum mismatch",
		}
		if StrictChecksum {
			d.Severity = cerr.SevError
		} else {
			d.Severity = cerr.ChecksumMismatch.DefaultSeverity()
		}
		if StrictChecksum && onError != nil {
			onError(d)
		}
		if StrictChecksum {
			return nil, d
		}
	}

	return []byte(out.String()), nil
}

func reportAll(bag *cerr.Bag, onError ErrorFunc) {
	if onError == nil {
		return
	}
	for _, d := range bag.Items() {
		onError(d)
	}
}

func resolveEOL(o *options.Options, it *iterator.LineIterator) iterator.EOL {
	switch o.LineEnd {
	case options.LineEndCRLF:
		return iterator.EOLCRLF
	case options.LineEndLF:
		return iterator.EOLLF
	case options.LineEndCR:
		return iterator.EOLCR
	default:
		return it.GetOutputEOL()
	}
}
