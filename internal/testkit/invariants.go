// Package testkit carries invariant checkers shared across this
// module's test suites.
package testkit

import (
	"fmt"

	"cstyle/internal/beautifier"
)

// CheckBeautifierInvariants verifies b's exported stack-balance and
// depth invariants after a file has been fully run through it:
// BraceDepth must never be negative, and a switch reported by
// InSwitchBody must sit at or above its own recorded brace depth.
func CheckBeautifierInvariants(b *beautifier.Beautifier) error {
	if b.BraceDepth() < 0 {
		return fmt.Errorf("testkit: brace depth went negative")
	}
	if inSwitch, switchDepth := b.InSwitchBody(); inSwitch && b.BraceDepth() < switchDepth {
		return fmt.Errorf("testkit: brace depth %d below owning switch's depth %d while still reported in its body", b.BraceDepth(), switchDepth)
	}
	return nil
}

// CheckChecksumInvariant verifies that a run which did not add or
// remove brackets read and wrote the same total of non-whitespace
// character codes.
func CheckChecksumInvariant(checksumIn, checksumOut int64) error {
	if checksumIn != checksumOut {
		return fmt.Errorf("testkit: checksum mismatch: in=%d out=%d", checksumIn, checksumOut)
	}
	return nil
}
