// Package abi implements the Solidity ABI word-layout codec used by Opera's
// precompiled contracts: a bounds-checked reader, an offset-resolving
// writer, and the type-directed read/write dispatch built on top of them.
package abi

import (
	"errors"
	"fmt"
)

// RevertError is the single error kind the codec produces. Every failure
// is a short, EVM-revert-shaped reason string; there is no richer error
// hierarchy because the host VM, not this package, decides how a revert
// is reported to the caller.
type RevertError struct {
	Reason string
}

func (e *RevertError) Error() string {
	return e.Reason
}

func revert(reason string) error {
	return &RevertError{Reason: reason}
}

func revertf(format string, args ...interface{}) error {
	return &RevertError{Reason: fmt.Sprintf(format, args...)}
}

// AsRevert reports whether err is (or wraps) a *RevertError, matching the
// "single error kind" contract in the codec's design.
func AsRevert(err error) (*RevertError, bool) {
	var re *RevertError
	ok := errors.As(err, &re)
	return re, ok
}

// RevertErrorf builds a *RevertError with a formatted reason, for callers
// outside this package (precompile handlers, CLI fixture reporting) that
// need to surface a revert in the same shape the codec itself produces.
func RevertErrorf(format string, args ...interface{}) error {
	return revertf(format, args...)
}
