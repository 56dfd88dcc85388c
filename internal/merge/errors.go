package merge

import (
	"errors"
	"fmt"
)

// MergeErrorCode categorizes merge failures.
type MergeErrorCode string

const (
	// ErrCodeIncompatibleRoot indicates two structurally valid trees whose
	// first nodes are not equivalent: the inputs are not the same game.
	// Recoverable at the caller's discretion (skip the input or abort).
	ErrCodeIncompatibleRoot MergeErrorCode = "INCOMPATIBLE_ROOT"

	// ErrCodeNoInput indicates a merge invoked with zero input trees.
	ErrCodeNoInput MergeErrorCode = "NO_INPUT"

	// ErrCodeMultiGameCollection indicates an input file holding more than
	// one game; only single-game records can be merged.
	ErrCodeMultiGameCollection MergeErrorCode = "MULTI_GAME_COLLECTION"
)

// MergeError is a structured merge failure.
type MergeError struct {
	Code   MergeErrorCode
	Msg    string
	Source string // provenance label of the offending input, if any
}

// Error implements the error interface.
func (e *MergeError) Error() string {
	if e.Source != "" {
		return fmt.Sprintf("%s: %s (source=%s)", e.Code, e.Msg, e.Source)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Msg)
}

// IsIncompatibleRoot reports whether err is an incompatible-root merge
// error. Uses errors.As to handle wrapped errors.
func IsIncompatibleRoot(err error) bool {
	var me *MergeError
	return errors.As(err, &me) && me.Code == ErrCodeIncompatibleRoot
}

// IsMultiGameCollection reports whether err is a multi-game-collection
// merge error.
func IsMultiGameCollection(err error) bool {
	var me *MergeError
	return errors.As(err, &me) && me.Code == ErrCodeMultiGameCollection
}

func newIncompatibleRootError(source string) *MergeError {
	return &MergeError{
		Code:   ErrCodeIncompatibleRoot,
		Msg:    "first nodes are not equivalent; inputs do not record the same game",
		Source: source,
	}
}
