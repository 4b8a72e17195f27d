package fptree

import (
	"errors"
	"fmt"

	multierror "github.com/hashicorp/go-multierror"
)

// Sentinel errors for the taxonomy a caller can match against with
// errors.Is. Wrapped errors returned from Tree methods always unwrap to one
// of these.
var (
	// ErrInvalidConfiguration covers an out-of-range support/confidence
	// fraction or an empty/duplicate-bearing item ranking at construction.
	ErrInvalidConfiguration = errors.New("fptree: invalid configuration")

	// ErrUnknownItem is returned when Insert references a label absent from
	// the tree's header index.
	ErrUnknownItem = errors.New("fptree: unknown item")

	// ErrEmptyInput is returned when New or Insert is called with no items.
	ErrEmptyInput = errors.New("fptree: empty input")

	// ErrAccountingViolation indicates a read-count would exceed a node's
	// traversal-count: a cyclic parent chain or a double-counted header
	// chain traversal. Non-recoverable for the tree instance it came from.
	ErrAccountingViolation = errors.New("fptree: accounting violation")

	// ErrNoPatterns is returned when mining finds no pattern meeting the
	// configured minimum support.
	ErrNoPatterns = errors.New("fptree: no patterns meet support")

	// ErrIncompleteData marks a header entry with zero count, or a rule
	// whose antecedent count could not be found in the pattern store.
	ErrIncompleteData = errors.New("fptree: incomplete data")
)

// fail wraps err with msg, records it as the tree's last error, and returns
// it. Every user-facing failure path in the package goes through this so
// LastError stays in sync with the error actually returned.
func (t *Tree[T]) fail(err error, msg string) error {
	wrapped := fmt.Errorf("%s: %w", msg, err)
	t.lastErr = wrapped
	t.log.Error(wrapped, "fptree operation failed")
	return wrapped
}

// failf is fail with a formatted message.
func (t *Tree[T]) failf(err error, format string, args ...any) error {
	return t.fail(err, fmt.Sprintf(format, args...))
}

// aggregateValidation combines zero or more validation errors into a single
// error using go-multierror, or returns nil if errs is empty/all-nil.
func aggregateValidation(errs ...error) error {
	var result *multierror.Error
	for _, e := range errs {
		if e != nil {
			result = multierror.Append(result, e)
		}
	}
	return result.ErrorOrNil()
}
