package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
// Every store constraint violation is also a validation error.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = fmt.Errorf("%w: resource already exists", ErrValidation)

// ErrConstraint indicates that the store rejected a write because it broke a
// referential or check constraint (e.g. an unknown account id).
var ErrConstraint = fmt.Errorf("%w: constraint violation", ErrValidation)

// ErrInvalidAmount indicates a monetary value that cannot be represented.
var ErrInvalidAmount = fmt.Errorf("%w: invalid amount", ErrValidation)

// ErrStoreAccess indicates that the store could not be reached or failed for a
// reason other than a constraint violation.
var ErrStoreAccess = errors.New("store access error")

// ErrDecode indicates a row whose columns are missing or of an unexpected type.
var ErrDecode = errors.New("row decode error")

// ErrInvariantViolation indicates persisted data that breaks the double-entry
// rules: a journal with fewer than two ledger lines, lines that do not sum to
// zero, or a write that produced no identifier.
var ErrInvariantViolation = errors.New("ledger invariant violation")
