package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
// The ledger returns it for account kinds outside the fixed set, which can
// only happen through a caller bug since the set is closed.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrNotInitialized indicates that the ledger facade was used before
// Initialize established the in-memory state. This is a programmer-contract
// violation, not a runtime data error.
var ErrNotInitialized = errors.New("ledger not initialized")
