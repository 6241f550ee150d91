package domain

import "errors"

// ErrSessionNotFound is returned when a session ID cannot be found in the store.
var ErrSessionNotFound = errors.New("session not found")

// ErrPrecondition is returned when Execute is invoked on a session that is not
// ready: an incomplete or unconfirmed state. This is a caller-contract
// violation, not a user-facing condition.
var ErrPrecondition = errors.New("transfer not ready for execution")

// ErrAlreadyCompleted is returned on re-execution of a completed session.
// The original TransferResult is returned alongside it; callers treat this as
// recoverable.
var ErrAlreadyCompleted = errors.New("transfer already completed")
