package domain

import "errors"

// The closed set of outcomes a core operation can report. Expected
// conditions are returned as values and matched with errors.Is; only
// infrastructure failures wrap ErrStorage.
var (
	// ErrNotFound means a referenced entity, membership or social edge
	// does not exist. Safe to surface to the caller as-is.
	ErrNotFound = errors.New("not found")

	// ErrPermissionDenied means the actor lacks the required ownership.
	ErrPermissionDenied = errors.New("permission denied")

	// ErrValidation means a cross-entity invariant was violated, e.g. a
	// song declared under an artist that does not own its album.
	ErrValidation = errors.New("validation failed")

	// ErrConflict means a uniqueness constraint rejected the write and the
	// condition could not be absorbed as idempotent success.
	ErrConflict = errors.New("conflict")

	// ErrStorage means the transaction could not commit. Writes are
	// all-or-nothing, so the caller may retry the whole operation.
	ErrStorage = errors.New("storage failure")
)
