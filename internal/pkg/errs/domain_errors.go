package errs

import "errors"

// Error kinds surfaced by usecases. Callers compare with errs.Is;
// concrete errors are built with Mark/MarkNew so the message stays specific.
var (
	// Store unreachable or database missing
	ErrDatabaseConnectivity = errors.New("database connectivity error")
	// Referenced customer or vehicle does not exist, or a row is still referenced
	ErrReferentialIntegrity = errors.New("referential integrity violation")
	ErrNotFound             = errors.New("not found")
	ErrInvalidTransition    = errors.New("invalid status transition")
	// Stored reservation status is outside the known set
	ErrCorruptedState     = errors.New("corrupted state")
	ErrGenericPersistence = errors.New("persistence failure")

	ErrValidation         = errors.New("validation failed")
	ErrConflict           = errors.New("conflict")
	ErrInvalidCredentials = errors.New("invalid credentials")
	// Caller is authenticated but may not touch another account's data
	ErrForbidden = errors.New("forbidden")
)
