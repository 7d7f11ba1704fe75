package shared

import (
	"carconnect/internal/infra"
	"carconnect/internal/pkg/errs"
)

// ErrorMessages are the client-facing texts used when a repository error is
// turned into a usecase error kind. Empty fields fall back to generic text.
type ErrorMessages struct {
	NotFound  string
	Conflict  string
	Integrity string
}

// Translate maps repository error kinds onto the errs sentinels. Errors that
// did not come from a repository are returned unchanged.
func (m ErrorMessages) Translate(err error) error {
	kind, ok := infra.KindOf(err)
	if !ok {
		return err
	}

	switch kind {
	case infra.KindNotFound:
		return errs.MarkCause(err, errs.ErrNotFound, "%s", orDefault(m.NotFound, "record not found"))
	case infra.KindDuplicateKey:
		return errs.MarkCause(err, errs.ErrConflict, "%s", orDefault(m.Conflict, "record already exists"))
	case infra.KindForeignKeyViolated:
		return errs.MarkCause(err, errs.ErrReferentialIntegrity, "%s", orDefault(m.Integrity, "referenced record does not exist or is still in use"))
	case infra.KindConnectivity:
		return errs.MarkCause(err, errs.ErrDatabaseConnectivity, "database is unreachable")
	default:
		return errs.MarkCause(err, errs.ErrGenericPersistence, "persistence failure")
	}
}

// Validation marks a domain validation error so handlers answer 400.
func Validation(err error) error {
	if err == nil {
		return nil
	}
	return errs.Mark(err, errs.ErrValidation)
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
