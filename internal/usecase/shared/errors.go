package shared

import (
	"tabletop-reserve/internal/infra"
	"tabletop-reserve/internal/pkg/errs"
)

// BadRequest marks a domain validation failure so it reaches the client as-is.
func BadRequest(err error) error {
	return errs.Mark(err, errs.ErrBadRequest)
}

// NotFoundOr turns a repository miss into NotFound with the given message and passes any
// other failure through.
func NotFoundOr(err error, format string, args ...any) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return errs.NotFound(format, args...)
	}
	return err
}

// PreconditionOr is NotFoundOr for lookups whose miss means the caller skipped a step.
func PreconditionOr(err error, format string, args ...any) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return errs.PreconditionFailed(format, args...)
	}
	return err
}

// ConflictOr maps a unique-constraint violation to Conflict.
func ConflictOr(err error, format string, args ...any) error {
	if infra.IsKind(err, infra.KindDuplicateKey) {
		return errs.Conflict(format, args...)
	}
	return err
}
