package errs

import "errors"

// Categories surfaced to the HTTP adapter. Concrete errors are marked with exactly one of them.
// cockroach marks compare by message, so the messages are kept distinct from ordinary errors.
var (
	ErrNotFound           = errors.New("category: not found")
	ErrPreconditionFailed = errors.New("category: precondition failed")
	ErrNoContent          = errors.New("category: no content")
	ErrBadRequest         = errors.New("category: bad request")
	ErrConflict           = errors.New("category: conflict")
	ErrInternal           = errors.New("category: internal error")
)

var categories = []error{
	ErrNotFound,
	ErrPreconditionFailed,
	ErrNoContent,
	ErrBadRequest,
	ErrConflict,
	ErrInternal,
}

func NotFound(format string, args ...any) error {
	return Mark(Newf(format, args...), ErrNotFound)
}

func PreconditionFailed(format string, args ...any) error {
	return Mark(Newf(format, args...), ErrPreconditionFailed)
}

func NoContent(format string, args ...any) error {
	return Mark(Newf(format, args...), ErrNoContent)
}

func BadRequest(format string, args ...any) error {
	return Mark(Newf(format, args...), ErrBadRequest)
}

func Conflict(format string, args ...any) error {
	return Mark(Newf(format, args...), ErrConflict)
}

// Category returns the category the error is marked with, or nil when it carries none.
func Category(err error) error {
	if err == nil {
		return nil
	}
	for _, c := range categories {
		if Is(err, c) {
			return c
		}
	}
	return nil
}
