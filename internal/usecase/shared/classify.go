package shared

import (
	"log/slog"

	"tabletop-reserve/internal/pkg/errs"
)

const stackLines = 12

// Classify passes categorized errors through untouched and turns anything else into an
// internal error after logging the original cause.
func Classify(logger *slog.Logger, op string, err error) error {
	if err == nil {
		return nil
	}
	if errs.Category(err) != nil {
		return err
	}

	logger.Error("Unexpected failure: "+op,
		slog.String("error", err.Error()),
		slog.Any("stack", errs.ExtractStackLines(err, stackLines)),
	)
	return errs.Mark(errs.Wrap(err, op), errs.ErrInternal)
}
