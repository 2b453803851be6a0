package api

import (
	"strconv"
	"strings"
	"time"

	"tabletop-reserve/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

const dateParamLayout = "2006-01-02"

// parseID reads a positive numeric path parameter.
func parseID(c *gin.Context, name string) (int64, error) {
	raw := c.Param(name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, errs.BadRequest("invalid %s %q", name, raw)
	}
	return id, nil
}

func parseUserID(c *gin.Context) (string, error) {
	id := strings.TrimSpace(c.Param("userId"))
	if id == "" {
		return "", errs.BadRequest("missing userId")
	}
	return id, nil
}

// parseDate reads a calendar date query parameter as midnight in loc.
func parseDate(c *gin.Context, name string, loc *time.Location) (time.Time, error) {
	raw := c.Query(name)
	if raw == "" {
		return time.Time{}, errs.BadRequest("missing %s", name)
	}
	d, err := time.ParseInLocation(dateParamLayout, raw, loc)
	if err != nil {
		return time.Time{}, errs.BadRequest("invalid %s %q, expected YYYY-MM-DD", name, raw)
	}
	return d, nil
}

func bindError(err error) error {
	return errs.Mark(errs.Wrap(err, "invalid request"), errs.ErrBadRequest)
}
