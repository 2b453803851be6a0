package httperr

import (
	"net/http"

	"tabletop-reserve/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// StatusOf maps an error category to its HTTP status. Uncategorized errors are 500.
func StatusOf(err error) int {
	switch errs.Category(err) {
	case errs.ErrNotFound:
		return http.StatusNotFound
	case errs.ErrPreconditionFailed:
		return http.StatusPreconditionFailed
	case errs.ErrNoContent:
		return http.StatusNoContent
	case errs.ErrBadRequest:
		return http.StatusBadRequest
	case errs.ErrConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// Abort answers with the status of err's category. NoContent has no body and internal errors
// never expose their cause.
func Abort(c *gin.Context, err error) {
	status := StatusOf(err)
	switch status {
	case http.StatusNoContent:
		_ = c.Error(err)
		c.AbortWithStatus(status)
	case http.StatusInternalServerError:
		AbortWithError(c, status, err, "Internal server error", nil)
	default:
		AbortWithError(c, status, err, err.Error(), nil)
	}
}
