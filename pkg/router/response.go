package router

import (
	"errors"
	"net/http"

	"github.com/timebank-lab/backend/pkg/errorx"
)

type errorResponse struct {
	Code  int64  `json:"code"`
	Error string `json:"error"`
}

func newErrorResponse(err error) errorResponse {
	var errx errorx.Error
	if errors.As(err, &errx) {
		return errorResponse{
			Code:  int64(errx.Code),
			Error: errx.Message,
		}
	}

	return errorResponse{
		Code:  int64(errorx.Unknown.Code),
		Error: errorx.Unknown.Message,
	}
}

// statusCode maps a handler error to the HTTP status of the response. Only
// missing records, malformed input and missing identity get their own status.
func statusCode(err error) int {
	var errx errorx.Error
	if !errors.As(err, &errx) {
		return http.StatusInternalServerError
	}

	switch errx.Code {
	case errorx.NotFound:
		return http.StatusNotFound
	case errorx.BadRequest:
		return http.StatusBadRequest
	case errorx.Unauthenticated:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}
