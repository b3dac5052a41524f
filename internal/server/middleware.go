package server

import (
	"errors"

	orderdomain "github.com/smallbiznis/folio/internal/order/domain"
)

// classifyErrorForLog tags request-log entries with a stable error type
// and code without leaking internals into the access log.
func classifyErrorForLog(err error) (string, string) {
	if err == nil {
		return "", ""
	}
	switch {
	case asValidationErrors(err) != nil, isValidationError(err):
		return "validation_error", err.Error()
	case errors.Is(err, ErrNotFound), errors.Is(err, orderdomain.ErrOrderNotFound):
		return "not_found", err.Error()
	default:
		return "internal_error", err.Error()
	}
}
