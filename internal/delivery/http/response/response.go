// Package response renders the unified API response envelope.
package response

import (
	"net/http"

	deliverycontext "storely/internal/delivery/context"

	"github.com/labstack/echo/v4"
)

// Meta carries response metadata common to every payload.
type Meta struct {
	RequestID string `json:"request_id"`
}

// ErrorBody is the error half of the envelope. Details are omitted for
// server-side and authentication failures so internals never leak.
type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

// Envelope is the unified response structure: exactly one of Data or Error
// is set.
type Envelope struct {
	Data  any        `json:"data,omitempty"`
	Error *ErrorBody `json:"error,omitempty"`
	Meta  Meta       `json:"meta"`
}

// Success renders a success envelope with the given status code.
func Success(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, Envelope{
		Data: data,
		Meta: Meta{RequestID: deliverycontext.GetRequestID(c)},
	})
}

// Error renders an error envelope. Details are suppressed on 5xx, 401 and
// 403 responses; clients get only the generic code and message there.
func Error(c echo.Context, statusCode int, errorCode, message, details string) error {
	if message == "" {
		message = http.StatusText(statusCode)
	}
	if suppressDetails(statusCode) {
		details = ""
	}

	return c.JSON(statusCode, Envelope{
		Error: &ErrorBody{
			Code:    errorCode,
			Message: message,
			Details: details,
		},
		Meta: Meta{RequestID: deliverycontext.GetRequestID(c)},
	})
}

func suppressDetails(statusCode int) bool {
	return statusCode >= http.StatusInternalServerError ||
		statusCode == http.StatusUnauthorized ||
		statusCode == http.StatusForbidden
}

// BindingError renders the 400 returned when request binding fails.
func BindingError(c echo.Context, message string) error {
	return Error(c, http.StatusBadRequest, "INVALID_INPUT", message, "")
}

// Unauthorized renders a generic 401.
func Unauthorized(c echo.Context, message string) error {
	return Error(c, http.StatusUnauthorized, "UNAUTHENTICATED", message, "")
}

// Forbidden renders a generic 403.
func Forbidden(c echo.Context, message string) error {
	return Error(c, http.StatusForbidden, "FORBIDDEN", message, "")
}
