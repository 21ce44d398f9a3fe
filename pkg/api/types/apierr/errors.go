// Package apierr renders classified errors at the HTTP boundary.
//
// Every failure leaves the server as {"success":false,"message":...}.
// Unclassified errors are logged and answered with a generic 500,
// leaking no internal detail.
package apierr

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/opsboard/opsboard/pkg/domain/kerr"
)

// ErrorResponse is the wire shape of every failure.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// ErrorMessage carries the caller-facing message and the internal cause
// through echo's error pipeline.
type ErrorMessage struct {
	Message string `json:"message"`
	Cause   error  `json:"-"`
}

func (e ErrorMessage) Error() string {
	if e.Cause == nil {
		return e.Message
	}
	return e.Message + " caused by: " + e.Cause.Error()
}

func (e ErrorMessage) Unwrap() error {
	return e.Cause
}

type ErrorMessageOption func(in *ErrorMessage) *ErrorMessage

func WithError(err error) ErrorMessageOption {
	return func(in *ErrorMessage) *ErrorMessage {
		if err != nil {
			in.Cause = err
		}
		return in
	}
}

func NewErrorMessage(code int, message string, opts ...ErrorMessageOption) *echo.HTTPError {
	msg := ErrorMessage{Message: message}
	for _, opt := range opts {
		msg = *opt(&msg)
	}

	return echo.NewHTTPError(code, msg).SetInternal(msg)
}

func BadRequest(message string, options ...ErrorMessageOption) *echo.HTTPError {
	return NewErrorMessage(http.StatusBadRequest, message, options...)
}

func Unauthorized(message string, options ...ErrorMessageOption) *echo.HTTPError {
	return NewErrorMessage(http.StatusUnauthorized, message, options...)
}

func NotFound(message string, options ...ErrorMessageOption) *echo.HTTPError {
	return NewErrorMessage(http.StatusNotFound, message, options...)
}

func InternalServerError(err error) *echo.HTTPError {
	return NewErrorMessage(
		http.StatusInternalServerError,
		"Internal server error",
		WithError(err),
	)
}

// FromError maps a classified domain error to its HTTP rendering.
// Messages of classified errors are part of the API contract and pass
// through verbatim; anything unclassified becomes a 500.
func FromError(err error) *echo.HTTPError {
	message, ok := kerr.MessageOf(err)
	if !ok {
		return InternalServerError(err)
	}

	switch kerr.KindOf(err) {
	case kerr.BadRequest:
		return BadRequest(message, WithError(err))
	case kerr.Unauthorized:
		return Unauthorized(message, WithError(err))
	case kerr.NotFound:
		return NotFound(message, WithError(err))
	default:
		return InternalServerError(err)
	}
}

// Handler replaces echo's default HTTPErrorHandler so that every error,
// including ones raised by the router itself, is rendered as the
// ErrorResponse envelope.
func Handler() echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		he := new(echo.HTTPError)
		if !errors.As(err, &he) {
			he = InternalServerError(err)
		}

		var message string
		switch m := he.Message.(type) {
		case ErrorMessage:
			message = m.Message
		case string:
			message = m
		default:
			message = http.StatusText(he.Code)
		}

		if he.Code >= http.StatusInternalServerError {
			c.Logger().Error(err)
			message = "Internal server error"
		}

		if c.Request().Method == http.MethodHead {
			if err := c.NoContent(he.Code); err != nil {
				c.Logger().Error(err)
			}
			return
		}

		if err := c.JSON(he.Code, ErrorResponse{Success: false, Message: message}); err != nil {
			c.Logger().Error(err)
		}
	}
}
