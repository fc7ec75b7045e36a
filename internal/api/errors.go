package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// internalError logs err and answers 500 with the message and its wrap chain
func internalError(c echo.Context, logger *zap.Logger, msg string, err error) error {
	logger.Error(msg,
		zap.String("path", c.Path()),
		zap.String("request_id", c.Response().Header().Get(echo.HeaderXRequestID)),
		zap.Error(err))

	return c.JSON(http.StatusInternalServerError, ErrorResponse{
		Error:     msg,
		Details:   err.Error(),
		Traceback: errorChain(err),
	})
}

// errorChain lists err and every error it wraps, outermost first
func errorChain(err error) []string {
	var chain []string
	for err != nil {
		chain = append(chain, fmt.Sprintf("%T: %s", err, err.Error()))
		if joined, ok := err.(interface{ Unwrap() []error }); ok {
			for _, inner := range joined.Unwrap() {
				chain = append(chain, errorChain(inner)...)
			}
			break
		}
		err = errors.Unwrap(err)
	}
	return chain
}

// ErrorHandler renders errors returned from handlers and middleware, including
// recovered panics, with the same payload shape as the handlers use
func ErrorHandler(logger *zap.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var he *echo.HTTPError
		if errors.As(err, &he) {
			msg := http.StatusText(he.Code)
			if m, ok := he.Message.(string); ok && m != "" {
				msg = m
			}
			if c.Request().Method == http.MethodHead {
				c.NoContent(he.Code)
				return
			}
			c.JSON(he.Code, ErrorResponse{Error: msg})
			return
		}

		if writeErr := internalError(c, logger, "Internal server error", err); writeErr != nil {
			logger.Error("Failed to write error response", zap.Error(writeErr))
		}
	}
}
