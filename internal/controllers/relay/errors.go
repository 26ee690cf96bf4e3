package relay

import (
	"errors"
	"fmt"

	"github.com/DIMO-Network/server-garage/pkg/richerrors"
	"github.com/gofiber/fiber/v2"
	"github.com/timewall-relay/postback-relay/internal/metrics"
	"github.com/timewall-relay/postback-relay/internal/notifier"
	"github.com/timewall-relay/postback-relay/internal/postback"
)

const (
	msgUnavailable = "Telegram service unavailable"
	msgInternal    = "Internal Server Error"
)

func invalidParameters(err error) error {
	return richerrors.Error{
		ExternalMsg: postback.ErrInvalidParameters.Error(),
		Err:         err,
		Code:        fiber.StatusBadRequest,
	}
}

func invalidSignature(err error) error {
	return richerrors.Error{
		ExternalMsg: postback.ErrInvalidSignature.Error(),
		Err:         err,
		Code:        fiber.StatusForbidden,
	}
}

func unavailable(err error) error {
	return richerrors.Error{
		ExternalMsg: msgUnavailable,
		Err:         err,
		Code:        fiber.StatusServiceUnavailable,
	}
}

// sendError maps a Notifier.Send failure to the HTTP error returned upstream.
func sendError(err error) error {
	if notifier.IsConflict(err) || notifier.IsNotConnected(err) {
		return unavailable(err)
	}
	return richerrors.Error{
		ExternalMsg: msgInternal,
		Err:         fmt.Errorf("failed to send message: %w", err),
		Code:        fiber.StatusInternalServerError,
	}
}

// outcome maps a handler result to the metrics outcome label.
func outcome(err error) string {
	if err == nil {
		return metrics.OutcomeForwarded
	}
	richErr, ok := richerrors.AsRichError(err)
	if !ok {
		return metrics.OutcomeFailed
	}
	switch richErr.Code {
	case fiber.StatusBadRequest:
		return metrics.OutcomeInvalid
	case fiber.StatusForbidden:
		return metrics.OutcomeBadHash
	case fiber.StatusServiceUnavailable:
		return metrics.OutcomeUnavailable
	default:
		return metrics.OutcomeFailed
	}
}

// ErrorHandler writes errors as plain text bodies, the format postback senders expect.
// Rich errors use their code and external message; anything else is a 500.
func ErrorHandler(c *fiber.Ctx, err error) error {
	if richErr, ok := richerrors.AsRichError(err); ok {
		code := richErr.Code
		if code < fiber.StatusBadRequest || code > 599 {
			code = fiber.StatusInternalServerError
		}
		msg := richErr.ExternalMsg
		if msg == "" {
			msg = msgInternal
		}
		return c.Status(code).SendString(msg)
	}
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return c.Status(fiberErr.Code).SendString(fiberErr.Message)
	}
	return c.Status(fiber.StatusInternalServerError).SendString(msgInternal)
}
