package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/svera/corkboard/internal/errs"
	"go.uber.org/zap"
)

var (
	ErrLocked  = fiber.NewError(fiber.StatusLocked, "This board is locked for edit by another user.")
	ErrExpired = fiber.NewError(fiber.StatusGone, "This board has expired. You cannot make any changes.")
)

// Status translates the errors returned by the access core and repositories into
// the HTTP errors handlers return. Unexpected errors are logged and hidden.
func Status(err error) error {
	var fiberErr *fiber.Error

	switch {
	case err == nil:
		return nil
	case errors.As(err, &fiberErr):
		return fiberErr
	case errors.Is(err, errs.ErrNotFound):
		return fiber.ErrNotFound
	case errors.Is(err, errs.ErrUnauthorized):
		return fiber.ErrUnauthorized
	case errors.Is(err, errs.ErrLocked):
		return ErrLocked
	case errors.Is(err, errs.ErrExpired):
		return ErrExpired
	case errors.Is(err, errs.ErrAlreadyExists):
		return fiber.ErrConflict
	}

	zap.L().Error("unexpected error", zap.Error(err))
	return fiber.ErrInternalServerError
}
