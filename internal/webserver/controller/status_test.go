package controller_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/svera/corkboard/internal/errs"
	"github.com/svera/corkboard/internal/webserver/controller"
)

func TestStatus(t *testing.T) {
	var cases = []struct {
		name         string
		err          error
		expectedCode int
	}{
		{"Not found", errs.ErrNotFound, fiber.StatusNotFound},
		{"Unauthorized", errs.ErrUnauthorized, fiber.StatusUnauthorized},
		{"Locked", errs.ErrLocked, fiber.StatusLocked},
		{"Expired", fmt.Errorf("board 3: %w", errs.ErrExpired), fiber.StatusGone},
		{"Already exists", errs.ErrAlreadyExists, fiber.StatusConflict},
		{"HTTP errors are kept", fiber.ErrForbidden, fiber.StatusForbidden},
		{"Anything else is an internal error", errors.New("disk full"), fiber.StatusInternalServerError},
	}

	for _, tcase := range cases {
		t.Run(tcase.name, func(t *testing.T) {
			var e *fiber.Error
			if !errors.As(controller.Status(tcase.err), &e) {
				t.Fatalf("Expected a fiber error")
			}
			if e.Code != tcase.expectedCode {
				t.Errorf("Wrong status code received, expected %d, got %d", tcase.expectedCode, e.Code)
			}
		})
	}

	if controller.Status(nil) != nil {
		t.Errorf("Expected no error")
	}
}

func TestUrlPort(t *testing.T) {
	var cases = []struct {
		protocol string
		port     int
		expected string
	}{
		{"http", 80, ""},
		{"https", 443, ""},
		{"http", 3000, ":3000"},
		{"https", 80, ":80"},
	}

	for _, tcase := range cases {
		if got := controller.UrlPort(tcase.protocol, tcase.port); got != tcase.expected {
			t.Errorf("Wrong port for %s:%d, expected %q, got %q", tcase.protocol, tcase.port, tcase.expected, got)
		}
	}
}
