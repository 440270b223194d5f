package webserver

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/svera/corkboard/internal/i18n"
	"github.com/svera/corkboard/internal/webserver/controller"
	"go.uber.org/zap"
)

// errorHandler answers errors with JSON to API and XHR requests, and with the error page otherwise
func errorHandler(translator *i18n.Translator) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		// Status code defaults to 500
		code := fiber.StatusInternalServerError
		message := "Internal Server Error"

		// Retrieve the custom status code if it's a *fiber.Error
		var e *fiber.Error
		if errors.As(err, &e) {
			code = e.Code
			message = e.Message
		} else {
			zap.L().Error("unhandled error", zap.String("path", c.Path()), zap.Error(err))
		}

		lang, _ := c.Locals("Lang").(string)
		message = translator.T(lang, message)

		if controller.WantsJSON(c) {
			return c.Status(code).JSON(fiber.Map{"error": message})
		}

		err = c.Status(code).Render("errors/error", fiber.Map{
			"Title":   message,
			"Code":    code,
			"Message": message,
		}, "layout")
		if err != nil {
			zap.L().Error("error rendering error page", zap.Error(err))
			// In case the Render fails
			return c.Status(fiber.StatusInternalServerError).SendString("Internal Server Error")
		}

		return nil
	}
}
