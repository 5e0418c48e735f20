package handlers

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/ksrami99/SkillSwap/internal/apperror"
	"github.com/ksrami99/SkillSwap/internal/dto"
)

// fail is the single place the error taxonomy meets HTTP. Services return
// coded errors; everything without a code is a server fault and is logged
// and masked.
func fail(c *fiber.Ctx, err error) error {
	code := apperror.CodeOf(err)
	status := apperror.HTTPStatus(code)

	message := err.Error()
	if status >= fiber.StatusInternalServerError {
		slog.Error("unhandled server error", "method", c.Method(), "path", c.Path(), "error", err.Error())
		message = "Internal server error. Please try again later."
	}

	return c.Status(status).JSON(dto.ErrorResponse{
		Error:   true,
		Code:    string(code),
		Message: message,
	})
}

func badRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
		Error:   true,
		Code:    string(apperror.CodeValidationFailed),
		Message: message,
	})
}

func unauthorized(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
		Error:   true,
		Code:    string(apperror.CodeInvalidToken),
		Message: "Unauthorized",
	})
}
