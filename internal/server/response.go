package server

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// respondWithError sends a JSON error response.
func respondWithError(c *fiber.Ctx, statusCode int, message string) error {
	return c.Status(statusCode).JSON(fiber.Map{
		"status":  "error",
		"message": message,
	})
}

// respondWithJSON sends a JSON success response.
func respondWithJSON(c *fiber.Ctx, statusCode int, data interface{}) error {
	return c.Status(statusCode).JSON(fiber.Map{
		"status": "success",
		"data":   data,
	})
}

// formatValidationErrors flattens validator/v10 errors into messages.
func formatValidationErrors(err error) []string {
	var errors []string
	if verrs, ok := err.(validator.ValidationErrors); ok {
		for _, verr := range verrs {
			element := fmt.Sprintf("Field '%s' failed on the '%s' tag", verr.Field(), verr.Tag())
			if verr.Param() != "" {
				element = fmt.Sprintf("%s (value: %s)", element, verr.Param())
			}
			errors = append(errors, element)
		}
		return errors
	}
	return []string{err.Error()}
}
