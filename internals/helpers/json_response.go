package helper

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

/* ===============================
   Success responses
=================================*/

// JsonList renders a paginated collection as {count, results}.
func JsonList(c *fiber.Ctx, count int64, results any) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"count":   count,
		"results": results,
	})
}

// JsonOK renders a single resource representation.
func JsonOK(c *fiber.Ctx, data any) error {
	return c.Status(fiber.StatusOK).JSON(data)
}

// JsonCreated renders a freshly created resource representation.
func JsonCreated(c *fiber.Ctx, data any) error {
	return c.Status(fiber.StatusCreated).JSON(data)
}

// JsonDeleted renders 204 with an empty body.
func JsonDeleted(c *fiber.Ctx) error {
	return c.SendStatus(fiber.StatusNoContent)
}

/* ===============================
   Error responses
=================================*/

// JsonError renders a non-field error as {"detail": message}.
func JsonError(c *fiber.Ctx, status int, message string) error {
	if strings.TrimSpace(message) == "" {
		message = fiber.ErrInternalServerError.Message
	}
	if status == 0 {
		status = fiber.StatusInternalServerError
	}
	return c.Status(status).JSON(fiber.Map{"detail": message})
}

// JsonValidationError renders field-scoped messages as a 400 body of
// field -> [messages].
func JsonValidationError(c *fiber.Ctx, fieldErrors map[string][]string) error {
	if fieldErrors == nil {
		fieldErrors = map[string][]string{}
	}
	return c.Status(fiber.StatusBadRequest).JSON(fieldErrors)
}

// JsonFieldError is a shorthand for a single-field validation error.
func JsonFieldError(c *fiber.Ctx, field, message string) error {
	return JsonValidationError(c, map[string][]string{field: {message}})
}

// ValidationError maps validator.v10 errors onto the field-scoped shape.
func ValidationError(c *fiber.Ctx, err error) error {
	ve, ok := err.(validator.ValidationErrors)
	if !ok {
		return JsonError(c, fiber.StatusBadRequest, "Invalid input")
	}
	fieldErrors := make(map[string][]string, len(ve))
	for _, fe := range ve {
		field := strings.ToLower(fe.Field())
		fieldErrors[field] = append(fieldErrors[field], "failed "+fe.Tag()+" validation")
	}
	return JsonValidationError(c, fieldErrors)
}
