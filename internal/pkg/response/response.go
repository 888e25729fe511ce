package response

import (
	"github.com/gofiber/fiber/v2"
)

// ErrorBody is the error JSON shape shared by every endpoint.
type ErrorBody struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// Data sends 200 OK with {"success": true, "data": data} plus any extra top-level fields.
func Data(c *fiber.Ctx, data interface{}, extra fiber.Map) error {
	body := fiber.Map{"success": true, "data": data}
	for k, v := range extra {
		body[k] = v
	}
	return c.Status(fiber.StatusOK).JSON(body)
}

// Message sends 200 OK with {"success": true, "message": message} plus any extra top-level fields.
func Message(c *fiber.Ctx, message string, extra fiber.Map) error {
	body := fiber.Map{"success": true, "message": message}
	for k, v := range extra {
		body[k] = v
	}
	return c.Status(fiber.StatusOK).JSON(body)
}

// Error sends statusCode with {"success": false, "error": message}.
func Error(c *fiber.Ctx, statusCode int, message string) error {
	return c.Status(statusCode).JSON(ErrorBody{Success: false, Error: message})
}

// NotFound is the body for unknown routes.
func NotFound(c *fiber.Ctx) error {
	return Error(c, fiber.StatusNotFound, "Endpoint not found")
}
