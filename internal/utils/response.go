package utils

import "github.com/gofiber/fiber/v2"

// ErrorResponse is the stable error envelope returned on every failure path.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// SendError sends an error JSON response with the given status code. Details
// carries the underlying diagnostic message when one is safe to expose.
func SendError(c *fiber.Ctx, status int, message string, details string) error {
	if message == "" {
		message = "error"
	}

	return c.Status(status).JSON(ErrorResponse{
		Error:   message,
		Details: details,
	})
}
