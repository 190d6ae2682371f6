// Package presenter формирует JSON-ответы HTTP-слоя в едином виде.
package presenter

import "github.com/gofiber/fiber/v2"

// ErrorResponse — тело любого ответа об ошибке.
type ErrorResponse struct {
	Message string `json:"message"`
}

// JSON отдаёт v с указанным статусом.
func JSON(c *fiber.Ctx, status int, v any) error {
	return c.Status(status).JSON(v)
}

// Accepted отдаёт 202: задание принято, результат придёт асинхронно.
func Accepted(c *fiber.Ctx, v any) error {
	return JSON(c, fiber.StatusAccepted, v)
}

// Error отдаёт сообщение об ошибке с указанным статусом.
func Error(c *fiber.Ctx, status int, message string) error {
	return JSON(c, status, ErrorResponse{Message: message})
}
