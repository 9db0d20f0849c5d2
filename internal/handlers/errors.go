package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"bookstore/internal/services"
)

// failJSON renders a service failure as JSON, mapping each error kind to
// its HTTP status. Unclassified errors are store failures and stay 500.
func failJSON(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, services.ErrValidation):
		status = fiber.StatusBadRequest
	case errors.Is(err, services.ErrAlreadyExists),
		errors.Is(err, services.ErrAlreadyPurchased):
		status = fiber.StatusConflict
	case errors.Is(err, services.ErrNotFound):
		status = fiber.StatusNotFound
	case errors.Is(err, services.ErrInvalidCredentials):
		status = fiber.StatusUnauthorized
	case errors.Is(err, services.ErrBanned):
		status = fiber.StatusForbidden
	}
	return c.Status(status).JSON(fiber.Map{
		"message": err.Error(),
	})
}

// currentUserID pulls the authenticated user's id out of the request
// context set by the auth middleware.
func currentUserID(c *fiber.Ctx) string {
	id, _ := c.Locals("user_id").(string)
	return id
}

// currentActorID is currentUserID as a nullable notification actor.
func currentActorID(c *fiber.Ctx) *string {
	id := currentUserID(c)
	if id == "" {
		return nil
	}
	return &id
}
