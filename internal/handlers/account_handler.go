package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"bookstore/internal/services"
)

// AccountHandler handles admin HTTP requests for user management.
type AccountHandler struct {
	accountService *services.AccountService
}

// NewAccountHandler creates a new AccountHandler.
func NewAccountHandler(accountService *services.AccountService) *AccountHandler {
	return &AccountHandler{
		accountService: accountService,
	}
}

// RegisterAdminRoutes registers user management routes.
func (h *AccountHandler) RegisterAdminRoutes(router fiber.Router) {
	users := router.Group("/users")
	users.Get("/", h.HandleListUsers)
	users.Post("/:id/ban", h.HandleBan)
	users.Post("/:id/unban", h.HandleUnban)
}

// HandleListUsers returns all regular users ordered by username.
func (h *AccountHandler) HandleListUsers(c *fiber.Ctx) error {
	users, err := h.accountService.ListRegularUsers()
	if err != nil {
		return failJSON(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(users)
}

// HandleBan suspends a regular user account.
func (h *AccountHandler) HandleBan(c *fiber.Ctx) error {
	if err := h.accountService.Ban(c.Params("id")); err != nil {
		log.Printf("Error banning user %s: %v", c.Params("id"), err)
		return failJSON(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "User banned successfully",
	})
}

// HandleUnban lifts a regular user's suspension.
func (h *AccountHandler) HandleUnban(c *fiber.Ctx) error {
	if err := h.accountService.Unban(c.Params("id")); err != nil {
		log.Printf("Error unbanning user %s: %v", c.Params("id"), err)
		return failJSON(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "User unbanned successfully",
	})
}
