package handlers

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"bookstore/internal/services"
)

// PurchaseHandler handles HTTP requests for the purchase ledger.
type PurchaseHandler struct {
	purchaseService *services.PurchaseService
	validate        *validator.Validate
}

// NewPurchaseHandler creates a new PurchaseHandler.
func NewPurchaseHandler(purchaseService *services.PurchaseService) *PurchaseHandler {
	return &PurchaseHandler{
		purchaseService: purchaseService,
		validate:        validator.New(),
	}
}

// RegisterRoutes registers purchase routes.
func (h *PurchaseHandler) RegisterRoutes(router fiber.Router) {
	purchases := router.Group("/purchases")
	purchases.Post("/", h.HandlePurchase)
	purchases.Get("/history", h.HandleHistory)
}

// PurchaseRequest represents the request body for buying a book.
type PurchaseRequest struct {
	BookID string `json:"book_id" validate:"required"`
}

// HandlePurchase records a purchase for the authenticated user and returns
// the frozen price receipt.
func (h *PurchaseHandler) HandlePurchase(c *fiber.Ctx) error {
	var req PurchaseRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"error":   err.Error(),
		})
	}

	receipt, err := h.purchaseService.Purchase(currentUserID(c), req.BookID)
	if err != nil {
		log.Printf("Error purchasing book %s for user %s: %v", req.BookID, currentUserID(c), err)
		return failJSON(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(receipt)
}

// HandleHistory returns the authenticated user's purchase history.
func (h *PurchaseHandler) HandleHistory(c *fiber.Ctx) error {
	records, err := h.purchaseService.History(currentUserID(c))
	if err != nil {
		return failJSON(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(records)
}
