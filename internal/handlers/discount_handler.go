package handlers

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"bookstore/internal/services"
)

// DiscountHandler handles HTTP requests for category discounts.
type DiscountHandler struct {
	discountService *services.DiscountService
	validate        *validator.Validate
}

// NewDiscountHandler creates a new DiscountHandler.
func NewDiscountHandler(discountService *services.DiscountService) *DiscountHandler {
	return &DiscountHandler{
		discountService: discountService,
		validate:        validator.New(),
	}
}

// RegisterRoutes registers discount read routes.
func (h *DiscountHandler) RegisterRoutes(router fiber.Router) {
	discounts := router.Group("/discounts")
	discounts.Get("/", h.HandleList)
	discounts.Get("/:category", h.HandleGet)
}

// RegisterAdminRoutes registers discount management routes.
func (h *DiscountHandler) RegisterAdminRoutes(router fiber.Router) {
	discounts := router.Group("/discounts")
	discounts.Put("/", h.HandleSet)
	discounts.Delete("/:category", h.HandleRemove)
}

// SetDiscountRequest represents the request body for setting a discount.
type SetDiscountRequest struct {
	Category           string  `json:"category" validate:"required,max=100"`
	DiscountPercentage float64 `json:"discount_percentage" validate:"gte=0,lte=100"`
}

// HandleSet upserts a category's discount percentage.
func (h *DiscountHandler) HandleSet(c *fiber.Ctx) error {
	var req SetDiscountRequest
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

	if err := h.discountService.Set(currentActorID(c), req.Category, req.DiscountPercentage); err != nil {
		log.Printf("Error setting discount for %s: %v", req.Category, err)
		return failJSON(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Discount saved successfully",
	})
}

// HandleGet returns the discount percentage for one category; 0 when none.
func (h *DiscountHandler) HandleGet(c *fiber.Ctx) error {
	pct, err := h.discountService.Get(c.Params("category"))
	if err != nil {
		return failJSON(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"category":            c.Params("category"),
		"discount_percentage": pct,
	})
}

// HandleList returns all discount rows ordered by category.
func (h *DiscountHandler) HandleList(c *fiber.Ctx) error {
	discounts, err := h.discountService.List()
	if err != nil {
		return failJSON(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(discounts)
}

// HandleRemove deletes a category's discount. Idempotent.
func (h *DiscountHandler) HandleRemove(c *fiber.Ctx) error {
	if err := h.discountService.Remove(currentActorID(c), c.Params("category")); err != nil {
		log.Printf("Error removing discount for %s: %v", c.Params("category"), err)
		return failJSON(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Discount removed successfully",
	})
}
