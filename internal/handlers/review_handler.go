package handlers

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"bookstore/internal/services"
)

// ReviewHandler handles HTTP requests for book reviews.
type ReviewHandler struct {
	reviewService *services.ReviewService
	validate      *validator.Validate
}

// NewReviewHandler creates a new ReviewHandler.
func NewReviewHandler(reviewService *services.ReviewService) *ReviewHandler {
	return &ReviewHandler{
		reviewService: reviewService,
		validate:      validator.New(),
	}
}

// RegisterRoutes registers review routes under the books resource.
func (h *ReviewHandler) RegisterRoutes(router fiber.Router) {
	router.Post("/books/:id/reviews", h.HandleAddReview)
	router.Get("/books/:id/reviews", h.HandleListReviews)
}

// AddReviewRequest represents the request body for adding a review.
type AddReviewRequest struct {
	ReviewText string `json:"review_text" validate:"required"`
	Rating     *int   `json:"rating" validate:"omitempty,gte=1,lte=5"`
}

// HandleAddReview records a review by the authenticated user.
func (h *ReviewHandler) HandleAddReview(c *fiber.Ctx) error {
	var req AddReviewRequest
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

	if err := h.reviewService.AddReview(currentUserID(c), c.Params("id"), req.ReviewText, req.Rating); err != nil {
		log.Printf("Error adding review for book %s: %v", c.Params("id"), err)
		return failJSON(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Review submitted successfully",
	})
}

// HandleListReviews returns a book's reviews with reviewer usernames.
func (h *ReviewHandler) HandleListReviews(c *fiber.Ctx) error {
	reviews, err := h.reviewService.ForBook(c.Params("id"))
	if err != nil {
		return failJSON(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(reviews)
}
