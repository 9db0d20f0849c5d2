package handlers

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"bookstore/internal/services"
)

// NotificationHandler handles HTTP requests for the notification feed.
type NotificationHandler struct {
	notificationService *services.NotificationService
	validate            *validator.Validate
}

// NewNotificationHandler creates a new NotificationHandler.
func NewNotificationHandler(notificationService *services.NotificationService) *NotificationHandler {
	return &NotificationHandler{
		notificationService: notificationService,
		validate:            validator.New(),
	}
}

// RegisterRoutes registers the feed read route.
func (h *NotificationHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/notifications", h.HandleFeed)
}

// RegisterAdminRoutes registers the publish route.
func (h *NotificationHandler) RegisterAdminRoutes(router fiber.Router) {
	router.Post("/notifications", h.HandlePublish)
}

// PublishRequest represents the request body for publishing a notification.
type PublishRequest struct {
	Message      string  `json:"message" validate:"required"`
	Broadcast    bool    `json:"broadcast"`
	TargetUserID *string `json:"target_user_id"`
}

// HandlePublish publishes a broadcast or targeted notification authored by
// the authenticated admin.
func (h *NotificationHandler) HandlePublish(c *fiber.Ctx) error {
	var req PublishRequest
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

	if err := h.notificationService.Publish(currentActorID(c), req.Message, req.Broadcast, req.TargetUserID); err != nil {
		log.Printf("Error publishing notification: %v", err)
		return failJSON(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Notification created",
	})
}

// HandleFeed returns the notifications visible to the authenticated user.
func (h *NotificationHandler) HandleFeed(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", services.DefaultNotificationLimit)
	notes, err := h.notificationService.VisibleTo(currentUserID(c), limit)
	if err != nil {
		return failJSON(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(notes)
}
