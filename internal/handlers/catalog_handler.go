package handlers

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"bookstore/internal/services"
)

// CatalogHandler handles HTTP requests for the book catalog.
type CatalogHandler struct {
	catalogService *services.CatalogService
	validate       *validator.Validate
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(catalogService *services.CatalogService) *CatalogHandler {
	return &CatalogHandler{
		catalogService: catalogService,
		validate:       validator.New(),
	}
}

// RegisterRoutes registers catalog browsing routes.
func (h *CatalogHandler) RegisterRoutes(router fiber.Router) {
	books := router.Group("/books")
	books.Get("/", h.HandleListAll)
	books.Get("/shelves", h.HandleListByCategory)
	books.Get("/search", h.HandleSearch)
	books.Get("/:id", h.HandleGetByID)
	books.Get("/:id/content", h.HandleGetContent)
}

// RegisterAdminRoutes registers catalog management routes.
func (h *CatalogHandler) RegisterAdminRoutes(router fiber.Router) {
	books := router.Group("/books")
	books.Post("/", h.HandleAddBook)
	books.Delete("/:id", h.HandleDeleteBook)
}

// AddBookRequest represents the request body for adding a book.
type AddBookRequest struct {
	Title       string  `json:"title" validate:"required,max=200"`
	Author      string  `json:"author" validate:"required,max=200"`
	Category    string  `json:"category" validate:"required,max=100"`
	Price       float64 `json:"price" validate:"gte=0"`
	Description string  `json:"description" validate:"omitempty,max=2000"`
	Content     string  `json:"content"`
}

// HandleAddBook adds a book to the catalog.
func (h *CatalogHandler) HandleAddBook(c *fiber.Ctx) error {
	var req AddBookRequest
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

	id, err := h.catalogService.AddBook(currentActorID(c), req.Title, req.Author, req.Category, req.Price, req.Description, req.Content)
	if err != nil {
		log.Printf("Error adding book %q: %v", req.Title, err)
		return failJSON(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Book added successfully",
		"id":      id,
	})
}

// HandleListAll lists the whole catalog ordered by category then title.
func (h *CatalogHandler) HandleListAll(c *fiber.Ctx) error {
	books, err := h.catalogService.ListAll()
	if err != nil {
		return failJSON(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(books)
}

// HandleListByCategory lists the catalog shelved by category.
func (h *CatalogHandler) HandleListByCategory(c *fiber.Ctx) error {
	shelves, err := h.catalogService.ListByCategory()
	if err != nil {
		return failJSON(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(shelves)
}

// HandleSearch matches books by title, author, or category substring.
func (h *CatalogHandler) HandleSearch(c *fiber.Ctx) error {
	query := c.Query("q")
	if query == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Query parameter 'q' is required",
		})
	}
	books, err := h.catalogService.Search(query)
	if err != nil {
		return failJSON(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(books)
}

// HandleGetByID returns one book's full detail.
func (h *CatalogHandler) HandleGetByID(c *fiber.Ctx) error {
	book, err := h.catalogService.GetByID(c.Params("id"))
	if err != nil {
		return failJSON(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(book)
}

// HandleGetContent returns the reading view of a book.
func (h *CatalogHandler) HandleGetContent(c *fiber.Ctx) error {
	content, err := h.catalogService.GetContent(c.Params("id"))
	if err != nil {
		return failJSON(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(content)
}

// HandleDeleteBook removes a book from the catalog. Historical purchases
// and reviews for it remain readable.
func (h *CatalogHandler) HandleDeleteBook(c *fiber.Ctx) error {
	if err := h.catalogService.DeleteBook(currentActorID(c), c.Params("id")); err != nil {
		log.Printf("Error deleting book %s: %v", c.Params("id"), err)
		return failJSON(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Book deleted successfully",
	})
}
