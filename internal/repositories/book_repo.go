package repositories

import (
	"bookstore/internal/models"
)

// BookRepository defines the interface for catalog data access.
type BookRepository interface {
	Create(book *models.Book) error
	// GetAll returns every book ordered by (category, title).
	GetAll() ([]models.Book, error)
	// GroupedByCategory returns the catalog shelved by category: groups
	// ordered by category name, books within a group ordered by title.
	GroupedByCategory() ([]models.CategoryBooks, error)
	// Search matches title, author, or category by case-insensitive
	// substring containment, ordered by (category, title).
	Search(query string) ([]models.BookSummary, error)
	GetByID(id string) (*models.Book, error)
	// Delete hard-deletes a book. Purchases and reviews referencing it are
	// left in place; deleting an absent id is not an error.
	Delete(id string) error
}
