package repositories

import "bookstore/internal/models"

// ReviewRepository defines the interface for book review access.
type ReviewRepository interface {
	Create(review *models.Review) error
	// ForBook returns a book's reviews joined with the reviewer's
	// username, newest first.
	ForBook(bookID string) ([]models.ReviewWithAuthor, error)
}
