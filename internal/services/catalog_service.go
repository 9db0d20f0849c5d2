package services

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"bookstore/internal/models"
	"bookstore/internal/repositories"
)

// CatalogService handles business logic for the book catalog.
type CatalogService struct {
	bookRepo      repositories.BookRepository
	notifications *NotificationService
}

// NewCatalogService creates a new CatalogService.
func NewCatalogService(bookRepo repositories.BookRepository, notifications *NotificationService) *CatalogService {
	return &CatalogService{
		bookRepo:      bookRepo,
		notifications: notifications,
	}
}

// AddBook adds a book to the catalog and returns its id. Title and author
// are required; price must not be negative. A broadcast notification
// announces the book, best-effort.
func (s *CatalogService) AddBook(actorID *string, title, author, category string, price float64, description, content string) (string, error) {
	title = strings.TrimSpace(title)
	author = strings.TrimSpace(author)
	category = strings.TrimSpace(category)
	if title == "" {
		return "", fmt.Errorf("%w: title is required", ErrValidation)
	}
	if author == "" {
		return "", fmt.Errorf("%w: author is required", ErrValidation)
	}
	if category == "" {
		return "", fmt.Errorf("%w: category is required", ErrValidation)
	}
	if price < 0 {
		return "", fmt.Errorf("%w: price must not be negative", ErrValidation)
	}

	book := &models.Book{
		Title:       title,
		Author:      author,
		Category:    category,
		Price:       price,
		Description: description,
		Content:     content,
	}
	if err := s.bookRepo.Create(book); err != nil {
		return "", fmt.Errorf("failed to add book: %w", err)
	}

	if s.notifications != nil {
		msg := fmt.Sprintf("New book available: '%s' by %s (%s)", book.Title, book.Author, book.Category)
		s.notifications.NotifyBestEffort(actorID, msg, true, nil)
	}
	return book.ID, nil
}

// ListAll returns every book ordered by category then title.
func (s *CatalogService) ListAll() ([]models.Book, error) {
	return s.bookRepo.GetAll()
}

// ListByCategory returns the catalog shelved by category.
func (s *CatalogService) ListByCategory() ([]models.CategoryBooks, error) {
	return s.bookRepo.GroupedByCategory()
}

// Search matches books by title, author, or category substring. The empty
// query is the caller's problem; it would match everything.
func (s *CatalogService) Search(query string) ([]models.BookSummary, error) {
	return s.bookRepo.Search(query)
}

// GetByID returns a book's full detail, including content.
func (s *CatalogService) GetByID(id string) (*models.Book, error) {
	book, err := s.bookRepo.GetByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: book %s", ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get book: %w", err)
	}
	return book, nil
}

// GetContent returns the reading view of a book.
func (s *CatalogService) GetContent(id string) (*models.BookContent, error) {
	book, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	return &models.BookContent{
		Title:   book.Title,
		Author:  book.Author,
		Content: book.Content,
	}, nil
}

// DeleteBook hard-deletes a catalog entry. Purchases and reviews that
// reference the book are deliberately left in place: the historical ledger
// outlives the catalog. A broadcast notification announces the removal.
func (s *CatalogService) DeleteBook(actorID *string, id string) error {
	book, err := s.bookRepo.GetByID(id)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to look up book: %w", err)
	}

	if err := s.bookRepo.Delete(id); err != nil {
		return fmt.Errorf("failed to delete book: %w", err)
	}

	if s.notifications != nil && book != nil {
		msg := fmt.Sprintf("'%s' has been removed from the catalog.", book.Title)
		s.notifications.NotifyBestEffort(actorID, msg, true, nil)
	}
	return nil
}
