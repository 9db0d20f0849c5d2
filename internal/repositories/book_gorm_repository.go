package repositories

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"bookstore/internal/models"
)

// GORMBookRepository is a GORM implementation of BookRepository.
type GORMBookRepository struct {
	db *gorm.DB
}

// NewGORMBookRepository creates a new instance of GORMBookRepository.
func NewGORMBookRepository(db *gorm.DB) *GORMBookRepository {
	return &GORMBookRepository{
		db: db,
	}
}

// Create creates a new book in the database.
func (r *GORMBookRepository) Create(book *models.Book) error {
	if book.ID == "" {
		book.ID = uuid.New().String()
	}
	if err := r.db.Create(book).Error; err != nil {
		return fmt.Errorf("failed to create book: %w", err)
	}
	return nil
}

// GetAll retrieves all books ordered by category then title.
func (r *GORMBookRepository) GetAll() ([]models.Book, error) {
	var books []models.Book
	if err := r.db.Order("category ASC, title ASC").Find(&books).Error; err != nil {
		return nil, fmt.Errorf("failed to get all books: %w", err)
	}
	return books, nil
}

// GroupedByCategory returns the catalog shelved by category.
func (r *GORMBookRepository) GroupedByCategory() ([]models.CategoryBooks, error) {
	var summaries []models.BookSummary
	err := r.db.Model(&models.Book{}).
		Select("id, title, author, category, price, description").
		Order("category ASC, title ASC").
		Scan(&summaries).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get books by category: %w", err)
	}

	// Rows arrive category-sorted, so groups form in order.
	var groups []models.CategoryBooks
	for _, s := range summaries {
		if len(groups) == 0 || groups[len(groups)-1].Category != s.Category {
			groups = append(groups, models.CategoryBooks{Category: s.Category})
		}
		last := &groups[len(groups)-1]
		last.Books = append(last.Books, s)
	}
	return groups, nil
}

// Search matches books by title, author, or category substring,
// case-insensitively, ordered by category then title.
func (r *GORMBookRepository) Search(query string) ([]models.BookSummary, error) {
	pattern := "%" + query + "%"
	var books []models.BookSummary
	err := r.db.Model(&models.Book{}).
		Select("id, title, author, category, price, description").
		Where("LOWER(title) LIKE LOWER(?) OR LOWER(author) LIKE LOWER(?) OR LOWER(category) LIKE LOWER(?)",
			pattern, pattern, pattern).
		Order("category ASC, title ASC").
		Scan(&books).Error
	if err != nil {
		return nil, fmt.Errorf("failed to search books: %w", err)
	}
	return books, nil
}

// GetByID retrieves a single book, including content, by its ID.
func (r *GORMBookRepository) GetByID(id string) (*models.Book, error) {
	var book models.Book
	if err := r.db.First(&book, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("book with ID %s: %w", id, gorm.ErrRecordNotFound)
		}
		return nil, fmt.Errorf("failed to get book by ID %s: %w", id, err)
	}
	return &book, nil
}

// Delete hard-deletes a book by its ID. Historical purchase and review rows
// referencing the book stay behind; a missing id is not an error.
func (r *GORMBookRepository) Delete(id string) error {
	if err := r.db.Delete(&models.Book{}, "id = ?", id).Error; err != nil {
		return fmt.Errorf("failed to delete book %s: %w", id, err)
	}
	return nil
}
