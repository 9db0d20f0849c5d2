package repositories

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"bookstore/internal/models"
)

// MockBookRepository is an in-memory implementation of BookRepository.
type MockBookRepository struct {
	books map[string]models.Book
	mu    sync.RWMutex
}

// NewMockBookRepository creates a new instance of MockBookRepository.
func NewMockBookRepository() *MockBookRepository {
	return &MockBookRepository{
		books: make(map[string]models.Book),
	}
}

// Create adds a new book.
func (r *MockBookRepository) Create(book *models.Book) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if book.ID == "" {
		book.ID = uuid.New().String()
	}
	r.books[book.ID] = *book
	return nil
}

// GetAll returns all books ordered by category then title.
func (r *MockBookRepository) GetAll() ([]models.Book, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	bookList := make([]models.Book, 0, len(r.books))
	for _, b := range r.books {
		bookList = append(bookList, b)
	}
	sortBooks(bookList)
	return bookList, nil
}

// GroupedByCategory returns the catalog shelved by category.
func (r *MockBookRepository) GroupedByCategory() ([]models.CategoryBooks, error) {
	books, _ := r.GetAll()

	var groups []models.CategoryBooks
	for _, b := range books {
		if len(groups) == 0 || groups[len(groups)-1].Category != b.Category {
			groups = append(groups, models.CategoryBooks{Category: b.Category})
		}
		last := &groups[len(groups)-1]
		last.Books = append(last.Books, summaryOf(b))
	}
	return groups, nil
}

// Search matches books by title, author, or category substring.
func (r *MockBookRepository) Search(query string) ([]models.BookSummary, error) {
	books, _ := r.GetAll()
	q := strings.ToLower(query)

	var matches []models.BookSummary
	for _, b := range books {
		if strings.Contains(strings.ToLower(b.Title), q) ||
			strings.Contains(strings.ToLower(b.Author), q) ||
			strings.Contains(strings.ToLower(b.Category), q) {
			matches = append(matches, summaryOf(b))
		}
	}
	return matches, nil
}

// GetByID returns a book by its ID.
func (r *MockBookRepository) GetByID(id string) (*models.Book, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	book, ok := r.books[id]
	if !ok {
		return nil, fmt.Errorf("book with ID %s: %w", id, gorm.ErrRecordNotFound)
	}
	return &book, nil
}

// Delete removes a book. Missing ids are ignored.
func (r *MockBookRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.books, id)
	return nil
}

func sortBooks(books []models.Book) {
	sort.Slice(books, func(i, j int) bool {
		if books[i].Category != books[j].Category {
			return books[i].Category < books[j].Category
		}
		return books[i].Title < books[j].Title
	})
}

func summaryOf(b models.Book) models.BookSummary {
	return models.BookSummary{
		ID:          b.ID,
		Title:       b.Title,
		Author:      b.Author,
		Category:    b.Category,
		Price:       b.Price,
		Description: b.Description,
	}
}
