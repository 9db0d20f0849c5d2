package repositories

import (
	"sort"
	"sync"

	"github.com/google/uuid"

	"bookstore/internal/models"
)

// MockPurchaseRepository is an in-memory implementation of PurchaseRepository.
// History joins against a MockBookRepository when one is provided.
type MockPurchaseRepository struct {
	purchases map[string]models.Purchase
	books     *MockBookRepository
	mu        sync.RWMutex
}

// NewMockPurchaseRepository creates a new instance of MockPurchaseRepository.
func NewMockPurchaseRepository(books *MockBookRepository) *MockPurchaseRepository {
	return &MockPurchaseRepository{
		purchases: make(map[string]models.Purchase),
		books:     books,
	}
}

// CreateUnique inserts a ledger row, rejecting duplicates per (user, book).
func (r *MockPurchaseRepository) CreateUnique(purchase *models.Purchase) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, p := range r.purchases {
		if p.UserID == purchase.UserID && p.BookID == purchase.BookID {
			return ErrDuplicatePurchase
		}
	}
	if purchase.ID == "" {
		purchase.ID = uuid.New().String()
	}
	r.purchases[purchase.ID] = *purchase
	return nil
}

// HistoryByUser returns the user's purchases newest first. Rows whose book
// no longer exists in the mock catalog are dropped, matching the join.
func (r *MockPurchaseRepository) HistoryByUser(userID string) ([]models.PurchaseRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var records []models.PurchaseRecord
	for _, p := range r.purchases {
		if p.UserID != userID {
			continue
		}
		rec := models.PurchaseRecord{
			ID:              p.ID,
			BookID:          p.BookID,
			PurchasePrice:   p.PurchasePrice,
			DiscountApplied: p.DiscountApplied,
			FinalPrice:      p.FinalPrice,
			PurchaseDate:    p.PurchaseDate,
		}
		if r.books != nil {
			book, err := r.books.GetByID(p.BookID)
			if err != nil {
				continue
			}
			rec.Title = book.Title
			rec.Author = book.Author
			rec.Category = book.Category
		}
		records = append(records, rec)
	}
	sort.Slice(records, func(i, j int) bool {
		return records[i].PurchaseDate.After(records[j].PurchaseDate)
	})
	return records, nil
}

// Count returns the number of ledger rows for a (user, book) pair.
func (r *MockPurchaseRepository) Count(userID, bookID string) int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	count := 0
	for _, p := range r.purchases {
		if p.UserID == userID && p.BookID == bookID {
			count++
		}
	}
	return count
}
