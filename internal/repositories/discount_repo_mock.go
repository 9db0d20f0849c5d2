package repositories

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"bookstore/internal/models"
)

// MockDiscountRepository is an in-memory implementation of DiscountRepository.
type MockDiscountRepository struct {
	discounts map[string]models.CategoryDiscount
	mu        sync.RWMutex
}

// NewMockDiscountRepository creates a new instance of MockDiscountRepository.
func NewMockDiscountRepository() *MockDiscountRepository {
	return &MockDiscountRepository{
		discounts: make(map[string]models.CategoryDiscount),
	}
}

// Upsert inserts or updates the discount row for a category.
func (r *MockDiscountRepository) Upsert(category string, pct float64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	d, ok := r.discounts[category]
	if !ok {
		d = models.CategoryDiscount{
			ID:        uuid.New().String(),
			Category:  category,
			CreatedAt: time.Now(),
		}
	}
	d.DiscountPercentage = pct
	d.UpdatedAt = time.Now()
	r.discounts[category] = d
	return nil
}

// Get returns the discount percentage for a category, 0 when none is set.
func (r *MockDiscountRepository) Get(category string) (float64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	d, ok := r.discounts[category]
	if !ok {
		return 0, nil
	}
	return d.DiscountPercentage, nil
}

// Delete removes the discount for a category. Idempotent.
func (r *MockDiscountRepository) Delete(category string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.discounts, category)
	return nil
}

// List returns all discount rows ordered by category.
func (r *MockDiscountRepository) List() ([]models.CategoryDiscount, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	list := make([]models.CategoryDiscount, 0, len(r.discounts))
	for _, d := range r.discounts {
		list = append(list, d)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Category < list[j].Category })
	return list, nil
}
