package repositories

import "bookstore/internal/models"

// DiscountRepository defines the interface for category discount access.
type DiscountRepository interface {
	// Upsert inserts the discount row for a category or updates the
	// existing one. Check-then-write runs inside one transaction.
	Upsert(category string, pct float64) error
	// Get returns the discount percentage for a category; a category with
	// no discount row yields 0, not an error.
	Get(category string) (float64, error)
	// Delete removes a category's discount. Deleting an absent row is a
	// no-op, not an error.
	Delete(category string) error
	// List returns all discount rows ordered by category.
	List() ([]models.CategoryDiscount, error)
}
