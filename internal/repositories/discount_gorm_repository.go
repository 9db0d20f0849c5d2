package repositories

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"bookstore/internal/models"
)

// GORMDiscountRepository is a GORM implementation of DiscountRepository.
type GORMDiscountRepository struct {
	db *gorm.DB
}

// NewGORMDiscountRepository creates a new instance of GORMDiscountRepository.
func NewGORMDiscountRepository(db *gorm.DB) *GORMDiscountRepository {
	return &GORMDiscountRepository{
		db: db,
	}
}

// Upsert inserts or updates the discount row for a category. The
// check-then-write is transactional; the unique index on category backstops
// concurrent inserts.
func (r *GORMDiscountRepository) Upsert(category string, pct float64) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var existing models.CategoryDiscount
		err := tx.First(&existing, "category = ?", category).Error
		switch {
		case err == nil:
			return tx.Model(&existing).
				Updates(map[string]interface{}{
					"discount_percentage": pct,
					"updated_at":          time.Now(),
				}).Error
		case err == gorm.ErrRecordNotFound:
			return tx.Create(&models.CategoryDiscount{
				ID:                 uuid.New().String(),
				Category:           category,
				DiscountPercentage: pct,
			}).Error
		default:
			return err
		}
	})
	if err != nil {
		return fmt.Errorf("failed to upsert discount for category %s: %w", category, err)
	}
	return nil
}

// Get returns the discount percentage for a category, 0 when none is set.
func (r *GORMDiscountRepository) Get(category string) (float64, error) {
	var discount models.CategoryDiscount
	err := r.db.First(&discount, "category = ?", category).Error
	if err == gorm.ErrRecordNotFound {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to get discount for category %s: %w", category, err)
	}
	return discount.DiscountPercentage, nil
}

// Delete removes the discount for a category. Idempotent.
func (r *GORMDiscountRepository) Delete(category string) error {
	if err := r.db.Delete(&models.CategoryDiscount{}, "category = ?", category).Error; err != nil {
		return fmt.Errorf("failed to delete discount for category %s: %w", category, err)
	}
	return nil
}

// List returns all discount rows ordered by category ascending.
func (r *GORMDiscountRepository) List() ([]models.CategoryDiscount, error) {
	var discounts []models.CategoryDiscount
	if err := r.db.Order("category ASC").Find(&discounts).Error; err != nil {
		return nil, fmt.Errorf("failed to list discounts: %w", err)
	}
	return discounts, nil
}
