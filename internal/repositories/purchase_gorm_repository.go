package repositories

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"bookstore/internal/models"
)

// GORMPurchaseRepository is a GORM implementation of PurchaseRepository.
type GORMPurchaseRepository struct {
	db *gorm.DB
}

// NewGORMPurchaseRepository creates a new instance of GORMPurchaseRepository.
func NewGORMPurchaseRepository(db *gorm.DB) *GORMPurchaseRepository {
	return &GORMPurchaseRepository{
		db: db,
	}
}

// CreateUnique inserts a ledger row after verifying no row exists for the
// same (user, book) pair. Both steps run in one transaction; the composite
// unique index rejects a racing insert that slips past the check.
func (r *GORMPurchaseRepository) CreateUnique(purchase *models.Purchase) error {
	if purchase.ID == "" {
		purchase.ID = uuid.New().String()
	}
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		err := tx.Model(&models.Purchase{}).
			Where("user_id = ? AND book_id = ?", purchase.UserID, purchase.BookID).
			Count(&count).Error
		if err != nil {
			return err
		}
		if count > 0 {
			return ErrDuplicatePurchase
		}
		return tx.Create(purchase).Error
	})
	if errors.Is(err, ErrDuplicatePurchase) {
		return ErrDuplicatePurchase
	}
	// A racing insert can slip past the count and land on the composite
	// unique index instead; that is still a duplicate, not a store failure.
	if isUniqueViolation(err) {
		return ErrDuplicatePurchase
	}
	if err != nil {
		return fmt.Errorf("failed to record purchase: %w", err)
	}
	return nil
}

// isUniqueViolation reports whether err is a unique-constraint rejection
// from SQLite or Postgres.
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "duplicate key value violates unique constraint") ||
		strings.Contains(msg, "SQLSTATE 23505")
}

// HistoryByUser returns the user's ledger joined with book title, author,
// and category, ordered by purchase date descending.
func (r *GORMPurchaseRepository) HistoryByUser(userID string) ([]models.PurchaseRecord, error) {
	var records []models.PurchaseRecord
	err := r.db.Table("purchases").
		Select(`purchases.id, purchases.book_id, books.title, books.author, books.category,
			purchases.purchase_price, purchases.discount_applied, purchases.final_price,
			purchases.purchase_date`).
		Joins("JOIN books ON books.id = purchases.book_id").
		Where("purchases.user_id = ?", userID).
		Order("purchases.purchase_date DESC").
		Scan(&records).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get purchases for user %s: %w", userID, err)
	}
	return records, nil
}
