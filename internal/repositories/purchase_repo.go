package repositories

import (
	"errors"

	"bookstore/internal/models"
)

// ErrDuplicatePurchase reports that a ledger row for the (user, book) pair
// already exists. A user cannot buy the same book twice.
var ErrDuplicatePurchase = errors.New("purchase already exists for this user and book")

// PurchaseRepository defines the interface for the purchase ledger.
type PurchaseRepository interface {
	// CreateUnique inserts a ledger row, failing with ErrDuplicatePurchase
	// when a row for the same (user, book) pair exists. The existence
	// check and insert run as one transaction, backed by the composite
	// unique index on (user_id, book_id).
	CreateUnique(purchase *models.Purchase) error
	// HistoryByUser returns a user's purchases joined with book fields,
	// newest first.
	HistoryByUser(userID string) ([]models.PurchaseRecord, error)
}
