package services

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"bookstore/internal/models"
	"bookstore/internal/repositories"
)

// PurchaseService handles the purchase ledger: recording purchases with
// prices frozen at purchase time, and reading a user's history.
type PurchaseService struct {
	purchaseRepo repositories.PurchaseRepository
	bookRepo     repositories.BookRepository
	discountRepo repositories.DiscountRepository
}

// NewPurchaseService creates a new PurchaseService.
func NewPurchaseService(purchaseRepo repositories.PurchaseRepository, bookRepo repositories.BookRepository, discountRepo repositories.DiscountRepository) *PurchaseService {
	return &PurchaseService{
		purchaseRepo: purchaseRepo,
		bookRepo:     bookRepo,
		discountRepo: discountRepo,
	}
}

// Purchase records a purchase and returns the receipt. The book's price and
// the category discount current at this moment are frozen into the ledger
// row; later price or discount changes never touch it. A user cannot buy
// the same book twice: duplicate-check and insert are serialized in the
// store, so two racing attempts cannot both succeed.
func (s *PurchaseService) Purchase(userID, bookID string) (*models.PurchaseReceipt, error) {
	book, err := s.bookRepo.GetByID(bookID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: book %s", ErrNotFound, bookID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up book: %w", err)
	}

	pct, err := s.discountRepo.Get(book.Category)
	if err != nil {
		return nil, fmt.Errorf("failed to look up discount: %w", err)
	}

	discountApplied := book.Price * (pct / 100)
	finalPrice := book.Price - discountApplied

	purchase := &models.Purchase{
		UserID:          userID,
		BookID:          bookID,
		PurchasePrice:   book.Price,
		DiscountApplied: discountApplied,
		FinalPrice:      finalPrice,
		PurchaseDate:    time.Now(),
	}
	err = s.purchaseRepo.CreateUnique(purchase)
	if errors.Is(err, repositories.ErrDuplicatePurchase) {
		return nil, fmt.Errorf("%w: book %s", ErrAlreadyPurchased, bookID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to record purchase: %w", err)
	}

	return &models.PurchaseReceipt{
		PurchaseID:      purchase.ID,
		BookID:          bookID,
		Title:           book.Title,
		PurchasePrice:   purchase.PurchasePrice,
		DiscountApplied: purchase.DiscountApplied,
		FinalPrice:      purchase.FinalPrice,
	}, nil
}

// History returns a user's purchases joined with book fields, newest first.
func (s *PurchaseService) History(userID string) ([]models.PurchaseRecord, error) {
	return s.purchaseRepo.HistoryByUser(userID)
}
