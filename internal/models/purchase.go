package models

import "time"

// Purchase is one immutable ledger row. The three price fields are frozen
// at purchase time; later price or discount changes never touch them.
type Purchase struct {
	ID              string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	UserID          string    `json:"user_id" gorm:"type:varchar(36);not null;uniqueIndex:idx_purchase_user_book"`
	BookID          string    `json:"book_id" gorm:"type:varchar(36);not null;uniqueIndex:idx_purchase_user_book"`
	PurchasePrice   float64   `json:"purchase_price" gorm:"not null"`
	DiscountApplied float64   `json:"discount_applied" gorm:"not null;default:0"`
	FinalPrice      float64   `json:"final_price" gorm:"not null"`
	PurchaseDate    time.Time `json:"purchase_date"`
}

// PurchaseRecord is a ledger row joined with the purchased book's
// descriptive fields, for purchase-history views.
type PurchaseRecord struct {
	ID              string    `json:"id"`
	BookID          string    `json:"book_id"`
	Title           string    `json:"title"`
	Author          string    `json:"author"`
	Category        string    `json:"category"`
	PurchasePrice   float64   `json:"purchase_price"`
	DiscountApplied float64   `json:"discount_applied"`
	FinalPrice      float64   `json:"final_price"`
	PurchaseDate    time.Time `json:"purchase_date"`
}

// PurchaseReceipt is the frozen price snapshot returned to the buyer.
type PurchaseReceipt struct {
	PurchaseID      string  `json:"purchase_id"`
	BookID          string  `json:"book_id"`
	Title           string  `json:"title"`
	PurchasePrice   float64 `json:"purchase_price"`
	DiscountApplied float64 `json:"discount_applied"`
	FinalPrice      float64 `json:"final_price"`
}
