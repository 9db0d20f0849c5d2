package models

import "time"

// CategoryDiscount is a percentage reduction applied to every book in a
// category. One row per category; absence means no discount.
type CategoryDiscount struct {
	ID                 string    `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Category           string    `json:"category" gorm:"uniqueIndex;type:varchar(100);not null" validate:"required"`
	DiscountPercentage float64   `json:"discount_percentage" gorm:"not null" validate:"gte=0,lte=100"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// EffectivePrice applies a percentage discount to a price. Rounding is a
// presentation concern; the result is never stored rounded.
func EffectivePrice(price, pct float64) float64 {
	return price * (1 - pct/100)
}
