package models

import "time"

// Review is a user's review of a book. A user may review the same book
// more than once; there is no uniqueness constraint on (user, book).
type Review struct {
	ID         string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	UserID     string    `json:"user_id" gorm:"type:varchar(36);not null;index"`
	BookID     string    `json:"book_id" gorm:"type:varchar(36);not null;index"`
	Rating     *int      `json:"rating,omitempty"`
	ReviewText string    `json:"review_text" gorm:"type:text;not null" validate:"required"`
	CreatedAt  time.Time `json:"created_at"`
}

// ReviewWithAuthor is a review joined with the reviewer's username.
type ReviewWithAuthor struct {
	ID         string    `json:"id"`
	UserID     string    `json:"user_id"`
	Username   string    `json:"username"`
	Rating     *int      `json:"rating,omitempty"`
	ReviewText string    `json:"review_text"`
	CreatedAt  time.Time `json:"created_at"`
}
