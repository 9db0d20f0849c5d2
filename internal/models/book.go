package models

import "time"

// Book represents a catalog item. Category is a free-text label; the
// suggested set lives in the presentation layer, not here.
type Book struct {
	ID          string    `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Title       string    `json:"title" gorm:"not null" validate:"required,max=200"`
	Author      string    `json:"author" gorm:"not null" validate:"required,max=200"`
	Category    string    `json:"category" gorm:"index;not null" validate:"required,max=100"`
	Price       float64   `json:"price" gorm:"not null" validate:"gte=0"`
	Description string    `json:"description" validate:"omitempty,max=2000"`
	Content     string    `json:"content,omitempty" gorm:"type:text"`
	CreatedAt   time.Time `json:"created_at"`
}

// BookSummary is the listing/search view of a book, without content.
type BookSummary struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Author      string  `json:"author"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
}

// CategoryBooks groups a category's books for shelf-style listings.
type CategoryBooks struct {
	Category string        `json:"category"`
	Books    []BookSummary `json:"books"`
}

// BookContent is the reading view of a book.
type BookContent struct {
	Title   string `json:"title"`
	Author  string `json:"author"`
	Content string `json:"content"`
}
