package repositories

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"bookstore/internal/models"
)

// GORMReviewRepository is a GORM implementation of ReviewRepository.
type GORMReviewRepository struct {
	db *gorm.DB
}

// NewGORMReviewRepository creates a new instance of GORMReviewRepository.
func NewGORMReviewRepository(db *gorm.DB) *GORMReviewRepository {
	return &GORMReviewRepository{
		db: db,
	}
}

// Create creates a new review in the database.
func (r *GORMReviewRepository) Create(review *models.Review) error {
	if review.ID == "" {
		review.ID = uuid.New().String()
	}
	if err := r.db.Create(review).Error; err != nil {
		return fmt.Errorf("failed to create review: %w", err)
	}
	return nil
}

// ForBook returns all reviews for a book with the reviewer's username,
// ordered by creation time descending.
func (r *GORMReviewRepository) ForBook(bookID string) ([]models.ReviewWithAuthor, error) {
	var reviews []models.ReviewWithAuthor
	err := r.db.Table("reviews").
		Select("reviews.id, reviews.user_id, users.username, reviews.rating, reviews.review_text, reviews.created_at").
		Joins("JOIN users ON users.id = reviews.user_id").
		Where("reviews.book_id = ?", bookID).
		Order("reviews.created_at DESC").
		Scan(&reviews).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get reviews for book %s: %w", bookID, err)
	}
	return reviews, nil
}
