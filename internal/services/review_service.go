package services

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"bookstore/internal/models"
	"bookstore/internal/repositories"
)

// ReviewService handles book reviews. A user may review the same book more
// than once.
type ReviewService struct {
	reviewRepo repositories.ReviewRepository
	bookRepo   repositories.BookRepository
}

// NewReviewService creates a new ReviewService.
func NewReviewService(reviewRepo repositories.ReviewRepository, bookRepo repositories.BookRepository) *ReviewService {
	return &ReviewService{
		reviewRepo: reviewRepo,
		bookRepo:   bookRepo,
	}
}

// AddReview records a review. The book must exist and the text must be
// non-empty; a rating, when supplied, must be within 1-5.
func (s *ReviewService) AddReview(userID, bookID, text string, rating *int) error {
	if strings.TrimSpace(text) == "" {
		return fmt.Errorf("%w: review text is required", ErrValidation)
	}
	if rating != nil && (*rating < 1 || *rating > 5) {
		return fmt.Errorf("%w: rating must be between 1 and 5", ErrValidation)
	}

	if _, err := s.bookRepo.GetByID(bookID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: book %s", ErrNotFound, bookID)
		}
		return fmt.Errorf("failed to look up book: %w", err)
	}

	review := &models.Review{
		UserID:     userID,
		BookID:     bookID,
		Rating:     rating,
		ReviewText: text,
	}
	if err := s.reviewRepo.Create(review); err != nil {
		return fmt.Errorf("failed to add review: %w", err)
	}
	return nil
}

// ForBook returns a book's reviews with reviewer usernames, newest first.
func (s *ReviewService) ForBook(bookID string) ([]models.ReviewWithAuthor, error) {
	return s.reviewRepo.ForBook(bookID)
}
