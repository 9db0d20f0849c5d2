package services

import (
	"fmt"
	"strings"

	"bookstore/internal/models"
	"bookstore/internal/repositories"
)

// DiscountService handles per-category discount percentages.
type DiscountService struct {
	discountRepo  repositories.DiscountRepository
	notifications *NotificationService
}

// NewDiscountService creates a new DiscountService.
func NewDiscountService(discountRepo repositories.DiscountRepository, notifications *NotificationService) *DiscountService {
	return &DiscountService{
		discountRepo:  discountRepo,
		notifications: notifications,
	}
}

// Set upserts a category's discount. Percentages outside [0,100] are
// rejected and leave any existing discount unchanged. Shoppers get a
// broadcast notification, best-effort.
func (s *DiscountService) Set(actorID *string, category string, pct float64) error {
	category = strings.TrimSpace(category)
	if category == "" {
		return fmt.Errorf("%w: category is required", ErrValidation)
	}
	if pct < 0 || pct > 100 {
		return fmt.Errorf("%w: discount must be between 0 and 100", ErrValidation)
	}

	if err := s.discountRepo.Upsert(category, pct); err != nil {
		return fmt.Errorf("failed to set discount: %w", err)
	}

	if s.notifications != nil {
		msg := fmt.Sprintf("%.0f%% off all %s books!", pct, category)
		s.notifications.NotifyBestEffort(actorID, msg, true, nil)
	}
	return nil
}

// Get returns the discount percentage for a category. A category with no
// discount row yields 0; absence means zero, not an error.
func (s *DiscountService) Get(category string) (float64, error) {
	return s.discountRepo.Get(category)
}

// Remove deletes a category's discount. Removing one that does not exist
// is a no-op.
func (s *DiscountService) Remove(actorID *string, category string) error {
	if err := s.discountRepo.Delete(category); err != nil {
		return fmt.Errorf("failed to remove discount: %w", err)
	}
	if s.notifications != nil {
		msg := fmt.Sprintf("The discount on %s books has ended.", category)
		s.notifications.NotifyBestEffort(actorID, msg, true, nil)
	}
	return nil
}

// List returns all discount rows ordered by category.
func (s *DiscountService) List() ([]models.CategoryDiscount, error) {
	return s.discountRepo.List()
}

// EffectivePrice applies a percentage discount to a price.
func (s *DiscountService) EffectivePrice(price, pct float64) float64 {
	return models.EffectivePrice(price, pct)
}
