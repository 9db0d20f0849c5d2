package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"bookstore/internal/models"
	"bookstore/internal/repositories"
)

// AccountService handles admin-side account management: listing regular
// users and flipping their ban state.
type AccountService struct {
	userRepo      repositories.UserRepository
	notifications *NotificationService
}

// NewAccountService creates a new AccountService.
func NewAccountService(userRepo repositories.UserRepository, notifications *NotificationService) *AccountService {
	return &AccountService{
		userRepo:      userRepo,
		notifications: notifications,
	}
}

// Ban suspends a regular user. Admin accounts and unknown ids both report
// not-found; admin state never flips. The banned user gets a targeted
// notification, best-effort.
func (s *AccountService) Ban(userID string) error {
	if err := s.setBanned(userID, true); err != nil {
		return err
	}
	if s.notifications != nil {
		s.notifications.NotifyBestEffort(nil, "Your account has been suspended by an administrator.", false, &userID)
	}
	return nil
}

// Unban lifts a regular user's suspension. Same not-found rules as Ban.
func (s *AccountService) Unban(userID string) error {
	if err := s.setBanned(userID, false); err != nil {
		return err
	}
	if s.notifications != nil {
		s.notifications.NotifyBestEffort(nil, "Your account suspension has been lifted.", false, &userID)
	}
	return nil
}

func (s *AccountService) setBanned(userID string, banned bool) error {
	err := s.userRepo.SetBanned(userID, banned)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%w: no regular user with id %s", ErrNotFound, userID)
	}
	if err != nil {
		return fmt.Errorf("failed to update ban state: %w", err)
	}
	return nil
}

// ListRegularUsers returns all non-admin accounts ordered by username.
func (s *AccountService) ListRegularUsers() ([]models.UserSummary, error) {
	return s.userRepo.ListRegular()
}
