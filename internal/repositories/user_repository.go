package repositories

import "bookstore/internal/models"

// UserRepository defines the interface for user data access.
type UserRepository interface {
	Create(user *models.User) error
	GetByUsername(username string) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	GetByID(id string) (*models.User, error)
	// SetBanned flips the ban flag on a regular user. Rows with the admin
	// role are never touched; targeting one reports not-found.
	SetBanned(id string, banned bool) error
	// ListRegular returns all non-admin users ordered by username.
	ListRegular() ([]models.UserSummary, error)
}
