package services

import "errors"

// Error kinds every service operation classifies its failures into.
// Handlers map these to HTTP statuses with errors.Is; anything not wrapping
// one of them is an underlying store failure.
var (
	// ErrValidation is returned for malformed input: empty required
	// fields, out-of-range percentages or prices, bad lengths.
	ErrValidation = errors.New("validation failed")

	// ErrAlreadyExists is returned when a username or email is taken.
	ErrAlreadyExists = errors.New("already exists")

	// ErrAlreadyPurchased is returned when a user buys a book twice.
	ErrAlreadyPurchased = errors.New("book already purchased")

	// ErrNotFound is returned for unknown ids, users, or categories.
	ErrNotFound = errors.New("not found")

	// ErrInvalidCredentials is returned for a failed login. It never
	// distinguishes a wrong password from an unknown username.
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrBanned is returned when a banned account attempts to log in.
	ErrBanned = errors.New("account is banned")
)
