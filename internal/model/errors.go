package model

import "errors"

// Common errors used across the application
var (
	// Account errors
	ErrAccountNotFound    = errors.New("account not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTeamFull           = errors.New("team is full")

	// Session errors
	ErrNotAuthenticated = errors.New("not authenticated")
	ErrForbidden        = errors.New("forbidden")

	// Spin errors
	ErrAlreadySpunToday = errors.New("already spun today")

	// Redemption errors
	ErrAlreadyRedeemed = errors.New("qr code already redeemed")

	// Team errors
	ErrTeamNotFound = errors.New("team not found")

	// Validation errors
	ErrValidation = errors.New("validation failed")

	// Storage capability errors
	ErrActionLogUnavailable = errors.New("action log not available on this backend")
)
