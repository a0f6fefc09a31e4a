package repository

import "errors"

// Sentinel kinds for storage errors.
var (
	ErrAccountNotFound = errors.New("account not found")
	ErrCoachNotFound   = errors.New("coach not found")
	ErrPlayerNotFound  = errors.New("player not found")
	ErrEmailTaken      = errors.New("email already registered")
)
