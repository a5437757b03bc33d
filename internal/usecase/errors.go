package usecase

import "errors"

var (
	// Validation errors carry the exact client-facing message.
	ErrQueryRequired          = errors.New("Search query is required")
	ErrJobDescriptionRequired = errors.New("Job description is required")
	ErrKeywordsRequired       = errors.New("Keywords are required for manual search")
	ErrInvalidSearchType      = errors.New("Invalid search type")

	ErrEmailAlreadyRegistered = errors.New("email already registered")
	ErrInvalidCredentials     = errors.New("invalid credentials")
	ErrInvalidInput           = errors.New("invalid input")
	ErrUnauthorized           = errors.New("unauthorized")
	ErrInternal               = errors.New("internal error")
)
