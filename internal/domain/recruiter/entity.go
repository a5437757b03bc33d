package recruiter

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("recruiter not found")

// Recruiter is an account that may run candidate searches.
type Recruiter struct {
	ID           uuid.UUID
	Email        string
	FullName     string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type Repository interface {
	Create(ctx context.Context, r Recruiter) error
	GetByID(ctx context.Context, id uuid.UUID) (Recruiter, error)
	GetByEmail(ctx context.Context, email string) (Recruiter, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}
