package storage

import (
	"context"

	"github.com/iudanet/authdemo/internal/models"
)

// UserStore defines the read-only interface for account lookup.
// The directory is fixed for the process lifetime, so there are no
// create/update/delete operations.
type UserStore interface {
	// GetUserByUsername retrieves account by username
	// Returns ErrUserNotFound if account doesn't exist
	GetUserByUsername(ctx context.Context, username string) (*models.Account, error)
}
