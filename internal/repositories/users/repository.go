// Package users persists login accounts.
package users

import (
	"context"

	"github.com/dmitrijs2005/drawerfinder/internal/models"
)

// Repository is the credential store.
//
// Load initializes an absent store with the seed administrator the
// repository was built with. Create fails with common.ErrDuplicateUser when
// the username is taken and leaves the store unchanged. There is no update
// or delete.
type Repository interface {
	Load(ctx context.Context) (map[string]models.User, error)
	Create(ctx context.Context, user models.User) error
}
