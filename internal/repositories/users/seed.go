package users

import (
	"github.com/dmitrijs2005/drawerfinder/internal/common"
	"github.com/dmitrijs2005/drawerfinder/internal/cryptox"
	"github.com/dmitrijs2005/drawerfinder/internal/models"
)

// SeedAdmin builds the bootstrap administrator record with the default
// password hashed by h.
func SeedAdmin(h cryptox.Hasher) (models.User, error) {
	hash, err := h.Hash([]byte(common.DefaultAdminPassword))
	if err != nil {
		return models.User{}, err
	}
	return models.User{
		UserName:     common.AdminUserName,
		DisplayName:  common.AdminDisplayName,
		PasswordHash: hash,
		Role:         models.RoleAdmin,
	}, nil
}
