package users

import (
	"context"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/drawerfinder/internal/common"
	"github.com/dmitrijs2005/drawerfinder/internal/filex"
	"github.com/dmitrijs2005/drawerfinder/internal/models"
)

// JSONRepository keeps all accounts in one JSON object keyed by username.
// Every operation reads and rewrites the whole file. The mutex serializes
// callers sharing this instance; other processes can still overwrite each
// other's changes.
type JSONRepository struct {
	path string
	seed models.User
	mu   sync.Mutex
}

func NewJSONRepository(path string, seed models.User) *JSONRepository {
	return &JSONRepository{path: path, seed: seed}
}

func (r *JSONRepository) Load(ctx context.Context) (map[string]models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.load()
}

// load must be called with r.mu held.
func (r *JSONRepository) load() (map[string]models.User, error) {
	users := make(map[string]models.User)

	ok, err := filex.ReadJSON(r.path, &users)
	if err != nil {
		return nil, fmt.Errorf("failed to load users: %w", err)
	}
	if users == nil {
		users = make(map[string]models.User)
	}

	if !ok {
		users = map[string]models.User{r.seed.UserName: r.seed}
		if err := filex.WriteJSON(r.path, users); err != nil {
			return nil, fmt.Errorf("failed to seed users: %w", err)
		}
	}

	for name, u := range users {
		u.UserName = name
		users[name] = u
	}
	return users, nil
}

func (r *JSONRepository) Create(ctx context.Context, user models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	users, err := r.load()
	if err != nil {
		return err
	}

	if _, exists := users[user.UserName]; exists {
		return common.ErrDuplicateUser
	}

	users[user.UserName] = user
	if err := filex.WriteJSON(r.path, users); err != nil {
		return fmt.Errorf("failed to save users: %w", err)
	}
	return nil
}
