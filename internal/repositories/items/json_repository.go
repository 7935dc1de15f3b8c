package items

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/dmitrijs2005/drawerfinder/internal/common"
	"github.com/dmitrijs2005/drawerfinder/internal/filex"
	"github.com/dmitrijs2005/drawerfinder/internal/models"
)

// JSONRepository keeps the inventory as one JSON array. Every write rewrites
// the whole file.
type JSONRepository struct {
	path string
	now  Clock
	mu   sync.Mutex
}

func NewJSONRepository(path string) *JSONRepository {
	return &JSONRepository{path: path, now: time.Now}
}

// WithClock replaces the time source used by Append.
func (r *JSONRepository) WithClock(now Clock) *JSONRepository {
	r.now = now
	return r
}

func (r *JSONRepository) Load(ctx context.Context) ([]models.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.load()
}

func (r *JSONRepository) load() ([]models.Item, error) {
	var list []models.Item
	if _, err := filex.ReadJSON(r.path, &list); err != nil {
		return nil, fmt.Errorf("failed to load items: %w", err)
	}
	if list == nil {
		list = []models.Item{}
	}
	return list, nil
}

func (r *JSONRepository) Append(ctx context.Context, item models.Item) (models.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	list, err := r.load()
	if err != nil {
		return models.Item{}, err
	}

	item = stamp(item, r.now)
	list = append(list, item)

	if err := filex.WriteJSON(r.path, list); err != nil {
		return models.Item{}, fmt.Errorf("failed to save items: %w", err)
	}
	return item, nil
}

func (r *JSONRepository) DeleteAt(ctx context.Context, index int) (models.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	list, err := r.load()
	if err != nil {
		return models.Item{}, err
	}

	if index < 0 || index >= len(list) {
		return models.Item{}, common.ErrIndexOutOfRange
	}

	removed := list[index]
	list = append(list[:index], list[index+1:]...)

	if err := filex.WriteJSON(r.path, list); err != nil {
		return models.Item{}, fmt.Errorf("failed to save items: %w", err)
	}
	return removed, nil
}
