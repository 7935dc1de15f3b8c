// Package items persists the ordered list of drawer placements.
package items

import (
	"context"
	"time"

	"github.com/dmitrijs2005/drawerfinder/internal/common"
	"github.com/dmitrijs2005/drawerfinder/internal/models"
)

// Repository is the inventory store. Items have no stable identity: they
// are addressed by their position in insertion order, and a delete shifts
// every later item down by one.
//
// Append stamps the item with the current time before storing it.
// DeleteAt returns the removed item, or common.ErrIndexOutOfRange without
// touching the store.
type Repository interface {
	Load(ctx context.Context) ([]models.Item, error)
	Append(ctx context.Context, item models.Item) (models.Item, error)
	DeleteAt(ctx context.Context, index int) (models.Item, error)
}

// Clock returns the current time. Repositories take one so tests can pin it.
type Clock func() time.Time

func stamp(item models.Item, now Clock) models.Item {
	item.Timestamp = now().Format(common.TimestampLayout)
	return item
}
