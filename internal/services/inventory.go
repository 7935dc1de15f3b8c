package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/drawerfinder/internal/common"
	"github.com/dmitrijs2005/drawerfinder/internal/logging"
	"github.com/dmitrijs2005/drawerfinder/internal/models"
	"github.com/dmitrijs2005/drawerfinder/internal/repositories/items"
	"github.com/dmitrijs2005/drawerfinder/internal/search"
	"github.com/dmitrijs2005/drawerfinder/internal/session"
)

// InventoryService exposes the inventory to logged-in sessions.
// Every method returns common.ErrUnauthorized for a nil or empty session.
type InventoryService interface {
	Add(ctx context.Context, s *session.Session, name string, drawer int, notes string) (models.Item, error)
	List(ctx context.Context, s *session.Session) ([]models.Item, error)
	Search(ctx context.Context, s *session.Session, term string) ([]search.Match, error)
	Delete(ctx context.Context, s *session.Session, index int) (models.Item, error)
}

type inventoryService struct {
	repo items.Repository
	log  logging.Logger
}

func NewInventoryService(repo items.Repository, log logging.Logger) InventoryService {
	return &inventoryService{repo: repo, log: log}
}

// Add stores a new item created by the session's user. The drawer number is
// stored as given; range checks belong to the caller.
func (i *inventoryService) Add(ctx context.Context, s *session.Session, name string, drawer int, notes string) (models.Item, error) {
	if !s.LoggedIn() {
		return models.Item{}, common.ErrUnauthorized
	}
	if name == "" {
		return models.Item{}, fmt.Errorf("%w: item name", common.ErrMissingRequiredField)
	}

	item, err := i.repo.Append(ctx, models.Item{
		Name:    name,
		Drawer:  drawer,
		Notes:   notes,
		AddedBy: s.UserName,
	})
	if err != nil {
		return models.Item{}, err
	}

	i.log.Info(ctx, "item added", "item", name, "drawer", drawer, "user", s.UserName)
	return item, nil
}

func (i *inventoryService) List(ctx context.Context, s *session.Session) ([]models.Item, error) {
	if !s.LoggedIn() {
		return nil, common.ErrUnauthorized
	}
	return i.repo.Load(ctx)
}

func (i *inventoryService) Search(ctx context.Context, s *session.Session, term string) ([]search.Match, error) {
	if !s.LoggedIn() {
		return nil, common.ErrUnauthorized
	}

	all, err := i.repo.Load(ctx)
	if err != nil {
		return nil, err
	}

	found := search.Find(all, term)
	i.log.Debug(ctx, "search", "term", term, "matches", len(found))
	return found, nil
}

func (i *inventoryService) Delete(ctx context.Context, s *session.Session, index int) (models.Item, error) {
	if !s.LoggedIn() {
		return models.Item{}, common.ErrUnauthorized
	}

	removed, err := i.repo.DeleteAt(ctx, index)
	if err != nil {
		return models.Item{}, err
	}

	i.log.Info(ctx, "item deleted", "index", index, "item", removed.Name, "user", s.UserName)
	return removed, nil
}
