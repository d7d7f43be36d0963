package catalog

import (
	"context"
	"strings"
	"sync"

	"github.com/maxandsherry/storefront/internal/domain"
)

type Store interface {
	ListAvailable(ctx context.Context) ([]domain.MenuItem, error)
	GetByID(ctx context.Context, id int64) (*domain.MenuItem, error)
	ListByCategory(ctx context.Context, category string) ([]domain.MenuItem, error)
}

// MenuRepository holds the menu in memory. It is seeded once and read-only afterwards.
type MenuRepository struct {
	mu    sync.RWMutex
	items []domain.MenuItem
}

func NewMenuRepository(items []domain.MenuItem) *MenuRepository {
	seeded := make([]domain.MenuItem, len(items))
	copy(seeded, items)
	return &MenuRepository{items: seeded}
}

func (r *MenuRepository) ListAvailable(_ context.Context) ([]domain.MenuItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := make([]domain.MenuItem, 0, len(r.items))
	for _, item := range r.items {
		if item.Available {
			items = append(items, item)
		}
	}
	return items, nil
}

func (r *MenuRepository) GetByID(_ context.Context, id int64) (*domain.MenuItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, item := range r.items {
		if item.ID == id {
			found := item
			return &found, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *MenuRepository) ListByCategory(_ context.Context, category string) ([]domain.MenuItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := []domain.MenuItem{}
	for _, item := range r.items {
		if item.Available && strings.EqualFold(item.Category, category) {
			items = append(items, item)
		}
	}
	return items, nil
}
