package shop

import (
	"context"

	"github.com/HarryCarrig/Trimmute/internal/cache"
	"github.com/HarryCarrig/Trimmute/internal/models"
)

// Directory is the read side of the shop store.
type Directory interface {
	ListShops(ctx context.Context) ([]models.Shop, error)
}

type ListShops struct {
	dir   Directory
	cache *cache.ShopCache
}

func NewListShops(dir Directory, c *cache.ShopCache) *ListShops {
	return &ListShops{dir: dir, cache: c}
}

func (uc *ListShops) Execute(ctx context.Context) ([]models.Shop, error) {
	if shops, ok := uc.cache.Get(ctx); ok {
		return shops, nil
	}

	shops, err := uc.dir.ListShops(ctx)
	if err != nil {
		return nil, err
	}

	if shops == nil {
		shops = []models.Shop{}
	}

	uc.cache.Set(ctx, shops)
	return shops, nil
}
