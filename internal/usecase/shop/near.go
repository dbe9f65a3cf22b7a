package shop

import (
	"context"
	"sort"

	"github.com/HarryCarrig/Trimmute/internal/cache"
	"github.com/HarryCarrig/Trimmute/internal/geo"
	"github.com/HarryCarrig/Trimmute/internal/models"
)

type ShopWithDistance struct {
	models.Shop
	DistanceKm float64 `json:"distanceKm"`
}

// NearShops computes the distance from a query point to every shop with known
// coordinates and returns them sorted ascending. Shops without coordinates
// never appear in the result.
type NearShops struct {
	list *ListShops
}

func NewNearShops(dir Directory, c *cache.ShopCache) *NearShops {
	return &NearShops{list: NewListShops(dir, c)}
}

func (uc *NearShops) Execute(
	ctx context.Context,
	lat, lng float64,
) ([]ShopWithDistance, error) {

	shops, err := uc.list.Execute(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]ShopWithDistance, 0, len(shops))
	for _, s := range shops {
		if !s.HasCoordinates() {
			continue
		}

		result = append(result, ShopWithDistance{
			Shop:       s,
			DistanceKm: geo.DistanceKm(lat, lng, *s.Lat, *s.Lng),
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].DistanceKm < result[j].DistanceKm
	})

	return result, nil
}
