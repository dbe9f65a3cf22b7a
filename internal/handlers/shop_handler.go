package handlers

import (
	"math"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/HarryCarrig/Trimmute/internal/httperr"
	"github.com/HarryCarrig/Trimmute/internal/httpresp"
	ucShop "github.com/HarryCarrig/Trimmute/internal/usecase/shop"
)

type ShopHandler struct {
	listUC *ucShop.ListShops
	nearUC *ucShop.NearShops
}

func NewShopHandler(listUC *ucShop.ListShops, nearUC *ucShop.NearShops) *ShopHandler {
	return &ShopHandler{
		listUC: listUC,
		nearUC: nearUC,
	}
}

// List handles GET /barbers: every shop, ascending id.
func (h *ShopHandler) List(c *gin.Context) {
	shops, err := h.listUC.Execute(c.Request.Context())
	if err != nil {
		logrus.WithError(err).Error("list shops failed")
		httperr.Internal(c, "failed_to_list_shops", "Failed to list shops.")
		return
	}

	httpresp.OK(c, shops)
}

// Near handles GET /barbers/near?lat=&lng=: shops with coordinates, sorted
// ascending by distance from the query point.
func (h *ShopHandler) Near(c *gin.Context) {
	latStr := c.Query("lat")
	lngStr := c.Query("lng")

	if latStr == "" || lngStr == "" {
		httperr.BadRequest(c, "missing_params", "Query parameters 'lat' and 'lng' are required")
		return
	}

	lat, errLat := strconv.ParseFloat(latStr, 64)
	lng, errLng := strconv.ParseFloat(lngStr, 64)

	if errLat != nil || errLng != nil || !isFinite(lat) || !isFinite(lng) {
		httperr.BadRequest(c, "invalid_coordinates", "Invalid 'lat' or 'lng'")
		return
	}

	shops, err := h.nearUC.Execute(c.Request.Context(), lat, lng)
	if err != nil {
		logrus.WithError(err).Error("near search failed")
		httperr.Internal(c, "failed_to_list_shops", "Failed to list shops.")
		return
	}

	httpresp.OK(c, shops)
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
