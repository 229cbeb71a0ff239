package inventory

import (
	"dukkan-backend/internal/currency"
	"dukkan-backend/internal/session"
	"dukkan-backend/internal/stats"

	"github.com/gofiber/fiber/v2"
)

type StatsResponse struct {
	TotalStockValue   string `json:"total_stock_value"`
	TotalProductCount int    `json:"total_product_count"`
	TotalUnitsInStock int    `json:"total_units_in_stock"`
	TodaySold         int    `json:"today_sold"`
	TodayValue        string `json:"today_value"`
	Last10Sold        int    `json:"last10_sold"`
	Last10Value       string `json:"last10_value"`
	MostValuable      string `json:"most_valuable"`
}

func toStatsResponse(s stats.Summary) StatsResponse {
	return StatsResponse{
		TotalStockValue:   currency.Format(s.TotalStockValue),
		TotalProductCount: s.TotalProductCount,
		TotalUnitsInStock: s.TotalUnitsInStock,
		TodaySold:         s.TodaySold,
		TodayValue:        currency.Format(s.TodayValue),
		Last10Sold:        s.Last10Sold,
		Last10Value:       currency.Format(s.Last10Value),
		MostValuable:      s.MostValuable,
	}
}

// GET /api/stats — her çağrıda katalog + defterden yeniden türetilir
func StatsHandler(s *session.Session) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(toStatsResponse(s.Stats()))
	}
}
