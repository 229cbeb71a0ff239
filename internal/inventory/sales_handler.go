package inventory

import (
	"time"

	"dukkan-backend/internal/ledger"
	"dukkan-backend/internal/models"
	"dukkan-backend/internal/session"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

type SalesEventResponse struct {
	ID            string          `json:"id"`
	ProductID     string          `json:"product_id"`
	ProductName   string          `json:"product_name"`
	QuantityDelta int             `json:"quantity_delta"`
	ValueDelta    decimal.Decimal `json:"value_delta"`
	Date          string          `json:"date"`
}

// GET /api/sales?window=today|10d (varsayılan 10d)
// Silinmiş ürünlerin olayları da listelenir, defter onları tutmaya devam eder.
func ListSalesHandler(s *session.Session) fiber.Handler {
	return func(c *fiber.Ctx) error {
		now := time.Now()

		var pred func(date string) bool
		switch c.Query("window", "10d") {
		case "today":
			today := ledger.DateOf(now)
			pred = func(date string) bool { return date == today }
		case "10d":
			pred = func(date string) bool { return ledger.InWindow(date, now, ledger.WindowDays) }
		default:
			return fiber.NewError(fiber.StatusBadRequest, "window today veya 10d olmalı")
		}

		events := s.EventsByDate(pred)
		res := make([]SalesEventResponse, 0, len(events))
		for _, ev := range events {
			res = append(res, toSalesEventResponse(ev))
		}
		return c.JSON(res)
	}
}

func toSalesEventResponse(ev models.SalesEvent) SalesEventResponse {
	return SalesEventResponse{
		ID:            ev.ID.String(),
		ProductID:     ev.ProductID.String(),
		ProductName:   ev.ProductName,
		QuantityDelta: ev.QuantityDelta,
		ValueDelta:    ev.ValueDelta,
		Date:          ev.Date,
	}
}
