package inventory

import (
	"dukkan-backend/internal/notify"
	"dukkan-backend/internal/session"

	"github.com/gofiber/fiber/v2"
)

type ViewResponse struct {
	Cards        []ProductCard        `json:"cards"`
	EmptyMessage string               `json:"empty_message,omitempty"`
	Stats        StatsResponse        `json:"stats"`
	Notification *notify.Notification `json:"notification"`
}

// GET /api/products — kart listesi + özet + aktif bildirim tek cevapta
func ListProductsHandler(s *session.Session) fiber.Handler {
	return func(c *fiber.Ctx) error {
		// kartlar ve özet aynı kilit altında alınır, eş zamanlı bir mutasyon
		// ikisini farklı durumlardan gösteremez
		products, summary := s.Snapshot()

		resp := ViewResponse{
			Cards:        RenderCards(products),
			Stats:        toStatsResponse(summary),
			Notification: s.Notification(),
		}
		if len(products) == 0 {
			resp.EmptyMessage = EmptyMessage
		}
		return c.JSON(resp)
	}
}

// GET /api/notifications/current
func CurrentNotificationHandler(s *session.Session) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"notification": s.Notification()})
	}
}
