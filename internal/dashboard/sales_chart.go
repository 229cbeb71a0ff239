package dashboard

import (
	"sync"

	"dukkan-backend/internal/chart"

	"github.com/gofiber/fiber/v2"
)

// SnapshotRenderer: grafik collaborator'ının sunucu tarafı. Kuruluşta seri
// konfigürasyonunu alır, her Update'te son veriyi saklar; dashboard endpoint'i
// bu son hali sunar, çizimi tarayıcıdaki grafik kütüphanesi yapar.
type SnapshotRenderer struct {
	mu     sync.Mutex
	config chart.Config
	data   chart.Data
}

func NewSnapshotRenderer(cfg chart.Config) *SnapshotRenderer {
	return &SnapshotRenderer{config: cfg}
}

func (r *SnapshotRenderer) Update(data chart.Data) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data = data
	return nil
}

func (r *SnapshotRenderer) Snapshot() chart.Data {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.data
}

type SalesChartResponse struct {
	Config chart.Config `json:"config"`
	Data   chart.Data   `json:"data"`
}

// GET /api/dashboard/sales-chart
// Son push edilen pencereyi döner; pencere duvar saatinden mutasyon anında
// hesaplanır, gece yarısından sonra ilk mutasyona kadar eski pencere kalır.
func SalesChartHandler(r *SnapshotRenderer) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(SalesChartResponse{
			Config: r.config,
			Data:   r.Snapshot(),
		})
	}
}
