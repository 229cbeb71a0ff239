package inventory

import (
	"dukkan-backend/internal/currency"
	"dukkan-backend/internal/models"
)

// EmptyMessage: katalog boşken kart listesi yerine gösterilen mesaj.
const EmptyMessage = "Henüz ürün eklenmedi. İlk ürünü formdan ekleyin."

// CardMetrics: kartın detay paneli. Sadece kart açıkken (expanded) üretilir.
type CardMetrics struct {
	UnitPrice     string `json:"unit_price"`
	Quantity      int    `json:"quantity"`
	Sold          int    `json:"sold"`
	SoldEditable  bool   `json:"sold_editable"` // editing açıkken sold alanı düzenlenebilir
	Remaining     int    `json:"remaining"`
	OutOfStock    bool   `json:"out_of_stock"`
	ValueAcquired string `json:"value_acquired"`
	TotalValue    string `json:"total_value"`
}

// ProductCard: kart başlığı her zaman görünür; Metrics yalnızca expanded
// durumda doldurulur. Başlık tıklaması expand, edit/sil butonları kendi
// intent'lerini gönderir (başlığın toggle'ını tetiklemeden).
type ProductCard struct {
	ID       string       `json:"id"`
	Name     string       `json:"name"`
	Expanded bool         `json:"expanded"`
	Editing  bool         `json:"editing"`
	Metrics  *CardMetrics `json:"metrics,omitempty"`
}

// RenderCards: katalog durumunu gösterim ağacına çevirir. Sıra katalog
// sırasıdır, defter bu görünüme girmez.
func RenderCards(products []models.Product) []ProductCard {
	cards := make([]ProductCard, 0, len(products))
	for _, p := range products {
		card := ProductCard{
			ID:       p.ID.String(),
			Name:     p.Name,
			Expanded: p.Expanded,
			Editing:  p.Editing,
		}
		if p.Expanded {
			card.Metrics = &CardMetrics{
				UnitPrice:     currency.Format(p.Price),
				Quantity:      p.Quantity,
				Sold:          p.Sold,
				SoldEditable:  p.Editing,
				Remaining:     p.Remaining(),
				OutOfStock:    p.Remaining() == 0,
				ValueAcquired: currency.Format(p.SoldValue()),
				TotalValue:    currency.Format(p.StockValue()),
			}
		}
		cards = append(cards, card)
	}
	return cards
}
