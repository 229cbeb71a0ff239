package store

import (
	"encoding/json"
	"fmt"

	"dukkan-backend/internal/models"
)

// Gateway: katalog ve satış defterini JSON dizileri olarak depoya yazar/okur.
// Kayıt hiç yoksa boş liste döner (ilk açılış).
type Gateway struct {
	store Store
}

func NewGateway(s Store) *Gateway {
	return &Gateway{store: s}
}

func (g *Gateway) LoadProducts() ([]models.Product, error) {
	raw, ok, err := g.store.Get(RecordProducts)
	if err != nil {
		return nil, fmt.Errorf("katalog okunamadı: %w", err)
	}
	if !ok {
		return nil, nil
	}
	var products []models.Product
	if err := json.Unmarshal([]byte(raw), &products); err != nil {
		return nil, fmt.Errorf("katalog çözümlenemedi: %w", err)
	}
	return products, nil
}

func (g *Gateway) SaveProducts(products []models.Product) error {
	if products == nil {
		products = []models.Product{}
	}
	raw, err := json.Marshal(products)
	if err != nil {
		return fmt.Errorf("katalog serileştirilemedi: %w", err)
	}
	return g.store.Set(RecordProducts, string(raw))
}

func (g *Gateway) LoadSales() ([]models.SalesEvent, error) {
	raw, ok, err := g.store.Get(RecordSales)
	if err != nil {
		return nil, fmt.Errorf("satış defteri okunamadı: %w", err)
	}
	if !ok {
		return nil, nil
	}
	var events []models.SalesEvent
	if err := json.Unmarshal([]byte(raw), &events); err != nil {
		return nil, fmt.Errorf("satış defteri çözümlenemedi: %w", err)
	}
	return events, nil
}

func (g *Gateway) SaveSales(events []models.SalesEvent) error {
	if events == nil {
		events = []models.SalesEvent{}
	}
	raw, err := json.Marshal(events)
	if err != nil {
		return fmt.Errorf("satış defteri serileştirilemedi: %w", err)
	}
	return g.store.Set(RecordSales, string(raw))
}
