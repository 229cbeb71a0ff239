package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SalesEvent: bir ürünün sold alanındaki net değişiklik kaydı. Append-only:
// yazıldıktan sonra asla değiştirilmez veya silinmez, ürün silinse bile kalır.
type SalesEvent struct {
	ID            uuid.UUID       `json:"id"`
	ProductID     uuid.UUID       `json:"product_id"` // zayıf referans, ürün silinmiş olabilir
	ProductName   string          `json:"product_name"`
	QuantityDelta int             `json:"quantity_delta"` // düzeltmelerde negatif olabilir
	ValueDelta    decimal.Decimal `json:"value_delta"`    // delta * olay anındaki birim fiyat
	Date          string          `json:"date"`           // "2006-01-02" formatında takvim günü
}
