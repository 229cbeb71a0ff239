package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product: katalogdaki bir ürün. JSON olarak store_records tablosuna yazılır,
// GORM tablosu değildir. Name katalog içinde case-insensitive unique'tir.
type Product struct {
	ID          uuid.UUID       `json:"id"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Quantity    int             `json:"quantity"` // eldeki stok
	Sold        int             `json:"sold"`     // her zaman <= Quantity
	LastUpdated time.Time       `json:"last_updated"`
	Expanded    bool            `json:"expanded"` // sadece UI durumu
	Editing     bool            `json:"editing"`  // sadece UI durumu
}

// Remaining: satılmamış kalan adet.
func (p Product) Remaining() int {
	return p.Quantity - p.Sold
}

// StockValue: price * quantity.
func (p Product) StockValue() decimal.Decimal {
	return p.Price.Mul(decimal.NewFromInt(int64(p.Quantity)))
}

// SoldValue: satıştan elde edilen değer (price * sold).
func (p Product) SoldValue() decimal.Decimal {
	return p.Price.Mul(decimal.NewFromInt(int64(p.Sold)))
}
