package stats

import (
	"time"

	"dukkan-backend/internal/currency"
	"dukkan-backend/internal/ledger"
	"dukkan-backend/internal/models"

	"github.com/shopspring/decimal"
)

// Summary: katalog + defterden türetilen özet. Saklanmaz, her mutasyondan
// sonra yeniden hesaplanır. Tüm para alanları decimal'dir, float kayması yok.
type Summary struct {
	TotalStockValue   decimal.Decimal `json:"total_stock_value"`
	TotalProductCount int             `json:"total_product_count"`
	TotalUnitsInStock int             `json:"total_units_in_stock"`
	TodaySold         int             `json:"today_sold"`
	TodayValue        decimal.Decimal `json:"today_value"`
	Last10Sold        int             `json:"last10_sold"`
	Last10Value       decimal.Decimal `json:"last10_value"`
	MostValuable      string          `json:"most_valuable"` // "İsim (123.45 CUP)" veya "-"
}

// Compute: katalog ve satış defteri üzerinden özetin tamamını türetir.
// Silinmiş ürünlerin defter olayları bugün/pencere toplamlarına dahil kalır.
func Compute(products []models.Product, l *ledger.Ledger, now time.Time) Summary {
	s := Summary{
		TotalStockValue: decimal.Zero,
		TodayValue:      decimal.Zero,
		Last10Value:     decimal.Zero,
		MostValuable:    "-",
	}

	var maxValue decimal.Decimal
	for _, p := range products {
		value := p.StockValue()
		s.TotalStockValue = s.TotalStockValue.Add(value)
		s.TotalUnitsInStock += p.Quantity
		if s.MostValuable == "-" || value.GreaterThan(maxValue) {
			maxValue = value
			s.MostValuable = p.Name + " (" + currency.Format(value) + ")"
		}
	}
	s.TotalProductCount = len(products)

	today := ledger.DateOf(now)
	for ev := range l.Query(func(date string) bool { return ledger.InWindow(date, now, ledger.WindowDays) }) {
		s.Last10Sold += ev.QuantityDelta
		s.Last10Value = s.Last10Value.Add(ev.ValueDelta)
		if ev.Date == today {
			s.TodaySold += ev.QuantityDelta
			s.TodayValue = s.TodayValue.Add(ev.ValueDelta)
		}
	}

	return s
}
