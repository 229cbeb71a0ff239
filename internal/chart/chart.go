package chart

import (
	"time"

	"dukkan-backend/internal/ledger"

	"github.com/shopspring/decimal"
)

// Data: grafiğe gönderilen etiket/seri üçlüsü. Etiketler gün/ay ("02/01")
// formatında ve eskiden yeniye sıralıdır; olmayan günler sıfırla doldurulur.
type Data struct {
	Labels        []string          `json:"labels"`
	UnitsSold     []int             `json:"units_sold"`
	ValueAcquired []decimal.Decimal `json:"value_acquired"`
}

// Series: grafik collaborator'ına kuruluşta verilen seri tanımı.
type Series struct {
	Name string `json:"name"`
	Type string `json:"type"` // bar | line
	Axis string `json:"axis"` // left | right
}

type Config struct {
	Series []Series `json:"series"`
}

// DefaultConfig: adet bar, değer line olarak iki seri.
func DefaultConfig() Config {
	return Config{
		Series: []Series{
			{Name: "Satılan Adet", Type: "bar", Axis: "left"},
			{Name: "Elde Edilen Değer", Type: "line", Axis: "right"},
		},
	}
}

// Renderer: dış grafik collaborator'ı. Çizimi o yapar, adapter sadece veriyi
// şekillendirip iter.
type Renderer interface {
	Update(data Data) error
}

// Adapter: defterin 10 günlük penceresini Data'ya dönüştürüp renderer'a iter.
type Adapter struct {
	renderer Renderer
}

func NewAdapter(r Renderer) *Adapter {
	return &Adapter{renderer: r}
}

// Build: pencereyi yeniden-eskiye kurar, gösterim için eskiden-yeniye çevirir.
// Pencere her zaman çağrı anındaki duvar saatinden hesaplanır.
func Build(l *ledger.Ledger, now time.Time) Data {
	dates := ledger.Window(now, ledger.WindowDays) // yeniden eskiye

	type dayAgg struct {
		units int
		value decimal.Decimal
	}
	byDate := make(map[string]*dayAgg, len(dates))
	for _, d := range dates {
		byDate[d] = &dayAgg{value: decimal.Zero}
	}

	for ev := range l.Query(func(date string) bool { return ledger.InWindow(date, now, ledger.WindowDays) }) {
		agg := byDate[ev.Date]
		if agg == nil {
			continue
		}
		agg.units += ev.QuantityDelta
		agg.value = agg.value.Add(ev.ValueDelta)
	}

	data := Data{
		Labels:        make([]string, 0, len(dates)),
		UnitsSold:     make([]int, 0, len(dates)),
		ValueAcquired: make([]decimal.Decimal, 0, len(dates)),
	}
	// ters yönde dolaş: gösterim sırası eskiden yeniye
	for i := len(dates) - 1; i >= 0; i-- {
		d := dates[i]
		day, _ := time.Parse(ledger.DateLayout, d)
		agg := byDate[d]
		data.Labels = append(data.Labels, day.Format("02/01"))
		data.UnitsSold = append(data.UnitsSold, agg.units)
		data.ValueAcquired = append(data.ValueAcquired, agg.value)
	}
	return data
}

// Refresh: güncel pencereyi kurup renderer'a iletir.
func (a *Adapter) Refresh(l *ledger.Ledger, now time.Time) error {
	return a.renderer.Update(Build(l, now))
}
