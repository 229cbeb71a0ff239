package ledger

import (
	"iter"
	"time"

	"dukkan-backend/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const DateLayout = "2006-01-02"

// WindowDays: raporlamada kullanılan pencere, bugün dahil son 10 gün.
const WindowDays = 10

// DateOf: zaman damgasını takvim günü string'ine indirger.
func DateOf(t time.Time) string {
	return t.Format(DateLayout)
}

// Ledger: append-only satış olayı günlüğü. Olaylar yazıldıktan sonra asla
// değişmez; okuma tarih filtresiyle yapılır, sıra garantisine dayanmaz.
type Ledger struct {
	events []models.SalesEvent
}

func New(events []models.SalesEvent) *Ledger {
	l := &Ledger{events: make([]models.SalesEvent, len(events))}
	copy(l.events, events)
	return l
}

func (l *Ledger) Len() int {
	return len(l.events)
}

// Events: ekleme sırasıyla kopya döner.
func (l *Ledger) Events() []models.SalesEvent {
	out := make([]models.SalesEvent, len(l.events))
	copy(out, l.events)
	return out
}

// Append: koşulsuz ekler. Ürünün hâlâ var olup olmadığına bakmaz; silinmiş
// ürünlerin geçmiş kayıtları da burada yaşar. Boş date bugüne çevrilir.
func (l *Ledger) Append(productID uuid.UUID, productName string, quantityDelta int, valueDelta decimal.Decimal, date string) models.SalesEvent {
	if date == "" {
		date = DateOf(time.Now())
	}
	ev := models.SalesEvent{
		ID:            uuid.New(),
		ProductID:     productID,
		ProductName:   productName,
		QuantityDelta: quantityDelta,
		ValueDelta:    valueDelta,
		Date:          date,
	}
	l.events = append(l.events, ev)
	return ev
}

// Query: tarih predicate'ine uyan olayları tembel olarak dolaşır. Sonlu ve
// yeniden başlatılabilir; günlüğü değiştirmez.
func (l *Ledger) Query(pred func(date string) bool) iter.Seq[models.SalesEvent] {
	return func(yield func(models.SalesEvent) bool) {
		for _, ev := range l.events {
			if !pred(ev.Date) {
				continue
			}
			if !yield(ev) {
				return
			}
		}
	}
}

// Window: son days günün tarihlerini yeniden-eskiye döner (ilk eleman bugün).
// Pencere olay verisinden değil, çağrı anındaki duvar saatinden hesaplanır;
// gece yarısı geçince yeni render'a kadar eski pencere görünür.
func Window(now time.Time, days int) []string {
	dates := make([]string, 0, days)
	for i := 0; i < days; i++ {
		dates = append(dates, DateOf(now.AddDate(0, 0, -i)))
	}
	return dates
}

// InWindow: date, [now-(days-1), now] aralığında mı? Format sıralanabilir
// olduğu için string karşılaştırması yeterli.
func InWindow(date string, now time.Time, days int) bool {
	lo := DateOf(now.AddDate(0, 0, -(days - 1)))
	hi := DateOf(now)
	return date >= lo && date <= hi
}
