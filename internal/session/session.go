package session

import (
	"fmt"
	"sync"
	"time"

	"dukkan-backend/internal/catalog"
	"dukkan-backend/internal/chart"
	"dukkan-backend/internal/ledger"
	"dukkan-backend/internal/models"
	"dukkan-backend/internal/notify"
	"dukkan-backend/internal/stats"
	"dukkan-backend/internal/store"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Session: uygulamanın tek durum nesnesi. Açılışta kalıcı kayıtlardan kurulur,
// handler'lara referansla geçirilir. Her intent zinciri (mutasyon -> kalıcılık
// -> grafik) kilit altında baştan sona koşar; bir sonraki istek öncekinin
// zinciri bitmeden durumu göremez.
type Session struct {
	mu       sync.Mutex
	catalog  *catalog.Catalog
	ledger   *ledger.Ledger
	gateway  *store.Gateway
	notifier *notify.Notifier
	chart    *chart.Adapter
}

// Open: iki kalıcı kaydı yükler ve grafiği ilk verisiyle doldurur. Kayıtların
// hiç olmaması hata değildir, boş katalog/defterle başlanır.
func Open(gw *store.Gateway, adapter *chart.Adapter) (*Session, error) {
	products, err := gw.LoadProducts()
	if err != nil {
		return nil, err
	}
	events, err := gw.LoadSales()
	if err != nil {
		return nil, err
	}

	s := &Session{
		catalog:  catalog.New(products),
		ledger:   ledger.New(events),
		gateway:  gw,
		notifier: notify.New(),
		chart:    adapter,
	}
	if err := s.chart.Refresh(s.ledger, time.Now()); err != nil {
		return nil, fmt.Errorf("grafik ilk verisi kurulamadı: %w", err)
	}
	return s, nil
}

// AddProduct: isim eşleşirse miktar artırma, eşleşmezse yeni ürün. Doğrulama
// hataları catalog'dan aynen döner, handler 400'e çevirir.
func (s *Session) AddProduct(name string, price decimal.Decimal, quantity int) (models.Product, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, merged, err := s.catalog.AddOrMerge(name, price, quantity)
	if err != nil {
		return models.Product{}, false, err
	}
	if err := s.gateway.SaveProducts(s.catalog.Products()); err != nil {
		return models.Product{}, false, err
	}

	if merged {
		s.notifier.Success(fmt.Sprintf("%s zaten vardı, miktarı %d oldu", p.Name, p.Quantity))
	} else {
		s.notifier.Success(p.Name + " eklendi")
	}
	return p, merged, nil
}

// UpdateProduct: isim/fiyat/miktar düzenlemesi. Boş isim mevcut ismi korur,
// çakışan isim catalog.ErrDuplicateName döner. Miktar sold'un altına inerse
// sold kırpılır ve düzeltme deftere negatif delta olarak işlenir.
func (s *Session) UpdateProduct(id uuid.UUID, name string, price decimal.Decimal, quantity int) (models.Product, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, ok, err := s.catalog.Update(id, name, price, quantity)
	if err != nil {
		return models.Product{}, ok, err
	}
	if !ok {
		return models.Product{}, false, nil
	}

	ledgerChanged := false
	if res.SoldDelta != 0 {
		value := res.Product.Price.Mul(decimal.NewFromInt(int64(res.SoldDelta)))
		s.ledger.Append(res.Product.ID, res.Product.Name, res.SoldDelta, value, "")
		ledgerChanged = true
	}

	if err := s.persist(ledgerChanged); err != nil {
		return models.Product{}, false, err
	}
	s.notifier.Success(res.Product.Name + " güncellendi")
	return res.Product, true, nil
}

// DeleteProduct: ürünü katalogdan siler, defterdeki olayları yerinde kalır.
// Bulunamayan id sessiz no-op.
func (s *Session) DeleteProduct(id uuid.UUID) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, found := s.catalog.Get(id)
	if !found {
		return false, nil
	}
	s.catalog.Remove(id)
	if err := s.gateway.SaveProducts(s.catalog.Products()); err != nil {
		return false, err
	}
	s.notifier.Success(p.Name + " silindi")
	return true, nil
}

// ToggleExpand: kart aç/kapa. UI durumu da ürün kaydının parçası olduğundan
// kalıcılaştırılır.
func (s *Session) ToggleExpand(id uuid.UUID) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.catalog.ToggleExpanded(id) {
		return false, nil
	}
	return true, s.gateway.SaveProducts(s.catalog.Products())
}

// ToggleEdit: düzenleme modunu çevirir. Düzenlemeden çıkış anında formdaki
// sold değeri commit edilir (orijinal akış: editar -> değer gir -> tekrar
// editar satışı kaydeder). newSold nil ise çıkışta sold olduğu gibi kalır;
// düzenlemeye giriş için gövde göndermek gerekmez.
func (s *Session) ToggleEdit(id uuid.UUID, newSold *int) (models.Product, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.catalog.Get(id)
	if !ok {
		return models.Product{}, false, nil
	}

	ledgerChanged := false
	if p.Editing && newSold != nil {
		res, _ := s.catalog.RecordSale(id, *newSold)
		ledgerChanged = s.applySale(res)
	}
	after, _ := s.catalog.ToggleEditing(id)

	if err := s.persist(ledgerChanged); err != nil {
		return models.Product{}, false, err
	}
	return after, true, nil
}

// CommitSale: sold alanını doğrudan günceller. Delta sıfırsa defter olayı da
// kalıcılık yazımı da yapılmaz.
func (s *Session) CommitSale(id uuid.UUID, newSold int) (catalog.SaleResult, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, ok := s.catalog.RecordSale(id, newSold)
	if !ok {
		return catalog.SaleResult{}, false, nil
	}
	ledgerChanged := s.applySale(res)
	if res.Delta == 0 {
		// ürün değişmedi, defter olayı da kalıcılık yazımı da yok
		return res, true, nil
	}
	if err := s.persist(ledgerChanged); err != nil {
		return catalog.SaleResult{}, false, err
	}
	return res, true, nil
}

// applySale: kırpma uyarısını ve defter olayını işler, defterin değişip
// değişmediğini döner. Çağıran kilidi tutuyor olmalı.
func (s *Session) applySale(res catalog.SaleResult) bool {
	if res.Clamped {
		s.notifier.Warning(fmt.Sprintf("Stok aşıldı: %s için satış %d olarak kaydedildi", res.Product.Name, res.Product.Sold))
	}
	if res.Delta == 0 {
		return false
	}
	value := res.Product.Price.Mul(decimal.NewFromInt(int64(res.Delta)))
	s.ledger.Append(res.Product.ID, res.Product.Name, res.Delta, value, "")
	if !res.Clamped {
		s.notifier.Success(fmt.Sprintf("%s satışı güncellendi: %d", res.Product.Name, res.Product.Sold))
	}
	return true
}

// persist: katalog her mutasyonda, defter sadece yeni olay varsa yazılır.
// Defter değiştiyse grafik de tazelenir.
func (s *Session) persist(ledgerChanged bool) error {
	if err := s.gateway.SaveProducts(s.catalog.Products()); err != nil {
		return err
	}
	if ledgerChanged {
		if err := s.gateway.SaveSales(s.ledger.Events()); err != nil {
			return err
		}
		if err := s.chart.Refresh(s.ledger, time.Now()); err != nil {
			return err
		}
	}
	return nil
}

// Products: gösterim sırasıyla katalog kopyası.
func (s *Session) Products() []models.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.catalog.Products()
}

// Stats: özet metrikleri o anki duvar saatine göre türetir.
func (s *Session) Stats() stats.Summary {
	s.mu.Lock()
	defer s.mu.Unlock()
	return stats.Compute(s.catalog.Products(), s.ledger, time.Now())
}

// Snapshot: kart listesi ve özet metrikleri tek kilit altında alır; araya
// giren bir mutasyon ikisini birbirinden ayrı düşüremez.
func (s *Session) Snapshot() ([]models.Product, stats.Summary) {
	s.mu.Lock()
	defer s.mu.Unlock()
	products := s.catalog.Products()
	return products, stats.Compute(products, s.ledger, time.Now())
}

// EventsByDate: tarih predicate'ine uyan defter olayları.
func (s *Session) EventsByDate(pred func(date string) bool) []models.SalesEvent {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.SalesEvent
	for ev := range s.ledger.Query(pred) {
		out = append(out, ev)
	}
	return out
}

// LedgerSize: defterdeki olay sayısı (monoton artar).
func (s *Session) LedgerSize() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ledger.Len()
}

// Notification: gösterilen geçici bildirim, yoksa nil.
func (s *Session) Notification() *notify.Notification {
	return s.notifier.Current()
}

// Notify: handler katmanının (ör. onaysız silme denemesi) uyarı bırakması için.
func (s *Session) Notify(kind notify.Kind, message string) {
	s.notifier.Push(kind, message)
}
