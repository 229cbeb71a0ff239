package catalog

import (
	"strings"
	"time"

	"dukkan-backend/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Catalog: ürünlerin sıralı, bellek içi koleksiyonu. Ekleme sırası gösterim
// sırasıdır. Kalıcılık burada değil, çağıranın sorumluluğundadır.
type Catalog struct {
	products []models.Product
}

func New(products []models.Product) *Catalog {
	c := &Catalog{products: make([]models.Product, len(products))}
	copy(c.products, products)
	return c
}

func (c *Catalog) Len() int {
	return len(c.products)
}

// Products: gösterim sırasıyla kopya döner.
func (c *Catalog) Products() []models.Product {
	out := make([]models.Product, len(c.products))
	copy(out, c.products)
	return out
}

func (c *Catalog) Get(id uuid.UUID) (models.Product, bool) {
	if i := c.index(id); i >= 0 {
		return c.products[i], true
	}
	return models.Product{}, false
}

// AddOrMerge: isim case-insensitive eşleşirse mevcut ürünün miktarını artırır,
// eşleşmezse yeni ürün ekler. Eşleşmede kayıtlı fiyat korunur, yeni fiyat
// dikkate alınmaz. İkinci dönüş değeri merge olup olmadığını söyler.
func (c *Catalog) AddOrMerge(name string, price decimal.Decimal, quantity int) (models.Product, bool, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.Product{}, false, ErrEmptyName
	}
	if price.IsNegative() {
		return models.Product{}, false, ErrInvalidPrice
	}
	if quantity <= 0 {
		return models.Product{}, false, ErrInvalidQuantity
	}

	for i := range c.products {
		if strings.EqualFold(c.products[i].Name, name) {
			c.products[i].Quantity += quantity
			c.products[i].LastUpdated = time.Now()
			return c.products[i], true, nil
		}
	}

	p := models.Product{
		ID:          uuid.New(),
		Name:        name,
		Price:       price,
		Quantity:    quantity,
		Sold:        0,
		LastUpdated: time.Now(),
	}
	c.products = append(c.products, p)
	return p, false, nil
}

// Remove: ürünü katalogdan çıkarır. Bulunamazsa sessiz no-op (false döner).
// Satış defterine dokunmaz.
func (c *Catalog) Remove(id uuid.UUID) bool {
	i := c.index(id)
	if i < 0 {
		return false
	}
	c.products = append(c.products[:i], c.products[i+1:]...)
	return true
}

// SaleResult: RecordSale sonucu. Delta satış defterine iletilecek net değişim,
// Clamped ise istenen değerin stok miktarına kırpıldığını gösterir.
type SaleResult struct {
	Product models.Product
	Delta   int
	Clamped bool
}

// RecordSale: sold alanını [0, quantity] aralığına kırparak newSold yapar.
// Delta 0 ise ürün hiç değişmez; çağıranın kalıcılaştırması da gerekmez.
func (c *Catalog) RecordSale(id uuid.UUID, newSold int) (SaleResult, bool) {
	i := c.index(id)
	if i < 0 {
		return SaleResult{}, false
	}

	p := &c.products[i]
	res := SaleResult{}
	if newSold < 0 {
		newSold = 0
	}
	if newSold > p.Quantity {
		newSold = p.Quantity
		res.Clamped = true
	}

	res.Delta = newSold - p.Sold
	if res.Delta != 0 {
		p.Sold = newSold
		p.LastUpdated = time.Now()
	}
	res.Product = *p
	return res, true
}

// UpdateResult: Update sonucu. SoldDelta, miktar düşürülünce sold değerinin
// yeniden kırpılmasından doğan düzeltmedir (satış defterine iletilir).
type UpdateResult struct {
	Product   models.Product
	SoldDelta int
}

// Update: isim, fiyat ve miktarı değiştirir. Boş isim mevcut ismi korur;
// başka bir ürünle case-insensitive çakışan isim ErrDuplicateName döner.
// Yeni miktar mevcut sold değerinin altına inerse sold kırpılır ve fark
// negatif düzeltme olarak döner.
func (c *Catalog) Update(id uuid.UUID, name string, price decimal.Decimal, quantity int) (UpdateResult, bool, error) {
	i := c.index(id)
	if i < 0 {
		return UpdateResult{}, false, nil
	}

	name = strings.TrimSpace(name)
	if name != "" {
		for j := range c.products {
			if j != i && strings.EqualFold(c.products[j].Name, name) {
				return UpdateResult{}, true, ErrDuplicateName
			}
		}
	}

	p := &c.products[i]
	res := UpdateResult{}
	if name != "" {
		p.Name = name
	}
	p.Price = price
	p.Quantity = quantity
	if p.Sold > quantity {
		res.SoldDelta = quantity - p.Sold
		p.Sold = quantity
	}
	p.LastUpdated = time.Now()
	res.Product = *p
	return res, true, nil
}

// ToggleExpanded: kart aç/kapa. Bilinmeyen id sessiz no-op.
func (c *Catalog) ToggleExpanded(id uuid.UUID) bool {
	i := c.index(id)
	if i < 0 {
		return false
	}
	c.products[i].Expanded = !c.products[i].Expanded
	return true
}

// ToggleEditing: düzenleme modunu çevirir, toggle sonrası durumu döner.
func (c *Catalog) ToggleEditing(id uuid.UUID) (models.Product, bool) {
	i := c.index(id)
	if i < 0 {
		return models.Product{}, false
	}
	c.products[i].Editing = !c.products[i].Editing
	return c.products[i], true
}

func (c *Catalog) index(id uuid.UUID) int {
	for i := range c.products {
		if c.products[i].ID == id {
			return i
		}
	}
	return -1
}
