package catalog

import (
	"testing"

	"dukkan-backend/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func price(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestAddOrMergeNewProduct(t *testing.T) {
	t.Parallel()

	c := New(nil)
	p, merged, err := c.AddOrMerge("Arroz", price("10.00"), 50)
	require.NoError(t, err)
	require.False(t, merged)
	require.Equal(t, 1, c.Len())
	require.Equal(t, "Arroz", p.Name)
	require.Equal(t, 50, p.Quantity)
	require.Equal(t, 0, p.Sold)
	require.False(t, p.Expanded)
	require.False(t, p.Editing)
	require.NotEqual(t, uuid.Nil, p.ID)
}

func TestAddOrMergeCaseInsensitive(t *testing.T) {
	t.Parallel()

	c := New(nil)
	first, _, err := c.AddOrMerge("Arroz", price("10.00"), 50)
	require.NoError(t, err)

	// farklı büyük/küçük harf ve farklı fiyatla ikinci ekleme
	p, merged, err := c.AddOrMerge("arroz", price("12.00"), 20)
	require.NoError(t, err)
	require.True(t, merged)
	require.Equal(t, 1, c.Len())
	require.Equal(t, first.ID, p.ID)
	require.Equal(t, 70, p.Quantity)
	// merge fiyatı güncellemez, kayıtlı fiyat korunur
	require.True(t, p.Price.Equal(price("10.00")))
}

func TestAddOrMergeValidation(t *testing.T) {
	t.Parallel()

	c := New(nil)
	_, _, err := c.AddOrMerge("   ", price("1.00"), 1)
	require.ErrorIs(t, err, ErrEmptyName)

	_, _, err = c.AddOrMerge("X", price("-1.00"), 1)
	require.ErrorIs(t, err, ErrInvalidPrice)

	_, _, err = c.AddOrMerge("X", price("1.00"), 0)
	require.ErrorIs(t, err, ErrInvalidQuantity)

	require.Equal(t, 0, c.Len())
}

func TestRecordSaleClampsToQuantity(t *testing.T) {
	t.Parallel()

	c := New(nil)
	p, _, err := c.AddOrMerge("Frijoles", price("5.50"), 40)
	require.NoError(t, err)

	res, found := c.RecordSale(p.ID, 30)
	require.True(t, found)
	require.Equal(t, 30, res.Delta)
	require.False(t, res.Clamped)
	require.Equal(t, 30, res.Product.Sold)

	// stok üstü istek kırpılır ve işaretlenir
	res, found = c.RecordSale(p.ID, 90)
	require.True(t, found)
	require.True(t, res.Clamped)
	require.Equal(t, 10, res.Delta)
	require.Equal(t, 40, res.Product.Sold)

	// sold hiçbir zaman quantity'yi aşamaz
	got, _ := c.Get(p.ID)
	require.LessOrEqual(t, got.Sold, got.Quantity)
}

func TestRecordSaleNegativeClampsToZero(t *testing.T) {
	t.Parallel()

	c := New(nil)
	p, _, _ := c.AddOrMerge("Café", price("3.00"), 10)
	c.RecordSale(p.ID, 4)

	res, found := c.RecordSale(p.ID, -5)
	require.True(t, found)
	require.Equal(t, -4, res.Delta)
	require.False(t, res.Clamped)
	require.Equal(t, 0, res.Product.Sold)
}

func TestRecordSaleZeroDelta(t *testing.T) {
	t.Parallel()

	c := New(nil)
	p, _, _ := c.AddOrMerge("Azúcar", price("2.00"), 10)
	c.RecordSale(p.ID, 5)
	before, _ := c.Get(p.ID)

	res, found := c.RecordSale(p.ID, 5)
	require.True(t, found)
	require.Equal(t, 0, res.Delta)

	after, _ := c.Get(p.ID)
	// delta sıfırsa ürün hiç değişmez, LastUpdated bile
	require.Equal(t, before, after)
}

func TestRecordSaleUnknownID(t *testing.T) {
	t.Parallel()

	c := New(nil)
	_, found := c.RecordSale(uuid.New(), 5)
	require.False(t, found)
}

func TestRemove(t *testing.T) {
	t.Parallel()

	c := New(nil)
	p1, _, _ := c.AddOrMerge("Arroz", price("10.00"), 5)
	p2, _, _ := c.AddOrMerge("Café", price("3.00"), 5)

	require.True(t, c.Remove(p1.ID))
	require.Equal(t, 1, c.Len())
	// çift silme sessiz no-op
	require.False(t, c.Remove(p1.ID))
	require.Equal(t, 1, c.Len())

	remaining := c.Products()
	require.Equal(t, p2.ID, remaining[0].ID)
}

func TestUpdateReclampsSold(t *testing.T) {
	t.Parallel()

	c := New(nil)
	p, _, _ := c.AddOrMerge("Aceite", price("8.00"), 20)
	c.RecordSale(p.ID, 15)

	res, found, err := c.Update(p.ID, "", price("9.00"), 10)
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, -5, res.SoldDelta)
	require.Equal(t, 10, res.Product.Sold)
	require.Equal(t, 10, res.Product.Quantity)
	require.True(t, res.Product.Price.Equal(price("9.00")))
	// boş isim mevcut ismi korur
	require.Equal(t, "Aceite", res.Product.Name)
}

func TestUpdateRename(t *testing.T) {
	t.Parallel()

	c := New(nil)
	p, _, _ := c.AddOrMerge("Aseite", price("8.00"), 20)
	other, _, _ := c.AddOrMerge("Arroz", price("10.00"), 5)

	// yazım düzeltmesi: isim değişir, diğer alanlar normal güncellenir
	res, found, err := c.Update(p.ID, "Aceite", price("8.00"), 20)
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, "Aceite", res.Product.Name)

	// başka ürünle case-insensitive çakışan isim reddedilir, ürün değişmez
	before, _ := c.Get(p.ID)
	_, found, err = c.Update(p.ID, "ARROZ", price("1.00"), 1)
	require.True(t, found)
	require.ErrorIs(t, err, ErrDuplicateName)
	after, _ := c.Get(p.ID)
	require.Equal(t, before, after)

	// kendi isminin farklı büyük/küçük yazımı çakışma sayılmaz
	res, found, err = c.Update(other.ID, "arroz", price("10.00"), 5)
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, "arroz", res.Product.Name)
}

func TestToggles(t *testing.T) {
	t.Parallel()

	c := New(nil)
	p, _, _ := c.AddOrMerge("Pan", price("1.00"), 3)

	require.True(t, c.ToggleExpanded(p.ID))
	got, _ := c.Get(p.ID)
	require.True(t, got.Expanded)
	require.True(t, c.ToggleExpanded(p.ID))
	got, _ = c.Get(p.ID)
	require.False(t, got.Expanded)

	after, found := c.ToggleEditing(p.ID)
	require.True(t, found)
	require.True(t, after.Editing)

	// bilinmeyen id idempotent no-op
	require.False(t, c.ToggleExpanded(uuid.New()))
	_, found = c.ToggleEditing(uuid.New())
	require.False(t, found)
}

func TestInsertionOrderPreserved(t *testing.T) {
	t.Parallel()

	c := New(nil)
	names := []string{"Arroz", "Café", "Azúcar", "Pan"}
	for _, n := range names {
		_, _, err := c.AddOrMerge(n, price("1.00"), 1)
		require.NoError(t, err)
	}

	var got []string
	for _, p := range c.Products() {
		got = append(got, p.Name)
	}
	require.Equal(t, names, got)
}

func TestNewCopiesInput(t *testing.T) {
	t.Parallel()

	src := []models.Product{{ID: uuid.New(), Name: "Arroz", Price: price("1.00"), Quantity: 2}}
	c := New(src)
	src[0].Name = "değişti"
	got, _ := c.Get(c.Products()[0].ID)
	require.Equal(t, "Arroz", got.Name)
}
