package inventory

import (
	"errors"

	"dukkan-backend/internal/catalog"
	"dukkan-backend/internal/ledger"
	"dukkan-backend/internal/models"
	"dukkan-backend/internal/notify"
	"dukkan-backend/internal/session"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ProductResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Quantity    int             `json:"quantity"`
	Sold        int             `json:"sold"`
	LastUpdated string          `json:"last_updated"`
	Expanded    bool            `json:"expanded"`
	Editing     bool            `json:"editing"`
}

func toProductResponse(p models.Product) ProductResponse {
	return ProductResponse{
		ID:          p.ID.String(),
		Name:        p.Name,
		Price:       p.Price,
		Quantity:    p.Quantity,
		Sold:        p.Sold,
		LastUpdated: p.LastUpdated.Format(ledger.DateLayout),
		Expanded:    p.Expanded,
		Editing:     p.Editing,
	}
}

type AddProductRequest struct {
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Quantity int             `json:"quantity"`
}

type UpdateProductRequest struct {
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Quantity int             `json:"quantity"`
}

type CommitSaleRequest struct {
	Sold int `json:"sold"`
}

type ToggleEditRequest struct {
	Sold *int `json:"sold"`
}

// POST /api/products
// İsim mevcutsa miktarı artırır (201 yerine 200 döner), yoksa yeni ürün ekler.
func AddProductHandler(s *session.Session) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body AddProductRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}

		p, merged, err := s.AddProduct(body.Name, body.Price, body.Quantity)
		if err != nil {
			switch {
			case errors.Is(err, catalog.ErrEmptyName),
				errors.Is(err, catalog.ErrInvalidPrice),
				errors.Is(err, catalog.ErrInvalidQuantity):
				return fiber.NewError(fiber.StatusBadRequest, err.Error())
			default:
				return fiber.NewError(fiber.StatusInternalServerError, "Ürün kaydedilemedi")
			}
		}

		status := fiber.StatusCreated
		if merged {
			status = fiber.StatusOK
		}
		return c.Status(status).JSON(toProductResponse(p))
	}
}

// PUT /api/products/:id — isim/fiyat/miktar düzenleme (boş isim korunur)
func UpdateProductHandler(s *session.Session) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz ürün id")
		}

		var body UpdateProductRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}
		if body.Price.IsNegative() || body.Quantity <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Fiyat negatif olamaz, miktar 0'dan büyük olmalı")
		}

		p, found, err := s.UpdateProduct(id, body.Name, body.Price, body.Quantity)
		if err != nil {
			if errors.Is(err, catalog.ErrDuplicateName) {
				return fiber.NewError(fiber.StatusBadRequest, err.Error())
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Ürün güncellenemedi")
		}
		if !found {
			// bilinmeyen id sessiz no-op
			return c.SendStatus(fiber.StatusNoContent)
		}
		return c.JSON(toProductResponse(p))
	}
}

// DELETE /api/products/:id?confirm=true
// Onay parametresi yoksa silme yapılmaz, sadece uyarı bildirimi bırakılır.
func DeleteProductHandler(s *session.Session) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz ürün id")
		}

		if c.Query("confirm") != "true" {
			s.Notify(notify.KindWarning, "Silme işlemi onay bekliyor, confirm=true ile tekrarla")
			return c.SendStatus(fiber.StatusNoContent)
		}

		if _, err := s.DeleteProduct(id); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Ürün silinemedi")
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// POST /api/products/:id/toggle-expand
func ToggleExpandHandler(s *session.Session) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz ürün id")
		}

		if _, err := s.ToggleExpand(id); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Durum kaydedilemedi")
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// POST /api/products/:id/toggle-edit
// Düzenlemeden çıkışta gövdedeki sold değeri commit edilir. Gövde opsiyonel:
// düzenlemeye girişte boş istek yeterlidir, sold gelmezse mevcut değer kalır.
func ToggleEditHandler(s *session.Session) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz ürün id")
		}

		var body ToggleEditRequest
		if len(c.Body()) > 0 {
			if err := c.BodyParser(&body); err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
			}
		}

		p, found, err := s.ToggleEdit(id, body.Sold)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Durum kaydedilemedi")
		}
		if !found {
			return c.SendStatus(fiber.StatusNoContent)
		}
		return c.JSON(toProductResponse(p))
	}
}

// PUT /api/products/:id/sold — satış adedini doğrudan güncelle
func CommitSaleHandler(s *session.Session) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz ürün id")
		}

		var body CommitSaleRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Geçersiz istek gövdesi")
		}

		res, found, err := s.CommitSale(id, body.Sold)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Satış kaydedilemedi")
		}
		if !found {
			return c.SendStatus(fiber.StatusNoContent)
		}
		return c.JSON(fiber.Map{
			"product": toProductResponse(res.Product),
			"delta":   res.Delta,
			"clamped": res.Clamped,
		})
	}
}
