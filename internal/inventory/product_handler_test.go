package inventory

import (
	"net/http/httptest"
	"strings"
	"testing"

	"dukkan-backend/internal/chart"
	"dukkan-backend/internal/models"
	"dukkan-backend/internal/notify"
	"dukkan-backend/internal/session"
	"dukkan-backend/internal/store"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

type noopRenderer struct{}

func (noopRenderer) Update(chart.Data) error { return nil }

func newHandlerSession(t *testing.T) *session.Session {
	t.Helper()
	s, err := session.Open(store.NewGateway(store.NewMemStore()), chart.NewAdapter(noopRenderer{}))
	require.NoError(t, err)
	return s
}

func newHandlerApp(s *session.Session) *fiber.App {
	app := fiber.New()
	app.Post("/api/products", AddProductHandler(s))
	app.Put("/api/products/:id", UpdateProductHandler(s))
	app.Delete("/api/products/:id", DeleteProductHandler(s))
	app.Post("/api/products/:id/toggle-edit", ToggleEditHandler(s))
	return app
}

func addOne(t *testing.T, s *session.Session) models.Product {
	t.Helper()
	p, _, err := s.AddProduct("Arroz", dec("10.00"), 50)
	require.NoError(t, err)
	return p
}

func TestDeleteRequiresConfirm(t *testing.T) {
	t.Parallel()

	s := newHandlerSession(t)
	p := addOne(t, s)
	app := newHandlerApp(s)

	// onay parametresi yok: silme yapılmaz, uyarı bildirimi bırakılır
	req := httptest.NewRequest(fiber.MethodDelete, "/api/products/"+p.ID.String(), nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusNoContent, resp.StatusCode)
	require.Len(t, s.Products(), 1)

	cur := s.Notification()
	require.NotNil(t, cur)
	require.Equal(t, notify.KindWarning, cur.Kind)

	// confirm=true ile silme gerçekleşir
	req = httptest.NewRequest(fiber.MethodDelete, "/api/products/"+p.ID.String()+"?confirm=true", nil)
	resp, err = app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusNoContent, resp.StatusCode)
	require.Empty(t, s.Products())
}

func TestToggleEditWithoutBody(t *testing.T) {
	t.Parallel()

	s := newHandlerSession(t)
	p := addOne(t, s)
	app := newHandlerApp(s)

	// boş gövdeyle düzenlemeye giriş
	req := httptest.NewRequest(fiber.MethodPost, "/api/products/"+p.ID.String()+"/toggle-edit", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	require.True(t, s.Products()[0].Editing)

	// sold ile çıkış commit eder
	req = httptest.NewRequest(fiber.MethodPost, "/api/products/"+p.ID.String()+"/toggle-edit", strings.NewReader(`{"sold":7}`))
	req.Header.Set("Content-Type", fiber.MIMEApplicationJSON)
	resp, err = app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	got := s.Products()[0]
	require.False(t, got.Editing)
	require.Equal(t, 7, got.Sold)
	require.Equal(t, 1, s.LedgerSize())
}

func TestUpdateRejectsDuplicateName(t *testing.T) {
	t.Parallel()

	s := newHandlerSession(t)
	p := addOne(t, s)
	_, _, err := s.AddProduct("Café", dec("3.00"), 10)
	require.NoError(t, err)
	app := newHandlerApp(s)

	req := httptest.NewRequest(fiber.MethodPut, "/api/products/"+p.ID.String(), strings.NewReader(`{"name":"café","price":"10.00","quantity":50}`))
	req.Header.Set("Content-Type", fiber.MIMEApplicationJSON)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	require.Equal(t, "Arroz", s.Products()[0].Name)
}
