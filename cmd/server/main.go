package main

import (
	"log"
	"strings"

	"dukkan-backend/internal/auth"
	"dukkan-backend/internal/chart"
	"dukkan-backend/internal/config"
	"dukkan-backend/internal/dashboard"
	"dukkan-backend/internal/database"
	"dukkan-backend/internal/inventory"
	"dukkan-backend/internal/session"
	"dukkan-backend/internal/store"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func main() {
	cfg := config.Load()
	database.Init(cfg)

	// kalıcı kayıtlardan uygulama durumunu kur
	users := auth.NewGormUserStore(database.DB)
	gateway := store.NewGateway(store.NewGormStore(database.DB))
	renderer := dashboard.NewSnapshotRenderer(chart.DefaultConfig())
	sess, err := session.Open(gateway, chart.NewAdapter(renderer))
	if err != nil {
		log.Fatalf("Uygulama durumu yüklenemedi: %v", err)
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if e, ok := err.(*fiber.Error); ok {
				return c.Status(e.Code).JSON(fiber.Map{
					"error": e.Message,
				})
			}
			log.Println("Unexpected error:", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Beklenmeyen sunucu hatası",
			})
		},
	})

	// CORS origins'i virgülle ayrılmış string'den array'e çevir
	corsOrigins := strings.Split(cfg.CORSOrigins, ",")
	for i := range corsOrigins {
		corsOrigins[i] = strings.TrimSpace(corsOrigins[i])
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(corsOrigins, ","),
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
	}))

	api := app.Group("/api")

	// Public auth
	api.Post("/auth/register", auth.RegisterHandler(cfg, users))
	api.Post("/auth/login", auth.LoginHandler(cfg, users))

	// Protected
	protected := api.Group("")
	protected.Use(auth.JWTMiddleware(cfg))

	protected.Get("/auth/me", auth.MeHandler(users))

	// Katalog ve görünüm
	protected.Get("/products", inventory.ListProductsHandler(sess))
	protected.Post("/products", inventory.AddProductHandler(sess))
	protected.Put("/products/:id", inventory.UpdateProductHandler(sess))
	protected.Delete("/products/:id", inventory.DeleteProductHandler(sess))
	protected.Post("/products/:id/toggle-expand", inventory.ToggleExpandHandler(sess))
	protected.Post("/products/:id/toggle-edit", inventory.ToggleEditHandler(sess))
	protected.Put("/products/:id/sold", inventory.CommitSaleHandler(sess))

	// Özet ve satış defteri
	protected.Get("/stats", inventory.StatsHandler(sess))
	protected.Get("/sales", inventory.ListSalesHandler(sess))

	// Bildirim
	protected.Get("/notifications/current", inventory.CurrentNotificationHandler(sess))

	// Dashboard
	protected.Get("/dashboard/sales-chart", dashboard.SalesChartHandler(renderer))

	log.Println("Server çalışıyor port:", cfg.HTTPPort)
	if err := app.Listen(":" + cfg.HTTPPort); err != nil {
		log.Fatal(err)
	}
}
