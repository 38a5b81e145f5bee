package main

import (
	"log"
	"strings"

	"storseek-backend/internal/accounts"
	"storseek-backend/internal/audit"
	"storseek-backend/internal/auth"
	"storseek-backend/internal/config"
	"storseek-backend/internal/database"
	"storseek-backend/internal/expense"
	"storseek-backend/internal/financial"
	"storseek-backend/internal/inventory"
	"storseek-backend/internal/store"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func main() {
	cfg := config.Load()

	if err := database.Init(cfg); err != nil {
		log.Printf("[WARN] تعذر الاتصال بقاعدة البيانات، سيتم استخدام التخزين المحلي: %v", err)
	}

	st := store.NewFallback(
		store.NewGormStore(database.DB),
		store.NewCacheStore(cfg.LocalCachePath),
	)

	app := fiber.New(fiber.Config{
		BodyLimit: 20 * 1024 * 1024, // import files
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if e, ok := err.(*fiber.Error); ok {
				return c.Status(e.Code).JSON(fiber.Map{
					"error": e.Message,
				})
			}
			log.Println("خطأ غير متوقع:", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "خطأ غير متوقع في الخادم",
			})
		},
	})

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
	api.Post("/auth/register-admin", auth.RegisterAdminHandler(cfg))
	api.Post("/auth/login", auth.LoginHandler(cfg))

	// Protected
	protected := api.Group("")
	protected.Use(auth.JWTMiddleware(cfg))

	protected.Get("/auth/me", auth.MeHandler())

	// Dashboard statistics
	protected.Get("/statistics", financial.GetStatisticsHandler(st))
	protected.Get("/alerts", accounts.GetAlertsHandler(st))

	// Products
	protected.Get("/products", inventory.ListProductsHandler(st))
	protected.Post("/products", inventory.CreateProductHandler(st))
	protected.Put("/products/:id", inventory.UpdateProductHandler(st))
	protected.Delete("/products/:id", inventory.DeleteProductHandler(st))
	protected.Post("/products/:id/duplicate", inventory.DuplicateProductHandler(st))

	// Product import / export
	protected.Post("/products/import/excel", inventory.ImportProductsExcelHandler(st))
	protected.Post("/products/import/csv", inventory.ImportProductsCSVHandler(st))
	protected.Get("/products/template/excel", inventory.DownloadTemplateHandler())
	protected.Get("/products/export/excel", inventory.ExportProductsExcelHandler(st))
	protected.Get("/products/export/csv", inventory.ExportProductsCSVHandler(st))

	// Categories
	protected.Get("/categories", inventory.ListCategoriesHandler(st))
	protected.Post("/categories", inventory.CreateCategoryHandler(st))
	protected.Delete("/categories/:name", inventory.DeleteCategoryHandler(st))

	// Expenses
	protected.Get("/expenses", expense.ListExpensesHandler(st))
	protected.Post("/expenses", expense.CreateExpenseHandler(st))
	protected.Put("/expenses/:id", expense.UpdateExpenseHandler(st))
	protected.Delete("/expenses/:id", expense.DeleteExpenseHandler(st))
	protected.Get("/expenses/export/csv", expense.ExportExpensesHandler(st))

	// Savings
	protected.Get("/savings", accounts.ListSavingsHandler(st))
	protected.Get("/savings/totals", accounts.SavingsTotalsHandler(st))
	protected.Post("/savings", accounts.CreateSavingHandler(st))
	protected.Put("/savings/:id", accounts.UpdateSavingHandler(st))
	protected.Post("/savings/:id/complete", accounts.CompleteSavingHandler(st))
	protected.Delete("/savings/:id", accounts.DeleteSavingHandler(st))

	// Reminders
	protected.Get("/reminders", accounts.ListRemindersHandler(st))
	protected.Post("/reminders", accounts.CreateReminderHandler(st))
	protected.Put("/reminders/:id", accounts.UpdateReminderHandler(st))
	protected.Delete("/reminders/:id", accounts.DeleteReminderHandler(st))

	// Backup
	protected.Get("/backup/export", inventory.ExportBackupHandler(st))
	protected.Post("/backup/import", inventory.ImportBackupHandler(st))

	// Audit logs
	protected.Get("/audit-logs", audit.ListAuditLogsHandler())

	log.Println("الخادم يعمل على المنفذ:", cfg.HTTPPort)
	if err := app.Listen(":" + cfg.HTTPPort); err != nil {
		log.Fatal(err)
	}
}
