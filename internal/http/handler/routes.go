package handler

import (
	"context"
	"database/sql"
	"time"

	"github.com/gofiber/fiber/v2"

	"docgen/internal/service"
)

// Generators bundles the document generators served over HTTP.
type Generators struct {
	Invoice service.InvoiceGenerator
	Bill    service.BillGenerator
	Receipt service.ReceiptGenerator
}

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
func RegisterRoutes(app *fiber.App, db *sql.DB, gens Generators) {
	app.Get("/health", HealthCheck(db))
	app.Get("/healthz", LivenessProbe())

	generate := app.Group("/generate")
	generate.Post("/invoice", GenerateInvoice(gens.Invoice))
	generate.Post("/bill", GenerateBill(gens.Bill))
	generate.Post("/receipt", GenerateReceipt(gens.Receipt))
}

// HealthCheck checks DB connectivity only.
//
// @Summary Readiness probe
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 503 {object} errorPayload
// @Router /health [get]
func HealthCheck(db *sql.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
		defer cancel()
		if err := db.PingContext(ctx); err != nil {
			return writeError(c, fiber.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", "dependency unavailable")
		}
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "healthy"})
	}
}

// LivenessProbe always answers 200 while the process is serving.
//
// @Summary Liveness probe
// @Tags health
// @Success 200
// @Router /healthz [get]
func LivenessProbe() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	}
}
