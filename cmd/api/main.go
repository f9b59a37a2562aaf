package main

import (
	"context"
	"log"
	"os"
	"strconv"

	"sambapos/internal/auth"
	"sambapos/internal/catalog"
	"sambapos/internal/fiscal"
	"sambapos/internal/receipt"
	"sambapos/internal/reports"
	"sambapos/internal/router"
	"sambapos/internal/stock"
	"sambapos/internal/suggest"
	"sambapos/internal/tables"
	"sambapos/internal/ticket"

	"github.com/joho/godotenv"
)

func main() {

	// ───────────────────────── ENV ─────────────────────────
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	required := []string{
		"JWT_SECRET",
	}

	for _, k := range required {
		if os.Getenv(k) == "" {
			log.Fatalf("❌ Missing env var: %s", k)
		}
	}

	taxRate := 0.16
	if v := os.Getenv("TAX_RATE"); v != "" {
		parsed, err := strconv.ParseFloat(v, 64)
		if err != nil || parsed < 0 || parsed >= 1 {
			log.Fatalf("❌ Invalid TAX_RATE: %s", v)
		}
		taxRate = parsed
	}

	tin := os.Getenv("ETIMS_TIN")
	if tin == "" {
		tin = "P000123456X"
	}
	branchID := os.Getenv("ETIMS_BRANCH_ID")
	if branchID == "" {
		branchID = "BHF01"
	}

	// ───────────────────────── AUTH ─────────────────────────
	userRepo := auth.NewInMemoryUserRepository()
	authService := auth.NewService(userRepo)
	if err := auth.SeedUsers(userRepo); err != nil {
		log.Fatal("❌ Seeding users failed:", err)
	}

	// ───────────────────────── CORE STATE ─────────────────────────
	menuRepo := catalog.NewInMemoryRepository(catalog.SeedItems())
	ledger := stock.NewLedger(stock.SeedItems())
	floor := tables.NewFloor(tables.SeedTables())

	engine := ticket.NewService(ticket.NewStore(), menuRepo, ledger, floor, nil, taxRate)

	// ───────────────────────── FISCAL WORKER ─────────────────────────
	etimsClient := fiscal.NewClient(tin, branchID, taxRate)
	registrar := fiscal.NewRegistrar(etimsClient, engine)
	engine.SetRegistrar(registrar)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go registrar.Run(ctx)

	// ───────────────────────── REPORTS ─────────────────────────
	reportsService := reports.NewService(engine, authService, ledger)

	// ───────────────────────── ROUTER ─────────────────────────
	r := router.NewRouter(router.Handlers{
		Auth:    auth.NewHandler(authService),
		Catalog: catalog.NewHandler(menuRepo),
		Tables:  tables.NewHandler(floor),
		Tickets: ticket.NewHandler(engine),
		Stock:   stock.NewHandler(ledger),
		Reports: reports.NewHandler(reportsService),
		Suggest: suggest.NewHandler(suggest.NewGeminiClient(), engine),
		Receipt: receipt.NewHandler(engine),
	})

	// ───────────────────────── START ─────────────────────────
	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}

	log.Printf("🚀 POS API running at http://localhost:%s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal("❌ Server failed:", err)
	}
}
