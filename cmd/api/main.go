package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/tu-usuario/fruit-track/internal/application/auth"
	"github.com/tu-usuario/fruit-track/internal/application/reports"
	"github.com/tu-usuario/fruit-track/internal/application/sales"
	"github.com/tu-usuario/fruit-track/internal/application/stock"
	"github.com/tu-usuario/fruit-track/internal/application/usecase"
	infrapdf "github.com/tu-usuario/fruit-track/internal/infrastructure/pdf"
	"github.com/tu-usuario/fruit-track/internal/infrastructure/postgres"
	"github.com/tu-usuario/fruit-track/internal/infrastructure/redis"
	httpRouter "github.com/tu-usuario/fruit-track/internal/interfaces/http"
	"github.com/tu-usuario/fruit-track/pkg/config"
	"github.com/tu-usuario/fruit-track/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	blocklist, err := redis.NewBlocklist(cfg.Redis.URL)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a Redis")
	}
	defer blocklist.Close()

	userRepo := postgres.NewUserRepository(pool)
	purchaseRepo := postgres.NewPurchaseRepository(pool)
	assignmentRepo := postgres.NewAssignmentRepository(pool)
	saleRepo := postgres.NewSaleRepository(pool)
	movementRepo := postgres.NewStockMovementRepository(pool)
	inventoryRepo := postgres.NewInventoryRepository(pool)
	carExpenseRepo := postgres.NewCarExpenseRepository(pool)
	otherExpenseRepo := postgres.NewOtherExpenseRepository(pool)
	salaryRepo := postgres.NewSalaryRepository(pool)
	messageRepo := postgres.NewMessageRepository(pool)
	reportRepo := postgres.NewReportRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	authUC := auth.NewAuthUseCase(userRepo, blocklist, auth.JWTConfig{
		Secret:   cfg.JWT.Secret,
		ExpHours: cfg.JWT.ExpHours,
		Issuer:   cfg.JWT.Issuer,
	})
	userUC := usecase.NewUserUseCase(userRepo, salaryRepo)
	purchaseUC := usecase.NewPurchaseUseCase(txRunner, purchaseRepo, userRepo)
	assignmentUC := usecase.NewAssignmentUseCase(txRunner, assignmentRepo, saleRepo, userRepo)
	saleUC := sales.NewSaleUseCase(txRunner, saleRepo, userRepo)
	stockUC := stock.NewUseCase(txRunner, movementRepo, inventoryRepo)
	expenseUC := usecase.NewExpenseUseCase(carExpenseRepo, otherExpenseRepo, userRepo)
	salaryUC := usecase.NewSalaryUseCase(salaryRepo, userRepo)
	messageUC := usecase.NewMessageUseCase(messageRepo, userRepo)

	// PDF: reporte financiero descargable desde /api/reports/overview/pdf
	pdfGenerator := infrapdf.NewMarotoPDFGenerator()
	reportUC := reports.NewUseCase(reportRepo, pdfGenerator)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:       authUC,
		UserUC:       userUC,
		PurchaseUC:   purchaseUC,
		AssignmentUC: assignmentUC,
		SaleUC:       saleUC,
		StockUC:      stockUC,
		ExpenseUC:    expenseUC,
		SalaryUC:     salaryUC,
		MessageUC:    messageUC,
		ReportUC:     reportUC,
		Blocklist:    blocklist,
		JWTSecret:    cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
