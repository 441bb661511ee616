package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tu-usuario/fruit-track/internal/application/auth"
	"github.com/tu-usuario/fruit-track/internal/application/reports"
	"github.com/tu-usuario/fruit-track/internal/application/sales"
	"github.com/tu-usuario/fruit-track/internal/application/stock"
	"github.com/tu-usuario/fruit-track/internal/application/usecase"
	"github.com/tu-usuario/fruit-track/internal/domain/entity"
	"github.com/tu-usuario/fruit-track/internal/domain/repository"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC       *auth.AuthUseCase
	UserUC       *usecase.UserUseCase
	PurchaseUC   *usecase.PurchaseUseCase
	AssignmentUC *usecase.AssignmentUseCase
	SaleUC       *sales.SaleUseCase
	StockUC      *stock.UseCase
	ExpenseUC    *usecase.ExpenseUseCase
	SalaryUC     *usecase.SalaryUseCase
	MessageUC    *usecase.MessageUseCase
	ReportUC     *reports.UseCase
	Blocklist    repository.TokenBlocklist
	JWTSecret    string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Use(MetricsMiddleware())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token no revocado)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret, deps.Blocklist))
	authGroup.Post("/logout", AuthMiddleware(deps.JWTSecret, deps.Blocklist), authHandler.Logout)
	authGroup.Get("/me", AuthMiddleware(deps.JWTSecret, deps.Blocklist), authHandler.Me)

	ceoOnly := RequireRole(entity.RoleCEO)
	ceoAdmin := RequireRole(entity.RoleCEO, entity.RoleAdmin)

	// Users (CEO/Admin; cambio de rol solo CEO)
	users := protected.Group("/users", ceoAdmin)
	userHandler := NewUserHandler(deps.UserUC)
	users.Post("/", userHandler.Create)
	users.Get("/", userHandler.List)
	users.Get("/:id", userHandler.Get)
	users.Put("/:id", userHandler.Update)
	users.Put("/:id/role", ceoOnly, userHandler.ChangeRole)
	users.Put("/:id/salary", userHandler.UpdateSalary)
	users.Delete("/:id", ceoOnly, userHandler.Deactivate)
	users.Post("/:id/pay-salary", userHandler.PaySalary)

	// Purchases (purchaser y CEO; edición/borrado solo CEO)
	purchases := protected.Group("/purchases", RequireRole(entity.RoleCEO, entity.RolePurchaser))
	purchaseHandler := NewPurchaseHandler(deps.PurchaseUC)
	purchases.Post("/", purchaseHandler.Create)
	purchases.Get("/", purchaseHandler.List)
	purchases.Put("/:id", ceoOnly, purchaseHandler.Update)
	purchases.Delete("/:id", ceoOnly, purchaseHandler.Delete)

	// Assignments (crear/borrar solo CEO; listar también sellers)
	assignments := protected.Group("/assignments", RequireRole(entity.RoleCEO, entity.RoleSeller))
	assignmentHandler := NewAssignmentHandler(deps.AssignmentUC)
	assignments.Post("/", ceoOnly, assignmentHandler.Create)
	assignments.Get("/", assignmentHandler.List)
	assignments.Delete("/:id", ceoOnly, assignmentHandler.Delete)

	// Sales (seller y CEO; clear y summary solo CEO)
	salesGroup := protected.Group("/sales", RequireRole(entity.RoleCEO, entity.RoleSeller))
	saleHandler := NewSaleHandler(deps.SaleUC)
	salesGroup.Post("/", saleHandler.Record)
	salesGroup.Get("/", saleHandler.List)
	salesGroup.Get("/summary", ceoOnly, saleHandler.Summary)
	salesGroup.Delete("/clear", ceoOnly, saleHandler.Clear)

	// Stock e inventario (bodeguero y CEO; clear solo CEO)
	stockGroup := protected.Group("/stock", RequireRole(entity.RoleCEO, entity.RoleStoreKeeper))
	stockHandler := NewStockHandler(deps.StockUC)
	stockGroup.Post("/movements", stockHandler.RecordMovement)
	stockGroup.Get("/movements", stockHandler.ListMovements)
	stockGroup.Get("/remaining", stockHandler.RemainingStock)
	stockGroup.Delete("/movements/clear", ceoOnly, stockHandler.ClearMovements)

	inventory := protected.Group("/inventory", RequireRole(entity.RoleCEO, entity.RoleStoreKeeper))
	inventory.Post("/", stockHandler.CreateInventory)
	inventory.Get("/", stockHandler.ListInventory)

	// Expenses (vehículo: driver y CEO; generales y aprobación: CEO/Admin)
	expenses := protected.Group("/expenses")
	expenseHandler := NewExpenseHandler(deps.ExpenseUC)
	expenses.Post("/car", RequireRole(entity.RoleCEO, entity.RoleDriver), expenseHandler.CreateCar)
	expenses.Get("/car", RequireRole(entity.RoleCEO, entity.RoleDriver), expenseHandler.ListCar)
	expenses.Put("/car/:id/approve", ceoAdmin, expenseHandler.ApproveCar)
	expenses.Post("/other", ceoAdmin, expenseHandler.CreateOther)
	expenses.Get("/other", ceoAdmin, expenseHandler.ListOther)
	expenses.Put("/other/:id/approve", ceoAdmin, expenseHandler.ApproveOther)

	// Salaries (CEO/Admin)
	salaries := protected.Group("/salaries", ceoAdmin)
	salaryHandler := NewSalaryHandler(deps.SalaryUC)
	salaries.Post("/", salaryHandler.Create)
	salaries.Get("/", salaryHandler.List)
	salaries.Post("/payments", salaryHandler.CreatePayment)
	salaries.Get("/payments", salaryHandler.ListPayments)
	salaries.Put("/payments/:id/toggle-status", salaryHandler.ToggleStatus)

	// Messages (todos los roles autenticados)
	messages := protected.Group("/messages")
	messageHandler := NewMessageHandler(deps.MessageUC)
	messages.Post("/", messageHandler.Send)
	messages.Get("/", messageHandler.Inbox)
	messages.Put("/:id/read", messageHandler.MarkRead)

	// Reports (solo CEO)
	reportsGroup := protected.Group("/reports", ceoOnly)
	reportHandler := NewReportHandler(deps.ReportUC)
	reportsGroup.Get("/overview", reportHandler.Overview)
	reportsGroup.Get("/overview/pdf", reportHandler.OverviewPDF)
	reportsGroup.Get("/revenue-by-fruit", reportHandler.RevenueByFruit)
	reportsGroup.Get("/monthly-trends", reportHandler.MonthlyTrends)
	reportsGroup.Get("/expenses-summary", reportHandler.ExpensesSummary)
}
