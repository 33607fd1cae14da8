package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Luiz-H456/botezini/internal/application/analytics"
	"github.com/Luiz-H456/botezini/internal/application/auth"
	"github.com/Luiz-H456/botezini/internal/application/budget"
	"github.com/Luiz-H456/botezini/internal/application/finance"
	"github.com/Luiz-H456/botezini/internal/application/masterdata"
	"github.com/Luiz-H456/botezini/internal/application/order"
	"github.com/Luiz-H456/botezini/internal/application/session"
	"github.com/Luiz-H456/botezini/internal/domain/entity"
)

// RouterDeps dependências do router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	Sessions    *session.Registry
	MasterData  *masterdata.UseCase
	BudgetUC    *budget.UseCase
	OrderUC     *order.UseCase
	FinanceUC   *finance.UseCase
	DashboardUC *analytics.DashboardUseCase
	JWTSecret   string
}

// Router registra as rotas da API.
//
// A política de papéis espelha a guarda de sessão: admin e manager alcançam
// tudo; factory só as rotas de produção e de sessão. O RequireRole nas rotas
// é a segunda camada do confinamento, a primeira vive na guarda.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	backoffice := []string{entity.RoleAdmin, entity.RoleManager}

	// Auth: login público; cadastro só por admin.
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup := api.Group("/auth")
	authGroup.Post("/login", authHandler.Login)

	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	protected.Post("/auth/register", RequireRole(entity.RoleAdmin), authHandler.Register)
	protected.Get("/auth/me", authHandler.Me)

	// Sessão (qualquer papel autenticado)
	sessionHandler := NewSessionHandler(deps.Sessions)
	sess := protected.Group("/session")
	sess.Get("/", sessionHandler.Get)
	sess.Post("/check", sessionHandler.Check)
	sess.Post("/navigate", sessionHandler.Navigate)
	sess.Post("/logout", sessionHandler.Logout)

	// Cadastros (backoffice)
	md := NewMasterDataHandler(deps.MasterData)
	clients := protected.Group("/clients", RequireRole(backoffice...))
	clients.Post("/", md.CreateClient)
	clients.Get("/", md.ListClients)
	clients.Get("/:id", md.GetClient)
	clients.Put("/:id", md.UpdateClient)
	clients.Delete("/:id", md.DeleteClient)

	suppliers := protected.Group("/suppliers", RequireRole(backoffice...))
	suppliers.Post("/", md.CreateSupplier)
	suppliers.Get("/", md.ListSuppliers)
	suppliers.Put("/:id", md.UpdateSupplier)
	suppliers.Delete("/:id", md.DeleteSupplier)

	products := protected.Group("/products", RequireRole(backoffice...))
	products.Post("/", md.CreateProduct)
	products.Get("/", md.ListProducts)
	products.Get("/:id", md.GetProduct)
	products.Put("/:id", md.UpdateProduct)
	products.Delete("/:id", md.DeleteProduct)

	company := protected.Group("/company", RequireRole(backoffice...))
	company.Get("/", md.GetCompanyProfile)
	company.Put("/", md.SaveCompanyProfile)

	// Orçamentos (backoffice)
	budgetHandler := NewBudgetHandler(deps.BudgetUC)
	budgets := protected.Group("/budgets", RequireRole(backoffice...))
	budgets.Post("/", budgetHandler.Create)
	budgets.Get("/", budgetHandler.List)
	budgets.Get("/:id", budgetHandler.GetByID)
	budgets.Patch("/:id/status", budgetHandler.UpdateStatus)
	budgets.Post("/:id/convert", budgetHandler.Convert)
	budgets.Get("/:id/pdf", budgetHandler.PDF)
	budgets.Delete("/:id", budgetHandler.Delete)

	// Pedidos (backoffice)
	orderHandler := NewOrderHandler(deps.OrderUC)
	orders := protected.Group("/orders", RequireRole(backoffice...))
	orders.Get("/", orderHandler.List)
	orders.Get("/:id", orderHandler.GetByID)
	orders.Post("/:id/delivered", orderHandler.MarkDelivered)
	orders.Post("/:id/payments", orderHandler.RegisterPayment)

	// Produção: única área aberta ao papel factory.
	production := protected.Group("/production", RequireRole(entity.RoleAdmin, entity.RoleManager, entity.RoleFactory))
	production.Get("/board", orderHandler.Board)
	production.Post("/orders/:id/stage", orderHandler.AdvanceStage)

	// Financeiro (backoffice)
	financeHandler := NewFinanceHandler(deps.FinanceUC)
	fin := protected.Group("/finance", RequireRole(backoffice...))
	fin.Post("/transactions", financeHandler.CreateTransaction)
	fin.Get("/transactions", financeHandler.ListTransactions)
	fin.Get("/transactions/export", financeHandler.Export)
	fin.Get("/transactions/:id", financeHandler.GetTransaction)
	fin.Post("/transactions/:id/pay", financeHandler.MarkPaid)
	fin.Delete("/transactions/:id", financeHandler.DeleteTransaction)
	fin.Delete("/recurrences/:id", financeHandler.DeleteRecurrence)
	fin.Post("/accounts", financeHandler.CreateAccount)
	fin.Get("/accounts", financeHandler.ListAccounts)
	fin.Post("/categories", financeHandler.CreateCategory)
	fin.Get("/categories", financeHandler.ListCategories)
	fin.Delete("/categories/:id", financeHandler.DeleteCategory)
	fin.Post("/cost-centers", financeHandler.CreateCostCenter)
	fin.Get("/cost-centers", financeHandler.ListCostCenters)

	// Dashboard (backoffice)
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	protected.Get("/dashboard", RequireRole(backoffice...), dashboardHandler.Summary)
}
