package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/Luiz-H456/botezini/internal/application/analytics"
	"github.com/Luiz-H456/botezini/internal/application/auth"
	"github.com/Luiz-H456/botezini/internal/application/budget"
	"github.com/Luiz-H456/botezini/internal/application/finance"
	"github.com/Luiz-H456/botezini/internal/application/masterdata"
	"github.com/Luiz-H456/botezini/internal/application/order"
	"github.com/Luiz-H456/botezini/internal/application/session"
	"github.com/Luiz-H456/botezini/internal/infrastructure/events"
	infrapdf "github.com/Luiz-H456/botezini/internal/infrastructure/pdf"
	"github.com/Luiz-H456/botezini/internal/infrastructure/postgres"
	"github.com/Luiz-H456/botezini/internal/infrastructure/xmlexport"
	httpRouter "github.com/Luiz-H456/botezini/internal/interfaces/http"
	"github.com/Luiz-H456/botezini/pkg/config"
	"github.com/Luiz-H456/botezini/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("carregar configuração: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicação")

	if err := postgres.RunMigrations(cfg.DB.DSN()); err != nil {
		log.Fatal().Err(err).Msg("migrações do banco")
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexão ao PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	companyRepo := postgres.NewCompanyRepository(pool)
	clientRepo := postgres.NewClientRepository(pool)
	supplierRepo := postgres.NewSupplierRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	budgetRepo := postgres.NewBudgetRepository(pool)
	orderRepo := postgres.NewOrderRepository(pool)
	txRepo := postgres.NewTransactionRepository(pool)
	accountRepo := postgres.NewAccountRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	costCenterRepo := postgres.NewCostCenterRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// Publicador de eventos de produção — opcional, URL vazia desliga.
	var publisher *events.Publisher
	if cfg.AMQP.URL != "" {
		publisher, err = events.NewPublisher(cfg.AMQP.URL, cfg.AMQP.Exchange, cfg.AMQP.Queue, log)
		if err != nil {
			log.Fatal().Err(err).Msg("conexão ao RabbitMQ")
		}
		defer publisher.Close()
	}

	pdfGenerator := infrapdf.NewMarotoPDFGenerator()
	exporter := xmlexport.NewExporter()

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	sessions := session.NewRegistry(authUC.SessionAuthFor)
	masterDataUC := masterdata.NewUseCase(clientRepo, supplierRepo, productRepo, companyRepo)
	budgetUC := budget.NewUseCase(budgetRepo, clientRepo, companyRepo, txRunner, pdfGenerator)
	var stagePublisher order.StagePublisher
	if publisher != nil {
		stagePublisher = publisher
	}
	orderUC := order.NewUseCase(orderRepo, txRepo, accountRepo, stagePublisher)
	financeUC := finance.NewUseCase(txRepo, accountRepo, categoryRepo, costCenterRepo, companyRepo, exporter)
	dashboardUC := analytics.NewDashboardUseCase(txRepo, budgetRepo, orderRepo, companyRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI em local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Botezini API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		if err := pool.Ping(c.Context()); err != nil {
			return c.Status(fiber.StatusServiceUnavailable).
				JSON(fiber.Map{"success": false, "message": "banco indisponível"})
		}
		return c.JSON(fiber.Map{"success": true, "message": cfg.App.Name + " ok"})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		Sessions:    sessions,
		MasterData:  masterDataUC,
		BudgetUC:    budgetUC,
		OrderUC:     orderUC,
		FinanceUC:   financeUC,
		DashboardUC: dashboardUC,
		JWTSecret:   cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("sinal de desligamento recebido, encerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("desligamento do servidor")
	}

	log.Info().Msg("aplicação encerrada")
}
