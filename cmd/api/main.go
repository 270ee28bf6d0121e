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

	"github.com/gestorone/estoque-api/internal/application/analytics"
	"github.com/gestorone/estoque-api/internal/application/assistant"
	"github.com/gestorone/estoque-api/internal/application/auth"
	"github.com/gestorone/estoque-api/internal/application/billing"
	"github.com/gestorone/estoque-api/internal/application/stock"
	infraai "github.com/gestorone/estoque-api/internal/infrastructure/ai"
	infrapdf "github.com/gestorone/estoque-api/internal/infrastructure/pdf"
	"github.com/gestorone/estoque-api/internal/infrastructure/postgres"
	httpRouter "github.com/gestorone/estoque-api/internal/interfaces/http"
	"github.com/gestorone/estoque-api/internal/seed"
	"github.com/gestorone/estoque-api/pkg/config"
	"github.com/gestorone/estoque-api/pkg/logger"
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

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexão ao PostgreSQL")
	}
	defer pool.Close()

	store := postgres.NewSnapshotStore(pool)
	if err := store.EnsureSchema(ctx); err != nil {
		log.Fatal().Err(err).Msg("preparar tabela de snapshots")
	}

	seedData, err := seed.Collections()
	if err != nil {
		log.Fatal().Err(err).Msg("montar semente")
	}

	// Estado em memória: semente ou snapshots persistidos, conforme a
	// versão do esquema gravada.
	stockSvc := stock.NewService(store, seedData, log)
	stockSvc.Load(ctx)

	oracle := infraai.NewGeminiOracle(cfg.AI, log)
	assistantSvc := assistant.NewService(oracle, stockSvc, log)
	analyticsSvc := analytics.NewService(stockSvc)
	billingSvc := billing.NewService(stockSvc, infrapdf.NewMarotoInvoiceGenerator(), log)
	authSvc := auth.NewService(stockSvc, cfg.JWT, log)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 60, // chamadas ao oráculo demoram
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Gestor One API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		StockSvc:     stockSvc,
		AuthSvc:      authSvc,
		AnalyticsSvc: analyticsSvc,
		AssistantSvc: assistantSvc,
		BillingSvc:   billingSvc,
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

	log.Info().Msg("sinal de desligamento recebido, encerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("desligamento do servidor")
	}

	log.Info().Msg("aplicação encerrada")
}
