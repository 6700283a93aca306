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

	"github.com/invorya/backoffice-api/internal/application/catalog"
	"github.com/invorya/backoffice-api/internal/application/metrics"
	"github.com/invorya/backoffice-api/internal/application/statuswatch"
	"github.com/invorya/backoffice-api/internal/application/usecase"
	"github.com/invorya/backoffice-api/internal/application/webhook"
	"github.com/invorya/backoffice-api/internal/infrastructure/changefeed"
	"github.com/invorya/backoffice-api/internal/infrastructure/payment"
	infrapdf "github.com/invorya/backoffice-api/internal/infrastructure/pdf"
	"github.com/invorya/backoffice-api/internal/infrastructure/postgres"
	"github.com/invorya/backoffice-api/internal/infrastructure/storage"
	httpRouter "github.com/invorya/backoffice-api/internal/interfaces/http"
	"github.com/invorya/backoffice-api/internal/interfaces/ws"
	"github.com/invorya/backoffice-api/pkg/config"
	"github.com/invorya/backoffice-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	// Changefeed in-process: los repos de companies/subscriptions publican
	// cada escritura; statuswatch y el hub de websockets la consumen.
	feed := changefeed.New()

	companyRepo := postgres.NewCompanyRepository(pool, feed)
	subscriptionRepo := postgres.NewSubscriptionRepository(pool, feed)
	planRepo := postgres.NewPlanRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	profileRepo := postgres.NewProfileRepository(pool)
	activityRepo := postgres.NewActivityLogRepository(pool)
	ledgerRepo := postgres.NewLedgerRepository(pool)
	bannerRepo := postgres.NewBannerRepository(pool)
	couponRepo := postgres.NewCouponRepository(pool)
	ticketRepo := postgres.NewSupportTicketRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	paymentClient := payment.NewClient(ctx, cfg.Payment)
	bucketClient := storage.NewBucketClient(cfg.Storage.BaseURL, cfg.Storage.Bucket, cfg.Storage.ServiceKey)

	authUC := usecase.NewAuthUseCase(userRepo, cfg.JWT, log)
	companyUC := usecase.NewCompanyUseCase(companyRepo, planRepo, activityRepo, profileRepo, log)
	planUC := usecase.NewPlanUseCase(planRepo, activityRepo, profileRepo, log)
	catalogSync := catalog.NewSyncUseCase(paymentClient, txRunner, log)
	subscriptionUC := usecase.NewSubscriptionUseCase(subscriptionRepo, paymentClient, activityRepo, profileRepo, log)
	teamUC := usecase.NewTeamUseCase(profileRepo, activityRepo, log)
	activityUC := usecase.NewActivityUseCase(activityRepo)
	marketingUC := usecase.NewMarketingUseCase(bannerRepo, couponRepo, bucketClient, activityRepo, profileRepo, log)
	supportUC := usecase.NewSupportUseCase(ticketRepo, activityRepo, profileRepo, log)
	billingUC := usecase.NewBillingUseCase(ledgerRepo, companyRepo, infrapdf.NewMarotoInvoicePDF())
	metricsSvc := metrics.NewService(companyRepo, ledgerRepo, log)
	webhookProc := webhook.NewProcessor(companyRepo, profileRepo, subscriptionRepo, log)

	// Vigilancia de la empresa distinguida (no-op si no está configurada)
	watcher := statuswatch.New(cfg.Watch.CompanyID, cfg.Watch.PollInterval, companyRepo, feed, log)
	if err := watcher.Start(ctx); err != nil {
		log.Fatal().Err(err).Msg("arranque de statuswatch")
	}
	defer watcher.Stop()

	hub := ws.NewHub(feed, log)
	go hub.Run(ctx)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Invorya Backoffice API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:         authUC,
		CompanyUC:      companyUC,
		PlanUC:         planUC,
		CatalogSync:    catalogSync,
		SubscriptionUC: subscriptionUC,
		MetricsSvc:     metricsSvc,
		ActivityUC:     activityUC,
		TeamUC:         teamUC,
		MarketingUC:    marketingUC,
		SupportUC:      supportUC,
		BillingUC:      billingUC,
		WebhookProc:    webhookProc,
		Watcher:        watcher,
		Hub:            hub,
		JWTSecret:      cfg.JWT.Secret,
		WebhookToken:   cfg.Payment.WebhookToken,
		StripeSecret:   cfg.Stripe.WebhookSecret,
		Log:            log,
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

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
