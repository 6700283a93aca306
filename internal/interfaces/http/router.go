package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"

	"github.com/invorya/backoffice-api/internal/application/catalog"
	"github.com/invorya/backoffice-api/internal/application/metrics"
	"github.com/invorya/backoffice-api/internal/application/statuswatch"
	"github.com/invorya/backoffice-api/internal/application/usecase"
	"github.com/invorya/backoffice-api/internal/application/webhook"
	"github.com/invorya/backoffice-api/internal/domain/entity"
	"github.com/invorya/backoffice-api/internal/interfaces/ws"
	"github.com/invorya/backoffice-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC         *usecase.AuthUseCase
	CompanyUC      *usecase.CompanyUseCase
	PlanUC         *usecase.PlanUseCase
	CatalogSync    *catalog.SyncUseCase
	SubscriptionUC *usecase.SubscriptionUseCase
	MetricsSvc     *metrics.Service
	ActivityUC     *usecase.ActivityUseCase
	TeamUC         *usecase.TeamUseCase
	MarketingUC    *usecase.MarketingUseCase
	SupportUC      *usecase.SupportUseCase
	BillingUC      *usecase.BillingUseCase
	WebhookProc    *webhook.Processor
	Watcher        *statuswatch.Watcher
	Hub            *ws.Hub
	JWTSecret      string
	WebhookToken   string
	StripeSecret   string
	Log            *logger.Logger
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	// Webhooks (públicos: autenticación propia por token/firma)
	webhookHandler := NewWebhookHandler(deps.WebhookProc, deps.WebhookToken, deps.StripeSecret, deps.Log)
	webhooks := app.Group("/webhooks")
	webhooks.Post("/payment", webhookHandler.Payment)
	webhooks.Post("/stripe", webhookHandler.Stripe)

	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Companies: lectura para todos; mutaciones solo admin/operator
	companies := protected.Group("/companies")
	companyHandler := NewCompanyHandler(deps.CompanyUC)
	companies.Get("/", companyHandler.List)
	companies.Get("/:id", companyHandler.GetByID)
	mutating := RequireRole(entity.RoleAdmin, entity.RoleOperator)
	companies.Post("/", mutating, companyHandler.Create)
	companies.Post("/:id/suspend", mutating, companyHandler.Suspend)
	companies.Post("/:id/reactivate", mutating, companyHandler.Reactivate)
	companies.Put("/:id/plan", mutating, companyHandler.ChangePlan)

	// Plans
	plans := protected.Group("/plans")
	planHandler := NewPlanHandler(deps.PlanUC, deps.CatalogSync)
	plans.Get("/", planHandler.List)
	plans.Put("/:id/limits", mutating, planHandler.UpsertLimits)
	plans.Post("/:id/modules/toggle", mutating, planHandler.ToggleModule)
	plans.Post("/sync", RequireRole(entity.RoleAdmin), planHandler.SyncCatalog)

	// Subscriptions
	subs := protected.Group("/subscriptions")
	subscriptionHandler := NewSubscriptionHandler(deps.SubscriptionUC)
	subs.Get("/", subscriptionHandler.List)
	subs.Post("/:cnpj/force-billing", mutating, subscriptionHandler.ForceBilling)
	subs.Post("/:cnpj/block", mutating, subscriptionHandler.Block)
	subs.Post("/:cnpj/reactivate", mutating, subscriptionHandler.Reactivate)

	// Metrics
	metricsHandler := NewMetricsHandler(deps.MetricsSvc)
	protected.Get("/metrics/summary", metricsHandler.Summary)

	// Activity log
	activityHandler := NewActivityHandler(deps.ActivityUC)
	protected.Get("/activity", activityHandler.List)

	// Team (solo admin)
	team := protected.Group("/team", RequireRole(entity.RoleAdmin))
	teamHandler := NewTeamHandler(deps.TeamUC)
	team.Get("/", teamHandler.List)
	team.Post("/", teamHandler.Provision)

	// Marketing
	marketing := protected.Group("/marketing")
	marketingHandler := NewMarketingHandler(deps.MarketingUC)
	marketing.Get("/banners", marketingHandler.ListBanners)
	marketing.Post("/banners", mutating, marketingHandler.CreateBanner)
	marketing.Post("/banners/:id/toggle", mutating, marketingHandler.ToggleBanner)
	marketing.Delete("/banners/:id", mutating, marketingHandler.DeleteBanner)
	marketing.Get("/coupons", marketingHandler.ListCoupons)
	marketing.Post("/coupons", mutating, marketingHandler.CreateCoupon)
	marketing.Delete("/coupons/:id", mutating, marketingHandler.DeleteCoupon)

	// Support
	support := protected.Group("/support")
	supportHandler := NewSupportHandler(deps.SupportUC)
	support.Get("/tickets", supportHandler.List)
	support.Put("/tickets/:id/status", mutating, supportHandler.UpdateStatus)

	// Billing (comprobante PDF)
	billingHandler := NewBillingHandler(deps.BillingUC)
	protected.Get("/invoices/:id/pdf", billingHandler.InvoicePDF)

	// Statuswatch
	statusWatchHandler := NewStatusWatchHandler(deps.Watcher)
	protected.Get("/status-watch", statusWatchHandler.Current)

	// Changefeed por websocket (el token viaja en el handshake)
	app.Get("/ws", AuthMiddleware(deps.JWTSecret), adaptor.HTTPHandlerFunc(deps.Hub.HandleWebSocket))
}
