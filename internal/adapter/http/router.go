package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/iho/boki/internal/adapter/http/handler"
	"github.com/iho/boki/internal/adapter/http/middleware"
	"github.com/iho/boki/internal/domain"
	"github.com/iho/boki/internal/usecase"
)

// RouterConfig holds dependencies for the router.
type RouterConfig struct {
	AccountHandler   *handler.AccountHandler
	JournalHandler   *handler.JournalHandler
	TemplateHandler  *handler.TemplateHandler
	SummaryHandler   *handler.SummaryHandler
	HealthHandler    *handler.HealthHandler
	IdempotencyStore usecase.IdempotencyStore
	IdempotencyTTL   time.Duration
	RateLimiter      *middleware.RateLimiter
	Logger           zerolog.Logger
}

// NewRouter creates a new HTTP router.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewLoggingMiddleware(cfg.Logger).Wrap)
	r.Use(middleware.Metrics)
	r.Use(middleware.Recovery)
	if cfg.RateLimiter != nil {
		r.Use(cfg.RateLimiter.Limit)
	}

	// Health and observability endpoints
	r.Get("/health", cfg.HealthHandler.Liveness)
	r.Get("/ready", cfg.HealthHandler.Readiness)
	r.Handle("/metrics", promhttp.Handler())

	// API v1
	r.Route("/api/v1", func(r chi.Router) {
		if cfg.IdempotencyStore != nil {
			idempotencyMiddleware := middleware.NewIdempotencyMiddleware(cfg.IdempotencyStore, cfg.IdempotencyTTL)
			r.Use(idempotencyMiddleware.Wrap)
		}

		// Chart of accounts
		r.Route("/accounts", func(r chi.Router) {
			r.Get("/", cfg.AccountHandler.List)
			r.Get("/{name}", cfg.AccountHandler.Get)
			r.Post("/", cfg.AccountHandler.Create)
			r.Post("/asset", cfg.AccountHandler.CreateTyped(domain.Asset))
			r.Post("/liability", cfg.AccountHandler.CreateTyped(domain.Liability))
			r.Post("/equity", cfg.AccountHandler.CreateTyped(domain.Equity))
			r.Post("/income", cfg.AccountHandler.CreateTyped(domain.Income))
			r.Post("/expense", cfg.AccountHandler.CreateTyped(domain.Expense))
			r.Post("/util_debit", cfg.AccountHandler.CreateTyped(domain.UtilDebit))
			r.Post("/util_credit", cfg.AccountHandler.CreateTyped(domain.UtilCredit))
		})

		// Journal and its templates
		r.Route("/journal", func(r chi.Router) {
			r.Get("/", cfg.JournalHandler.ShowCurrentMonth)
			r.Post("/", cfg.JournalHandler.Post)
			r.Get("/{year}/{month}", cfg.JournalHandler.Show)

			r.Route("/buy", func(r chi.Router) {
				r.Post("/by_owner", cfg.TemplateHandler.Buy(usecase.PurchaseByOwner))
				r.Post("/by_bank", cfg.TemplateHandler.Buy(usecase.PurchaseByBank))
				r.Post("/by_kaikakekin", cfg.TemplateHandler.Buy(usecase.PurchaseByPayable))
				r.Post("/by_maebaraikin", cfg.TemplateHandler.Buy(usecase.PurchaseByPrepaid))
			})

			r.Route("/sell", func(r chi.Router) {
				r.Post("/by_bank", cfg.TemplateHandler.Sell(usecase.SaleByBank))
				r.Post("/by_urikakekin", cfg.TemplateHandler.Sell(usecase.SaleByReceivable))
				r.Post("/by_maeukekin", cfg.TemplateHandler.Sell(usecase.SaleByAdvance))
			})

			r.Route("/bank", func(r chi.Router) {
				r.Post("/to_owner", cfg.TemplateHandler.Bank(domain.Credit))
				r.Post("/from_owner", cfg.TemplateHandler.Bank(domain.Debit))
			})

			r.Route("/from_prev", func(r chi.Router) {
				r.Post("/debit", cfg.TemplateHandler.FromPrev(domain.Debit))
				r.Post("/credit", cfg.TemplateHandler.FromPrev(domain.Credit))
			})

			r.Route("/kessan", func(r chi.Router) {
				r.Post("/to_misyuukin", cfg.TemplateHandler.KessanAccrual(domain.Debit))
				r.Post("/to_mibaraikin", cfg.TemplateHandler.KessanAccrual(domain.Credit))
				r.Post("/sousai_syouhizei", cfg.TemplateHandler.KessanOffset(usecase.OffsetConsumptionTax))
				r.Post("/sousai_owner", cfg.TemplateHandler.KessanOffset(usecase.OffsetOwner))
			})

			r.Route("/soneki", func(r chi.Router) {
				r.Post("/income", cfg.TemplateHandler.Soneki(usecase.SonekiIncome))
				r.Post("/expense", cfg.TemplateHandler.Soneki(usecase.SonekiExpense))
			})

			r.Route("/to_next", func(r chi.Router) {
				r.Post("/to_shihonkin_plus", cfg.TemplateHandler.ToNextCapital(domain.Credit))
				r.Post("/to_shihonkin_minus", cfg.TemplateHandler.ToNextCapital(domain.Debit))
				r.Post("/debit", cfg.TemplateHandler.ToNext(domain.Debit))
				r.Post("/credit", cfg.TemplateHandler.ToNext(domain.Credit))
			})
		})

		// Trial-balance summaries, one route per lifecycle scope
		r.Route("/summary", func(r chi.Router) {
			r.Get("/{year}", cfg.SummaryHandler.Year(domain.InTerm))
			r.Get("/{year}/from_prev", cfg.SummaryHandler.Year(domain.FromPrev))
			r.Get("/{year}/kessan", cfg.SummaryHandler.Year(domain.Kessan))
			r.Get("/{year}/soneki", cfg.SummaryHandler.Year(domain.Soneki))
			r.Get("/{year}/to_next", cfg.SummaryHandler.Year(domain.ToNext))
			r.Get("/{year}/{month}", cfg.SummaryHandler.Month(domain.InTerm))
			r.Get("/{year}/{month}/from_prev", cfg.SummaryHandler.Month(domain.FromPrev))
			r.Get("/{year}/{month}/kessan", cfg.SummaryHandler.Month(domain.Kessan))
			r.Get("/{year}/{month}/soneki", cfg.SummaryHandler.Month(domain.Soneki))
			r.Get("/{year}/{month}/to_next", cfg.SummaryHandler.Month(domain.ToNext))
		})
	})

	return r
}
