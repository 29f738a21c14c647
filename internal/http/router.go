package http

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"

	"github.com/MrJamesThe3rd/estate/internal/http/apartment"
	"github.com/MrJamesThe3rd/estate/internal/http/auth"
	"github.com/MrJamesThe3rd/estate/internal/http/building"
	"github.com/MrJamesThe3rd/estate/internal/http/contract"
	"github.com/MrJamesThe3rd/estate/internal/http/guard"
	"github.com/MrJamesThe3rd/estate/internal/http/invoice"
	"github.com/MrJamesThe3rd/estate/internal/http/invoicedetail"
	"github.com/MrJamesThe3rd/estate/internal/http/notification"
	"github.com/MrJamesThe3rd/estate/internal/http/offering"
	"github.com/MrJamesThe3rd/estate/internal/http/payment"
	"github.com/MrJamesThe3rd/estate/internal/http/resident"
	"github.com/MrJamesThe3rd/estate/internal/http/respond"
	"github.com/MrJamesThe3rd/estate/internal/http/subscription"
	"github.com/MrJamesThe3rd/estate/internal/metrics"
	roles "github.com/MrJamesThe3rd/estate/internal/resident"
)

type Handlers struct {
	Auth          *auth.Handler
	Residents     *resident.Handler
	Buildings     *building.Handler
	Apartments    *apartment.Handler
	Services      *offering.Handler
	Subscriptions *subscription.Handler
	Invoices      *invoice.Handler
	LineItems     *invoicedetail.Handler
	Payments      *payment.Handler
	Notifications *notification.Handler
	Contracts     *contract.Handler
}

type HealthChecker interface {
	Health(ctx context.Context) error
}

type Options struct {
	Timeout       time.Duration
	CORSOrigins   []string
	AuthRequests  int
	AuthWindow    time.Duration
	Authenticator guard.Authenticator
	Health        HealthChecker
	Metrics       *metrics.Metrics
}

// entity is a collection whose reads are open to any signed-in caller and
// whose writes are admin-only.
type entity interface {
	ReadRoutes(r chi.Router)
	WriteRoutes(r chi.Router)
}

func New(h Handlers, opts Options) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(respond.Recover)
	router.Use(opts.Metrics.Middleware)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   opts.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	router.NotFound(respond.NotFound)
	router.MethodNotAllowed(respond.MethodNotAllowed)

	router.Get("/health", health(opts.Health))
	router.Method(http.MethodGet, "/metrics", opts.Metrics.Handler())

	authenticated := guard.Authenticate(opts.Authenticator)
	admin := guard.RequireRole(roles.RoleAdmin)

	router.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.Timeout(opts.Timeout))

		r.Route("/auth", func(r chi.Router) {
			r.Group(func(r chi.Router) {
				r.Use(httprate.LimitByIP(opts.AuthRequests, opts.AuthWindow))
				r.Use(middleware.AllowContentType("application/json"))
				h.Auth.PublicRoutes(r)
			})

			r.Group(func(r chi.Router) {
				r.Use(authenticated)
				h.Auth.SessionRoutes(r)
			})
		})

		r.Group(func(r chi.Router) {
			r.Use(authenticated)

			r.Route("/residents", func(r chi.Router) {
				h.Residents.SelfRoutes(r)

				r.Group(func(r chi.Router) {
					r.Use(admin)
					h.Residents.AdminRoutes(r)
				})
			})

			mount(r, "/buildings", h.Buildings, admin)
			mount(r, "/apartments", h.Apartments, admin)
			mount(r, "/services", h.Services, admin)
			mount(r, "/subscriptions", h.Subscriptions, admin)
			mount(r, "/invoices", h.Invoices, admin)
			mount(r, "/invoice-details", h.LineItems, admin)
			mount(r, "/payments", h.Payments, admin)
			mount(r, "/notifications", h.Notifications, admin)
			mount(r, "/contracts", h.Contracts, admin)
		})
	})

	return router
}

func mount(r chi.Router, pattern string, e entity, admin func(http.Handler) http.Handler) {
	r.Route(pattern, func(r chi.Router) {
		e.ReadRoutes(r)

		r.Group(func(r chi.Router) {
			r.Use(admin)
			e.WriteRoutes(r)
		})
	})
}

func health(checker HealthChecker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := checker.Health(r.Context()); err != nil {
			respond.Error(w, r, err)
			return
		}

		respond.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}
