package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/apexmotors/dealerdesk-backend/api/controllers"
	"github.com/apexmotors/dealerdesk-backend/api/middleware"
	"github.com/apexmotors/dealerdesk-backend/internal/directory"
	"github.com/apexmotors/dealerdesk-backend/internal/financing"
	"github.com/apexmotors/dealerdesk-backend/internal/inventory"
	"github.com/apexmotors/dealerdesk-backend/internal/reviews"
	"github.com/apexmotors/dealerdesk-backend/internal/sales"
	"github.com/apexmotors/dealerdesk-backend/internal/servicing"
	"github.com/apexmotors/dealerdesk-backend/pkg/config"
	"github.com/apexmotors/dealerdesk-backend/pkg/db"
	"github.com/apexmotors/dealerdesk-backend/pkg/logger"
	"github.com/apexmotors/dealerdesk-backend/pkg/metrics"
)

// Services bundles the domain services the router exposes.
type Services struct {
	Inventory inventory.Service
	Reviews   reviews.Service
	Sales     sales.Service
	Financing financing.Service
	Servicing servicing.Service
	Directory directory.Service
}

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	dbP db.Pinger,
	registry *prometheus.Registry,
	svcs Services,
) http.Handler {
	r := chi.NewRouter()

	var httpMetrics *metrics.HTTPMetrics
	if registry != nil {
		httpMetrics = metrics.NewHTTPMetrics(registry)
	}

	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.Metrics(httpMetrics),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, dbP, logg))
	})

	if registry != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/vehicles", func(r chi.Router) {
			r.Get("/", controllers.VehicleSearch(svcs.Inventory, logg))
			r.Post("/", controllers.VehicleCreate(svcs.Inventory, logg))
			r.Route("/{vin}", func(r chi.Router) {
				r.Get("/", controllers.VehicleDetail(svcs.Inventory, logg))
				r.Get("/reviews", controllers.VehicleReviews(svcs.Reviews, logg))
				r.Get("/service-history", controllers.VehicleServiceHistory(svcs.Servicing, logg))
			})
		})

		r.Get("/models", controllers.ModelList(svcs.Inventory, logg))
		r.Get("/dealerships", controllers.DealershipList(svcs.Inventory, logg))

		r.Route("/transfers", func(r chi.Router) {
			r.Get("/", controllers.TransferList(svcs.Inventory, logg))
			r.Post("/", controllers.TransferCreate(svcs.Inventory, logg))
		})

		r.Post("/reviews", controllers.ReviewCreate(svcs.Reviews, logg))

		r.Route("/sales", func(r chi.Router) {
			r.Get("/", controllers.SaleList(svcs.Sales, logg))
			r.Post("/", controllers.SaleCreate(svcs.Sales, logg))
		})
		r.Route("/trade-ins", func(r chi.Router) {
			r.Get("/", controllers.TradeInList(svcs.Sales, logg))
			r.Post("/", controllers.TradeInCreate(svcs.Sales, logg))
		})

		r.Get("/lenders", controllers.LenderList(svcs.Financing, logg))
		r.Get("/financing-plans", controllers.PlanList(svcs.Financing, logg))
		r.Route("/loans", func(r chi.Router) {
			r.Get("/", controllers.LoanList(svcs.Financing, logg))
			r.Post("/", controllers.LoanCreate(svcs.Financing, logg))
		})

		r.Post("/service-appointments", controllers.AppointmentCreate(svcs.Servicing, logg))
		r.Route("/service-invoices", func(r chi.Router) {
			r.Get("/", controllers.InvoiceList(svcs.Servicing, logg))
			r.Post("/items", controllers.ItemCreate(svcs.Servicing, logg))
		})

		r.Get("/customers", controllers.CustomerList(svcs.Directory, logg))
		r.Get("/employees", controllers.EmployeeList(svcs.Directory, logg))
	})

	return r
}
