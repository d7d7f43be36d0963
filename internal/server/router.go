package server

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/maxandsherry/storefront/internal/catalog"
	"github.com/maxandsherry/storefront/internal/orders"
	"github.com/maxandsherry/storefront/internal/telemetry"
)

type Deps struct {
	Catalog        *catalog.Handler
	Orders         *orders.Handler
	Metrics        http.Handler
	Logger         *slog.Logger
	ServiceName    string
	ServiceVersion string
	Edition        string
	Now            func() time.Time
}

// NewRouter registers every API route and wraps the mux with CORS, request
// logging and tracing.
func NewRouter(d Deps) http.Handler {
	now := d.Now
	if now == nil {
		now = time.Now
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/menu", telemetry.WithHTTPRoute(d.Catalog.HandleList))
	mux.HandleFunc("GET /api/menu/{id}", telemetry.WithHTTPRoute(d.Catalog.HandleGet))
	mux.HandleFunc("GET /api/menu/category/{category}", telemetry.WithHTTPRoute(d.Catalog.HandleListByCategory))

	mux.HandleFunc("POST /api/orders", telemetry.WithHTTPRoute(d.Orders.HandleCreate))
	mux.HandleFunc("GET /api/orders/{id}", telemetry.WithHTTPRoute(d.Orders.HandleGet))
	mux.HandleFunc("GET /api/orders/customer/{phone}", telemetry.WithHTTPRoute(d.Orders.HandleListByCustomer))
	mux.HandleFunc("PATCH /api/orders/{id}/status", telemetry.WithHTTPRoute(d.Orders.HandleUpdateStatus))

	mux.HandleFunc("GET /api/health", telemetry.WithHTTPRoute(handleHealth(d.Logger, d.ServiceVersion, d.Edition, now)))
	mux.HandleFunc("GET /{$}", telemetry.WithHTTPRoute(handleRoot(d.Logger, d.ServiceVersion, d.Edition)))

	if d.Metrics != nil {
		mux.Handle("GET /metrics", d.Metrics)
	}

	var handler http.Handler = mux
	handler = RequestLogger(d.Logger)(handler)
	handler = CORS(handler)
	return telemetry.NewHandler(handler, d.ServiceName)
}
