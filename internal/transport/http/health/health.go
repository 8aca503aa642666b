package health

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/render"

	reportv1 "github.com/ValoreSposi/crm-backend/pkg/api/report/v1"
	"github.com/ValoreSposi/crm-backend/platform/logger"
)

const pingTimeout = 5 * time.Second

type Pinger interface {
	Ping(ctx context.Context) error
}

// Info describes the running instance on the status page.
type Info struct {
	Environment        string
	DatabaseConfigured bool
}

type handler struct {
	pinger Pinger
	info   Info
	now    func() time.Time
}

func NewHealthHandler(pinger Pinger, info Info) *handler {
	return &handler{pinger: pinger, info: info, now: time.Now}
}

// HealthCheck is the liveness probe. It never touches the database.
func HealthCheck(w http.ResponseWriter, r *http.Request) {
	if _, err := w.Write([]byte("SERVING")); err != nil {
		logger.Error(r.Context(), "health check", logger.ErrorF(err))
	}
}

// Status serves the service description at the root path.
func (h *handler) Status(w http.ResponseWriter, r *http.Request) {
	db := "not configured"
	if h.info.DatabaseConfigured {
		db = "configured"
	}

	render.JSON(w, r, reportv1.StatusResponse{
		Status:      "online",
		Message:     "CRM Export API - Valore Sposi",
		Environment: h.info.Environment,
		Database:    db,
		Endpoints: map[string]string{
			"statistiche":      "/api/statistiche",
			"exportCSV":        "/api/export-csv",
			"magazzini":        "/api/magazzini",
			"reportVendite":    "/api/report-vendite",
			"exportVenditeCSV": "/api/export-vendite-csv",
			"health":           "/api/health",
		},
	})
}

// Health pings the database and reports the outcome. The status code is 200
// either way; callers read the body.
func (h *handler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), pingTimeout)
	defer cancel()

	res := reportv1.HealthResponse{
		Status:    "healthy",
		Database:  "connected",
		Timestamp: h.now().UTC().Format("2006-01-02T15:04:05.000Z07:00"),
	}
	if err := h.pinger.Ping(ctx); err != nil {
		logger.Warn(ctx, "database ping failed", logger.ErrorF(err))
		res.Status = "unhealthy"
		res.Database = "disconnected"
	}

	render.JSON(w, r, res)
}
