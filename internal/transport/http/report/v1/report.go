package http

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"github.com/ValoreSposi/crm-backend/internal/converter"
	"github.com/ValoreSposi/crm-backend/internal/model"
	reportv1 "github.com/ValoreSposi/crm-backend/pkg/api/report/v1"
	"github.com/ValoreSposi/crm-backend/platform/logger"
)

// Generic messages sent when error details are not exposed.
const (
	msgInventory       = "Errore interno del server"
	msgInventoryExport = "Errore durante l'export"
	msgWarehouses      = "Errore nel recupero magazzini"
	msgSales           = "Errore nel recupero dati vendite"
	msgSalesExport     = "Errore durante l'export vendite"
)

type ReportService interface {
	InventoryReport(ctx context.Context, filter model.InventoryFilter) ([]model.InventoryRow, error)
	SalesReport(ctx context.Context, filter model.SalesFilter) ([]model.SalesRow, error)
	Warehouses(ctx context.Context) ([]model.Warehouse, error)
}

type handler struct {
	svc          ReportService
	exposeErrors bool
	now          func() time.Time
}

func NewReportHandler(service ReportService, exposeErrors bool) *handler {
	return &handler{svc: service, exposeErrors: exposeErrors, now: time.Now}
}

// Routes returns the report API, meant to be mounted under /api.
func (h *handler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/statistiche", h.Inventory)
	r.Get("/export-csv", h.ExportInventory)
	r.Get("/magazzini", h.Warehouses)
	r.Get("/report-vendite", h.Sales)
	r.Get("/export-vendite-csv", h.ExportSales)

	return r
}

func (h *handler) Inventory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	filter := converter.InventoryFilterFromQuery(r.URL.Query().Get("magazzino"))

	rows, err := h.svc.InventoryReport(ctx, filter)
	if err != nil {
		h.fail(w, r, err, msgInventory)
		return
	}

	render.JSON(w, r, reportv1.InventoryResponse{
		Success: true,
		Count:   len(rows),
		Data:    converter.InventoryToAPI(rows),
	})
}

func (h *handler) ExportInventory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	filter := converter.InventoryFilterFromQuery(r.URL.Query().Get("magazzino"))

	rows, err := h.svc.InventoryReport(ctx, filter)
	if err != nil {
		h.fail(w, r, err, msgInventoryExport)
		return
	}

	h.attachment(w, r, converter.InventoryFilename(h.now()), converter.InventoryCSV(rows))
}

func (h *handler) Warehouses(w http.ResponseWriter, r *http.Request) {
	ws, err := h.svc.Warehouses(r.Context())
	if err != nil {
		h.fail(w, r, err, msgWarehouses)
		return
	}

	render.JSON(w, r, reportv1.WarehousesResponse{
		Success: true,
		Data:    converter.WarehousesToAPI(ws),
	})
}

func (h *handler) Sales(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	filter, err := converter.SalesFilterFromQuery(r.URL.Query().Get("anno"))
	if err != nil {
		h.fail(w, r, err, msgSales)
		return
	}

	rows, err := h.svc.SalesReport(ctx, filter)
	if err != nil {
		h.fail(w, r, err, msgSales)
		return
	}

	render.JSON(w, r, reportv1.SalesResponse{
		Success: true,
		Count:   len(rows),
		Data:    converter.SalesToAPI(rows),
	})
}

func (h *handler) ExportSales(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	filter, err := converter.SalesFilterFromQuery(r.URL.Query().Get("anno"))
	if err != nil {
		h.fail(w, r, err, msgSalesExport)
		return
	}

	rows, err := h.svc.SalesReport(ctx, filter)
	if err != nil {
		h.fail(w, r, err, msgSalesExport)
		return
	}

	h.attachment(w, r, converter.SalesFilename(filter.Year, h.now()), converter.SalesCSV(rows))
}

func (h *handler) attachment(w http.ResponseWriter, r *http.Request, filename string, body []byte) {
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	w.WriteHeader(http.StatusOK)

	if _, err := w.Write(body); err != nil {
		logger.Error(r.Context(), "write csv export", logger.String("filename", filename), logger.ErrorF(err))
	}
}

// fail maps err to a status. Validation messages are always returned; other
// failures carry their detail only when exposeErrors is set.
func (h *handler) fail(w http.ResponseWriter, r *http.Request, err error, generic string) {
	status := http.StatusInternalServerError
	msg := generic

	switch {
	case errors.Is(err, model.ErrInvalidArgument):
		status = http.StatusBadRequest // 400
		msg = err.Error()
	case h.exposeErrors:
		msg = err.Error()
	}

	logger.Error(r.Context(), "report request failed",
		logger.String("path", r.URL.Path),
		logger.Int("status", status),
		logger.ErrorF(err),
	)

	render.Status(r, status)
	render.JSON(w, r, reportv1.ErrorResponse{Success: false, Error: msg})
}
