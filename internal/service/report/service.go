package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/ValoreSposi/crm-backend/internal/lookup"
	"github.com/ValoreSposi/crm-backend/internal/model"
	"github.com/ValoreSposi/crm-backend/platform/logger"
)

// Store hands out a read session for the duration of fn and releases it on
// every exit path.
type Store interface {
	Snapshot(ctx context.Context, fn func(ctx context.Context, src lookup.Source) error) error
}

type service struct {
	store         Store
	cols          model.Collections
	readDBTimeout time.Duration
}

func NewReportService(
	store Store,
	cols model.Collections,
	readDBTimeout time.Duration,
) *service {
	return &service{store: store, cols: cols, readDBTimeout: readDBTimeout}
}

func (s *service) InventoryReport(
	ctx context.Context,
	filter model.InventoryFilter,
) ([]model.InventoryRow, error) {
	const op = "report.service.InventoryReport"
	log := logger.With(
		logger.String("report_id", uuid.NewString()),
		logger.String("warehouse", lo.Ternary(filter.All(), "all", filter.WarehouseID)),
	)

	var warehouse *bson.ObjectID
	if !filter.All() {
		id, err := bson.ObjectIDFromHex(strings.TrimSpace(filter.WarehouseID))
		if err != nil {
			log.Error(ctx, "validation: malformed warehouse id", logger.ErrorF(err))
			return nil, fmt.Errorf("%s: %w",
				op, errors.Join(model.ErrInvalidArgument, fmt.Errorf("warehouse id %q is not an object id", filter.WarehouseID)))
		}
		warehouse = &id
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	start := time.Now()

	var rows []model.InventoryRow
	err := s.store.Snapshot(ctx, func(ctx context.Context, src lookup.Source) error {
		var err error
		rows, err = buildInventory(ctx, src, s.cols, warehouse)
		return err
	})
	if err != nil {
		log.Error(ctx, "build inventory report", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	log.Info(ctx, "inventory report built",
		logger.Int("rows", len(rows)),
		logger.Duration("took", time.Since(start)),
	)

	return rows, nil
}

func (s *service) SalesReport(
	ctx context.Context,
	filter model.SalesFilter,
) ([]model.SalesRow, error) {
	const op = "report.service.SalesReport"
	log := logger.With(
		logger.String("report_id", uuid.NewString()),
		logger.Int("year", filter.Year),
	)

	if !filter.All() && (filter.Year < 1000 || filter.Year > 9999) {
		log.Error(ctx, "validation: year out of range")
		return nil, fmt.Errorf("%s: %w",
			op, errors.Join(model.ErrInvalidArgument, fmt.Errorf("year %d must have four digits", filter.Year)))
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	start := time.Now()

	var rows []model.SalesRow
	err := s.store.Snapshot(ctx, func(ctx context.Context, src lookup.Source) error {
		var err error
		rows, err = buildSales(ctx, src, s.cols, filter.Year)
		return err
	})
	if err != nil {
		log.Error(ctx, "build sales report", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	log.Info(ctx, "sales report built",
		logger.Int("rows", len(rows)),
		logger.Duration("took", time.Since(start)),
	)

	return rows, nil
}

func (s *service) Warehouses(ctx context.Context) ([]model.Warehouse, error) {
	const op = "report.service.Warehouses"

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	var out []model.Warehouse
	err := s.store.Snapshot(ctx, func(ctx context.Context, src lookup.Source) error {
		docs, err := src.All(ctx, s.cols.Warehouse)
		if err != nil {
			return err
		}

		out = make([]model.Warehouse, 0, len(docs))
		for _, doc := range docs {
			out = append(out, warehouseFromDocument(doc))
		}
		return nil
	})
	if err != nil {
		logger.Error(ctx, "list warehouses", logger.ErrorF(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return out, nil
}

func warehouseFromDocument(doc bson.M) model.Warehouse {
	name := lookup.Text(doc, "nomeMagazzino", "")
	if name == "" {
		name = model.UnnamedWarehouse
	}
	return model.Warehouse{
		ID:       lookup.Text(doc, "_id", ""),
		Name:     name,
		Location: lookup.Text(doc, "ubicazioneMagazzino", ""),
	}
}

func (s *service) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.readDBTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.readDBTimeout)
}
