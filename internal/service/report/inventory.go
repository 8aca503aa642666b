package service

import (
	"cmp"
	"context"
	"slices"

	"github.com/samber/lo"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/ValoreSposi/crm-backend/internal/lookup"
	"github.com/ValoreSposi/crm-backend/internal/model"
)

const stockLineField = "giacenza"

// buildInventory produces one row per stock line with quantity of at least one,
// sorted by quantity, highest first.
func buildInventory(
	ctx context.Context,
	src lookup.Source,
	cols model.Collections,
	warehouse *bson.ObjectID,
) ([]model.InventoryRow, error) {
	pipeline := mongo.Pipeline{}
	if warehouse != nil {
		pipeline = append(pipeline, bson.D{{Key: "$match", Value: bson.M{"magazzino": *warehouse}}})
	}

	stock, err := src.Aggregate(ctx, cols.Stock, pipeline)
	if err != nil {
		return nil, err
	}

	rows := lookup.Unwind(stock, stockLineField)
	rows = lo.Filter(rows, func(row bson.M, _ int) bool {
		return lookup.NumberAt(row, stockLineField+".quantita", 0) >= 1
	})
	if len(rows) == 0 {
		return []model.InventoryRow{}, nil
	}

	exec := lookup.NewExecutor(src)

	specs := productJoins(cols, stockLineField+".prodotto")
	specs = append(specs, lookup.Spec{
		From:        cols.Warehouse,
		LocalField:  "magazzino",
		As:          aliasWarehouse,
		Cardinality: lookup.ZeroOrOne,
	})
	rows, err = exec.Run(ctx, rows, specs...)
	if err != nil {
		return nil, err
	}

	history, err := loadHistory(ctx, src, cols)
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		code, _ := lookup.Get(row, stockLineField+".codice")
		if pc, ok := history.Resolve(code); ok {
			row[supplierRefField] = pc.SupplierRef
		}
	}

	rows, err = exec.Run(ctx, rows, supplierJoin(cols))
	if err != nil {
		return nil, err
	}

	out := make([]model.InventoryRow, 0, len(rows))
	for _, row := range rows {
		out = append(out, inventoryRow(row))
	}

	slices.SortStableFunc(out, func(a, b model.InventoryRow) int {
		return cmp.Compare(b.Quantity, a.Quantity)
	})

	return out, nil
}

func inventoryRow(row bson.M) model.InventoryRow {
	dims := resolveDimensions(row)
	price := func(name string) float64 {
		return lookup.NumberAt(row, stockLineField+"."+name, 0)
	}

	return model.InventoryRow{
		Warehouse: lookup.Text(row, aliasWarehouse+".nomeMagazzino", model.Placeholder),
		Code:      lookup.Text(row, stockLineField+".codice", ""),
		Category:  dims.Category,
		Brand:     dims.Brand,
		Type:      dims.Type,
		Model:     dims.Model,
		Color:     dims.Color,
		Size:      dims.Size,
		Quantity:  lookup.NumberAt(row, stockLineField+".quantita", 0),
		Supplier:  lookup.Text(row, aliasSupplier+".nomeFornitore", model.Placeholder),
		Prices: model.PriceSet{
			Purchase:  price("prezzoAcquisto"),
			Tag:       price("prezzoCartellino"),
			Suggested: price("prezzoSuggerito"),
			Affiliate: price("prezzoAffiliato"),
		},
	}
}

func loadHistory(ctx context.Context, src lookup.Source, cols model.Collections) (*History, error) {
	records, err := src.Aggregate(ctx, cols.LoadRecord, mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{"tipoCarico": InboundLoadType}}},
	})
	if err != nil {
		return nil, err
	}
	return NewHistory(records), nil
}
