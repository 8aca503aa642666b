package service

import (
	"context"

	"github.com/samber/lo"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/ValoreSposi/crm-backend/internal/lookup"
	"github.com/ValoreSposi/crm-backend/internal/model"
)

const (
	saleLineField = "prodotti"
	dateLayout    = "02/01/2006"
)

// buildSales produces one row per sold or rented line item in natural store order.
func buildSales(
	ctx context.Context,
	src lookup.Source,
	cols model.Collections,
	year int,
) ([]model.SalesRow, error) {
	assoc, err := src.Aggregate(ctx, cols.ClientProduct, mongo.Pipeline{})
	if err != nil {
		return nil, err
	}

	exec := lookup.NewExecutor(src)

	rows, err := exec.Run(ctx, assoc,
		lookup.Spec{From: cols.Client, LocalField: "cliente", As: aliasClient, Cardinality: lookup.One},
		lookup.Spec{From: cols.Appointment, LocalField: "appuntamento", As: aliasAppointment, Cardinality: lookup.One},
	)
	if err != nil {
		return nil, err
	}

	if year != 0 {
		rows = lo.Filter(rows, func(row bson.M, _ int) bool {
			d, ok := lookup.Date(row, aliasAppointment+".dataAppuntamento")
			return ok && d.Year() == year
		})
	}

	rows, err = exec.Run(ctx, rows,
		lookup.Spec{From: cols.Atelier, LocalField: aliasAppointment + ".atelier", As: aliasAtelier, Cardinality: lookup.One},
		lookup.Spec{From: cols.Employee, LocalField: aliasAppointment + ".dipendente", As: aliasEmployee, Cardinality: lookup.One},
	)
	if err != nil {
		return nil, err
	}

	rows = lookup.Unwind(rows, saleLineField)
	if len(rows) == 0 {
		return []model.SalesRow{}, nil
	}

	rows, err = exec.Run(ctx, rows, productJoins(cols, saleLineField+".prodotto")...)
	if err != nil {
		return nil, err
	}

	history, err := loadHistory(ctx, src, cols)
	if err != nil {
		return nil, err
	}

	contexts := make([]*PurchaseContext, len(rows))
	for i, row := range rows {
		code, _ := lookup.Get(row, saleLineField+".codice")
		if pc, ok := history.Resolve(code); ok {
			contexts[i] = &pc
			row[supplierRefField] = pc.SupplierRef
		}
	}

	// the supplier join keeps every row, so positions still line up with contexts
	rows, err = exec.Run(ctx, rows, supplierJoin(cols))
	if err != nil {
		return nil, err
	}

	out := make([]model.SalesRow, 0, len(rows))
	for i, row := range rows {
		out = append(out, salesRow(row, contexts[i]))
	}

	return out, nil
}

func salesRow(row bson.M, pc *PurchaseContext) model.SalesRow {
	dims := resolveDimensions(row)
	line := func(name string) float64 {
		return lookup.NumberAt(row, saleLineField+"."+name, 0)
	}

	kind := model.LabelSold
	if status, ok := lookup.Get(row, saleLineField+".checked"); ok && status == model.RentedStatus {
		kind = model.LabelRented
	}

	return model.SalesRow{
		AppointmentDate: formatDate(row, aliasAppointment+".dataAppuntamento"),
		Atelier:         lookup.Text(row, aliasAtelier+".nomeAtelier", ""),
		Employee:        fullName(row, aliasEmployee+".firstName", aliasEmployee+".lastName"),
		Client:          fullName(row, aliasClient+".nome", aliasClient+".cognome"),
		WeddingDate:     formatDate(row, aliasAppointment+".dataMatrimonio"),
		Category:        dims.Category,
		Model:           dims.Model,
		Brand:           dims.Brand,
		Type:            dims.Type,
		Size:            dims.Size,
		Quantity:        lookup.NumberAt(row, saleLineField+".quantita", 1),
		Kind:            kind,
		Color:           dims.Color,
		Code:            lookup.Text(row, saleLineField+".codice", ""),
		SalePrice:       SalePrice(line("prezzoVendita"), line("scontoPerc"), line("sconto")),
		Supplier:        lookup.Text(row, aliasSupplier+".nomeFornitore", model.Placeholder),
		Purchase:        purchasePrices(pc),
	}
}

// purchasePrices keeps "never loaded in" and "loaded in with an unreadable
// price" apart through two different sentinels.
func purchasePrices(pc *PurchaseContext) model.PriceSet {
	if pc == nil {
		return model.PriceSet{
			Purchase:  model.NoPurchaseContext,
			Tag:       model.NoPurchaseContext,
			Suggested: model.NoPurchaseContext,
			Affiliate: model.NoPurchaseContext,
		}
	}

	return model.PriceSet{
		Purchase:  lookup.Number(pc.Purchase, model.UnusablePrice),
		Tag:       lookup.Number(pc.Tag, model.UnusablePrice),
		Suggested: lookup.Number(pc.Suggested, model.UnusablePrice),
		Affiliate: lookup.Number(pc.Affiliate, model.UnusablePrice),
	}
}

func formatDate(row bson.M, path string) string {
	d, ok := lookup.Date(row, path)
	if !ok {
		return ""
	}
	return d.Format(dateLayout)
}

// fullName joins first and last name; either part missing yields an empty name.
func fullName(row bson.M, firstPath, lastPath string) string {
	first, ok := lookup.Get(row, firstPath)
	if !ok {
		return ""
	}
	last, ok := lookup.Get(row, lastPath)
	if !ok {
		return ""
	}
	fs, ok1 := first.(string)
	ls, ok2 := last.(string)
	if !ok1 || !ok2 {
		return ""
	}
	return fs + " " + ls
}
