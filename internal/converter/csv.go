package converter

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/ValoreSposi/crm-backend/internal/model"
)

const (
	// BOM makes spreadsheet software read the export as UTF-8.
	BOM = "\ufeff"

	separator    = ";"
	lineEnd      = "\n"
	notAvailable = "N/D"
)

var inventoryHeader = []string{
	"Magazzino",
	"Codice",
	"Categoria",
	"Marca",
	"Tipologia",
	"Modello",
	"Colore",
	"Taglia",
	"Quantità",
	"Fornitore",
	"Prezzo Acquisto",
	"Prezzo Cartellino",
	"Prezzo Suggerito",
	"Prezzo Affiliato",
	"Valore Totale",
}

var salesHeader = []string{
	"Data Appuntamento",
	"Atelier",
	"Dipendente",
	"Cliente",
	"Data Matrimonio",
	"Categoria",
	"Modello",
	"Marca",
	"Tipologia",
	"Taglia",
	"Quantità",
	"Vendita/Noleggio",
	"Colore",
	"Codice Prodotto",
	"Prezzo Vendita",
	"Fornitore",
	"Prezzo Acquisto",
	"Prezzo Cartellino",
	"Prezzo Suggerito",
	"Prezzo Affiliato",
}

// InventoryCSV encodes the inventory rows in input order, header first.
func InventoryCSV(rows []model.InventoryRow) []byte {
	var b strings.Builder
	b.WriteString(BOM)
	writeLine(&b, inventoryHeader)

	for _, r := range rows {
		writeLine(&b, []string{
			r.Warehouse,
			r.Code,
			r.Category,
			r.Brand,
			r.Type,
			r.Model,
			r.Color,
			r.Size,
			formatQuantity(r.Quantity),
			r.Supplier,
			formatPrice(r.Prices.Purchase),
			formatPrice(r.Prices.Tag),
			formatPrice(r.Prices.Suggested),
			formatPrice(r.Prices.Affiliate),
			formatPrice(r.TotalValue()),
		})
	}

	return []byte(b.String())
}

// SalesCSV encodes the sales rows in input order, header first. Purchase
// prices without a purchase context render as N/D.
func SalesCSV(rows []model.SalesRow) []byte {
	var b strings.Builder
	b.WriteString(BOM)
	writeLine(&b, salesHeader)

	for _, r := range rows {
		writeLine(&b, []string{
			r.AppointmentDate,
			r.Atelier,
			r.Employee,
			r.Client,
			r.WeddingDate,
			r.Category,
			r.Model,
			r.Brand,
			r.Type,
			r.Size,
			formatQuantity(r.Quantity),
			r.Kind,
			r.Color,
			r.Code,
			formatPrice(r.SalePrice),
			r.Supplier,
			formatPurchase(r.Purchase.Purchase),
			formatPurchase(r.Purchase.Tag),
			formatPurchase(r.Purchase.Suggested),
			formatPurchase(r.Purchase.Affiliate),
		})
	}

	return []byte(b.String())
}

func writeLine(b *strings.Builder, fields []string) {
	for i, f := range fields {
		if i > 0 {
			b.WriteString(separator)
		}
		b.WriteString(escapeField(f))
	}
	b.WriteString(lineEnd)
}

// escapeField quotes values containing the separator, a double quote or a
// newline. Anything else is written verbatim.
func escapeField(v string) string {
	if !strings.ContainsAny(v, separator+"\"\n") {
		return v
	}
	return `"` + strings.ReplaceAll(v, `"`, `""`) + `"`
}

// formatPrice renders two decimals with a comma separator, e.g. 1234,50.
func formatPrice(v float64) string {
	return strings.Replace(decimal.NewFromFloat(v).StringFixed(2), ".", ",", 1)
}

func formatPurchase(v float64) string {
	if v == model.NoPurchaseContext {
		return notAvailable
	}
	return formatPrice(v)
}

// formatQuantity uses the shortest form that round-trips: 3, 2.5.
func formatQuantity(v float64) string {
	return decimal.NewFromFloat(v).String()
}
