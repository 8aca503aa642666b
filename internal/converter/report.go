package converter

import (
	"github.com/ValoreSposi/crm-backend/internal/model"
	reportv1 "github.com/ValoreSposi/crm-backend/pkg/api/report/v1"
)

func InventoryToAPI(rows []model.InventoryRow) []reportv1.InventoryItem {
	out := make([]reportv1.InventoryItem, 0, len(rows))
	for _, r := range rows {
		out = append(out, reportv1.InventoryItem{
			Warehouse:      r.Warehouse,
			Code:           r.Code,
			Category:       r.Category,
			Brand:          r.Brand,
			Type:           r.Type,
			Model:          r.Model,
			Color:          r.Color,
			Size:           r.Size,
			Quantity:       r.Quantity,
			Supplier:       r.Supplier,
			PurchasePrice:  r.Prices.Purchase,
			TagPrice:       r.Prices.Tag,
			SuggestedPrice: r.Prices.Suggested,
			AffiliatePrice: r.Prices.Affiliate,
		})
	}
	return out
}

func SalesToAPI(rows []model.SalesRow) []reportv1.SalesItem {
	out := make([]reportv1.SalesItem, 0, len(rows))
	for _, r := range rows {
		out = append(out, reportv1.SalesItem{
			AppointmentDate: r.AppointmentDate,
			Atelier:         r.Atelier,
			Employee:        r.Employee,
			Client:          r.Client,
			WeddingDate:     r.WeddingDate,
			Category:        r.Category,
			Model:           r.Model,
			Brand:           r.Brand,
			Type:            r.Type,
			Size:            r.Size,
			Quantity:        r.Quantity,
			Kind:            r.Kind,
			Color:           r.Color,
			Code:            r.Code,
			SalePrice:       r.SalePrice,
			Supplier:        r.Supplier,
			PurchasePrice:   r.Purchase.Purchase,
			TagPrice:        r.Purchase.Tag,
			SuggestedPrice:  r.Purchase.Suggested,
			AffiliatePrice:  r.Purchase.Affiliate,
		})
	}
	return out
}

func WarehousesToAPI(ws []model.Warehouse) []reportv1.Warehouse {
	out := make([]reportv1.Warehouse, 0, len(ws))
	for _, w := range ws {
		out = append(out, reportv1.Warehouse{ID: w.ID, Name: w.Name, Location: w.Location})
	}
	return out
}
