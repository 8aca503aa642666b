package service

import (
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/ValoreSposi/crm-backend/internal/lookup"
	"github.com/ValoreSposi/crm-backend/internal/model"
)

// Aliases under which joined documents are stored on a row.
const (
	aliasProduct     = "product"
	aliasCategory    = "category"
	aliasBrand       = "brand"
	aliasType        = "type"
	aliasModel       = "model"
	aliasColor       = "color"
	aliasSize        = "size"
	aliasWarehouse   = "warehouse"
	aliasSupplier    = "supplier"
	aliasClient      = "client"
	aliasAppointment = "appointment"
	aliasAtelier     = "atelier"
	aliasEmployee    = "employee"

	// supplierRefField carries the supplier reference of the resolved purchase context.
	supplierRefField = "supplierRef"

	descriptionField = "descrizione"
)

// productJoins joins the product referenced at productRef and then each of its
// descriptive dimensions. A missing product drops the row; a missing dimension
// leaves it unset.
func productJoins(cols model.Collections, productRef string) []lookup.Spec {
	dim := func(from, localField, as string) lookup.Spec {
		return lookup.Spec{
			From:        from,
			LocalField:  aliasProduct + "." + localField,
			As:          as,
			Cardinality: lookup.ZeroOrOne,
		}
	}

	return []lookup.Spec{
		{From: cols.Product, LocalField: productRef, As: aliasProduct, Cardinality: lookup.One},
		dim(cols.Category, "categoriaProdotto", aliasCategory),
		dim(cols.Brand, "marcaProdotto", aliasBrand),
		dim(cols.Type, "tipologiaProdotto", aliasType),
		dim(cols.Model, "modelloProdotto", aliasModel),
		dim(cols.Color, "coloreProdotto", aliasColor),
		dim(cols.Size, "tagliaProdotto", aliasSize),
	}
}

func supplierJoin(cols model.Collections) lookup.Spec {
	return lookup.Spec{
		From:        cols.Supplier,
		LocalField:  supplierRefField,
		As:          aliasSupplier,
		Cardinality: lookup.ZeroOrOne,
	}
}

// dimensions holds the resolved descriptive values of a product.
type dimensions struct {
	Category, Brand, Type, Model, Color, Size string
}

func resolveDimensions(row bson.M) dimensions {
	text := func(alias string) string {
		return lookup.Text(row, alias+"."+descriptionField, model.Placeholder)
	}
	return dimensions{
		Category: text(aliasCategory),
		Brand:    text(aliasBrand),
		Type:     text(aliasType),
		Model:    text(aliasModel),
		Color:    text(aliasColor),
		Size:     text(aliasSize),
	}
}
