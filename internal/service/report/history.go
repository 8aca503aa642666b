package service

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/ValoreSposi/crm-backend/internal/lookup"
)

// InboundLoadType tags load records that brought stock in.
const InboundLoadType = "Carico"

// PurchaseContext is the earliest inbound load line for a product code.
type PurchaseContext struct {
	SupplierRef any
	LoadDate    time.Time
	// Raw price values as stored on the load line, not yet coerced.
	Purchase  any
	Tag       any
	Suggested any
	Affiliate any

	dated bool
}

// before orders contexts the way the store sorts by load date: records
// without a date come first.
func (c PurchaseContext) before(o PurchaseContext) bool {
	switch {
	case !c.dated:
		return o.dated
	case !o.dated:
		return false
	default:
		return c.LoadDate.Before(o.LoadDate)
	}
}

// History resolves product codes to their purchase context.
type History struct {
	byCode map[string]PurchaseContext
}

// NewHistory indexes the line items of inbound load records by trimmed code,
// keeping only the earliest match per code. Ties keep the first encountered.
func NewHistory(records []bson.M) *History {
	h := &History{byCode: make(map[string]PurchaseContext)}

	for _, rec := range records {
		if lookup.Text(rec, "tipoCarico", "") != InboundLoadType {
			continue
		}

		date, dated := lookup.Date(rec, "dataCarico")
		supplier, _ := lookup.Get(rec, "fornitore")

		items, _ := lookup.Array(rec, "prodotti")
		for _, item := range items {
			line, ok := lookup.AsDocument(item)
			if !ok {
				continue
			}
			code, ok := normalizeCode(line["codice"])
			if !ok {
				continue
			}

			cand := PurchaseContext{
				SupplierRef: supplier,
				LoadDate:    date,
				Purchase:    line["prezzoAcquisto"],
				Tag:         line["prezzoCartellino"],
				Suggested:   line["prezzoSuggerito"],
				Affiliate:   line["prezzoAffiliato"],
				dated:       dated,
			}

			if cur, seen := h.byCode[code]; !seen || cand.before(cur) {
				h.byCode[code] = cand
			}
		}
	}

	return h
}

// Resolve returns the purchase context for code, compared after trimming
// surrounding whitespace. Matching is exact and case sensitive.
func (h *History) Resolve(code any) (PurchaseContext, bool) {
	key, ok := normalizeCode(code)
	if !ok {
		return PurchaseContext{}, false
	}
	pc, ok := h.byCode[key]
	return pc, ok
}

func normalizeCode(v any) (string, bool) {
	s, ok := v.(string)
	if !ok {
		return "", false
	}
	return strings.TrimSpace(s), true
}
