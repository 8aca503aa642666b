package lookup

import (
	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/v2/bson"
)

// Number coerces a stored value to a float the way the store's $convert to
// double does, returning def for null, missing or unparseable input.
func Number(v any, def float64) float64 {
	switch n := v.(type) {
	case nil:
		return def
	case float64:
		return n
	case float32:
		return float64(n)
	case int32:
		return float64(n)
	case int64:
		return float64(n)
	case int:
		return float64(n)
	case bool:
		if n {
			return 1
		}
		return 0
	case string:
		d, err := decimal.NewFromString(n)
		if err != nil {
			return def
		}
		return d.InexactFloat64()
	case bson.Decimal128:
		d, err := decimal.NewFromString(n.String())
		if err != nil {
			return def
		}
		return d.InexactFloat64()
	}
	return def
}

// NumberAt is Number applied to the value at path.
func NumberAt(doc bson.M, path string, def float64) float64 {
	v, ok := Get(doc, path)
	if !ok {
		return def
	}
	return Number(v, def)
}
