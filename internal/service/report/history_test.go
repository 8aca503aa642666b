package service

import (
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
)

func loadRecord(kind string, date *time.Time, supplier bson.ObjectID, lines ...any) bson.M {
	items := make(bson.A, 0, len(lines))
	for _, l := range lines {
		items = append(items, l)
	}
	rec := bson.M{
		"_id":        bson.NewObjectID(),
		"tipoCarico": kind,
		"fornitore":  supplier,
		"prodotti":   items,
	}
	if date != nil {
		rec["dataCarico"] = bson.NewDateTimeFromTime(*date)
	}
	return rec
}

func day(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func TestHistoryPicksEarliestRegardlessOfOrder(t *testing.T) {
	t.Parallel()

	early, mid, late := bson.NewObjectID(), bson.NewObjectID(), bson.NewObjectID()
	records := []bson.M{
		loadRecord(InboundLoadType, day(2023, 5, 1), mid, bson.M{"codice": "AB-1", "prezzoAcquisto": "20"}),
		loadRecord(InboundLoadType, day(2021, 1, 9), early, bson.M{"codice": " AB-1 ", "prezzoAcquisto": "10"}),
		loadRecord(InboundLoadType, day(2024, 2, 3), late, bson.M{"codice": "AB-1", "prezzoAcquisto": "30"}),
	}

	for i := range 10 {
		shuffled := append([]bson.M(nil), records...)
		if i > 0 {
			gofakeit.ShuffleAnySlice(shuffled)
		}

		pc, ok := NewHistory(shuffled).Resolve("AB-1")
		require.True(t, ok)
		assert.Equal(t, early, pc.SupplierRef)
		assert.Equal(t, "10", pc.Purchase)
	}
}

func TestHistoryResolve(t *testing.T) {
	t.Parallel()

	first, second := bson.NewObjectID(), bson.NewObjectID()
	undated, blank := bson.NewObjectID(), bson.NewObjectID()

	records := []bson.M{
		loadRecord("Scarico", day(2000, 1, 1), bson.NewObjectID(), bson.M{"codice": "OUT"}),
		loadRecord(InboundLoadType, day(2022, 3, 3), first, bson.M{"codice": "TIE"}, bson.M{"codice": "multi", "prezzoCartellino": 99}),
		loadRecord(InboundLoadType, day(2022, 3, 3), second, bson.M{"codice": "TIE"}),
		loadRecord(InboundLoadType, day(2020, 1, 1), bson.NewObjectID(), bson.M{"codice": "NODATE"}),
		loadRecord(InboundLoadType, nil, undated, bson.M{"codice": "NODATE"}),
		loadRecord(InboundLoadType, day(2020, 1, 1), bson.NewObjectID(), bson.M{"codice": 42}, "not a document"),
		loadRecord(InboundLoadType, day(2019, 6, 1), blank, bson.M{"codice": ""}),
	}
	h := NewHistory(records)

	tests := []struct {
		name         string
		code         any
		wantOK       bool
		wantSupplier any
	}{
		{name: "outbound records are ignored", code: "OUT", wantOK: false},
		{name: "ties keep the first record", code: "TIE", wantOK: true, wantSupplier: first},
		{name: "padded lookup code is trimmed", code: "\tTIE  ", wantOK: true, wantSupplier: first},
		{name: "matching is case sensitive", code: "tie", wantOK: false},
		{name: "no partial matches", code: "TI", wantOK: false},
		{name: "second line of a record", code: "multi", wantOK: true, wantSupplier: first},
		{name: "undated record sorts first", code: "NODATE", wantOK: true, wantSupplier: undated},
		{name: "non-string code never matches", code: 42, wantOK: false},
		{name: "blank code matches blank line", code: "  ", wantOK: true, wantSupplier: blank},
		{name: "unknown code", code: gofakeit.LetterN(12), wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			pc, ok := h.Resolve(tt.code)
			require.Equal(t, tt.wantOK, ok)
			if ok {
				assert.Equal(t, tt.wantSupplier, pc.SupplierRef)
			}
		})
	}
}
