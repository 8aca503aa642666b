package lookup

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
)

func TestGet(t *testing.T) {
	t.Parallel()

	doc := bson.M{
		"product": bson.D{
			{Key: "category", Value: bson.M{"descrizione": "Abito"}},
			{Key: "empty", Value: nil},
		},
		"flat": "x",
	}

	tests := []struct {
		name   string
		path   string
		want   any
		wantOK bool
	}{
		{name: "top-level field", path: "flat", want: "x", wantOK: true},
		{name: "through bson.D and bson.M", path: "product.category.descrizione", want: "Abito", wantOK: true},
		{name: "null value counts as missing", path: "product.empty", wantOK: false},
		{name: "missing segment", path: "product.brand.descrizione", wantOK: false},
		{name: "path through scalar", path: "flat.more", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, ok := Get(doc, tt.path)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestText(t *testing.T) {
	t.Parallel()

	id := bson.NewObjectID()
	doc := bson.M{
		"category": bson.M{"descrizione": "Accessori"},
		"size":     bson.M{"descrizione": int32(42)},
		"ref":      id,
		"blank":    bson.M{"descrizione": ""},
	}

	assert.Equal(t, "Accessori", Text(doc, "category.descrizione", "Non specificato"))
	assert.Equal(t, "42", Text(doc, "size.descrizione", "Non specificato"))
	assert.Equal(t, id.Hex(), Text(doc, "ref", ""))
	assert.Equal(t, "Non specificato", Text(doc, "brand.descrizione", "Non specificato"))
	// an empty string is a value, not a missing reference
	assert.Equal(t, "", Text(doc, "blank.descrizione", "Non specificato"))
}

func TestDate(t *testing.T) {
	t.Parallel()

	when := time.Date(2024, 6, 15, 23, 30, 0, 0, time.UTC)
	doc := bson.M{
		"dt":   bson.NewDateTimeFromTime(when),
		"tt":   when.In(time.FixedZone("CET", 3600)),
		"text": "2024-06-15",
	}

	got, ok := Date(doc, "dt")
	require.True(t, ok)
	assert.True(t, when.Equal(got))

	got, ok = Date(doc, "tt")
	require.True(t, ok)
	assert.Equal(t, time.UTC, got.Location())
	assert.True(t, when.Equal(got))

	_, ok = Date(doc, "text")
	assert.False(t, ok)

	_, ok = Date(doc, "missing")
	assert.False(t, ok)
}

func TestUnwind(t *testing.T) {
	t.Parallel()

	docs := []bson.M{
		{"_id": 1, "items": bson.A{"a", "b"}},
		{"_id": 2, "items": bson.A{}},
		{"_id": 3},
		{"_id": 4, "items": "scalar"},
		{"_id": 5, "items": []any{"c"}},
		{"_id": 6, "items": nil},
		{"_id": 7, "items": bson.M{"codice": "X"}},
	}

	out := Unwind(docs, "items")
	require.Len(t, out, 5)
	assert.Equal(t, bson.M{"_id": 1, "items": "a"}, out[0])
	assert.Equal(t, bson.M{"_id": 1, "items": "b"}, out[1])
	assert.Equal(t, bson.M{"_id": 4, "items": "scalar"}, out[2])
	assert.Equal(t, bson.M{"_id": 5, "items": "c"}, out[3])
	assert.Equal(t, bson.M{"_id": 7, "items": bson.M{"codice": "X"}}, out[4])

	// input documents are left untouched
	assert.Equal(t, bson.A{"a", "b"}, docs[0]["items"])
}

func TestKey(t *testing.T) {
	t.Parallel()

	k32, ok := Key(int32(7))
	require.True(t, ok)
	k64, ok := Key(int64(7))
	require.True(t, ok)
	assert.Equal(t, k32, k64)

	_, ok = Key(bson.ObjectID{})
	assert.False(t, ok)

	_, ok = Key(bson.D{{Key: "a", Value: 1}})
	assert.False(t, ok)
}
