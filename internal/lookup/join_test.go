package lookup

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

type memSource struct {
	data  map[string][]bson.M
	calls map[string]int
	err   error
}

func (s *memSource) Aggregate(_ context.Context, collection string, _ mongo.Pipeline) ([]bson.M, error) {
	return s.All(context.Background(), collection)
}

func (s *memSource) All(_ context.Context, collection string) ([]bson.M, error) {
	if s.calls == nil {
		s.calls = make(map[string]int)
	}
	s.calls[collection]++
	if s.err != nil {
		return nil, s.err
	}
	return s.data[collection], nil
}

func TestExecutorRun(t *testing.T) {
	t.Parallel()

	prodA := bson.NewObjectID()
	prodB := bson.NewObjectID()
	catA := bson.NewObjectID()

	src := &memSource{data: map[string][]bson.M{
		"products":   {{"_id": prodA, "categoria": catA}, {"_id": prodB}},
		"categories": {{"_id": catA, "descrizione": "Abiti"}},
	}}

	rows := []bson.M{
		{"line": bson.M{"prodotto": prodA}},
		{"line": bson.M{"prodotto": prodB}},
		{"line": bson.M{"prodotto": bson.NewObjectID()}}, // dangling product
		{"line": bson.M{}},                               // no reference at all
	}

	out, err := NewExecutor(src).Run(context.Background(), rows,
		Spec{From: "products", LocalField: "line.prodotto", As: "product", Cardinality: One},
		Spec{From: "categories", LocalField: "product.categoria", As: "category", Cardinality: ZeroOrOne},
	)
	require.NoError(t, err)
	require.Len(t, out, 2)

	assert.Equal(t, "Abiti", Text(out[0], "category.descrizione", "Non specificato"))
	assert.Equal(t, "Non specificato", Text(out[1], "category.descrizione", "Non specificato"))

	// caller rows are not modified
	_, joined := rows[0]["product"]
	assert.False(t, joined)
}

func TestExecutorReadsEachCollectionOnce(t *testing.T) {
	t.Parallel()

	id := bson.NewObjectID()
	src := &memSource{data: map[string][]bson.M{
		"suppliers": {{"_id": id, "nomeFornitore": "Pronovias"}},
	}}
	exec := NewExecutor(src)

	for range 3 {
		out, err := exec.Run(context.Background(), []bson.M{{"ref": id}},
			Spec{From: "suppliers", LocalField: "ref", As: "supplier", Cardinality: ZeroOrOne},
		)
		require.NoError(t, err)
		assert.Equal(t, "Pronovias", Text(out[0], "supplier.nomeFornitore", ""))
	}

	assert.Equal(t, 1, src.calls["suppliers"])
}

func TestExecutorForeignField(t *testing.T) {
	t.Parallel()

	src := &memSource{data: map[string][]bson.M{
		"codes": {{"code": int32(10), "label": "ten"}},
	}}

	out, err := NewExecutor(src).Run(context.Background(), []bson.M{{"n": int64(10)}},
		Spec{From: "codes", LocalField: "n", ForeignField: "code", As: "c", Cardinality: One},
	)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "ten", Text(out[0], "c.label", ""))
}

func TestExecutorSourceError(t *testing.T) {
	t.Parallel()

	src := &memSource{err: errors.New("connection reset")}

	out, err := NewExecutor(src).Run(context.Background(), []bson.M{{"ref": 1}},
		Spec{From: "suppliers", LocalField: "ref", As: "supplier"},
	)
	require.Error(t, err)
	assert.ErrorContains(t, err, "connection reset")
	assert.ErrorContains(t, err, "suppliers")
	assert.Nil(t, out)
}
