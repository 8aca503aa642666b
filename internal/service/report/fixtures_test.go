package service

import (
	"context"
	"reflect"
	"sync"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/ValoreSposi/crm-backend/internal/lookup"
	"github.com/ValoreSposi/crm-backend/internal/model"
)

var testCollections = model.Collections{
	Stock:         "nuovaGiacenza",
	Product:       "prodottis",
	Category:      "categoriaprodottis",
	Brand:         "marcaprodottis",
	Type:          "tipologiaprodottis",
	Model:         "modelloprodottis",
	Color:         "coloreprodottis",
	Size:          "tagliaclientes",
	Warehouse:     "magazzinis",
	Supplier:      "fornitoris",
	LoadRecord:    "caricoscaricos",
	Client:        "clientes",
	Appointment:   "appuntamentos",
	Atelier:       "ateliers",
	Employee:      "users",
	ClientProduct: "prodotticlientes",
}

// memSource serves documents from memory. Aggregate understands only $match
// stages with top-level equality, which is all the reports push down.
type memSource struct {
	mu        sync.Mutex
	data      map[string][]bson.M
	failOn    string
	err       error
	pipelines map[string][]mongo.Pipeline
}

func newMemSource() *memSource {
	return &memSource{
		data:      make(map[string][]bson.M),
		pipelines: make(map[string][]mongo.Pipeline),
	}
}

func (s *memSource) add(collection string, docs ...bson.M) {
	s.data[collection] = append(s.data[collection], docs...)
}

func (s *memSource) Aggregate(_ context.Context, collection string, pipeline mongo.Pipeline) ([]bson.M, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.pipelines[collection] = append(s.pipelines[collection], pipeline)
	if collection == s.failOn {
		return nil, s.err
	}

	out := make([]bson.M, 0, len(s.data[collection]))
	for _, doc := range s.data[collection] {
		if matchesAll(doc, pipeline) {
			out = append(out, doc)
		}
	}
	return out, nil
}

func (s *memSource) All(_ context.Context, collection string) ([]bson.M, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if collection == s.failOn {
		return nil, s.err
	}
	return append([]bson.M(nil), s.data[collection]...), nil
}

func matchesAll(doc bson.M, pipeline mongo.Pipeline) bool {
	for _, stage := range pipeline {
		for _, e := range stage {
			if e.Key != "$match" {
				continue
			}
			cond, ok := e.Value.(bson.M)
			if !ok {
				continue
			}
			for k, want := range cond {
				if !reflect.DeepEqual(doc[k], want) {
					return false
				}
			}
		}
	}
	return true
}

// memStore wraps a memSource and counts opened and released sessions.
type memStore struct {
	src      *memSource
	opened   int
	released int
	err      error
}

func (s *memStore) Snapshot(ctx context.Context, fn func(ctx context.Context, src lookup.Source) error) error {
	if s.err != nil {
		return s.err
	}
	s.opened++
	defer func() { s.released++ }()
	return fn(ctx, s.src)
}
