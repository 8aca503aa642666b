package lookup

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

// Source is the read capability the reports need from the document store.
type Source interface {
	// Aggregate runs pipeline against collection and returns every resulting document.
	Aggregate(ctx context.Context, collection string, pipeline mongo.Pipeline) ([]bson.M, error)
	// All returns every document of collection.
	All(ctx context.Context, collection string) ([]bson.M, error)
}
