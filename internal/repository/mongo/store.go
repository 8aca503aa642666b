package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"

	"github.com/ValoreSposi/crm-backend/internal/lookup"
	"github.com/ValoreSposi/crm-backend/internal/model"
	"github.com/ValoreSposi/crm-backend/platform/logger"
)

type store struct {
	client *mongo.Client
	db     *mongo.Database
}

func NewStore(client *mongo.Client, dbName string) *store {
	return &store{client: client, db: client.Database(dbName)}
}

// Snapshot runs fn inside a client session. The session is ended on every
// exit path.
func (s *store) Snapshot(ctx context.Context, fn func(ctx context.Context, src lookup.Source) error) error {
	const op = "repository.Snapshot"

	var fnErr error
	err := s.client.UseSession(ctx, func(sctx context.Context) error {
		fnErr = fn(sctx, &session{db: s.db})
		return fnErr
	})
	if err != nil {
		if fnErr != nil {
			// already classified by the session
			return fnErr
		}
		return fmt.Errorf("%s: %w", op, classify(err))
	}

	return nil
}

func (s *store) Ping(ctx context.Context) error {
	const op = "repository.Ping"

	if err := s.client.Ping(ctx, readpref.Primary()); err != nil {
		return fmt.Errorf("%s: %w", op, classify(err))
	}
	return nil
}

type session struct {
	db *mongo.Database
}

func (s *session) Aggregate(ctx context.Context, collection string, pipeline mongo.Pipeline) ([]bson.M, error) {
	const op = "repository.Aggregate"

	cur, err := s.db.Collection(collection).Aggregate(ctx, pipeline, options.Aggregate().SetAllowDiskUse(true))
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", op, collection, classify(err))
	}

	return drain(ctx, op, collection, cur)
}

func (s *session) All(ctx context.Context, collection string) ([]bson.M, error) {
	const op = "repository.All"

	cur, err := s.db.Collection(collection).Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", op, collection, classify(err))
	}

	return drain(ctx, op, collection, cur)
}

func drain(ctx context.Context, op, collection string, cur *mongo.Cursor) ([]bson.M, error) {
	defer func() {
		if cerr := cur.Close(ctx); cerr != nil {
			logger.Warn(ctx, "failed to close cursor",
				logger.String("op", op),
				logger.String("collection", collection),
				logger.ErrorF(cerr),
			)
		}
	}()

	out := make([]bson.M, 0)
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("%s %s cursor: %w", op, collection, classify(err))
	}

	return out, nil
}

// classify maps driver errors onto the model sentinels while keeping the
// original error in the chain.
func classify(err error) error {
	switch {
	case err == nil:
		return nil
	case mongo.IsNetworkError(err),
		mongo.IsTimeout(err),
		errors.Is(err, mongo.ErrClientDisconnected),
		errors.Is(err, context.DeadlineExceeded):
		return errors.Join(model.ErrStoreUnavailable, err)
	default:
		return errors.Join(model.ErrQueryFailed, err)
	}
}
