package lookup

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Cardinality tells a join step what to do with rows that find no match.
type Cardinality int

const (
	// One drops the row when no foreign document matches.
	One Cardinality = iota
	// ZeroOrOne keeps the row and leaves the alias unset on a miss.
	ZeroOrOne
)

// Spec describes one join step: rows whose LocalField equals a document's
// ForeignField get that document stored under As.
type Spec struct {
	From         string
	LocalField   string
	ForeignField string
	As           string
	Cardinality  Cardinality
}

func (s Spec) foreignField() string {
	if s.ForeignField == "" {
		return "_id"
	}
	return s.ForeignField
}

type index map[any]bson.M

// Executor applies join specs in order. Each collection/field pair is read from
// the source at most once per executor, so one executor serves one request.
type Executor struct {
	src    Source
	tables map[string]index
}

// NewExecutor returns an executor reading foreign collections from src.
func NewExecutor(src Source) *Executor {
	return &Executor{src: src, tables: make(map[string]index)}
}

// Run applies specs to copies of rows and returns the rows that survive.
func (e *Executor) Run(ctx context.Context, rows []bson.M, specs ...Spec) ([]bson.M, error) {
	const op = "lookup.Executor.Run"

	rows = cloneAll(rows)
	for _, spec := range specs {
		idx, err := e.table(ctx, spec)
		if err != nil {
			return nil, fmt.Errorf("%s %s: %w", op, spec.From, err)
		}

		kept := make([]bson.M, 0, len(rows))
		for _, row := range rows {
			var match bson.M
			if v, ok := Get(row, spec.LocalField); ok {
				if k, ok := Key(v); ok {
					match = idx[k]
				}
			}

			if match == nil {
				if spec.Cardinality == One {
					continue
				}
				delete(row, spec.As)
				kept = append(kept, row)
				continue
			}

			row[spec.As] = match
			kept = append(kept, row)
		}
		rows = kept
	}

	return rows, nil
}

func (e *Executor) table(ctx context.Context, spec Spec) (index, error) {
	name := spec.From + "#" + spec.foreignField()
	if idx, ok := e.tables[name]; ok {
		return idx, nil
	}

	docs, err := e.src.All(ctx, spec.From)
	if err != nil {
		return nil, err
	}

	idx := make(index, len(docs))
	for _, doc := range docs {
		v, ok := Get(doc, spec.foreignField())
		if !ok {
			continue
		}
		k, ok := Key(v)
		if !ok {
			continue
		}
		// first document wins, as $lookup + $unwind keeps natural order
		if _, dup := idx[k]; !dup {
			idx[k] = doc
		}
	}
	e.tables[name] = idx

	return idx, nil
}

func cloneAll(rows []bson.M) []bson.M {
	out := make([]bson.M, len(rows))
	for i, row := range rows {
		c := make(bson.M, len(row)+4)
		for k, v := range row {
			c[k] = v
		}
		out[i] = c
	}
	return out
}
