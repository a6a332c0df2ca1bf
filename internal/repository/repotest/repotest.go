// Package repotest provides collection doubles for service and handler tests.
package repotest

import (
	"context"
	"errors"

	"github.com/elmufurqaan/site/backend/go-services/internal/repository"
	"go.mongodb.org/mongo-driver/bson"
)

// ErrStore is returned by Failing when no error is set.
var ErrStore = errors.New("store unavailable")

// Failing is a Collection whose every operation fails.
type Failing struct {
	Err error
}

func (f Failing) err() error {
	if f.Err == nil {
		return ErrStore
	}
	return f.Err
}

func (f Failing) Name() string { return "failing" }

func (f Failing) Find(context.Context, bson.M, *repository.FindOptions, interface{}) error {
	return f.err()
}

func (f Failing) FindOne(context.Context, bson.M, interface{}) error { return f.err() }

func (f Failing) InsertOne(context.Context, interface{}) (string, error) { return "", f.err() }

func (f Failing) UpdateOne(context.Context, bson.M, bson.M) (repository.UpdateResult, error) {
	return repository.UpdateResult{}, f.err()
}

func (f Failing) ReplaceOne(context.Context, bson.M, interface{}, bool) (repository.UpdateResult, error) {
	return repository.UpdateResult{}, f.err()
}

func (f Failing) DeleteOne(context.Context, bson.M) (int64, error) { return 0, f.err() }

func (f Failing) DeleteMany(context.Context, bson.M) (int64, error) { return 0, f.err() }

func (f Failing) CountDocuments(context.Context, bson.M) (int64, error) { return 0, f.err() }

var _ repository.Collection = Failing{}
