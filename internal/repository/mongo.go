package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoCollection implements Collection on a MongoDB collection.
type MongoCollection struct {
	col *mongo.Collection
}

func NewMongoCollection(col *mongo.Collection) *MongoCollection {
	return &MongoCollection{col: col}
}

func (m *MongoCollection) Name() string { return m.col.Name() }

func orEmpty(filter bson.M) bson.M {
	if filter == nil {
		return bson.M{}
	}
	return filter
}

func (m *MongoCollection) Find(ctx context.Context, filter bson.M, opts *FindOptions, results interface{}) error {
	fo := options.Find()
	if opts != nil {
		if opts.Sort != "" {
			dir := 1
			if opts.Descending {
				dir = -1
			}
			fo.SetSort(bson.D{{Key: opts.Sort, Value: dir}})
		}
		if opts.Skip > 0 {
			fo.SetSkip(opts.Skip)
		}
		if opts.Limit > 0 {
			fo.SetLimit(opts.Limit)
		}
	}
	cur, err := m.col.Find(ctx, orEmpty(filter), fo)
	if err != nil {
		return err
	}
	return cur.All(ctx, results)
}

func (m *MongoCollection) FindOne(ctx context.Context, filter bson.M, result interface{}) error {
	err := m.col.FindOne(ctx, orEmpty(filter)).Decode(result)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrNotFound
	}
	return err
}

func (m *MongoCollection) InsertOne(ctx context.Context, doc interface{}) (string, error) {
	res, err := m.col.InsertOne(ctx, doc)
	if err != nil {
		return "", err
	}
	return IDString(res.InsertedID), nil
}

func (m *MongoCollection) UpdateOne(ctx context.Context, filter bson.M, update bson.M) (UpdateResult, error) {
	res, err := m.col.UpdateOne(ctx, orEmpty(filter), update)
	if err != nil {
		return UpdateResult{}, err
	}
	return UpdateResult{MatchedCount: res.MatchedCount, ModifiedCount: res.ModifiedCount, UpsertedID: IDString(res.UpsertedID)}, nil
}

func (m *MongoCollection) ReplaceOne(ctx context.Context, filter bson.M, doc interface{}, upsert bool) (UpdateResult, error) {
	res, err := m.col.ReplaceOne(ctx, orEmpty(filter), doc, options.Replace().SetUpsert(upsert))
	if err != nil {
		return UpdateResult{}, err
	}
	return UpdateResult{MatchedCount: res.MatchedCount, ModifiedCount: res.ModifiedCount, UpsertedID: IDString(res.UpsertedID)}, nil
}

func (m *MongoCollection) DeleteOne(ctx context.Context, filter bson.M) (int64, error) {
	res, err := m.col.DeleteOne(ctx, orEmpty(filter))
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

func (m *MongoCollection) DeleteMany(ctx context.Context, filter bson.M) (int64, error) {
	res, err := m.col.DeleteMany(ctx, orEmpty(filter))
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

func (m *MongoCollection) CountDocuments(ctx context.Context, filter bson.M) (int64, error) {
	return m.col.CountDocuments(ctx, orEmpty(filter))
}
