package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func TestMongoCollection(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("find decodes batch", func(mt *mtest.T) {
		c := NewMongoCollection(mt.Coll)
		ns := mt.Coll.Database().Name() + "." + mt.Coll.Name()
		first := mtest.CreateCursorResponse(1, ns, mtest.FirstBatch,
			bson.D{{Key: "_id", Value: primitive.NewObjectID()}, {Key: "title", Value: "a"}},
			bson.D{{Key: "_id", Value: primitive.NewObjectID()}, {Key: "title", Value: "b"}})
		end := mtest.CreateCursorResponse(0, ns, mtest.NextBatch)
		mt.AddMockResponses(first, end)

		var out []bson.M
		require.NoError(mt, c.Find(context.Background(), nil, NewestFirst(), &out))
		require.Len(mt, out, 2)
		require.Equal(mt, "a", out[0]["title"])
	})

	mt.Run("find one maps no documents", func(mt *mtest.T) {
		c := NewMongoCollection(mt.Coll)
		ns := mt.Coll.Database().Name() + "." + mt.Coll.Name()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch))

		var out bson.M
		err := c.FindOne(context.Background(), bson.M{"_id": primitive.NewObjectID()}, &out)
		require.ErrorIs(mt, err, ErrNotFound)
	})

	mt.Run("insert returns hex id", func(mt *mtest.T) {
		c := NewMongoCollection(mt.Coll)
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		id, err := c.InsertOne(context.Background(), bson.M{"title": "x"})
		require.NoError(mt, err)
		require.True(mt, primitive.IsValidObjectID(id))
	})

	mt.Run("update reports counts", func(mt *mtest.T) {
		c := NewMongoCollection(mt.Coll)
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: 1},
			bson.E{Key: "nModified", Value: 1}))

		res, err := c.UpdateOne(context.Background(), bson.M{"_id": primitive.NewObjectID()}, bson.M{"$set": bson.M{"a": 1}})
		require.NoError(mt, err)
		require.Equal(mt, int64(1), res.MatchedCount)
		require.Equal(mt, int64(1), res.ModifiedCount)
	})

	mt.Run("delete many reports count", func(mt *mtest.T) {
		c := NewMongoCollection(mt.Coll)
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 2}))

		n, err := c.DeleteMany(context.Background(), bson.M{"_id": bson.M{"$in": []primitive.ObjectID{primitive.NewObjectID()}}})
		require.NoError(mt, err)
		require.Equal(mt, int64(2), n)
	})

	mt.Run("store error surfaces", func(mt *mtest.T) {
		c := NewMongoCollection(mt.Coll)
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{Code: 2, Message: "boom", Name: "BadValue"}))

		_, err := c.DeleteOne(context.Background(), bson.M{})
		require.Error(mt, err)
		require.NotErrorIs(mt, err, ErrNotFound)
	})
}
