package database

import (
	"context"
	"testing"
	"time"

	"github.com/elmufurqaan/site/backend/go-services/internal/config"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestOpen_MemoryFallback(t *testing.T) {
	s, err := Open(context.Background(), config.MongoDBConfig{AllowMemory: true})
	require.NoError(t, err)
	require.IsType(t, &MemoryStore{}, s)
	require.NoError(t, s.Ping(context.Background()))
	require.NoError(t, s.Close(context.Background()))
}

func TestOpen_RequiresMongoWhenMemoryNotAllowed(t *testing.T) {
	_, err := Open(context.Background(), config.MongoDBConfig{})
	require.ErrorIs(t, err, config.ErrMongoNotConfigured)
}

func TestMemoryStore_SharesCollectionsByName(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore()
	_, err := s.Collection(BlogCollection).InsertOne(ctx, bson.M{"title": "x"})
	require.NoError(t, err)

	n, err := s.Collection(BlogCollection).CountDocuments(ctx, nil)
	require.NoError(t, err)
	require.Equal(t, int64(1), n)

	n, err = s.Collection(VideoCollection).CountDocuments(ctx, nil)
	require.NoError(t, err)
	require.Zero(t, n)

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	require.Error(t, s.Ping(cancelled))
}

func TestOpen_RetriesThenFails(t *testing.T) {
	attempts, backoff := ConnectAttempts, InitialBackoff
	ConnectAttempts, InitialBackoff = 2, time.Millisecond
	t.Cleanup(func() { ConnectAttempts, InitialBackoff = attempts, backoff })

	_, err := Open(context.Background(), config.MongoDBConfig{URI: "not-a-mongo-uri", Database: "site", Timeout: time.Second})
	require.Error(t, err)
	require.Contains(t, err.Error(), "after 2 attempts")
	require.Contains(t, err.Error(), "dial site")
}
