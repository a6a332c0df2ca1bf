package database

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/elmufurqaan/site/backend/go-services/internal/config"
	"github.com/elmufurqaan/site/backend/go-services/internal/repository"
	"github.com/elmufurqaan/site/backend/go-services/pkg/logger"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collection names.
const (
	BannerCollection  = "banner"
	BlogCollection    = "blogs"
	VideoCollection   = "video"
	QnACollection     = "qna"
	ContactCollection = "contact"
	AboutCollection   = "about"
	LogoCollection    = "logo"
)

// Store owns the process-wide database handle. Modules receive collections
// from it at wiring time; Close is called once on shutdown.
type Store interface {
	Collection(name string) repository.Collection
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}

// MongoStore is a Store on one MongoDB database.
type MongoStore struct {
	client *mongo.Client
	db     *mongo.Database
}

func NewMongoStore(client *mongo.Client, database string) *MongoStore {
	return &MongoStore{client: client, db: client.Database(database)}
}

func (s *MongoStore) Collection(name string) repository.Collection {
	return repository.NewMongoCollection(s.db.Collection(name))
}

func (s *MongoStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, nil)
}

func (s *MongoStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

// MemoryStore keeps every collection in process memory.
type MemoryStore struct {
	mu   sync.Mutex
	cols map[string]*repository.MemoryCollection
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{cols: make(map[string]*repository.MemoryCollection)}
}

// Collection returns the same collection for the same name.
func (s *MemoryStore) Collection(name string) repository.Collection {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.cols[name]
	if !ok {
		c = repository.NewMemoryCollection(name)
		s.cols[name] = c
	}
	return c
}

func (s *MemoryStore) Ping(ctx context.Context) error { return ctx.Err() }

func (s *MemoryStore) Close(ctx context.Context) error { return nil }

// Open connects to MongoDB when configured, otherwise falls back to the
// memory store if the configuration allows it.
func Open(ctx context.Context, cfg config.MongoDBConfig) (Store, error) {
	if cfg.URI == "" {
		if !cfg.AllowMemory {
			return nil, config.ErrMongoNotConfigured
		}
		logger.Warnf("MongoDB not configured; using in-memory store (data is lost on restart)")
		return NewMemoryStore(), nil
	}
	client, err := connectWithRetry(ctx, cfg)
	if err != nil {
		return nil, err
	}
	logger.Infof("connected to MongoDB database %q", cfg.Database)
	return NewMongoStore(client, cfg.Database), nil
}

// ConnectAttempts and InitialBackoff bound the startup retry loop. The
// backoff doubles after each failed attempt.
var (
	ConnectAttempts = 5
	InitialBackoff  = time.Second
)

func connectWithRetry(ctx context.Context, cfg config.MongoDBConfig) (*mongo.Client, error) {
	backoff := InitialBackoff
	var lastErr error
	for attempt := 1; attempt <= ConnectAttempts; attempt++ {
		client, err := dialMongo(ctx, cfg)
		if err == nil {
			return client, nil
		}
		lastErr = err
		logger.Warnf("attempt %d/%d: failed to connect to MongoDB: %v", attempt, ConnectAttempts, err)
		if attempt == ConnectAttempts {
			break
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(backoff):
		}
		backoff *= 2
	}
	return nil, fmt.Errorf("could not connect to MongoDB after %d attempts: %w", ConnectAttempts, lastErr)
}

// dialMongo makes one connection attempt bounded by cfg.Timeout. The client
// is only returned once the server answered a ping.
func dialMongo(ctx context.Context, cfg config.MongoDBConfig) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, cfg.Timeout)
	defer cancel()
	opts := options.Client().ApplyURI(cfg.URI).SetServerSelectionTimeout(cfg.Timeout)
	if cfg.AppName != "" {
		opts.SetAppName(cfg.AppName)
	}
	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", cfg.Database, err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping %s: %w", cfg.Database, err)
	}
	return client, nil
}
