// Package media accepts image uploads (banner pictures, logos) and stores
// them in object storage. Clients put the returned url into the banner image
// or logo fields.
package media

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"

	"github.com/elmufurqaan/site/backend/go-services/internal/storage"
	"github.com/elmufurqaan/site/backend/go-services/pkg/apperr"
)

const (
	// MaxUploadSize is the largest accepted file.
	MaxUploadSize = 5 << 20
	// PresignExpiry is used when no public base URL is configured.
	PresignExpiry = 7 * 24 * time.Hour

	keyPrefix = "uploads/"
)

// ObjectStore is the subset of storage.MinIOStorage used here.
type ObjectStore interface {
	UploadFile(ctx context.Context, key string, r io.Reader, size int64, contentType string) error
	DownloadFile(ctx context.Context, key string) (io.ReadCloser, string, error)
	GetPresignedURL(ctx context.Context, key string, expires time.Duration) (string, error)
}

// Upload describes a stored object.
type Upload struct {
	Key         string `json:"key"`
	URL         string `json:"url"`
	ContentType string `json:"contentType"`
	Size        int64  `json:"size"`
}

type Service interface {
	Upload(ctx context.Context, r io.Reader) (*Upload, error)
	Open(ctx context.Context, key string) (io.ReadCloser, string, error)
}

type service struct {
	store     ObjectStore
	publicURL string
	now       func() time.Time
	newID     func() string
}

// NewService stores uploads in store. When publicURL is set, object URLs are
// publicURL/key; otherwise they are presigned.
func NewService(store ObjectStore, publicURL string) Service {
	return &service{
		store:     store,
		publicURL: strings.TrimRight(publicURL, "/"),
		now:       time.Now,
		newID:     func() string { return uuid.NewString() },
	}
}

func (s *service) Upload(ctx context.Context, r io.Reader) (*Upload, error) {
	data, err := io.ReadAll(io.LimitReader(r, MaxUploadSize+1))
	if err != nil {
		return nil, apperr.BadRequest("Failed to read upload")
	}
	if len(data) == 0 {
		return nil, apperr.Validation("File is required")
	}
	if len(data) > MaxUploadSize {
		return nil, apperr.Validation("File exceeds the 5 MB limit")
	}
	mt := mimetype.Detect(data)
	if !strings.HasPrefix(mt.String(), "image/") {
		return nil, apperr.Validation("Only image uploads are allowed")
	}

	now := s.now().UTC()
	key := fmt.Sprintf("%s%04d/%02d/%s%s", keyPrefix, now.Year(), int(now.Month()), s.newID(), mt.Extension())
	if err := s.store.UploadFile(ctx, key, bytes.NewReader(data), int64(len(data)), mt.String()); err != nil {
		return nil, apperr.Internal("Failed to upload file", err).WithOp("media.Upload")
	}
	u := &Upload{Key: key, ContentType: mt.String(), Size: int64(len(data))}
	if s.publicURL != "" {
		u.URL = s.publicURL + "/" + key
		return u, nil
	}
	u.URL, err = s.store.GetPresignedURL(ctx, key, PresignExpiry)
	if err != nil {
		return nil, apperr.Internal("Failed to upload file", err).WithOp("media.Upload")
	}
	return u, nil
}

// Open streams a previously uploaded object.
func (s *service) Open(ctx context.Context, key string) (io.ReadCloser, string, error) {
	key = strings.TrimPrefix(key, "/")
	if !strings.HasPrefix(key, keyPrefix) || strings.Contains(key, "..") {
		return nil, "", apperr.NotFound("File not found")
	}
	rc, ct, err := s.store.DownloadFile(ctx, key)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, "", apperr.NotFound("File not found")
		}
		return nil, "", apperr.Internal("Failed to read file", err).WithOp("media.Open")
	}
	return rc, ct, nil
}
