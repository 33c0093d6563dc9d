// AngelaMos | 2026
// repository.go

package avatar

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/bite-platform/bite-backend/internal/core"
)

// Blob is a content-addressed image. Key is the sha256 of Content, so
// identical uploads share one row and rows are immutable.
type Blob struct {
	Key         string    `db:"key"`
	Content     []byte    `db:"content"`
	ContentType string    `db:"content_type"`
	Size        int       `db:"size"`
	CreatedAt   time.Time `db:"created_at"`
}

type Repository interface {
	Put(ctx context.Context, blob *Blob) error
	Get(ctx context.Context, key string) (*Blob, error)
}

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

// Put is idempotent: re-uploading the same bytes hits the conflict
// clause and leaves the existing row untouched.
func (r *repository) Put(ctx context.Context, blob *Blob) error {
	query := `
		INSERT INTO blobs (key, content, content_type, size)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (key) DO NOTHING`

	_, err := r.db.ExecContext(ctx, query,
		blob.Key,
		blob.Content,
		blob.ContentType,
		blob.Size,
	)
	if err != nil {
		return fmt.Errorf("put blob: %w", err)
	}

	return nil
}

func (r *repository) Get(ctx context.Context, key string) (*Blob, error) {
	query := `
		SELECT key, content, content_type, size, created_at
		FROM blobs
		WHERE key = $1`

	var blob Blob
	err := r.db.GetContext(ctx, &blob, query, key)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get blob: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get blob: %w", err)
	}

	return &blob, nil
}
