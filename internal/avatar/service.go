// AngelaMos | 2026
// service.go

package avatar

import (
	"context"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/bite-platform/bite-backend/internal/core"
)

// MaxAvatarBytes caps decoded avatar size at 2 MiB.
const MaxAvatarBytes = 2 << 20

var allowedContentTypes = map[string]struct{}{
	"image/png":  {},
	"image/jpeg": {},
	"image/gif":  {},
	"image/webp": {},
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// StoreDataURI decodes a base64 data URI, stores the bytes under their
// sha256, and returns the key the user row should reference.
func (s *Service) StoreDataURI(ctx context.Context, dataURI string) (string, error) {
	contentType, payload, err := parseDataURI(dataURI)
	if err != nil {
		return "", err
	}

	content, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", core.ValidationError("avatar is not valid base64")
	}

	if len(content) == 0 {
		return "", core.ValidationError("avatar is empty")
	}
	if len(content) > MaxAvatarBytes {
		return "", core.ValidationError("avatar exceeds the 2 MiB limit")
	}

	sum := sha256.Sum256(content)
	key := hex.EncodeToString(sum[:])

	blob := &Blob{
		Key:         key,
		Content:     content,
		ContentType: contentType,
		Size:        len(content),
	}

	if err := s.repo.Put(ctx, blob); err != nil {
		return "", err
	}

	return key, nil
}

func (s *Service) Get(ctx context.Context, key string) (*Blob, error) {
	b, err := s.repo.Get(ctx, key)
	if err != nil {
		return nil, core.NotFoundError("avatar not found")
	}
	return b, nil
}

func parseDataURI(dataURI string) (contentType, payload string, err error) {
	rest, ok := strings.CutPrefix(dataURI, "data:")
	if !ok {
		return "", "", core.ValidationError("avatar must be a data URI")
	}

	meta, payload, ok := strings.Cut(rest, ",")
	if !ok {
		return "", "", core.ValidationError("avatar must be a data URI")
	}

	contentType, encoding, ok := strings.Cut(meta, ";")
	if !ok || encoding != "base64" {
		return "", "", core.ValidationError("avatar must be base64 encoded")
	}

	if _, allowed := allowedContentTypes[contentType]; !allowed {
		return "", "", core.ValidationError(
			fmt.Sprintf("unsupported avatar content type %q", contentType),
		)
	}

	return contentType, payload, nil
}
