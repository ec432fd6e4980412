package storage

import (
	"context"
	"io"
	"path"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Astemirdum/friendly-eats/restaurant/config"
)

const (
	DriverGCS   = "gcs"
	DriverLocal = "local"
)

// Uploader writes an object and returns the URL it is publicly reachable at.
type Uploader interface {
	Upload(ctx context.Context, object, contentType string, body io.Reader) (string, error)
}

// ObjectPath is where a restaurant image lives in the bucket.
func ObjectPath(restaurantID, fileName string) string {
	name := path.Base(strings.ReplaceAll(fileName, `\`, "/"))
	return path.Join("images", restaurantID, name)
}

func New(ctx context.Context, cfg config.Storage, log *zap.Logger) (Uploader, error) {
	switch cfg.Driver {
	case DriverGCS:
		if cfg.Bucket == "" {
			return nil, errors.New("storage bucket is required for the gcs driver")
		}
		up, err := NewGCS(ctx, cfg.Bucket, log)
		if err != nil {
			return nil, err
		}
		return up, nil
	case DriverLocal, "":
		up, err := NewLocal(cfg.Dir, cfg.PublicURL)
		if err != nil {
			return nil, err
		}
		return up, nil
	}
	return nil, errors.Errorf("unknown storage driver %q", cfg.Driver)
}
