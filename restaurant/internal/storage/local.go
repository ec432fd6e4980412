package storage

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

// localUploader keeps objects on disk; the http server exposes Dir under PublicURL.
type localUploader struct {
	dir       string
	publicURL string
}

func NewLocal(dir, publicURL string) (*localUploader, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrap(err, "create storage dir")
	}
	return &localUploader{dir: dir, publicURL: strings.TrimRight(publicURL, "/")}, nil
}

func (u *localUploader) Upload(ctx context.Context, object, _ string, body io.Reader) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	dst := filepath.Join(u.dir, filepath.FromSlash(object))
	if !strings.HasPrefix(dst, filepath.Clean(u.dir)+string(os.PathSeparator)) {
		return "", errors.Errorf("object %q escapes storage dir", object)
	}
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return "", errors.Wrap(err, "mkdir")
	}
	f, err := os.Create(dst)
	if err != nil {
		return "", errors.Wrap(err, "create")
	}
	if _, err = io.Copy(f, body); err != nil {
		_ = f.Close()
		return "", errors.Wrap(err, "write")
	}
	if err = f.Close(); err != nil {
		return "", err
	}
	return u.publicURL + "/" + object, nil
}
