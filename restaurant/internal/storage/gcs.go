package storage

import (
	"context"
	"io"
	"net/url"
	"time"

	"cloud.google.com/go/storage"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"google.golang.org/api/option"

	"github.com/Astemirdum/friendly-eats/pkg/circuit_breaker"
	"github.com/Astemirdum/friendly-eats/restaurant/internal/errs"
)

// openWriter starts an object write. The write is aborted by cancelling ctx;
// Close commits it.
type openWriter func(ctx context.Context, object, contentType string) io.WriteCloser

type gcsUploader struct {
	client *storage.Client
	bucket string
	open   openWriter
	cb     circuit_breaker.CircuitBreaker
	log    *zap.Logger
}

// NewGCS uses application default credentials unless opts say otherwise.
func NewGCS(ctx context.Context, bucket string, log *zap.Logger, opts ...option.ClientOption) (*gcsUploader, error) {
	client, err := storage.NewClient(ctx, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "storage.NewClient")
	}
	open := func(ctx context.Context, object, contentType string) io.WriteCloser {
		w := client.Bucket(bucket).Object(object).NewWriter(ctx)
		w.ContentType = contentType
		return w
	}
	return newGCSUploader(client, bucket, open, log), nil
}

func newGCSUploader(client *storage.Client, bucket string, open openWriter, log *zap.Logger) *gcsUploader {
	return &gcsUploader{
		client: client,
		bucket: bucket,
		open:   open,
		cb:     circuit_breaker.New(10, 30*time.Second, 0.5, 3),
		log:    log.Named("gcs"),
	}
}

// bodyReader remembers read errors so they can be told apart from write errors.
type bodyReader struct {
	r   io.Reader
	err error
}

func (b *bodyReader) Read(p []byte) (int, error) {
	n, err := b.r.Read(p)
	if err != nil && err != io.EOF {
		b.err = err
	}
	return n, err
}

func (u *gcsUploader) Upload(ctx context.Context, object, contentType string, body io.Reader) (string, error) {
	err := u.cb.Call(func() error {
		wctx, cancel := context.WithCancel(ctx)
		defer cancel()

		src := &bodyReader{r: body}
		w := u.open(wctx, object, contentType)
		if _, err := io.Copy(w, src); err != nil {
			// abort so no partial object replaces the current one
			cancel()
			_ = w.Close()
			if src.err != nil || ctx.Err() != nil {
				return circuit_breaker.Skip(err)
			}
			return err
		}
		if err := w.Close(); err != nil {
			if ctx.Err() != nil {
				return circuit_breaker.Skip(err)
			}
			return err
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, circuit_breaker.ErrOpenCB) {
			u.log.Warn("upload rejected", zap.Stringer("breaker", u.cb.State()))
			return "", errs.ErrBackendUnavailable
		}
		return "", errors.Wrap(err, "gcs upload")
	}
	u.log.Debug("uploaded", zap.String("object", object))
	return (&url.URL{
		Scheme: "https",
		Host:   "storage.googleapis.com",
		Path:   "/" + u.bucket + "/" + object,
	}).String(), nil
}

func (u *gcsUploader) Close() error {
	if u.client == nil {
		return nil
	}
	return u.client.Close()
}
