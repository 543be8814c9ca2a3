package dataset

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/cenkalti/backoff/v4"

	"snack-insights-go/internal/logger"
)

var httpClient = &http.Client{
	Timeout: 60 * time.Second,
}

// Fetch downloads the source dataset to dest, retrying transient failures
// with exponential backoff. Client errors (4xx) are permanent: a bad URL
// will not get better on retry.
func Fetch(ctx context.Context, url, dest string) error {
	log := logger.New().WithComponent("dataset.fetch").WithField("url", url)
	log.Info("downloading dataset")

	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return fmt.Errorf("create dest dir: %w", err)
	}

	op := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return backoff.Permanent(fmt.Errorf("build request: %w", err))
		}
		resp, err := httpClient.Do(req)
		if err != nil {
			log.WithError(err).Warn("download attempt failed")
			return err
		}
		defer resp.Body.Close()

		if resp.StatusCode >= 400 && resp.StatusCode < 500 {
			return backoff.Permanent(fmt.Errorf("fetch %s: status %d", url, resp.StatusCode))
		}
		if resp.StatusCode != http.StatusOK {
			log.WithField("http_status", resp.StatusCode).Warn("non-200 response, will retry")
			return fmt.Errorf("fetch %s: status %d", url, resp.StatusCode)
		}

		// Write to a temp file first so a partial download never replaces
		// an existing good dataset.
		tmp, err := os.CreateTemp(filepath.Dir(dest), ".download-*")
		if err != nil {
			return backoff.Permanent(fmt.Errorf("create temp file: %w", err))
		}
		n, err := io.Copy(tmp, resp.Body)
		if cerr := tmp.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			os.Remove(tmp.Name())
			log.WithError(err).Warn("download interrupted, will retry")
			return err
		}
		if err := os.Rename(tmp.Name(), dest); err != nil {
			os.Remove(tmp.Name())
			return backoff.Permanent(fmt.Errorf("move into place: %w", err))
		}
		log.WithField("bytes", n).Info("dataset downloaded")
		return nil
	}

	b := backoff.NewExponentialBackOff()
	b.MaxElapsedTime = 5 * time.Minute
	if err := backoff.Retry(op, backoff.WithContext(b, ctx)); err != nil {
		return fmt.Errorf("fetch dataset: %w", err)
	}
	return nil
}
