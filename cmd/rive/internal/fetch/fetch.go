package fetch

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"hash"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"
)

const maxJSON = 1 << 20

// Downloader fetches release assets over HTTP.
type Downloader struct {
	client *http.Client
	// UserAgent is sent with every request when set.
	UserAgent string
}

// NewDownloader creates a downloader whose requests time out after timeout.
func NewDownloader(timeout time.Duration) *Downloader {
	return &Downloader{
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

// DefaultDownloader returns a downloader with a 2-minute timeout.
func DefaultDownloader() *Downloader {
	return NewDownloader(2 * time.Minute)
}

func (d *Downloader) get(ctx context.Context, url, accept string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	if accept != "" {
		req.Header.Set("Accept", accept)
	}
	if d.UserAgent != "" {
		req.Header.Set("User-Agent", d.UserAgent)
	}
	resp, err := d.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", url, err)
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("fetch failed: %s returned %s", url, resp.Status)
	}
	return resp, nil
}

// Download writes the body at url to destPath. Nothing appears at destPath
// unless the whole body arrived.
func (d *Downloader) Download(ctx context.Context, url, destPath string) error {
	return d.download(ctx, url, destPath, nil, "")
}

// DownloadVerified is Download for an asset with a known SHA-256 digest.
// The digest is computed while streaming; a mismatch returns a
// *ChecksumError and leaves nothing at destPath.
func (d *Downloader) DownloadVerified(ctx context.Context, url, destPath, expectedSHA256 string) error {
	return d.download(ctx, url, destPath, sha256.New(), expectedSHA256)
}

func (d *Downloader) download(ctx context.Context, url, destPath string, h hash.Hash, expected string) error {
	dir := filepath.Dir(destPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	// Same directory, so the final rename is atomic
	tmpFile, err := os.CreateTemp(dir, ".download-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	success := false
	defer func() {
		if !success {
			tmpFile.Close()
			os.Remove(tmpPath)
		}
	}()

	resp, err := d.get(ctx, url, "")
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	var w io.Writer = tmpFile
	if h != nil {
		w = io.MultiWriter(tmpFile, h)
	}
	if _, err := io.Copy(w, resp.Body); err != nil {
		return fmt.Errorf("failed to write download: %w", err)
	}
	if h != nil {
		if err := matchDigest(destPath, expected, hex.EncodeToString(h.Sum(nil))); err != nil {
			return err
		}
	}

	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Rename(tmpPath, destPath); err != nil {
		return fmt.Errorf("failed to rename temp file: %w", err)
	}
	success = true
	return nil
}

// DownloadJSON returns the body at url. Bodies larger than 1 MiB are
// rejected.
func (d *Downloader) DownloadJSON(ctx context.Context, url string) ([]byte, error) {
	resp, err := d.get(ctx, url, "application/json")
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxJSON+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	if len(body) > maxJSON {
		return nil, fmt.Errorf("fetch failed: %s returned more than %d bytes", url, maxJSON)
	}
	return body, nil
}
