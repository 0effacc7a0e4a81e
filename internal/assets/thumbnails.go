package assets

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/atelierbuild/atelier/internal/logfields"
	"github.com/atelierbuild/atelier/internal/media"
	"github.com/atelierbuild/atelier/internal/storage"
)

// Provider thumbnail CDN endpoints. YouTube's maxres variant is not
// published for every video, so a hqdefault retry follows it. These are
// variables so tests can point them at a local server.
var (
	vimeoThumbURL    = "https://vumbnail.com/%s.jpg"
	youtubeMaxResURL = "https://img.youtube.com/vi/%s/maxresdefault.jpg"
	youtubeFallback  = "https://img.youtube.com/vi/%s/hqdefault.jpg"
)

const maxThumbnailBytes = 10 * 1024 * 1024

// NewThumbnailClient creates an HTTP client for thumbnail downloads.
// Redirects are not followed automatically; fetchBytes follows a single
// 3xx hop itself.
func NewThumbnailClient() *http.Client {
	return &http.Client{
		Timeout: 15 * time.Second,
		CheckRedirect: func(_ *http.Request, _ []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
}

// fetchThumbnail downloads the provider thumbnail for a video item to
// destPath. An existing destination file skips the fetch entirely, which
// makes repeated builds idempotent offline.
func (p *Pipeline) fetchThumbnail(ctx context.Context, item media.Item, destPath string) error {
	if storage.Exists(destPath) {
		p.log.Debug("Thumbnail already downloaded, skipping fetch", logfields.Path(destPath))
		return nil
	}

	var candidates []string
	switch item.Kind {
	case media.KindVimeo:
		candidates = []string{fmt.Sprintf(vimeoThumbURL, item.VideoID)}
	case media.KindYouTube:
		candidates = []string{
			fmt.Sprintf(youtubeMaxResURL, item.VideoID),
			fmt.Sprintf(youtubeFallback, item.VideoID),
		}
	default:
		return fmt.Errorf("not a video item: %s", item.Kind)
	}

	var lastErr error
	for _, url := range candidates {
		data, err := p.fetchBytes(ctx, url)
		if err != nil {
			p.log.Warn("Thumbnail fetch attempt failed", logfields.URL(url), logfields.Error(err))
			lastErr = err
			continue
		}
		p.log.Debug("Thumbnail downloaded", logfields.URL(url), logfields.Path(destPath))
		return storage.WriteFile(destPath, data)
	}
	return fmt.Errorf("fetch %s thumbnail %s: %w", item.Kind, item.VideoID, lastErr)
}

// fetchBytes performs a GET, following at most one redirect.
func (p *Pipeline) fetchBytes(ctx context.Context, url string) ([]byte, error) {
	resp, err := p.doGet(ctx, url)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode >= 300 && resp.StatusCode < 400 {
		location, locErr := resp.Location()
		_ = resp.Body.Close()
		if locErr != nil {
			return nil, fmt.Errorf("fetch %s: HTTP %d without Location", url, resp.StatusCode)
		}
		if resp, err = p.doGet(ctx, location.String()); err != nil {
			return nil, err
		}
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("fetch %s: HTTP %d", url, resp.StatusCode)
	}

	limited := io.LimitReader(resp.Body, maxThumbnailBytes+1)
	data, err := io.ReadAll(limited)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	if len(data) > maxThumbnailBytes {
		return nil, fmt.Errorf("fetch %s: response too large", url)
	}
	return data, nil
}

func (p *Pipeline) doGet(ctx context.Context, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", url, err)
	}
	return resp, nil
}
