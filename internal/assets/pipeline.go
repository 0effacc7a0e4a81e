// Package assets produces the optimized output media for a project: two
// webp derivatives per local image, verbatim PDF copies, and downloaded
// provider thumbnails for video embeds.
package assets

import (
	"context"
	"log/slog"
	"net/http"
	"path/filepath"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/atelierbuild/atelier/internal/config"
	"github.com/atelierbuild/atelier/internal/logfields"
	"github.com/atelierbuild/atelier/internal/media"
	"github.com/atelierbuild/atelier/internal/storage"
)

// itemConcurrency bounds how many media items of one project are processed
// at once, shared between image encoding and thumbnail fetches.
const itemConcurrency = 4

// Pipeline transforms one project's media into its output folder.
type Pipeline struct {
	cfg    config.ImagesConfig
	client *http.Client
	log    *slog.Logger
}

// NewPipeline creates a pipeline. A nil client gets the default thumbnail
// client; a nil logger gets slog.Default.
func NewPipeline(cfg config.ImagesConfig, client *http.Client, log *slog.Logger) *Pipeline {
	if client == nil {
		client = NewThumbnailClient()
	}
	if log == nil {
		log = slog.Default()
	}
	return &Pipeline{cfg: cfg, client: client, log: log}
}

// Process materializes every media item of the set under destDir. Items are
// processed concurrently; each item's failure is independent and returned
// rather than aborting the rest.
func (p *Pipeline) Process(ctx context.Context, srcDir, destDir string, set media.Set) []error {
	if len(set.Items) == 0 {
		return nil
	}
	if err := storage.EnsureDir(destDir); err != nil {
		return []error{err}
	}

	var (
		mu       sync.Mutex
		failures []error
	)
	record := func(err error) {
		if err == nil {
			return
		}
		mu.Lock()
		failures = append(failures, err)
		mu.Unlock()
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(itemConcurrency)

	for _, item := range set.Items {
		g.Go(func() error {
			switch item.Kind {
			case media.KindImage:
				record(p.optimizeImage(filepath.Join(srcDir, item.Source), destDir, item.Source))
			case media.KindPDF:
				record(p.copyPDF(filepath.Join(srcDir, item.Source), filepath.Join(destDir, item.Source)))
			case media.KindVimeo, media.KindYouTube:
				record(p.fetchThumbnail(ctx, item, filepath.Join(destDir, item.ThumbFile())))
			}
			return nil
		})
	}
	_ = g.Wait()

	for _, err := range failures {
		p.log.Error("Media item failed", logfields.Path(destDir), logfields.Error(err))
	}
	return failures
}

func (p *Pipeline) copyPDF(src, dst string) error {
	p.log.Debug("Copying PDF", logfields.File(filepath.Base(src)))
	return storage.CopyFile(src, dst)
}
