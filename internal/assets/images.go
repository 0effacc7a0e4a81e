package assets

import (
	"bytes"
	"fmt"
	"image"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/chai2010/webp"
	"github.com/nfnt/resize"

	// Decoders for the supported input formats.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/webp"

	"github.com/atelierbuild/atelier/internal/logfields"
	"github.com/atelierbuild/atelier/internal/media"
	"github.com/atelierbuild/atelier/internal/storage"
)

// optimizeImage writes the two derivatives of one source image:
// <stem>.webp capped at MaxWidth and <stem>-thumb.webp capped at
// ThumbWidth, both preserving aspect ratio and never upscaling.
//
// On any decode or encode failure the original file is copied verbatim into
// destDir instead, and the failure is returned for the report; a single bad
// image never aborts the run.
func (p *Pipeline) optimizeImage(srcPath, destDir, name string) error {
	img, err := decodeImage(srcPath)
	if err != nil {
		return p.fallbackCopy(srcPath, destDir, name, err)
	}

	stem := media.Stem(name)
	width := img.Bounds().Dx()

	full := img
	if width > p.cfg.MaxWidth {
		full = resize.Resize(uint(p.cfg.MaxWidth), 0, img, resize.Bilinear)
	}
	if err := encodeWebP(filepath.Join(destDir, stem+".webp"), full, p.cfg.Quality); err != nil {
		return p.fallbackCopy(srcPath, destDir, name, err)
	}

	thumb := img
	if width > p.cfg.ThumbWidth {
		// Thumbnails shrink hard; Lanczos keeps them crisp.
		thumb = resize.Resize(uint(p.cfg.ThumbWidth), 0, img, resize.Lanczos3)
	}
	if err := encodeWebP(filepath.Join(destDir, stem+"-thumb.webp"), thumb, p.cfg.Quality); err != nil {
		return p.fallbackCopy(srcPath, destDir, name, err)
	}

	p.log.Debug("Image optimized", logfields.File(name), slog.Int("width", width))
	return nil
}

// fallbackCopy preserves the original bytes when optimization fails, so the
// site still has something to show for the image.
func (p *Pipeline) fallbackCopy(srcPath, destDir, name string, cause error) error {
	if copyErr := storage.CopyFile(srcPath, filepath.Join(destDir, name)); copyErr != nil {
		return fmt.Errorf("optimize %s: %w (fallback copy also failed: %v)", name, cause, copyErr)
	}
	return fmt.Errorf("optimize %s, original copied unchanged: %w", name, cause)
}

func decodeImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open image: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}
	return img, nil
}

func encodeWebP(path string, img image.Image, quality int) error {
	var buf bytes.Buffer
	if err := webp.Encode(&buf, img, &webp.Options{Quality: float32(quality)}); err != nil {
		return fmt.Errorf("encode webp: %w", err)
	}
	return storage.WriteFile(path, buf.Bytes())
}
