package media

import (
	"log/slog"
	"os"
	"sort"
	"strings"

	"github.com/atelierbuild/atelier/internal/logfields"
)

// Set holds the canonical ordered media list of one project.
type Set struct {
	Items []Item
}

// Resolve builds a project's media set.
//
// Files in imagesDir are partitioned by extension into images and PDFs and
// sorted lexicographically; zero-padded numeric prefixes are the expected
// ordering mechanism. A missing imagesDir means no local media. Video URLs
// that match no known provider shape are skipped with a warning.
func Resolve(imagesDir string, vimeoURLs, youtubeURLs []string, log *slog.Logger) Set {
	if log == nil {
		log = slog.Default()
	}

	var images, pdfs []string
	if entries, err := os.ReadDir(imagesDir); err == nil {
		for _, e := range entries {
			if e.IsDir() || strings.HasPrefix(e.Name(), ".") {
				continue
			}
			switch {
			case IsImageFile(e.Name()):
				images = append(images, e.Name())
			case IsPDFFile(e.Name()):
				pdfs = append(pdfs, e.Name())
			}
		}
	}
	sort.Strings(images)
	sort.Strings(pdfs)

	var set Set
	for _, name := range images {
		set.Items = append(set.Items, Item{Kind: KindImage, Source: name})
	}
	for _, name := range pdfs {
		set.Items = append(set.Items, Item{Kind: KindPDF, Source: name})
	}
	for _, url := range vimeoURLs {
		id, ok := ExtractVimeoID(url)
		if !ok {
			log.Warn("Unrecognized vimeo URL, skipping", logfields.URL(url))
			continue
		}
		set.Items = append(set.Items, Item{Kind: KindVimeo, Source: url, VideoID: id})
	}
	for _, url := range youtubeURLs {
		id, ok := ExtractYouTubeID(url)
		if !ok {
			log.Warn("Unrecognized youtube URL, skipping", logfields.URL(url))
			continue
		}
		set.Items = append(set.Items, Item{Kind: KindYouTube, Source: url, VideoID: id})
	}
	return set
}

// PopupItems returns the lightbox view: the image and PDF subsequence of
// the canonical list, in canonical order.
func (s Set) PopupItems() []Item {
	var out []Item
	for _, it := range s.Items {
		if it.Kind == KindImage || it.Kind == KindPDF {
			out = append(out, it)
		}
	}
	return out
}

// Thumbnail chooses the listing thumbnail for the set: the first item of
// the first non-empty category in priority order image > pdf > vimeo >
// youtube. ok is false when the set is empty.
func (s Set) Thumbnail() (Item, bool) {
	for _, kind := range []Kind{KindImage, KindPDF, KindVimeo, KindYouTube} {
		for _, it := range s.Items {
			if it.Kind == kind {
				return it, true
			}
		}
	}
	return Item{}, false
}

// Videos returns the video items of the set.
func (s Set) Videos() []Item {
	var out []Item
	for _, it := range s.Items {
		if it.Kind == KindVimeo || it.Kind == KindYouTube {
			out = append(out, it)
		}
	}
	return out
}
