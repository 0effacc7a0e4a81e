// Package media resolves a project's displayable media: local images and
// PDFs partitioned from its media folder, plus remote video embeds parsed
// from metadata URLs.
//
// There is exactly one canonical ordered item list per project (images,
// then PDFs, then Vimeo, then YouTube). The carousel consumes the full
// list; the lightbox consumes a filtered view over the same list, so the
// two can never drift out of index alignment.
package media

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Kind discriminates the media item variants.
type Kind int

const (
	KindImage Kind = iota
	KindPDF
	KindVimeo
	KindYouTube
)

func (k Kind) String() string {
	switch k {
	case KindImage:
		return "image"
	case KindPDF:
		return "pdf"
	case KindVimeo:
		return "vimeo"
	case KindYouTube:
		return "youtube"
	default:
		return "unknown"
	}
}

// Item is one displayable media entry.
//
// For local kinds Source is the bare filename inside the project's media
// folder; for video kinds Source is the original URL and VideoID the
// provider-specific ID extracted from it.
type Item struct {
	Kind    Kind
	Source  string
	VideoID string
}

// EmbedURL returns the provider embed player URL for video items and the
// empty string for local items.
func (i Item) EmbedURL() string {
	switch i.Kind {
	case KindVimeo:
		return "https://player.vimeo.com/video/" + i.VideoID
	case KindYouTube:
		return "https://www.youtube.com/embed/" + i.VideoID
	default:
		return ""
	}
}

// ThumbFile returns the file name of the item's thumbnail derivative inside
// the output images folder, or the empty string when no derivative exists
// for the kind (PDFs are copied verbatim, not thumbnailed).
func (i Item) ThumbFile() string {
	switch i.Kind {
	case KindImage:
		return Stem(i.Source) + "-thumb.webp"
	case KindVimeo, KindYouTube:
		return fmt.Sprintf("%s-%s-thumb.jpg", i.Kind, i.VideoID)
	default:
		return ""
	}
}

// Stem returns a filename without its extension.
func Stem(name string) string {
	return strings.TrimSuffix(name, filepath.Ext(name))
}

// IsImageFile reports whether a filename has a recognized raster image
// extension, case-insensitively.
func IsImageFile(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".jpg", ".jpeg", ".png", ".gif", ".webp":
		return true
	default:
		return false
	}
}

// IsPDFFile reports whether a filename is a PDF, case-insensitively.
func IsPDFFile(name string) bool {
	return strings.EqualFold(filepath.Ext(name), ".pdf")
}
