package media

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func mediaDir(t *testing.T, names ...string) string {
	t.Helper()
	dir := t.TempDir()
	for _, name := range names {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644))
	}
	return dir
}

func discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func TestResolve_PartitionsAndSortsByExtension(t *testing.T) {
	dir := mediaDir(t, "02-side.JPG", "01-front.jpg", "notes.txt", "sheet.pdf", "03-detail.webp")

	set := Resolve(dir, nil, nil, discard())

	require.Len(t, set.Items, 4)
	require.Equal(t, Item{Kind: KindImage, Source: "01-front.jpg"}, set.Items[0])
	require.Equal(t, Item{Kind: KindImage, Source: "02-side.JPG"}, set.Items[1])
	require.Equal(t, Item{Kind: KindImage, Source: "03-detail.webp"}, set.Items[2])
	require.Equal(t, Item{Kind: KindPDF, Source: "sheet.pdf"}, set.Items[3])
}

func TestResolve_MissingImagesDir_YieldsVideoOnlySet(t *testing.T) {
	set := Resolve(filepath.Join(t.TempDir(), "absent"),
		[]string{"https://vimeo.com/123456789"}, nil, discard())

	require.Len(t, set.Items, 1)
	require.Equal(t, KindVimeo, set.Items[0].Kind)
	require.Equal(t, "123456789", set.Items[0].VideoID)
}

func TestResolve_CanonicalOrder_ImagesPDFsVimeoYouTube(t *testing.T) {
	dir := mediaDir(t, "a.jpg", "b.pdf")

	set := Resolve(dir,
		[]string{"https://vimeo.com/111"},
		[]string{"https://youtu.be/abc123xyz"}, discard())

	kinds := make([]Kind, 0, len(set.Items))
	for _, it := range set.Items {
		kinds = append(kinds, it.Kind)
	}
	require.Equal(t, []Kind{KindImage, KindPDF, KindVimeo, KindYouTube}, kinds)
}

func TestResolve_MalformedVideoURL_IsSkippedWithoutCrash(t *testing.T) {
	dir := mediaDir(t, "a.jpg")

	set := Resolve(dir, []string{"https://example.com/not-a-video"}, nil, discard())

	require.Len(t, set.Items, 1)
	require.Equal(t, KindImage, set.Items[0].Kind)
}

func TestPopupItems_FiltersToImagesAndPDFsInCanonicalOrder(t *testing.T) {
	dir := mediaDir(t, "a.jpg", "b.pdf")
	set := Resolve(dir, []string{"https://vimeo.com/111"}, nil, discard())

	popup := set.PopupItems()

	require.Len(t, popup, 2)
	require.Equal(t, set.Items[0], popup[0])
	require.Equal(t, set.Items[1], popup[1])
}

func TestThumbnail_LocalImageBeatsVimeo(t *testing.T) {
	dir := mediaDir(t, "a.jpg")
	set := Resolve(dir, []string{"https://vimeo.com/123456789"}, nil, discard())

	thumb, ok := set.Thumbnail()
	require.True(t, ok)
	require.Equal(t, KindImage, thumb.Kind)
	require.Equal(t, "a-thumb.webp", thumb.ThumbFile())
}

func TestThumbnail_PDFBeatsVideos(t *testing.T) {
	dir := mediaDir(t, "sheet.pdf")
	set := Resolve(dir, []string{"https://vimeo.com/1"}, []string{"https://youtu.be/abc123xyz"}, discard())

	thumb, ok := set.Thumbnail()
	require.True(t, ok)
	require.Equal(t, KindPDF, thumb.Kind)
}

func TestThumbnail_EmptySet_ReportsNotOK(t *testing.T) {
	_, ok := Set{}.Thumbnail()
	require.False(t, ok)
}

func TestExtractVimeoID_KnownShapes(t *testing.T) {
	cases := []struct {
		url string
		id  string
	}{
		{"https://vimeo.com/123456789", "123456789"},
		{"https://player.vimeo.com/video/123456789", "123456789"},
	}
	for _, tc := range cases {
		id, ok := ExtractVimeoID(tc.url)
		require.True(t, ok, tc.url)
		require.Equal(t, tc.id, id)
	}
}

func TestExtractYouTubeID_KnownShapes(t *testing.T) {
	cases := []struct {
		url string
		id  string
	}{
		{"https://www.youtube.com/watch?v=dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"https://www.youtube.com/watch?list=PL1&v=dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"https://youtu.be/dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"https://www.youtube.com/embed/dQw4w9WgXcQ", "dQw4w9WgXcQ"},
	}
	for _, tc := range cases {
		id, ok := ExtractYouTubeID(tc.url)
		require.True(t, ok, tc.url)
		require.Equal(t, tc.id, id)
	}
}

func TestExtractIDs_UnrecognizedShapes_ReportNotOK(t *testing.T) {
	_, ok := ExtractVimeoID("https://vimeo.com/about")
	require.False(t, ok)

	_, ok = ExtractYouTubeID("https://www.youtube.com/results?search_query=x")
	require.False(t, ok)
}

func TestEmbedURL_PerProvider(t *testing.T) {
	v := Item{Kind: KindVimeo, VideoID: "123456789"}
	require.Equal(t, "https://player.vimeo.com/video/123456789", v.EmbedURL())

	y := Item{Kind: KindYouTube, VideoID: "dQw4w9WgXcQ"}
	require.Equal(t, "https://www.youtube.com/embed/dQw4w9WgXcQ", y.EmbedURL())

	require.Empty(t, Item{Kind: KindImage, Source: "a.jpg"}.EmbedURL())
}

func TestThumbFile_PerKind(t *testing.T) {
	require.Equal(t, "01-front-thumb.webp", Item{Kind: KindImage, Source: "01-front.jpg"}.ThumbFile())
	require.Equal(t, "vimeo-123-thumb.jpg", Item{Kind: KindVimeo, VideoID: "123"}.ThumbFile())
	require.Equal(t, "youtube-abc-thumb.jpg", Item{Kind: KindYouTube, VideoID: "abc"}.ThumbFile())
	require.Empty(t, Item{Kind: KindPDF, Source: "sheet.pdf"}.ThumbFile())
}
