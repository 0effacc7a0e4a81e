package frontmatter

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSplit_NoFrontmatter_ReturnsBodyOnly(t *testing.T) {
	input := []byte("# Title\n\nHello\n")

	raw, body, had, err := Split(input)
	require.NoError(t, err)
	require.False(t, had)
	require.Empty(t, raw)
	require.Equal(t, input, body)
}

func TestSplit_YAMLFrontmatter_SplitsHeaderAndBody(t *testing.T) {
	input := []byte("---\ntitle: Vessel\n---\nA short statement.\n")

	raw, body, had, err := Split(input)
	require.NoError(t, err)
	require.True(t, had)
	require.Equal(t, []byte("title: Vessel\n"), raw)
	require.Equal(t, []byte("A short statement.\n"), body)
}

func TestSplit_MissingClosingDelimiter_ReturnsError(t *testing.T) {
	input := []byte("---\ntitle: Vessel\nA short statement.\n")

	_, _, had, err := Split(input)
	require.Error(t, err)
	require.False(t, had)
	require.True(t, errors.Is(err, ErrMissingClosingDelimiter))
}

func TestSplit_CRLF_SplitsHeaderAndBody(t *testing.T) {
	input := []byte("---\r\ntitle: Vessel\r\n---\r\nBody\r\n")

	raw, body, had, err := Split(input)
	require.NoError(t, err)
	require.True(t, had)
	require.Equal(t, []byte("title: Vessel\r\n"), raw)
	require.Equal(t, []byte("Body\r\n"), body)
}

func TestSplit_EmptyFrontmatterBlock_SplitsAsHadWithEmptyHeader(t *testing.T) {
	input := []byte("---\n---\nBody\n")

	raw, body, had, err := Split(input)
	require.NoError(t, err)
	require.True(t, had)
	require.Empty(t, raw)
	require.Equal(t, []byte("Body\n"), body)
}

func TestDecode_RecognizedKeys_PopulatesMeta(t *testing.T) {
	raw := []byte("title: Vessel\ndate: Spring 2024\nmaterials: stoneware, oxide wash\n")

	m, err := Decode(raw)
	require.NoError(t, err)
	require.Equal(t, "Vessel", m.Title)
	require.Equal(t, "Spring 2024", m.Date)
	require.Equal(t, "stoneware, oxide wash", m.Materials)
}

func TestDecode_SingleVideoValue_NormalizesToList(t *testing.T) {
	raw := []byte("vimeo: https://vimeo.com/123456789\n")

	m, err := Decode(raw)
	require.NoError(t, err)
	require.Equal(t, StringList{"https://vimeo.com/123456789"}, m.Vimeo)
}

func TestDecode_VideoValueList_KeepsOrder(t *testing.T) {
	raw := []byte("youtube:\n  - https://youtu.be/abc123xyz\n  - https://youtu.be/def456uvw\n")

	m, err := Decode(raw)
	require.NoError(t, err)
	require.Equal(t, StringList{"https://youtu.be/abc123xyz", "https://youtu.be/def456uvw"}, m.YouTube)
}

func TestDecode_VideoValueMapping_ReturnsError(t *testing.T) {
	raw := []byte("vimeo:\n  url: https://vimeo.com/1\n")

	_, err := Decode(raw)
	require.Error(t, err)
}

func TestDecode_Empty_ReturnsZeroMeta(t *testing.T) {
	m, err := Decode(nil)
	require.NoError(t, err)
	require.Equal(t, Meta{}, m)
}

func TestParse_HeaderAndBody_ReturnsBoth(t *testing.T) {
	input := []byte("---\ntitle: Vessel\n---\n**bold** text\n")

	m, body, err := Parse(input)
	require.NoError(t, err)
	require.Equal(t, "Vessel", m.Title)
	require.Equal(t, []byte("**bold** text\n"), body)
}

func TestParse_NoHeader_ReturnsZeroMetaAndFullBody(t *testing.T) {
	input := []byte("just a body\n")

	m, body, err := Parse(input)
	require.NoError(t, err)
	require.Equal(t, Meta{}, m)
	require.Equal(t, input, body)
}
