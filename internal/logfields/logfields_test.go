package logfields

import (
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

// Key drift would break log ingestion schemas, so the helper keys are
// pinned here.
func TestHelpers_KeyNamesAreStable(t *testing.T) {
	cases := []struct {
		name string
		key  string
		val  string
		attr slog.Attr
	}{
		{"Project", KeyProject, "vessel", Project("vessel")},
		{"Type", KeyType, "sculpture", Type("sculpture")},
		{"Path", KeyPath, "/tmp/x", Path("/tmp/x")},
		{"File", KeyFile, "01-front.jpg", File("01-front.jpg")},
		{"URL", KeyURL, "http://example", URL("http://example")},
		{"Stage", KeyStage, "assets", Stage("assets")},
	}

	for _, tc := range cases {
		require.Equal(t, tc.key, tc.attr.Key, tc.name)
		require.Equal(t, tc.val, tc.attr.Value.String(), tc.name)
	}
}

func TestCount_CarriesIntValue(t *testing.T) {
	a := Count(7)
	require.Equal(t, KeyCount, a.Key)
	require.EqualValues(t, 7, a.Value.Int64())
}

func TestDurationMS_CarriesFloatValue(t *testing.T) {
	a := DurationMS(1500)
	require.Equal(t, KeyDurationMS, a.Key)
	require.Equal(t, 1500.0, a.Value.Float64())
}

func TestError_NilIsSafe(t *testing.T) {
	require.Equal(t, "", Error(nil).Value.String())
	require.Equal(t, "boom", Error(errors.New("boom")).Value.String())
}
