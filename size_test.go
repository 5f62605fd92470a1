package sizes_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rise-and-shine/sizes"
)

func TestSizeConstructors(t *testing.T) {
	tests := []struct {
		name     string
		actual   sizes.Size
		expected sizes.Size
	}{
		{
			name:   "thumbnail is square",
			actual: sizes.NewThumbnail(64, sizes.SM),
			expected: sizes.Size{
				Scale:       sizes.SM,
				Orientation: sizes.Thumbnail,
				Width:       64,
				Height:      64,
			},
		},
		{
			name:   "landscape keeps dimensions as given",
			actual: sizes.NewLandscape(1920, 1080, sizes.LG),
			expected: sizes.Size{
				Scale:       sizes.LG,
				Orientation: sizes.Landscape,
				Width:       1920,
				Height:      1080,
			},
		},
		{
			name:   "portrait keeps dimensions as given",
			actual: sizes.NewPortrait(800, 1200, sizes.MD),
			expected: sizes.Size{
				Scale:       sizes.MD,
				Orientation: sizes.Portrait,
				Width:       800,
				Height:      1200,
			},
		},
		{
			name: "orientation tag is not validated against dimensions",
			// A landscape taller than it is wide is accepted as-is.
			actual: sizes.NewLandscape(400, 900, sizes.SM),
			expected: sizes.Size{
				Scale:       sizes.SM,
				Orientation: sizes.Landscape,
				Width:       400,
				Height:      900,
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.actual)
		})
	}
}

func TestSizeIsEmpty(t *testing.T) {
	t.Run("zero value is empty", func(t *testing.T) {
		var empty sizes.Size
		assert.True(t, empty.IsEmpty())
	})

	t.Run("constructed size is not empty", func(t *testing.T) {
		assert.False(t, sizes.NewPortrait(800, 1200, sizes.MD).IsEmpty())
	})

	t.Run("zero-dimension thumbnail at default scale is empty", func(t *testing.T) {
		assert.True(t, sizes.NewThumbnail(0, sizes.XXSM).IsEmpty())
	})
}

func TestSizeJSON(t *testing.T) {
	t.Run("uses camel-case keys and enum tokens", func(t *testing.T) {
		data, err := json.Marshal(sizes.NewLandscape(1920, 1080, sizes.LG))
		require.NoError(t, err)
		assert.JSONEq(t, `{
			"scale": "LG",
			"orientation": "LANDSCAPE",
			"width": 1920,
			"height": 1080
		}`, string(data))
	})

	t.Run("round-trips every orientation", func(t *testing.T) {
		for _, original := range []sizes.Size{
			sizes.NewThumbnail(100, sizes.MD),
			sizes.NewLandscape(1200, 400, sizes.XLG),
			sizes.NewPortrait(600, 900, sizes.XSM),
		} {
			data, err := json.Marshal(original)
			require.NoError(t, err)

			var decoded sizes.Size
			require.NoError(t, json.Unmarshal(data, &decoded))
			assert.Equal(t, original, decoded)
		}
	})

	t.Run("field order is not significant", func(t *testing.T) {
		var decoded sizes.Size
		payload := `{"height":1080,"orientation":"landscape","width":1920,"scale":"lg"}`
		require.NoError(t, json.Unmarshal([]byte(payload), &decoded))
		assert.Equal(t, sizes.NewLandscape(1920, 1080, sizes.LG), decoded)
	})
}

func TestSizeSQL(t *testing.T) {
	t.Run("stored as plain JSON text without a marker", func(t *testing.T) {
		value, err := sizes.NewThumbnail(64, sizes.SM).Value()
		require.NoError(t, err)

		text, ok := value.(string)
		require.True(t, ok)
		assert.Equal(t, byte('{'), text[0])

		var decoded sizes.Size
		require.NoError(t, json.Unmarshal([]byte(text), &decoded))
		assert.Equal(t, sizes.NewThumbnail(64, sizes.SM), decoded)
	})

	t.Run("scans plain JSON", func(t *testing.T) {
		payload := `{"scale":"LG","orientation":"LANDSCAPE","width":1920,"height":1080}`

		var decoded sizes.Size
		require.NoError(t, decoded.Scan(payload))
		assert.Equal(t, sizes.NewLandscape(1920, 1080, sizes.LG), decoded)
	})

	t.Run("strips one leading control byte before parsing", func(t *testing.T) {
		payload := `{"scale":"MD","orientation":"PORTRAIT","width":800,"height":1200}`

		var plain sizes.Size
		require.NoError(t, plain.Scan([]byte(payload)))

		var prefixed sizes.Size
		require.NoError(t, prefixed.Scan(append([]byte{0x01}, payload...)))

		assert.Equal(t, plain, prefixed)
		assert.Equal(t, sizes.NewPortrait(800, 1200, sizes.MD), prefixed)
	})

	t.Run("invalid JSON propagates as a decode error", func(t *testing.T) {
		var decoded sizes.Size
		assert.Error(t, decoded.Scan("not-json"))
	})

	t.Run("unknown enum token inside the payload fails", func(t *testing.T) {
		var decoded sizes.Size
		payload := `{"scale":"huge","orientation":"PORTRAIT","width":1,"height":2}`
		assert.ErrorContains(t, decoded.Scan(payload), "unknown scale variant")
	})
}

func TestSortByScale(t *testing.T) {
	unordered := []sizes.Size{
		sizes.NewLandscape(3840, 2160, sizes.XXLG),
		sizes.NewThumbnail(16, sizes.XXSM),
		sizes.NewPortrait(600, 900, sizes.MD),
		sizes.NewThumbnail(32, sizes.XXSM),
	}

	sizes.SortByScale(unordered)

	assert.Equal(t, []sizes.Size{
		sizes.NewThumbnail(16, sizes.XXSM),
		sizes.NewThumbnail(32, sizes.XXSM),
		sizes.NewPortrait(600, 900, sizes.MD),
		sizes.NewLandscape(3840, 2160, sizes.XXLG),
	}, unordered)
}
