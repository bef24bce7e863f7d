package apub

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLargestImage(t *testing.T) {
	t.Run("widest wins", func(t *testing.T) {
		require := require.New(t)

		var ds Diagnostics
		props := map[string]any{
			"image": []any{
				map[string]any{"url": "https://example.org/a.png", "width": 425.0, "height": 425.0},
				map[string]any{"url": "https://example.org/b.png", "width": 850.0, "height": 850.0},
				map[string]any{"url": "https://example.org/c.png", "width": 120.0, "height": 120.0},
			},
		}
		l := imageList(props, "image", &ds)
		require.Empty(ds)

		img, ok := LargestImage(l)
		require.True(ok)
		require.Equal("https://example.org/b.png", *img.URL)
		require.Equal(850, *img.Width)
	})
	t.Run("no dimensions falls back to first", func(t *testing.T) {
		require := require.New(t)

		var ds Diagnostics
		props := map[string]any{
			"icon": []any{
				map[string]any{"url": "https://example.org/a.png"},
				map[string]any{"url": "https://example.org/b.png"},
			},
		}
		img, ok := LargestImage(imageList(props, "icon", &ds))
		require.True(ok)
		require.Equal("https://example.org/a.png", *img.URL)
	})
	t.Run("empty list has no image", func(t *testing.T) {
		require := require.New(t)

		var l List[Ref[Image]]
		_, ok := LargestImage(l)
		require.False(ok)
	})
}

func TestImagesMaterialisesBareURLs(t *testing.T) {
	require := require.New(t)

	var ds Diagnostics
	props := map[string]any{"icon": "https://example.org/avatar.png"}
	images := Images(imageList(props, "icon", &ds))
	require.Len(images, 1)
	require.Equal("https://example.org/avatar.png", *images[0].URL)
}

func TestImageNameAliasesSummary(t *testing.T) {
	require := require.New(t)

	var ds Diagnostics
	props := map[string]any{
		"icon": map[string]any{
			"url":  "https://example.org/avatar.png",
			"name": "alt text",
		},
	}
	img, ok := LargestImage(imageList(props, "icon", &ds))
	require.True(ok)
	require.Equal("alt text", *img.Summary)
}
