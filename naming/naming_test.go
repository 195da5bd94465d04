package naming

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExtensionFor(t *testing.T) {
	cases := []struct {
		contentType string
		want        string
	}{
		{"image/jpeg", ".jpg"},
		{"image/jpg", ".jpg"},
		{"image/png", ".png"},
		{"image/gif", ".gif"},
		{"image/webp", ".webp"},
		{"image/svg+xml", ".svg"},
		{"image/bmp", ".bmp"},
		{"image/tiff", ".tiff"},
		{"IMAGE/PNG", ".png"},
		{"Image/Jpeg", ".jpg"},
		{"text/html", ""},
		{"", ""},
	}

	for _, c := range cases {
		require.Equal(t, c.want, ExtensionFor(c.contentType), "contentType=%s", c.contentType)
	}
}

func TestResolveNameFromPath(t *testing.T) {
	name, err := ResolveName("https://example.com/pics/cat.png", "image/png")
	require.NoError(t, err)
	require.Equal(t, "cat.png", name)
}

func TestResolveNameDecodesSegment(t *testing.T) {
	// The parser decodes %20 once; the resolver decodes the leftover %20 a
	// second time.
	name, err := ResolveName("https://example.com/my%2520cat.png", "image/png")
	require.NoError(t, err)
	require.Equal(t, "my cat.png", name)
}

func TestResolveNameSanitizes(t *testing.T) {
	name, err := ResolveName("https://example.com/a:b.png", "image/png")
	require.NoError(t, err)
	require.NotContains(t, name, ":")
	require.NotEmpty(t, name)
}

func TestResolveNameFallback(t *testing.T) {
	cases := []struct {
		url         string
		contentType string
		pattern     string
	}{
		{"https://example.com/a/", "image/webp", `^image_[0-9a-f]{8}\.webp$`},
		{"https://example.com/", "image/png", `^image_[0-9a-f]{8}\.png$`},
		{"https://example.com/xy", "image/gif", `^image_[0-9a-f]{8}\.gif$`},
		{"https://example.com/noext", "", `^image_[0-9a-f]{8}\.jpg$`},
		{"https://example.com/noext", "application/octet-stream", `^image_[0-9a-f]{8}\.jpg$`},
	}

	for _, c := range cases {
		name, err := ResolveName(c.url, c.contentType)
		require.NoError(t, err)
		require.Regexp(t, regexp.MustCompile(c.pattern), name, "url=%s", c.url)
	}
}

func TestResolveNameDeterministic(t *testing.T) {
	urls := []string{
		"https://example.com/a/",
		"https://example.com/pics/cat.png",
	}

	for _, u := range urls {
		first, err := ResolveName(u, "image/png")
		require.NoError(t, err)
		second, err := ResolveName(u, "image/png")
		require.NoError(t, err)
		require.Equal(t, first, second)
	}
}

func TestResolveNameDistinctURLsDistinctFallbacks(t *testing.T) {
	a, err := ResolveName("https://example.com/a/", "image/png")
	require.NoError(t, err)
	b, err := ResolveName("https://example.com/b/", "image/png")
	require.NoError(t, err)
	require.NotEqual(t, a, b)
}
