package naming

import (
	"crypto/md5"
	"encoding/hex"
	"net/url"
	"strings"

	"github.com/flytam/filenamify"
)

// extensions maps an image content type to its canonical file extension.
var extensions = map[string]string{
	"image/jpeg":    ".jpg",
	"image/jpg":     ".jpg",
	"image/png":     ".png",
	"image/gif":     ".gif",
	"image/webp":    ".webp",
	"image/svg+xml": ".svg",
	"image/bmp":     ".bmp",
	"image/tiff":    ".tiff",
}

// DefaultExt is the extension used when the content type resolves to nothing.
const DefaultExt = ".jpg"

// hashPrefixLen is the number of hex digits of the url hash used in
// synthesized filenames.
const hashPrefixLen = 8

// ExtensionFor maps a content type to its canonical file extension. It
// returns the empty string if the content type is unknown or empty.
func ExtensionFor(contentType string) string {
	return extensions[strings.ToLower(contentType)]
}

// ResolveName derives a local filename for the image at url=u. It uses the
// last segment of the url path when that segment looks like a filename.
// Otherwise it synthesizes a name from a hash of the url and the extension
// implied by contentType. The result is deterministic for a given
// (u, contentType) pair and safe to use as a directory entry name.
func ResolveName(u string, contentType string) (string, error) {
	segment := lastPathSegment(u)

	// A segment with no extension separator, or one too short to be a real
	// filename, is treated as absent.
	if segment == "" || !strings.Contains(segment, ".") || len(segment) < 3 {
		return synthesizeName(u, contentType), nil
	}

	// The url parser already decoded the path once; decode again in case the
	// segment was double-encoded.
	if strings.Contains(segment, "%") {
		if decoded, err := url.PathUnescape(segment); err == nil {
			segment = decoded
		}
	}

	return filenamify.Filenamify(segment, filenamify.Options{})
}

// lastPathSegment returns the decoded final segment of the url's path, or ""
// if the url is unparseable or its path ends in a separator.
func lastPathSegment(u string) string {
	parsed, err := url.Parse(u)
	if err != nil {
		return ""
	}

	p := parsed.Path
	return p[strings.LastIndex(p, "/")+1:]
}

// synthesizeName builds a fallback filename from a hash of the url itself.
// The body is not available at naming time, so the url is the only stable
// input.
func synthesizeName(u string, contentType string) string {
	sum := md5.Sum([]byte(u))
	prefix := hex.EncodeToString(sum[:])[:hashPrefixLen]

	ext := ExtensionFor(contentType)
	if ext == "" {
		ext = DefaultExt
	}

	return "image_" + prefix + ext
}
