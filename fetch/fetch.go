// Package fetch implements the per-url acquisition pipeline: validate the
// url, retrieve it, confirm the response is image content, and store it in
// the local collection unless identical content is already there.
package fetch

import (
	"context"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ccollins476ad/imgfetch/dedup"
	"github.com/ccollins476ad/imgfetch/download"
	"github.com/ccollins476ad/imgfetch/fileutil"
	"github.com/ccollins476ad/imgfetch/naming"
	log "github.com/sirupsen/logrus"
)

const (
	DefaultUserAgent = "imgfetch/1.0 (Community Project)"
	DefaultTimeout   = 10 * time.Second
)

// SecurityHeaderNames lists the response headers reported (informationally)
// for each fetched url. Absence of any of them is not an error.
var SecurityHeaderNames = []string{
	"X-Content-Type-Options",
	"Content-Security-Policy",
	"X-Frame-Options",
}

// Pipeline fetches individual image urls and persists them to a directory.
type Pipeline struct {
	hc        *http.Client
	userAgent string
	timeout   time.Duration
}

// Result describes a successful fetch. SavedPath is the name of the stored
// file, relative to the target directory; when Duplicate is true it names the
// pre-existing file and nothing was written.
type Result struct {
	SavedPath       string
	Size            int64
	Duplicate       bool
	SecurityHeaders map[string]string
}

func NewPipeline(userAgent string, timeout time.Duration) *Pipeline {
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return &Pipeline{
		hc:        &http.Client{},
		userAgent: userAgent,
		timeout:   timeout,
	}
}

// HTTPClient returns the pipeline's http client.
func (p *Pipeline) HTTPClient() *http.Client {
	return p.hc
}

// Fetch retrieves the image at url=u and stores it in dir. If the directory
// already contains a file with identical content, nothing is written and the
// result points at the existing file. On failure it returns a *Error
// classifying what went wrong; no retries are attempted.
func (p *Pipeline) Fetch(ctx context.Context, u string, dir string) (*Result, error) {
	if !strings.HasPrefix(u, "http://") && !strings.HasPrefix(u, "https://") {
		return nil, newErrorf(KindInvalidScheme, "url must start with http:// or https://: %s", u)
	}

	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	header := http.Header{"User-Agent": []string{p.userAgent}}
	rsp, err := download.Get(ctx, p.hc, u, header)
	if err != nil {
		return nil, NewError(KindTransport, err)
	}

	if rsp.StatusCode < 200 || rsp.StatusCode >= 300 {
		return nil, newErrorf(KindHTTPStatus, "error status: %s", rsp.Status)
	}

	contentType := stripParams(rsp.Header.Get("Content-Type"))
	if !strings.HasPrefix(contentType, "image/") {
		return nil, newErrorf(KindNotAnImage, "url does not point to an image (content type: %s)", contentType)
	}

	secHeaders := presentSecurityHeaders(rsp.Header)

	filename, err := naming.ResolveName(u, contentType)
	if err != nil {
		return nil, NewError(KindUnclassified, err)
	}

	existing, err := dedup.FindDuplicate(dir, rsp.Body)
	if err != nil {
		return nil, NewError(KindUnclassified, err)
	}
	if existing != "" {
		log.Debugf("duplicate content: url=%s existing=%s", u, existing)
		return &Result{
			SavedPath:       existing,
			Size:            int64(len(rsp.Body)),
			Duplicate:       true,
			SecurityHeaders: secHeaders,
		}, nil
	}

	destPath := filepath.Join(dir, filename)
	if fileutil.FileExists(destPath) {
		// Name collision with different content. Accepted as a
		// negligible-probability case; the new content wins.
		log.Debugf("overwriting existing file: %s", destPath)
	}

	log.Infof("downloading %s", destPath)
	err = os.WriteFile(destPath, rsp.Body, 0644)
	if err != nil {
		return nil, NewError(KindWrite, err)
	}

	return &Result{
		SavedPath:       filename,
		Size:            int64(len(rsp.Body)),
		SecurityHeaders: secHeaders,
	}, nil
}

// stripParams removes any parameter suffix from a content type value, e.g.
// "image/png; charset=utf-8" --> "image/png".
func stripParams(contentType string) string {
	if i := strings.Index(contentType, ";"); i >= 0 {
		contentType = contentType[:i]
	}
	return strings.TrimSpace(contentType)
}

// presentSecurityHeaders returns the subset of SecurityHeaderNames present in
// the given response header, with their values.
func presentSecurityHeaders(header http.Header) map[string]string {
	present := map[string]string{}
	for _, name := range SecurityHeaderNames {
		if v := header.Get(name); v != "" {
			present[name] = v
		}
	}
	return present
}
