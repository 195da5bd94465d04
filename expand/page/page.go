// Package page expands the url of an html page into the urls of the images
// embedded in it. It implements the expand.Expander interface.
package page

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/ccollins476ad/imgfetch/download"
	"github.com/ccollins476ad/imgfetch/web"
	log "github.com/sirupsen/logrus"
	"golang.org/x/net/html"
)

type Expander struct {
	hc *http.Client
}

func NewExpander(hc *http.Client) *Expander {
	return &Expander{
		hc: hc,
	}
}

// Expand fetches url=u and, if the response is an html page, returns the
// absolute urls of its embedded images. Non-http urls and non-html responses
// yield nil, leaving the url for the image pipeline itself.
func (ex *Expander) Expand(ctx context.Context, u string) ([]string, error) {
	if !strings.HasPrefix(u, "http://") && !strings.HasPrefix(u, "https://") {
		return nil, nil
	}

	rsp, err := download.Get(ctx, ex.hc, u, nil)
	if err != nil {
		return nil, err
	}
	if rsp.StatusCode < 200 || rsp.StatusCode >= 300 {
		return nil, fmt.Errorf("error status: %s", rsp.Status)
	}

	contentType := rsp.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "text/html") {
		return nil, nil
	}

	doc, err := html.Parse(bytes.NewReader(rsp.Body))
	if err != nil {
		return nil, fmt.Errorf("failed to parse page: %w", err)
	}

	// A page with no images expands to an empty (non-nil) slice: the url was
	// claimed, it just yields nothing to fetch.
	urls := []string{}
	for _, src := range web.ImageSources(doc) {
		resolved := web.ResolveRef(u, src)
		if resolved == "" {
			log.Debugf("skipping unresolvable img src: page=%s src=%s", u, src)
			continue
		}
		urls = append(urls, resolved)
	}

	return urls, nil
}
