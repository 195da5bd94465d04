// Package imgur expands imgur album urls into their member image urls using
// the imgur API. It implements the expand.Expander interface.
package imgur

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/ccollins476ad/imgfetch/download"
	"github.com/koffeinsource/go-imgur"
	log "github.com/sirupsen/logrus"
)

const (
	albumPrefix    = "https://imgur.com/a/"
	albumHashLen   = 7
	defaultAPIBase = "https://api.imgur.com/3"
)

type albumInfoDataWrapper struct {
	AI      *imgur.AlbumInfo `json:"data"`
	Success bool             `json:"success"`
	Status  int              `json:"status"`
}

type Expander struct {
	hc       *http.Client
	clientID string
	apiBase  string
}

func NewExpander(hc *http.Client, clientID string) *Expander {
	return &Expander{
		hc:       hc,
		clientID: clientID,
		apiBase:  defaultAPIBase,
	}
}

// Expand turns an imgur album url into the urls of the album's images. Urls
// that are not imgur albums yield nil. Expansion requires a configured
// client ID; without one, album urls pass through unclaimed.
func (ex *Expander) Expand(ctx context.Context, u string) ([]string, error) {
	if !strings.HasPrefix(u, albumPrefix) {
		return nil, nil
	}

	if ex.clientID == "" {
		log.Debugf("no imgur client id configured; not expanding album: %s", u)
		return nil, nil
	}

	hash, err := albumHash(u)
	if err != nil {
		return nil, err
	}

	return ex.albumLinks(ctx, hash)
}

// albumHash extracts the 7-character album hash from an album url. Some
// album urls carry a title prefix before the hash; only the trailing hash
// matters.
func albumHash(u string) (string, error) {
	trimmed := strings.TrimPrefix(u, albumPrefix)
	if len(trimmed) < albumHashLen {
		return "", fmt.Errorf("imgur album hash length too short: have=%d want=%d hash=%s", len(trimmed), albumHashLen, trimmed)
	}
	if len(trimmed) > albumHashLen {
		hash := trimmed[len(trimmed)-albumHashLen:]
		log.Debugf("removing imgur album prefix: %s --> %s", trimmed, hash)
		trimmed = hash
	}

	return trimmed, nil
}

// albumLinks reads album metadata from the imgur API and returns the urls of
// all the album's images.
func (ex *Expander) albumLinks(ctx context.Context, hash string) ([]string, error) {
	u := ex.apiBase + "/album/" + hash
	log.Debugf("scanning imgur album: %s", u)

	header := http.Header{
		"Authorization": []string{"Client-ID " + ex.clientID},
		"content-type":  []string{"application/json"},
	}

	rsp, err := download.Get(ctx, ex.hc, u, header)
	if err != nil {
		return nil, err
	}
	if rsp.StatusCode < 200 || rsp.StatusCode >= 300 {
		return nil, fmt.Errorf("error status: %s", rsp.Status)
	}

	aidw := &albumInfoDataWrapper{}
	err = json.Unmarshal(rsp.Body, aidw)
	if err != nil {
		return nil, fmt.Errorf("failed to decode album info: %w", err)
	}

	if !aidw.Success || aidw.AI == nil {
		return nil, fmt.Errorf("album info response has success=false")
	}

	// An album with no images expands to an empty (non-nil) slice: the url
	// was claimed, it just yields nothing to fetch.
	links := []string{}
	for _, img := range aidw.AI.Images {
		log.Debugf("detected imgur album image link: %s", img.Link)
		links = append(links, img.Link)
	}

	return links, nil
}
