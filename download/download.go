package download

import (
	"context"
	"fmt"
	"io"
	"net/http"

	log "github.com/sirupsen/logrus"
)

// Response is a fully-read http response. The body is consumed before a
// Response is returned, so the caller owns plain bytes with nothing left to
// close.
type Response struct {
	StatusCode int
	Status     string
	Header     http.Header
	Body       []byte
}

// Get performs an http GET with url=u using the supplied client and header,
// reading the full response body. The request and the body read both respect
// ctx; the caller sets any deadline via the context. Non-2xx statuses are not
// errors here - the caller inspects StatusCode.
func Get(ctx context.Context, hc *http.Client, u string, header http.Header) (*Response, error) {
	log.Debugf("get: %s", u)

	req, err := http.NewRequestWithContext(ctx, "GET", u, nil)
	if err != nil {
		return nil, err
	}
	for k, vs := range header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}

	rsp, err := hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %v", err)
	}
	defer rsp.Body.Close()

	b, err := io.ReadAll(NewContextReader(ctx, rsp.Body))
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %v", err)
	}

	return &Response{
		StatusCode: rsp.StatusCode,
		Status:     rsp.Status,
		Header:     rsp.Header,
		Body:       b,
	}, nil
}
