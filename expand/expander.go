package expand

import (
	"context"

	log "github.com/sirupsen/logrus"
)

// Expander rewrites a user-supplied url into the image urls it refers to.
// Most implementations only understand a particular site or content shape.
type Expander interface {
	// Expand returns the image urls the given url resolves to. It returns nil
	// with no error if the url is not one it knows how to expand.
	Expand(ctx context.Context, u string) ([]string, error)
}

// All runs each url through the given expanders, substituting expansion
// results in place. The first expander that claims a url wins. A url no
// expander claims, or whose expansion fails, passes through unchanged; the
// batch decides its fate.
func All(ctx context.Context, expanders []Expander, urls []string) []string {
	var out []string

	for _, u := range urls {
		out = append(out, expandOne(ctx, expanders, u)...)
	}

	return out
}

func expandOne(ctx context.Context, expanders []Expander, u string) []string {
	for _, ex := range expanders {
		expanded, err := ex.Expand(ctx, u)
		if err != nil {
			log.WithError(err).Errorf("failed to expand url: url=%s", u)
			break
		}
		if expanded != nil {
			log.Debugf("expanded url: %s --> %d image url(s)", u, len(expanded))
			return expanded
		}
	}

	return []string{u}
}
