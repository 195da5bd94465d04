// Package dedup answers whether the local collection already contains a
// given image, by content rather than by name.
package dedup

import (
	"crypto/md5"
	"encoding/hex"
	"os"
	"path/filepath"
	"sync"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// scanJobs bounds the number of files hashed at once during a duplicate scan.
const scanJobs = 4

// Fingerprint returns the hex digest used for content equality checks. It is
// not a security boundary; two equal fingerprints mean identical content.
func Fingerprint(b []byte) string {
	sum := md5.Sum(b)
	return hex.EncodeToString(sum[:])
}

// FindDuplicate reports the name of a regular file in dir whose content
// matches candidate, or "" if there is none. Unreadable files are skipped,
// not treated as errors; the scan is a membership test with no ordering
// guarantee among matches.
func FindDuplicate(dir string, candidate []byte) (string, error) {
	want := Fingerprint(candidate)

	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", err
	}

	var (
		matchMtx sync.Mutex
		match    string
	)

	g := &errgroup.Group{}
	g.SetLimit(scanJobs)

	for _, e := range entries {
		if !e.Type().IsRegular() {
			continue
		}

		name := e.Name()
		g.Go(func() error {
			b, err := os.ReadFile(filepath.Join(dir, name))
			if err != nil {
				// An unreadable neighbor is not a match; keep scanning.
				log.WithError(err).Debugf("skipping unreadable file: %s", name)
				return nil
			}

			if Fingerprint(b) == want {
				matchMtx.Lock()
				if match == "" {
					match = name
				}
				matchMtx.Unlock()
			}
			return nil
		})
	}

	// The workers never return errors; read failures are skipped above.
	_ = g.Wait()

	return match, nil
}
