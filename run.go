package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ccollins476ad/imgfetch/fetch"
	"github.com/ccollins476ad/imgfetch/web"
)

const galleryFilename = "gallery.html"

// Summary totals the per-url outcomes of a batch.
type Summary struct {
	Attempted int
	Succeeded int
}

// runBatch fetches each url in input order, printing one status line per
// url. An individual failure never stops the batch; every url is attempted.
func runBatch(ctx context.Context, p *fetch.Pipeline, dir string, urls []string) Summary {
	sum := Summary{Attempted: len(urls)}

	for i, u := range urls {
		fmt.Printf("[%d/%d] fetching %s\n", i+1, len(urls), u)

		res, err := p.Fetch(ctx, u, dir)
		if err != nil {
			fmt.Printf("  ✗ %v\n", err)
			continue
		}

		printSecurityHeaders(res)

		if res.Duplicate {
			fmt.Printf("  ✓ already stored as '%s'\n", res.SavedPath)
		} else {
			fmt.Printf("  ✓ saved '%s' (%d bytes)\n", res.SavedPath, res.Size)
		}
		sum.Succeeded++
	}

	return sum
}

func printSecurityHeaders(res *fetch.Result) {
	for _, name := range fetch.SecurityHeaderNames {
		if v, ok := res.SecurityHeaders[name]; ok {
			fmt.Printf("    %s: %s\n", name, v)
		}
	}
}

// writeGallery writes an html index of every image currently stored in dir.
func writeGallery(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return err
	}

	var filenames []string
	for _, e := range entries {
		if e.Type().IsRegular() && e.Name() != galleryFilename {
			filenames = append(filenames, e.Name())
		}
	}

	page := web.BuildGallery(filenames)
	return os.WriteFile(filepath.Join(dir, galleryFilename), []byte(page), 0644)
}
