package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"

	"github.com/ccollins476ad/imgfetch/expand"
	"github.com/ccollins476ad/imgfetch/expand/imgur"
	"github.com/ccollins476ad/imgfetch/expand/page"
	"github.com/ccollins476ad/imgfetch/fetch"
	"github.com/ccollins476ad/imgfetch/fileutil"
	log "github.com/sirupsen/logrus"
)

func printFatalError(err error) {
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
}

// buildExpanders assembles the pre-batch url expanders. The page expander is
// opt-in; an unclaimed page url would otherwise just fail the image gate.
func buildExpanders(cfg *Config, hc *http.Client) []expand.Expander {
	exs := []expand.Expander{
		imgur.NewExpander(hc, cfg.ImgurClientID),
	}

	if cfg.ScanPages {
		exs = append(exs, page.NewExpander(hc))
	}

	return exs
}

func main() {
	cfg, err := parseArgs()
	if err != nil {
		printFatalError(err)
		flag.Usage()
		os.Exit(1)
	}

	if cfg.Verbose {
		log.SetLevel(log.DebugLevel)
	}

	// Directory creation failure is fatal to the whole run; per-url failures
	// never are.
	err = fileutil.EnsureDir(cfg.Dir)
	if err != nil {
		printFatalError(fetch.NewError(fetch.KindDirectory, err))
		os.Exit(2)
	}

	urls, err := collectURLs(cfg)
	if err != nil {
		printFatalError(err)
		os.Exit(1)
	}
	if len(urls) == 0 {
		fmt.Println("no urls provided")
		return
	}

	ctx := context.Background()
	p := fetch.NewPipeline(fetch.DefaultUserAgent, cfg.Timeout)

	urls = expand.All(ctx, buildExpanders(cfg, p.HTTPClient()), urls)

	sum := runBatch(ctx, p, cfg.Dir, urls)
	fmt.Printf("\nSuccessfully fetched %d of %d images\n", sum.Succeeded, sum.Attempted)

	if cfg.Gallery {
		err = writeGallery(cfg.Dir)
		if err != nil {
			printFatalError(err)
			os.Exit(3)
		}
	}
}
