package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const defaultDir = "Fetched_Images"
const defaultTimeoutSeconds = 10

type Config struct {
	Dir           string        // Destination directory for fetched images.
	Timeout       time.Duration // Per-url fetch timeout.
	Verbose       bool          // True for verbose output.
	URLFile       string        // Path of a text file to extract urls from.
	ScanPages     bool          // Expand html page urls into their embedded images.
	Gallery       bool          // Write gallery.html after the batch.
	ImgurClientID string        // Imgur API client ID; empty disables album expansion.
	URLs          []string      // Urls supplied as positional arguments.
}

func parseArgs() (*Config, error) {
	// A .env file in the working directory supplies defaults; its absence is
	// fine.
	godotenv.Load()

	defTimeout := defaultTimeoutSeconds
	if s := os.Getenv("IMGFETCH_TIMEOUT"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("invalid IMGFETCH_TIMEOUT: %s", s)
		}
		defTimeout = n
	}

	defDir := os.Getenv("IMGFETCH_DIR")
	if defDir == "" {
		defDir = defaultDir
	}

	verbose := flag.Bool("v", false, "verbose output")
	dir := flag.String("d", defDir, "destination directory")
	timeout := flag.Int("t", defTimeout, "per-url timeout in seconds")
	urlFile := flag.String("f", "", "extract urls from a text file instead of prompting")
	scan := flag.Bool("scan", false, "expand html page urls into their embedded images")
	gallery := flag.Bool("gallery", false, "write gallery.html to the destination directory")

	flag.Usage = usage
	flag.Parse()

	return &Config{
		Dir:           *dir,
		Timeout:       time.Duration(*timeout) * time.Second,
		Verbose:       *verbose,
		URLFile:       *urlFile,
		ScanPages:     *scan,
		Gallery:       *gallery,
		ImgurClientID: os.Getenv("IMGFETCH_IMGUR_CLIENT_ID"),
		URLs:          flag.Args(),
	}, nil
}

func usage() {
	fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [option]... [url]...\n", filepath.Base(os.Args[0]))
	fmt.Fprintf(flag.CommandLine.Output(), "Fetches images from the web into a local collection, skipping content already stored.\n")
	flag.PrintDefaults()
}
