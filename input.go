package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"mvdan.cc/xurls/v2"
)

// collectURLs determines the batch's url list. Positional arguments win,
// then a -f url file, then the interactive prompt.
func collectURLs(cfg *Config) ([]string, error) {
	if len(cfg.URLs) > 0 {
		return cfg.URLs, nil
	}

	if cfg.URLFile != "" {
		return urlsFromFile(cfg.URLFile)
	}

	return promptForURLs(os.Stdin)
}

// urlsFromFile extracts every url found in the given text file, in order of
// appearance. The file does not need any particular format.
func urlsFromFile(path string) ([]string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	rx := xurls.Strict()
	return rx.FindAllString(string(b), -1), nil
}

// promptForURLs reads a single comma-separated url list from r. End of input
// with nothing entered just ends the run early.
func promptForURLs(r io.Reader) ([]string, error) {
	fmt.Print("Enter image URL(s), separated by commas if multiple: ")

	scanner := bufio.NewScanner(r)
	if !scanner.Scan() {
		return nil, scanner.Err()
	}

	return splitURLList(scanner.Text()), nil
}

// splitURLList splits a comma-separated url list, trimming whitespace and
// discarding empty entries.
func splitURLList(line string) []string {
	var urls []string

	for _, part := range strings.Split(line, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			urls = append(urls, part)
		}
	}

	return urls
}
