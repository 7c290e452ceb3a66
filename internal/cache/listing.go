// Package cache persists fetched pages and crawl results between runs.
package cache

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/comicrawl/comicrawl/filesystem"
	"github.com/comicrawl/comicrawl/log"
	"github.com/comicrawl/comicrawl/network"
)

// Listing is a read-through cache for the top-level listing page.
//
// The page is fetched once and stored verbatim at Path. Later reads return the
// stored text with no freshness check; the file must be removed (Invalidate)
// to fetch again.
type Listing struct {
	Path    string
	URL     string
	Headers map[string]string
	Fetcher network.Fetcher
}

// Get returns the cached listing page, fetching and persisting it on a miss.
// A failed write is logged and the fetched text is returned anyway.
func (l *Listing) Get(ctx context.Context) (string, error) {
	if text, ok := l.read(); ok {
		return text, nil
	}

	text, err := l.Fetcher.Fetch(ctx, l.URL, nil, l.Headers)
	if err != nil {
		return "", fmt.Errorf("fetch listing: %w", err)
	}

	if err := l.write(text); err != nil {
		log.Warnf("cache listing at %s: %v", l.Path, err)
	}

	return text, nil
}

// Invalidate removes the cached page. A missing file is not an error.
func (l *Listing) Invalidate() error {
	err := filesystem.API().Remove(l.Path)
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

func (l *Listing) read() (string, bool) {
	fs := filesystem.API()

	exists, err := fs.Exists(l.Path)
	if err != nil || !exists {
		return "", false
	}

	data, err := fs.ReadFile(l.Path)
	if err != nil {
		log.Warnf("read cached listing %s: %v", l.Path, err)
		return "", false
	}

	log.Debugf("listing served from %s", l.Path)
	return string(data), true
}

func (l *Listing) write(text string) error {
	fs := filesystem.API()

	if err := fs.MkdirAll(filepath.Dir(l.Path), os.ModePerm); err != nil {
		return err
	}
	return fs.WriteFile(l.Path, []byte(text), 0644)
}
