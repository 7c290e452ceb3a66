// Package crawler walks a series' paginated episode list.
package crawler

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/comicrawl/comicrawl/constant"
	"github.com/comicrawl/comicrawl/dom"
	"github.com/comicrawl/comicrawl/extract"
	"github.com/comicrawl/comicrawl/log"
	"github.com/comicrawl/comicrawl/network"
	"github.com/comicrawl/comicrawl/source"
	"github.com/comicrawl/comicrawl/util"
)

// ErrPaginationDidNotTerminate is matched by a PaginationError.
var ErrPaginationDidNotTerminate = errors.New("pagination did not terminate")

// PaginationError is returned when a crawl would need more than MaxPages pages.
type PaginationError struct {
	SeriesID string
	MaxPages int
}

func (e *PaginationError) Error() string {
	return fmt.Sprintf("series %s: still a next page after %d pages: %s", e.SeriesID, e.MaxPages, ErrPaginationDidNotTerminate)
}

func (e *PaginationError) Unwrap() error {
	return ErrPaginationDidNotTerminate
}

// Crawler fetches episode list pages one after another until a page has no
// next link.
type Crawler struct {
	Fetcher network.Fetcher
	// URL of the episode list endpoint. Series id and page go in the query.
	URL     string
	Headers map[string]string
	// MaxPages bounds the crawl. Zero means unbounded.
	MaxPages int
	// Site tags log lines.
	Site string
}

// Crawl returns every episode of the series in the order first seen.
// An episode appearing on several pages keeps its first occurrence.
// Any failure discards the pages collected so far.
func (c *Crawler) Crawl(ctx context.Context, seriesID string) (*source.Episodes, error) {
	episodes := source.NewEpisodes()

	for page := 1; ; page++ {
		if c.MaxPages > 0 && page > c.MaxPages {
			return nil, &PaginationError{SeriesID: seriesID, MaxPages: c.MaxPages}
		}

		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("series %s page %d: %w", seriesID, page, err)
		}

		hasNext, err := c.crawlPage(ctx, seriesID, page, episodes)
		if err != nil {
			return nil, fmt.Errorf("series %s page %d: %w", seriesID, page, err)
		}

		if !hasNext {
			log.With(log.Fields{"site": c.Site, "series": seriesID}).
				Infof("crawled %s over %s", util.Quantify(episodes.Len(), "episode", "episodes"), util.Quantify(page, "page", "pages"))
			return episodes, nil
		}
	}
}

func (c *Crawler) crawlPage(ctx context.Context, seriesID string, page int, episodes *source.Episodes) (bool, error) {
	params := map[string]string{
		constant.ParamTitleID: seriesID,
		constant.ParamPage:    strconv.Itoa(page),
	}

	text, err := c.Fetcher.Fetch(ctx, c.URL, params, c.Headers)
	if err != nil {
		return false, err
	}

	doc, err := dom.Parse(text)
	if err != nil {
		return false, fmt.Errorf("parse: %w", err)
	}

	found, report := extract.Episodes(doc)
	fields := log.Fields{"site": c.Site, "series": seriesID, "page": page}
	report.Log(fields)

	var duplicates int
	for _, episode := range found {
		episode.URL = util.ResolveURL(c.URL, episode.URL)
		episode.ThumbnailURL = util.ResolveURL(c.URL, episode.ThumbnailURL)

		if !episodes.Add(episode) {
			duplicates++
		}
	}

	if duplicates > 0 {
		log.With(fields).Debugf("kept first occurrence of %s", util.Quantify(duplicates, "repeated episode", "repeated episodes"))
	}

	return extract.HasNext(doc), nil
}
