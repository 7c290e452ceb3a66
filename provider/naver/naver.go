// Package naver implements the Naver Webtoon source.
package naver

import (
	"context"
	"fmt"
	"time"

	"github.com/comicrawl/comicrawl/crawler"
	"github.com/comicrawl/comicrawl/dom"
	"github.com/comicrawl/comicrawl/extract"
	"github.com/comicrawl/comicrawl/internal/cache"
	"github.com/comicrawl/comicrawl/key"
	"github.com/comicrawl/comicrawl/log"
	"github.com/comicrawl/comicrawl/network"
	"github.com/comicrawl/comicrawl/source"
	"github.com/comicrawl/comicrawl/util"
	"github.com/comicrawl/comicrawl/where"
	"github.com/spf13/viper"
)

const (
	ID   = "naver"
	Name = "Naver Webtoon"
)

// Options wires a Naver source.
type Options struct {
	ListingURL  string
	EpisodesURL string
	// ListingPath is where the listing page is cached.
	ListingPath string
	MaxPages    int
	Fetcher     network.Fetcher
	// Snapshots, when set, persists crawled episode lists between runs.
	Snapshots *cache.Episodes
}

// OptionsFromConfig builds Options from the current configuration.
func OptionsFromConfig() Options {
	options := Options{
		ListingURL:  viper.GetString(key.SiteListingURL),
		EpisodesURL: viper.GetString(key.SiteEpisodesURL),
		ListingPath: where.Listing(),
		MaxPages:    viper.GetInt(key.CrawlMaxPages),
		Fetcher: network.NewFetcher(network.Options{
			UserAgent:  viper.GetString(key.NetworkUserAgent),
			Timeout:    time.Duration(viper.GetInt(key.NetworkTimeout)) * time.Second,
			RetryCount: viper.GetInt(key.NetworkRetryCount),
		}),
	}

	if viper.GetBool(key.EpisodesPersist) {
		lifetime := time.Duration(viper.GetInt(key.EpisodesPersistHours)) * time.Hour
		options.Snapshots = cache.NewEpisodes(where.Episodes(), lifetime)
	}

	return options
}

// Naver lists series from the weekday page and crawls their episode lists.
type Naver struct {
	listingURL string
	listing    *cache.Listing
	crawler    *crawler.Crawler
	snapshots  *cache.Episodes
}

// New returns a Naver source.
func New(options Options) *Naver {
	return &Naver{
		listingURL: options.ListingURL,
		listing: &cache.Listing{
			Path:    options.ListingPath,
			URL:     options.ListingURL,
			Fetcher: options.Fetcher,
		},
		crawler: &crawler.Crawler{
			Fetcher:  options.Fetcher,
			URL:      options.EpisodesURL,
			MaxPages: options.MaxPages,
			Site:     ID,
		},
		snapshots: options.Snapshots,
	}
}

func (*Naver) Name() string { return Name }
func (*Naver) ID() string   { return ID }

// Series returns every series of the listing page, read through the listing cache.
func (n *Naver) Series(ctx context.Context) ([]*source.Series, error) {
	text, err := n.listing.Get(ctx)
	if err != nil {
		return nil, err
	}

	doc, err := dom.Parse(text)
	if err != nil {
		return nil, fmt.Errorf("parse listing: %w", err)
	}

	series, report := extract.Series(doc)
	report.Log(log.Fields{"site": ID, "series": "listing", "page": 1})

	for _, s := range series {
		s.URL = util.ResolveURL(n.listingURL, s.URL)
		s.ThumbnailURL = util.ResolveURL(n.listingURL, s.ThumbnailURL)
		s.Source = n
	}

	return series, nil
}

// EpisodesOf crawls every episode of series. Persisted snapshots are used when enabled.
func (n *Naver) EpisodesOf(ctx context.Context, series *source.Series) (*source.Episodes, error) {
	if n.snapshots != nil {
		if episodes, ok := n.snapshots.Get(series.ID).Get(); ok {
			log.With(log.Fields{"site": ID, "series": series.ID}).
				Debugf("episodes restored from snapshot")
			return episodes, nil
		}
	}

	episodes, err := n.crawler.Crawl(ctx, series.ID)
	if err != nil {
		return nil, err
	}

	if n.snapshots != nil {
		if err := n.snapshots.Set(series.ID, episodes); err != nil {
			log.Warnf("save episode snapshot of %s: %v", series.ID, err)
		}
	}

	return episodes, nil
}

// InvalidateListing removes the cached listing page.
func (n *Naver) InvalidateListing() error {
	return n.listing.Invalidate()
}
