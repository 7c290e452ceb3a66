// Package catalogue holds the series listed by a source, keyed by title.
package catalogue

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/comicrawl/comicrawl/log"
	"github.com/comicrawl/comicrawl/source"
	"github.com/comicrawl/comicrawl/util"
	levenshtein "github.com/ka-weihe/fast-levenshtein"
	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/samber/lo"
)

// ErrSeriesNotFound is matched by a SeriesNotFoundError.
var ErrSeriesNotFound = errors.New("series not found")

// SeriesNotFoundError is returned when no series has the requested title.
type SeriesNotFoundError struct {
	Title string
	// Suggestions are the closest titles in the catalogue, best first.
	Suggestions []string
}

func (e *SeriesNotFoundError) Error() string {
	return fmt.Sprintf("series %q not found", e.Title)
}

func (e *SeriesNotFoundError) Is(target error) bool {
	return target == ErrSeriesNotFound
}

// DefaultSuggestions is the number of suggestions attached to a SeriesNotFoundError.
const DefaultSuggestions = 3

// Catalogue is populated from its source on first use and reused afterwards.
// Titles are unique: when the listing repeats a title the first series wins.
type Catalogue struct {
	source source.Source

	mu        sync.Mutex
	populated bool
	series    []*source.Series
	byTitle   map[string]*source.Series
}

// New returns an unpopulated catalogue of src.
func New(src source.Source) *Catalogue {
	return &Catalogue{source: src}
}

// All returns every series in the order the listing first shows them.
func (c *Catalogue) All(ctx context.Context) ([]*source.Series, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.populate(ctx); err != nil {
		return nil, err
	}

	return slices.Clone(c.series), nil
}

// SeriesByTitle returns the series with exactly the given title.
func (c *Catalogue) SeriesByTitle(ctx context.Context, title string) (*source.Series, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.populate(ctx); err != nil {
		return nil, err
	}

	if series, ok := c.byTitle[title]; ok {
		return series, nil
	}

	return nil, &SeriesNotFoundError{
		Title:       title,
		Suggestions: c.suggest(title, DefaultSuggestions),
	}
}

// Suggest returns up to limit titles resembling title, closest first.
// A non-positive limit returns every match.
func (c *Catalogue) Suggest(ctx context.Context, title string, limit int) ([]string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.populate(ctx); err != nil {
		return nil, err
	}

	return c.suggest(title, limit), nil
}

// Invalidate drops the in-memory snapshot. The next access lists the source again.
func (c *Catalogue) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.populated = false
	c.series = nil
	c.byTitle = nil
}

func (c *Catalogue) populate(ctx context.Context) error {
	if c.populated {
		return nil
	}

	listed, err := c.source.Series(ctx)
	if err != nil {
		return fmt.Errorf("list %s: %w", c.source.Name(), err)
	}

	series := make([]*source.Series, 0, len(listed))
	byTitle := make(map[string]*source.Series, len(listed))

	for _, s := range listed {
		if kept, ok := byTitle[s.Title]; ok {
			log.With(log.Fields{"site": c.source.ID(), "series": s.ID}).
				Debugf("dropped duplicate title %q, keeping series %s", s.Title, kept.ID)
			continue
		}

		byTitle[s.Title] = s
		series = append(series, s)
	}

	log.Infof("%s listed %s", c.source.Name(), util.Quantify(len(series), "series", "series"))

	c.series = series
	c.byTitle = byTitle
	c.populated = true
	return nil
}

func (c *Catalogue) suggest(title string, limit int) []string {
	query := strings.TrimSpace(title)
	if query == "" {
		return []string{}
	}

	threshold := util.Max(2, len([]rune(query))/3)

	matches := lo.Filter(c.series, func(s *source.Series, _ int) bool {
		return fuzzy.MatchNormalizedFold(query, s.Title) ||
			fuzzy.MatchNormalizedFold(s.Title, query) ||
			levenshtein.Distance(query, s.Title) <= threshold
	})

	slices.SortStableFunc(matches, func(a, b *source.Series) int {
		return levenshtein.Distance(query, a.Title) - levenshtein.Distance(query, b.Title)
	})

	if limit > 0 && len(matches) > limit {
		matches = matches[:limit]
	}

	return lo.Map(matches, func(s *source.Series, _ int) string {
		return s.Title
	})
}
