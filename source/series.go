package source

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
)

// ErrNoSource is returned when a series without a provider is asked for its episodes.
var ErrNoSource = errors.New("series has no source")

// State describes how far a series' episode list has been populated.
type State uint32

const (
	Uninitialized State = iota
	Populating
	Populated
)

func (s State) String() string {
	switch s {
	case Uninitialized:
		return "uninitialized"
	case Populating:
		return "populating"
	case Populated:
		return "populated"
	default:
		return "unknown"
	}
}

// Series is one entry of the site's listing page.
type Series struct {
	// Site-assigned identifier taken from the "titleId" link parameter.
	ID string `json:"id" jsonschema:"description=Site-assigned series identifier."`
	// Display title, unique within a catalogue.
	Title string `json:"title"`
	// Thumbnail image URL.
	ThumbnailURL string `json:"thumbnail_url"`
	// Episode list link as found on the listing page.
	URL string `json:"url"`

	Source Source `json:"-"`

	state    atomic.Uint32
	mu       sync.Mutex
	episodes *Episodes
}

// String returns the series title.
func (s *Series) String() string {
	return s.Title
}

// State returns the current population state of the episode list.
func (s *Series) State() State {
	return State(s.state.Load())
}

// Episodes returns the complete episode list, crawling it on first use.
//
// Concurrent callers share one crawl. A failed crawl leaves the series
// uninitialized so a later call starts over; a partial list is never kept.
func (s *Series) Episodes(ctx context.Context) (*Episodes, error) {
	if s.State() == Populated {
		return s.episodes, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.State() == Populated {
		return s.episodes, nil
	}

	if s.Source == nil {
		return nil, ErrNoSource
	}

	s.state.Store(uint32(Populating))
	episodes, err := s.Source.EpisodesOf(ctx, s)
	if err != nil {
		s.state.Store(uint32(Uninitialized))
		return nil, err
	}

	for _, ep := range episodes.Slice() {
		ep.Series = s
	}

	s.episodes = episodes
	s.state.Store(uint32(Populated))
	return episodes, nil
}
