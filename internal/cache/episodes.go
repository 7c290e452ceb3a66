package cache

import (
	"sync"
	"time"

	"github.com/comicrawl/comicrawl/filesystem"
	"github.com/comicrawl/comicrawl/source"
	"github.com/metafates/gache"
	"github.com/samber/mo"
)

// Episodes persists fully crawled episode lists keyed by series ID.
// The whole registry expires together once lifetime has passed since the last write.
type Episodes struct {
	internal *gache.Cache[map[string]*source.Episodes]
	mu       sync.RWMutex
}

// NewEpisodes returns a registry stored at path.
func NewEpisodes(path string, lifetime time.Duration) *Episodes {
	return &Episodes{
		internal: gache.New[map[string]*source.Episodes](
			&gache.Options{
				Path:       path,
				Lifetime:   lifetime,
				FileSystem: &filesystem.GacheFs{},
			},
		),
	}
}

// Get returns the stored episode list of a series.
func (e *Episodes) Get(seriesID string) mo.Option[*source.Episodes] {
	e.mu.RLock()
	defer e.mu.RUnlock()

	data, expired, err := e.internal.Get()
	if err != nil || expired || data == nil {
		return mo.None[*source.Episodes]()
	}

	episodes, ok := data[seriesID]
	if !ok || episodes == nil {
		return mo.None[*source.Episodes]()
	}
	return mo.Some(episodes)
}

// Set stores the episode list of a series.
func (e *Episodes) Set(seriesID string, episodes *source.Episodes) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	data, expired, err := e.internal.Get()
	if err != nil {
		return err
	}

	if expired || data == nil {
		data = make(map[string]*source.Episodes)
	}

	data[seriesID] = episodes
	return e.internal.Set(data)
}

// Delete removes the stored episode list of a series.
func (e *Episodes) Delete(seriesID string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	data, expired, err := e.internal.Get()
	if err != nil || expired || data == nil {
		return err
	}

	delete(data, seriesID)
	return e.internal.Set(data)
}
