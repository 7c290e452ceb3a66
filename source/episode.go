package source

import (
	"encoding/json"

	"github.com/samber/mo"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Episode is one row of a series' episode list.
type Episode struct {
	// Page-sequence number taken from the detail link's "no" parameter.
	ID string `json:"id" jsonschema:"description=Episode number taken from the detail link."`
	// Display title.
	Title string `json:"title"`
	// Thumbnail image URL.
	ThumbnailURL string `json:"thumbnail_url"`
	// Rating as displayed by the site, e.g. "9.98".
	Rating string `json:"rating"`
	// Creation date as formatted by the site, e.g. "2017.11.07".
	CreatedDate string `json:"created_date"`
	// Detail page link.
	URL string `json:"url"`

	Series *Series `json:"-"`
}

// String returns the episode title.
func (e *Episode) String() string {
	return e.Title
}

// Episodes is an episode collection keyed by ID that remembers insertion order.
type Episodes struct {
	m *orderedmap.OrderedMap[string, *Episode]
}

// NewEpisodes returns an empty collection.
func NewEpisodes() *Episodes {
	return &Episodes{m: orderedmap.New[string, *Episode]()}
}

// Add inserts the episode unless its ID is already present.
// The first occurrence always wins; Add reports whether it inserted.
func (e *Episodes) Add(ep *Episode) bool {
	if _, present := e.m.Get(ep.ID); present {
		return false
	}
	e.m.Set(ep.ID, ep)
	return true
}

// Get looks up an episode by ID.
func (e *Episodes) Get(id string) (*Episode, bool) {
	return e.m.Get(id)
}

// At returns the episode at position index in insertion order.
func (e *Episodes) At(index int) mo.Option[*Episode] {
	if index < 0 || index >= e.m.Len() {
		return mo.None[*Episode]()
	}

	pair := e.m.Oldest()
	for i := 0; i < index; i++ {
		pair = pair.Next()
	}
	return mo.Some(pair.Value)
}

// Len returns the number of episodes.
func (e *Episodes) Len() int {
	return e.m.Len()
}

// Slice returns the episodes in insertion order.
func (e *Episodes) Slice() []*Episode {
	episodes := make([]*Episode, 0, e.m.Len())
	for pair := e.m.Oldest(); pair != nil; pair = pair.Next() {
		episodes = append(episodes, pair.Value)
	}
	return episodes
}

// IDs returns the episode IDs in insertion order.
func (e *Episodes) IDs() []string {
	ids := make([]string, 0, e.m.Len())
	for pair := e.m.Oldest(); pair != nil; pair = pair.Next() {
		ids = append(ids, pair.Key)
	}
	return ids
}

// MarshalJSON encodes the collection as an ordered array.
func (e *Episodes) MarshalJSON() ([]byte, error) {
	return json.Marshal(e.Slice())
}

// UnmarshalJSON decodes an ordered array, keeping the first of any repeated IDs.
func (e *Episodes) UnmarshalJSON(data []byte) error {
	var episodes []*Episode
	if err := json.Unmarshal(data, &episodes); err != nil {
		return err
	}

	e.m = orderedmap.New[string, *Episode]()
	for _, ep := range episodes {
		e.Add(ep)
	}
	return nil
}
