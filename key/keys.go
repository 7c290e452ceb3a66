// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// DefinedFieldsCount represents the total cardinality of the application configuration schema.
const DefinedFieldsCount = 15

// Provider Source Identifiers - these keys manage the selection of the scraping provider.
const (
	DefaultSources = "sources.default"
)

// Site Layout - these keys point the built-in provider at its listing and episode endpoints.
const (
	SiteListingURL  = "site.listing_url"
	SiteEpisodesURL = "site.episodes_url"
)

// Crawl Limits - these keys bound the paginated episode crawl.
const (
	CrawlMaxPages = "crawl.max_pages"
)

// Network Transport - these keys configure the page fetcher.
const (
	NetworkTimeout    = "network.timeout"
	NetworkUserAgent  = "network.user_agent"
	NetworkRetryCount = "network.retry_count"
)

// Listing Cache - these keys locate the persisted top-level listing page.
const (
	CacheListingPath = "cache.listing_path"
)

// Episode Snapshots - these keys govern the optional on-disk persistence of crawled episodes.
const (
	EpisodesPersist      = "episodes.persist"
	EpisodesPersistHours = "episodes.persist_hours"
)

// Logging Infrastructure - these keys manage the application's internal diagnostics and auditing system.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// CLI Execution Environment - these flags and settings govern the application's terminal output.
const (
	CliColored   = "cli.colored"
	IconsVariant = "icons.variant"
)
