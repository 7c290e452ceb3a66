package constant

// Naver Webtoon endpoints used by the built-in provider.
const (
	NaverListingURL  = "https://comic.naver.com/webtoon/weekday.nhn"
	NaverEpisodesURL = "https://comic.naver.com/webtoon/list.nhn"
)

// Query parameter names understood by the episode list endpoint.
const (
	ParamTitleID = "titleId"
	ParamPage    = "page"
)
