package model

// SearchResult is one candidate profile discovered by the search-engine
// collector: a flat row extracted from the raw search payload.
type SearchResult struct {
	Position int    `json:"position"`
	Title    string `json:"title"`
	URL      string `json:"url"`
	Username string `json:"username"`
}
