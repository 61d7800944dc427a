package bible

// SortOrder selects search result ordering.
type SortOrder string

const (
	// SortRelevance orders by match quality.
	SortRelevance SortOrder = "relevance"
	// SortBookOrder orders by canonical book position.
	SortBookOrder SortOrder = "bookorder"
)

// SearchHit is one search result: its 1-based position in the overall result
// set and the matched passage.
type SearchHit struct {
	Number  int
	Passage *Passage
	URL     string
}

// SearchResult is a page of search hits. From and To are 0-based positions
// within the Total matches.
type SearchResult struct {
	From  int
	To    int
	Total int
	Hits  []*SearchHit
}
