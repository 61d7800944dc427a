// Package search runs full-text queries against a single translation and
// returns paginated passage hits.
package search

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/openscripture/berea/core/apibible"
	"github.com/openscripture/berea/core/bible"
	"github.com/openscripture/berea/core/translations"
	"github.com/openscripture/berea/internal/logging"
)

// Service is the search engine. Responses cache through the API client under
// the fully constructed request URL, so every query/page/sort combination
// gets its own entry.
type Service struct {
	client  *apibible.Client
	catalog *translations.Service
}

// New creates the search engine.
func New(client *apibible.Client, catalog *translations.Service) *Service {
	return &Service{client: client, catalog: catalog}
}

// apiSort maps the domain sort order to the remote API's vocabulary. Book
// order is "canonical" on the wire; anything unrecognized falls back to
// relevance.
func apiSort(order bible.SortOrder) string {
	switch order {
	case bible.SortRelevance:
		return "relevance"
	case bible.SortBookOrder:
		return "canonical"
	default:
		return "relevance"
	}
}

// Search runs query against one translation and returns the page-th page of
// hits, limit per page. A blank query or an unknown translation returns an
// empty result without a remote call; so does a failed fetch.
func (s *Service) Search(ctx context.Context, query, translationID string, order bible.SortOrder, page, limit int) *bible.SearchResult {
	if strings.TrimSpace(query) == "" {
		return &bible.SearchResult{}
	}

	translation := s.catalog.Translation(ctx, translationID)
	if translation == nil {
		return &bible.SearchResult{}
	}

	offset := (page - 1) * limit
	sort := apiSort(order)

	path := fmt.Sprintf("bibles/%s/search?query=%s&limit=%d&offset=%d&sort=%s",
		url.QueryEscape(translation.ID), url.QueryEscape(query), limit, offset, sort)
	env := s.client.CallAndCache(ctx, path, nil)
	if env == nil {
		return &bible.SearchResult{}
	}

	var data apibible.SearchData
	if err := env.Decode(&data); err != nil {
		logging.Error("search decode failed", "path", path, "error", err.Error())
		return &bible.SearchResult{}
	}

	result := &bible.SearchResult{}
	if data.Verses == nil {
		return result
	}

	result.From = data.Offset
	result.Total = data.Total
	result.To = data.Offset + data.Limit - 1
	if result.To > data.Total-1 {
		result.To = data.Total - 1
	}
	for i, verse := range data.Verses {
		result.Hits = append(result.Hits, &bible.SearchHit{
			Number: result.From + i + 1,
			Passage: &bible.Passage{
				Name:        verse.Reference,
				Osis:        strings.ToLower(verse.ID),
				Content:     verse.Text,
				Translation: translation,
			},
		})
	}
	return result
}
