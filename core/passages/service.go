// Package passages retrieves formatted scripture passages. A request names a
// reference expression (possibly several references separated by commas or
// semicolons) and a translation; each reference is normalized through the
// reference parser, fetched, and the results aggregated and cached as one
// unit.
package passages

import (
	"context"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/openscripture/berea/core/apibible"
	"github.com/openscripture/berea/core/bible"
	"github.com/openscripture/berea/core/cache"
	"github.com/openscripture/berea/core/reference"
	"github.com/openscripture/berea/core/translations"
	"github.com/openscripture/berea/internal/logging"
)

const (
	// CacheTag groups the retriever's cache entries.
	CacheTag = "CacheItems_PassageService"

	cacheKeyPrefix = "Passages_"
)

// passageEntry is a memoized aggregation with its expiry.
type passageEntry struct {
	passages []*bible.Passage
	until    time.Time
}

// Service is the passage retriever. One long-lived instance is shared by all
// requests; the instance memo holds aggregations in front of the TTL-bound
// cache store. Memo entries expire with the store TTL, and empty
// aggregations are never memoized, so a failed fetch is retried as soon as
// its ShortTTL store entry lapses.
type Service struct {
	client  *apibible.Client
	store   *cache.Store
	catalog *translations.Service

	mu       sync.Mutex
	passages map[string]passageEntry
}

// New creates the retriever. A nil store is a wiring error and panics.
func New(client *apibible.Client, store *cache.Store, catalog *translations.Service) *Service {
	if store == nil {
		panic("passages: Service constructed without a cache store")
	}
	return &Service{
		client:   client,
		store:    store,
		catalog:  catalog,
		passages: make(map[string]passageEntry),
	}
}

func passagesCacheKey(osis, translationID string) string {
	return cacheKeyPrefix + translationID + "_" + osis
}

// Passages retrieves every passage named by the reference expression in the
// first translation; additional translation IDs are ignored. An unparseable
// segment is logged and skipped; a failed fetch aborts the whole aggregation
// and yields an empty result cached for cache.ShortTTL.
func (s *Service) Passages(ctx context.Context, osis string, translationIDs []string) []*bible.Passage {
	if len(translationIDs) == 0 {
		return nil
	}
	translationID := translationIDs[0]
	key := passagesCacheKey(osis, translationID)

	s.mu.Lock()
	if entry, ok := s.passages[key]; ok && time.Now().Before(entry.until) {
		s.mu.Unlock()
		return entry.passages
	}
	s.mu.Unlock()

	// Resolved outside the memo lock; catalog hydration makes its own
	// remote calls.
	translation := s.catalog.Translation(ctx, translationID)

	s.mu.Lock()
	defer s.mu.Unlock()
	if entry, ok := s.passages[key]; ok && time.Now().Before(entry.until) {
		return entry.passages
	}
	result := cache.Get(s.store, key, []string{CacheTag},
		func() ([]*bible.Passage, cache.Outcome) {
			return s.fetchPassages(ctx, osis, translation)
		})
	if len(result) > 0 {
		s.passages[key] = passageEntry{passages: result, until: time.Now().Add(s.store.TTL())}
	} else {
		delete(s.passages, key)
	}
	return result
}

func (s *Service) fetchPassages(ctx context.Context, osis string, translation *bible.Translation) ([]*bible.Passage, cache.Outcome) {
	if translation == nil {
		return []*bible.Passage{}, cache.OutcomeEmpty
	}

	params := url.Values{}
	params.Set("fums-version", "3")
	params.Set("content-type", "html")
	params.Set("include-titles", "true")
	params.Set("include-chapter-numbers", "true")
	params.Set("include-verse-numbers", "true")
	params.Set("include-notes", "true")
	params.Set("include-verse-spans", "true")

	segments := strings.FieldsFunc(osis, func(r rune) bool {
		return r == ',' || r == ';'
	})

	var passages []*bible.Passage
	for _, segment := range segments {
		ref, err := reference.Parse(segment, "")
		if err != nil {
			logging.Error("skipping unparseable reference", "reference", segment, "error", err.Error())
			continue
		}
		apiOsis := ref.OsisString(reference.FormatAPIDotBible, reference.PartAll)

		path := "bibles/" + translation.ID + "/passages/" + url.PathEscape(apiOsis)
		env := s.client.Call(ctx, path, params)
		if env == nil || env.Data == nil {
			// One failed fetch abandons the whole aggregation so a partial
			// result is never cached as complete.
			return []*bible.Passage{}, cache.OutcomeEmpty
		}
		var data apibible.PassageData
		if err := env.Decode(&data); err != nil {
			logging.Error("passage decode failed", "path", path, "error", err.Error())
			return []*bible.Passage{}, cache.OutcomeEmpty
		}

		passage := &bible.Passage{
			Name:        strings.TrimSpace(data.Reference),
			Osis:        strings.ToLower(data.ID),
			Content:     data.Content,
			OsisContent: data.Content,
			Translation: translation,
			// The upstream API embeds footnotes in content and has no
			// cross-reference support.
			CrossReferences: []*bible.CrossReference{},
			Footnotes:       []*bible.Footnote{},
		}
		if env.Meta != nil {
			passage.TrackingToken = env.Meta.FumsToken
		}
		if audioBible := translation.DefaultAudioBible(); audioBible != nil {
			if resolved, err := reference.Parse(data.ID, reference.FormatAPIDotBible); err == nil {
				passage.Audio = append(passage.Audio, &bible.Audio{
					Osis:   resolved.OsisString(reference.FormatAPIDotBible, reference.PartChapter),
					Reader: audioBible.Name,
				})
			}
		}
		passages = append(passages, passage)
	}

	if len(passages) == 0 {
		return []*bible.Passage{}, cache.OutcomeEmpty
	}
	return passages, cache.OutcomeOK
}
