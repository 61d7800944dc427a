// Package translations maintains the catalog of translations available under
// the configured API credential and the administratively enabled subset,
// each hydrated with its book/chapter tree.
package translations

import (
	"context"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/openscripture/berea/core/apibible"
	"github.com/openscripture/berea/core/bible"
	"github.com/openscripture/berea/core/cache"
	"github.com/openscripture/berea/core/reference"
	"github.com/openscripture/berea/internal/logging"
)

const (
	// CacheTag groups the catalog's cache entries.
	CacheTag = "CacheItems_TranslationService"

	cacheKeyAvailable = "AvailableTranslations"
	cacheKeyActive    = "ActiveTranslations"
)

// Settings is the per-translation administrative configuration.
type Settings struct {
	Enabled            bool
	CustomName         string
	CustomAbbreviation string
}

// Service is the translation catalog. One long-lived instance is shared by
// all requests; the instance memos hold catalog data in front of the
// TTL-bound cache store. A memo entry expires with the store TTL, and empty
// results are never memoized, so a failed upstream fetch is retried as soon
// as its ShortTTL store entry lapses.
type Service struct {
	client   *apibible.Client
	store    *cache.Store
	settings map[string]Settings

	mu             sync.Mutex
	available      map[string]*bible.TranslationInfo
	availableUntil time.Time
	active         map[string]*bible.Translation
	activeUntil    time.Time
}

// New creates the catalog service. A nil store is a wiring error and panics.
func New(client *apibible.Client, store *cache.Store, settings map[string]Settings) *Service {
	if store == nil {
		panic("translations: Service constructed without a cache store")
	}
	return &Service{
		client:   client,
		store:    store,
		settings: settings,
	}
}

// Available returns every translation the credential can see, keyed by ID.
// A failed or empty remote response yields an empty map cached for
// cache.ShortTTL only.
func (s *Service) Available(ctx context.Context) map[string]*bible.TranslationInfo {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.available != nil && time.Now().Before(s.availableUntil) {
		return s.available
	}
	available := cache.Get(s.store, cacheKeyAvailable, []string{CacheTag},
		func() (map[string]*bible.TranslationInfo, cache.Outcome) {
			return s.fetchAvailable(ctx)
		})
	if len(available) > 0 {
		s.available = available
		s.availableUntil = time.Now().Add(s.store.TTL())
	} else {
		s.available = nil
	}
	return available
}

func (s *Service) fetchAvailable(ctx context.Context) (map[string]*bible.TranslationInfo, cache.Outcome) {
	logging.CacheEvent("miss", cacheKeyAvailable)

	params := url.Values{}
	params.Set("include-full-details", "false")
	env := s.client.Call(ctx, "bibles", params)
	if env == nil {
		logging.Error("translation list fetch failed", "url", "bibles")
		return map[string]*bible.TranslationInfo{}, cache.OutcomeEmpty
	}

	var data []apibible.TranslationData
	if err := env.Decode(&data); err != nil {
		logging.Error("translation list decode failed", "error", err.Error())
		return map[string]*bible.TranslationInfo{}, cache.OutcomeEmpty
	}

	available := make(map[string]*bible.TranslationInfo, len(data))
	for i := range data {
		info := s.newTranslationInfo(&data[i])
		available[info.ID] = info
	}
	if len(available) == 0 {
		return available, cache.OutcomeEmpty
	}
	return available, cache.OutcomeOK
}

// List returns the available translation IDs, sorted.
func (s *Service) List(ctx context.Context) []string {
	available := s.Available(ctx)

	ids := make([]string, 0, len(available))
	for id := range available {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// IsAvailable reports whether the credential can see the translation.
func (s *Service) IsAvailable(ctx context.Context, translationID string) bool {
	_, ok := s.Available(ctx)[translationID]
	return ok
}

// IsEnabled reports whether the translation is administratively enabled.
func (s *Service) IsEnabled(translationID string) bool {
	return s.settings[translationID].Enabled
}

// Active returns every enabled translation fully hydrated, keyed by ID. A
// translation whose detail fetch fails is logged and skipped; the rest of
// the catalog still loads. An empty result caches for cache.ShortTTL only.
func (s *Service) Active(ctx context.Context) map[string]*bible.Translation {
	s.mu.Lock()
	if s.active != nil && time.Now().Before(s.activeUntil) {
		defer s.mu.Unlock()
		return s.active
	}
	s.mu.Unlock()

	available := s.Available(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.active != nil && time.Now().Before(s.activeUntil) {
		return s.active
	}
	active := cache.Get(s.store, cacheKeyActive, []string{CacheTag},
		func() (map[string]*bible.Translation, cache.Outcome) {
			return s.fetchActive(ctx, available)
		})
	if len(active) > 0 {
		s.active = active
		s.activeUntil = time.Now().Add(s.store.TTL())
	} else {
		s.active = nil
	}
	return active
}

func (s *Service) fetchActive(ctx context.Context, available map[string]*bible.TranslationInfo) (map[string]*bible.Translation, cache.Outcome) {
	logging.CacheEvent("miss", cacheKeyActive)

	active := make(map[string]*bible.Translation)
	for id := range available {
		if !s.IsEnabled(id) {
			continue
		}
		translation := s.loadTranslation(ctx, id)
		if translation == nil {
			logging.Error("translation hydration failed", "translation_id", id)
			continue
		}
		active[translation.ID] = translation
	}
	if len(active) == 0 {
		return active, cache.OutcomeEmpty
	}
	return active, cache.OutcomeOK
}

// Translation returns the hydrated translation with the given ID, or nil
// when the ID is blank, unknown, or not enabled.
func (s *Service) Translation(ctx context.Context, translationID string) *bible.Translation {
	if strings.TrimSpace(translationID) == "" {
		return nil
	}
	return s.Active(ctx)[translationID]
}

// ActiveByURLSegment indexes the active translations by their URL segment.
func (s *Service) ActiveByURLSegment(ctx context.Context) map[string]*bible.Translation {
	active := s.Active(ctx)

	bySegment := make(map[string]*bible.Translation, len(active))
	for _, translation := range active {
		bySegment[translation.URLSegment] = translation
	}
	return bySegment
}

// IDFromURLSegment resolves a URL segment to a translation ID, or "" when no
// active translation uses the segment.
func (s *Service) IDFromURLSegment(ctx context.Context, urlSegment string) string {
	if translation, ok := s.ActiveByURLSegment(ctx)[urlSegment]; ok {
		return translation.ID
	}
	return ""
}

// loadTranslation fetches a translation's detail and book tree and builds
// the entity. Either fetch failing returns nil.
func (s *Service) loadTranslation(ctx context.Context, translationID string) *bible.Translation {
	env := s.client.CallAndCache(ctx, "bibles/"+translationID, nil)
	if env == nil {
		return nil
	}
	var data apibible.TranslationData
	if err := env.Decode(&data); err != nil {
		logging.Error("translation detail decode failed", "translation_id", translationID, "error", err.Error())
		return nil
	}

	booksParams := url.Values{}
	booksParams.Set("include-chapters", "true")
	booksEnv := s.client.CallAndCache(ctx, "bibles/"+translationID+"/books", booksParams)
	if booksEnv == nil {
		return nil
	}
	var books []apibible.BookData
	if err := booksEnv.Decode(&books); err != nil {
		logging.Error("book list decode failed", "translation_id", translationID, "error", err.Error())
		return nil
	}

	translation := bible.NewTranslation(*s.newTranslationInfo(&data))
	translation.StyleSheets = append(translation.StyleSheets, &bible.StyleSheet{
		Default:        true,
		WrapperClasses: bible.DefaultStyleSheetClasses,
		URL:            bible.DefaultStyleSheetURL,
	})
	for _, audio := range data.AudioBibles {
		translation.AddAudioBible(&bible.AudioBible{
			ID:        audio.ID,
			Name:      audio.Name,
			NameLocal: audio.NameLocal,
		}, false)
	}
	for i := range books {
		translation.AddBook(newBook(&books[i], i+1))
	}
	return translation
}

// newTranslationInfo maps wire data to the entity, applying any custom
// name/abbreviation overrides as the defaults. The URL segment derives from
// the default abbreviation.
func (s *Service) newTranslationInfo(data *apibible.TranslationData) *bible.TranslationInfo {
	settings := s.settings[data.ID]

	info := &bible.TranslationInfo{
		ID: data.ID,
		Language: bible.Language{
			ISO:         data.Language.ID,
			Name:        data.Language.Name,
			NameLocal:   data.Language.NameLocal,
			Script:      data.Language.Script,
			Direction:   data.Language.ScriptDirection,
			RightToLeft: data.Language.ScriptDirection == "RTL",
		},
		ReferenceFormat: reference.FormatAPIDotBible,
	}

	customName := settings.CustomName != ""
	if customName {
		info.Names.Set("custom", settings.CustomName, true)
	}
	info.Names.Set("eng", data.Name, !customName)
	info.Names.Set("local", data.NameLocal, false)

	customAbbreviation := settings.CustomAbbreviation != ""
	if customAbbreviation {
		info.Abbreviations.Set("custom", settings.CustomAbbreviation, true)
	}
	info.Abbreviations.Set("eng", data.Abbreviation, !customAbbreviation)
	info.Abbreviations.Set("local", data.AbbreviationLocal, false)

	info.Descriptions.Set("eng", data.Description, true)
	info.Descriptions.Set("local", data.DescriptionLocal, false)

	info.URLSegment = bible.URLSegmentFor(info.Abbreviation())
	return info
}

// newBook maps wire book data to the entity. Chapters with non-numeric
// numbers carry non-scriptural content (intros, notes) and are skipped.
func newBook(data *apibible.BookData, sortOrder int) *bible.Book {
	book := bible.NewBook(data.ID, data.Name, data.Abbreviation, strings.ToLower(data.ID))
	book.SortOrder = sortOrder
	for _, chapter := range data.Chapters {
		if _, err := strconv.Atoi(chapter.Number); err != nil {
			continue
		}
		book.AddChapter(&bible.Chapter{
			ID:   chapter.ID,
			Name: chapter.Number,
			Osis: strings.ToLower(chapter.ID),
		})
	}
	return book
}
