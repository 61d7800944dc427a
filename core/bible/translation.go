// Package bible holds the translation, book, chapter, and passage entities
// shared by the catalog, passage, and search services. Entities are built
// once per cache window and treated as read-only afterwards.
package bible

import (
	"encoding/json"
	"strings"

	"github.com/openscripture/berea/core/reference"
)

// Default scripture stylesheet shipped with the host.
const (
	DefaultStyleSheetClasses = "scripture-styles"
	DefaultStyleSheetURL     = "/lib/api-bible/scripture-styles.css"
)

// LocalizedStrings is a set of variants of one text (names, abbreviations)
// keyed by variant ID, with one variant designated the default. The first
// variant set becomes the default unless a later Set overrides it.
type LocalizedStrings struct {
	values    map[string]string
	defaultID string
}

// Set stores a variant. makeDefault promotes it to the default; the first
// variant is the default regardless.
func (l *LocalizedStrings) Set(id, value string, makeDefault bool) {
	if l.values == nil {
		l.values = make(map[string]string)
	}
	if makeDefault || len(l.values) == 0 {
		l.defaultID = id
	}
	l.values[id] = value
}

// Get returns the variant with the given ID.
func (l *LocalizedStrings) Get(id string) (string, bool) {
	value, ok := l.values[id]
	return value, ok
}

// Default returns the default variant, or "" when none is set.
func (l *LocalizedStrings) Default() string {
	return l.values[l.defaultID]
}

// localizedStringsJSON is the storage form; entities pass through the cache
// as JSON.
type localizedStringsJSON struct {
	Values  map[string]string `json:"values,omitempty"`
	Default string            `json:"default,omitempty"`
}

func (l LocalizedStrings) MarshalJSON() ([]byte, error) {
	return json.Marshal(localizedStringsJSON{Values: l.values, Default: l.defaultID})
}

func (l *LocalizedStrings) UnmarshalJSON(data []byte) error {
	var raw localizedStringsJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	l.values = raw.Values
	l.defaultID = raw.Default
	return nil
}

// Language describes a translation's language.
type Language struct {
	ISO         string
	Name        string
	NameLocal   string
	Script      string
	Direction   string
	RightToLeft bool
}

// TranslationInfo is the lightweight identity of a translation: enough for
// listings and settings screens, no book data.
type TranslationInfo struct {
	ID              string
	Names           LocalizedStrings
	Abbreviations   LocalizedStrings
	Descriptions    LocalizedStrings
	URLSegment      string
	Language        Language
	ReferenceFormat reference.Format
}

// Name returns the default name.
func (t *TranslationInfo) Name() string {
	return t.Names.Default()
}

// Abbreviation returns the default abbreviation.
func (t *TranslationInfo) Abbreviation() string {
	return t.Abbreviations.Default()
}

// Description returns the default description.
func (t *TranslationInfo) Description() string {
	return t.Descriptions.Default()
}

// StyleSheet is a CSS resource for rendering passage content.
type StyleSheet struct {
	Default        bool
	URL            string
	WrapperClasses string
	Styles         string
}

// AudioBible is an audio edition attached to a translation.
type AudioBible struct {
	ID        string
	Name      string
	NameLocal string
}

// Translation is a fully hydrated translation: identity plus its ordered
// book tree and lookup indexes.
type Translation struct {
	TranslationInfo

	Books             []*Book
	BooksByURLSegment map[string]*Book
	BooksByOsis       map[string]*Book

	StyleSheets []*StyleSheet

	AudioBibles         []*AudioBible
	DefaultAudioBibleID string
}

// NewTranslation creates an empty translation with the given identity.
func NewTranslation(info TranslationInfo) *Translation {
	return &Translation{
		TranslationInfo:   info,
		BooksByURLSegment: make(map[string]*Book),
		BooksByOsis:       make(map[string]*Book),
	}
}

// AddBook appends a book and registers it in the lookup indexes.
func (t *Translation) AddBook(b *Book) {
	t.Books = append(t.Books, b)
	t.BooksByURLSegment[b.URLSegment] = b
	t.BooksByOsis[b.Osis] = b
}

// AddAudioBible appends an audio edition. makeDefault promotes it; the first
// edition is the default regardless.
func (t *Translation) AddAudioBible(a *AudioBible, makeDefault bool) {
	if makeDefault || len(t.AudioBibles) == 0 {
		t.DefaultAudioBibleID = a.ID
	}
	t.AudioBibles = append(t.AudioBibles, a)
}

// DefaultAudioBible returns the default audio edition, or nil when the
// translation has none.
func (t *Translation) DefaultAudioBible() *AudioBible {
	for _, a := range t.AudioBibles {
		if a.ID == t.DefaultAudioBibleID {
			return a
		}
	}
	return nil
}

// DefaultStyleSheet returns the stylesheet flagged default, or nil.
func (t *Translation) DefaultStyleSheet() *StyleSheet {
	for _, s := range t.StyleSheets {
		if s.Default {
			return s
		}
	}
	return nil
}

// URLSegmentFor derives a URL segment from a display name: lowercased with
// spaces replaced by hyphens.
func URLSegmentFor(name string) string {
	return strings.ReplaceAll(strings.ToLower(name), " ", "-")
}
