package bible

import "strings"

// Book is one book of a translation with its ordered chapters and lookup
// indexes.
type Book struct {
	ID           string
	Name         string
	Abbreviation string
	Osis         string
	URLSegment   string
	SortOrder    int

	Chapters       []*Chapter
	ChaptersByName map[string]*Chapter
	ChaptersByOsis map[string]*Chapter

	osises []string
}

// NewBook creates an empty book.
func NewBook(id, name, abbreviation, osis string) *Book {
	return &Book{
		ID:             id,
		Name:           name,
		Abbreviation:   abbreviation,
		Osis:           osis,
		URLSegment:     URLSegmentFor(name),
		ChaptersByName: make(map[string]*Chapter),
		ChaptersByOsis: make(map[string]*Chapter),
	}
}

// AddChapter appends a chapter and registers it in the lookup indexes.
func (b *Book) AddChapter(c *Chapter) {
	b.Chapters = append(b.Chapters, c)
	b.ChaptersByName[c.Name] = c
	b.ChaptersByOsis[c.Osis] = c
	b.osises = nil
}

// Osises enumerates the book's OSIS identifier followed by each chapter's.
// The result is memoized; Osises must not be called concurrently with
// AddChapter.
func (b *Book) Osises() []string {
	if b.osises == nil {
		b.osises = make([]string, 0, len(b.Chapters)+1)
		b.osises = append(b.osises, b.Osis)
		for _, c := range b.Chapters {
			b.osises = append(b.osises, c.Osises()...)
		}
	}
	return b.osises
}

// Chapter is one chapter of a book. Name is the display number as a string.
// NumberOfVerses stays zero: the upstream API does not expose verse counts.
type Chapter struct {
	ID             string
	Name           string
	Osis           string
	NumberOfVerses int
}

// URLSegment returns the chapter's URL segment.
func (c *Chapter) URLSegment() string {
	return strings.ToLower(c.Name)
}

// Osises returns the chapter's OSIS identifiers. Per-verse identifiers are
// omitted; the upstream API does not expose verse counts.
func (c *Chapter) Osises() []string {
	return []string{c.Osis}
}

// Verse is a single verse position within a chapter.
type Verse struct {
	Name string
	Osis string
}
