package bible

import (
	"regexp"
	"strings"
)

var completeChapterPattern = regexp.MustCompile(`^\w+\.\d+$`)

// Passage is a retrieved scripture section: formatted HTML content plus its
// position in the translation's book tree.
type Passage struct {
	Name        string
	Osis        string
	Content     string
	OsisContent string
	Translation *Translation

	Audio           []*Audio
	CrossReferences []*CrossReference
	Footnotes       []*Footnote

	// TrackingToken feeds the publisher's usage-reporting script.
	TrackingToken string

	book    *Book
	chapter *Chapter
}

// Book resolves the passage's book from the leading OSIS segment. Returns
// nil when the translation does not carry the book.
func (p *Passage) Book() *Book {
	if p.book == nil {
		start := strings.SplitN(p.Osis, "-", 2)[0]
		bookOsis := strings.SplitN(start, ".", 2)[0]
		p.book = p.Translation.BooksByOsis[bookOsis]
	}
	return p.book
}

// Chapter resolves the passage's chapter from the leading OSIS segment.
// Returns nil for book-only references or unknown chapters.
func (p *Passage) Chapter() *Chapter {
	if p.chapter == nil {
		start := strings.SplitN(p.Osis, "-", 2)[0]
		parts := strings.Split(start, ".")
		if len(parts) < 2 {
			return nil
		}
		book := p.Book()
		if book == nil {
			return nil
		}
		p.chapter = book.ChaptersByOsis[parts[0]+"."+parts[1]]
	}
	return p.chapter
}

// IsCompleteChapter reports whether the passage covers exactly one whole
// chapter ("jhn.3" as opposed to "jhn.3.16" or a range).
func (p *Passage) IsCompleteChapter() bool {
	return completeChapterPattern.MatchString(p.Osis)
}

// Audio is a playable recording of a passage.
type Audio struct {
	Reader string
	Osis   string
	MP3URL string
	OggURL string

	// Expiration is a unix timestamp after which the URLs stop working.
	Expiration       int64
	ExpirationString string
}

// CrossReference links passage content to a related verse.
type CrossReference struct {
	ID          string
	ReferenceID string
	Verse       string
	Content     string
}

// Footnote is a note anchored in passage content.
type Footnote struct {
	ID          string
	ReferenceID string
	Verse       string
	Content     string
}

// Fragments selects which optional passage content fragments to keep when
// filtering.
type Fragments int

const (
	FragmentsNone           Fragments = 0
	FragmentCrossReferences Fragments = 1
	FragmentFootnotes       Fragments = 2
	FragmentChapterNumbers  Fragments = 4
	FragmentVerseNumbers    Fragments = 8
	FragmentHeadings        Fragments = 16

	FragmentsAll = FragmentCrossReferences | FragmentFootnotes |
		FragmentChapterNumbers | FragmentVerseNumbers | FragmentHeadings
)

// NewFragments masks off invalid bits.
func NewFragments(f Fragments) Fragments {
	return f & FragmentsAll
}

// Has reports whether every valid bit of mask is set.
func (f Fragments) Has(mask Fragments) bool {
	mask &= FragmentsAll
	return f&mask == mask
}

// Add returns f with mask's valid bits set.
func (f Fragments) Add(mask Fragments) Fragments {
	return f | (mask & FragmentsAll)
}
