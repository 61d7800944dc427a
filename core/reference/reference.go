// Package reference parses and formats Bible references across the three
// book-naming vocabularies used by the supported content providers: the
// Standard long-form English names ("1 Kings 3:16"), BibleGateway OSIS names
// ("1Kgs.3.16"), and Api.Bible OSIS names ("1KI.3.16").
package reference

import (
	"strconv"
	"strings"
)

// Format identifies a book-naming vocabulary. The zero value means
// auto-detect.
type Format string

const (
	// FormatStandard uses long English book names: "1 Kings 3:16".
	FormatStandard Format = "standard"
	// FormatBibleGateway uses BibleGateway OSIS names: "1Kgs.3.16".
	FormatBibleGateway Format = "biblegateway"
	// FormatAPIDotBible uses Api.Bible OSIS names: "1ki.3.16".
	FormatAPIDotBible Format = "apidotbible"
)

// Part selects how much of a reference OsisString emits.
type Part int

const (
	// PartBook emits the book only: "jhn".
	PartBook Part = iota
	// PartChapter emits book and chapter: "jhn.3".
	PartChapter
	// PartVerse emits book, chapter, and verse: "jhn.3.16".
	PartVerse
	// PartAll emits the full range: "jhn.3.16-jhn.3.17".
	PartAll
)

// ParseError reports a reference string that matched no grammar or named an
// unknown book.
type ParseError struct {
	Ref string
}

func (e *ParseError) Error() string {
	return "could not parse Bible reference: " + e.Ref
}

// Reference is a parsed Bible reference, possibly spanning a range. Book is
// always set; all other fields are optional. A Reference is read-only after
// Parse; the serialization methods never mutate it.
type Reference struct {
	raw string

	Book    int
	Chapter *int
	Verse   *int

	BookEnd    *int
	ChapterEnd *int
	VerseEnd   *int
}

// Parse parses a reference string. With an explicit format only that
// format's grammar is applied. With the zero Format the Standard grammar is
// tried first, then the OSIS grammar, with the vocabulary inferred from
// whichever book table contains the matched token (Api.Bible checked before
// BibleGateway).
func Parse(raw string, format Format) (*Reference, error) {
	// Strip the Unicode right-to-left marker and normalize book-introduction
	// pseudo-references to chapter 1 verse 1.
	raw = strings.ReplaceAll(raw, "\u200f", "")
	raw = strings.ReplaceAll(raw, ".intro.0-", ".1.1-")
	ref := strings.TrimSpace(raw)

	var m *match
	var ok bool
	switch format {
	case FormatStandard:
		m, ok = matchGrammar(standardGrammar, ref)
	case FormatBibleGateway, FormatAPIDotBible:
		m, ok = matchGrammar(osisGrammar, ref)
	default:
		if m, ok = matchGrammar(standardGrammar, ref); ok {
			format = FormatStandard
		} else if m, ok = matchGrammar(osisGrammar, ref); ok {
			lower := strings.ToLower(m.book)
			if _, hit := apiDotBibleNames[lower]; hit {
				format = FormatAPIDotBible
			} else if _, hit := bibleGatewayNames[lower]; hit {
				format = FormatBibleGateway
			}
		}
	}
	if !ok {
		return nil, &ParseError{Ref: ref}
	}

	book, resolved := resolveBook(m.book, format)
	if !resolved {
		return nil, &ParseError{Ref: ref}
	}
	r := &Reference{
		raw:     ref,
		Book:    book,
		Chapter: atoiOpt(m.chapter),
		Verse:   atoiOpt(m.verse),
	}
	if m.bookEnd != "" {
		bookEnd, resolved := resolveBook(m.bookEnd, format)
		if !resolved {
			return nil, &ParseError{Ref: ref}
		}
		r.BookEnd = &bookEnd
	}
	r.ChapterEnd = atoiOpt(m.chapterEnd)
	r.VerseEnd = atoiOpt(m.verseEnd)

	disambiguateRangeEnd(r)

	return r, nil
}

// Raw returns the reference string Parse was given, after marker stripping
// and whitespace trimming.
func (r *Reference) Raw() string {
	return r.raw
}

// IsRange reports whether the reference spans more than a single point.
func (r *Reference) IsRange() bool {
	return r.BookEnd != nil || r.ChapterEnd != nil || r.VerseEnd != nil
}

// Display renders the reference in the Standard format using the given
// translation's naming vocabulary: "John 3:16-18". The end book name is only
// emitted when an end book was resolved, the end chapter is separated by a
// space when it follows a book name, and the end verse takes a ":" separator
// only when an end chapter precedes it.
func (r *Reference) Display(translationID string) string {
	var sb strings.Builder
	sb.WriteString(bookName(r.Book, FormatStandard, translationID))
	if r.Chapter != nil {
		sb.WriteByte(' ')
		sb.WriteString(strconv.Itoa(*r.Chapter))
	}
	if r.Verse != nil {
		sb.WriteByte(':')
		sb.WriteString(strconv.Itoa(*r.Verse))
	}
	if r.IsRange() {
		sb.WriteByte('-')
	}
	if r.BookEnd != nil {
		sb.WriteString(bookName(*r.BookEnd, FormatStandard, translationID))
	}
	if r.ChapterEnd != nil {
		if r.BookEnd != nil {
			sb.WriteByte(' ')
		}
		sb.WriteString(strconv.Itoa(*r.ChapterEnd))
	}
	if r.VerseEnd != nil {
		if r.ChapterEnd != nil {
			sb.WriteByte(':')
		}
		sb.WriteString(strconv.Itoa(*r.VerseEnd))
	}
	return sb.String()
}

// String renders the reference with the default translation vocabulary.
func (r *Reference) String() string {
	return r.Display(DefaultTranslation)
}

// OsisString renders the reference in an OSIS vocabulary at the requested
// granularity. For PartAll the "start-end" form is emitted only when any end
// component is set; a missing end book or chapter defaults to the start
// value.
func (r *Reference) OsisString(format Format, part Part) string {
	var sb strings.Builder
	sb.WriteString(bookName(r.Book, format, ""))
	if r.Chapter != nil && part != PartBook {
		sb.WriteByte('.')
		sb.WriteString(strconv.Itoa(*r.Chapter))
	}
	if r.Verse != nil && (part == PartAll || part == PartVerse) {
		sb.WriteByte('.')
		sb.WriteString(strconv.Itoa(*r.Verse))
	}
	if part == PartAll && r.IsRange() {
		sb.WriteByte('-')
		if r.BookEnd != nil {
			sb.WriteString(bookName(*r.BookEnd, format, ""))
		} else {
			sb.WriteString(bookName(r.Book, format, ""))
		}
		sb.WriteByte('.')
		if r.ChapterEnd != nil {
			sb.WriteString(strconv.Itoa(*r.ChapterEnd))
		} else if r.Chapter != nil {
			sb.WriteString(strconv.Itoa(*r.Chapter))
		}
		if r.VerseEnd != nil {
			sb.WriteByte('.')
			sb.WriteString(strconv.Itoa(*r.VerseEnd))
		}
	}
	return sb.String()
}

func atoiOpt(s string) *int {
	if s == "" {
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}
	return &n
}
