package reference

import (
	"regexp"
	"strings"
)

// The two grammars below are the complete surface syntax of a reference.
//
// Standard: "[ordinal] Book [chapter[:verse]] [- [[ordinal] Book] [chapter:]verse]"
// where the ordinal is a single digit 1-3 followed by whitespace ("2 Kings").
//
// OSIS: "BOOK[.chapter[.verse]][-BOOK.chapter[.verse]]" where BOOK is a 2-6
// character token that may start with a digit 1-3 ("1sa", "jhn").
//
// Both accept an en dash as the range separator. A trailing range number is
// always captured as verseEnd; disambiguateRangeEnd decides afterwards
// whether it is really a chapter number.
var (
	standardGrammar = regexp.MustCompile(
		`^(?P<book>(?:[123]\s+)?[a-zA-Z]\w*)` +
			`(?:\s+(?P<chapter>\d{1,3})?(?:\s*:\s*(?P<verse>\d{1,3}))?)?` +
			`(?:\s*[-–]\s*(?:(?P<bookEnd>(?:[123]\s+)?[a-zA-Z]\w*)\s+)?` +
			`(?:(?P<chapterEnd>\d{1,3})\s*:\s*)?(?P<verseEnd>\d{1,3}))?$`)

	osisGrammar = regexp.MustCompile(
		`^(?P<book>[1-3a-zA-Z]{2,6})(?:\.(?P<chapter>\d{1,3}))?(?:\.(?P<verse>\d{1,3}))?` +
			`(?:[-–](?P<bookEnd>[1-3a-zA-Z]{2,6})(?:\.(?P<chapterEnd>\d{1,3}))(?:\.(?P<verseEnd>\d{1,3}))?)?$`)
)

// match holds the raw capture groups of a grammar match. Empty strings mark
// groups that did not participate.
type match struct {
	book       string
	chapter    string
	verse      string
	bookEnd    string
	chapterEnd string
	verseEnd   string
}

// matchGrammar runs a grammar against a trimmed reference string.
func matchGrammar(grammar *regexp.Regexp, ref string) (*match, bool) {
	groups := grammar.FindStringSubmatch(ref)
	if groups == nil {
		return nil, false
	}
	sub := func(name string) string {
		i := grammar.SubexpIndex(name)
		if i < 0 || i >= len(groups) {
			return ""
		}
		return groups[i]
	}
	return &match{
		book:       sub("book"),
		chapter:    sub("chapter"),
		verse:      sub("verse"),
		bookEnd:    sub("bookEnd"),
		chapterEnd: sub("chapterEnd"),
		verseEnd:   sub("verseEnd"),
	}, true
}

// resolveBook maps a book name token to its canonical number under the given
// vocabulary. Standard-format lookups fall back to the BibleGateway and then
// the Api.Bible tables; that ordering is load-bearing for auto-detected
// references and must not change.
func resolveBook(name string, format Format) (int, bool) {
	lower := strings.ToLower(name)
	switch format {
	case FormatStandard:
		if n, ok := standardNames[DefaultTranslation][lower]; ok {
			return n, true
		}
		if n, ok := bibleGatewayNames[lower]; ok {
			return n, true
		}
		if n, ok := apiDotBibleNames[lower]; ok {
			return n, true
		}
		return 0, false
	case FormatBibleGateway:
		n, ok := bibleGatewayNames[lower]
		return n, ok
	case FormatAPIDotBible:
		n, ok := apiDotBibleNames[lower]
		return n, ok
	default:
		return 0, false
	}
}

// bookName maps a canonical book number to its default name under the given
// vocabulary. For the Standard format, translationID selects the naming
// table; unknown translations fall back to the default vocabulary.
func bookName(number int, format Format, translationID string) string {
	switch format {
	case FormatStandard:
		table, ok := standardNumbers[translationID]
		if !ok {
			table = standardNumbers[DefaultTranslation]
		}
		return table[number]
	case FormatBibleGateway:
		return bibleGatewayNumbers[number]
	case FormatAPIDotBible:
		return apiDotBibleNumbers[number]
	default:
		return ""
	}
}

// disambiguateRangeEnd corrects range ends where the grammar captured a
// chapter number as verseEnd. The decision table:
//
//	bookEnd set, chapterEnd unset            -> trailing number is a chapter
//	                                            ("John 3-John 4")
//	no end parts, no start verse, chapter set -> trailing number is a chapter
//	                                            of the same book ("John 3-4")
//	otherwise                                 -> trailing number is a verse
//	                                            ("John 3:16-18")
func disambiguateRangeEnd(r *Reference) {
	if r.VerseEnd == nil {
		return
	}
	switch {
	case r.BookEnd != nil && r.ChapterEnd == nil:
		r.ChapterEnd = r.VerseEnd
		r.VerseEnd = nil
	case r.BookEnd == nil && r.ChapterEnd == nil && r.Verse == nil && r.Chapter != nil:
		end := r.Book
		r.BookEnd = &end
		r.ChapterEnd = r.VerseEnd
		r.VerseEnd = nil
	}
}
