package reference

import "testing"

func TestBookTables_RoundTrip(t *testing.T) {
	// Every canonical book number must resolve back to itself through each
	// vocabulary's default name.
	formats := []Format{FormatStandard, FormatBibleGateway, FormatAPIDotBible}
	for _, format := range formats {
		for number := 1; number <= 66; number++ {
			name := bookName(number, format, DefaultTranslation)
			if name == "" {
				t.Errorf("%s: no default name for book %d", format, number)
				continue
			}
			got, ok := resolveBook(name, format)
			if !ok || got != number {
				t.Errorf("%s: resolveBook(%q) = %d, %v; want %d", format, name, got, ok, number)
			}
		}
	}
}

func TestBookTables_Apocrypha(t *testing.T) {
	// Books 67-80 exist only in the Api.Bible vocabulary.
	for number := 67; number <= 80; number++ {
		name := bookName(number, FormatAPIDotBible, "")
		if name == "" {
			t.Errorf("no Api.Bible name for book %d", number)
			continue
		}
		if got, ok := resolveBook(name, FormatAPIDotBible); !ok || got != number {
			t.Errorf("resolveBook(%q) = %d, %v; want %d", name, got, ok, number)
		}
		if bookName(number, FormatBibleGateway, "") != "" {
			t.Errorf("book %d should have no BibleGateway name", number)
		}
		if bookName(number, FormatStandard, DefaultTranslation) != "" {
			t.Errorf("book %d should have no Standard name", number)
		}
	}
}

func TestBookTables_Aliases(t *testing.T) {
	tests := []struct {
		name   string
		format Format
		want   int
	}{
		{"1thes", FormatBibleGateway, 52},
		{"2thes", FormatBibleGateway, 53},
		{"psalm", FormatStandard, 19},
		{"song", FormatStandard, 22},
		{"song of solomon", FormatStandard, 22},
		{"SONG OF SONGS", FormatStandard, 22},
		{"JHN", FormatAPIDotBible, 43},
	}
	for _, tt := range tests {
		got, ok := resolveBook(tt.name, tt.format)
		if !ok || got != tt.want {
			t.Errorf("resolveBook(%q, %s) = %d, %v; want %d", tt.name, tt.format, got, ok, tt.want)
		}
	}
}

func TestBookName_UnknownTranslationFallsBack(t *testing.T) {
	if got := bookName(43, FormatStandard, "ESV"); got != "John" {
		t.Errorf("bookName(43, standard, ESV) = %q; want %q", got, "John")
	}
}
