package main

import (
	"testing"

	"github.com/openscripture/berea/core/bible"
	"github.com/openscripture/berea/core/reference"
	"github.com/openscripture/berea/internal/config"
)

func TestParseRefFormat(t *testing.T) {
	tests := []struct {
		name    string
		want    reference.Format
		wantErr bool
	}{
		{"", "", false},
		{"standard", reference.FormatStandard, false},
		{"biblegateway", reference.FormatBibleGateway, false},
		{"apidotbible", reference.FormatAPIDotBible, false},
		{"APIDotBible", reference.FormatAPIDotBible, false},
		{"osis", "", true},
	}
	for _, tt := range tests {
		got, err := parseRefFormat(tt.name)
		if (err != nil) != tt.wantErr {
			t.Errorf("parseRefFormat(%q) error = %v; wantErr %v", tt.name, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("parseRefFormat(%q) = %q; want %q", tt.name, got, tt.want)
		}
	}
}

func TestParsePart(t *testing.T) {
	tests := []struct {
		name string
		want reference.Part
	}{
		{"book", reference.PartBook},
		{"chapter", reference.PartChapter},
		{"verse", reference.PartVerse},
		{"all", reference.PartAll},
		{"", reference.PartAll},
	}
	for _, tt := range tests {
		if got := parsePart(tt.name); got != tt.want {
			t.Errorf("parsePart(%q) = %v; want %v", tt.name, got, tt.want)
		}
	}
}

func TestTranslationSettings(t *testing.T) {
	cfg := &config.Config{
		Translations:             []string{"niv", "esv"},
		TranslationNames:         map[string]string{"niv": "Our Bible"},
		TranslationAbbreviations: map[string]string{"niv": "OB", "nvi-pt": "NVI"},
	}

	settings := translationSettings(cfg)

	niv := settings["niv"]
	if !niv.Enabled || niv.CustomName != "Our Bible" || niv.CustomAbbreviation != "OB" {
		t.Errorf("settings[niv] = %+v", niv)
	}
	esv := settings["esv"]
	if !esv.Enabled || esv.CustomName != "" {
		t.Errorf("settings[esv] = %+v", esv)
	}
	// Overrides apply even to translations not in the enabled list.
	nvi := settings["nvi-pt"]
	if nvi.Enabled || nvi.CustomAbbreviation != "NVI" {
		t.Errorf("settings[nvi-pt] = %+v", nvi)
	}
}

func TestParseFragments(t *testing.T) {
	tests := []struct {
		names   []string
		want    bible.Fragments
		wantErr bool
	}{
		{[]string{"all"}, bible.FragmentsAll, false},
		{[]string{"none"}, bible.FragmentsNone, false},
		{[]string{"headings"}, bible.FragmentHeadings, false},
		{[]string{"headings", "footnotes"}, bible.FragmentHeadings | bible.FragmentFootnotes, false},
		{[]string{"verse-numbers", "chapter-numbers"}, bible.FragmentVerseNumbers | bible.FragmentChapterNumbers, false},
		{[]string{"cross-references"}, bible.FragmentCrossReferences, false},
		{[]string{"headings", "bogus"}, 0, true},
	}
	for _, tt := range tests {
		got, err := parseFragments(tt.names)
		if (err != nil) != tt.wantErr {
			t.Errorf("parseFragments(%v) error = %v; wantErr %v", tt.names, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("parseFragments(%v) = %v; want %v", tt.names, got, tt.want)
		}
	}
}
