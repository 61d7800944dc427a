package passages

import (
	"strings"
	"testing"

	"github.com/openscripture/berea/core/bible"
)

const sampleContent = `<h2 class="c" data-number="19">19</h2>` +
	`<p class="s1">Allotment for Simeon</p>` +
	`<p class="d"><span>Of David.</span></p>` +
	`<p class="p"><span class="v" data-number="1">1</span>The second lot came out` +
	`<span data-caller="+" id="JOS.19.2!f.1" class="f">footnote text</span> for Simeon.</p>`

func TestFilterContent_AllReturnsUnchanged(t *testing.T) {
	p := &bible.Passage{Content: sampleContent}
	if got := FilterContent(p, bible.FragmentsAll); got != sampleContent {
		t.Errorf("FilterContent(All) modified content:\n%s", got)
	}
}

func TestFilterContent_NoneStripsEverything(t *testing.T) {
	p := &bible.Passage{Content: sampleContent}
	got := FilterContent(p, bible.FragmentsNone)

	for _, marker := range []string{`class="c"`, `class="s1"`, `class="d"`, `class="v"`, `class="f"`} {
		if strings.Contains(got, marker) {
			t.Errorf("FilterContent(None) kept %s:\n%s", marker, got)
		}
	}
	if !strings.Contains(got, "The second lot came out") {
		t.Errorf("FilterContent(None) dropped passage text:\n%s", got)
	}
}

func TestFilterContent_SelectiveFragments(t *testing.T) {
	tests := []struct {
		name    string
		include bible.Fragments
		kept    []string
		removed []string
	}{
		{
			name:    "headings only",
			include: bible.FragmentHeadings,
			kept:    []string{`class="s1"`, `class="d"`},
			removed: []string{`class="v"`, `class="f"`, `class="c"`},
		},
		{
			name:    "verse numbers only",
			include: bible.FragmentVerseNumbers,
			kept:    []string{`class="v"`},
			removed: []string{`class="s1"`, `class="f"`, `class="c"`},
		},
		{
			name:    "chapter numbers and footnotes",
			include: bible.FragmentChapterNumbers | bible.FragmentFootnotes,
			kept:    []string{`class="c"`, `class="f"`},
			removed: []string{`class="s1"`, `class="v"`},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &bible.Passage{Content: sampleContent}
			got := FilterContent(p, tt.include)
			for _, marker := range tt.kept {
				if !strings.Contains(got, marker) {
					t.Errorf("FilterContent dropped %s:\n%s", marker, got)
				}
			}
			for _, marker := range tt.removed {
				if strings.Contains(got, marker) {
					t.Errorf("FilterContent kept %s:\n%s", marker, got)
				}
			}
		})
	}
}

func TestFilterContent_EmptyContent(t *testing.T) {
	p := &bible.Passage{Content: "   "}
	if got := FilterContent(p, bible.FragmentsNone); got != "" {
		t.Errorf("FilterContent(blank) = %q; want empty", got)
	}
}

func TestFilterContent_InvalidBitsIgnored(t *testing.T) {
	p := &bible.Passage{Content: sampleContent}
	// 1024 is not a defined fragment; masked off, so this equals All.
	if got := FilterContent(p, bible.NewFragments(1024|bible.FragmentsAll)); got != sampleContent {
		t.Errorf("FilterContent with invalid bits modified content:\n%s", got)
	}
}
