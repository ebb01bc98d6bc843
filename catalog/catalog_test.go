package catalog

import (
	"strings"
	"testing"
)

func TestGetClampsDay(t *testing.T) {
	tests := []struct {
		name      string
		day       int
		clampedTo int
	}{
		{"above range", 31, 30},
		{"far above range", 100, 30},
		{"zero", 0, 1},
		{"negative", -5, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Get(tt.day, "en")
			want := Get(tt.clampedTo, "en")
			if got.Day != want.Day || got.Title != want.Title || got.Summary != want.Summary {
				t.Errorf("Get(%d) should behave like Get(%d): got %+v", tt.day, tt.clampedTo, got)
			}
		})
	}
}

func TestGetAuthoredDay(t *testing.T) {
	entry := Get(3, "en")

	if entry.Title != "Day 3 · Activating Momentum" {
		t.Errorf("authored title not returned verbatim: %q", entry.Title)
	}
	if entry.Summary != "Energy levels rise. Great for workouts and decisive moves." {
		t.Errorf("authored summary not returned verbatim: %q", entry.Summary)
	}
	if len(entry.BulletPoints) != 3 {
		t.Errorf("expected 3 authored bullet points, got %d", len(entry.BulletPoints))
	}
	if entry.BulletPoints[0] != "Complete errands; resolve lingering tasks." {
		t.Errorf("authored bullet points not returned verbatim: %q", entry.BulletPoints[0])
	}
}

func TestGetUnauthoredDayUsesTemplate(t *testing.T) {
	entry := Get(15, "en")

	if entry.Title != "Lunar Day 15" {
		t.Errorf("template title = %q, want %q", entry.Title, "Lunar Day 15")
	}
	if !strings.Contains(entry.Summary, "15") {
		t.Errorf("template summary should contain the day number: %q", entry.Summary)
	}
	if strings.Contains(entry.Summary, "{day}") {
		t.Errorf("placeholder marker left unsubstituted: %q", entry.Summary)
	}
	for _, point := range entry.BulletPoints {
		if strings.Contains(point, "{day}") {
			t.Errorf("placeholder marker left in bullet point: %q", point)
		}
	}
	for key, text := range entry.Sections {
		if strings.Contains(text, "{day}") {
			t.Errorf("placeholder marker left in section %q: %q", key, text)
		}
	}
}

func TestSectionsMergeKeyWise(t *testing.T) {
	// Day 1 authors symbol/stone/color; the template fills the rest.
	entry := Get(1, "en")

	if entry.Sections["symbol"] != "A lamp or a lantern: the first spark of the cycle." {
		t.Errorf("authored section should win: %q", entry.Sections["symbol"])
	}
	if entry.Sections["health"] == "" {
		t.Error("template should fill sections the author omitted")
	}
	if strings.Contains(entry.Sections["health"], "{day}") {
		t.Errorf("template-filled section not substituted: %q", entry.Sections["health"])
	}

	for _, key := range SectionKeys {
		if _, ok := entry.Sections[key]; !ok {
			t.Errorf("merged entry missing section %q", key)
		}
	}
}

func TestAuthoredListsReplaceWholesale(t *testing.T) {
	entry := Get(2, "en")

	// The authored entry has its own three notes; none of the template
	// notes may leak through.
	if len(entry.Notes) != 3 {
		t.Fatalf("expected 3 authored notes, got %d", len(entry.Notes))
	}
	for _, note := range entry.Notes {
		if strings.Contains(note, "no dedicated commentary") {
			t.Errorf("template note leaked into authored entry: %q", note)
		}
	}
}

func TestAll(t *testing.T) {
	entries := All("en")

	if len(entries) != 30 {
		t.Fatalf("expected 30 entries, got %d", len(entries))
	}
	for i, entry := range entries {
		if entry.Day != i+1 {
			t.Errorf("entry %d has day %d, want %d", i, entry.Day, i+1)
		}
	}
	if entries[0].Title != "Day 1 · Plant the Seed" {
		t.Errorf("All should include authored entries: %q", entries[0].Title)
	}
	if entries[14].Title != "Lunar Day 15" {
		t.Errorf("All should include synthesized entries: %q", entries[14].Title)
	}
}

func TestUnknownLanguageFallsBackToEnglish(t *testing.T) {
	unknown := Get(3, "de")
	english := Get(3, "en")

	if unknown.Title != english.Title {
		t.Errorf("unknown language should use the English catalog: %q vs %q", unknown.Title, english.Title)
	}
}

func TestRussianCatalog(t *testing.T) {
	entry := Get(1, "ru")
	if entry.Title != "День 1 · Посев Семени" {
		t.Errorf("unexpected Russian authored title: %q", entry.Title)
	}

	synthesized := Get(22, "ru")
	if synthesized.Title != "Лунный день 22" {
		t.Errorf("unexpected Russian template title: %q", synthesized.Title)
	}
}

func TestGetDoesNotShareState(t *testing.T) {
	first := Get(15, "en")
	first.Sections["health"] = "mutated"
	first.BulletPoints[0] = "mutated"

	second := Get(15, "en")
	if second.Sections["health"] == "mutated" {
		t.Error("entries must not share section maps")
	}
	if second.BulletPoints[0] == "mutated" {
		t.Error("entries must not share bullet point slices")
	}
}
