// Package catalog serves per-language guidance content for each of the 30
// lunar days. Days without authored content are synthesized from a
// language template; authored entries override the template field by
// field.
package catalog

import (
	"strconv"
	"strings"
)

// Entry is the guidance record for one lunar day.
type Entry struct {
	Day          int               `json:"day"`
	Title        string            `json:"title"`
	Summary      string            `json:"summary"`
	BulletPoints []string          `json:"bulletPoints"`
	Notes        []string          `json:"notes"`
	Sections     map[string]string `json:"sections"`
}

// template is the per-language placeholder shape. Every string may contain
// the {day} marker.
type template struct {
	Title        string
	Summary      string
	BulletPoints []string
	Notes        []string
	Sections     map[string]string
}

// SectionKeys lists the thematic sub-topics every full entry carries.
var SectionKeys = []string{
	"health", "business", "relationships", "sleep", "practice",
	"symbol", "stone", "color", "zodiac", "astrologerOpinions",
}

// Get returns the entry for a lunar day in the given language. The day is
// clamped to [1,30]; unknown languages fall back to English.
func Get(day int, lang string) Entry {
	day = clampDay(day)

	tpl, ok := templates[lang]
	if !ok {
		tpl = templates["en"]
	}
	entry := instantiate(tpl, day)

	authoredSet, ok := authored[lang]
	if !ok {
		authoredSet = authored["en"]
	}
	if override, ok := authoredSet[day]; ok {
		merge(&entry, override)
	}
	return entry
}

// All returns the 30 entries for a language, days 1..30 in order.
func All(lang string) []Entry {
	entries := make([]Entry, 0, 30)
	for day := 1; day <= 30; day++ {
		entries = append(entries, Get(day, lang))
	}
	return entries
}

// instantiate substitutes {day} into every string leaf of the template.
func instantiate(tpl template, day int) Entry {
	entry := Entry{
		Day:          day,
		Title:        substitute(tpl.Title, day),
		Summary:      substitute(tpl.Summary, day),
		BulletPoints: make([]string, len(tpl.BulletPoints)),
		Notes:        make([]string, len(tpl.Notes)),
		Sections:     make(map[string]string, len(tpl.Sections)),
	}
	for i, point := range tpl.BulletPoints {
		entry.BulletPoints[i] = substitute(point, day)
	}
	for i, note := range tpl.Notes {
		entry.Notes[i] = substitute(note, day)
	}
	for key, text := range tpl.Sections {
		entry.Sections[key] = substitute(text, day)
	}
	return entry
}

// merge lays an authored entry over a placeholder. Scalars win only when
// non-empty, lists replace wholesale only when non-empty, and sections
// merge key-wise with the authored value winning.
func merge(entry *Entry, override Entry) {
	if override.Title != "" {
		entry.Title = override.Title
	}
	if override.Summary != "" {
		entry.Summary = override.Summary
	}
	if len(override.BulletPoints) > 0 {
		entry.BulletPoints = append([]string(nil), override.BulletPoints...)
	}
	if len(override.Notes) > 0 {
		entry.Notes = append([]string(nil), override.Notes...)
	}
	for key, text := range override.Sections {
		entry.Sections[key] = text
	}
}

func substitute(s string, day int) string {
	return strings.ReplaceAll(s, "{day}", strconv.Itoa(day))
}

func clampDay(day int) int {
	if day < 1 {
		return 1
	}
	if day > 30 {
		return 30
	}
	return day
}
