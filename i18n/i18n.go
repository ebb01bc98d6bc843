// Package i18n loads the embedded locale bundles and resolves requested
// language tags to a supported bundle. Bundles are validated at load so a
// missing key is a startup error instead of a silently echoed key path.
package i18n

import (
	"embed"
	"encoding/json"
	"fmt"

	"golang.org/x/text/language"
)

//go:embed locales/*.json
var localeFS embed.FS

// supported lists the bundled languages; the first entry is the fallback.
var supported = []language.Tag{
	language.English,
	language.Russian,
}

var matcher = language.NewMatcher(supported)

// Bundle is the typed translation bundle for one language.
type Bundle struct {
	Brand    BrandStrings    `json:"brand"`
	Controls ControlStrings  `json:"controls"`
	Panels   PanelStrings    `json:"panels"`
	Notes    NoteStrings     `json:"notes"`
	Footer   FooterStrings   `json:"footer"`
	Stats    StatStrings     `json:"stats"`
	Calendar CalendarStrings `json:"calendar"`

	// NotesSections labels the catalog section keys in the guidance panel.
	NotesSections map[string]string `json:"notesSections"`

	Loading string `json:"loading"`
	Error   string `json:"error"`
}

// BrandStrings names the dashboard.
type BrandStrings struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
}

// ControlStrings labels the input controls.
type ControlStrings struct {
	DateLabel string `json:"dateLabel"`
	Timezone  string `json:"timezone"`
}

// PanelStrings titles the dashboard panels.
type PanelStrings struct {
	Outlook string `json:"outlook"`
	Glance  string `json:"glance"`
}

// NoteStrings heads the guidance section.
type NoteStrings struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
}

// FooterStrings holds the footer disclaimer.
type FooterStrings struct {
	Disclaimer string `json:"disclaimer"`
}

// StatStrings labels the almanac statistics grid.
type StatStrings struct {
	Moonrise   string `json:"moonrise"`
	Moonset    string `json:"moonset"`
	NewMoon    string `json:"newMoon"`
	FullMoon   string `json:"fullMoon"`
	LunarSign  string `json:"lunarSign"`
	Nakshatra  string `json:"nakshatra"`
	Sunrise    string `json:"sunrise"`
	Sunset     string `json:"sunset"`
	Weekday    string `json:"weekday"`
	RahuKala   string `json:"rahuKala"`
	GulikaKala string `json:"gulikaKala"`
}

// CalendarStrings labels the month grid.
type CalendarStrings struct {
	Today     string   `json:"today"`
	Week      string   `json:"week"`
	Months    []string `json:"months"`
	PrevMonth string   `json:"prevMonth"`
	NextMonth string   `json:"nextMonth"`
}

// Catalog holds every loaded bundle keyed by language code.
type Catalog struct {
	bundles map[string]*Bundle
}

// Load parses and validates all embedded bundles. Any structural problem
// in a bundle is a load error.
func Load() (*Catalog, error) {
	bundles := make(map[string]*Bundle, len(supported))
	for _, tag := range supported {
		code := tag.String()
		data, err := localeFS.ReadFile("locales/" + code + ".json")
		if err != nil {
			return nil, fmt.Errorf("missing locale bundle %s: %w", code, err)
		}

		var bundle Bundle
		if err := json.Unmarshal(data, &bundle); err != nil {
			return nil, fmt.Errorf("failed to parse locale %s: %w", code, err)
		}
		if err := bundle.Validate(); err != nil {
			return nil, fmt.Errorf("invalid locale %s: %w", code, err)
		}
		bundles[code] = &bundle
	}
	return &Catalog{bundles: bundles}, nil
}

// Resolve matches a requested language (any BCP-47 tag, e.g. "ru-RU") to
// the closest supported code. Unknown tags resolve to English.
func (c *Catalog) Resolve(lang string) string {
	tag, _ := language.MatchStrings(matcher, lang)
	base, _ := tag.Base()
	code := base.String()
	if _, ok := c.bundles[code]; !ok {
		return supported[0].String()
	}
	return code
}

// Bundle returns the bundle for a requested language, matching the way
// Resolve does.
func (c *Catalog) Bundle(lang string) *Bundle {
	return c.bundles[c.Resolve(lang)]
}

// Languages returns the supported language codes, fallback first.
func (c *Catalog) Languages() []string {
	codes := make([]string, len(supported))
	for i, tag := range supported {
		codes[i] = tag.String()
	}
	return codes
}

// Validate checks that every key the dashboard reads is present.
func (b *Bundle) Validate() error {
	checks := []struct {
		key   string
		value string
	}{
		{"brand.title", b.Brand.Title},
		{"brand.subtitle", b.Brand.Subtitle},
		{"controls.dateLabel", b.Controls.DateLabel},
		{"controls.timezone", b.Controls.Timezone},
		{"panels.outlook", b.Panels.Outlook},
		{"panels.glance", b.Panels.Glance},
		{"notes.title", b.Notes.Title},
		{"notes.subtitle", b.Notes.Subtitle},
		{"footer.disclaimer", b.Footer.Disclaimer},
		{"stats.moonrise", b.Stats.Moonrise},
		{"stats.moonset", b.Stats.Moonset},
		{"stats.newMoon", b.Stats.NewMoon},
		{"stats.fullMoon", b.Stats.FullMoon},
		{"stats.lunarSign", b.Stats.LunarSign},
		{"stats.nakshatra", b.Stats.Nakshatra},
		{"stats.sunrise", b.Stats.Sunrise},
		{"stats.sunset", b.Stats.Sunset},
		{"stats.weekday", b.Stats.Weekday},
		{"stats.rahuKala", b.Stats.RahuKala},
		{"stats.gulikaKala", b.Stats.GulikaKala},
		{"calendar.today", b.Calendar.Today},
		{"calendar.week", b.Calendar.Week},
		{"loading", b.Loading},
		{"error", b.Error},
	}
	for _, check := range checks {
		if check.value == "" {
			return fmt.Errorf("missing translation key %q", check.key)
		}
	}

	if len(b.Calendar.Months) != 12 {
		return fmt.Errorf("calendar.months must have 12 entries, got %d", len(b.Calendar.Months))
	}

	for _, key := range requiredNoteSections {
		if b.NotesSections[key] == "" {
			return fmt.Errorf("missing translation key %q", "notesSections."+key)
		}
	}
	return nil
}

var requiredNoteSections = []string{
	"health", "business", "relationships", "sleep", "practice",
	"symbol", "stone", "color", "zodiac", "astrologerOpinions",
}
