// Package ephemeris produces almanac records from a prioritized chain of
// data sources with a deterministic arithmetic fallback.
package ephemeris

import "strings"

// UnknownTime is the sentinel rendered for an absent or unusable clock
// value.
const UnknownTime = "--:--"

// AlmanacRecord is the single normalized shape every source must produce.
// The JSON field names are a wire contract shared with the dashboard.
type AlmanacRecord struct {
	Moonrise   string `json:"moonrise"`
	Moonset    string `json:"moonset"`
	Sunrise    string `json:"sunrise"`
	Sunset     string `json:"sunset"`
	LunarDay   int    `json:"lunarDay"`
	LunarSign  string `json:"lunarSign"`
	Nakshatra  string `json:"nakshatra"`
	NewMoon    string `json:"newMoon"`
	FullMoon   string `json:"fullMoon"`
	RahuKala   string `json:"rahuKala"`
	GulikaKala string `json:"gulikaKala"`

	// Source identifies which provider produced the record. Diagnostics
	// only; downstream logic must not branch on it.
	Source string `json:"source"`
}

// NormalizeClock reduces a provider time string to at most "HH:MM", or the
// unknown sentinel when the value is absent or not clock-shaped.
func NormalizeClock(s string) string {
	if s == "" || !strings.Contains(s, ":") {
		return UnknownTime
	}
	if len(s) > 5 {
		return s[:5]
	}
	return s
}
