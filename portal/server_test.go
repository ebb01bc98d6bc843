package portal

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/lunarportal/almanac/ephemeris"
	"github.com/lunarportal/almanac/i18n"
)

// newTestServer builds a server whose only working ephemeris source is the
// arithmetic fallback: the USNO source points at a dead endpoint.
func newTestServer(t *testing.T, mutate func(*Config)) *Server {
	t.Helper()

	dead := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	dead.Close()

	config := DefaultConfig()
	config.USNOURL = dead.URL
	if mutate != nil {
		mutate(config)
	}

	logger := log.New(io.Discard, "", 0)
	provider := ephemeris.NewProvider(ephemeris.Options{
		CustomURL:   config.CustomAPIURL,
		USNOURL:     config.USNOURL,
		SwissURL:    config.SwissEphemerisURL,
		UseFallback: config.UseFallback,
	}, logger)

	locales, err := i18n.Load()
	if err != nil {
		t.Fatalf("failed to load locales: %v", err)
	}

	return NewServer(config, provider, locales, logger)
}

func postJSON(t *testing.T, handler http.Handler, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	return w
}

func getPath(t *testing.T, handler http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	return w
}

func TestEphemerisEndpoint(t *testing.T) {
	server := newTestServer(t, nil)

	w := postJSON(t, server.Handler(), "/api/ephemeris", `{"date": "2024-06-10"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body: %s", w.Code, w.Body.String())
	}

	var record ephemeris.AlmanacRecord
	if err := json.Unmarshal(w.Body.Bytes(), &record); err != nil {
		t.Fatalf("failed to decode record: %v", err)
	}

	if record.Source != "fallback" {
		t.Errorf("source = %q, want %q", record.Source, "fallback")
	}
	if record.Sunrise != "07:27" || record.Sunset != "16:34" {
		t.Errorf("unexpected fallback times: %+v", record)
	}
	if record.LunarDay < 1 || record.LunarDay > 30 {
		t.Errorf("lunarDay out of range: %d", record.LunarDay)
	}

	// Every wire field must survive the endpoint unchanged.
	var keys map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &keys); err != nil {
		t.Fatalf("failed to decode keys: %v", err)
	}
	for _, key := range []string{
		"moonrise", "moonset", "sunrise", "sunset", "lunarDay", "lunarSign",
		"nakshatra", "newMoon", "fullMoon", "rahuKala", "gulikaKala", "source",
	} {
		if _, ok := keys[key]; !ok {
			t.Errorf("response missing field %q", key)
		}
	}
}

func TestEphemerisEndpointUsesRequestCoordinates(t *testing.T) {
	server := newTestServer(t, nil)

	w := postJSON(t, server.Handler(), "/api/ephemeris",
		`{"date": "2024-06-10T00:00:00Z", "latitude": 59.9139, "longitude": 10.7522}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body: %s", w.Code, w.Body.String())
	}

	var record ephemeris.AlmanacRecord
	if err := json.Unmarshal(w.Body.Bytes(), &record); err != nil {
		t.Fatalf("failed to decode record: %v", err)
	}
	if record.Source != "fallback" {
		t.Errorf("source = %q, want %q", record.Source, "fallback")
	}
}

func TestEphemerisEndpointMissingDate(t *testing.T) {
	server := newTestServer(t, nil)

	w := postJSON(t, server.Handler(), "/api/ephemeris", `{"latitude": 1.0}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}

	var resp map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode error body: %v", err)
	}
	if resp["error"] != "date is required" {
		t.Errorf("error = %q, want %q", resp["error"], "date is required")
	}
}

func TestEphemerisEndpointBadDate(t *testing.T) {
	server := newTestServer(t, nil)

	w := postJSON(t, server.Handler(), "/api/ephemeris", `{"date": "next tuesday"}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestEphemerisEndpointMethodNotAllowed(t *testing.T) {
	server := newTestServer(t, nil)

	w := getPath(t, server.Handler(), "/api/ephemeris")
	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want 405", w.Code)
	}
}

func TestEphemerisEndpointNoSourceAvailable(t *testing.T) {
	server := newTestServer(t, func(c *Config) {
		c.UseFallback = false
	})

	w := postJSON(t, server.Handler(), "/api/ephemeris", `{"date": "2024-06-10"}`)
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", w.Code)
	}

	var resp map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode error body: %v", err)
	}
	if resp["error"] == "" {
		t.Error("error body should carry a message")
	}
}

func TestCatalogEndpointSingleDay(t *testing.T) {
	server := newTestServer(t, nil)

	w := getPath(t, server.Handler(), "/api/catalog?day=15&lang=en")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var entry struct {
		Day   int    `json:"day"`
		Title string `json:"title"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &entry); err != nil {
		t.Fatalf("failed to decode entry: %v", err)
	}
	if entry.Day != 15 || entry.Title != "Lunar Day 15" {
		t.Errorf("unexpected entry: %+v", entry)
	}
}

func TestCatalogEndpointClampsDay(t *testing.T) {
	server := newTestServer(t, nil)

	over := getPath(t, server.Handler(), "/api/catalog?day=31&lang=en")
	expected := getPath(t, server.Handler(), "/api/catalog?day=30&lang=en")
	if over.Body.String() != expected.Body.String() {
		t.Error("day=31 should behave like day=30")
	}
}

func TestCatalogEndpointAllDays(t *testing.T) {
	server := newTestServer(t, nil)

	w := getPath(t, server.Handler(), "/api/catalog?lang=ru")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var entries []struct {
		Day int `json:"day"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &entries); err != nil {
		t.Fatalf("failed to decode entries: %v", err)
	}
	if len(entries) != 30 {
		t.Fatalf("expected 30 entries, got %d", len(entries))
	}
	if entries[0].Day != 1 || entries[29].Day != 30 {
		t.Errorf("entries out of order: first %d, last %d", entries[0].Day, entries[29].Day)
	}
}

func TestCatalogEndpointInvalidDay(t *testing.T) {
	server := newTestServer(t, nil)

	w := getPath(t, server.Handler(), "/api/catalog?day=soon")
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestCalendarEndpoint(t *testing.T) {
	server := newTestServer(t, nil)

	w := getPath(t, server.Handler(), "/api/calendar?year=2021&month=1&lang=en")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var resp CalendarResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode calendar: %v", err)
	}

	if resp.Year != 2021 || resp.Month != 1 {
		t.Errorf("unexpected year/month: %d/%d", resp.Year, resp.Month)
	}
	if resp.MonthName != "January" {
		t.Errorf("month name = %q, want January", resp.MonthName)
	}
	if len(resp.Weekdays) != 7 || resp.Weekdays[0] != "Mon" {
		t.Errorf("unexpected weekday header: %v", resp.Weekdays)
	}
	if len(resp.Weeks) != 5 {
		t.Fatalf("January 2021 should span 5 Monday-first weeks, got %d", len(resp.Weeks))
	}

	// January 2021 starts on a Friday; the grid starts Monday 2020-12-28.
	firstDay := resp.Weeks[0].Days[0]
	if firstDay.Date != "2020-12-28" || firstDay.InMonth {
		t.Errorf("unexpected first grid cell: %+v", firstDay)
	}
	if resp.Weeks[0].ISOWeek != 53 {
		t.Errorf("first row ISO week = %d, want 53", resp.Weeks[0].ISOWeek)
	}
	if resp.Weeks[1].ISOWeek != 1 {
		t.Errorf("second row ISO week = %d, want 1", resp.Weeks[1].ISOWeek)
	}

	lastDay := resp.Weeks[4].Days[6]
	if lastDay.Date != "2021-01-31" || !lastDay.InMonth {
		t.Errorf("unexpected last grid cell: %+v", lastDay)
	}

	for _, week := range resp.Weeks {
		for _, day := range week.Days {
			if day.LunarDay < 1 || day.LunarDay > 30 {
				t.Errorf("cell %s has lunar day %d out of range", day.Date, day.LunarDay)
			}
		}
	}
}

func TestCalendarEndpointRussianLabels(t *testing.T) {
	server := newTestServer(t, nil)

	w := getPath(t, server.Handler(), "/api/calendar?year=2024&month=6&lang=ru")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var resp CalendarResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode calendar: %v", err)
	}
	if resp.MonthName != "Июнь" {
		t.Errorf("month name = %q, want Июнь", resp.MonthName)
	}
	if resp.Weekdays[0] != "Пн" {
		t.Errorf("weekday header = %v, want Russian labels", resp.Weekdays)
	}
}

func TestCalendarEndpointBadMonth(t *testing.T) {
	server := newTestServer(t, nil)

	w := getPath(t, server.Handler(), "/api/calendar?year=2024&month=13")
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestI18nEndpoint(t *testing.T) {
	server := newTestServer(t, nil)

	w := getPath(t, server.Handler(), "/api/i18n/ru")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var bundle i18n.Bundle
	if err := json.Unmarshal(w.Body.Bytes(), &bundle); err != nil {
		t.Fatalf("failed to decode bundle: %v", err)
	}
	if bundle.Brand.Title != "Портал Лунных Дней" {
		t.Errorf("unexpected bundle title: %q", bundle.Brand.Title)
	}

	// Unknown languages serve the English bundle rather than a 404.
	w = getPath(t, server.Handler(), "/api/i18n/de")
	if err := json.Unmarshal(w.Body.Bytes(), &bundle); err != nil {
		t.Fatalf("failed to decode fallback bundle: %v", err)
	}
	if bundle.Brand.Title != "Lunar Day Portal" {
		t.Errorf("unknown language should fall back to English: %q", bundle.Brand.Title)
	}
}

func TestHealthEndpoint(t *testing.T) {
	server := newTestServer(t, nil)

	w := getPath(t, server.Handler(), "/api/health")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	var health HealthResponse
	if err := json.Unmarshal(w.Body.Bytes(), &health); err != nil {
		t.Fatalf("failed to decode health: %v", err)
	}
	if health.Status != "healthy" {
		t.Errorf("status = %q, want healthy", health.Status)
	}
	if !strings.Contains(health.Sources, "fallback") {
		t.Errorf("sources summary should list fallback: %q", health.Sources)
	}
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		input   string
		wantErr bool
	}{
		{"2024-06-10", false},
		{"2024-06-10T12:30:00Z", false},
		{"2024-06-10T12:30:00+03:00", false},
		{"10.06.2024", true},
		{"junk", true},
	}

	for _, tt := range tests {
		_, err := parseDate(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("parseDate(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
		}
	}
}

func TestBuildAlmanacPushGeneration(t *testing.T) {
	server := newTestServer(t, nil)

	message, ok := server.buildAlmanacPush()
	if !ok {
		t.Fatal("expected a push message")
	}

	var push almanacPush
	if err := json.Unmarshal(message, &push); err != nil {
		t.Fatalf("failed to decode push: %v", err)
	}
	if push.Type != "almanac" {
		t.Errorf("push type = %q, want almanac", push.Type)
	}
	if push.Generation != 1 {
		t.Errorf("first push generation = %d, want 1", push.Generation)
	}
	if push.Record == nil || push.Record.Source != "fallback" {
		t.Errorf("unexpected push record: %+v", push.Record)
	}

	message, ok = server.buildAlmanacPush()
	if !ok {
		t.Fatal("expected a second push message")
	}
	if err := json.Unmarshal(message, &push); err != nil {
		t.Fatalf("failed to decode push: %v", err)
	}
	if push.Generation != 2 {
		t.Errorf("second push generation = %d, want 2", push.Generation)
	}
}
