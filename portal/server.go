package portal

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"

	"github.com/lunarportal/almanac/catalog"
	"github.com/lunarportal/almanac/datemath"
	"github.com/lunarportal/almanac/ephemeris"
	"github.com/lunarportal/almanac/i18n"
	"github.com/lunarportal/almanac/lunar"
)

// Server provides the almanac HTTP API, live websocket updates, and static
// dashboard files.
type Server struct {
	config    *Config
	provider  *ephemeris.Provider
	locales   *i18n.Catalog
	logger    *log.Logger
	server    *http.Server
	startTime time.Time
	upgrader  websocket.Upgrader
	clients   sync.Map
	broadcast chan []byte
	done      chan struct{}

	// generation counts almanac refreshes; a fetch whose generation is no
	// longer current is dropped instead of overwriting newer data.
	generation atomic.Uint64
}

// ephemerisRequest is the body of POST /api/ephemeris.
type ephemerisRequest struct {
	Date      string   `json:"date"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

// errorResponse is the JSON error body.
type errorResponse struct {
	Error string `json:"error"`
}

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status    string   `json:"status"`
	Timestamp string   `json:"timestamp"`
	Uptime    string   `json:"uptime"`
	Sources   string   `json:"sources"`
	Languages []string `json:"languages"`
}

// CalendarResponse is the month grid returned by GET /api/calendar.
type CalendarResponse struct {
	Year      int            `json:"year"`
	Month     int            `json:"month"`
	MonthName string         `json:"monthName"`
	Weekdays  []string       `json:"weekdays"`
	Weeks     []CalendarWeek `json:"weeks"`
}

// CalendarWeek is one grid row.
type CalendarWeek struct {
	ISOWeek int           `json:"isoWeek"`
	Days    []CalendarDay `json:"days"`
}

// CalendarDay is one grid cell.
type CalendarDay struct {
	Date      string `json:"date"`
	Day       int    `json:"day"`
	DayOfYear int    `json:"dayOfYear"`
	LunarDay  int    `json:"lunarDay"`
	InMonth   bool   `json:"inMonth"`
}

// almanacPush is the websocket message wrapping a broadcast record.
type almanacPush struct {
	Type       string                   `json:"type"`
	Generation uint64                   `json:"generation"`
	Date       string                   `json:"date"`
	Record     *ephemeris.AlmanacRecord `json:"record"`
}

// NewServer creates the portal server over a configured provider and
// locale catalog.
func NewServer(config *Config, provider *ephemeris.Provider, locales *i18n.Catalog, logger *log.Logger) *Server {
	mux := http.NewServeMux()
	s := &Server{
		config:    config,
		provider:  provider,
		locales:   locales,
		logger:    logger,
		startTime: time.Now(),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true // The dashboard is served cross-origin in development
			},
		},
		broadcast: make(chan []byte, 256),
		done:      make(chan struct{}),
		server: &http.Server{
			Addr:         fmt.Sprintf(":%d", config.Port),
			Handler:      mux,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 60 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
	}

	mux.HandleFunc("/api/ephemeris", s.ephemerisHandler)
	mux.HandleFunc("/api/catalog", s.catalogHandler)
	mux.HandleFunc("/api/calendar", s.calendarHandler)
	mux.HandleFunc("/api/i18n/", s.i18nHandler)
	mux.HandleFunc("/api/health", s.healthHandler)
	mux.HandleFunc("/api/ws", s.wsHandler)

	// Serve the dashboard assets
	mux.Handle("/", http.FileServer(http.Dir(config.StaticDir)))

	return s
}

// Handler exposes the route table (useful for tests).
func (s *Server) Handler() http.Handler {
	return s.server.Handler
}

// Start starts the web server and the websocket broadcast loops.
func (s *Server) Start() error {
	go s.handleBroadcasts()
	go s.broadcastAlmanac()

	go func() {
		if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			s.logger.Printf("Web server error: %v", err)
		}
	}()

	return nil
}

// Stop gracefully stops the web server and closes all websocket clients.
func (s *Server) Stop(ctx context.Context) error {
	close(s.done)

	s.clients.Range(func(key, value any) bool {
		if conn, ok := key.(*websocket.Conn); ok {
			conn.Close()
		}
		return true
	})

	return s.server.Shutdown(ctx)
}

// ephemerisHandler handles POST /api/ephemeris.
func (s *Server) ephemerisHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req ephemerisRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON body"})
		return
	}

	if req.Date == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "date is required"})
		return
	}

	date, err := parseDate(req.Date)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: fmt.Sprintf("invalid date: %v", err)})
		return
	}

	loc := lunar.Location{Latitude: s.config.Latitude, Longitude: s.config.Longitude}
	if req.Latitude != nil {
		loc.Latitude = *req.Latitude
	}
	if req.Longitude != nil {
		loc.Longitude = *req.Longitude
	}

	ctx, cancel := context.WithTimeout(r.Context(), s.config.APITimeout)
	defer cancel()

	record, err := s.provider.Get(ctx, date, loc)
	if err != nil {
		s.logger.Printf("ephemeris request failed: %v", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, record)
}

// catalogHandler handles GET /api/catalog?lang=&day=. Without a day it
// returns all 30 entries.
func (s *Server) catalogHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	lang := s.locales.Resolve(r.URL.Query().Get("lang"))

	dayParam := r.URL.Query().Get("day")
	if dayParam == "" {
		writeJSON(w, http.StatusOK, catalog.All(lang))
		return
	}

	day, err := strconv.Atoi(dayParam)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: fmt.Sprintf("invalid day: %q", dayParam)})
		return
	}
	writeJSON(w, http.StatusOK, catalog.Get(day, lang))
}

// calendarHandler handles GET /api/calendar?year=&month=&lang=.
func (s *Server) calendarHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	now := time.Now()
	year, err := queryInt(r, "year", now.Year())
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}
	month, err := queryInt(r, "month", int(now.Month()))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}
	if month < 1 || month > 12 {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: fmt.Sprintf("month must be between 1 and 12, got %d", month)})
		return
	}

	lang := s.locales.Resolve(r.URL.Query().Get("lang"))
	bundle := s.locales.Bundle(lang)

	writeJSON(w, http.StatusOK, buildCalendar(year, month, lang, bundle))
}

// i18nHandler serves the locale bundle at /api/i18n/{lang}.
func (s *Server) i18nHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	lang := strings.TrimPrefix(r.URL.Path, "/api/i18n/")
	writeJSON(w, http.StatusOK, s.locales.Bundle(lang))
}

// healthHandler handles the /api/health endpoint.
func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	health := HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Uptime:    time.Since(s.startTime).Round(time.Second).String(),
		Sources:   s.sourceSummary(),
		Languages: s.locales.Languages(),
	}
	writeJSON(w, http.StatusOK, health)
}

// wsHandler upgrades a client and streams almanac pushes to it.
func (s *Server) wsHandler(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Printf("WebSocket upgrade error: %v", err)
		return
	}

	s.clients.Store(conn, true)
	s.logger.Printf("WebSocket client connected. Total clients: %d", s.clientCount())

	// Push current data immediately so the client does not wait a full
	// broadcast interval.
	s.sendAlmanacToClient(conn)

	defer func() {
		s.clients.Delete(conn)
		conn.Close()
		s.logger.Printf("WebSocket client disconnected. Total clients: %d", s.clientCount())
	}()

	// Drain client messages (ping/pong, close).
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				s.logger.Printf("WebSocket error: %v", err)
			}
			break
		}
	}
}

// handleBroadcasts fans queued messages out to all connected clients.
func (s *Server) handleBroadcasts() {
	for {
		select {
		case message := <-s.broadcast:
			s.clients.Range(func(key, value any) bool {
				conn, ok := key.(*websocket.Conn)
				if !ok {
					return true
				}
				if err := conn.WriteMessage(websocket.TextMessage, message); err != nil {
					s.logger.Printf("WebSocket write error: %v", err)
					conn.Close()
					s.clients.Delete(conn)
				}
				return true
			})
		case <-s.done:
			return
		}
	}
}

// broadcastAlmanac periodically refreshes the current date's record and
// queues it for connected clients.
func (s *Server) broadcastAlmanac() {
	ticker := time.NewTicker(s.config.BroadcastInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if s.clientCount() == 0 {
				continue
			}
			if message, ok := s.buildAlmanacPush(); ok {
				select {
				case s.broadcast <- message:
				default:
					// Channel full, drop this update
				}
			}
		case <-s.done:
			return
		}
	}
}

// buildAlmanacPush fetches the current record and wraps it with the
// refresh generation. A fetch that is superseded while in flight is
// discarded so a slow response never overwrites newer data.
func (s *Server) buildAlmanacPush() ([]byte, bool) {
	gen := s.generation.Add(1)

	ctx, cancel := context.WithTimeout(context.Background(), s.config.APITimeout)
	defer cancel()

	now := time.Now()
	loc := lunar.Location{Latitude: s.config.Latitude, Longitude: s.config.Longitude}
	record, err := s.provider.Get(ctx, now, loc)
	if err != nil {
		s.logger.Printf("almanac broadcast skipped: %v", err)
		return nil, false
	}

	if s.generation.Load() != gen {
		return nil, false // A newer refresh started while we were fetching
	}

	message, err := json.Marshal(almanacPush{
		Type:       "almanac",
		Generation: gen,
		Date:       now.Format("2006-01-02"),
		Record:     record,
	})
	if err != nil {
		s.logger.Printf("failed to marshal almanac push: %v", err)
		return nil, false
	}
	return message, true
}

func (s *Server) sendAlmanacToClient(conn *websocket.Conn) {
	if message, ok := s.buildAlmanacPush(); ok {
		if err := conn.WriteMessage(websocket.TextMessage, message); err != nil {
			s.logger.Printf("WebSocket write error: %v", err)
		}
	}
}

func (s *Server) clientCount() int {
	count := 0
	s.clients.Range(func(key, value any) bool {
		count++
		return true
	})
	return count
}

func (s *Server) sourceSummary() string {
	parts := []string{}
	if s.config.CustomAPIURL != "" {
		parts = append(parts, "custom")
	}
	parts = append(parts, "usno")
	if s.config.SwissEphemerisURL != "" {
		parts = append(parts, "swiss")
	}
	if s.config.UseLocalAstronomy {
		parts = append(parts, "local")
	}
	if s.config.UseFallback {
		parts = append(parts, "fallback")
	}
	return strings.Join(parts, ",")
}

// buildCalendar assembles the Monday-first month grid with ISO week
// numbers and estimated lunar days.
func buildCalendar(year, month int, lang string, bundle *i18n.Bundle) CalendarResponse {
	first := datemath.StartOfMonth(time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.Local))

	// Back up to the Monday on or before the first of the month.
	offset := (int(first.Weekday()) + 6) % 7
	cursor := datemath.AddDays(first, -offset)

	resp := CalendarResponse{
		Year:      year,
		Month:     month,
		MonthName: bundle.Calendar.Months[month-1],
		Weekdays:  datemath.WeekdayNames(lang),
	}

	end := datemath.AddMonths(first, 1)
	for cursor.Before(end) {
		week := CalendarWeek{ISOWeek: datemath.ISOWeekNumber(cursor)}
		for i := 0; i < 7; i++ {
			week.Days = append(week.Days, CalendarDay{
				Date:      cursor.Format("2006-01-02"),
				Day:       cursor.Day(),
				DayOfYear: datemath.DayOfYear(cursor),
				LunarDay:  lunar.EstimateLunarDay(cursor, lunar.DefaultLocation),
				InMonth:   cursor.Month() == time.Month(month),
			})
			cursor = datemath.AddDays(cursor, 1)
		}
		resp.Weeks = append(resp.Weeks, week)
	}
	return resp
}

func parseDate(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.ParseInLocation("2006-01-02", value, time.Local)
}

func queryInt(r *http.Request, key string, fallback int) (int, error) {
	value := r.URL.Query().Get(key)
	if value == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %q", key, value)
	}
	return n, nil
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}
