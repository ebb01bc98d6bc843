package ephemeris

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/lunarportal/almanac/lunar"
	"github.com/lunarportal/almanac/swiss"
	"github.com/lunarportal/almanac/usno"
)

// customSource posts the query to an operator-run endpoint that already
// speaks the AlmanacRecord shape. Its response is adopted verbatim.
type customSource struct {
	url        string
	httpClient *http.Client
}

func (s *customSource) Name() string { return "custom" }

func (s *customSource) Fetch(ctx context.Context, date time.Time, loc lunar.Location) (*AlmanacRecord, error) {
	payload, err := json.Marshal(map[string]any{
		"date":      date.Format(time.RFC3339),
		"latitude":  loc.Latitude,
		"longitude": loc.Longitude,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("custom API error %d: %s", resp.StatusCode, string(body))
	}

	var record AlmanacRecord
	if err := json.NewDecoder(resp.Body).Decode(&record); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return &record, nil
}

// usnoSource queries the public naval observatory rise/set endpoint and
// fills the lunar fields arithmetically.
type usnoSource struct {
	client *usno.Client
}

func (s *usnoSource) Name() string { return "usno" }

func (s *usnoSource) Fetch(ctx context.Context, date time.Time, loc lunar.Location) (*AlmanacRecord, error) {
	oneDay, err := s.client.OneDay(ctx, date, loc.Latitude, loc.Longitude)
	if err != nil {
		return nil, err
	}
	if oneDay.Sunrise() == "" && oneDay.Moonrise() == "" {
		return nil, fmt.Errorf("empty payload: no sunrise or moonrise data")
	}

	day := lunar.EstimateLunarDay(date, loc)
	return &AlmanacRecord{
		Moonrise:   NormalizeClock(oneDay.Moonrise()),
		Moonset:    NormalizeClock(oneDay.Moonset()),
		Sunrise:    NormalizeClock(oneDay.Sunrise()),
		Sunset:     NormalizeClock(oneDay.Sunset()),
		LunarDay:   day,
		LunarSign:  lunar.SignFor(day),
		Nakshatra:  lunar.NakshatraFor(day),
		NewMoon:    lunar.NextNewMoon(date),
		FullMoon:   lunar.NextFullMoon(date),
		RahuKala:   lunar.RahuKala(date),
		GulikaKala: lunar.GulikaKala(date),
	}, nil
}

// swissSource queries a Swiss-ephemeris-style endpoint, preferring
// provider-supplied lunar fields over the arithmetic estimate.
type swissSource struct {
	client *swiss.Client
}

func (s *swissSource) Name() string { return "swiss" }

func (s *swissSource) Fetch(ctx context.Context, date time.Time, loc lunar.Location) (*AlmanacRecord, error) {
	result, err := s.client.Calculate(ctx, date, loc.Latitude, loc.Longitude)
	if err != nil {
		return nil, err
	}

	record := &AlmanacRecord{
		Moonrise:   UnknownTime,
		Moonset:    UnknownTime,
		Sunrise:    UnknownTime,
		Sunset:     UnknownTime,
		NewMoon:    lunar.NextNewMoon(date),
		FullMoon:   lunar.NextFullMoon(date),
		RahuKala:   lunar.RahuKala(date),
		GulikaKala: lunar.GulikaKala(date),
	}

	if result.Sun != nil {
		record.Sunrise = NormalizeClock(result.Sun.Rise)
		record.Sunset = NormalizeClock(result.Sun.Set)
	}

	// Defaults below mirror the original dashboard behavior for providers
	// that return rise/set but no lunar metadata.
	record.LunarDay = lunar.EstimateLunarDay(date, loc)
	record.LunarSign = "Scorpio"
	record.Nakshatra = "Anuradha"

	if result.Moon != nil {
		record.Moonrise = NormalizeClock(result.Moon.Rise)
		record.Moonset = NormalizeClock(result.Moon.Set)
		if result.Moon.LunarDay != nil {
			record.LunarDay = *result.Moon.LunarDay
		}
		if result.Moon.Sign != "" {
			record.LunarSign = result.Moon.Sign
		}
		if result.Moon.Nakshatra != "" {
			record.Nakshatra = result.Moon.Nakshatra
		}
		if result.Moon.NextNewMoon != "" {
			record.NewMoon = result.Moon.NextNewMoon
		}
		if result.Moon.NextFullMoon != "" {
			record.FullMoon = result.Moon.NextFullMoon
		}
	}

	return record, nil
}

// localSource computes the record observationally with suncalc. No network;
// it only fails for coordinates where neither sun nor moon events exist.
type localSource struct{}

func (s *localSource) Name() string { return "local" }

func (s *localSource) Fetch(ctx context.Context, date time.Time, loc lunar.Location) (*AlmanacRecord, error) {
	_ = ctx

	sunrise, sunset := lunar.SunTimes(date, loc)
	moonrise, moonset := lunar.MoonTimes(date, loc)
	if sunrise.IsZero() && moonrise.IsZero() {
		return nil, fmt.Errorf("no observable sun or moon events at %.4f,%.4f", loc.Latitude, loc.Longitude)
	}

	day := lunar.PhaseDay(date)
	return &AlmanacRecord{
		Moonrise:   clockOf(moonrise),
		Moonset:    clockOf(moonset),
		Sunrise:    clockOf(sunrise),
		Sunset:     clockOf(sunset),
		LunarDay:   day,
		LunarSign:  lunar.SignFor(day),
		Nakshatra:  lunar.NakshatraFor(day),
		NewMoon:    lunar.NextNewMoon(date),
		FullMoon:   lunar.NextFullMoon(date),
		RahuKala:   lunar.RahuKala(date),
		GulikaKala: lunar.GulikaKala(date),
	}, nil
}

// fallbackSource builds the record purely from the arithmetic estimator
// and fixed default times. It never fails.
type fallbackSource struct{}

func (s *fallbackSource) Name() string { return "fallback" }

func (s *fallbackSource) Fetch(ctx context.Context, date time.Time, loc lunar.Location) (*AlmanacRecord, error) {
	_ = ctx

	day := lunar.EstimateLunarDay(date, loc)
	return &AlmanacRecord{
		Moonrise:   lunar.FallbackMoonrise(date),
		Moonset:    lunar.FallbackMoonset(date),
		Sunrise:    "07:27",
		Sunset:     "16:34",
		LunarDay:   day,
		LunarSign:  lunar.SignFor(day),
		Nakshatra:  lunar.NakshatraFor(day),
		NewMoon:    lunar.NextNewMoon(date),
		FullMoon:   lunar.NextFullMoon(date),
		RahuKala:   lunar.RahuKala(date),
		GulikaKala: lunar.GulikaKala(date),
	}, nil
}

func clockOf(t time.Time) string {
	if t.IsZero() {
		return UnknownTime
	}
	return t.Format("15:04")
}
