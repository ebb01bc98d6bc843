package swiss

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

var testDate = time.Date(2024, time.June, 10, 0, 0, 0, 0, time.UTC)

func TestCalculate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if got := r.Header.Get("Content-Type"); got != "application/json" {
			t.Errorf("Content-Type = %q, want application/json", got)
		}

		var req CalculateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("failed to decode request: %v", err)
		}
		if req.Latitude != 55.7558 || req.Longitude != 37.6173 {
			t.Errorf("unexpected coordinates: %f, %f", req.Latitude, req.Longitude)
		}
		if len(req.Objects) != 2 || req.Objects[0] != "moon" || req.Objects[1] != "sun" {
			t.Errorf("unexpected objects: %v", req.Objects)
		}
		if len(req.Calculations) != 3 {
			t.Errorf("unexpected calculations: %v", req.Calculations)
		}

		w.Write([]byte(`{
			"moon": {"rise": "06:10", "set": "22:40", "lunarDay": 21, "sign": "Capricorn"},
			"sun": {"rise": "04:50", "set": "21:05"}
		}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	resp, err := client.Calculate(context.Background(), testDate, 55.7558, 37.6173)
	if err != nil {
		t.Fatalf("Calculate returned error: %v", err)
	}

	if resp.Moon == nil || resp.Sun == nil {
		t.Fatalf("expected moon and sun data, got %+v", resp)
	}
	if resp.Moon.Rise != "06:10" || resp.Moon.Set != "22:40" {
		t.Errorf("unexpected moon times: %+v", resp.Moon)
	}
	if resp.Moon.LunarDay == nil || *resp.Moon.LunarDay != 21 {
		t.Errorf("unexpected lunar day: %+v", resp.Moon.LunarDay)
	}
	if resp.Moon.Sign != "Capricorn" {
		t.Errorf("unexpected sign: %q", resp.Moon.Sign)
	}
	if resp.Sun.Rise != "04:50" {
		t.Errorf("unexpected sunrise: %q", resp.Sun.Rise)
	}
}

func TestCalculateOmittedFields(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"sun": {"rise": "04:50", "set": "21:05"}}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	resp, err := client.Calculate(context.Background(), testDate, 55.7558, 37.6173)
	if err != nil {
		t.Fatalf("Calculate returned error: %v", err)
	}

	if resp.Moon != nil {
		t.Errorf("expected nil moon data, got %+v", resp.Moon)
	}
}

func TestCalculateAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad request", http.StatusBadRequest)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	_, err := client.Calculate(context.Background(), testDate, 55.7558, 37.6173)

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %v", err)
	}
	if apiErr.StatusCode != http.StatusBadRequest {
		t.Errorf("StatusCode = %d, want %d", apiErr.StatusCode, http.StatusBadRequest)
	}
}

func TestCalculateNetworkError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := NewClient(server.URL)
	_, err := client.Calculate(context.Background(), testDate, 55.7558, 37.6173)

	var netErr *NetworkError
	if !errors.As(err, &netErr) {
		t.Fatalf("expected *NetworkError, got %v", err)
	}
}
