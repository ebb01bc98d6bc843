package ephemeris

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/lunarportal/almanac/lunar"
	"github.com/lunarportal/almanac/swiss"
	"github.com/lunarportal/almanac/usno"
)

// Source is a single ephemeris data source. Fetch returns the normalized
// record, or an error to make the provider fall through to the next source.
type Source interface {
	Name() string
	Fetch(ctx context.Context, date time.Time, loc lunar.Location) (*AlmanacRecord, error)
}

// Options configures which sources the provider builds and in what shape.
type Options struct {
	// CustomURL is an optional operator-run endpoint speaking the
	// AlmanacRecord shape directly. Tried first when set.
	CustomURL string

	// USNOURL overrides the public rise/set endpoint. Empty keeps the
	// default.
	USNOURL string

	// SwissURL is an optional Swiss-ephemeris-style endpoint. Skipped when
	// empty.
	SwissURL string

	// UseLocalAstronomy inserts an observational suncalc source before the
	// arithmetic fallback.
	UseLocalAstronomy bool

	// UseFallback keeps the deterministic arithmetic source at the end of
	// the chain. Disabling it makes exhaustion an error.
	UseFallback bool

	// HTTPClient is shared by all outbound sources. A nil client gets a
	// 30-second-timeout default.
	HTTPClient *http.Client
}

// Provider walks an ordered list of sources and returns the first record
// produced. One pass per request, each source attempted once, no retries.
type Provider struct {
	sources []Source
	logger  *log.Logger
}

// NewProvider builds the source chain for the given options: custom
// endpoint, USNO, swiss endpoint, optional local astronomy, arithmetic
// fallback.
func NewProvider(opts Options, logger *log.Logger) *Provider {
	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}

	var sources []Source

	if opts.CustomURL != "" {
		sources = append(sources, &customSource{url: opts.CustomURL, httpClient: httpClient})
	}

	usnoClient := usno.NewClientWithHTTPClient(httpClient)
	if opts.USNOURL != "" {
		usnoClient.SetBaseURL(opts.USNOURL)
	}
	sources = append(sources, &usnoSource{client: usnoClient})

	if opts.SwissURL != "" {
		sources = append(sources, &swissSource{client: swiss.NewClientWithHTTPClient(httpClient, opts.SwissURL)})
	}

	if opts.UseLocalAstronomy {
		sources = append(sources, &localSource{})
	}

	if opts.UseFallback {
		sources = append(sources, &fallbackSource{})
	}

	return &Provider{sources: sources, logger: logger}
}

// NewProviderWithSources builds a provider over an explicit chain (useful
// for testing the orchestration separately from the sources).
func NewProviderWithSources(sources []Source, logger *log.Logger) *Provider {
	return &Provider{sources: sources, logger: logger}
}

// Get returns the almanac record for the date and location from the first
// source that succeeds. Source failures are logged and swallowed; only
// exhaustion of the whole chain surfaces as an error.
func (p *Provider) Get(ctx context.Context, date time.Time, loc lunar.Location) (*AlmanacRecord, error) {
	for _, src := range p.sources {
		record, err := src.Fetch(ctx, date, loc)
		if err != nil {
			if p.logger != nil {
				p.logger.Printf("source %s unavailable: %v", src.Name(), err)
			}
			continue
		}
		if record.Source == "" {
			record.Source = src.Name()
		}
		return record, nil
	}
	return nil, fmt.Errorf("%w: %d sources attempted", ErrNoSource, len(p.sources))
}
