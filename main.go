// Package main provides the Lunar Almanac Portal entry point and CLI
// interface.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lunarportal/almanac/ephemeris"
	"github.com/lunarportal/almanac/i18n"
	"github.com/lunarportal/almanac/lunar"
	"github.com/lunarportal/almanac/portal"
)

func main() {
	var (
		configFile = flag.String("config", "config.json", "Configuration file path")
		dateArg    = flag.String("date", "", "Print the almanac for a date (YYYY-MM-DD) and exit")
		help       = flag.Bool("help", false, "Show help message")
	)
	flag.Parse()

	if *help {
		showHelp()
		return
	}

	config, err := loadConfig(*configFile)
	if err != nil {
		fmt.Println("Error loading configuration:", err)
		return
	}

	logger := log.New(os.Stdout, "[PORTAL] ", log.LstdFlags)

	locales, err := i18n.Load()
	if err != nil {
		fmt.Println("Error loading locale bundles:", err)
		return
	}

	provider := ephemeris.NewProvider(ephemeris.Options{
		CustomURL:         config.CustomAPIURL,
		USNOURL:           config.USNOURL,
		SwissURL:          config.SwissEphemerisURL,
		UseLocalAstronomy: config.UseLocalAstronomy,
		UseFallback:       config.UseFallback,
	}, logger)

	if *dateArg != "" {
		runOneShot(provider, config, *dateArg)
		return
	}

	server := portal.NewServer(config, provider, locales, logger)
	if err := server.Start(); err != nil {
		fmt.Println("Error starting server:", err)
		return
	}
	logger.Printf("Almanac portal listening on :%d. Press Ctrl+C to stop...", config.Port)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan
	logger.Printf("Shutdown signal received, stopping server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Stop(ctx); err != nil {
		logger.Printf("Shutdown error: %v", err)
	}
	logger.Printf("Server stopped successfully")
}

// loadConfig reads the config file, falling back to defaults when the
// default file is simply absent.
func loadConfig(filename string) (*portal.Config, error) {
	config, err := portal.LoadConfig(filename)
	if err != nil && errors.Is(err, fs.ErrNotExist) && filename == "config.json" {
		return portal.DefaultConfig(), nil
	}
	return config, err
}

// runOneShot fetches one almanac record and prints it as a table.
func runOneShot(provider *ephemeris.Provider, config *portal.Config, dateArg string) {
	date, err := time.ParseInLocation("2006-01-02", dateArg, time.Local)
	if err != nil {
		fmt.Println("Invalid date:", err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), config.APITimeout)
	defer cancel()

	loc := lunar.Location{Latitude: config.Latitude, Longitude: config.Longitude}
	record, err := provider.Get(ctx, date, loc)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}

	fmt.Printf("Almanac for %s (%.4f, %.4f)\n\n", date.Format("Monday, January 2 2006"), loc.Latitude, loc.Longitude)
	rows := []struct{ label, value string }{
		{"Lunar day", fmt.Sprintf("%d", record.LunarDay)},
		{"Lunar sign", record.LunarSign},
		{"Nakshatra", record.Nakshatra},
		{"Sunrise", record.Sunrise},
		{"Sunset", record.Sunset},
		{"Moonrise", record.Moonrise},
		{"Moonset", record.Moonset},
		{"New moon", record.NewMoon},
		{"Full moon", record.FullMoon},
		{"Rahu Kala", record.RahuKala},
		{"Gulika Kala", record.GulikaKala},
		{"Source", record.Source},
	}
	for _, row := range rows {
		fmt.Printf("  %-12s %s\n", row.label, row.value)
	}
}

func showHelp() {
	fmt.Println("Lunar Almanac Portal - lunar/solar almanac dashboard and API")
	fmt.Println()
	fmt.Println("DESCRIPTION:")
	fmt.Println("  Serves lunar day, rise/set, and guidance data for a chosen date and")
	fmt.Println("  location. Ephemeris data comes from a prioritized chain of sources")
	fmt.Println("  (custom endpoint, USNO, Swiss ephemeris, local astronomy) with a")
	fmt.Println("  deterministic arithmetic fallback.")
	fmt.Println()
	fmt.Println("USAGE:")
	fmt.Println("  almanac [OPTIONS]")
	fmt.Println()
	fmt.Println("OPTIONS:")
	flag.PrintDefaults()
	fmt.Println()
	fmt.Println("EXAMPLES:")
	fmt.Println("  # Serve with default settings")
	fmt.Println("  almanac")
	fmt.Println()
	fmt.Println("  # Custom configuration")
	fmt.Println("  almanac --config=config.json")
	fmt.Println()
	fmt.Println("  # Print the almanac for one date and exit")
	fmt.Println("  almanac -date 2024-06-10")
}
