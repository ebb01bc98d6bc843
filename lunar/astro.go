package lunar

import (
	"math"
	"time"

	"github.com/sixdouglas/suncalc"
)

// SunTimes returns observational sunrise and sunset for the date and
// location. A zero time means the event does not occur (polar day/night).
func SunTimes(date time.Time, loc Location) (sunrise, sunset time.Time) {
	times := suncalc.GetTimes(date, loc.Latitude, loc.Longitude)
	return times["sunrise"].Value, times["sunset"].Value
}

// MoonTimes returns observational moonrise and moonset for the date and
// location. Either value may be zero when the moon stays above or below the
// horizon all day.
func MoonTimes(date time.Time, loc Location) (moonrise, moonset time.Time) {
	times := suncalc.GetMoonTimes(date, loc.Latitude, loc.Longitude, false)
	return times.Rise, times.Set
}

// PhaseDay maps the observational moon phase to a lunar day in [1,30].
// Phase 0 is new moon, 0.5 full moon, approaching 1 the next new moon.
func PhaseDay(date time.Time) int {
	illum := suncalc.GetMoonIllumination(date)
	return clampDay(int(math.Floor(illum.Phase*30)) + 1)
}
