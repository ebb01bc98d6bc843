package usno

// OneDayResponse is the payload returned by the rstt/oneday endpoint. Sun
// and moon phenomena arrive as ordered lists: index 0 is the rise event,
// index 1 the set event.
type OneDayResponse struct {
	SunData  []PhenomenonTime `json:"sundata"`
	MoonData []PhenomenonTime `json:"moondata"`
}

// PhenomenonTime is a single rise/set event.
type PhenomenonTime struct {
	Phenomenon string `json:"phen"`
	Time       string `json:"time"`
}

// Sunrise returns the sunrise time string, or "" when absent.
func (r *OneDayResponse) Sunrise() string {
	return phenomenonAt(r.SunData, 0)
}

// Sunset returns the sunset time string, or "" when absent.
func (r *OneDayResponse) Sunset() string {
	return phenomenonAt(r.SunData, 1)
}

// Moonrise returns the moonrise time string, or "" when absent.
func (r *OneDayResponse) Moonrise() string {
	return phenomenonAt(r.MoonData, 0)
}

// Moonset returns the moonset time string, or "" when absent.
func (r *OneDayResponse) Moonset() string {
	return phenomenonAt(r.MoonData, 1)
}

func phenomenonAt(events []PhenomenonTime, i int) string {
	if i >= len(events) {
		return ""
	}
	return events[i].Time
}
