package swiss

// CalculateRequest is the POST body sent to the calculation endpoint.
type CalculateRequest struct {
	Date         string   `json:"date"`
	Latitude     float64  `json:"latitude"`
	Longitude    float64  `json:"longitude"`
	Objects      []string `json:"objects"`
	Calculations []string `json:"calculations"`
}

// CalculateResponse is the calculation payload. Optional fields are
// pointers; absent values mean the provider did not compute them.
type CalculateResponse struct {
	Moon *MoonData `json:"moon,omitempty"`
	Sun  *SunData  `json:"sun,omitempty"`
}

// MoonData holds the moon-related results.
type MoonData struct {
	Rise         string  `json:"rise,omitempty"`
	Set          string  `json:"set,omitempty"`
	LunarDay     *int    `json:"lunarDay,omitempty"`
	Sign         string  `json:"sign,omitempty"`
	Nakshatra    string  `json:"nakshatra,omitempty"`
	NextNewMoon  string  `json:"nextNewMoon,omitempty"`
	NextFullMoon string  `json:"nextFullMoon,omitempty"`
	Phase        float64 `json:"phase,omitempty"`
}

// SunData holds the sun-related results.
type SunData struct {
	Rise string `json:"rise,omitempty"`
	Set  string `json:"set,omitempty"`
}
