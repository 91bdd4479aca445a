package domain

import (
	"strconv"
	"strings"
	"time"
)

// LocalTimeLayout is the layout WeatherAPI uses for location.localtime
const LocalTimeLayout = "2006-01-02 15:04"

// Report is the current-conditions payload for one location
type Report struct {
	Location Location   `json:"location"`
	Current  Conditions `json:"current"`

	// Raw holds the undecoded response body, shown in the details pager
	Raw []byte `json:"-"`
}

// Location identifies where the report was taken
type Location struct {
	Name           string  `json:"name"`
	Region         string  `json:"region"`
	Country        string  `json:"country"`
	Lat            float64 `json:"lat"`
	Lon            float64 `json:"lon"`
	TzID           string  `json:"tz_id"`
	LocaltimeEpoch int64   `json:"localtime_epoch"`
	Localtime      string  `json:"localtime"`
}

// Conditions represents the current weather at a location
type Conditions struct {
	LastUpdated string    `json:"last_updated"`
	TempC       float64   `json:"temp_c"`
	TempF       float64   `json:"temp_f"`
	FeelsLikeC  float64   `json:"feelslike_c"`
	Humidity    int       `json:"humidity"`
	WindKph     float64   `json:"wind_kph"`
	WindDir     string    `json:"wind_dir"`
	IsDay       int       `json:"is_day"`
	Condition   Condition `json:"condition"`
}

// Condition is the provider's textual and iconographic description
type Condition struct {
	Text string `json:"text"`
	Icon string `json:"icon"` // protocol-relative URL, e.g. //cdn.weatherapi.com/...
	Code int    `json:"code"`
}

// Title returns "<name> (<country>)"
func (r *Report) Title() string {
	return r.Location.Name + " (" + r.Location.Country + ")"
}

// Temperature returns the Celsius temperature as "<temp_c>°C"
func (r *Report) Temperature() string {
	return strconv.FormatFloat(r.Current.TempC, 'f', -1, 64) + "°C"
}

// LocalTime parses location.localtime. The provider omits the zone, so the
// returned time carries the location's wall clock in UTC.
func (r *Report) LocalTime() (time.Time, error) {
	return time.Parse(LocalTimeLayout, strings.TrimSpace(r.Location.Localtime))
}

// IconURL resolves the protocol-relative icon URL to https
func (r *Report) IconURL() string {
	icon := r.Current.Condition.Icon
	if strings.HasPrefix(icon, "//") {
		return "https:" + icon
	}
	return icon
}
