package models

import "strings"

type View string

const (
	ViewTemperature View = "Temperature"
	ViewSky         View = "Sky"
	ViewHumidity    View = "Humidity"
	ViewUV          View = "UV"
	ViewAirQuality  View = "Air Quality"
)

// Views lists the selectable views in display order.
var Views = []View{ViewTemperature, ViewSky, ViewHumidity, ViewUV, ViewAirQuality}

// ParseView matches case-insensitively; "air-quality" and "air_quality" are
// accepted for Air Quality.
func ParseView(s string) (View, bool) {
	norm := strings.NewReplacer("-", " ", "_", " ").Replace(strings.TrimSpace(s))
	for _, v := range Views {
		if strings.EqualFold(norm, string(v)) {
			return v, true
		}
	}
	return "", false
}

// Dashboard is the rendered result of one request.
type Dashboard struct {
	Place   string     `json:"place" example:"Tokyo"`
	Days    int        `json:"days" example:"3"`
	View    View       `json:"view" example:"Humidity"`
	Title   string     `json:"title" example:"Humidity for the next 3 days in Tokyo"`
	Notice  string     `json:"notice,omitempty"`
	Warning string     `json:"warning,omitempty"`
	Groups  []DayGroup `json:"groups,omitempty"`
	Strip   []Slot     `json:"strip,omitempty"`
	Series  []Point    `json:"series,omitempty"`
}

// DayGroup is one row of the dashboard: a day label and its time slots.
type DayGroup struct {
	Day   string `json:"day" example:"Tue, Aug 19"`
	Slots []Slot `json:"slots"`
}

type Slot struct {
	Time     string  `json:"time" example:"15:00"`
	Caption  string  `json:"caption" example:"15:00 (64%)"`
	Category string  `json:"category,omitempty" example:"High"`
	Icon     string  `json:"icon" example:"humidity_high"`
	Value    float64 `json:"value" example:"64"`
	// Paired is false for an Air Quality slot with no sample at its timestamp.
	Paired *bool `json:"paired,omitempty"`
}

// Point is one temperature sample for the chart.
type Point struct {
	Time        string  `json:"time" example:"2025-08-19 15:00:00"`
	Temperature float64 `json:"temperature" example:"21.4"`
}
