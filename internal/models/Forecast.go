package models

import (
	"fmt"
	"time"
)

// ForecastTimeLayout is the layout of OpenWeather's dt_txt field.
const ForecastTimeLayout = "2006-01-02 15:04:05"

type Coordinate struct {
	Latitude  float64 `json:"latitude" example:"35.6828"`
	Longitude float64 `json:"longitude" example:"139.759"`
}

func (c Coordinate) String() string {
	return fmt.Sprintf("lat: %.4f lon: %.4f", c.Latitude, c.Longitude)
}

// ForecastEntry is one 3-hour forecast slot as returned by the provider.
type ForecastEntry struct {
	Timestamp     time.Time `json:"timestamp"`
	TimestampText string    `json:"dt_txt" example:"2025-08-19 15:00:00"`
	Temperature   float64   `json:"temperature" example:"21.4"`
	Humidity      int       `json:"humidity" example:"64"`
	Sky           string    `json:"sky" example:"Clouds"`
}

type UVSample struct {
	Time  time.Time `json:"time"`
	Index float64   `json:"index" example:"3.15"`
}

// TimeLabel formats the sample time as HH:MM.
func (s UVSample) TimeLabel() string {
	return s.Time.Format("15:04")
}

// AQISample carries the provider's 1-5 index; 0 means the field was missing.
type AQISample struct {
	Time  time.Time `json:"time"`
	Index int       `json:"index" example:"2"`
}

// UVResult never surfaces its error to callers of the dashboard; a nil or
// empty Samples means "unavailable". Err is kept for logging and tests.
type UVResult struct {
	Samples []UVSample
	Err     error
}

func (r UVResult) Available() bool {
	return len(r.Samples) > 0
}

// AQIResult is empty on any failure. Err is kept for logging and tests.
type AQIResult struct {
	Samples []AQISample
	Err     error
}

// Indices returns the AQI values in provider order.
func (r AQIResult) Indices() []int {
	indices := make([]int, len(r.Samples))
	for i, s := range r.Samples {
		indices[i] = s.Index
	}
	return indices
}
