// Package classify maps numeric readings and sky conditions to display
// categories. Bands are closed on the upper bound and do not overlap.
package classify

import "weather-dashboard/internal/models"

type Kind string

const (
	KindHumidity Kind = "humidity"
	KindUV       Kind = "uv"
	KindAQI      Kind = "aqi"
)

type Category struct {
	Label string `json:"label"`
	Icon  string `json:"icon"`
}

const (
	Low           = "Low"
	Medium        = "Medium"
	High          = "High"
	VeryHigh      = "Very High"
	Good          = "Good"
	Moderate      = "Moderate"
	Unhealthy     = "Unhealthy"
	VeryUnhealthy = "Very Unhealthy"
	Hazardous     = "Hazardous"
)

var humidityIcons = map[string]string{
	Low:    "humidity_low",
	Medium: "humidity_medium",
	High:   "humidity_high",
}

var uvIcons = map[string]string{
	Low:      "uv_low",
	Medium:   "uv_moderate",
	High:     "uv_high",
	VeryHigh: "uv_very_high",
}

var aqiIcons = map[string]string{
	Good:          "aqi_good",
	Moderate:      "aqi_moderate",
	Unhealthy:     "aqi_unhealthy",
	VeryUnhealthy: "aqi_very_unhealthy",
	Hazardous:     "aqi_hazardous",
}

var skyIcons = map[string]string{
	"Clear":  "clear",
	"Clouds": "cloud",
	"Rain":   "rain",
	"Snow":   "snow",
}

// Icons lists every icon key the classifier can return.
func Icons() []string {
	var keys []string
	for _, table := range []map[string]string{humidityIcons, uvIcons, aqiIcons, skyIcons} {
		for _, icon := range table {
			keys = append(keys, icon)
		}
	}
	return keys
}

// Classify dispatches on kind. Only an unknown kind fails.
func Classify(kind Kind, value float64) (Category, error) {
	switch kind {
	case KindHumidity:
		return Humidity(value), nil
	case KindUV:
		return UV(value), nil
	case KindAQI:
		return AQI(int(value)), nil
	}
	return Category{}, &models.LookupError{Table: "category kind", Key: string(kind)}
}

func Humidity(h float64) Category {
	var label string
	switch {
	case h <= 30:
		label = Low
	case h <= 60:
		label = Medium
	default:
		label = High
	}
	return Category{Label: label, Icon: humidityIcons[label]}
}

func UV(index float64) Category {
	var label string
	switch {
	case index <= 2:
		label = Low
	case index <= 5:
		label = Medium
	case index <= 7:
		label = High
	default:
		label = VeryHigh
	}
	return Category{Label: label, Icon: uvIcons[label]}
}

// AQI maps 1-4 to their bands. Everything else, including the missing-value
// 0, falls into Hazardous.
func AQI(index int) Category {
	var label string
	switch index {
	case 1:
		label = Good
	case 2:
		label = Moderate
	case 3:
		label = Unhealthy
	case 4:
		label = VeryUnhealthy
	default:
		label = Hazardous
	}
	return Category{Label: label, Icon: aqiIcons[label]}
}

// Sky has no fallback icon: conditions other than Clear, Clouds, Rain and
// Snow are a LookupError.
func Sky(condition string) (Category, error) {
	icon, ok := skyIcons[condition]
	if !ok {
		return Category{}, &models.LookupError{Table: "sky condition", Key: condition}
	}
	return Category{Label: condition, Icon: icon}, nil
}
