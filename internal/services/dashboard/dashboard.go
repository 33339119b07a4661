package dashboard

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/pkg/errors"

	"weather-dashboard/internal/classify"
	"weather-dashboard/internal/grouping"
	"weather-dashboard/internal/models"
	"weather-dashboard/internal/repositories"
	"weather-dashboard/pkg/observe"
)

const (
	MinDays = 1
	MaxDays = 5

	noUVData  = "No UV data available for this location."
	noAQIData = "No air quality data available for this location."
	uvBanner  = "UV index for the next hours."
)

type Request struct {
	Place     string
	Days      int
	View      models.View
	RequestID string
}

// DashboardService turns one request into a rendered dashboard. It keeps no
// state between calls.
type DashboardService struct {
	forecast repositories.ForecastFetcher
	uv       repositories.UVFetcher
	aqi      repositories.AQIFetcher
	l        *observe.Logger
}

func NewDashboardService(repos *repositories.Repositories, l *observe.Logger) *DashboardService {
	return &DashboardService{
		forecast: repos.Forecast,
		uv:       repos.UV,
		aqi:      repos.AQI,
		l:        l,
	}
}

type fetched struct {
	forecast    []models.ForecastEntry
	forecastErr error
	uv          models.UVResult
	aqi         models.AQIResult
}

// Build always fetches the forecast and fails if it fails, whatever the view.
// UV and AQI are fetched alongside it only for their own views; their
// failures degrade to a warning instead of an error.
func (s *DashboardService) Build(ctx context.Context, req Request) (*models.Dashboard, error) {
	fields := map[string]any{
		"place":      req.Place,
		"days":       req.Days,
		"view":       req.View,
		"request_id": req.RequestID,
	}
	s.l.Info("building dashboard", fields)

	data := s.fetch(ctx, req)
	if data.forecastErr != nil {
		s.l.Error(data.forecastErr, fields)
		return nil, errors.Wrap(data.forecastErr, "fetch forecast")
	}

	d := &models.Dashboard{
		Place: req.Place,
		Days:  req.Days,
		View:  req.View,
		Title: fmt.Sprintf("%s for the next %d days in %s", req.View, req.Days, req.Place),
	}

	var err error
	switch req.View {
	case models.ViewTemperature:
		temperature(d, data.forecast)
	case models.ViewSky:
		err = sky(d, data.forecast)
	case models.ViewHumidity:
		humidity(d, data.forecast)
	case models.ViewUV:
		uv(d, data.uv)
	case models.ViewAirQuality:
		airQuality(d, data.forecast, data.aqi)
	default:
		err = &models.LookupError{Table: "view", Key: string(req.View)}
	}
	if err != nil {
		s.l.Error(err, fields)
		return nil, errors.Wrap(err, "render dashboard")
	}

	s.l.Info("dashboard built", map[string]any{
		"request_id": req.RequestID,
		"groups":     len(d.Groups),
		"strip":      len(d.Strip),
		"warning":    d.Warning,
	})

	return d, nil
}

func (s *DashboardService) fetch(ctx context.Context, req Request) fetched {
	var data fetched

	wg := sync.WaitGroup{}

	wg.Add(1)
	go func() {
		defer wg.Done()
		data.forecast, data.forecastErr = s.forecast.FetchForecast(ctx, req.Place, req.Days)
	}()

	switch req.View {
	case models.ViewUV:
		wg.Add(1)
		go func() {
			defer wg.Done()
			data.uv = s.uv.FetchUV(ctx, req.Place)
		}()
	case models.ViewAirQuality:
		wg.Add(1)
		go func() {
			defer wg.Done()
			data.aqi = s.aqi.FetchAQI(ctx, req.Place)
		}()
	}

	wg.Wait()

	if data.uv.Err != nil || data.aqi.Err != nil {
		s.l.Warning("optional data unavailable", map[string]any{
			"request_id": req.RequestID,
			"uv_err":     errString(data.uv.Err),
			"aqi_err":    errString(data.aqi.Err),
		})
	}

	return data
}

func temperature(d *models.Dashboard, entries []models.ForecastEntry) {
	for _, e := range entries {
		d.Series = append(d.Series, models.Point{Time: e.TimestampText, Temperature: e.Temperature})
	}

	d.Groups = byDay(entries, grouping.DayLabel, func(e models.ForecastEntry, at string) models.Slot {
		return models.Slot{
			Time:    at,
			Caption: fmt.Sprintf("%s (%.1f°C)", at, e.Temperature),
			Icon:    "temperature",
			Value:   e.Temperature,
		}
	})
}

// sky classifies every entry before grouping, so one unmapped condition
// fails the whole view.
func sky(d *models.Dashboard, entries []models.ForecastEntry) error {
	categories := make(map[string]classify.Category, len(entries))
	for _, e := range entries {
		c, err := classify.Sky(e.Sky)
		if err != nil {
			return err
		}
		categories[e.Sky] = c
	}

	d.Groups = byDay(entries, grouping.DayLabel, func(e models.ForecastEntry, at string) models.Slot {
		c := categories[e.Sky]
		return models.Slot{
			Time:     at,
			Caption:  at,
			Category: c.Label,
			Icon:     c.Icon,
		}
	})
	return nil
}

func humidity(d *models.Dashboard, entries []models.ForecastEntry) {
	d.Groups = byDay(entries, grouping.DayLabel, func(e models.ForecastEntry, at string) models.Slot {
		c := classify.Humidity(float64(e.Humidity))
		return models.Slot{
			Time:     at,
			Caption:  fmt.Sprintf("%s (%d%%)", at, e.Humidity),
			Category: c.Label,
			Icon:     c.Icon,
			Value:    float64(e.Humidity),
		}
	})
}

func uv(d *models.Dashboard, result models.UVResult) {
	if !result.Available() {
		d.Warning = noUVData
		return
	}

	d.Notice = uvBanner
	for _, s := range result.Samples {
		c := classify.UV(s.Index)
		at := s.TimeLabel()
		d.Strip = append(d.Strip, models.Slot{
			Time:     at,
			Caption:  fmt.Sprintf("%s (UV %.1f - %s)", at, s.Index, c.Label),
			Category: c.Label,
			Icon:     c.Icon,
			Value:    s.Index,
		})
	}
}

// airQuality pairs each forecast slot with the AQI sample at the same
// instant. Slots with no sample keep index 0 and are marked unpaired.
func airQuality(d *models.Dashboard, entries []models.ForecastEntry, result models.AQIResult) {
	if len(result.Samples) == 0 {
		d.Warning = noAQIData
		return
	}

	byInstant := make(map[int64]models.AQISample, len(result.Samples))
	for _, s := range result.Samples {
		byInstant[s.Time.Unix()] = s
	}

	d.Groups = byDay(entries, grouping.DayLabelWithYear, func(e models.ForecastEntry, at string) models.Slot {
		sample, ok := byInstant[e.Timestamp.Unix()]
		c := classify.AQI(sample.Index)
		return models.Slot{
			Time:     at,
			Caption:  fmt.Sprintf("%s (%s)", at, c.Label),
			Category: c.Label,
			Icon:     c.Icon,
			Value:    float64(sample.Index),
			Paired:   &ok,
		}
	})
}

func byDay(
	entries []models.ForecastEntry,
	dayLabel func(time.Time) string,
	slot func(e models.ForecastEntry, at string) models.Slot,
) []models.DayGroup {
	groups := grouping.ByDay(entries,
		func(e models.ForecastEntry) string { return dayLabel(e.Timestamp) },
		func(e models.ForecastEntry) string { return grouping.TimeLabel(e.Timestamp) },
	)

	out := make([]models.DayGroup, 0, groups.Len())
	for _, g := range groups.All() {
		row := models.DayGroup{Day: g.Day, Slots: make([]models.Slot, 0, len(g.Slots))}
		for _, s := range g.Slots {
			row.Slots = append(row.Slots, slot(s.Item, s.Time))
		}
		out = append(out, row)
	}
	return out
}

func errString(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
