package repositories

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"weather-dashboard/internal/models"
	"weather-dashboard/pkg/observe"
)

const (
	OpenMeteoBaseURL = "https://api.open-meteo.com/v1/forecast"

	// Open-Meteo returns hourly times in GMT unless a timezone is requested.
	openMeteoTimeLayout = "2006-01-02T15:04"

	maxUVSamples = 6
)

type OpenMeteoRepository struct {
	baseURL  string
	geocoder Geocoder
	api      apiClient
	now      func() time.Time
}

func NewOpenMeteoRepository(baseURL string, geocoder Geocoder, l *observe.Logger, httpClient HTTPClient) *OpenMeteoRepository {
	if baseURL == "" {
		baseURL = OpenMeteoBaseURL
	}

	o := &OpenMeteoRepository{
		baseURL:  baseURL,
		geocoder: geocoder,
		now:      time.Now,
	}
	o.api = apiClient{source: o.Name(), httpClient: httpClient, l: l}

	return o
}

func (o *OpenMeteoRepository) Name() string {
	return "open-meteo"
}

type OpenMeteoResponse struct {
	Time    []string  `json:"time"`
	UVIndex []float64 `json:"uv_index"`
}

// FetchUV returns up to six hourly UV samples strictly after now, in
// provider order. Every failure, geocoding included, is reported as an
// unavailable result rather than an error.
func (o *OpenMeteoRepository) FetchUV(ctx context.Context, place string) models.UVResult {
	coord, err := o.geocoder.Resolve(ctx, place)
	if err != nil {
		o.api.l.Warning("error resolving place for UV", map[string]any{"place": place, "err": err.Error()})
		return models.UVResult{Err: err}
	}

	var response struct {
		Hourly OpenMeteoResponse `json:"hourly"`
	}

	err = o.api.getJSON(ctx, o.baseURL, url.Values{
		"latitude":  {formatCoordinate(coord.Latitude)},
		"longitude": {formatCoordinate(coord.Longitude)},
		"hourly":    {"uv_index"},
	}, &response)
	if err != nil {
		o.api.l.Warning("error fetching UV from Open-Meteo", map[string]any{"place": place, "err": err.Error()})
		return models.UVResult{Err: err}
	}

	samples, err := upcomingUV(response.Hourly, o.now().UTC())
	if err != nil {
		o.api.l.Warning("error parsing UV series", map[string]any{"place": place, "err": err.Error()})
		return models.UVResult{Err: o.api.transportError(0, err)}
	}

	o.api.l.Info("parsed API response", map[string]any{
		"hours":    len(response.Hourly.Time),
		"upcoming": len(samples),
	})

	return models.UVResult{Samples: samples}
}

func upcomingUV(hourly OpenMeteoResponse, now time.Time) ([]models.UVSample, error) {
	var samples []models.UVSample

	// Find the minimum length to avoid index out of bounds
	n := min(len(hourly.Time), len(hourly.UVIndex))

	for i := 0; i < n; i++ {
		t, err := time.ParseInLocation(openMeteoTimeLayout, hourly.Time[i], time.UTC)
		if err != nil {
			return nil, fmt.Errorf("failed to parse time %s: %w", hourly.Time[i], err)
		}

		if t.After(now) {
			samples = append(samples, models.UVSample{Time: t, Index: hourly.UVIndex[i]})
		}
		if len(samples) >= maxUVSamples {
			break
		}
	}

	return samples, nil
}
