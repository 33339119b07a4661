package repositories

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"weather-dashboard/config"
	"weather-dashboard/internal/models"
	"weather-dashboard/pkg/observe"
)

// slotsPerDay is the number of 3-hour forecast slots in a day.
const slotsPerDay = 8

// OpenWeatherRepository talks to the geocoding, 5 day / 3 hour forecast and
// air pollution forecast endpoints, which share one API key.
type OpenWeatherRepository struct {
	apiKey          string
	geoURL          string
	forecastURL     string
	airPollutionURL string
	units           string
	api             apiClient
}

func NewOpenWeatherRepository(cfg config.OpenWeatherConfig, l *observe.Logger, httpClient HTTPClient) (*OpenWeatherRepository, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, errors.New("API key cannot be empty")
	}

	r := &OpenWeatherRepository{
		apiKey:          cfg.APIKey,
		geoURL:          cfg.GeoURL,
		forecastURL:     cfg.ForecastURL,
		airPollutionURL: cfg.AirPollutionURL,
		units:           cfg.Units,
	}
	r.api = apiClient{source: r.Name(), httpClient: httpClient, l: l}

	return r, nil
}

func (r *OpenWeatherRepository) Name() string {
	return "openweather"
}

type GeocodingResponse []struct {
	Name    string  `json:"name"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
	Country string  `json:"country"`
}

// Resolve is not cached; every call hits the network.
func (r *OpenWeatherRepository) Resolve(ctx context.Context, place string) (models.Coordinate, error) {
	var response GeocodingResponse

	err := r.api.getJSON(ctx, r.geoURL, url.Values{
		"q":     {place},
		"limit": {"1"},
		"appid": {r.apiKey},
	}, &response)
	if err != nil {
		r.api.l.Warning("error fetching coordinates", map[string]any{"place": place, "err": err.Error()})
		return models.Coordinate{}, err
	}

	if len(response) == 0 {
		return models.Coordinate{}, &models.NotFoundError{Place: place}
	}

	coord := models.Coordinate{Latitude: response[0].Lat, Longitude: response[0].Lon}

	r.api.l.Debug("resolved place", map[string]any{
		"place":   place,
		"match":   response[0].Name,
		"country": response[0].Country,
		"coord":   coord.String(),
	})

	return coord, nil
}

type ForecastResponse struct {
	List []struct {
		DtTxt string `json:"dt_txt"`
		Main  struct {
			Temp     float64 `json:"temp"`
			Humidity int     `json:"humidity"`
		} `json:"main"`
		Weather []struct {
			Main string `json:"main"`
		} `json:"weather"`
	} `json:"list"`
}

// FetchForecast keeps the first 8*days slots of the provider's window. It
// never pads: a short window is returned as is.
func (r *OpenWeatherRepository) FetchForecast(ctx context.Context, place string, days int) ([]models.ForecastEntry, error) {
	var response ForecastResponse

	params := url.Values{
		"q":     {place},
		"appid": {r.apiKey},
	}
	if r.units != "" {
		params.Set("units", r.units)
	}

	err := r.api.getJSON(ctx, r.forecastURL, params, &response)
	if err != nil {
		var transportErr *models.TransportError
		if errors.As(err, &transportErr) && transportErr.StatusCode == http.StatusNotFound {
			return nil, &models.NotFoundError{Place: place}
		}
		return nil, err
	}

	r.api.l.Info("parsed API response", map[string]any{
		"items": len(response.List),
		"days":  days,
	})

	items := response.List[:min(max(slotsPerDay*days, 0), len(response.List))]

	entries := make([]models.ForecastEntry, 0, len(items))
	for _, item := range items {
		ts, err := time.ParseInLocation(models.ForecastTimeLayout, item.DtTxt, time.UTC)
		if err != nil {
			return nil, r.api.transportError(0, fmt.Errorf("failed to parse dt_txt %s: %w", item.DtTxt, err))
		}

		var sky string
		if len(item.Weather) > 0 {
			sky = item.Weather[0].Main
		}

		entries = append(entries, models.ForecastEntry{
			Timestamp:     ts,
			TimestampText: item.DtTxt,
			Temperature:   item.Main.Temp,
			Humidity:      item.Main.Humidity,
			Sky:           sky,
		})
	}

	return entries, nil
}

type AirPollutionResponse struct {
	List []struct {
		Dt   int64 `json:"dt"`
		Main struct {
			AQI int `json:"aqi"`
		} `json:"main"`
	} `json:"list"`
}

// FetchAQI returns the hourly AQI forecast. Any failure, geocoding included,
// yields an empty result with Err set.
func (r *OpenWeatherRepository) FetchAQI(ctx context.Context, place string) models.AQIResult {
	coord, err := r.Resolve(ctx, place)
	if err != nil {
		return models.AQIResult{Err: err}
	}

	var response AirPollutionResponse

	err = r.api.getJSON(ctx, r.airPollutionURL, url.Values{
		"lat":   {formatCoordinate(coord.Latitude)},
		"lon":   {formatCoordinate(coord.Longitude)},
		"appid": {r.apiKey},
	}, &response)
	if err != nil {
		r.api.l.Warning("error fetching AQI", map[string]any{"place": place, "err": err.Error()})
		return models.AQIResult{Err: err}
	}

	samples := make([]models.AQISample, 0, len(response.List))
	for _, item := range response.List {
		samples = append(samples, models.AQISample{
			Time:  time.Unix(item.Dt, 0).UTC(),
			Index: item.Main.AQI,
		})
	}

	r.api.l.Info("parsed API response", map[string]any{
		"items": len(samples),
		"coord": coord.String(),
		"place": place,
	})

	return models.AQIResult{Samples: samples}
}
