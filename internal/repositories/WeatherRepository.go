package repositories

import (
	"context"
	"net/http"

	"weather-dashboard/config"
	"weather-dashboard/internal/models"
	"weather-dashboard/pkg/observe"
)

// HTTPClient is satisfied by *http.Client.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Geocoder resolves a place name to coordinates. It fails with
// *models.NotFoundError or *models.TransportError.
type Geocoder interface {
	Resolve(ctx context.Context, place string) (models.Coordinate, error)
}

// ForecastFetcher returns at most 8*days 3-hour slots and propagates errors.
type ForecastFetcher interface {
	FetchForecast(ctx context.Context, place string, days int) ([]models.ForecastEntry, error)
}

// UVFetcher never fails; errors are folded into an unavailable result.
type UVFetcher interface {
	FetchUV(ctx context.Context, place string) models.UVResult
}

// AQIFetcher never fails; errors are folded into an empty result.
type AQIFetcher interface {
	FetchAQI(ctx context.Context, place string) models.AQIResult
}

type Repositories struct {
	Geocoder Geocoder
	Forecast ForecastFetcher
	UV       UVFetcher
	AQI      AQIFetcher
}

func InitRepositories(cfg *config.Config, l *observe.Logger) (*Repositories, error) {
	openWeather, err := NewOpenWeatherRepository(
		cfg.OpenWeather,
		l,
		&http.Client{Timeout: cfg.OpenWeather.RequestTimeout()},
	)
	if err != nil {
		return nil, err
	}

	openMeteo := NewOpenMeteoRepository(
		cfg.OpenMeteo.BaseURL,
		openWeather,
		l,
		&http.Client{Timeout: cfg.OpenMeteo.RequestTimeout()},
	)

	return &Repositories{
		Geocoder: openWeather,
		Forecast: openWeather,
		UV:       openMeteo,
		AQI:      openWeather,
	}, nil
}
