package http

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weather-dashboard/internal/models"
	"weather-dashboard/internal/repositories"
	"weather-dashboard/internal/services/dashboard"
	"weather-dashboard/pkg/observe"
)

type stubRepository struct {
	coord       models.Coordinate
	forecast    []models.ForecastEntry
	forecastErr error
	geoErr      error
	lastDays    int
}

func (s *stubRepository) Resolve(ctx context.Context, place string) (models.Coordinate, error) {
	return s.coord, s.geoErr
}

func (s *stubRepository) FetchForecast(ctx context.Context, place string, days int) ([]models.ForecastEntry, error) {
	s.lastDays = days
	if s.forecastErr != nil {
		return nil, s.forecastErr
	}
	return s.forecast[:min(8*days, len(s.forecast))], nil
}

func (s *stubRepository) FetchUV(ctx context.Context, place string) models.UVResult {
	return models.UVResult{}
}

func (s *stubRepository) FetchAQI(ctx context.Context, place string) models.AQIResult {
	return models.AQIResult{}
}

func forecast(n int) []models.ForecastEntry {
	start := time.Date(2025, 8, 19, 15, 0, 0, 0, time.UTC)
	out := make([]models.ForecastEntry, n)
	for i := range out {
		ts := start.Add(time.Duration(3*i) * time.Hour)
		out[i] = models.ForecastEntry{
			Timestamp:     ts,
			TimestampText: ts.Format(models.ForecastTimeLayout),
			Temperature:   18 + float64(i%4),
			Humidity:      45,
			Sky:           "Clouds",
		}
	}
	return out
}

func newTestApp(t *testing.T, repo *stubRepository) *fiber.App {
	t.Helper()

	l := observe.NewZapLogger("test-app", io.Discard)
	service := dashboard.NewDashboardService(&repositories.Repositories{
		Geocoder: repo,
		Forecast: repo,
		UV:       repo,
		AQI:      repo,
	}, l)

	app := fiber.New()
	app.Use(requestid.New())
	require.NoError(t, NewRouter(app, service, repo, l))

	return app
}

func get(t *testing.T, app *fiber.App, target string) (int, string) {
	t.Helper()

	resp, err := app.Test(httptest.NewRequest("GET", target, nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	return resp.StatusCode, string(body)
}

func TestHandleDashboard_ReturnsJSON(t *testing.T) {
	repo := &stubRepository{forecast: forecast(40)}
	app := newTestApp(t, repo)

	status, body := get(t, app, "/api/v1/dashboard?place=Tokyo&days=2&view=humidity")
	require.Equal(t, fiber.StatusOK, status, body)

	var d models.Dashboard
	require.NoError(t, json.Unmarshal([]byte(body), &d))

	assert.Equal(t, "Tokyo", d.Place)
	assert.Equal(t, 2, d.Days)
	assert.Equal(t, models.ViewHumidity, d.View)
	assert.Equal(t, "Humidity for the next 2 days in Tokyo", d.Title)
	assert.NotEmpty(t, d.Groups)
	assert.Equal(t, 2, repo.lastDays)
}

func TestHandleDashboard_Defaults(t *testing.T) {
	repo := &stubRepository{forecast: forecast(40)}
	app := newTestApp(t, repo)

	status, body := get(t, app, "/api/v1/dashboard?place=Lima")
	require.Equal(t, fiber.StatusOK, status, body)

	var d models.Dashboard
	require.NoError(t, json.Unmarshal([]byte(body), &d))
	assert.Equal(t, models.ViewTemperature, d.View)
	assert.Equal(t, 1, d.Days)
	assert.Len(t, d.Series, 8)
}

func TestHandleDashboard_Validation(t *testing.T) {
	app := newTestApp(t, &stubRepository{forecast: forecast(40)})

	tests := []struct {
		name  string
		query string
		want  string
	}{
		{"missing place", "", "Missing required parameter: place"},
		{"blank place", "place=%20%20", "Missing required parameter: place"},
		{"days too small", "place=Tokyo&days=0", "days must be between 1 and 5"},
		{"days too large", "place=Tokyo&days=6", "days must be between 1 and 5"},
		{"days not a number", "place=Tokyo&days=three", "days must be between 1 and 5"},
		{"unknown view", "place=Tokyo&view=Pollen", "Unsupported view: Pollen"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := get(t, app, "/api/v1/dashboard?"+tt.query)
			assert.Equal(t, fiber.StatusBadRequest, status)

			var resp ErrorResponse
			require.NoError(t, json.Unmarshal([]byte(body), &resp))
			assert.Equal(t, tt.want, resp.Error)
		})
	}
}

func TestHandleDashboard_ErrorMapping(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		want   string
	}{
		{
			name:   "unknown place",
			err:    &models.NotFoundError{Place: "Atlantis"},
			status: fiber.StatusNotFound,
			want:   "That place does not exist.",
		},
		{
			name:   "upstream failure",
			err:    &models.TransportError{Source: "openweather", StatusCode: 500},
			status: fiber.StatusBadGateway,
			want:   "Error: ",
		},
		{
			name:   "lookup failure",
			err:    &models.LookupError{Table: "sky", Key: "Mist"},
			status: fiber.StatusInternalServerError,
			want:   "An error occurred: ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newTestApp(t, &stubRepository{forecastErr: tt.err})

			status, body := get(t, app, "/api/v1/dashboard?place=Atlantis")
			assert.Equal(t, tt.status, status)

			var resp ErrorResponse
			require.NoError(t, json.Unmarshal([]byte(body), &resp))
			assert.True(t, strings.HasPrefix(resp.Error, tt.want), resp.Error)
		})
	}
}

func TestHandleGeocode(t *testing.T) {
	app := newTestApp(t, &stubRepository{coord: models.Coordinate{Latitude: 35.6828, Longitude: 139.759}})

	status, body := get(t, app, "/api/v1/geocode?place="+url.QueryEscape("Tokyo, JP"))
	require.Equal(t, fiber.StatusOK, status, body)

	var resp GeocodeResponse
	require.NoError(t, json.Unmarshal([]byte(body), &resp))
	assert.Equal(t, GeocodeResponse{Place: "Tokyo, JP", Latitude: 35.6828, Longitude: 139.759}, resp)
}

func TestHandleGeocode_NotFound(t *testing.T) {
	app := newTestApp(t, &stubRepository{geoErr: &models.NotFoundError{Place: "Atlantis"}})

	status, body := get(t, app, "/api/v1/geocode?place=Atlantis")
	assert.Equal(t, fiber.StatusNotFound, status)
	assert.Contains(t, body, "That place does not exist.")

	status, _ = get(t, app, "/api/v1/geocode")
	assert.Equal(t, fiber.StatusBadRequest, status)
}

func TestHandleDashboardPage_EmptyForm(t *testing.T) {
	app := newTestApp(t, &stubRepository{})

	status, body := get(t, app, "/")
	assert.Equal(t, fiber.StatusOK, status)
	assert.Contains(t, body, "Weather Forecast for the Next Days")
	assert.Contains(t, body, `<option value="Air Quality">Air Quality</option>`)
	assert.NotContains(t, body, "<svg")
}

func TestHandleDashboardPage_RendersChartAndGroups(t *testing.T) {
	app := newTestApp(t, &stubRepository{forecast: forecast(40)})

	status, body := get(t, app, "/?place=Tokyo&days=1&view=Temperature")
	require.Equal(t, fiber.StatusOK, status)

	assert.Contains(t, body, "Temperature for the next 1 days in Tokyo")
	assert.Contains(t, body, "<polyline")
	assert.Contains(t, body, "Tue, Aug 19")
	assert.Contains(t, body, "/static/icons/temperature.svg")
}

func TestHandleDashboardPage_ShowsErrorInline(t *testing.T) {
	app := newTestApp(t, &stubRepository{forecastErr: &models.NotFoundError{Place: "Atlantis"}})

	status, body := get(t, app, "/?place=Atlantis&view=Sky")
	assert.Equal(t, fiber.StatusNotFound, status)
	assert.Contains(t, body, "That place does not exist.")
}

func TestStaticIcons(t *testing.T) {
	app := newTestApp(t, &stubRepository{})

	status, body := get(t, app, "/static/icons/uv_high.svg")
	assert.Equal(t, fiber.StatusOK, status)
	assert.Contains(t, body, "<svg")
}

func TestSwaggerDoc(t *testing.T) {
	app := newTestApp(t, &stubRepository{})

	status, body := get(t, app, "/swagger/doc.json")
	assert.Equal(t, fiber.StatusOK, status)
	assert.Contains(t, body, "/api/v1/dashboard")
}

func TestNewChart(t *testing.T) {
	assert.Nil(t, newChart(nil))

	c := newChart([]models.Point{
		{Time: "a", Temperature: 10},
		{Time: "b", Temperature: 20},
		{Time: "c", Temperature: 15},
	})
	require.NotNil(t, c)

	assert.Equal(t, 10.0, c.Min)
	assert.Equal(t, 20.0, c.Max)
	// warmest at the top padding, coldest at the bottom
	assert.Equal(t, "20.0,220.0 360.0,20.0 700.0,120.0", c.Points)

	flat := newChart([]models.Point{{Time: "a", Temperature: 5}})
	assert.Equal(t, "20.0,20.0", flat.Points)
}
