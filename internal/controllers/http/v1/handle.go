package http

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"weather-dashboard/internal/models"
	"weather-dashboard/internal/services/dashboard"
)

const defaultDays = dashboard.MinDays

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error" example:"Missing required parameter: place"`
}

// GeocodeResponse represents a resolved place
type GeocodeResponse struct {
	Place     string  `json:"place" example:"Tokyo"`
	Latitude  float64 `json:"latitude" example:"35.6828"`
	Longitude float64 `json:"longitude" example:"139.759"`
}

// page is the data behind templates/dashboard.html.
type page struct {
	Place     string
	Days      int
	View      models.View
	Views     []models.View
	Dashboard *models.Dashboard
	Chart     *chart
	Error     string
}

// GetDashboard godoc
// @Summary Get a forecast dashboard
// @Description Geocodes the place, fetches the forecast (plus UV or air quality for those views) and returns it grouped by day and classified
// @Tags Dashboard
// @Produce json
// @Param place query string true "City name, optionally with country code" example(Tokyo)
// @Param days query integer false "Number of forecast days (1-5, default: 1)" minimum(1) maximum(5) example(3)
// @Param view query string false "Temperature, Sky, Humidity, UV or Air Quality (default: Temperature)" example(Humidity)
// @Success 200 {object} models.Dashboard "Successful response"
// @Failure 400 {object} ErrorResponse "Bad request - invalid parameters"
// @Failure 404 {object} ErrorResponse "Place not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Failure 502 {object} ErrorResponse "Upstream weather service failed"
// @Router /api/v1/dashboard [get]
func (r *routes) handleDashboard(c *fiber.Ctx) error {
	req, err := parseRequest(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: err.Error()})
	}

	d, err := r.service.Build(c.Context(), req)
	if err != nil {
		status, msg := userError(err)
		return c.Status(status).JSON(ErrorResponse{Error: msg})
	}

	return c.JSON(d)
}

// GetGeocode godoc
// @Summary Resolve a place name
// @Description Looks up the coordinates of the first geocoding match
// @Tags Dashboard
// @Produce json
// @Param place query string true "City name, optionally with country code" example(Paris, FR)
// @Success 200 {object} GeocodeResponse "Successful response"
// @Failure 400 {object} ErrorResponse "Bad request - invalid parameters"
// @Failure 404 {object} ErrorResponse "Place not found"
// @Failure 502 {object} ErrorResponse "Upstream weather service failed"
// @Router /api/v1/geocode [get]
func (r *routes) handleGeocode(c *fiber.Ctx) error {
	place := strings.TrimSpace(c.Query("place"))
	if place == "" {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error: "Missing required parameter: place",
		})
	}

	coord, err := r.geocoder.Resolve(c.Context(), place)
	if err != nil {
		r.l.Warning("geocoding failed", map[string]any{
			"place":      place,
			"request_id": requestID(c),
			"err":        err.Error(),
		})
		status, msg := userError(err)
		return c.Status(status).JSON(ErrorResponse{Error: msg})
	}

	return c.JSON(GeocodeResponse{
		Place:     place,
		Latitude:  coord.Latitude,
		Longitude: coord.Longitude,
	})
}

// handleDashboardPage renders the form, and the dashboard below it once a
// place has been entered. Errors are shown inline.
func (r *routes) handleDashboardPage(c *fiber.Ctx) error {
	p := page{
		Place: strings.TrimSpace(c.Query("place")),
		Days:  defaultDays,
		View:  models.ViewTemperature,
		Views: models.Views,
	}

	if p.Place == "" {
		return r.render(c, fiber.StatusOK, p)
	}

	req, err := parseRequest(c)
	if err != nil {
		p.Error = err.Error()
		return r.render(c, fiber.StatusBadRequest, p)
	}
	p.Days, p.View = req.Days, req.View

	d, err := r.service.Build(c.Context(), req)
	if err != nil {
		status, msg := userError(err)
		p.Error = msg
		return r.render(c, status, p)
	}

	p.Dashboard = d
	p.Chart = newChart(d.Series)

	return r.render(c, fiber.StatusOK, p)
}

func (r *routes) render(c *fiber.Ctx, status int, p page) error {
	var buf bytes.Buffer
	if err := r.page.Execute(&buf, p); err != nil {
		r.l.Error(err, map[string]any{"request_id": requestID(c)})
		return c.Status(fiber.StatusInternalServerError).SendString("An error occurred while rendering the page.")
	}

	c.Type("html", "utf-8")
	return c.Status(status).Send(buf.Bytes())
}

func parseRequest(c *fiber.Ctx) (dashboard.Request, error) {
	req := dashboard.Request{
		Place:     strings.TrimSpace(c.Query("place")),
		Days:      defaultDays,
		View:      models.ViewTemperature,
		RequestID: requestID(c),
	}

	if req.Place == "" {
		return req, errors.New("Missing required parameter: place")
	}

	if raw := c.Query("days"); raw != "" {
		days, err := strconv.Atoi(raw)
		if err != nil || days < dashboard.MinDays || days > dashboard.MaxDays {
			return req, fmt.Errorf("days must be between %d and %d", dashboard.MinDays, dashboard.MaxDays)
		}
		req.Days = days
	}

	if raw := c.Query("view"); raw != "" {
		view, ok := models.ParseView(raw)
		if !ok {
			return req, fmt.Errorf("Unsupported view: %s", raw)
		}
		req.View = view
	}

	return req, nil
}

// userError maps the error taxonomy to a status and the message shown to
// the user.
func userError(err error) (int, string) {
	var (
		notFound  *models.NotFoundError
		transport *models.TransportError
		lookup    *models.LookupError
	)

	switch {
	case errors.As(err, &notFound):
		return fiber.StatusNotFound, "That place does not exist."
	case errors.As(err, &transport):
		return fiber.StatusBadGateway, fmt.Sprintf("Error: %v", transport)
	case errors.As(err, &lookup):
		return fiber.StatusInternalServerError, fmt.Sprintf("An error occurred: %v", lookup)
	default:
		return fiber.StatusInternalServerError, fmt.Sprintf("An error occurred: %v", err)
	}
}

func requestID(c *fiber.Ctx) string {
	id, _ := c.Locals("requestid").(string)
	return id
}
