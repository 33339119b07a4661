package http

import (
	"html/template"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/filesystem"
	"github.com/gofiber/swagger"

	_ "weather-dashboard/docs"
	"weather-dashboard/internal/repositories"
	"weather-dashboard/internal/services/dashboard"
	"weather-dashboard/pkg/observe"
	"weather-dashboard/web"
)

type routes struct {
	service  *dashboard.DashboardService
	geocoder repositories.Geocoder
	page     *template.Template
	l        *observe.Logger
}

func NewRouter(
	app *fiber.App,
	dashboardService *dashboard.DashboardService,
	geocoder repositories.Geocoder,
	l *observe.Logger,
) error {
	page, err := web.Dashboard()
	if err != nil {
		return err
	}

	r := &routes{
		service:  dashboardService,
		geocoder: geocoder,
		page:     page,
		l:        l,
	}

	// Swagger documentation
	app.Get("/swagger/*", swagger.New(swagger.Config{
		URL:         "/swagger/doc.json",
		DeepLinking: true,
	}))

	app.Use("/static", filesystem.New(filesystem.Config{
		Root:   http.FS(web.Static()),
		MaxAge: 3600,
	}))

	app.Get("/", r.handleDashboardPage)

	// API routes
	api := app.Group("/api/v1")
	api.Get("/dashboard", r.handleDashboard)
	api.Get("/geocode", r.handleGeocode)

	return nil
}
