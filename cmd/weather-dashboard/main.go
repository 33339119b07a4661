package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"weather-dashboard/config"
	v1 "weather-dashboard/internal/controllers/http/v1"
	"weather-dashboard/internal/repositories"
	"weather-dashboard/internal/services/dashboard"
	"weather-dashboard/pkg/httpserver"
	"weather-dashboard/pkg/observe"
)

// @title Weather Dashboard API
// @version 1.0.0
// @description Forecast dashboard for any city: temperature, sky, humidity, UV index and air quality for the next days.

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

// @tag.name Dashboard
// @tag.description Forecast dashboard operations
func main() {
	ctx, cancel := context.WithCancel(context.Background())

	cnf, err := config.NewConfig()
	if err != nil {
		log.Fatalf("cannot load config: %v", err)
	}

	writers := []io.Writer{os.Stdout}
	var hook *observe.SentryHook
	if cnf.Sentry.DSN != "" {
		hook = observe.NewSentryHook(cnf.App.Env, cnf.App.Name, 0, cnf.Sentry.Debug, cnf.Sentry.DSN)
		writers = append(writers, hook)
	}

	l := observe.NewZapLogger(cnf.App.Name, writers...)
	l.SetEnv(cnf.App.Env)
	if err := l.SetLevel(cnf.Log.Level); err != nil {
		l.Warning("invalid log level, keeping debug", map[string]any{"level": cnf.Log.Level})
	}
	if hook != nil {
		hook.SetLogger(l)
	}

	repos, err := repositories.InitRepositories(cnf, l)
	if err != nil {
		l.Fatal("cannot init repositories", map[string]any{"err": err.Error()})
	}

	service := dashboard.NewDashboardService(repos, l)

	app := httpserver.InitFiberServer(cnf)

	if err := v1.NewRouter(app, service, repos.Geocoder, l); err != nil {
		l.Fatal("cannot init router", map[string]any{"err": err.Error()})
	}

	go func() {
		if err := app.Listen(":" + cnf.Server.Port); err != nil {
			l.Fatal("cannot run the server", map[string]any{"err": err.Error()})
		}
	}()

	l.Info("application started successfully", map[string]any{
		"port":    cnf.Server.Port,
		"env":     cnf.App.Env,
		"version": cnf.App.Version,
	})

	sigCh := make(chan os.Signal, 2)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer func() {
		l.Warning("stopping application services")
		signal.Stop(sigCh)
		close(sigCh)

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		_ = app.ShutdownWithContext(shutdownCtx)
		if hook != nil {
			hook.Flush()
		}
		_ = l.Stop()
		cancel()
	}()

	select {
	case <-sigCh:
		fmt.Println("received shutdown signal")
	case <-ctx.Done():
		fmt.Println("context cancelled")
	}
}
