// @title			WorkTrack API
// @version		1.0
// @description	Project and task tracker with status cascades and an append-only audit trail.
// @BasePath		/
// @securityDefinitions.apikey	BearerAuth
// @in							header
// @name						Authorization

package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/urfave/cli/v2"
	"github.com/worktrackhq/worktrack/internal/clock"
	"github.com/worktrackhq/worktrack/internal/config"
	"github.com/worktrackhq/worktrack/internal/database"
	"github.com/worktrackhq/worktrack/internal/handler"
	"github.com/worktrackhq/worktrack/internal/logger"
	"github.com/worktrackhq/worktrack/internal/middleware"
)

func main() {
	app := &cli.App{
		Name:  "worktrack",
		Usage: "Project and task tracker",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Value:   "info",
				Usage:   "Log level (debug, info, warn, error)",
				EnvVars: []string{"LOG_LEVEL"},
			},
			&cli.StringFlag{
				Name:     "database-url",
				Aliases:  []string{"d"},
				Value:    config.DefaultDatabaseURL,
				Usage:    "PostgreSQL database URL",
				EnvVars:  []string{"DATABASE_URL"},
				Required: true,
			},
			&cli.StringFlag{
				Name:     "jwt-secret",
				Usage:    "Secret for signing and validating API tokens",
				EnvVars:  []string{"JWT_SECRET"},
				Required: true,
			},
			&cli.StringFlag{
				Name:    "timezone",
				Value:   config.DefaultTimezone,
				Usage:   "IANA timezone for day boundaries (overdue classification)",
				EnvVars: []string{"TIMEZONE"},
			},
		},
		Before: func(c *cli.Context) error {
			logger.Setup(logger.ParseLevel(c.String("log-level")))
			return nil
		},
		Commands: []*cli.Command{
			{
				Name:  "serve",
				Usage: "Start the web server",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "port",
						Aliases: []string{"p"},
						Value:   config.DefaultPort,
						Usage:   "HTTP server port",
						EnvVars: []string{"PORT"},
					},
				},
				Action: runServe,
			},
			{
				Name:  "issue-token",
				Usage: "Mint an API token for a user",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "user-id",
						Usage:    "User ID the token authenticates as",
						Required: true,
					},
					&cli.DurationFlag{
						Name:  "ttl",
						Value: 24 * time.Hour,
						Usage: "Token lifetime",
					},
				},
				Action: runIssueToken,
			},
		},
		Action: runServe,
	}

	if err := app.Run(os.Args); err != nil {
		slog.Error("application error", "error", err)
		os.Exit(1)
	}
}

func runServe(c *cli.Context) error {
	ctx := c.Context

	port := c.String("port")
	if port == "" {
		port = config.DefaultPort
	}
	databaseURL := c.String("database-url")

	loc, err := time.LoadLocation(c.String("timezone"))
	if err != nil {
		return fmt.Errorf("failed to load timezone: %w", err)
	}

	db, err := database.New(ctx, databaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	if err := database.RunMigrations(ctx, db.Pool()); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	h := handler.New(db.Pool(), clock.NewSystem(loc), []byte(c.String("jwt-secret")))

	mux := http.NewServeMux()
	h.RegisterRoutes(mux)

	server := &http.Server{
		Addr:              ":" + port,
		Handler:           mux,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
	}

	serverErr := make(chan error, 1)
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	go func() {
		slog.Info("starting server", "server_addr", "http://localhost:"+port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	select {
	case err := <-serverErr:
		return fmt.Errorf("server error: %w", err)
	case <-done:
		slog.Info("shutting down server")
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	slog.Info("server stopped")
	return nil
}

func runIssueToken(c *cli.Context) error {
	token, err := middleware.IssueToken(
		c.String("user-id"),
		[]byte(c.String("jwt-secret")),
		c.Duration("ttl"),
	)
	if err != nil {
		return fmt.Errorf("failed to issue token: %w", err)
	}

	fmt.Println(token)
	return nil
}
