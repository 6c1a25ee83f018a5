package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"

	"github.com/blogem/timesheet-tracker/config"
	"github.com/blogem/timesheet-tracker/controllers"
	"github.com/blogem/timesheet-tracker/events"
	appmiddleware "github.com/blogem/timesheet-tracker/middleware"
	"github.com/blogem/timesheet-tracker/repositories"
	"github.com/blogem/timesheet-tracker/services"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// newRootCmd builds the command that starts the web server; flags override the environment
func newRootCmd() *cobra.Command {
	var flags struct {
		host   string
		port   string
		store  string
		dbPath string
	}

	cmd := &cobra.Command{
		Use:           "timesheet-tracker",
		Short:         "Timesheet tracker web service",
		Long:          "Accepts timesheet entries over HTTP and serves a dashboard plus a small JSON API.",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("host") {
				cfg.Host = flags.host
			}
			if cmd.Flags().Changed("port") {
				cfg.Port = flags.port
			}
			if cmd.Flags().Changed("store") {
				cfg.StoreDriver = flags.store
			}
			if cmd.Flags().Changed("db-path") {
				cfg.DBPath = flags.dbPath
			}

			if err := cfg.Validate(); err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return run(ctx, cfg)
		},
	}

	cmd.Flags().StringVar(&flags.host, "host", "", "listen host (env HOST)")
	cmd.Flags().StringVarP(&flags.port, "port", "p", "", "listen port (env PORT)")
	cmd.Flags().StringVar(&flags.store, "store", "", "store driver: memory, sqlite or bbolt (env STORE_DRIVER)")
	cmd.Flags().StringVar(&flags.dbPath, "db-path", "", "database file for the sqlite and bbolt stores (env DB_PATH)")

	return cmd
}

// run wires the application and serves until ctx is cancelled
func run(ctx context.Context, cfg *config.Config) error {
	repos, err := repositories.NewRepositories(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize repositories: %w", err)
	}
	defer repos.Close()

	var publisher events.Publisher = events.NewLogPublisher()
	if cfg.KafkaEnabled() {
		publisher = events.NewKafkaPublisher(cfg.KafkaBrokers, cfg.KafkaTopic)
	}
	defer publisher.Close()

	srvs := services.NewServices(repos, publisher, cfg.Version)
	ctrl := controllers.NewControllers(srvs)
	r := setupRouter(ctrl, srvs.System, cfg.StaticDir)

	server := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	fmt.Printf("Server running on port %s\n", cfg.Port)
	fmt.Printf("Version: %s, store: %s\n", cfg.Version, cfg.StoreDriver)

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
		log.Println("[INFO] Shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	}
}

// setupRouter configures all routes
func setupRouter(ctrl *controllers.Controllers, recorder appmiddleware.RequestRecorder, staticDir string) *chi.Mux {
	r := chi.NewRouter()

	// Counted first so that every request, including 404s and panics, is seen once
	r.Use(appmiddleware.RequestCounter(recorder))
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(middleware.Compress(5))

	// Static files
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.Dir(staticDir))))

	r.Get("/", ctrl.Dashboard.Index)
	r.Get("/health", ctrl.System.Health)

	r.Route("/api", func(r chi.Router) {
		r.Get("/info", ctrl.System.Info)

		r.Route("/timesheets", func(r chi.Router) {
			r.Get("/", ctrl.Timesheet.List)
			r.Post("/", ctrl.Timesheet.Create)
		})
	})

	return r
}
