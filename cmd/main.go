package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/sbilibin2017/gw-currency-converter/internal/catalog"
	"github.com/sbilibin2017/gw-currency-converter/internal/facades"
	"github.com/sbilibin2017/gw-currency-converter/internal/handlers"
	"github.com/sbilibin2017/gw-currency-converter/internal/logger"
	"github.com/sbilibin2017/gw-currency-converter/internal/middlewares"
	"github.com/sbilibin2017/gw-currency-converter/internal/services"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// defaultAPIURL is the conversion service address used when API_URL is unset.
// Override at build time with -ldflags "-X main.defaultAPIURL=https://...".
var defaultAPIURL = "http://localhost:8000"

// @title gw-currency-converter API
// @version 1.0.0
// @description Single-page currency converter backed by a remote conversion service
// @host localhost:8080
// @BasePath /api/v1
// @schemes http
func main() {
	printBuildInfo()
	configPath := parseFlags()

	appHost, appPort, logLevel, logFormat, apiURL, apiTimeoutSecond, err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(),
		appHost, appPort,
		logLevel, logFormat,
		apiURL, apiTimeoutSecond,
	); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Version: %s\nCommit: %s\nBuild: %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns
// the application, logging and conversion service configuration.
func parseConfig(path string) (
	appHost, appPort string,
	logLevel, logFormat string,
	apiURL string, apiTimeoutSecond int,
	err error,
) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	// Application config
	appHost = getEnv("APP_HOST", "localhost")
	appPort = getEnv("APP_PORT", "8080")
	logLevel = getEnv("APP_LOG_LEVEL", "info")
	logFormat = getEnv("APP_LOG_FORMAT", "json")

	// Conversion service config
	apiURL = getEnv("API_URL", defaultAPIURL)
	if apiTimeoutSecond, err = strconv.Atoi(getEnv("API_TIMEOUT_SECOND", "0")); err != nil {
		return
	}
	if apiTimeoutSecond < 0 {
		err = fmt.Errorf("API_TIMEOUT_SECOND must not be negative, got %d", apiTimeoutSecond)
		return
	}

	return
}

// run initializes the logger, the conversion client and the converter view,
// then serves the page and API until a shutdown signal arrives.
func run(ctx context.Context,
	appHost, appPort string,
	logLevel, logFormat string,
	apiURL string, apiTimeoutSecond int,
) error {
	if err := logger.Initialize(logLevel, logFormat); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Log.Sync()
	logger.Log.Infof("Logger initialized with level %s", logLevel)

	exchangeFacade := facades.NewExchangeRatesHTTPFacade(apiURL, time.Duration(apiTimeoutSecond)*time.Second)

	healthCtx, cancelHealth := context.WithTimeout(ctx, 3*time.Second)
	if err := exchangeFacade.CheckHealth(healthCtx); err != nil {
		logger.Log.Warnw("conversion service is not reachable yet", "api_url", apiURL, "error", err)
	} else {
		logger.Log.Infow("conversion service is reachable", "api_url", apiURL)
	}
	cancelHealth()

	currencies := catalog.New()
	converter := services.NewConverterService(exchangeFacade, currencies)

	r := newRouter(converter, currencies, exchangeFacade)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", appHost, appPort)),
	))

	srv := &http.Server{
		Addr:              fmt.Sprintf("%s:%s", appHost, appPort),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", appHost, appPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}

// newRouter wires the page, the JSON API and the health endpoint.
func newRouter(
	converter handlers.Converter,
	currencies handlers.CurrencyLister,
	supported handlers.SupportedCurrenciesLister,
) chi.Router {
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))

	r.Get("/", handlers.NewPageHandler(converter, currencies))
	r.Post("/", handlers.NewPageActionHandler(converter))
	r.Get("/health", handlers.NewHealthHandler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   []string{"*"},
			AllowedMethods:   []string{"GET", "POST", "PUT", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Content-Type", middlewares.RequestIDHeader},
			ExposedHeaders:   []string{middlewares.RequestIDHeader},
			AllowCredentials: false,
			MaxAge:           300,
		}))

		r.Get("/state", handlers.NewGetStateHandler(converter))
		r.Put("/amount", handlers.NewSetAmountHandler(converter))
		r.Put("/from", handlers.NewSetFromHandler(converter))
		r.Put("/to", handlers.NewSetToHandler(converter))
		r.Post("/swap", handlers.NewSwapHandler(converter))
		r.Post("/convert", handlers.NewConvertHandler(converter))
		r.Get("/currencies", handlers.NewGetCurrenciesHandler(currencies, supported))
	})

	return r
}
