package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humaecho"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/calegrey/relister/internal/api/handlers"
	"github.com/calegrey/relister/internal/api/middleware"
	"github.com/calegrey/relister/internal/books"
	"github.com/calegrey/relister/internal/books/googlebooks"
	"github.com/calegrey/relister/internal/books/openlibrary"
	"github.com/calegrey/relister/internal/books/upcdb"
	"github.com/calegrey/relister/internal/config"
	"github.com/calegrey/relister/internal/describe"
	"github.com/calegrey/relister/internal/ebay"
	"github.com/calegrey/relister/internal/engine"
	"github.com/calegrey/relister/internal/notify"
	"github.com/calegrey/relister/internal/store"
	"github.com/calegrey/relister/pkg/logger"
)

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the API server and scheduler",
		RunE:  runServe,
	}
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(serverConfigPath())
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	charmLog := log.NewWithOptions(os.Stderr, log.Options{
		Level: parseLogLevel(cfg.Logging.Level),
	})
	slogger := logger.New(cfg.Logging.Level, cfg.Logging.Format)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	st, err := store.NewPostgresStore(ctx, cfg.Database.DSN())
	cancel()
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	defer st.Close()

	tokens := newTokenProvider(&cfg.Ebay)
	rl := ebay.NewRateLimiter(
		cfg.Ebay.RateLimit.PerSecond,
		cfg.Ebay.RateLimit.Burst,
		cfg.Ebay.RateLimit.DailyLimit,
	)
	fetcher := newFetcher(&cfg.Ebay, tokens, rl, charmLog)
	quotaClient := newQuotaClient(&cfg.Ebay, tokens)
	resolver := newResolver(&cfg.Books, charmLog)
	generator := newGenerator(&cfg.Describe, charmLog)
	notifier := newNotifier(&cfg.Notifications, slogger)

	assembler := engine.NewAssembler(st, resolver, fetcher, generator,
		engine.WithLogger(slogger),
		engine.WithIncludeShipping(cfg.Pricing.IncludeShipping),
		engine.WithSuggestionQuantile(cfg.Pricing.SuggestionQuantile),
		engine.WithFallbackPrice(cfg.Pricing.FallbackPrice),
		engine.WithCacheTTL(cfg.Pricing.CacheTTL),
	)
	runner := engine.NewBatchRunner(assembler, notifier,
		engine.WithBatchLogger(slogger),
		engine.WithStaggerDelay(cfg.Batch.StaggerDelay),
	)

	scheduler, err := engine.NewScheduler(st, cfg.Schedule.CacheSweepInterval, slogger)
	if err != nil {
		return fmt.Errorf("creating scheduler: %w", err)
	}
	scheduler.Start()

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	e.Use(middleware.Recovery(slogger))
	e.Use(middleware.RequestLog(slogger))
	e.Use(middleware.Metrics())

	health := handlers.NewHealthHandler(st)
	e.GET("/healthz", health.Healthz)
	e.GET("/readyz", health.Readyz)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := humaecho.New(e, huma.DefaultConfig("relister API", Version))
	handlers.RegisterLookupRoutes(api, handlers.NewLookupHandler(resolver))
	handlers.RegisterPriceRoutes(api, handlers.NewPriceHandler(fetcher))
	handlers.RegisterTitleRoutes(api, handlers.NewTitleHandler())
	handlers.RegisterListingRoutes(api, handlers.NewListingsHandler(st, assembler))
	handlers.RegisterBatchRoutes(api, handlers.NewBatchHandler(runner))
	handlers.RegisterQuotaRoutes(api, handlers.NewQuotaHandler(rl, quotaClient))

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	charmLog.Info("starting server", "addr", addr)

	go func() {
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			charmLog.Error("server error", "err", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	charmLog.Info("shutting down server")

	<-scheduler.Stop().Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down server: %w", err)
	}

	charmLog.Info("server stopped")
	return nil
}

func newTokenProvider(cfg *config.EbayConfig) *ebay.OAuthTokenProvider {
	var opts []ebay.OAuthOption
	if cfg.TokenURL != "" {
		opts = append(opts, ebay.WithTokenURL(cfg.TokenURL))
	}
	return ebay.NewOAuthTokenProvider(cfg.AppID, cfg.CertID, opts...)
}

func newFetcher(
	cfg *config.EbayConfig,
	tokens ebay.TokenProvider,
	rl *ebay.RateLimiter,
	logger *log.Logger,
) *ebay.Fetcher {
	browseOpts := []ebay.BrowseOption{
		ebay.WithMarketplace(cfg.Marketplace),
		ebay.WithRateLimiter(rl),
	}
	if cfg.BrowseURL != "" {
		browseOpts = append(browseOpts, ebay.WithBrowseURL(cfg.BrowseURL))
	}
	browse := ebay.NewBrowseClient(tokens, browseOpts...)

	return ebay.NewFetcher(browse,
		ebay.WithMaxPages(cfg.MaxPages),
		ebay.WithMaxComps(cfg.MaxComps),
		ebay.WithFetcherLogger(logger),
	)
}

func newQuotaClient(cfg *config.EbayConfig, tokens ebay.TokenProvider) *ebay.QuotaClient {
	var opts []ebay.QuotaOption
	if cfg.AnalyticsURL != "" {
		opts = append(opts, ebay.WithQuotaURL(cfg.AnalyticsURL))
	}
	return ebay.NewQuotaClient(tokens, opts...)
}

func newResolver(cfg *config.BooksConfig, logger *log.Logger) *books.Resolver {
	var gbOpts []googlebooks.Option
	if cfg.GoogleBooks.BaseURL != "" {
		gbOpts = append(gbOpts, googlebooks.WithBaseURL(cfg.GoogleBooks.BaseURL))
	}
	if cfg.GoogleBooks.APIKey != "" {
		gbOpts = append(gbOpts, googlebooks.WithAPIKey(cfg.GoogleBooks.APIKey))
	}
	gb := googlebooks.NewClient(gbOpts...)

	olOpts := []openlibrary.Option{
		openlibrary.WithRPS(cfg.OpenLibrary.RPS),
		openlibrary.WithMaxRetries(cfg.OpenLibrary.MaxRetries),
	}
	if cfg.OpenLibrary.BaseURL != "" {
		olOpts = append(olOpts, openlibrary.WithBaseURL(cfg.OpenLibrary.BaseURL))
	}
	if cfg.OpenLibrary.UserAgent != "" {
		olOpts = append(olOpts, openlibrary.WithUserAgent(cfg.OpenLibrary.UserAgent))
	}
	ol := openlibrary.NewClient(olOpts...)

	var upOpts []upcdb.Option
	if cfg.UPCDB.BaseURL != "" {
		upOpts = append(upOpts, upcdb.WithBaseURL(cfg.UPCDB.BaseURL))
	}
	up := upcdb.NewClient(upOpts...)

	return books.NewResolver(gb,
		books.WithFallback(ol),
		books.WithProductSource(up),
		books.WithLogger(logger),
	)
}

func newGenerator(cfg *config.DescribeConfig, logger *log.Logger) *describe.Generator {
	var backend describe.LLMBackend
	if cfg.Backend == "openai_compat" {
		backend = describe.NewOpenAICompatBackend(
			cfg.OpenAICompat.Endpoint,
			cfg.OpenAICompat.Model,
		)
	}

	opts := []describe.GeneratorOption{describe.WithGeneratorLogger(logger)}
	if cfg.MaxTokens > 0 {
		opts = append(opts, describe.WithMaxTokens(cfg.MaxTokens))
	}
	if cfg.Temperature > 0 {
		opts = append(opts, describe.WithTemperature(cfg.Temperature))
	}
	return describe.NewGenerator(backend, opts...)
}

func newNotifier(cfg *config.NotificationsConfig, slogger *slog.Logger) notify.Notifier {
	if cfg.Webhook.Enabled {
		return notify.NewWebhookNotifier(cfg.Webhook.URL,
			notify.WithHeaders(cfg.Webhook.Headers),
		)
	}
	return notify.NewNoOpNotifier(slogger)
}

func parseLogLevel(level string) log.Level {
	switch level {
	case "debug":
		return log.DebugLevel
	case "warn":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	default:
		return log.InfoLevel
	}
}
