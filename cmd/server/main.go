package main

import (
	"context"
	"log"

	"github.com/gofiber/fiber/v3"

	"github.com/Nithish-ponnusamy/final-devops/internal/browser"
	"github.com/Nithish-ponnusamy/final-devops/internal/config"
	"github.com/Nithish-ponnusamy/final-devops/internal/db"
	"github.com/Nithish-ponnusamy/final-devops/internal/handler"
	"github.com/Nithish-ponnusamy/final-devops/internal/middleware"
	"github.com/Nithish-ponnusamy/final-devops/internal/repository"
	"github.com/Nithish-ponnusamy/final-devops/internal/router"
	"github.com/Nithish-ponnusamy/final-devops/internal/scraper"
	"github.com/Nithish-ponnusamy/final-devops/internal/service"
	"github.com/Nithish-ponnusamy/final-devops/internal/youtube"
)

func main() {
	cfg := config.Load()

	middleware.InitLogger(cfg.LogLevel, "socialdash")

	ctx := context.Background()
	pool, err := db.NewPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer pool.Close()

	if err := db.Bootstrap(ctx, pool); err != nil {
		log.Fatalf("failed to bootstrap schema: %v", err)
	}

	handler.InitMetrics(pool)

	cache := service.NewCacheService(cfg.RedisURL).
		WithCounters(handler.Metrics.CacheHits, handler.Metrics.CacheMisses)
	defer cache.Close()

	profileRepo := repository.NewProfileRepo(pool)
	channelRepo := repository.NewChannelRepo(pool)
	userRepo := repository.NewUserRepo(pool)

	browserOpts := browser.Options{
		ChromeBin:         cfg.ChromeBin,
		NoSandbox:         cfg.BrowserNoSandbox,
		NavigationTimeout: cfg.NavigationTimeout,
	}
	openSession := func(ctx context.Context) (scraper.Session, error) {
		return browser.Open(ctx, browserOpts)
	}
	profileScraper := scraper.New(openSession, scraper.XAdapter{}, scraper.Options{
		MaxPosts:    cfg.MaxPosts,
		WaitTimeout: cfg.NavigationTimeout,
	}, middleware.Logger)

	ytClient := youtube.NewClient(cfg.YouTubeAPIKey, "")
	aggregator := youtube.NewAggregator(ytClient, cfg.MaxVideos, middleware.Logger)

	profileSvc := service.NewProfileService(profileScraper, profileRepo)
	channelSvc := service.NewChannelService(aggregator, channelRepo, cache)
	chatSvc := service.NewChatService(cfg.GeminiAPIKey, "")
	authSvc := service.NewAuthService(userRepo, cfg.JWTSecret)

	app := fiber.New(fiber.Config{
		AppName:      "SocialDash API",
		ServerHeader: "SocialDash",
	})

	router.Setup(app, &router.Handlers{
		Profile: handler.NewProfileHandler(profileSvc),
		Channel: handler.NewChannelHandler(channelSvc),
		Chat:    handler.NewChatHandler(chatSvc),
		Auth:    handler.NewAuthHandler(authSvc),
		Health:  handler.NewHealthHandler(pool, cache.Client()),
	}, cfg.CORSOrigins)

	middleware.Logger.Info().
		Str("port", cfg.Port).
		Str("env", cfg.Environment).
		Msg("backend starting")
	log.Fatal(app.Listen(":" + cfg.Port))
}
