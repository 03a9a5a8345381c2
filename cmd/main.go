package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/asaskevich/EventBus"
	"github.com/joho/godotenv"
	"github.com/maxaizer/talenthub/internal/api"
	"github.com/maxaizer/talenthub/internal/bot"
	"github.com/maxaizer/talenthub/internal/clients/gemini"
	"github.com/maxaizer/talenthub/internal/config"
	"github.com/maxaizer/talenthub/internal/logger"
	"github.com/maxaizer/talenthub/internal/metrics"
	"github.com/maxaizer/talenthub/internal/repositories"
	"github.com/maxaizer/talenthub/internal/services"
	log "github.com/sirupsen/logrus"
)

func newMatchingService(ctx context.Context, cfg config.AIConfig) (*services.MatchingService, func()) {

	aiClient, err := gemini.NewClient(ctx, cfg.Key, gemini.Model(cfg.Model))
	if err != nil {
		log.Fatalf("can't create AI client: %v", err)
	}
	aiClient.SetMinuteRateLimit(cfg.MaxRequestsPerMinute)
	aiClient.SetDayRateLimit(cfg.MaxRequestsPerDay)
	aiClient.SetMaxAttempts(cfg.MaxAttempts)

	return services.NewMatchingService(aiClient), func() { _ = aiClient.Close() }
}

func runBot(ctx context.Context, cfg config.TelegramConfig, auth *services.AuthService) *bot.Bot {

	tgbot, err := bot.NewBot(cfg.Token, auth)
	if err != nil {
		log.Fatalf("can't create bot: %v", err)
	}
	go tgbot.Run(ctx)
	return tgbot
}

func main() {

	if err := godotenv.Load(); err != nil {
		log.Debugf("no .env file loaded: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.Get()

	logger.Setup(context.WithoutCancel(ctx), cfg.Logger)
	defer logger.Cleanup()

	metrics.StartMetricsServer(cfg.Server.MetricsPort)

	dbContext, err := repositories.NewDbContext(cfg.DB.ConnectionString)
	if err != nil {
		log.Fatalf("can't create db context: %v", err)
	}
	defer dbContext.Close()

	err = dbContext.Migrate()
	if err != nil {
		log.Fatalf("can't migrate db context: %v", err)
	}

	state := repositories.NewStateRepository(repositories.NewDataRepository(dbContext.DB))
	store, err := services.NewStore(ctx, state)
	if err != nil {
		log.Fatalf("can't load state: %v", err)
	}

	bus := EventBus.New()

	matching, closeAI := newMatchingService(ctx, cfg.AI)
	defer closeAI()

	auth := services.NewAuthService(store)
	applications := services.NewApplicationService(store, matching, bus, services.ApplicationOptions{
		UniqueApplicationPerJob: cfg.Policy.UniqueApplicationPerJob,
		ForwardOnlyStatus:       cfg.Policy.ForwardOnlyStatus,
		PendingTTL:              cfg.Assessment.PendingTTL,
		RequestTimeout:          cfg.AI.RequestTimeout,
	})

	notifier := services.NewNotifier(nil, store)
	if cfg.Telegram.Enabled() {
		tgbot := runBot(ctx, cfg.Telegram, auth)
		defer tgbot.Stop()
		notifier = services.NewNotifier(tgbot, store)
	} else {
		log.Info("telegram token is not set, notifications will be logged")
	}

	if err = notifier.Subscribe(bus); err != nil {
		log.Fatalf("can't subscribe notifier: %v", err)
	}

	dispatcher, err := services.NewAlertDispatcher(store, bus, notifier, services.AlertSchedules{
		Daily:  cfg.Alerts.DailySchedule,
		Weekly: cfg.Alerts.WeeklySchedule,
	})
	if err != nil {
		log.Fatalf("can't create alert dispatcher: %v", err)
	}
	defer dispatcher.Stop()

	app := api.NewServer(api.Services{
		Auth:         auth,
		Jobs:         services.NewJobService(store, bus),
		Applications: applications,
		Profile:      services.NewProfileService(store),
		Alerts:       services.NewAlertService(store),
		Analytics:    services.NewAnalyticsService(store),
	})

	go func() {
		log.Infof("listening on port %d", cfg.Server.Port)
		if err := app.Listen(fmt.Sprintf(":%d", cfg.Server.Port)); err != nil {
			log.Fatalf("server stopped: %v", err)
		}
	}()

	<-ctx.Done()

	log.Info("Shutting down services...")
	if err = app.ShutdownWithTimeout(10 * time.Second); err != nil {
		log.Errorf("server shutdown: %v", err)
	}
	bus.WaitAsync()
	log.Info("Services stopped.")
}
