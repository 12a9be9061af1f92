package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/KirkDiggler/hostbot/internal/common/clock"
	"github.com/KirkDiggler/hostbot/internal/common/uuid"
	"github.com/KirkDiggler/hostbot/internal/config"
	"github.com/KirkDiggler/hostbot/internal/handlers/discord"
	"github.com/KirkDiggler/hostbot/internal/repositories/history"
	"github.com/KirkDiggler/hostbot/internal/scheduler"
	"github.com/KirkDiggler/hostbot/internal/services/messaging"
	sessionService "github.com/KirkDiggler/hostbot/internal/services/session"
	"github.com/KirkDiggler/hostbot/internal/session"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

func main() {
	zerolog.TimeFieldFormat = time.RFC3339
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}).
		With().
		Timestamp().
		Logger()

	if err := godotenv.Load(); err != nil {
		logger.Warn().Err(err).Msg("no .env file loaded, using the environment only")
	}

	env, err := config.ParseEnv()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to read environment")
	}

	level, err := zerolog.ParseLevel(env.LogLevel)
	if err != nil {
		logger.Warn().Str("level", env.LogLevel).Msg("unknown log level, using info")
		level = zerolog.InfoLevel
	}
	logger = logger.Level(level)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Config file; an unreadable file at startup is fatal
	configs, err := config.NewStore(&config.StoreConfig{
		Path:   env.ConfigPath,
		Logger: logger.With().Str("component", "config").Logger(),
	})
	if err != nil {
		logger.Fatal().Err(err).Str("path", env.ConfigPath).Msg("failed to load config")
	}
	go configs.Watch(ctx, env.ConfigReloadInterval)
	go reloadOnHangup(ctx, configs, logger)

	// Initialize Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     env.RedisAddr,
		Password: env.RedisPassword,
		DB:       0,
	})
	defer redisClient.Close()

	historyRepo, err := history.NewRedis(&history.Config{
		RedisClient: redisClient,
		Limit:       env.HistoryLimit,
	})
	if err != nil {
		logger.Fatal().Err(err).Str("addr", env.RedisAddr).Msg("failed to create history repository")
	}

	clk := clock.New()

	store, err := session.NewStore(&session.Config{Clock: clk})
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create session store")
	}

	sched, err := scheduler.New(&scheduler.Config{
		Clock:  clk,
		Logger: logger.With().Str("component", "scheduler").Logger(),
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create scheduler")
	}

	msgs, err := messaging.NewService(&messaging.ServiceConfig{})
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create messaging service")
	}

	dg, err := discord.NewSession(env.DiscordToken)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create Discord session")
	}

	transport, err := discord.NewTransport(&discord.TransportConfig{
		Session:       dg,
		ApplicationID: env.ApplicationID,
		GuildID:       env.GuildID,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create Discord transport")
	}

	sessions, err := sessionService.New(&sessionService.Config{
		Store:       store,
		Scheduler:   sched,
		Platform:    transport,
		Messaging:   msgs,
		HistoryRepo: historyRepo,
		Configs:     configs,
		Clock:       clk,
		UUID:        uuid.New(),
		Logger:      logger.With().Str("component", "session").Logger(),
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create session service")
	}

	handlers, err := discord.NewHandlers(&discord.HandlersConfig{
		Platform:  transport,
		Sessions:  sessions,
		Messaging: msgs,
		Configs:   configs,
		Logger:    logger.With().Str("component", "handlers").Logger(),
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create handlers")
	}

	bot, err := discord.New(&discord.Config{
		Session:  dg,
		Platform: transport,
		Handlers: handlers,
		Sessions: sessions,
		Logger:   logger.With().Str("component", "bot").Logger(),
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create Discord bot")
	}

	if err := bot.Start(ctx); err != nil {
		logger.Fatal().Err(err).Msg("failed to start Discord bot")
	}

	<-ctx.Done()
	logger.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := bot.Stop(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("error stopping bot")
	}

	logger.Info().Msg("bot has been shut down")
}

// reloadOnHangup re-reads the config file on SIGHUP
func reloadOnHangup(ctx context.Context, configs *config.Store, logger zerolog.Logger) {
	hup := make(chan os.Signal, 1)
	signal.Notify(hup, syscall.SIGHUP)
	defer signal.Stop(hup)

	for {
		select {
		case <-ctx.Done():
			return
		case <-hup:
			logger.Debug().Msg("received SIGHUP")
			_ = configs.Reload()
		}
	}
}
