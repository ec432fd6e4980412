package app

import (
	"context"
	"io"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/IBM/sarama"
	"github.com/gorilla/sessions"
	"go.uber.org/zap"

	"github.com/Astemirdum/friendly-eats/pkg/auth0"
	"github.com/Astemirdum/friendly-eats/pkg/kafka"
	"github.com/Astemirdum/friendly-eats/pkg/logger"
	"github.com/Astemirdum/friendly-eats/pkg/openid"
	"github.com/Astemirdum/friendly-eats/pkg/postgres"
	"github.com/Astemirdum/friendly-eats/pkg/redis"
	"github.com/Astemirdum/friendly-eats/restaurant/config"
	"github.com/Astemirdum/friendly-eats/restaurant/internal/events"
	"github.com/Astemirdum/friendly-eats/restaurant/internal/handler"
	"github.com/Astemirdum/friendly-eats/restaurant/internal/live"
	"github.com/Astemirdum/friendly-eats/restaurant/internal/repository"
	"github.com/Astemirdum/friendly-eats/restaurant/internal/server"
	"github.com/Astemirdum/friendly-eats/restaurant/internal/service"
	"github.com/Astemirdum/friendly-eats/restaurant/internal/session"
	"github.com/Astemirdum/friendly-eats/restaurant/internal/storage"
	"github.com/Astemirdum/friendly-eats/restaurant/internal/summary"
	"github.com/Astemirdum/friendly-eats/restaurant/internal/view"
	"github.com/Astemirdum/friendly-eats/restaurant/migrations"
)

func Run(cfg *config.Config) {
	log := logger.NewLogger(cfg.Log, "friendlyeats")
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	db, err := postgres.NewPostgresDB(ctx, &cfg.Database, migrations.MigrationFiles)
	if err != nil {
		log.Fatal("db init", zap.Error(err))
	}
	repo, err := repository.NewRepository(db, log)
	if err != nil {
		log.Fatal("repo init", zap.Error(err))
	}

	hub := live.NewHub(db, log)
	go hub.Run(ctx)

	uploader, err := storage.New(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal("storage init", zap.Error(err))
	}

	summarizer := newSummarizer(ctx, cfg, log)

	var producer sarama.AsyncProducer
	if cfg.Kafka.Enable {
		producer, err = kafka.NewAsyncProducer(cfg.Kafka)
		if err != nil {
			log.Fatal("kafka.NewAsyncProducer", zap.Error(err))
		}
		go kafka.DrainErrors(producer, log)
	}
	svc := service.NewService(repo, hub, uploader, summarizer, events.NewPublisher(producer, kafka.ReviewsTopic), log)

	var consumer sarama.ConsumerGroup
	if cfg.Kafka.Enable {
		consumer, err = kafka.NewConsumer(cfg.Kafka, kafka.SummaryConsumerGroup)
		if err != nil {
			log.Fatal("kafka.NewConsumer", zap.Error(err))
		}
		go kafka.Consume(ctx, consumer, events.NewConsumer(svc.WarmSummary, log), log, kafka.ReviewsTopic)
	}

	h := handler.New(svc, log, handlerOptions(ctx, cfg, log)...)
	srv := server.NewServer(cfg.Server, h.NewRouter())
	log.Info("http server start ON: ",
		zap.String("addr",
			net.JoinHostPort(cfg.Server.Host, cfg.Server.Port)))
	go func() {
		if err := srv.Run(); err != nil {
			log.Error("server run", zap.Error(err))
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	termSig := <-sig

	log.Debug("Graceful shutdown", zap.Any("signal", termSig))

	closeCtx, closeCancel := context.WithTimeout(context.Background(), time.Second*5)
	defer closeCancel()

	if err = srv.Stop(closeCtx); err != nil {
		log.DPanic("srv.Stop", zap.Error(err))
	}
	cancel()
	if consumer != nil {
		if err := consumer.Close(); err != nil {
			log.Error("kafka consumer close", zap.Error(err))
		}
	}
	if producer != nil {
		if err := producer.Close(); err != nil {
			log.Error("kafka producer close", zap.Error(err))
		}
	}
	if c, ok := uploader.(io.Closer); ok {
		if err := c.Close(); err != nil {
			log.Error("storage close", zap.Error(err))
		}
	}
	db.Close()
	log.Info("Graceful shutdown finished")
}

// newSummarizer falls back to a summarizer without a model when no API key
// is configured, so pages render the fallback text.
func newSummarizer(ctx context.Context, cfg *config.Config, log *zap.Logger) *summary.Summarizer {
	var gen summary.Generator
	if cfg.Summary.GeminiAPIKey != "" {
		g, err := summary.NewGemini(ctx, cfg.Summary.GeminiAPIKey, cfg.Summary.Model)
		if err != nil {
			log.Error("gemini init", zap.Error(err))
		} else {
			gen = g
		}
	} else {
		log.Warn("GEMINI_API_KEY not set, review summaries are disabled")
	}

	var cache summary.Cache
	if cfg.Redis.Enable {
		client, err := redis.NewClient(cfg.Redis)
		if err != nil {
			log.Error("redis init, summary cache disabled", zap.Error(err))
		} else {
			cache = summary.NewRedisCache(client)
		}
	}
	return summary.NewSummarizer(gen, cache, cfg.Summary.Timeout, cfg.Summary.CacheTTL, log)
}

func handlerOptions(ctx context.Context, cfg *config.Config, log *zap.Logger) []handler.Option {
	if err := cfg.Auth.Validate(); err != nil {
		log.Fatal("auth config", zap.Error(err))
	}
	var provider session.Provider
	if cfg.Auth.OIDC.Enabled() {
		p, err := openid.NewProvider(ctx, cfg.Auth.OIDC)
		if err != nil {
			log.Error("openid provider, sign-in disabled", zap.Error(err))
		} else {
			provider = p
		}
	}

	tokenCfg := cfg.Auth.Token
	if tokenCfg.Audience == "" {
		tokenCfg.Audience = cfg.Auth.OIDC.ClientID
	}
	var validator session.TokenValidator
	if tokenCfg.Audience != "" || !tokenCfg.Enable {
		v, err := auth0.NewValidator(tokenCfg)
		if err != nil {
			log.Fatal("token validator", zap.Error(err))
		}
		validator = v
	} else {
		log.Warn("no token audience configured, session cookies are ignored")
	}

	store := sessions.NewCookieStore([]byte(cfg.Auth.SessionSecret))
	opts := []handler.Option{
		handler.WithAuth(provider, validator, store, cfg.Auth.CookieSecure),
	}

	renderer, err := view.NewRenderer()
	if err != nil {
		log.Fatal("templates", zap.Error(err))
	}
	opts = append(opts, handler.WithRenderer(renderer))

	if cfg.Storage.Driver == storage.DriverLocal || cfg.Storage.Driver == "" {
		opts = append(opts, handler.WithUploads(cfg.Storage.Dir, cfg.Storage.PublicURL))
	}
	return opts
}
