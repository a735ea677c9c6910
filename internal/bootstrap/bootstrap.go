// Package bootstrap assembles the assistant and its backing stores from
// configuration. Both the HTTP server and the voice loop start from here.
package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"time"

	"voiceorder/internal/config"
	"voiceorder/internal/model"
	"voiceorder/internal/repository"
	"voiceorder/internal/service"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// App is the assembled assistant plus everything that must be closed with it
type App struct {
	Assistant *service.Assistant
	FAQ       *service.FAQMatcher

	closers []func() error
}

// Close waits for pending log writes and releases stores in reverse order
func (a *App) Close() error {
	if a.Assistant != nil {
		a.Assistant.Wait()
	}
	return a.closeStores()
}

// New builds the application. Redis is fatal when selected; a missing
// database or FAQ corpus only degrades the affected component.
func New(ctx context.Context, cfg *config.Config) (*App, error) {
	app := &App{}

	var pg *repository.PostgresRepository
	if cfg.NeedsPostgreSQL() {
		repo, err := repository.NewPostgresRepository(
			cfg.GetPostgreSQLDSN(),
			cfg.PostgreSQL.MaxConnections,
			cfg.PostgreSQL.MaxIdleConnections,
		)
		if err != nil {
			logrus.WithError(err).Warn("PostgreSQL unavailable, dependent components degraded")
		} else {
			logrus.Info("Connected to PostgreSQL database")
			pg = repo
			app.closers = append(app.closers, repo.Close)
		}
	}

	contexts, err := newContextStore(ctx, cfg.ContextStore)
	if err != nil {
		_ = app.closeStores()
		return nil, err
	}
	app.closers = append(app.closers, contexts.Close)

	sink, err := newSink(cfg.InteractionLog, pg)
	if err != nil {
		_ = app.closeStores()
		return nil, err
	}
	if files, ok := sink.(*repository.FileSink); ok {
		app.closers = append(app.closers, files.Close)
	}

	corpus := loadCorpus(ctx, cfg.FAQ, pg)
	faq, err := service.NewFAQMatcher(corpus, service.MatchMode(cfg.FAQ.MatchMode), cfg.FAQ.FrequentMin)
	if err != nil {
		_ = app.closeStores()
		return nil, err
	}
	if !faq.Available() {
		logrus.Warn("FAQ corpus is empty, FAQ matching disabled")
	}
	app.FAQ = faq

	classifier, err := service.NewIntentClassifier(service.DefaultIntentRules())
	if err != nil {
		_ = app.closeStores()
		return nil, fmt.Errorf("failed to build intent classifier: %w", err)
	}

	app.Assistant = service.NewAssistant(
		faq,
		classifier,
		service.NewResponseComposer(),
		newSentiment(cfg.OpenAI),
		contexts,
		sink,
	)
	return app, nil
}

func (a *App) closeStores() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		errs = append(errs, a.closers[i]())
	}
	return errors.Join(errs...)
}

func newContextStore(ctx context.Context, cfg config.ContextStoreConfig) (repository.ContextStore, error) {
	storeType := repository.StoreType(cfg.Driver)
	if storeType != repository.StoreTypeRedis {
		return repository.NewContextStore(storeType)
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", cfg.RedisAddr, err)
	}
	logrus.WithField("addr", cfg.RedisAddr).Info("Connected to Redis context store")

	return repository.NewContextStore(storeType,
		repository.WithRedisClient(client),
		repository.WithKeyPrefix(cfg.KeyPrefix),
	)
}

func newSink(cfg config.InteractionLogConfig, pg *repository.PostgresRepository) (repository.InteractionSink, error) {
	sinkType := repository.SinkType(cfg.Sink)
	if sinkType == repository.SinkTypePostgres && pg == nil {
		logrus.WithField("dir", cfg.Dir).Warn("PostgreSQL sink unavailable, logging interactions to files")
		sinkType = repository.SinkTypeFile
	}
	return repository.NewInteractionSink(sinkType, cfg.Dir, pg)
}

// loadCorpus never fails; an unreadable source yields an empty corpus
func loadCorpus(ctx context.Context, cfg config.FAQConfig, pg *repository.PostgresRepository) []model.FAQEntry {
	var (
		corpus []model.FAQEntry
		err    error
	)
	switch cfg.Source {
	case "postgres":
		if pg == nil {
			return nil
		}
		corpus, err = pg.LoadFAQEntries(ctx)
	default:
		corpus, err = repository.LoadFAQFromCSV(cfg.Path)
	}
	if err != nil {
		logrus.WithError(err).WithField("source", cfg.Source).Warn("Failed to load FAQ corpus")
		return nil
	}
	return corpus
}

func newSentiment(cfg config.OpenAIConfig) service.SentimentAnalyzer {
	if cfg.Enabled {
		logrus.WithFields(logrus.Fields{
			"api_base": cfg.APIBase,
			"model":    cfg.ChatModel,
		}).Info("OpenAI sentiment analyzer enabled")
		return service.NewOpenAIClient(&cfg)
	}
	logrus.Info("OPENAI_API_KEY not set, using lexicon sentiment analyzer")
	return service.NewLexiconAnalyzer()
}
