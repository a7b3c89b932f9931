package main

import (
	"context"
	"errors"
	"fmt"

	"portfolio-chat/config"
	"portfolio-chat/internal/chat"
	"portfolio-chat/internal/chat/repository"
	"portfolio-chat/internal/chat/repository/history"
	qdrantRepo "portfolio-chat/internal/chat/repository/qdrant"
	redisRepo "portfolio-chat/internal/chat/repository/redis"
	"portfolio-chat/internal/chat/usecase"
	"portfolio-chat/internal/embedding"
	"portfolio-chat/internal/intent"
	"portfolio-chat/internal/metrics"
	"portfolio-chat/internal/safety"
	"portfolio-chat/pkg/llmprovider"
	"portfolio-chat/pkg/log"
	"portfolio-chat/pkg/qdrant"
)

// backend owns the long-lived clients behind the chat use case.
type backend struct {
	useCase chat.UseCase
	closers []func() error
}

func (b *backend) Close() {
	for i := len(b.closers) - 1; i >= 0; i-- {
		_ = b.closers[i]()
	}
}

func buildBackend(ctx context.Context, cfg *config.Config, logger log.Logger, m *metrics.Metrics) (_ *backend, err error) {
	b := &backend{}
	defer func() {
		if err != nil {
			b.Close()
		}
	}()

	// LLM providers with fallback
	if err := config.ValidateLLMConfig(&cfg.LLM); err != nil {
		return nil, fmt.Errorf("llm config: %w", err)
	}
	providers, initErrs, err := llmprovider.InitializeProviders(&cfg.LLM)
	if err != nil {
		return nil, fmt.Errorf("llm providers: %w", err)
	}
	for _, e := range initErrs {
		logger.Warnf(ctx, "LLM provider skipped: %v", e)
	}
	if len(providers) == 0 {
		return nil, errors.New("no LLM provider could be initialized")
	}
	managerCfg, err := llmprovider.NewManagerConfig(&cfg.LLM)
	if err != nil {
		return nil, err
	}
	llm := llmprovider.NewManager(providers, managerCfg, logger)
	for _, p := range providers {
		logger.Infof(ctx, "LLM provider: %s (%s)", p.Name(), p.Model())
	}

	// Session history
	historyRepo, err := buildHistory(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("history store: %w", err)
	}
	b.closers = append(b.closers, historyRepo.Close)
	logger.Infof(ctx, "Session history driver: %s", cfg.Session.Driver)

	// Retrieval
	embedder, err := embedding.New(cfg, embedding.PurposeQuery)
	if err != nil {
		return nil, fmt.Errorf("embedder: %w", err)
	}
	qdrantClient, err := qdrant.New(qdrant.Config{
		Host:   cfg.Qdrant.Host,
		Port:   cfg.Qdrant.Port,
		APIKey: cfg.Qdrant.APIKey,
		UseTLS: cfg.Qdrant.UseTLS,
	})
	if err != nil {
		return nil, err
	}
	b.closers = append(b.closers, qdrantClient.Close)
	passages, err := qdrantRepo.New(embedder, qdrantClient, cfg.Qdrant.CollectionName, logger)
	if err != nil {
		return nil, err
	}

	uc, err := usecase.New(usecase.Deps{
		Logger:     logger,
		Safety:     safety.New(cfg.Chat.BlockedTerms...),
		History:    historyRepo,
		Passages:   passages,
		Classifier: intent.New(llm, logger),
		LLM:        llm,
		Metrics:    m,
		Profile: usecase.Profile{
			Name:     cfg.Profile.Name,
			Email:    cfg.Profile.Email,
			Phone:    cfg.Profile.Phone,
			LinkedIn: cfg.Profile.LinkedIn,
			GitHub:   cfg.Profile.GitHub,
		},
		HistoryWindow:    cfg.Chat.HistoryWindow,
		RetrievalTopK:    cfg.Chat.RetrievalTopK,
		MaxMessageLength: cfg.Chat.MaxMessageLength,
	})
	if err != nil {
		return nil, err
	}
	b.useCase = uc

	return b, nil
}

func buildHistory(cfg *config.Config, logger log.Logger) (repository.HistoryRepository, error) {
	opts := []history.Option{
		history.WithTTL(cfg.Chat.HistoryTTL),
		history.WithKeyPrefix(cfg.Session.KeyPrefix),
	}

	if cfg.Session.Driver == history.DriverRedis {
		client, err := redisRepo.NewClient(cfg.Redis.URL, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			return nil, err
		}
		opts = append(opts, history.WithRedisClient(client))
	}

	return history.New(cfg.Session.Driver, logger, opts...)
}
