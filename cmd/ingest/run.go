package main

import (
	"github.com/spf13/cobra"

	"portfolio-chat/config"
	"portfolio-chat/internal/embedding"
	"portfolio-chat/pkg/log"
	"portfolio-chat/pkg/qdrant"
)

func runIngest(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	embedder, err := embedding.New(cfg, embedding.PurposeDocument)
	if err != nil {
		return err
	}

	client, err := qdrant.New(qdrant.Config{
		Host:   cfg.Qdrant.Host,
		Port:   cfg.Qdrant.Port,
		APIKey: cfg.Qdrant.APIKey,
		UseTLS: cfg.Qdrant.UseTLS,
	})
	if err != nil {
		return err
	}
	defer client.Close()

	size := batchSize
	if size <= 0 {
		size = cfg.Embedding.BatchSize
	}

	p := &pipeline{
		embedder:   embedder,
		store:      client,
		collection: cfg.Qdrant.CollectionName,
		vectorSize: cfg.Qdrant.VectorSize,
		batchSize:  size,
		l:          logger,
	}

	stats, err := p.run(ctx, docsDir, recreate)
	if err != nil {
		return err
	}

	logger.Infof(ctx, "Ingest complete: %d files, %d chunks into %s", stats.files, stats.chunks, cfg.Qdrant.CollectionName)
	return nil
}
