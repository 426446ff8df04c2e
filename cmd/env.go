package main

import (
	"context"
	"time"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/grip-data/review-insights/internal/db"
	"github.com/grip-data/review-insights/internal/review"
	"github.com/grip-data/review-insights/internal/store"
	"github.com/grip-data/review-insights/internal/warehouse"
	"github.com/grip-data/review-insights/pkg/llm"
)

// env bundles the per-process collaborators commands share.
type env struct {
	Service *review.Service
	Fetcher warehouse.Fetcher
	Cache   store.Cache

	pool interface{ Close() }
}

func (e *env) Close() {
	if e.Cache != nil {
		if err := e.Cache.Close(); err != nil {
			zap.L().Warn("cache close failed", zap.Error(err))
		}
	}
	if e.pool != nil {
		e.pool.Close()
	}
}

// initEnv validates config for the given command mode, then wires
// pool, fetchers, cache, and summarizer.
func initEnv(ctx context.Context, mode string) (*env, error) {
	if err := cfg.Validate(mode); err != nil {
		return nil, err
	}

	pool, err := db.NewPool(ctx, cfg.Warehouse.DatabaseURL, &db.PoolConfig{
		MaxConns: cfg.Warehouse.MaxConns,
		MinConns: cfg.Warehouse.MinConns,
	})
	if err != nil {
		return nil, eris.Wrap(err, "init warehouse pool")
	}

	sqlFetcher := warehouse.New(pool,
		warehouse.WithThumbBaseURL(cfg.Warehouse.ThumbBaseURL),
		warehouse.WithMonthsBack(cfg.Review.MonthsBack),
	)

	cache, err := store.NewSQLite(cfg.Cache.Path)
	if err != nil {
		pool.Close()
		return nil, eris.Wrap(err, "open fetch cache")
	}
	if err := cache.Migrate(ctx); err != nil {
		cache.Close()
		pool.Close()
		return nil, eris.Wrap(err, "migrate fetch cache")
	}

	fetcher := warehouse.NewCached(sqlFetcher, cache, time.Duration(cfg.Cache.TTLHours)*time.Hour)

	var summarizer review.Summarizer
	if cfg.Anthropic.Key != "" {
		client := llm.NewClient(cfg.Anthropic.Key,
			llm.WithRequestsPerMinute(cfg.Anthropic.RequestsPerMinute),
		)
		summarizer = llm.NewSummarizer(client, llm.SummarizerConfig{
			Model:       cfg.Anthropic.Model,
			MaxTokens:   cfg.Anthropic.MaxTokens,
			Temperature: cfg.Anthropic.Temperature,
		})
	}

	svc := review.NewService(fetcher, summarizer,
		review.WithSampleSize(cfg.Review.SampleSize),
	)

	return &env{
		Service: svc,
		Fetcher: fetcher,
		Cache:   cache,
		pool:    pool,
	}, nil
}
