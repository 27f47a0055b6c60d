package db

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strings"

	"github.com/sethvargo/go-retry"

	"ansuads/internal/config/configs"
	"ansuads/internal/core/domain"
	"ansuads/internal/core/port"
)

// EnsureSeed loads demo campaigns into an empty store. It runs at most once:
// when any campaign already exists the stored collection is left untouched.
// Candidate seed locations are tried in order with a bounded retry budget
// per location; when all of them fail the built-in sample campaign is used,
// so seeding itself never fails. Only a storage write error is returned.
func EnsureSeed(ctx context.Context, repo port.CampaignRepository, cfg configs.Seed, logger *slog.Logger) error {
	n, err := repo.Count(ctx)
	if err != nil {
		return fmt.Errorf("count campaigns: %w", err)
	}
	if n > 0 {
		return nil
	}

	campaigns := loadSeed(ctx, cfg, logger)
	if err := repo.Seed(ctx, campaigns); err != nil {
		return fmt.Errorf("insert seed: %w", err)
	}
	logger.Info("seeded campaigns", slog.Int("count", len(campaigns)))
	return nil
}

// loadSeed tries each configured location and falls back to the sample data.
func loadSeed(ctx context.Context, cfg configs.Seed, logger *slog.Logger) []domain.Campaign {
	for _, loc := range cfg.Locations {
		var campaigns []domain.Campaign
		backoff := retry.WithMaxRetries(cfg.Retries, retry.NewConstant(cfg.Backoff))
		err := retry.Do(ctx, backoff, func(ctx context.Context) error {
			cs, err := fetchSeed(ctx, loc, cfg)
			if err != nil {
				return err
			}
			campaigns = cs
			return nil
		})
		if err != nil {
			logger.Warn("seed location failed",
				slog.String("location", loc), slog.Any("error", err))
			continue
		}
		logger.Info("loaded seed data",
			slog.String("location", loc), slog.Int("count", len(campaigns)))
		return campaigns
	}
	logger.Warn("no seed location usable, using built-in sample")
	return sampleCampaigns()
}

// fetchSeed reads one location, which may be an http(s) URL or a file path.
// Transport errors are retryable; a malformed or invalid payload is not.
func fetchSeed(ctx context.Context, loc string, cfg configs.Seed) ([]domain.Campaign, error) {
	var raw []byte
	if strings.HasPrefix(loc, "http://") || strings.HasPrefix(loc, "https://") {
		ctx, cancel := context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, loc, nil)
		if err != nil {
			return nil, err
		}
		resp, err := http.DefaultClient.Do(req)
		if err != nil {
			return nil, retry.RetryableError(err)
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			return nil, retry.RetryableError(fmt.Errorf("unexpected status %d", resp.StatusCode))
		}
		if raw, err = io.ReadAll(resp.Body); err != nil {
			return nil, retry.RetryableError(err)
		}
	} else {
		var err error
		if raw, err = os.ReadFile(loc); err != nil {
			return nil, err
		}
	}

	var payload struct {
		Campaigns []domain.Campaign `json:"campaigns"`
	}
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, fmt.Errorf("parse seed: %w", err)
	}
	for i := range payload.Campaigns {
		if err := payload.Campaigns[i].Validate(); err != nil {
			return nil, fmt.Errorf("seed campaign %d: %w", i, err)
		}
	}
	return payload.Campaigns, nil
}

// sampleCampaigns is the hardcoded fallback used when no seed location works.
func sampleCampaigns() []domain.Campaign {
	return []domain.Campaign{{
		ID:        1,
		Name:      "Sample Campaign",
		Objective: "Drive Sales",
		Budget:    5000.00,
		Status:    domain.StatusActive,
		StartDate: "2025-06-01",
		EndDate:   "2025-08-31",
		Metrics: domain.Metrics{
			Impressions: 125000,
			Clicks:      3500,
			CTR:         2.8,
			Conversions: 280,
			Cost:        3200.00,
		},
	}}
}
