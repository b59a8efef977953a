package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/benzak-dev/benzak-api/internal/domain/models"
	"github.com/benzak-dev/benzak-api/internal/logger"
	"github.com/benzak-dev/benzak-api/internal/storage"
)

// LatestService resolves point-in-time prices: the most recent observation
// per (fuel, currency) pair, and the chat-ready summary built from them.
type LatestService interface {
	Latest(ctx context.Context, fuelID, currencyID int64) (*models.PriceRecord, error)

	// ActualSummary renders one line per fuel with its newest price in the
	// reporting currency. Fuels with no history are skipped.
	ActualSummary(ctx context.Context, now time.Time) (string, error)
}

type latestService struct {
	repo           storage.PricesRepository
	reportCurrency string
}

// NewLatestService builds a resolver bound to the deployment's fixed
// reporting currency (e.g., "BYN").
func NewLatestService(repo storage.PricesRepository, reportCurrency string) LatestService {
	return &latestService{repo: repo, reportCurrency: reportCurrency}
}

func (s *latestService) Latest(ctx context.Context, fuelID, currencyID int64) (*models.PriceRecord, error) {
	return s.repo.LatestPrice(ctx, fuelID, currencyID)
}

func (s *latestService) ActualSummary(ctx context.Context, now time.Time) (string, error) {
	currency, err := s.repo.CurrencyByName(ctx, s.reportCurrency)
	if err != nil {
		return "", err
	}
	if currency == nil {
		return "", fmt.Errorf("reporting currency %q is not in the catalog", s.reportCurrency)
	}

	fuels, err := s.repo.ListFuels(ctx)
	if err != nil {
		return "", err
	}

	// One lookup per fuel, fanned out; lines stay index-aligned with the
	// name-ordered fuel list so the summary order is deterministic.
	lines := make([]string, len(fuels))
	g, gctx := errgroup.WithContext(ctx)
	for i, fuel := range fuels {
		i, fuel := i, fuel
		g.Go(func() error {
			rec, err := s.repo.LatestPrice(gctx, fuel.ID, currency.ID)
			if err != nil {
				return err
			}
			if rec == nil {
				logger.L().Warn().
					Str("fuel", fuel.Name).
					Str("currency", currency.Name).
					Msg("no price history, skipping fuel in summary")
				return nil
			}
			lines[i] = FormatActual(fuel, rec, now)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return "", err
	}

	present := make([]string, 0, len(lines))
	for _, line := range lines {
		if line != "" {
			present = append(present, line)
		}
	}
	return strings.Join(present, "\n"), nil
}

// FormatActual renders a single summary line: the fuel name, its price
// rounded to two decimals and the observation age in whole days.
func FormatActual(fuel models.Fuel, rec *models.PriceRecord, now time.Time) string {
	age := int(models.Date(now).Sub(models.Date(rec.At)).Hours() / 24)
	return fmt.Sprintf("%s: %s р. (%d д.)", fuel.Name, rec.Price.StringFixed(2), age)
}
