package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/benzak-dev/benzak-api/internal/domain/models"
	"github.com/benzak-dev/benzak-api/internal/storage"
)

// ErrBadDate is returned when a date path parameter is not strict YYYY-MM-DD.
var ErrBadDate = errors.New("invalid date format, expected YYYY-MM-DD")

// DynamicsService exposes the aggregated per-date price reports.
type DynamicsService interface {
	// List returns one report per distinct observation date, newest first.
	List(ctx context.Context) ([]models.DailyReport, error)

	// ByDate returns the report for a single date, nil when the date has no
	// observations, ErrBadDate when raw does not parse.
	ByDate(ctx context.Context, raw string) (*models.DailyReport, error)
}

type dynamicsService struct {
	repo storage.PricesRepository
}

func NewDynamicsService(repo storage.PricesRepository) DynamicsService {
	return &dynamicsService{repo: repo}
}

func (s *dynamicsService) List(ctx context.Context) ([]models.DailyReport, error) {
	records, err := s.repo.ListPrices(ctx, nil)
	if err != nil {
		return nil, err
	}

	grouped := Aggregate(records)

	out := make([]models.DailyReport, 0, len(grouped))
	for _, rep := range grouped {
		out = append(out, rep)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].At.After(out[j].At) })
	return out, nil
}

func (s *dynamicsService) ByDate(ctx context.Context, raw string) (*models.DailyReport, error) {
	at, err := ParseDate(raw)
	if err != nil {
		return nil, err
	}

	records, err := s.repo.ListPrices(ctx, &at)
	if err != nil {
		return nil, err
	}

	if rep, ok := Aggregate(records)[at]; ok {
		return &rep, nil
	}
	return nil, nil
}

// ParseDate parses a strict YYYY-MM-DD value into a UTC-midnight time.
func ParseDate(raw string) (time.Time, error) {
	at, err := time.Parse(models.DateLayout, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrBadDate, raw)
	}
	return at.UTC(), nil
}

// Aggregate turns a flat record set into one DailyReport per distinct date.
//
// Records are grouped through a typed three-level map (date, fuel id,
// currency id); store-side uniqueness of the triple guarantees at most one
// price per leaf, so insertion order never matters. Fuels within a report
// are sorted by fuel name, prices within a fuel by currency name. Empty
// input yields an empty map.
func Aggregate(records []models.PriceRecord) map[time.Time]models.DailyReport {
	grouped := make(map[time.Time]map[int64]map[int64]models.PriceRecord)

	for _, rec := range records {
		at := models.Date(rec.At)
		fuels, ok := grouped[at]
		if !ok {
			fuels = make(map[int64]map[int64]models.PriceRecord)
			grouped[at] = fuels
		}
		prices, ok := fuels[rec.Fuel.ID]
		if !ok {
			prices = make(map[int64]models.PriceRecord)
			fuels[rec.Fuel.ID] = prices
		}
		prices[rec.Currency.ID] = rec
	}

	result := make(map[time.Time]models.DailyReport, len(grouped))

	for at, fuels := range grouped {
		report := models.DailyReport{At: at, Fuels: make([]models.FuelReport, 0, len(fuels))}

		for _, prices := range fuels {
			var fr models.FuelReport
			for _, rec := range prices {
				fr.Fuel = rec.Fuel
				fr.Prices = append(fr.Prices, models.PriceEntry{
					Currency: rec.Currency,
					Value:    rec.Price,
				})
			}
			sort.Slice(fr.Prices, func(i, j int) bool {
				return fr.Prices[i].Currency.Name < fr.Prices[j].Currency.Name
			})
			report.Fuels = append(report.Fuels, fr)
		}

		sort.Slice(report.Fuels, func(i, j int) bool {
			return report.Fuels[i].Fuel.Name < report.Fuels[j].Fuel.Name
		})
		result[at] = report
	}

	return result
}
