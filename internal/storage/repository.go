package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"

	"github.com/benzak-dev/benzak-api/internal/domain/models"
)

// ErrDuplicatePrice marks an insert that collided with an existing
// (at, fuel, currency) observation. The store's own message is attached so
// callers can pass it through to clients.
var ErrDuplicatePrice = errors.New("price already recorded")

// ErrBadReference marks an insert pointing at a fuel or currency id that
// does not exist in the reference catalogs.
var ErrBadReference = errors.New("unknown fuel or currency")

// PricesRepository defines the contract for reference-data and price
// observation access.
type PricesRepository interface {
	ListCurrencies(ctx context.Context) ([]models.Currency, error)
	ListFuels(ctx context.Context) ([]models.Fuel, error)
	CurrencyByName(ctx context.Context, name string) (*models.Currency, error)

	// ListPrices returns observations joined with their reference rows.
	// A non-nil at restricts the result to that single calendar day.
	ListPrices(ctx context.Context, at *time.Time) ([]models.PriceRecord, error)

	// InsertPrice appends one observation inside a transaction. A uniqueness
	// conflict yields ErrDuplicatePrice with no partial write.
	InsertPrice(ctx context.Context, at time.Time, fuelID, currencyID int64, price decimal.Decimal) (int64, error)

	// LatestPrice returns the newest observation for the pair, or nil when
	// the pair has no history.
	LatestPrice(ctx context.Context, fuelID, currencyID int64) (*models.PriceRecord, error)
}

type pricesRepository struct {
	db *sql.DB
}

func NewPricesRepository(db *sql.DB) PricesRepository {
	return &pricesRepository{db: db}
}

func (r *pricesRepository) ListCurrencies(ctx context.Context) ([]models.Currency, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name FROM currency ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list currencies: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []models.Currency
	for rows.Next() {
		var c models.Currency
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, fmt.Errorf("scan currency: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *pricesRepository) ListFuels(ctx context.Context) ([]models.Fuel, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name, short_name, color FROM fuel ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list fuels: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []models.Fuel
	for rows.Next() {
		var f models.Fuel
		if err := rows.Scan(&f.ID, &f.Name, &f.ShortName, &f.Color); err != nil {
			return nil, fmt.Errorf("scan fuel: %w", err)
		}
		out = append(out, f)
	}
	return out, rows.Err()
}

func (r *pricesRepository) CurrencyByName(ctx context.Context, name string) (*models.Currency, error) {
	var c models.Currency
	err := r.db.QueryRowContext(ctx, `SELECT id, name FROM currency WHERE name = $1`, name).
		Scan(&c.ID, &c.Name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("currency by name: %w", err)
	}
	return &c, nil
}

const priceSelect = `
	SELECT p.id, p.at, p.price,
	       f.id, f.name, f.short_name, f.color,
	       c.id, c.name
	FROM price_history p
	JOIN fuel f ON f.id = p.fuel_id
	JOIN currency c ON c.id = p.currency_id`

func (r *pricesRepository) ListPrices(ctx context.Context, at *time.Time) ([]models.PriceRecord, error) {
	query := priceSelect
	var args []interface{}
	if at != nil {
		query += ` WHERE p.at = $1`
		args = append(args, *at)
	}
	query += ` ORDER BY p.at DESC, p.id`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list prices: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []models.PriceRecord
	for rows.Next() {
		rec, err := scanPrice(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

func (r *pricesRepository) LatestPrice(ctx context.Context, fuelID, currencyID int64) (*models.PriceRecord, error) {
	query := priceSelect + `
	WHERE p.fuel_id = $1 AND p.currency_id = $2
	ORDER BY p.at DESC
	LIMIT 1`

	rows, err := r.db.QueryContext(ctx, query, fuelID, currencyID)
	if err != nil {
		return nil, fmt.Errorf("latest price: %w", err)
	}
	defer func() { _ = rows.Close() }()

	if !rows.Next() {
		return nil, rows.Err()
	}
	rec, err := scanPrice(rows)
	if err != nil {
		return nil, err
	}
	return &rec, rows.Err()
}

func (r *pricesRepository) InsertPrice(ctx context.Context, at time.Time, fuelID, currencyID int64, price decimal.Decimal) (int64, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin insert price: %w", err)
	}

	var id int64
	err = tx.QueryRowContext(ctx, `
		INSERT INTO price_history (at, fuel_id, currency_id, price)
		VALUES ($1, $2, $3, $4)
		RETURNING id`,
		at, fuelID, currencyID, price,
	).Scan(&id)
	if err != nil {
		_ = tx.Rollback()
		var pqErr *pq.Error
		if errors.As(err, &pqErr) {
			switch pqErr.Code.Name() {
			case "unique_violation":
				return 0, fmt.Errorf("%w: %s", ErrDuplicatePrice, pqErr.Message)
			case "foreign_key_violation":
				return 0, fmt.Errorf("%w: %s", ErrBadReference, pqErr.Message)
			}
		}
		return 0, fmt.Errorf("insert price: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit insert price: %w", err)
	}
	return id, nil
}

func scanPrice(rows *sql.Rows) (models.PriceRecord, error) {
	var rec models.PriceRecord
	err := rows.Scan(
		&rec.ID, &rec.At, &rec.Price,
		&rec.Fuel.ID, &rec.Fuel.Name, &rec.Fuel.ShortName, &rec.Fuel.Color,
		&rec.Currency.ID, &rec.Currency.Name,
	)
	if err != nil {
		return models.PriceRecord{}, fmt.Errorf("scan price: %w", err)
	}
	rec.At = models.Date(rec.At)
	return rec, nil
}
