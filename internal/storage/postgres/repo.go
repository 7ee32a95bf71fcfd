package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"saunaandcold/internal/domain"
)

// DB is the subset of pgxpool.Pool the repo uses; pgxmock satisfies it too.
type DB interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

type Repo struct{ db DB }

func New(db DB) *Repo { return &Repo{db: db} }

// Connect builds and pings a pgx pool for the given connection string.
func Connect(ctx context.Context, url string) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("create connection pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return pool, nil
}

func (r *Repo) ListByCategory(ctx context.Context, cat domain.Category) ([]domain.Facility, error) {
	rows, err := r.db.Query(ctx, listByCategorySQL, string(cat))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanFacilities(rows)
}

func (r *Repo) Nearby(ctx context.Context, cat domain.Category, county, excludeID string, limit int) ([]domain.Facility, error) {
	rows, err := r.db.Query(ctx, nearbySQL, string(cat), county, excludeID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanFacilities(rows)
}

func (r *Repo) UpsertFacility(ctx context.Context, f domain.Facility) error {
	var lat, lon *float64
	if f.Coords != nil {
		lat, lon = &f.Coords.Lat, &f.Coords.Lon
	}
	_, err := r.db.Exec(ctx, upsertFacilitySQL,
		f.ID,
		f.Name,
		f.Description,
		string(f.Category),
		f.Address,
		f.City,
		f.County,
		f.Postcode,
		f.Phone,
		f.Email,
		f.Website,
		lat,
		lon,
		f.Amenities,
		f.Images,
		f.Rating,
		f.ReviewCount,
		f.PriceRange,
		f.Verified,
		f.Featured,
	)
	return err
}

func (r *Repo) InsertSignup(ctx context.Context, email, source string, meta domain.WaitlistMeta) (domain.WaitlistEntry, error) {
	metaJSON, _ := json.Marshal(meta)

	var e domain.WaitlistEntry
	err := r.db.QueryRow(ctx, insertSignupSQL, email, source, metaJSON).
		Scan(&e.ID, &e.Email, &e.Source, &e.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.WaitlistEntry{}, domain.ErrDuplicate
		}
		return domain.WaitlistEntry{}, err
	}
	return e, nil
}

func scanFacilities(rows pgx.Rows) ([]domain.Facility, error) {
	var out []domain.Facility
	for rows.Next() {
		var (
			f        domain.Facility
			lat, lon *float64
		)
		if err := rows.Scan(
			&f.ID,
			&f.Name,
			&f.Description,
			&f.Category,
			&f.Address,
			&f.City,
			&f.County,
			&f.Postcode,
			&f.Phone,
			&f.Email,
			&f.Website,
			&lat,
			&lon,
			&f.Amenities,
			&f.Images,
			&f.Rating,
			&f.ReviewCount,
			&f.PriceRange,
			&f.Verified,
			&f.Featured,
			&f.UpdatedAt,
		); err != nil {
			return nil, err
		}
		if lat != nil && lon != nil {
			f.Coords = &domain.Coords{Lat: *lat, Lon: *lon}
		}
		out = append(out, f)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
