package postgres

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/require"

	"saunaandcold/internal/domain"
)

func newMockRepo(t *testing.T) (pgxmock.PgxPoolIface, *Repo) {
	t.Helper()
	mock, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherEqual))
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return mock, New(mock)
}

func ptr[T any](v T) *T { return &v }

func facilityRow(rows *pgxmock.Rows, id, name, city, county string) {
	rows.AddRow(
		id,                      // id
		name,                    // name
		ptr("a description"),    // description
		domain.CategorySauna,    // facility_type
		ptr("12 High St"),       // address
		city,                    // city
		county,                  // county
		(*string)(nil),          // postcode
		(*string)(nil),          // phone
		(*string)(nil),          // email
		ptr("https://x.test"),   // website
		ptr(53.8),               // latitude
		ptr(-1.55),              // longitude
		[]string{"showers"},     // amenities
		[]string(nil),           // images
		ptr(4.8),                // rating
		ptr(120),                // review_count
		(*string)(nil),          // price_range
		true,                    // verified
		false,                   // featured
		time.Now().UTC(),        // updated_at
	)
}

func facilityCols() []string {
	return []string{
		"id", "name", "description", "facility_type", "address", "city", "county",
		"postcode", "phone", "email", "website", "latitude", "longitude",
		"amenities", "images", "rating", "review_count", "price_range",
		"verified", "featured", "updated_at",
	}
}

func TestListByCategory(t *testing.T) {
	mock, repo := newMockRepo(t)

	rows := pgxmock.NewRows(facilityCols())
	facilityRow(rows, "a", "The Sauna House", "Leeds", "Leeds")
	facilityRow(rows, "b", "Nordic Retreat", "Falmouth", "Cornwall")
	mock.ExpectQuery(listByCategorySQL).WithArgs("sauna").WillReturnRows(rows)

	fs, err := repo.ListByCategory(context.Background(), domain.CategorySauna)
	require.NoError(t, err)
	require.Len(t, fs, 2)
	require.Equal(t, "The Sauna House", fs[0].Name)
	require.Equal(t, domain.CategorySauna, fs[0].Category)
	require.NotNil(t, fs[0].Coords)
	require.Equal(t, 53.8, fs[0].Coords.Lat)
	require.NotNil(t, fs[0].Rating)
	require.Equal(t, 4.8, *fs[0].Rating)
	require.Nil(t, fs[0].Postcode)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestNearby(t *testing.T) {
	mock, repo := newMockRepo(t)

	rows := pgxmock.NewRows(facilityCols())
	facilityRow(rows, "b", "Nordic Retreat", "Bradford", "West Yorkshire")
	mock.ExpectQuery(nearbySQL).
		WithArgs("sauna", "West Yorkshire", "a", 3).
		WillReturnRows(rows)

	fs, err := repo.Nearby(context.Background(), domain.CategorySauna, "West Yorkshire", "a", 3)
	require.NoError(t, err)
	require.Len(t, fs, 1)
	require.Equal(t, "b", fs[0].ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpsertFacility(t *testing.T) {
	mock, repo := newMockRepo(t)

	f := domain.Facility{
		ID:       "a",
		Name:     "The Sauna House",
		Category: domain.CategorySauna,
		City:     "Leeds",
		County:   "West Yorkshire",
		Coords:   &domain.Coords{Lat: 53.8, Lon: -1.55},
		Rating:   ptr(4.8),
	}
	mock.ExpectExec(upsertFacilitySQL).
		WithArgs(
			f.ID, f.Name, (*string)(nil), "sauna", (*string)(nil), f.City, f.County,
			(*string)(nil), (*string)(nil), (*string)(nil), (*string)(nil),
			ptr(53.8), ptr(-1.55), []string(nil), []string(nil),
			ptr(4.8), (*int)(nil), (*string)(nil), false, false,
		).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	require.NoError(t, repo.UpsertFacility(context.Background(), f))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestInsertSignup(t *testing.T) {
	mock, repo := newMockRepo(t)

	meta := domain.WaitlistMeta{UserAgent: "test", Timestamp: "2026-01-01T00:00:00Z"}
	metaJSON, err := json.Marshal(meta)
	require.NoError(t, err)

	created := time.Now().UTC()
	mock.ExpectQuery(insertSignupSQL).
		WithArgs("someone@example.com", "community_page", metaJSON).
		WillReturnRows(pgxmock.NewRows([]string{"id", "email", "source", "created_at"}).
			AddRow("1", "someone@example.com", "community_page", created))

	e, err := repo.InsertSignup(context.Background(), "someone@example.com", "community_page", meta)
	require.NoError(t, err)
	require.Equal(t, "someone@example.com", e.Email)
	require.Equal(t, created, e.CreatedAt)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestInsertSignup_DuplicateEmail(t *testing.T) {
	mock, repo := newMockRepo(t)

	mock.ExpectQuery(insertSignupSQL).
		WithArgs("someone@example.com", "community_page", pgxmock.AnyArg()).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "waitlist_email_key"})

	_, err := repo.InsertSignup(context.Background(), "someone@example.com", "community_page", domain.WaitlistMeta{})
	require.ErrorIs(t, err, domain.ErrDuplicate)
	require.NoError(t, mock.ExpectationsWereMet())
}
