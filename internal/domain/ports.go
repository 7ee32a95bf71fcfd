package domain

import (
	"context"
	"time"
)

type FacilityRepository interface {
	// Read paths
	ListByCategory(ctx context.Context, cat Category) ([]Facility, error)
	Nearby(ctx context.Context, cat Category, county, excludeID string, limit int) ([]Facility, error)

	// Write paths
	UpsertFacility(ctx context.Context, f Facility) error
}

type WaitlistRepository interface {
	// InsertSignup returns ErrDuplicate when the email is already present.
	InsertSignup(ctx context.Context, email, source string, meta WaitlistMeta) (WaitlistEntry, error)
}

type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttl time.Duration) error
	Del(ctx context.Context, key string) error
}

type Geocoder interface {
	// Locate returns ErrNotFound when no coordinates could be resolved.
	Locate(ctx context.Context, city, county string) (*Coords, error)
}
