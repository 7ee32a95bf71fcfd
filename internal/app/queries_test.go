package app_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"saunaandcold/internal/app"
	"saunaandcold/internal/domain"
	"saunaandcold/internal/regions"
)

// ---- fakes ----

type fakeRepo struct {
	facilities []domain.Facility
	nearby     []domain.Facility
	listErr    error
	listCalls  int
}

func (f *fakeRepo) ListByCategory(ctx context.Context, cat domain.Category) ([]domain.Facility, error) {
	f.listCalls++
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.facilities, nil
}

func (f *fakeRepo) Nearby(ctx context.Context, cat domain.Category, county, excludeID string, limit int) ([]domain.Facility, error) {
	return f.nearby, nil
}

func (f *fakeRepo) UpsertFacility(ctx context.Context, fac domain.Facility) error { return nil }

type fakeCache struct {
	store map[string]any
}

func (c *fakeCache) Get(ctx context.Context, key string, dst any) (bool, error) {
	if c.store == nil {
		return false, nil
	}
	v, ok := c.store[key]
	if !ok {
		return false, nil
	}
	if d, ok := dst.(*[]domain.Facility); ok {
		*d = v.([]domain.Facility)
	}
	return true, nil
}

func (c *fakeCache) Set(ctx context.Context, key string, v any, ttl time.Duration) error {
	if c.store == nil {
		c.store = map[string]any{}
	}
	c.store[key] = v
	return nil
}

func (c *fakeCache) Del(ctx context.Context, key string) error {
	delete(c.store, key)
	return nil
}

// ---- helpers ----

func mustResolver(t *testing.T) *regions.Resolver {
	t.Helper()
	r, err := regions.NewResolver()
	if err != nil {
		t.Fatalf("resolver: %v", err)
	}
	return r
}

func pfloat(f float64) *float64 { return &f }

func fixture() []domain.Facility {
	return []domain.Facility{
		{ID: "a", Name: "The Sauna House", City: "Leeds", County: "Leeds", Category: domain.CategorySauna, Rating: pfloat(4.8)},
		{ID: "b", Name: "Nordic Retreat", City: "Bradford", County: "Bradford", Category: domain.CategorySauna, Rating: pfloat(4.2)},
		{ID: "c", Name: "Cornish Steam", City: "Falmouth", County: "Cornwall", Category: domain.CategorySauna},
	}
}

func newQueryService(t *testing.T, repo *fakeRepo) (*app.QueryService, *fakeCache) {
	t.Helper()
	cache := &fakeCache{}
	return app.NewQueryService(repo, cache, mustResolver(t), 10*time.Minute), cache
}

// ---- tests ----

func TestRegionView_CacheMissThenHit(t *testing.T) {
	repo := &fakeRepo{facilities: fixture()}
	q, _ := newQueryService(t, repo)

	view, err := q.RegionView(context.Background(), domain.CategorySauna, "west-yorkshire")
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if view.Total != 2 || view.Name != "West Yorkshire" {
		t.Fatalf("unexpected view: %+v", view)
	}

	// second call must be served from cache, not the repo
	if _, err := q.RegionView(context.Background(), domain.CategorySauna, "west-yorkshire"); err != nil {
		t.Fatalf("err: %v", err)
	}
	if repo.listCalls != 1 {
		t.Fatalf("expected 1 repo fetch, got %d", repo.listCalls)
	}
}

func TestRegionView_UnmappedKeyIsNotFound(t *testing.T) {
	q, _ := newQueryService(t, &fakeRepo{facilities: fixture()})
	if _, err := q.RegionView(context.Background(), domain.CategorySauna, "narnia"); err != domain.ErrNotFound {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestRegionView_AverageSkipsUnrated(t *testing.T) {
	repo := &fakeRepo{facilities: []domain.Facility{
		{ID: "a", Name: "The Sauna House", City: "Leeds", County: "Leeds", Category: domain.CategorySauna, Rating: pfloat(4.0)},
		{ID: "b", Name: "Nordic Retreat", City: "Leeds", County: "Leeds", Category: domain.CategorySauna},
	}}
	q, _ := newQueryService(t, repo)
	view, err := q.RegionView(context.Background(), domain.CategorySauna, "west-yorkshire")
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if view.AverageRating != 4.0 {
		t.Fatalf("average = %v, want 4.0", view.AverageRating)
	}

	// nothing rated at all must not divide by zero
	repo.facilities[0].Rating = nil
	q2, _ := newQueryService(t, repo)
	view, err = q2.RegionView(context.Background(), domain.CategorySauna, "west-yorkshire")
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if view.AverageRating != 0 {
		t.Fatalf("average = %v, want 0", view.AverageRating)
	}
}

// Running without a configured database leaves the repo nil; reads must
// degrade the same way a failing store does.
func TestQueryService_NilRepoDegrades(t *testing.T) {
	q := app.NewQueryService(nil, &fakeCache{}, mustResolver(t), time.Minute)

	idx := q.RegionIndex(context.Background(), domain.CategorySauna)
	if idx.Total != 0 || len(idx.Regions) != 0 {
		t.Fatalf("expected empty index, got %+v", idx)
	}
	if _, err := q.RegionView(context.Background(), domain.CategorySauna, "west-yorkshire"); err != domain.ErrNotFound {
		t.Fatalf("region err = %v, want ErrNotFound", err)
	}
	if _, err := q.FacilityByPath(context.Background(), domain.CategorySauna, "west-yorkshire", "leeds", "the-sauna-house"); err != domain.ErrNotFound {
		t.Fatalf("detail err = %v, want ErrNotFound", err)
	}
	if got := q.SitemapPaths(context.Background(), domain.CategorySauna); len(got) != 1 || got[0] != "/saunas" {
		t.Fatalf("sitemap = %v", got)
	}
}

func TestRegionIndex_DegradesOnStoreFailure(t *testing.T) {
	q, _ := newQueryService(t, &fakeRepo{listErr: context.DeadlineExceeded})
	idx := q.RegionIndex(context.Background(), domain.CategorySauna)
	if idx.Total != 0 || len(idx.Regions) != 0 {
		t.Fatalf("expected empty index, got %+v", idx)
	}
}

func TestRegionIndex_CountsAndOrder(t *testing.T) {
	q, _ := newQueryService(t, &fakeRepo{facilities: fixture()})
	idx := q.RegionIndex(context.Background(), domain.CategorySauna)
	if idx.Total != 3 || len(idx.Regions) != 2 {
		t.Fatalf("unexpected index: %+v", idx)
	}
	if idx.Regions[0].Key != "west-yorkshire" || idx.Regions[0].FacilityCount != 2 {
		t.Fatalf("biggest region first, got %+v", idx.Regions[0])
	}
}

func TestCityView(t *testing.T) {
	q, _ := newQueryService(t, &fakeRepo{facilities: fixture()})
	view, err := q.CityView(context.Background(), domain.CategorySauna, "west-yorkshire", "leeds")
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if view.City != "Leeds" || len(view.Facilities) != 1 {
		t.Fatalf("unexpected view: %+v", view)
	}
	if _, err := q.CityView(context.Background(), domain.CategorySauna, "west-yorkshire", "falmouth"); err != domain.ErrNotFound {
		t.Fatalf("city outside region: err = %v", err)
	}
}

func TestFacilityByPath_WithNearby(t *testing.T) {
	repo := &fakeRepo{
		facilities: fixture(),
		nearby:     []domain.Facility{{ID: "b", Name: "Nordic Retreat", City: "Bradford", County: "Bradford", Category: domain.CategorySauna}},
	}
	q, _ := newQueryService(t, repo)
	detail, err := q.FacilityByPath(context.Background(), domain.CategorySauna, "west-yorkshire", "leeds", "the-sauna-house")
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if detail.ID != "a" || detail.Path != "/saunas/west-yorkshire/leeds/the-sauna-house" {
		t.Fatalf("unexpected detail: %+v", detail.FacilityView)
	}
	if len(detail.Nearby) != 1 || detail.Nearby[0].ID != "b" {
		t.Fatalf("unexpected nearby: %+v", detail.Nearby)
	}
}

func TestCanonicalForSlug(t *testing.T) {
	q, _ := newQueryService(t, &fakeRepo{facilities: fixture()})

	path, err := q.CanonicalForSlug(context.Background(), domain.CategorySauna, "cornish-steam")
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	if path != "/saunas/cornwall/falmouth/cornish-steam" {
		t.Fatalf("path = %q", path)
	}

	if _, err := q.CanonicalForSlug(context.Background(), domain.CategorySauna, "admin"); err != domain.ErrNotFound {
		t.Fatalf("reserved slug: err = %v", err)
	}
	if _, err := q.CanonicalForSlug(context.Background(), domain.CategorySauna, "no-such-place"); err != domain.ErrNotFound {
		t.Fatalf("unknown slug: err = %v", err)
	}
}

func TestSitemapPaths(t *testing.T) {
	q, _ := newQueryService(t, &fakeRepo{facilities: fixture()})
	paths := q.SitemapPaths(context.Background(), domain.CategorySauna)

	want := []string{
		"/saunas",
		"/saunas/west-yorkshire",
		"/saunas/west-yorkshire/leeds",
		"/saunas/west-yorkshire/leeds/the-sauna-house",
		"/saunas/cornwall/falmouth/cornish-steam",
	}
	joined := strings.Join(paths, "\n")
	for _, w := range want {
		found := false
		for _, p := range paths {
			if p == w {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("missing %q in sitemap paths:\n%s", w, joined)
		}
	}
}
