package app

import (
	"context"
	"sort"
	"time"

	"github.com/rs/zerolog/log"

	"saunaandcold/internal/domain"
	"saunaandcold/internal/regions"
	"saunaandcold/internal/routing"
)

// sections maps a category to its URL section, e.g. /saunas/... for sauna.
var sections = map[domain.Category]string{
	domain.CategorySauna:          "saunas",
	domain.CategoryColdPlunge:     "cold-plunges",
	domain.CategoryIceBath:        "ice-baths",
	domain.CategoryWellnessCentre: "wellness-centres",
	domain.CategorySpaHotel:       "spa-hotels",
	domain.CategoryThermalBath:    "thermal-baths",
}

func Section(cat domain.Category) string { return sections[cat] }

type QueryService struct {
	repo     domain.FacilityRepository
	cache    domain.Cache
	regions  *regions.Resolver
	cacheTTL time.Duration
}

// NewQueryService accepts a nil repository: every read then degrades the way
// a store failure does (empty index, 404 detail), matching WaitlistService's
// nil-repo behavior for an unconfigured database.
func NewQueryService(r domain.FacilityRepository, c domain.Cache, reg *regions.Resolver, ttl time.Duration) *QueryService {
	return &QueryService{repo: r, cache: c, regions: reg, cacheTTL: ttl}
}

// facilities is the single read path for a category's full sibling set:
// read-through cached so one store fetch serves many requests.
func (s *QueryService) facilities(ctx context.Context, cat domain.Category) ([]domain.Facility, error) {
	key := "facilities:" + string(cat)
	var fs []domain.Facility
	if ok, _ := s.cache.Get(ctx, key, &fs); ok {
		return fs, nil
	}
	if s.repo == nil {
		return nil, domain.ErrUnavailable
	}
	fs, err := s.repo.ListByCategory(ctx, cat)
	if err != nil {
		return nil, err
	}
	_ = s.cache.Set(ctx, key, fs, s.cacheTTL)
	return fs, nil
}

// RegionIndex lists every region with at least one facility, plus the
// top-rated facilities overall. A store failure degrades to an empty index.
func (s *QueryService) RegionIndex(ctx context.Context, cat domain.Category) RegionIndex {
	fs, err := s.facilities(ctx, cat)
	if err != nil {
		log.Error().Err(err).Str("category", string(cat)).Msg("facility fetch failed, serving empty index")
		return RegionIndex{Regions: []RegionSummary{}}
	}

	counts := map[string]int{}
	for _, f := range fs {
		counts[s.regions.KeyForCounty(f.County)]++
	}
	out := RegionIndex{Total: len(fs), Regions: make([]RegionSummary, 0, len(counts))}
	for key, n := range counts {
		out.Regions = append(out.Regions, RegionSummary{Key: key, Name: regions.DisplayName(key), FacilityCount: n})
	}
	sort.Slice(out.Regions, func(i, j int) bool {
		if out.Regions[i].FacilityCount != out.Regions[j].FacilityCount {
			return out.Regions[i].FacilityCount > out.Regions[j].FacilityCount
		}
		return out.Regions[i].Key < out.Regions[j].Key
	})
	out.TopRated = s.views(topRated(fs, 6), fs, cat)
	return out
}

// RegionView groups a region's facilities by city. Unmapped or empty regions
// are not-found, never an error.
func (s *QueryService) RegionView(ctx context.Context, cat domain.Category, key string) (RegionView, error) {
	fs, err := s.facilities(ctx, cat)
	if err != nil {
		log.Error().Err(err).Str("region", key).Msg("facility fetch failed")
		return RegionView{}, domain.ErrNotFound
	}
	inRegion := s.regions.FilterByRegion(fs, key)
	if len(inRegion) == 0 {
		return RegionView{}, domain.ErrNotFound
	}

	groups := map[string]*CityGroup{}
	var ratingSum float64
	rated := 0
	for _, f := range inRegion {
		g, ok := groups[f.City]
		if !ok {
			g = &CityGroup{Name: f.City, Slug: routing.Normalize(f.City)}
			groups[f.City] = g
		}
		g.Count++
		if f.Rating != nil {
			ratingSum += *f.Rating
			rated++
		}
	}
	cities := make([]CityGroup, 0, len(groups))
	for _, g := range groups {
		cities = append(cities, *g)
	}
	sort.Slice(cities, func(i, j int) bool {
		if cities[i].Count != cities[j].Count {
			return cities[i].Count > cities[j].Count
		}
		return cities[i].Name < cities[j].Name
	})

	// unrated facilities are left out of the average rather than counted
	// as zero stars
	avg := 0.0
	if rated > 0 {
		avg = ratingSum / float64(rated)
	}

	return RegionView{
		Key:           key,
		Name:          regions.DisplayName(key),
		Total:         len(inRegion),
		AverageRating: avg,
		Cities:        cities,
		Featured:      s.views(topRated(inRegion, 6), fs, cat),
	}, nil
}

func (s *QueryService) CityView(ctx context.Context, cat domain.Category, key, citySlug string) (CityView, error) {
	fs, err := s.facilities(ctx, cat)
	if err != nil {
		log.Error().Err(err).Str("region", key).Str("city", citySlug).Msg("facility fetch failed")
		return CityView{}, domain.ErrNotFound
	}
	var matched []domain.Facility
	cityName := ""
	for _, f := range s.regions.FilterByRegion(fs, key) {
		if routing.Normalize(f.City) == citySlug {
			matched = append(matched, f)
			cityName = f.City
		}
	}
	if len(matched) == 0 {
		return CityView{}, domain.ErrNotFound
	}
	sort.Slice(matched, func(i, j int) bool { return ratingOf(matched[i]) > ratingOf(matched[j]) })
	return CityView{
		RegionKey:  key,
		RegionName: regions.DisplayName(key),
		City:       cityName,
		CitySlug:   citySlug,
		Facilities: s.views(matched, fs, cat),
	}, nil
}

// FacilityByPath resolves the canonical three-segment URL and attaches up to
// three nearby suggestions from the same raw county. Nearby lookups are
// best-effort; a failure there never fails the page.
func (s *QueryService) FacilityByPath(ctx context.Context, cat domain.Category, key, citySlug, nameSlug string) (FacilityDetail, error) {
	fs, err := s.facilities(ctx, cat)
	if err != nil {
		log.Error().Err(err).Str("slug", nameSlug).Msg("facility fetch failed")
		return FacilityDetail{}, domain.ErrNotFound
	}
	f, ok := routing.ResolvePath(key, citySlug, nameSlug, fs, s.regions)
	if !ok {
		return FacilityDetail{}, domain.ErrNotFound
	}
	detail := FacilityDetail{FacilityView: toView(f, fs, Section(cat), s.regions)}
	nearby, err := s.repo.Nearby(ctx, cat, f.County, f.ID, 3)
	if err != nil {
		log.Warn().Err(err).Str("id", f.ID).Msg("nearby lookup failed")
	} else {
		detail.Nearby = s.views(nearby, fs, cat)
	}
	return detail, nil
}

// CanonicalForSlug resolves a legacy single-segment slug to the canonical
// hierarchical path. Reserved segments and unknown slugs are not-found.
func (s *QueryService) CanonicalForSlug(ctx context.Context, cat domain.Category, slug string) (string, error) {
	if routing.Reserved(slug) {
		return "", domain.ErrNotFound
	}
	fs, err := s.facilities(ctx, cat)
	if err != nil {
		log.Error().Err(err).Str("slug", slug).Msg("facility fetch failed")
		return "", domain.ErrNotFound
	}
	f, ok := routing.ResolveSlug(slug, fs)
	if !ok {
		return "", domain.ErrNotFound
	}
	return routing.CanonicalPath(Section(cat), f, s.regions), nil
}

// SitemapPaths enumerates every resolvable path for a category: the section
// index, one path per region and city present in the data, and one per
// facility. A store failure yields just the section index.
func (s *QueryService) SitemapPaths(ctx context.Context, cat domain.Category) []string {
	section := "/" + Section(cat)
	paths := []string{section}
	fs, err := s.facilities(ctx, cat)
	if err != nil {
		log.Error().Err(err).Msg("facility fetch failed, sitemap degraded to static paths")
		return paths
	}

	seen := map[string]struct{}{section: {}}
	add := func(p string) {
		if _, ok := seen[p]; !ok {
			seen[p] = struct{}{}
			paths = append(paths, p)
		}
	}
	for _, f := range fs {
		key := s.regions.KeyForCounty(f.County)
		add(section + "/" + key)
		add(section + "/" + key + "/" + routing.Normalize(f.City))
		add(routing.CanonicalPath(Section(cat), f, s.regions))
	}
	return paths
}

func (s *QueryService) views(fs, siblings []domain.Facility, cat domain.Category) []FacilityView {
	out := make([]FacilityView, 0, len(fs))
	for _, f := range fs {
		out = append(out, toView(f, siblings, Section(cat), s.regions))
	}
	return out
}

func ratingOf(f domain.Facility) float64 {
	if f.Rating == nil {
		return 0
	}
	return *f.Rating
}

func topRated(fs []domain.Facility, n int) []domain.Facility {
	sorted := make([]domain.Facility, len(fs))
	copy(sorted, fs)
	sort.Slice(sorted, func(i, j int) bool {
		if ratingOf(sorted[i]) != ratingOf(sorted[j]) {
			return ratingOf(sorted[i]) > ratingOf(sorted[j])
		}
		return sorted[i].ID < sorted[j].ID
	})
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}
