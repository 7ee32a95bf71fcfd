package routing

import (
	"sort"
	"strings"

	"saunaandcold/internal/domain"
)

// RegionKeyer is the slice of the regions.Resolver API needed to assemble and
// resolve hierarchical paths.
type RegionKeyer interface {
	KeyForCounty(raw string) string
}

// reservedSegments can never resolve to a facility, even if a facility's
// computed slug happens to collide with one of them.
var reservedSegments = map[string]struct{}{
	"delete": {},
	"edit":   {},
	"new":    {},
	"create": {},
	"admin":  {},
	"api":    {},
}

func Reserved(segment string) bool {
	_, ok := reservedSegments[strings.ToLower(segment)]
	return ok
}

// SlugFor computes the URL slug for f within its sibling set (all facilities
// of the same category). When another sibling normalizes to the same base
// slug, the city slug is appended to disambiguate. The result depends on the
// sibling set: importing a facility with a colliding name changes the slugs
// of the facilities it collides with.
func SlugFor(f domain.Facility, siblings []domain.Facility) string {
	base := Normalize(f.Name)
	for _, s := range siblings {
		if s.ID != f.ID && Normalize(s.Name) == base {
			return base + "-" + Normalize(f.City)
		}
	}
	return base
}

// ResolveSlug resolves a single-segment slug against the sibling set.
// Reserved segments never match. If several facilities produce the same slug
// (name and city both collide), the one with the lowest ID wins so resolution
// stays deterministic regardless of fetch order.
func ResolveSlug(slug string, siblings []domain.Facility) (domain.Facility, bool) {
	if Reserved(slug) {
		return domain.Facility{}, false
	}
	var matches []domain.Facility
	for _, f := range siblings {
		if SlugFor(f, siblings) == slug {
			matches = append(matches, f)
		}
	}
	return pickLowest(matches)
}

// ResolvePath resolves the hierarchical {region}/{city}/{nameSlug} form.
// The region narrows candidates by each facility's region key, the city slug
// by normalized city, and the final segment matches the normalized name
// without any disambiguation suffix (the narrowing already disambiguates).
// Narrowing by key rather than table membership keeps every path emitted by
// CanonicalPath resolvable, including fallback keys for unmapped counties.
func ResolvePath(regionKey, citySlug, nameSlug string, siblings []domain.Facility, regions RegionKeyer) (domain.Facility, bool) {
	var matches []domain.Facility
	for _, f := range siblings {
		if regions.KeyForCounty(f.County) != regionKey {
			continue
		}
		if Normalize(f.City) != citySlug || Normalize(f.Name) != nameSlug {
			continue
		}
		matches = append(matches, f)
	}
	return pickLowest(matches)
}

// CanonicalPath builds the three-segment path for a facility, e.g.
// "/saunas/west-yorkshire/leeds/the-sauna-house".
func CanonicalPath(prefix string, f domain.Facility, regions RegionKeyer) string {
	return "/" + prefix + "/" + regions.KeyForCounty(f.County) + "/" + Normalize(f.City) + "/" + Normalize(f.Name)
}

func pickLowest(matches []domain.Facility) (domain.Facility, bool) {
	if len(matches) == 0 {
		return domain.Facility{}, false
	}
	sort.Slice(matches, func(i, j int) bool { return matches[i].ID < matches[j].ID })
	return matches[0], true
}
