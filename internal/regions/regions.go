// Package regions translates between the canonical region keys used in URLs
// and the raw, inconsistent county strings stored on facility records.
package regions

import (
	"fmt"
	"sort"
	"strings"

	"saunaandcold/internal/domain"
	"saunaandcold/internal/routing"
)

type Resolver struct {
	table    map[string][]string
	byCounty map[string]string // raw county -> region key, built once
}

// NewResolver builds the resolver from the static table. It fails when a raw
// county string appears under more than one region key: resolution would be
// order-dependent, so a bad table must never reach serving.
func NewResolver() (*Resolver, error) {
	return newResolver(regionTable)
}

func newResolver(table map[string][]string) (*Resolver, error) {
	byCounty := make(map[string]string, len(table)*4)
	for key, counties := range table {
		for _, c := range counties {
			if prev, dup := byCounty[c]; dup {
				return nil, fmt.Errorf("regions: county %q mapped to both %q and %q", c, prev, key)
			}
			byCounty[c] = key
		}
	}
	return &Resolver{table: table, byCounty: byCounty}, nil
}

// KeyForCounty returns the region key whose list contains the raw county
// string (exact, case-sensitive match). Unmapped counties fall back to a
// plain slug of the raw value so they still get a usable (if uncurated) key.
func (r *Resolver) KeyForCounty(raw string) string {
	if key, ok := r.byCounty[raw]; ok {
		return key
	}
	return routing.Normalize(raw)
}

// CountiesForKey returns the configured raw county strings for a region key.
func (r *Resolver) CountiesForKey(key string) ([]string, bool) {
	counties, ok := r.table[key]
	return counties, ok
}

// Keys returns all region keys in sorted order.
func (r *Resolver) Keys() []string {
	keys := make([]string, 0, len(r.table))
	for k := range r.table {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// FilterByRegion returns the facilities whose region key matches, including
// fallback keys for counties absent from the table. A key matching nothing
// yields an empty result, not an error; the caller treats empty as not-found.
func (r *Resolver) FilterByRegion(fs []domain.Facility, key string) []domain.Facility {
	var out []domain.Facility
	for _, f := range fs {
		if r.KeyForCounty(f.County) == key {
			out = append(out, f)
		}
	}
	return out
}

// DisplayName converts a region key to its display form,
// e.g. "west-yorkshire" -> "West Yorkshire".
func DisplayName(key string) string {
	parts := strings.Split(key, "-")
	for i, p := range parts {
		if p == "" {
			continue
		}
		parts[i] = strings.ToUpper(p[:1]) + p[1:]
	}
	return strings.Join(parts, " ")
}
