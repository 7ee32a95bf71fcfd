package app

import (
	"saunaandcold/internal/domain"
	"saunaandcold/internal/regions"
	"saunaandcold/internal/routing"
)

// Read models returned to the HTTP layer. Slugs and paths are computed here
// so handlers never touch the routing rules directly.

type FacilityView struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Slug        string         `json:"slug"`
	Path        string         `json:"path"`
	Description *string        `json:"description,omitempty"`
	Category    string         `json:"category"`
	Address     *string        `json:"address,omitempty"`
	City        string         `json:"city"`
	County      string         `json:"county"`
	Postcode    *string        `json:"postcode,omitempty"`
	Phone       *string        `json:"phone,omitempty"`
	Email       *string        `json:"email,omitempty"`
	Website     *string        `json:"website,omitempty"`
	Coords      *domain.Coords `json:"coords,omitempty"`
	Amenities   []string       `json:"amenities,omitempty"`
	Images      []string       `json:"images,omitempty"`
	Rating      *float64       `json:"rating,omitempty"`
	ReviewCount *int           `json:"review_count,omitempty"`
	PriceRange  *string        `json:"price_range,omitempty"`
	Verified    bool           `json:"verified"`
	Featured    bool           `json:"featured"`
}

type RegionSummary struct {
	Key           string `json:"key"`
	Name          string `json:"name"`
	FacilityCount int    `json:"facility_count"`
}

type RegionIndex struct {
	Regions  []RegionSummary `json:"regions"`
	Total    int             `json:"total"`
	TopRated []FacilityView  `json:"top_rated"`
}

type CityGroup struct {
	Name  string `json:"name"`
	Slug  string `json:"slug"`
	Count int    `json:"count"`
}

type RegionView struct {
	Key           string         `json:"key"`
	Name          string         `json:"name"`
	Total         int            `json:"total"`
	AverageRating float64        `json:"average_rating"`
	Cities        []CityGroup    `json:"cities"`
	Featured      []FacilityView `json:"featured"`
}

type CityView struct {
	RegionKey  string         `json:"region_key"`
	RegionName string         `json:"region_name"`
	City       string         `json:"city"`
	CitySlug   string         `json:"city_slug"`
	Facilities []FacilityView `json:"facilities"`
}

type FacilityDetail struct {
	FacilityView
	Nearby []FacilityView `json:"nearby,omitempty"`
}

func toView(f domain.Facility, siblings []domain.Facility, prefix string, reg *regions.Resolver) FacilityView {
	return FacilityView{
		ID:          f.ID,
		Name:        f.Name,
		Slug:        routing.SlugFor(f, siblings),
		Path:        routing.CanonicalPath(prefix, f, reg),
		Description: f.Description,
		Category:    string(f.Category),
		Address:     f.Address,
		City:        f.City,
		County:      f.County,
		Postcode:    f.Postcode,
		Phone:       f.Phone,
		Email:       f.Email,
		Website:     f.Website,
		Coords:      f.Coords,
		Amenities:   f.Amenities,
		Images:      f.Images,
		Rating:      f.Rating,
		ReviewCount: f.ReviewCount,
		PriceRange:  f.PriceRange,
		Verified:    f.Verified,
		Featured:    f.Featured,
	}
}
