package domain

import "time"

// Category is the fixed facility type enumeration used by the store's
// facility_type column.
type Category string

const (
	CategorySauna          Category = "sauna"
	CategoryColdPlunge     Category = "cold_plunge"
	CategoryIceBath        Category = "ice_bath"
	CategoryWellnessCentre Category = "wellness_centre"
	CategorySpaHotel       Category = "spa_hotel"
	CategoryThermalBath    Category = "thermal_bath"
)

// Categories lists every valid category in declaration order.
var Categories = []Category{
	CategorySauna,
	CategoryColdPlunge,
	CategoryIceBath,
	CategoryWellnessCentre,
	CategorySpaHotel,
	CategoryThermalBath,
}

func ParseCategory(s string) (Category, bool) {
	for _, c := range Categories {
		if string(c) == s {
			return c, true
		}
	}
	return "", false
}

type Facility struct {
	ID          string
	Name        string
	Description *string
	Category    Category
	Address     *string
	City        string
	County      string // free-text as imported; see regions package
	Postcode    *string
	Phone       *string
	Email       *string
	Website     *string
	Coords      *Coords
	Amenities   []string
	Images      []string
	Rating      *float64
	ReviewCount *int
	PriceRange  *string
	Verified    bool
	Featured    bool
	UpdatedAt   time.Time
}

type Coords struct{ Lat, Lon float64 }
