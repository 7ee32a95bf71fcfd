package app

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"saunaandcold/internal/domain"
)

// ---- waitlist ----

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

type WaitlistService struct {
	repo domain.WaitlistRepository
}

// NewWaitlistService accepts a nil repository: signups then fail with
// ErrUnavailable, which the HTTP layer maps to 503. This mirrors running
// without store credentials configured.
func NewWaitlistService(r domain.WaitlistRepository) *WaitlistService {
	return &WaitlistService{repo: r}
}

func (s *WaitlistService) Join(ctx context.Context, email, source string, meta domain.WaitlistMeta) (domain.WaitlistEntry, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if !emailPattern.MatchString(email) {
		return domain.WaitlistEntry{}, domain.ErrInvalidEmail
	}
	if s.repo == nil {
		return domain.WaitlistEntry{}, domain.ErrUnavailable
	}
	if source == "" {
		source = "community_page"
	}
	entry, err := s.repo.InsertSignup(ctx, email, source, meta)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return domain.WaitlistEntry{}, domain.ErrDuplicate
		}
		return domain.WaitlistEntry{}, fmt.Errorf("waitlist insert: %w", err)
	}
	log.Info().Str("email", entry.Email).Str("source", entry.Source).Msg("waitlist signup saved")
	return entry, nil
}

// ---- import ----

type ImportService struct {
	repo  domain.FacilityRepository
	cache domain.Cache
	geo   domain.Geocoder
}

func NewImportService(r domain.FacilityRepository, c domain.Cache, g domain.Geocoder) *ImportService {
	return &ImportService{repo: r, cache: c, geo: g}
}

// FacilityRow is one record of the scraped directory export
// (title, categoryName, city, state, street, phone, website, totalScore,
// reviewsCount, imageUrl).
type FacilityRow struct {
	Title        string
	CategoryName string
	City         string
	State        string
	Street       string
	Phone        string
	Website      string
	TotalScore   string
	ReviewsCount string
	ImageURL     string
}

// ParseCSV reads the export header-first and returns the usable rows plus the
// number skipped for missing essentials (title or city).
func ParseCSV(r io.Reader) ([]FacilityRow, int, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	header, err := cr.Read()
	if err != nil {
		return nil, 0, fmt.Errorf("read csv header: %w", err)
	}
	col := map[string]int{}
	for i, h := range header {
		col[strings.TrimSpace(h)] = i
	}
	field := func(rec []string, name string) string {
		i, ok := col[name]
		if !ok || i >= len(rec) {
			return ""
		}
		return strings.TrimSpace(rec[i])
	}

	var rows []FacilityRow
	skipped := 0
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, 0, fmt.Errorf("read csv record: %w", err)
		}
		row := FacilityRow{
			Title:        field(rec, "title"),
			CategoryName: field(rec, "categoryName"),
			City:         field(rec, "city"),
			State:        field(rec, "state"),
			Street:       field(rec, "street"),
			Phone:        field(rec, "phone"),
			Website:      field(rec, "website"),
			TotalScore:   field(rec, "totalScore"),
			ReviewsCount: field(rec, "reviewsCount"),
			ImageURL:     field(rec, "imageUrl"),
		}
		if row.Title == "" || row.City == "" {
			skipped++
			continue
		}
		rows = append(rows, row)
	}
	return rows, skipped, nil
}

// ImportRow maps a scraped row to a facility, geocodes it when possible, and
// upserts it. Geocoding is best-effort: a miss leaves coordinates nil.
func (s *ImportService) ImportRow(ctx context.Context, row FacilityRow) error {
	f := rowToFacility(row)
	if s.geo != nil {
		coords, err := s.geo.Locate(ctx, f.City, f.County)
		switch {
		case err == nil:
			f.Coords = coords
		case errors.Is(err, domain.ErrNotFound):
			log.Debug().Str("city", f.City).Msg("no coordinates found")
		default:
			log.Warn().Err(err).Str("city", f.City).Msg("geocode failed")
		}
	}
	if err := s.repo.UpsertFacility(ctx, f); err != nil {
		return fmt.Errorf("upsert %q: %w", f.Name, err)
	}
	return nil
}

// InvalidateCategory drops the cached sibling set after an import so readers
// pick up the new data on the next request.
func (s *ImportService) InvalidateCategory(ctx context.Context, cat domain.Category) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Del(ctx, "facilities:"+string(cat)); err != nil {
		log.Warn().Err(err).Str("category", string(cat)).Msg("cache invalidation failed")
	}
}

func rowToFacility(row FacilityRow) domain.Facility {
	f := domain.Facility{
		ID:        uuid.NewString(),
		Name:      row.Title,
		Category:  ClassifyCategory(row.CategoryName, row.Title),
		City:      row.City,
		County:    countyFor(row.City, row.State),
		UpdatedAt: time.Now().UTC(),
	}
	desc := fmt.Sprintf("%s - A %s facility located in %s.", row.Title, orDefault(row.CategoryName, "sauna"), row.City)
	f.Description = &desc
	if row.Street != "" {
		f.Address = &row.Street
	} else {
		addr := row.City + ", UK"
		f.Address = &addr
	}
	if p := cleanPhone(row.Phone); p != "" {
		f.Phone = &p
	}
	if w := cleanWebsite(row.Website); w != "" {
		f.Website = &w
	}
	if row.TotalScore != "" {
		if r, err := strconv.ParseFloat(row.TotalScore, 64); err == nil {
			f.Rating = &r
		}
	}
	rc := 0
	if row.ReviewsCount != "" {
		if n, err := strconv.Atoi(row.ReviewsCount); err == nil {
			rc = n
		}
	}
	f.ReviewCount = &rc
	if row.ImageURL != "" {
		f.Images = []string{row.ImageURL}
	}
	return f
}

// ClassifyCategory derives the facility type from the scraped category and
// name, defaulting to sauna.
func ClassifyCategory(categoryName, title string) domain.Category {
	cat := strings.ToLower(categoryName)
	name := strings.ToLower(title)
	has := func(sub string) bool { return strings.Contains(cat, sub) || strings.Contains(name, sub) }
	switch {
	case has("cold") || strings.Contains(name, "plunge"):
		return domain.CategoryColdPlunge
	case has("ice"):
		return domain.CategoryIceBath
	case has("spa"):
		return domain.CategorySpaHotel
	case has("wellness"):
		return domain.CategoryWellnessCentre
	case has("thermal"):
		return domain.CategoryThermalBath
	default:
		return domain.CategorySauna
	}
}

// countyFor prefers the export's state column, then a small city fallback
// table for exports that leave it blank.
func countyFor(city, state string) string {
	if state != "" {
		return state
	}
	if county, ok := cityCounty[city]; ok {
		return county
	}
	if city != "" {
		return city
	}
	return "Unknown"
}

var cityCounty = map[string]string{
	"London":     "Greater London",
	"Birmingham": "West Midlands",
	"Manchester": "Greater Manchester",
	"Liverpool":  "Merseyside",
	"Leeds":      "West Yorkshire",
	"Sheffield":  "South Yorkshire",
	"Bristol":    "Bristol",
	"Brighton":   "East Sussex",
	"Edinburgh":  "Edinburgh",
	"Glasgow":    "Glasgow",
	"Cardiff":    "Cardiff",
	"Swansea":    "Swansea",
	"Newcastle":  "Tyne and Wear",
	"Plymouth":   "Devon",
	"Norwich":    "Norfolk",
	"Chester":    "Cheshire",
	"Cheltenham": "Gloucestershire",
	"Aberdeen":   "Aberdeenshire",
	"Thurso":     "Highland",
	"Portree":    "Highland",
	"Eastbourne": "East Sussex",
	"Worthing":   "West Sussex",
	"Saint Ives": "Cornwall",
	"Helston":    "Cornwall",
	"Elgin":      "Moray",
	"Greenock":   "Inverclyde",
	"Largs":      "North Ayrshire",
	"Barry":      "Vale of Glamorgan",
}

func cleanPhone(p string) string {
	p = strings.TrimSpace(p)
	if p == "" || p == "#ERROR!" {
		return ""
	}
	return p
}

func cleanWebsite(w string) string {
	w = strings.TrimSpace(w)
	if w == "" {
		return ""
	}
	if !strings.HasPrefix(w, "http://") && !strings.HasPrefix(w, "https://") {
		return "https://" + w
	}
	return w
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
