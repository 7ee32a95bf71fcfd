package postgres

const facilityColumns = `
  id::text,
  name,
  description,
  facility_type,
  address,
  city,
  county,
  postcode,
  phone,
  email,
  website,
  latitude,
  longitude,
  amenities,
  images,
  rating,
  review_count,
  price_range,
  verified,
  featured,
  updated_at`

const listByCategorySQL = `
SELECT` + facilityColumns + `
FROM facilities
WHERE facility_type = $1
ORDER BY name, id
`

// Used for "nearby" suggestions: same raw county, excluding the facility
// itself, best-rated first.
const nearbySQL = `
SELECT` + facilityColumns + `
FROM facilities
WHERE facility_type = $1
  AND county = $2
  AND id::text <> $3
ORDER BY rating DESC NULLS LAST, id
LIMIT $4
`

const upsertFacilitySQL = `
INSERT INTO facilities
  (id, name, description, facility_type, address, city, county, postcode,
   phone, email, website, latitude, longitude, amenities, images,
   rating, review_count, price_range, verified, featured)
VALUES
  ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20)
ON CONFLICT (id) DO UPDATE SET
  name         = EXCLUDED.name,
  description  = EXCLUDED.description,
  facility_type = EXCLUDED.facility_type,
  address      = EXCLUDED.address,
  city         = EXCLUDED.city,
  county       = EXCLUDED.county,
  postcode     = EXCLUDED.postcode,
  phone        = EXCLUDED.phone,
  email        = EXCLUDED.email,
  website      = EXCLUDED.website,
  latitude     = EXCLUDED.latitude,
  longitude    = EXCLUDED.longitude,
  amenities    = EXCLUDED.amenities,
  images       = EXCLUDED.images,
  rating       = EXCLUDED.rating,
  review_count = EXCLUDED.review_count,
  price_range  = EXCLUDED.price_range,
  verified     = EXCLUDED.verified,
  featured     = EXCLUDED.featured,
  updated_at   = NOW()
`

const insertSignupSQL = `
INSERT INTO waitlist (email, source, metadata)
VALUES ($1, $2, $3)
RETURNING id::text, email, source, created_at
`
