package regions

import (
	"testing"

	"saunaandcold/internal/domain"
)

func TestNewResolver_TableIsValid(t *testing.T) {
	if _, err := NewResolver(); err != nil {
		t.Fatalf("static table rejected: %v", err)
	}
}

func TestNewResolver_RejectsDuplicateCounty(t *testing.T) {
	_, err := newResolver(map[string][]string{
		"devon":    {"Devon", "Taunton"},
		"somerset": {"Somerset", "Taunton"},
	})
	if err == nil {
		t.Fatal("expected error for county mapped under two keys")
	}
}

// Every configured raw county string must resolve back to exactly the key it
// is listed under.
func TestKeyForCounty_TotalOverTable(t *testing.T) {
	r, err := NewResolver()
	if err != nil {
		t.Fatal(err)
	}
	for key, counties := range regionTable {
		for _, c := range counties {
			if got := r.KeyForCounty(c); got != key {
				t.Errorf("KeyForCounty(%q) = %q, want %q", c, got, key)
			}
		}
	}
}

func TestKeyForCounty_FallbackSlug(t *testing.T) {
	r, _ := NewResolver()
	if got := r.KeyForCounty("Rutland"); got != "rutland" {
		t.Fatalf("fallback = %q", got)
	}
	if got := r.KeyForCounty("Isle of Wight"); got != "isle-of-wight" {
		t.Fatalf("fallback = %q", got)
	}
}

func TestCountiesForKey(t *testing.T) {
	r, _ := NewResolver()
	counties, ok := r.CountiesForKey("west-yorkshire")
	if !ok {
		t.Fatal("expected west-yorkshire to exist")
	}
	found := false
	for _, c := range counties {
		if c == "Leeds" {
			found = true
		}
	}
	if !found {
		t.Fatal("expected Leeds under west-yorkshire")
	}
	if _, ok := r.CountiesForKey("narnia"); ok {
		t.Fatal("unknown key must report not found")
	}
}

func TestFilterByRegion(t *testing.T) {
	r, _ := NewResolver()
	fs := []domain.Facility{
		{ID: "a", County: "Leeds"},
		{ID: "b", County: "Bradford"},
		{ID: "c", County: "Cornwall"},
	}
	got := r.FilterByRegion(fs, "west-yorkshire")
	if len(got) != 2 {
		t.Fatalf("got %d facilities, want 2", len(got))
	}

	// unmapped key yields empty, never an error
	if got := r.FilterByRegion(fs, "narnia"); len(got) != 0 {
		t.Fatalf("unmapped key returned %d facilities", len(got))
	}
}

func TestDisplayName(t *testing.T) {
	cases := map[string]string{
		"west-yorkshire":           "West Yorkshire",
		"bristol":                  "Bristol",
		"east-riding-of-yorkshire": "East Riding Of Yorkshire",
	}
	for in, want := range cases {
		if got := DisplayName(in); got != want {
			t.Errorf("DisplayName(%q) = %q, want %q", in, got, want)
		}
	}
}
