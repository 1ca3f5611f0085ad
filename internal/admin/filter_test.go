package admin

import (
	"reflect"
	"testing"

	"backoffice/internal/domain/models"
)

var filterCountries = []models.Country{
	{ID: 1, Name: "United Arab Emirates", Code: "UAE"},
	{ID: 2, Name: "Saudi Arabia", Code: "KSA"},
	{ID: 3, Name: "United Kingdom", Code: "UK"},
}

func countryFields(c models.Country) []string {
	return []string{c.Name, c.Code}
}

func TestFilterEmptyTermReturnsInput(t *testing.T) {
	got := Filter(filterCountries, "", countryFields)
	if !reflect.DeepEqual(got, filterCountries) {
		t.Fatalf("empty term must return the input unchanged")
	}
}

func TestFilterCaseInsensitiveSubstring(t *testing.T) {
	got := Filter(filterCountries, "united", countryFields)
	if len(got) != 2 {
		t.Fatalf("got %d matches, want 2", len(got))
	}
	got = Filter(filterCountries, "ksa", countryFields)
	if len(got) != 1 || got[0].ID != 2 {
		t.Fatalf("code match failed: %+v", got)
	}
}

func TestFilterIdempotent(t *testing.T) {
	once := Filter(filterCountries, "united", countryFields)
	twice := Filter(once, "united", countryFields)
	if !reflect.DeepEqual(once, twice) {
		t.Fatalf("filtering twice with the same term changed the result")
	}
}

func TestFilterNoMatch(t *testing.T) {
	got := Filter(filterCountries, "zzz", countryFields)
	if len(got) != 0 {
		t.Fatalf("got %d matches, want 0", len(got))
	}
}
