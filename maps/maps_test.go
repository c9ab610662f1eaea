package maps

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestBuildNearbySearch(t *testing.T) {
	got := BuildNearbySearch("Food Spots", "9.93,76.26")
	if got.Query != "Food Spots near 9.93,76.26" {
		t.Errorf("query = %q", got.Query)
	}
	if got.EmbedURL != "https://maps.google.com/maps?q=Food+Spots+near+9.93%2C76.26&t=&z=14&ie=UTF8&iwloc=&output=embed" {
		t.Errorf("embed url = %q", got.EmbedURL)
	}
	if got.MapsURL != "https://www.google.com/maps/search/Food+Spots+near+9.93%2C76.26" {
		t.Errorf("maps url = %q", got.MapsURL)
	}
}

func TestGetNearby(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/maps/nearby?category=Shopping", nil)
	GetNearby(rec, req, nil)

	if rec.Code != http.StatusOK {
		t.Fatalf("status %d, want 200", rec.Code)
	}
	var body struct {
		Data NearbySearch `json:"data"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body.Data.Query != "Shopping near me" {
		t.Errorf("query = %q, want fallback to 'me'", body.Data.Query)
	}
}

func TestGetNearbyRequiresCategory(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/maps/nearby", nil)
	GetNearby(rec, req, nil)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status %d, want 400", rec.Code)
	}
}
