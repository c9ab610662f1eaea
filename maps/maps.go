package maps

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"sanchaari/utils"

	"github.com/julienschmidt/httprouter"
)

// NearbySearch holds the map URLs for a "category near location" lookup.
type NearbySearch struct {
	Query    string `json:"query"`
	EmbedURL string `json:"embed_url"`
	MapsURL  string `json:"maps_url"`
}

// BuildNearbySearch composes the embeddable and deep-link Google Maps URLs
// for a category near a location. Location may be free text, "lat,lng"
// coordinates, or "me" when the caller couldn't resolve a position.
func BuildNearbySearch(category, near string) NearbySearch {
	query := fmt.Sprintf("%s near %s", category, near)
	encoded := url.QueryEscape(query)
	return NearbySearch{
		Query:    query,
		EmbedURL: fmt.Sprintf("https://maps.google.com/maps?q=%s&t=&z=14&ie=UTF8&iwloc=&output=embed", encoded),
		MapsURL:  fmt.Sprintf("https://www.google.com/maps/search/%s", encoded),
	}
}

// GET /api/maps/nearby?category=...&near=...
func GetNearby(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	category := strings.TrimSpace(r.URL.Query().Get("category"))
	if category == "" {
		utils.Error(w, http.StatusBadRequest, "Category is required")
		return
	}
	near := strings.TrimSpace(r.URL.Query().Get("near"))
	if near == "" {
		near = "me"
	}

	utils.JSON(w, http.StatusOK, BuildNearbySearch(category, near))
}
