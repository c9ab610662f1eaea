package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/julienschmidt/httprouter"
)

func TestTokenRoundTrip(t *testing.T) {
	token, err := GenerateToken("u123", "asha")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	claims, err := ValidateJWT("Bearer " + token)
	if err != nil {
		t.Fatalf("ValidateJWT: %v", err)
	}
	if claims.UserID != "u123" || claims.Username != "asha" {
		t.Errorf("claims = %q/%q, want u123/asha", claims.UserID, claims.Username)
	}
}

func TestValidateJWTRejectsBadInput(t *testing.T) {
	for _, header := range []string{"", "Bearer ", "Bearer garbage", "Basic abc"} {
		if _, err := ValidateJWT(header); err == nil {
			t.Errorf("ValidateJWT(%q) accepted invalid input", header)
		}
	}
}

func TestAuthenticate(t *testing.T) {
	var gotUserID string
	handler := Authenticate(func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		gotUserID = RequestUserID(r)
		w.WriteHeader(http.StatusOK)
	})

	// no token
	rec := httptest.NewRecorder()
	handler(rec, httptest.NewRequest(http.MethodGet, "/", nil), nil)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("missing token: status %d, want 401", rec.Code)
	}

	// valid token
	token, err := GenerateToken("u42", "ravi")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec = httptest.NewRecorder()
	handler(rec, req, nil)
	if rec.Code != http.StatusOK {
		t.Errorf("valid token: status %d, want 200", rec.Code)
	}
	if gotUserID != "u42" {
		t.Errorf("context user id %q, want u42", gotUserID)
	}
}
