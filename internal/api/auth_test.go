package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	apierr "github.com/wsapio/wsap-go/client/internal/errors"
	"github.com/wsapio/wsap-go/client/internal/types"
)

func TestGetCurrentUser_Success(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/auth/me/" {
			t.Errorf("path = %q", r.URL.Path)
		}
		_ = json.NewEncoder(w).Encode(types.User{ID: "u1", Email: "ops@acme.example"})
	}))
	defer srv.Close()
	got, err := GetCurrentUser(context.Background(), srv.Client(), srv.URL)
	if err != nil || got.ID != "u1" || got.Email != "ops@acme.example" {
		t.Fatalf("GetCurrentUser unexpected: got=%+v err=%v", got, err)
	}
}

func TestGetCurrentUser_Unauthorized(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()
	if _, err := GetCurrentUser(context.Background(), srv.Client(), srv.URL); !apierr.IsAuthentication(err) {
		t.Fatalf("expected *AuthenticationError, got %v", err)
	}
}
