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

func TestInitiateVerification_DefaultsToDNSTXT(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/verification/initiate/" {
			t.Errorf("path = %q", r.URL.Path)
		}
		var req types.InitiateVerificationRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		if req.Domain != "acme.example" || req.Method != "dns_txt" {
			t.Errorf("unexpected request: %+v", req)
		}
		_ = json.NewEncoder(w).Encode(types.Verification{
			Domain:         "acme.example",
			Token:          "tok123",
			TXTRecordName:  "_wsap.acme.example",
			TXTRecordValue: "wsap-verify=tok123",
			Status:         "pending",
		})
	}))
	defer srv.Close()
	got, err := InitiateVerification(context.Background(), srv.Client(), srv.URL, "acme.example", "")
	if err != nil {
		t.Fatalf("InitiateVerification: %v", err)
	}
	if got.Token != "tok123" || got.TXTRecordName != "_wsap.acme.example" {
		t.Fatalf("unexpected verification: %+v", got)
	}
}

func TestInitiateVerification_ExplicitMethod(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req types.InitiateVerificationRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		if req.Method != "meta_tag" {
			t.Errorf("method = %q", req.Method)
		}
		_ = json.NewEncoder(w).Encode(types.Verification{Domain: req.Domain, Status: "pending"})
	}))
	defer srv.Close()
	if _, err := InitiateVerification(context.Background(), srv.Client(), srv.URL, "acme.example", "meta_tag"); err != nil {
		t.Fatalf("InitiateVerification: %v", err)
	}
}

func TestVerifyDomain_TruthTable(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name string
		body string
		want bool
	}{
		{"verified true", `{"verified":true}`, true},
		{"verified false", `{"verified":false}`, false},
		{"missing field", `{"status":"pending"}`, false},
		{"extra fields", `{"verified":true,"attempts":3}`, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(tc.body))
			}))
			defer srv.Close()
			got, err := VerifyDomain(context.Background(), srv.Client(), srv.URL, "acme.example")
			if err != nil {
				t.Fatalf("VerifyDomain: %v", err)
			}
			if got != tc.want {
				t.Fatalf("VerifyDomain = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestVerifyDomain_SwallowsAPIErrors(t *testing.T) {
	t.Parallel()
	for _, status := range []int{429, 500, 503} {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
		}))
		got, err := VerifyDomain(context.Background(), srv.Client(), srv.URL, "acme.example")
		srv.Close()
		if err != nil {
			t.Fatalf("status %d must not propagate: %v", status, err)
		}
		if got {
			t.Fatalf("status %d must report unverified", status)
		}
	}
}

func TestVerifyDomain_PropagatesAuthAndNotFound(t *testing.T) {
	t.Parallel()
	srv401 := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv401.Close()
	if _, err := VerifyDomain(context.Background(), srv401.Client(), srv401.URL, "acme.example"); !apierr.IsAuthentication(err) {
		t.Fatalf("expected *AuthenticationError, got %v", err)
	}

	srv404 := httptest.NewServer(http.NotFoundHandler())
	defer srv404.Close()
	if _, err := VerifyDomain(context.Background(), srv404.Client(), srv404.URL, "acme.example"); !apierr.IsNotFound(err) {
		t.Fatalf("expected *NotFoundError, got %v", err)
	}
}

func TestVerifyDomain_PropagatesNoResponseFailures(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close() // connection refused
	_, err := VerifyDomain(context.Background(), http.DefaultClient, srv.URL, "acme.example")
	if err == nil {
		t.Fatalf("transport failure with no response must propagate")
	}
	if !apierr.IsAPI(err) {
		t.Fatalf("expected *APIError, got %v", err)
	}
}
