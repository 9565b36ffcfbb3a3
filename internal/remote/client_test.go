package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"quizmaker/internal/fixtures"
	"quizmaker/internal/models"
)

func newTestServer(t *testing.T, wantAuth string) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("GET /tests/{id}", func(w http.ResponseWriter, r *http.Request) {
		if wantAuth != "" && r.Header.Get("Authorization") != wantAuth {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		switch r.PathValue("id") {
		case fixtures.SampleTestID:
			json.NewEncoder(w).Encode(fixtures.SampleTest())
		case "broken":
			w.Write([]byte("{not json"))
		case "huge":
			w.Write([]byte(`{"id":"huge","name":"`))
			w.Write(bytes.Repeat([]byte("a"), maxBodyBytes))
			w.Write([]byte(`"}`))
		default:
			http.NotFound(w, r)
		}
	})
	mux.HandleFunc("GET /tests", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(fixtures.DefaultTests())
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestClientGetTest(t *testing.T) {
	srv := newTestServer(t, "")
	c := NewClient(srv.URL+"/", Credentials{})

	test, err := c.GetTest(context.Background(), fixtures.SampleTestID)
	if err != nil {
		t.Fatalf("GetTest() error = %v", err)
	}
	if test.Name != "JavaScript Fundamentals Quiz" || len(test.Questions) != 5 {
		t.Errorf("GetTest() = %+v", test)
	}

	tests := []struct {
		name    string
		id      string
		wantErr error
	}{
		{"missing", "nope", models.ErrTestNotFound},
		{"empty id", "", models.ErrTestNotFound},
		{"bad body", "broken", nil},
		{"oversized body", "huge", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := c.GetTest(context.Background(), tt.id)
			if err == nil {
				t.Fatal("expected error")
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("GetTest() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestClientListTests(t *testing.T) {
	srv := newTestServer(t, "")

	tests, err := NewClient(srv.URL, Credentials{}).ListTests(context.Background())
	if err != nil {
		t.Fatalf("ListTests() error = %v", err)
	}
	if len(tests) != 1 || tests[0].ID != fixtures.SampleTestID {
		t.Errorf("ListTests() = %+v", tests)
	}
}

func TestClientUsesClientCredentials(t *testing.T) {
	var tokenRequests int32
	tokenSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&tokenRequests, 1)
		if err := r.ParseForm(); err != nil || r.Form.Get("grant_type") != "client_credentials" {
			http.Error(w, "bad grant", http.StatusBadRequest)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"access_token":"abc123","token_type":"Bearer","expires_in":3600}`))
	}))
	defer tokenSrv.Close()

	srv := newTestServer(t, "Bearer abc123")
	c := NewClient(srv.URL, Credentials{TokenURL: tokenSrv.URL, ClientID: "quiz", ClientSecret: "s3cret"})

	for i := 0; i < 2; i++ {
		if _, err := c.GetTest(context.Background(), fixtures.SampleTestID); err != nil {
			t.Fatalf("GetTest() error = %v", err)
		}
	}
	if n := atomic.LoadInt32(&tokenRequests); n != 1 {
		t.Errorf("token requests = %d, want 1 (token should be cached)", n)
	}
}
