package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/crucial707/recipe-share/internal/token"
)

func authTestHandler(t *testing.T, wantUserID string, called *bool) http.Handler {
	t.Helper()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*called = true
		id, ok := UserIDFromContext(r.Context())
		if !ok {
			t.Error("expected user id in context")
		}
		if id != wantUserID {
			t.Errorf("user id: got %q, want %q", id, wantUserID)
		}
		w.WriteHeader(http.StatusOK)
	})
}

func TestRequireAuth_ValidToken(t *testing.T) {
	tokens := token.NewService([]byte("test-secret"), time.Hour)
	signed, err := tokens.Issue("64f1b2a3c4d5e6f708091a0b")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	called := false
	h := RequireAuth(tokens)(authTestHandler(t, "64f1b2a3c4d5e6f708091a0b", &called))

	req := httptest.NewRequest("POST", "/recipes", nil)
	req.Header.Set("Authorization", "Bearer "+signed)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Errorf("status: got %d, want 200", rr.Code)
	}
	if !called {
		t.Error("expected downstream handler to run")
	}
}

func TestRequireAuth_Rejections(t *testing.T) {
	tokens := token.NewService([]byte("test-secret"), time.Hour)
	expired, err := token.NewService([]byte("test-secret"), -time.Minute).Issue("64f1b2a3c4d5e6f708091a0b")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	otherSecret, err := token.NewService([]byte("other-secret"), time.Hour).Issue("64f1b2a3c4d5e6f708091a0b")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	cases := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"not bearer", "Basic abc"},
		{"empty bearer", "Bearer "},
		{"malformed token", "Bearer garbage"},
		{"expired token", "Bearer " + expired},
		{"wrong secret", "Bearer " + otherSecret},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			called := false
			h := RequireAuth(tokens)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				called = true
			}))

			req := httptest.NewRequest("POST", "/recipes", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			rr := httptest.NewRecorder()
			h.ServeHTTP(rr, req)

			if rr.Code != http.StatusUnauthorized {
				t.Errorf("status: got %d, want 401", rr.Code)
			}
			if called {
				t.Error("downstream handler must not run")
			}
			var body map[string]string
			if err := json.NewDecoder(rr.Body).Decode(&body); err != nil {
				t.Fatalf("decode body: %v", err)
			}
			if body["error"] == "" {
				t.Error("expected JSON error body")
			}
		})
	}
}
