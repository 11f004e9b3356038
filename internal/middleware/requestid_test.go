package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
)

func TestRequestID(t *testing.T) {
	var gotID string
	handler := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotID = RequestIDFromContext(r.Context())
	}))

	t.Run("valid client id is honored", func(t *testing.T) {
		clientID := uuid.NewString()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Request-ID", clientID)
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		if gotID != clientID {
			t.Fatalf("context id = %q, want %q", gotID, clientID)
		}
		if rr.Header().Get("X-Request-ID") != clientID {
			t.Fatalf("header id = %q, want %q", rr.Header().Get("X-Request-ID"), clientID)
		}
	})

	t.Run("malformed client id is replaced", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Request-ID", "not-a-uuid")
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		if gotID == "not-a-uuid" {
			t.Fatal("malformed client id was kept")
		}
		if _, err := uuid.Parse(gotID); err != nil {
			t.Fatalf("generated id %q not a uuid: %v", gotID, err)
		}
	})

	t.Run("missing id is generated", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		if _, err := uuid.Parse(gotID); err != nil {
			t.Fatalf("generated id %q not a uuid: %v", gotID, err)
		}
		if rr.Header().Get("X-Request-ID") != gotID {
			t.Fatal("response header does not match context id")
		}
	})
}
