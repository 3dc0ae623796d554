package backend

import (
	"context"
	"errors"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"medicare-gateway/internal/domain"
)

func logDiscard() *log.Logger {
	return log.New(io.Discard, "", 0)
}

func newTestClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, 2*time.Second, logDiscard()), srv
}

func TestDoDecodesEnvelope(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"data":{"id":"c1","name":"Medical"}}`)
	}))

	var out domain.Category
	if err := client.do(context.Background(), "GET", "/api/category", "", nil, &out); err != nil {
		t.Fatalf("do: %v", err)
	}
	if out.ID != "c1" || out.Name != "Medical" {
		t.Fatalf("unexpected payload %+v", out)
	}
}

func TestDoForwardsCookie(t *testing.T) {
	var gotCookie string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotCookie = r.Header.Get("Cookie")
		io.WriteString(w, `{"data":{}}`)
	}))

	var out struct{}
	if err := client.do(context.Background(), "GET", "/user", "session=abc", nil, &out); err != nil {
		t.Fatalf("do: %v", err)
	}
	if gotCookie != "session=abc" {
		t.Fatalf("expected cookie forwarded, got %q", gotCookie)
	}
}

func TestDoMapsNotFound(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))

	var out struct{}
	err := client.do(context.Background(), "GET", "/medicine/missing", "", nil, &out)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDoMapsUnauthorized(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))

	var out struct{}
	err := client.do(context.Background(), "GET", "/user", "", nil, &out)
	if !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestDoSurfacesBackendMessage(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		io.WriteString(w, `{"message":"insufficient stock"}`)
	}))

	var out struct{}
	err := client.do(context.Background(), "POST", "/api/order", "", map[string]string{}, &out)
	if err == nil || !errors.Is(err, domain.ErrBackend) {
		t.Fatalf("expected backend error, got %v", err)
	}
	if got := err.Error(); got != "backend error: insufficient stock" {
		t.Fatalf("unexpected message %q", got)
	}
}

func TestDoNullDataIsNotFound(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"data":null}`)
	}))

	var out struct{}
	err := client.do(context.Background(), "GET", "/medicine/x", "", nil, &out)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for null data, got %v", err)
	}
}

func TestToCents(t *testing.T) {
	tests := []struct {
		price float64
		want  int64
	}{
		{12.0, 1200},
		{2.5, 250},
		{0.1 + 0.2, 30},
		{45.99, 4599},
		{0, 0},
	}
	for _, tc := range tests {
		if got := toCents(tc.price); got != tc.want {
			t.Fatalf("toCents(%v) = %d, want %d", tc.price, got, tc.want)
		}
	}
}

func TestPing(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"data":[]}`)
	}))
	if err := client.Ping(context.Background()); err != nil {
		t.Fatalf("ping: %v", err)
	}
}

func TestPingBackendDown(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	if err := client.Ping(context.Background()); !errors.Is(err, domain.ErrBackend) {
		t.Fatalf("expected backend error, got %v", err)
	}
}
