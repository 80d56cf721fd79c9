package boxoffice

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Clark-Hu/typed-exercises/internal/domain"
)

func newTestUpstream(t *testing.T, apiKey string) *httptest.Server {
	t.Helper()
	records := map[string]Record{}
	for _, m := range domain.SampleMovies() {
		records[m.Title()] = NewRecord(m)
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/boxoffice" {
			http.NotFound(w, r)
			return
		}
		if r.Header.Get("X-API-Key") != apiKey {
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}
		rec, ok := records[r.URL.Query().Get("title")]
		if !ok {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(rec)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func newTestClient(t *testing.T, baseURL, apiKey string) *HTTPClient {
	t.Helper()
	client, err := NewHTTPClient(baseURL, apiKey, time.Second, log.New(io.Discard, "", 0))
	if err != nil {
		t.Fatalf("create http client: %v", err)
	}
	return client
}

func TestHTTPClientFetch(t *testing.T) {
	upstream := newTestUpstream(t, "key")
	client := newTestClient(t, upstream.URL, "key")

	movie, err := client.Fetch(context.Background(), "Dune")
	if err != nil {
		t.Fatalf("Fetch() unexpected error: %v", err)
	}
	if movie.Title() != "Dune" {
		t.Fatalf("Title() = %q, want Dune", movie.Title())
	}
	if movie.OriginalTitle == nil || *movie.OriginalTitle != "Dune Part One" {
		t.Fatalf("OriginalTitle = %v, want Dune Part One", movie.OriginalTitle)
	}
	if movie.BoxOffice != domain.Dune().BoxOffice {
		t.Fatalf("BoxOffice = %+v, want %+v", movie.BoxOffice, domain.Dune().BoxOffice)
	}
}

func TestHTTPClientFetchNotFound(t *testing.T) {
	upstream := newTestUpstream(t, "key")
	client := newTestClient(t, upstream.URL, "key")

	_, err := client.Fetch(context.Background(), "Nope")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("Fetch() error = %v, want ErrNotFound", err)
	}
}

func TestHTTPClientFetchUpstreamError(t *testing.T) {
	upstream := newTestUpstream(t, "key")
	client := newTestClient(t, upstream.URL, "wrong")

	_, err := client.Fetch(context.Background(), "Cats")
	if err == nil || errors.Is(err, ErrNotFound) {
		t.Fatalf("Fetch() error = %v, want upstream error", err)
	}
}

func TestNewHTTPClientRejectsRelativeURL(t *testing.T) {
	if _, err := NewHTTPClient("boxoffice.local", "key", time.Second, nil); err == nil {
		t.Fatalf("expected error for relative url")
	}
}
