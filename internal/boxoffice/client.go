package boxoffice

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/Clark-Hu/typed-exercises/internal/domain"
)

// ErrNotFound is returned when upstream cannot find the requested movie.
var ErrNotFound = errors.New("boxoffice: not found")

// Client defines the contract for querying the upstream box office API.
type Client interface {
	Fetch(ctx context.Context, title string) (domain.Movie, error)
}

// HTTPClient implements Client over HTTP.
type HTTPClient struct {
	baseURL *url.URL
	apiKey  string
	client  *http.Client
	logger  *log.Logger
}

// NewHTTPClient constructs a new HTTP-backed box office client.
func NewHTTPClient(baseURL, apiKey string, timeout time.Duration, logger *log.Logger) (*HTTPClient, error) {
	if logger == nil {
		logger = log.Default()
	}
	parsed, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("parse box office url: %w", err)
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return nil, fmt.Errorf("parse box office url: %q is not absolute", baseURL)
	}
	return &HTTPClient{
		baseURL: parsed,
		apiKey:  apiKey,
		client: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				Proxy: http.ProxyFromEnvironment,
				DialContext: (&net.Dialer{
					Timeout:   timeout,
					KeepAlive: 30 * time.Second,
				}).DialContext,
				TLSHandshakeTimeout:   timeout,
				ResponseHeaderTimeout: timeout,
				ExpectContinueTimeout: 1 * time.Second,
			},
		},
		logger: logger,
	}, nil
}

// Fetch retrieves a movie's box office record by title.
func (c *HTTPClient) Fetch(ctx context.Context, title string) (domain.Movie, error) {
	rel := &url.URL{Path: c.baseURL.Path + "/boxoffice"}
	q := rel.Query()
	q.Set("title", title)
	rel.RawQuery = q.Encode()
	endpoint := c.baseURL.ResolveReference(rel)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return domain.Movie{}, err
	}
	req.Header.Set("X-API-Key", c.apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return domain.Movie{}, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		var payload Record
		if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
			return domain.Movie{}, fmt.Errorf("decode box office response: %w", err)
		}
		return payload.toMovie(title), nil
	case http.StatusNotFound:
		return domain.Movie{}, ErrNotFound
	default:
		c.logger.Printf("boxoffice: unexpected status %d for title %q", resp.StatusCode, title)
		return domain.Movie{}, fmt.Errorf("boxoffice: upstream returned %d", resp.StatusCode)
	}
}

// Record is the upstream wire shape of a movie.
type Record struct {
	Title          string  `json:"title"`
	OriginalTitle  *string `json:"originalTitle,omitempty"`
	Director       string  `json:"director"`
	ReleaseYear    int     `json:"releaseYear"`
	Budget         *int64  `json:"budget"`
	GrossUS        *int64  `json:"grossUS"`
	GrossWorldwide *int64  `json:"grossWorldwide"`
}

// NewRecord converts a movie into its upstream wire shape.
func NewRecord(movie domain.Movie) Record {
	return Record{
		Title:          movie.Title(),
		OriginalTitle:  movie.OriginalTitle,
		Director:       movie.Director,
		ReleaseYear:    movie.ReleaseYear,
		Budget:         &movie.BoxOffice.Budget,
		GrossUS:        &movie.BoxOffice.GrossUS,
		GrossWorldwide: &movie.BoxOffice.GrossWorldwide,
	}
}

// toMovie falls back to the requested title when upstream omits it and
// treats missing figures as zero.
func (r Record) toMovie(requested string) domain.Movie {
	title := r.Title
	if strings.TrimSpace(title) == "" {
		title = requested
	}

	movie := domain.NewMovie(title, r.Director, r.ReleaseYear, domain.BoxOffice{
		Budget:         derefInt64(r.Budget),
		GrossUS:        derefInt64(r.GrossUS),
		GrossWorldwide: derefInt64(r.GrossWorldwide),
	})
	if r.OriginalTitle != nil && *r.OriginalTitle != "" {
		movie = movie.WithOriginalTitle(*r.OriginalTitle)
	}
	return movie
}

func derefInt64(ptr *int64) int64 {
	if ptr == nil {
		return 0
	}
	return *ptr
}
