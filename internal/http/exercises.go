package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/Clark-Hu/typed-exercises/internal/boxoffice"
	"github.com/Clark-Hu/typed-exercises/internal/domain"
	"github.com/Clark-Hu/typed-exercises/internal/exercises"
)

type ageRequest struct {
	Age *float64 `json:"age"`
}

type ageResponse struct {
	Age   float64 `json:"age"`
	Group string  `json:"group"`
}

type boxOfficeRequest struct {
	Budget         int64 `json:"budget"`
	GrossUS        int64 `json:"grossUS"`
	GrossWorldwide int64 `json:"grossWorldwide"`
}

type movieRequest struct {
	Title         string           `json:"title"`
	OriginalTitle *string          `json:"originalTitle"`
	Director      string           `json:"director"`
	ReleaseYear   int              `json:"releaseYear"`
	BoxOffice     boxOfficeRequest `json:"boxOffice"`
}

type movieProfitResponse struct {
	Title         string  `json:"title"`
	OriginalTitle *string `json:"originalTitle,omitempty"`
	Profit        int64   `json:"profit"`
}

type movieSamplesResponse struct {
	Items []movieProfitResponse `json:"items"`
}

type productRequest struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

type productTotalRequest struct {
	Products []productRequest `json:"products"`
}

type productTotalResponse struct {
	Total     float64 `json:"total"`
	Formatted string  `json:"formatted"`
}

type greetRequest struct {
	Name json.RawMessage `json:"name"`
}

type greetResponse struct {
	Lines []string `json:"lines"`
}

func (s *Server) handleClassifyAge(w http.ResponseWriter, r *http.Request) {
	var req ageRequest
	if err := decodeJSONBody(w, r, &req); err != nil {
		s.respondDecodeError(w, err)
		return
	}
	if req.Age == nil {
		s.respondError(w, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "age is required")
		return
	}

	s.respondJSON(w, http.StatusOK, ageResponse{
		Age:   *req.Age,
		Group: string(exercises.ClassifyAge(*req.Age)),
	})
}

func (s *Server) handleMovieProfit(w http.ResponseWriter, r *http.Request) {
	var req movieRequest
	if err := decodeJSONBody(w, r, &req); err != nil {
		s.respondDecodeError(w, err)
		return
	}

	s.respondJSON(w, http.StatusOK, toMovieProfitResponse(req.toMovie()))
}

func (s *Server) handleSampleMovies(w http.ResponseWriter, r *http.Request) {
	samples := domain.SampleMovies()
	items := make([]movieProfitResponse, 0, len(samples))
	for _, movie := range samples {
		items = append(items, toMovieProfitResponse(movie))
	}
	s.respondJSON(w, http.StatusOK, movieSamplesResponse{Items: items})
}

func (s *Server) handleProfitByTitle(w http.ResponseWriter, r *http.Request) {
	title, err := decodeTitleParam(r)
	if err != nil {
		s.respondError(w, http.StatusBadRequest, "BAD_REQUEST", err.Error())
		return
	}
	if s.boxOffice == nil {
		s.respondError(w, http.StatusServiceUnavailable, "UNAVAILABLE", "Box office lookup is not configured")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), time.Duration(s.cfg.BoxOfficeTimeoutSecs)*time.Second)
	defer cancel()

	movie, err := s.boxOffice.Fetch(ctx, title)
	if err != nil {
		if errors.Is(err, boxoffice.ErrNotFound) {
			s.respondError(w, http.StatusNotFound, "NOT_FOUND", "Resource not found")
			return
		}
		s.logger.Printf("boxoffice fetch failed for %s: %v", title, err)
		s.respondError(w, http.StatusBadGateway, "UPSTREAM_ERROR", "Failed to fetch box office data")
		return
	}

	s.respondJSON(w, http.StatusOK, toMovieProfitResponse(movie))
}

func (s *Server) handleProductTotal(w http.ResponseWriter, r *http.Request) {
	var req productTotalRequest
	if err := decodeJSONBody(w, r, &req); err != nil {
		s.respondDecodeError(w, err)
		return
	}

	products := make([]domain.Product, 0, len(req.Products))
	for _, p := range req.Products {
		products = append(products, domain.Product{Name: p.Name, Price: p.Price})
	}

	total := exercises.Total(products)
	s.respondJSON(w, http.StatusOK, productTotalResponse{
		Total:     total,
		Formatted: exercises.FormatTotal(total),
	})
}

func (s *Server) handleGreet(w http.ResponseWriter, r *http.Request) {
	var req greetRequest
	if err := decodeJSONBody(w, r, &req); err != nil {
		s.respondDecodeError(w, err)
		return
	}

	greeting, err := parseGreeting(req.Name)
	if err != nil {
		s.respondError(w, http.StatusUnprocessableEntity, "VALIDATION_ERROR", err.Error())
		return
	}

	lines := exercises.Lines(greeting)
	if lines == nil {
		lines = []string{}
	}
	s.respondJSON(w, http.StatusOK, greetResponse{Lines: lines})
}

// parseGreeting accepts either a JSON string or a JSON array of strings.
func parseGreeting(raw json.RawMessage) (exercises.Greeting, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, fmt.Errorf("name is required")
	}

	var single string
	if err := json.Unmarshal(raw, &single); err == nil {
		return exercises.Single{Name: single}, nil
	}

	var many []string
	if err := json.Unmarshal(raw, &many); err == nil {
		return exercises.Many{Names: many}, nil
	}

	return nil, fmt.Errorf("name must be a string or an array of strings")
}

func (req movieRequest) toMovie() domain.Movie {
	movie := domain.NewMovie(req.Title, req.Director, req.ReleaseYear, domain.BoxOffice{
		Budget:         req.BoxOffice.Budget,
		GrossUS:        req.BoxOffice.GrossUS,
		GrossWorldwide: req.BoxOffice.GrossWorldwide,
	})
	if req.OriginalTitle != nil {
		movie = movie.WithOriginalTitle(*req.OriginalTitle)
	}
	return movie
}

func toMovieProfitResponse(movie domain.Movie) movieProfitResponse {
	return movieProfitResponse{
		Title:         movie.Title(),
		OriginalTitle: movie.OriginalTitle,
		Profit:        exercises.Profit(movie),
	}
}

func decodeTitleParam(r *http.Request) (string, error) {
	raw := chi.URLParam(r, "title")
	if raw == "" {
		return "", fmt.Errorf("missing title parameter")
	}
	title, err := url.PathUnescape(raw)
	if err != nil {
		return "", fmt.Errorf("invalid title parameter")
	}
	return title, nil
}
