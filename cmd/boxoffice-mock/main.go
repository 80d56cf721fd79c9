package main

import (
	"encoding/json"
	"flag"
	"log"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/Clark-Hu/typed-exercises/internal/boxoffice"
	"github.com/Clark-Hu/typed-exercises/internal/domain"
)

func main() {
	var (
		port   = flag.String("port", "9099", "port to listen on")
		data   = flag.String("data", "", "path to mock data file (defaults to the sample movies)")
		apiKey = flag.String("api-key", "", "required X-API-Key value; empty accepts any key")
		logReq = flag.Bool("log", false, "enable request logging")
	)
	flag.Parse()

	records, err := loadRecords(*data)
	if err != nil {
		log.Fatalf("load mock data: %v", err)
	}

	r := chi.NewRouter()
	if *logReq {
		r.Use(middleware.Logger)
	}
	r.Get("/boxoffice", func(w http.ResponseWriter, r *http.Request) {
		if *apiKey != "" && r.Header.Get("X-API-Key") != *apiKey {
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}
		record, ok := records[r.URL.Query().Get("title")]
		if !ok {
			http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(record); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})

	addr := ":" + *port
	log.Printf("mock boxoffice listening on %s with %d entries", addr, len(records))
	if err := http.ListenAndServe(addr, r); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

// loadRecords reads a title-keyed JSON object of records, or serves the
// sample movies when path is empty.
func loadRecords(path string) (map[string]boxoffice.Record, error) {
	if path == "" {
		records := make(map[string]boxoffice.Record)
		for _, movie := range domain.SampleMovies() {
			records[movie.Title()] = boxoffice.NewRecord(movie)
		}
		return records, nil
	}

	file, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var records map[string]boxoffice.Record
	if err := json.Unmarshal(file, &records); err != nil {
		return nil, err
	}
	return records, nil
}
