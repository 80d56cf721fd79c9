package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/Clark-Hu/typed-exercises/internal/domain"
	"github.com/Clark-Hu/typed-exercises/internal/exercises"
)

func main() {
	names := flag.String("name", "", "name to greet; a comma-separated list greets each name")
	flag.Parse()

	for _, age := range []float64{15, 35, 70} {
		fmt.Println(exercises.ClassifyAge(age))
	}

	for _, movie := range domain.SampleMovies() {
		fmt.Printf("%s: %d\n", movie.Title(), exercises.Profit(movie))
	}

	fmt.Println(exercises.FormatTotal(exercises.Total(domain.SampleProducts())))

	if *names == "" {
		return
	}
	if err := exercises.Greet(os.Stdout, parseNames(*names)); err != nil {
		log.Fatalf("greet: %v", err)
	}
}

func parseNames(raw string) exercises.Greeting {
	if !strings.Contains(raw, ",") {
		return exercises.Single{Name: strings.TrimSpace(raw)}
	}
	parts := strings.Split(raw, ",")
	names := make([]string, 0, len(parts))
	for _, p := range parts {
		if name := strings.TrimSpace(p); name != "" {
			names = append(names, name)
		}
	}
	return exercises.Many{Names: names}
}
