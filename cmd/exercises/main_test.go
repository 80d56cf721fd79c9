package main

import (
	"reflect"
	"testing"

	"github.com/Clark-Hu/typed-exercises/internal/exercises"
)

func TestParseNames(t *testing.T) {
	tests := []struct {
		raw  string
		want exercises.Greeting
	}{
		{"Sam", exercises.Single{Name: "Sam"}},
		{" Sam ", exercises.Single{Name: "Sam"}},
		{"Sam,Lee", exercises.Many{Names: []string{"Sam", "Lee"}}},
		{"Sam, ,Lee,", exercises.Many{Names: []string{"Sam", "Lee"}}},
		{",", exercises.Many{Names: []string{}}},
	}
	for _, tt := range tests {
		if got := parseNames(tt.raw); !reflect.DeepEqual(got, tt.want) {
			t.Fatalf("parseNames(%q) = %#v, want %#v", tt.raw, got, tt.want)
		}
	}
}
