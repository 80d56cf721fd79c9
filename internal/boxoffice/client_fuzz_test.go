package boxoffice

import (
	"testing"
)

func FuzzRecordToMovie(f *testing.F) {
	f.Add("Cats", "", int64(95000000), int64(73833348), "Cats")
	f.Add("", "Dune Part One", int64(165000000), int64(400671789), "Dune")

	f.Fuzz(func(t *testing.T, title, originalTitle string, budget, worldwide int64, requested string) {
		rec := Record{
			Title:          title,
			OriginalTitle:  optionalString(originalTitle),
			Budget:         &budget,
			GrossWorldwide: &worldwide,
		}
		if worldwide%2 == 0 {
			rec.GrossWorldwide = nil
		}

		movie := rec.toMovie(requested)
		if rec.GrossWorldwide == nil && movie.BoxOffice.GrossWorldwide != 0 {
			t.Fatalf("missing worldwide gross should default to zero")
		}
		if movie.BoxOffice.Budget != budget {
			t.Fatalf("budget = %d, want %d", movie.BoxOffice.Budget, budget)
		}
		if originalTitle == "" && movie.OriginalTitle != nil {
			t.Fatalf("empty original title should stay unset")
		}
	})
}

func optionalString(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}
