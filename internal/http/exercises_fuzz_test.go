package httpserver

import (
	"encoding/json"
	"testing"
)

func FuzzParseGreeting(f *testing.F) {
	seeds := []string{
		`"Sam"`,
		`["Sam","Lee"]`,
		`[]`,
		`null`,
		`42`,
		``,
	}
	for _, seed := range seeds {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, raw string) {
		_, _ = parseGreeting(json.RawMessage(raw))
	})
}
