package exercises

import (
	"fmt"
	"io"
)

// Greeting is either a Single name or Many names.
type Greeting interface {
	isGreeting()
}

// Single greets exactly one name.
type Single struct {
	Name string
}

// Many greets each name in order.
type Many struct {
	Names []string
}

func (Single) isGreeting() {}
func (Many) isGreeting()   {}

// Lines returns the greeting lines for g, one per name.
func Lines(g Greeting) []string {
	switch v := g.(type) {
	case Single:
		return []string{greeting(v.Name)}
	case Many:
		lines := make([]string, 0, len(v.Names))
		for _, name := range v.Names {
			lines = append(lines, greeting(name))
		}
		return lines
	default:
		return nil
	}
}

// Greet writes one line per greeted name to w.
func Greet(w io.Writer, g Greeting) error {
	for _, line := range Lines(g) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return fmt.Errorf("write greeting: %w", err)
		}
	}
	return nil
}

func greeting(name string) string {
	return "Hello, " + name
}
