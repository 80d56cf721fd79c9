package domain

// Product is a named item with a price.
type Product struct {
	Name  string
	Price float64
}

// SampleProducts returns the example shopping list.
func SampleProducts() []Product {
	return []Product{
		{Name: "coffee mug", Price: 11.50},
		{Name: "printer", Price: 29.99},
		{Name: "keyboard", Price: 19.95},
	}
}

// GameBoard is a two dimensional grid of cell labels. The zero value is an
// empty board.
type GameBoard [][]string
