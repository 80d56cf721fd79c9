package domain

// BoxOffice holds the nested box office figures of a movie.
type BoxOffice struct {
	Budget         int64
	GrossUS        int64
	GrossWorldwide int64
}

// Movie represents a single film. The title is fixed at construction and is
// only readable through Title.
type Movie struct {
	title         string
	OriginalTitle *string
	Director      string
	ReleaseYear   int
	BoxOffice     BoxOffice
}

// NewMovie builds a movie with the given title.
func NewMovie(title, director string, releaseYear int, boxOffice BoxOffice) Movie {
	return Movie{
		title:       title,
		Director:    director,
		ReleaseYear: releaseYear,
		BoxOffice:   boxOffice,
	}
}

// Title returns the movie's title.
func (m Movie) Title() string {
	return m.title
}

// WithOriginalTitle returns a copy of the movie carrying an alternate title.
func (m Movie) WithOriginalTitle(originalTitle string) Movie {
	m.OriginalTitle = &originalTitle
	return m
}

// Dune is the sample movie released with an alternate title.
func Dune() Movie {
	return NewMovie("Dune", "Denis Villeneuve", 2021, BoxOffice{
		Budget:         165000000,
		GrossUS:        108327830,
		GrossWorldwide: 400671789,
	}).WithOriginalTitle("Dune Part One")
}

// Cats is the sample movie that lost money.
func Cats() Movie {
	return NewMovie("Cats", "Tom Hooper", 2019, BoxOffice{
		Budget:         95000000,
		GrossUS:        27166770,
		GrossWorldwide: 73833348,
	})
}

// SampleMovies returns the sample catalog in a stable order.
func SampleMovies() []Movie {
	return []Movie{Dune(), Cats()}
}
