package movie

import (
	"time"

	"mflix/errs"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const DefaultPerPage = 20

var (
	ErrNotFound        = errs.Errorf(errs.ENOTFOUND, "Not found")
	ErrInvalidID       = errs.Errorf(errs.EINVALID, "invalid movie id")
	ErrCastRequired    = errs.Errorf(errs.EINVALID, "Must specify cast members to filter by.")
	ErrResultsTooLarge = errs.Errorf(errs.EINVALID, "Results too large, be more restrictive in filter")
)

type Movie struct {
	ID               primitive.ObjectID `bson:"_id" json:"_id"`
	Title            string             `bson:"title" json:"title"`
	Year             interface{}        `bson:"year,omitempty" json:"year,omitempty"`
	Runtime          int                `bson:"runtime,omitempty" json:"runtime,omitempty"`
	Released         *time.Time         `bson:"released,omitempty" json:"released,omitempty"`
	Plot             string             `bson:"plot,omitempty" json:"plot,omitempty"`
	FullPlot         string             `bson:"fullplot,omitempty" json:"fullplot,omitempty"`
	Poster           string             `bson:"poster,omitempty" json:"poster,omitempty"`
	Rated            string             `bson:"rated,omitempty" json:"rated,omitempty"`
	Type             string             `bson:"type,omitempty" json:"type,omitempty"`
	Cast             []string           `bson:"cast,omitempty" json:"cast,omitempty"`
	Genres           []string           `bson:"genres,omitempty" json:"genres,omitempty"`
	Countries        []string           `bson:"countries,omitempty" json:"countries,omitempty"`
	Directors        []string           `bson:"directors,omitempty" json:"directors,omitempty"`
	Writers          []string           `bson:"writers,omitempty" json:"writers,omitempty"`
	Languages        []string           `bson:"languages,omitempty" json:"languages,omitempty"`
	Metacritic       int                `bson:"metacritic,omitempty" json:"metacritic,omitempty"`
	IMDB             *IMDB              `bson:"imdb,omitempty" json:"imdb,omitempty"`
	Tomatoes         *Tomatoes          `bson:"tomatoes,omitempty" json:"tomatoes,omitempty"`
	NumMflixComments int                `bson:"num_mflix_comments,omitempty" json:"num_mflix_comments,omitempty"`
	LastUpdated      interface{}        `bson:"lastupdated,omitempty" json:"lastupdated,omitempty"`

	// Score is the text relevance, only set by text searches.
	Score float64 `bson:"score,omitempty" json:"score,omitempty"`
}

type IMDB struct {
	Rating interface{} `bson:"rating,omitempty" json:"rating,omitempty"`
	Votes  interface{} `bson:"votes,omitempty" json:"votes,omitempty"`
	ID     int         `bson:"id,omitempty" json:"id,omitempty"`
}

type Tomatoes struct {
	Viewer      *Viewer    `bson:"viewer,omitempty" json:"viewer,omitempty"`
	LastUpdated *time.Time `bson:"lastUpdated,omitempty" json:"lastUpdated,omitempty"`
}

type Viewer struct {
	Rating     float64 `bson:"rating,omitempty" json:"rating,omitempty"`
	NumReviews int     `bson:"numReviews,omitempty" json:"numReviews,omitempty"`
	Meter      int     `bson:"meter,omitempty" json:"meter,omitempty"`
}

type Comment struct {
	ID      primitive.ObjectID `bson:"_id" json:"_id"`
	Name    string             `bson:"name" json:"name"`
	Email   string             `bson:"email" json:"email"`
	MovieID primitive.ObjectID `bson:"movie_id" json:"movie_id"`
	Text    string             `bson:"text" json:"text"`
	Date    time.Time          `bson:"date" json:"date"`
}

// MovieDetail is a movie joined with its comments, newest first.
type MovieDetail struct {
	Movie    `bson:",inline"`
	Comments []Comment `bson:"comments" json:"comments"`
}

// UpdatedType reports whether lastupdated is stored as a date.
func (d MovieDetail) UpdatedType() string {
	switch d.LastUpdated.(type) {
	case primitive.DateTime, time.Time:
		return "Date"
	default:
		return "other"
	}
}

type CountryTitle struct {
	ID    primitive.ObjectID `bson:"_id" json:"_id"`
	Title string             `bson:"title" json:"title"`
}
