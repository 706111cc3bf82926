package mongodb

import (
	"math"

	"mflix/movie"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Query describes one find against the movies collection.
type Query struct {
	Filter     bson.D
	Projection bson.D
	Sort       bson.D
	Skip       int64
	Limit      int64
}

var textScore = bson.D{{Key: "$meta", Value: "textScore"}}

// DefaultSort orders movies by number of viewer reviews, most reviewed first.
func DefaultSort() bson.D {
	return bson.D{{Key: "tomatoes.viewer.numReviews", Value: -1}}
}

func DefaultQuery() Query {
	return Query{Filter: bson.D{}, Sort: DefaultSort()}
}

// TextQuery matches the text index and ranks by relevance.
func TextQuery(text string) Query {
	return Query{
		Filter:     bson.D{{Key: "$text", Value: bson.D{{Key: "$search", Value: text}}}},
		Projection: bson.D{{Key: "score", Value: textScore}},
		Sort:       bson.D{{Key: "score", Value: textScore}},
	}
}

// CastQuery matches movies featuring any of the given cast members.
func CastQuery(cast []string) Query {
	return Query{
		Filter: inFilter("cast", cast),
		Sort:   DefaultSort(),
	}
}

// GenreQuery matches movies in any of the given genres.
func GenreQuery(genres []string) Query {
	return Query{
		Filter: inFilter("genres", genres),
		Sort:   DefaultSort(),
	}
}

// CountryQuery matches movies from any of the given countries and returns
// only their title and id.
func CountryQuery(countries []string) Query {
	return Query{
		Filter:     inFilter("countries", countries),
		Projection: bson.D{{Key: "title", Value: 1}},
	}
}

// BuildQuery maps a filter onto its query. Empty or unknown filters get the
// unfiltered default.
func BuildQuery(f movie.Filter) Query {
	if f.IsEmpty() {
		return DefaultQuery()
	}
	switch f.Kind {
	case movie.FilterText:
		return TextQuery(f.Text())
	case movie.FilterCast:
		return CastQuery(f.Values)
	case movie.FilterGenre:
		return GenreQuery(f.Values)
	}
	return DefaultQuery()
}

// Paged returns q restricted to the given zero-based page.
func (q Query) Paged(page, perPage int) Query {
	q.Skip = pageOffset(page, perPage)
	q.Limit = int64(perPage)
	return q
}

func (q Query) FindOptions() *options.FindOptions {
	opts := options.Find()
	if len(q.Projection) > 0 {
		opts.SetProjection(q.Projection)
	}
	if len(q.Sort) > 0 {
		opts.SetSort(q.Sort)
	}
	if q.Skip > 0 {
		opts.SetSkip(q.Skip)
	}
	if q.Limit > 0 {
		opts.SetLimit(q.Limit)
	}
	return opts
}

func inFilter(field string, values []string) bson.D {
	if values == nil {
		values = []string{}
	}
	return bson.D{{Key: field, Value: bson.D{{Key: "$in", Value: values}}}}
}

// pageOffset is the number of documents before page, saturating instead of
// overflowing for absurdly large pages.
func pageOffset(page, perPage int) int64 {
	if page <= 0 || perPage <= 0 {
		return 0
	}
	if int64(page) > math.MaxInt64/int64(perPage) {
		return math.MaxInt64
	}
	return int64(page) * int64(perPage)
}
