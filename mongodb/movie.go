package mongodb

import (
	"context"
	"fmt"

	"mflix/movie"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// MovieRepository implements movie.Repository against the mflix movies
// and comments collections.
type MovieRepository struct {
	conn     *Connection
	movies   *mongo.Collection
	comments string
}

func NewMovieRepository(conn *Connection) *MovieRepository {
	return &MovieRepository{
		conn:     conn,
		movies:   conn.Collection(MoviesCollection),
		comments: CommentsCollection,
	}
}

func (r *MovieRepository) Find(ctx context.Context, f movie.Filter, page, perPage int) ([]movie.Movie, error) {
	ctx, cancel := r.conn.withOperationTimeout(ctx)
	defer cancel()

	q := BuildQuery(f).Paged(page, perPage)
	cursor, err := r.movies.Find(ctx, q.Filter, q.FindOptions())
	if err != nil {
		return nil, fmt.Errorf("find movies: %w", err)
	}

	movies := make([]movie.Movie, 0, perPage)
	if err := cursor.All(ctx, &movies); err != nil {
		return nil, fmt.Errorf("decode movies: %w", err)
	}
	return movies, nil
}

func (r *MovieRepository) Count(ctx context.Context, f movie.Filter) (int64, error) {
	ctx, cancel := r.conn.withOperationTimeout(ctx)
	defer cancel()

	n, err := r.movies.CountDocuments(ctx, BuildQuery(f).Filter)
	if err != nil {
		return 0, fmt.Errorf("count movies: %w", err)
	}
	return n, nil
}

func (r *MovieRepository) FindByCountries(ctx context.Context, countries []string) ([]movie.CountryTitle, error) {
	ctx, cancel := r.conn.withOperationTimeout(ctx)
	defer cancel()

	q := CountryQuery(countries)
	cursor, err := r.movies.Find(ctx, q.Filter, q.FindOptions())
	if err != nil {
		return nil, fmt.Errorf("find movies by countries: %w", err)
	}

	titles := []movie.CountryTitle{}
	if err := cursor.All(ctx, &titles); err != nil {
		return nil, fmt.Errorf("decode country titles: %w", err)
	}
	return titles, nil
}

type facetDocument struct {
	Movies  []movie.Movie  `bson:"movies"`
	Runtime []movie.Bucket `bson:"runtime"`
	Rating  []movie.Bucket `bson:"rating"`
}

type countDocument struct {
	Count int64 `bson:"count"`
}

// FacetedSearch returns one page of movies featuring any of cast, ordered by
// viewer rating, along with runtime and critic score histograms over every
// match and the total number of matches.
func (r *MovieRepository) FacetedSearch(ctx context.Context, cast []string, page, perPage int) (movie.FacetResult, error) {
	ctx, cancel := r.conn.withOperationTimeout(ctx)
	defer cancel()

	match := CastQuery(cast).Filter

	var facets facetDocument
	found, err := r.aggregateOne(ctx, FacetPipeline(match, page, perPage), &facets)
	if err != nil {
		return movie.FacetResult{}, fmt.Errorf("faceted search: %w", err)
	}
	if !found {
		facets = facetDocument{}
	}

	var count countDocument
	if _, err := r.aggregateOne(ctx, CountPipeline(match), &count); err != nil {
		return movie.FacetResult{}, fmt.Errorf("count faceted search: %w", err)
	}

	movies := facets.Movies
	if movies == nil {
		movies = []movie.Movie{}
	}
	return movie.FacetResult{
		Movies:  movies,
		Runtime: movie.FillBuckets(movie.RuntimeBoundaries, facets.Runtime),
		Rating:  movie.FillBuckets(movie.RatingBoundaries, facets.Rating),
		Count:   count.Count,
	}, nil
}

// FindByID returns the movie with its comments, newest first. It returns
// (nil, nil) when there is no such movie.
func (r *MovieRepository) FindByID(ctx context.Context, id string) (*movie.MovieDetail, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, movie.ErrInvalidID
	}

	ctx, cancel := r.conn.withOperationTimeout(ctx)
	defer cancel()

	var detail movie.MovieDetail
	found, err := r.aggregateOne(ctx, MovieWithCommentsPipeline(oid, r.comments), &detail)
	if err != nil {
		return nil, fmt.Errorf("find movie %s: %w", id, err)
	}
	if !found {
		return nil, nil
	}
	if detail.Comments == nil {
		detail.Comments = []movie.Comment{}
	}
	return &detail, nil
}

func (r *MovieRepository) Ping(ctx context.Context) error {
	return r.conn.Ping(ctx)
}

// aggregateOne runs pipeline and decodes its first document into out.
func (r *MovieRepository) aggregateOne(ctx context.Context, pipeline mongo.Pipeline, out interface{}) (bool, error) {
	cursor, err := r.movies.Aggregate(ctx, pipeline)
	if err != nil {
		return false, err
	}
	defer cursor.Close(ctx)

	if !cursor.Next(ctx) {
		return false, cursor.Err()
	}
	if err := cursor.Decode(out); err != nil {
		return false, err
	}
	return true, nil
}

// FacetPipeline buckets every movie matching match by runtime and critic
// score, and pages the matches by viewer rating.
func FacetPipeline(match bson.D, page, perPage int) mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$match", Value: match}},
		{{Key: "$facet", Value: bson.D{
			{Key: "runtime", Value: bson.A{bucketStage("$runtime", movie.RuntimeBoundaries)}},
			{Key: "rating", Value: bson.A{bucketStage("$metacritic", movie.RatingBoundaries)}},
			{Key: "movies", Value: bson.A{
				bson.D{{Key: "$sort", Value: bson.D{{Key: "tomatoes.viewer.rating", Value: -1}}}},
				bson.D{{Key: "$skip", Value: pageOffset(page, perPage)}},
				bson.D{{Key: "$limit", Value: int64(perPage)}},
			}},
		}}},
	}
}

// CountPipeline counts every movie matching match.
func CountPipeline(match bson.D) mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$match", Value: match}},
		{{Key: "$count", Value: "count"}},
	}
}

// MovieWithCommentsPipeline selects one movie and joins its comments,
// newest first.
func MovieWithCommentsPipeline(id primitive.ObjectID, comments string) mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$match", Value: bson.D{{Key: "_id", Value: id}}}},
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: comments},
			{Key: "let", Value: bson.D{{Key: "id", Value: "$_id"}}},
			{Key: "pipeline", Value: bson.A{
				bson.D{{Key: "$match", Value: bson.D{{Key: "$expr", Value: bson.D{
					{Key: "$eq", Value: bson.A{"$movie_id", "$$id"}},
				}}}}},
				bson.D{{Key: "$sort", Value: bson.D{{Key: "date", Value: -1}}}},
			}},
			{Key: "as", Value: "comments"},
		}}},
	}
}

func bucketStage(groupBy string, boundaries []int) bson.D {
	bounds := make(bson.A, len(boundaries))
	for i, b := range boundaries {
		bounds[i] = b
	}
	return bson.D{{Key: "$bucket", Value: bson.D{
		{Key: "groupBy", Value: groupBy},
		{Key: "boundaries", Value: bounds},
		{Key: "default", Value: movie.OtherBucket},
		{Key: "output", Value: bson.D{{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}}}},
	}}}
}
