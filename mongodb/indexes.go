package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Indexes lists the indexes the movie queries rely on, by collection.
// The text index is required by text searches.
func Indexes() map[string][]mongo.IndexModel {
	return map[string][]mongo.IndexModel{
		MoviesCollection: {
			{
				Keys: bson.D{
					{Key: "title", Value: "text"},
					{Key: "plot", Value: "text"},
					{Key: "fullplot", Value: "text"},
				},
				Options: options.Index().SetName("movies_text"),
			},
			{Keys: bson.D{{Key: "cast", Value: 1}}, Options: options.Index().SetName("movies_cast")},
			{Keys: bson.D{{Key: "genres", Value: 1}}, Options: options.Index().SetName("movies_genres")},
			{Keys: bson.D{{Key: "countries", Value: 1}}, Options: options.Index().SetName("movies_countries")},
			{Keys: bson.D{{Key: "tomatoes.viewer.numReviews", Value: -1}}, Options: options.Index().SetName("movies_num_reviews")},
			{
				// upsert key of cmd/movieseed; sample_mflix documents do not carry it
				Keys:    bson.D{{Key: "movielens_id", Value: 1}},
				Options: options.Index().SetName("movies_movielens_id").SetUnique(true).SetSparse(true),
			},
		},
		CommentsCollection: {
			{
				Keys:    bson.D{{Key: "movie_id", Value: 1}, {Key: "date", Value: -1}},
				Options: options.Index().SetName("comments_movie_date"),
			},
		},
	}
}

// EnsureIndexes creates every index from Indexes and returns how many were
// applied. Existing indexes with the same definition are left untouched.
func EnsureIndexes(ctx context.Context, conn *Connection) (int, error) {
	total := 0
	for coll, models := range Indexes() {
		names, err := conn.Collection(coll).Indexes().CreateMany(ctx, models)
		if err != nil {
			return total, fmt.Errorf("create indexes on %s: %w", coll, err)
		}
		total += len(names)
	}
	return total, nil
}
