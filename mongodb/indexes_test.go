package mongodb_test

import (
	"testing"

	"mflix/mongodb"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestIndexes(t *testing.T) {
	indexes := mongodb.Indexes()

	names := map[string]bson.D{}
	for _, model := range indexes[mongodb.MoviesCollection] {
		require.NotNil(t, model.Options)
		require.NotNil(t, model.Options.Name)
		names[*model.Options.Name] = model.Keys.(bson.D)
	}

	assert.Contains(t, names, "movies_text")
	assert.Contains(t, names, "movies_cast")
	assert.Contains(t, names, "movies_genres")
	assert.Contains(t, names, "movies_countries")
	assert.Contains(t, names, "movies_num_reviews")

	t.Run("seed upsert key is indexed", func(t *testing.T) {
		require.Contains(t, names, "movies_movielens_id")
		assert.Equal(t, bson.D{{Key: "movielens_id", Value: 1}}, names["movies_movielens_id"])

		for _, model := range indexes[mongodb.MoviesCollection] {
			if *model.Options.Name != "movies_movielens_id" {
				continue
			}
			require.NotNil(t, model.Options.Sparse)
			assert.True(t, *model.Options.Sparse, "mflix documents without the field must not collide")
			require.NotNil(t, model.Options.Unique)
			assert.True(t, *model.Options.Unique)
		}
	})

	t.Run("comments are indexed by movie and date", func(t *testing.T) {
		require.Len(t, indexes[mongodb.CommentsCollection], 1)
		assert.Equal(t,
			bson.D{{Key: "movie_id", Value: 1}, {Key: "date", Value: -1}},
			indexes[mongodb.CommentsCollection][0].Keys)
	})
}
