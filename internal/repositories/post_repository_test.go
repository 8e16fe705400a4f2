package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/ItsBhatt/devConnector/internal/models"
	"github.com/ItsBhatt/devConnector/internal/posts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

// sentUpdate decodes an update command as seen on the wire
type sentUpdate struct {
	Updates []struct {
		Q struct {
			ID      primitive.ObjectID `bson:"_id"`
			Version int64              `bson:"version"`
		} `bson:"q"`
		U struct {
			Set bson.M           `bson:"$set"`
			Inc map[string]int64 `bson:"$inc"`
		} `bson:"u"`
	} `bson:"updates"`
}

type sentDelete struct {
	Deletes []struct {
		Q struct {
			ID       primitive.ObjectID `bson:"_id"`
			AuthorID string             `bson:"user_id"`
		} `bson:"q"`
	} `bson:"deletes"`
}

func loadedPost(version int64) *models.Post {
	return &models.Post{
		ID:        primitive.NewObjectID(),
		AuthorID:  "1",
		Text:      "hello",
		Likes:     []models.Like{{UserID: "2"}},
		Comments:  []models.Comment{},
		Version:   version,
		UpdatedAt: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}

// countResponse answers the aggregate that CountDocuments sends
func countResponse(mt *mtest.T, n int32) bson.D {
	ns := mt.DB.Name() + ".posts"
	if n == 0 {
		return mtest.CreateCursorResponse(0, ns, mtest.FirstBatch)
	}
	return mtest.CreateCursorResponse(0, ns, mtest.FirstBatch, bson.D{{Key: "n", Value: n}})
}

func TestMongoPostRepository_Save(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("guards on version and advances it", func(mt *mtest.T) {
		repo := NewMongoPostRepository(mt.DB)
		post := loadedPost(4)
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: 1},
			bson.E{Key: "nModified", Value: 1},
		))

		require.NoError(mt, repo.Save(context.Background(), post))
		assert.Equal(mt, int64(5), post.Version)

		var sent sentUpdate
		require.NoError(mt, bson.Unmarshal(mt.GetStartedEvent().Command, &sent))
		require.Len(mt, sent.Updates, 1)
		assert.Equal(mt, post.ID, sent.Updates[0].Q.ID)
		assert.Equal(mt, int64(4), sent.Updates[0].Q.Version)
		assert.Equal(mt, int64(1), sent.Updates[0].U.Inc["version"])
		assert.Contains(mt, sent.Updates[0].U.Set, "likes")
		assert.Contains(mt, sent.Updates[0].U.Set, "comments")
	})

	mt.Run("stale version is a concurrent modification", func(mt *mtest.T) {
		repo := NewMongoPostRepository(mt.DB)
		post := loadedPost(4)
		mt.AddMockResponses(
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}, bson.E{Key: "nModified", Value: 0}),
			countResponse(mt, 1),
		)

		err := repo.Save(context.Background(), post)
		assert.ErrorIs(mt, err, posts.ErrConcurrentModification)
		assert.Equal(mt, int64(4), post.Version)
	})

	mt.Run("deleted post is not found", func(mt *mtest.T) {
		repo := NewMongoPostRepository(mt.DB)
		post := loadedPost(4)
		mt.AddMockResponses(
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}, bson.E{Key: "nModified", Value: 0}),
			countResponse(mt, 0),
		)

		err := repo.Save(context.Background(), post)
		assert.ErrorIs(mt, err, posts.ErrPostNotFound)
	})

	mt.Run("server error is a store error", func(mt *mtest.T) {
		repo := NewMongoPostRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code:    2,
			Name:    "BadValue",
			Message: "bad value",
		}))

		err := repo.Save(context.Background(), loadedPost(0))
		assert.ErrorIs(mt, err, posts.ErrStore)
		assert.True(mt, posts.IsRetryable(err))
	})
}

func TestMongoPostRepository_Delete(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("filters on owner", func(mt *mtest.T) {
		repo := NewMongoPostRepository(mt.DB)
		post := loadedPost(0)
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 1}))

		require.NoError(mt, repo.Delete(context.Background(), post))

		var sent sentDelete
		require.NoError(mt, bson.Unmarshal(mt.GetStartedEvent().Command, &sent))
		require.Len(mt, sent.Deletes, 1)
		assert.Equal(mt, post.ID, sent.Deletes[0].Q.ID)
		assert.Equal(mt, "1", sent.Deletes[0].Q.AuthorID)
	})

	mt.Run("nothing deleted is not found", func(mt *mtest.T) {
		repo := NewMongoPostRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}))

		err := repo.Delete(context.Background(), loadedPost(0))
		assert.ErrorIs(mt, err, posts.ErrPostNotFound)
	})
}

func TestMongoPostRepository_GetByID_MalformedID(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("no query sent", func(mt *mtest.T) {
		repo := NewMongoPostRepository(mt.DB)

		_, err := repo.GetByID(context.Background(), "not-an-object-id")
		assert.ErrorIs(mt, err, posts.ErrPostNotFound)
		assert.Nil(mt, mt.GetStartedEvent())
	})
}
