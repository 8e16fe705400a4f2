package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/ItsBhatt/devConnector/internal/models"
	"github.com/ItsBhatt/devConnector/internal/posts"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoPostRepository implements posts.Repository for MongoDB. Each post is
// one document with its likes and comments embedded, so every save of the
// aggregate is a single-document atomic write.
type MongoPostRepository struct {
	collection *mongo.Collection
}

// NewMongoPostRepository creates a new MongoPostRepository
func NewMongoPostRepository(db *mongo.Database) *MongoPostRepository {
	return &MongoPostRepository{collection: db.Collection("posts")}
}

// EnsureIndexes creates the indexes backing the listing queries
func (r *MongoPostRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "created_at", Value: -1}}},
		{Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "created_at", Value: -1}}},
	})
	if err != nil {
		return storeError("create post indexes", err)
	}
	return nil
}

// GetByID retrieves a post by ID from MongoDB
func (r *MongoPostRepository) GetByID(ctx context.Context, id string) (*models.Post, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, posts.ErrPostNotFound
	}

	var post models.Post
	err = r.collection.FindOne(ctx, bson.M{"_id": objID}).Decode(&post)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, posts.ErrPostNotFound
		}
		return nil, storeError("find post", err)
	}
	return &post, nil
}

// ListAll retrieves every post from MongoDB, newest first
func (r *MongoPostRepository) ListAll(ctx context.Context) ([]models.Post, error) {
	return r.find(ctx, bson.D{})
}

// ListByAuthor retrieves posts by a specific user from MongoDB, newest first
func (r *MongoPostRepository) ListByAuthor(ctx context.Context, authorID string) ([]models.Post, error) {
	return r.find(ctx, bson.M{"user_id": authorID})
}

func (r *MongoPostRepository) find(ctx context.Context, filter interface{}) ([]models.Post, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, storeError("list posts", err)
	}
	defer cursor.Close(ctx)

	list := []models.Post{}
	if err = cursor.All(ctx, &list); err != nil {
		return nil, storeError("decode posts", err)
	}
	return list, nil
}

// Create inserts a new post into MongoDB
func (r *MongoPostRepository) Create(ctx context.Context, post *models.Post) error {
	if post.ID.IsZero() {
		post.ID = primitive.NewObjectID()
	}
	if _, err := r.collection.InsertOne(ctx, post); err != nil {
		return storeError("insert post", err)
	}
	return nil
}

// Save writes the likes and comments of a loaded post, guarded by its version
func (r *MongoPostRepository) Save(ctx context.Context, post *models.Post) error {
	filter := bson.M{"_id": post.ID, "version": post.Version}
	update := bson.M{
		"$set": bson.M{
			"likes":      post.Likes,
			"comments":   post.Comments,
			"updated_at": post.UpdatedAt,
		},
		"$inc": bson.M{"version": 1},
	}

	res, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return storeError("update post", err)
	}
	if res.MatchedCount == 0 {
		// Either someone else saved first or the post was deleted meanwhile
		n, err := r.collection.CountDocuments(ctx, bson.M{"_id": post.ID})
		if err != nil {
			return storeError("check post", err)
		}
		if n == 0 {
			return posts.ErrPostNotFound
		}
		return posts.ErrConcurrentModification
	}

	post.Version++
	return nil
}

// Delete deletes a post from MongoDB
func (r *MongoPostRepository) Delete(ctx context.Context, post *models.Post) error {
	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": post.ID, "user_id": post.AuthorID})
	if err != nil {
		return storeError("delete post", err)
	}
	if res.DeletedCount == 0 {
		return posts.ErrPostNotFound
	}
	return nil
}

func storeError(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", posts.ErrStore, op, err)
}
