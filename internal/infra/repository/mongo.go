package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoRepository[T any] struct {
	mongo *mongo.Database
}

func NewMongoRepository[T any](mongo *mongo.Database) *MongoRepository[T] {
	return &MongoRepository[T]{mongo: mongo}
}

func (r *MongoRepository[T]) Create(ctx context.Context, collectionName string, entity T) (T, error) {
	collection := r.mongo.Collection(collectionName)
	_, err := collection.InsertOne(ctx, entity)
	return entity, err
}

// Update merges the entity into the document keyed by user_id. The upsert
// option creates the document when the filter matches nothing, and $set keeps
// fields that the entity does not carry.
func (r *MongoRepository[T]) Update(ctx context.Context, collectionName string, userID string, entity T) (T, error) {
	collection := r.mongo.Collection(collectionName)
	filter := bson.M{"user_id": userID}

	update := bson.M{
		"$set": entity,
	}

	_, err := collection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	return entity, err
}

func (r *MongoRepository[T]) Delete(ctx context.Context, collectionName string, id string) error {
	collection := r.mongo.Collection(collectionName)
	filter := bson.M{"_id": id}
	_, err := collection.DeleteOne(ctx, filter)
	return err
}

func (r *MongoRepository[T]) FindByUserID(ctx context.Context, collectionName string, userID string) (T, error) {
	var entity T
	collection := r.mongo.Collection(collectionName)
	filter := bson.M{"user_id": userID}
	err := collection.FindOne(ctx, filter).Decode(&entity)
	return entity, err
}

func (r *MongoRepository[T]) FindAll(ctx context.Context, collectionName string) ([]T, error) {
	collection := r.mongo.Collection(collectionName)
	cursor, err := collection.Find(ctx, bson.D{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var entities []T
	for cursor.Next(ctx) {
		var entity T
		if err := cursor.Decode(&entity); err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}
