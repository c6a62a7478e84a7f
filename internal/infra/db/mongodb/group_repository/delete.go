package group_repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type DeleteGroupRepository struct {
	Db *mongo.Database
}

func NewDeleteGroupRepository(db *mongo.Database) *DeleteGroupRepository {
	return &DeleteGroupRepository{
		Db: db,
	}
}

func (r *DeleteGroupRepository) Delete(groupId primitive.ObjectID) error {
	collection := r.Db.Collection(GroupCollection)

	_, err := collection.DeleteOne(context.Background(), bson.M{"_id": groupId})
	return err
}
