package group_repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type UpdateGroupRepository struct {
	Db *mongo.Database
}

func NewUpdateGroupRepository(db *mongo.Database) *UpdateGroupRepository {
	return &UpdateGroupRepository{
		Db: db,
	}
}

func (r *UpdateGroupRepository) Update(groupId primitive.ObjectID, fields map[string]any) error {
	collection := r.Db.Collection(GroupCollection)

	set := bson.M{"updated_at": time.Now()}
	for field, value := range fields {
		set[field] = value
	}

	result, err := collection.UpdateOne(context.Background(), bson.M{"_id": groupId}, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}

	return nil
}
