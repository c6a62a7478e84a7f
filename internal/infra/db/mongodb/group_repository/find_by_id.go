package group_repository

import (
	"context"

	"github.com/finsplit/finsplit-backend/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type FindGroupByIdRepository struct {
	Db *mongo.Database
}

func NewFindGroupByIdRepository(db *mongo.Database) *FindGroupByIdRepository {
	return &FindGroupByIdRepository{
		Db: db,
	}
}

func (r *FindGroupByIdRepository) Find(groupId primitive.ObjectID) (*models.Group, error) {
	collection := r.Db.Collection(GroupCollection)

	var group models.Group
	err := collection.FindOne(context.Background(), bson.M{"_id": groupId}).Decode(&group)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &group, nil
}
