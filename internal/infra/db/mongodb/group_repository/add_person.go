package group_repository

import (
	"context"
	"time"

	"github.com/finsplit/finsplit-backend/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type AddPersonsToGroupRepository struct {
	Db *mongo.Database
}

func NewAddPersonsToGroupRepository(db *mongo.Database) *AddPersonsToGroupRepository {
	return &AddPersonsToGroupRepository{
		Db: db,
	}
}

func (r *AddPersonsToGroupRepository) Add(groupId primitive.ObjectID, names []string) (*models.Group, error) {
	collection := r.Db.Collection(GroupCollection)

	persons := make([]models.GroupPerson, len(names))
	for i, name := range names {
		persons[i] = models.GroupPerson{
			Id:   primitive.NewObjectID(),
			Name: name,
		}
	}

	update := bson.M{
		"$push": bson.M{"persons": bson.M{"$each": persons}},
		"$set":  bson.M{"updated_at": time.Now()},
	}

	var group models.Group
	err := collection.FindOneAndUpdate(
		context.Background(),
		bson.M{"_id": groupId},
		update,
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&group)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &group, nil
}
