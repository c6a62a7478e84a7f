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

type UpdatePersonDetailsRepository struct {
	Db *mongo.Database
}

func NewUpdatePersonDetailsRepository(db *mongo.Database) *UpdatePersonDetailsRepository {
	return &UpdatePersonDetailsRepository{
		Db: db,
	}
}

// Update merges fields onto one person subdocument. The paid field is an
// accumulator and is applied with $inc so callers can report "paid X more"
// without reading the current tally first; everything else overwrites.
func (r *UpdatePersonDetailsRepository) Update(groupId primitive.ObjectID, personId primitive.ObjectID, fields map[string]any) (*models.Group, error) {
	collection := r.Db.Collection(GroupCollection)

	set := bson.M{"updated_at": time.Now()}
	inc := bson.M{}
	for field, value := range fields {
		if field == "paid" {
			inc["persons.$."+field] = value
			continue
		}
		set["persons.$."+field] = value
	}

	update := bson.M{"$set": set}
	if len(inc) > 0 {
		update["$inc"] = inc
	}

	var group models.Group
	err := collection.FindOneAndUpdate(
		context.Background(),
		bson.M{"_id": groupId, "persons.id": personId},
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
