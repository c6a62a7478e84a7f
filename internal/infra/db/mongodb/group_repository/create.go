package group_repository

import (
	"context"
	"time"

	"github.com/finsplit/finsplit-backend/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

const GroupCollection = "spb_groups"

type CreateGroupRepository struct {
	Db *mongo.Database
}

func NewCreateGroupRepository(db *mongo.Database) *CreateGroupRepository {
	return &CreateGroupRepository{
		Db: db,
	}
}

func (r *CreateGroupRepository) Create(group *models.Group) (*models.Group, error) {
	collection := r.Db.Collection(GroupCollection)

	persons := make([]models.GroupPerson, len(group.Persons))
	for i, person := range group.Persons {
		persons[i] = models.GroupPerson{
			Id:   primitive.NewObjectID(),
			Name: person.Name,
		}
	}

	groupToSave := &models.Group{
		Id:         primitive.NewObjectID(),
		Title:      group.Title,
		Estimation: group.Estimation,
		Persons:    persons,
		UserId:     group.UserId,
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
	}

	_, err := collection.InsertOne(context.Background(), groupToSave)
	if err != nil {
		return nil, err
	}

	return groupToSave, nil
}
