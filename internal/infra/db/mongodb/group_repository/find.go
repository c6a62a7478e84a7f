package group_repository

import (
	"context"
	"time"

	"github.com/finsplit/finsplit-backend/internal/domain/models"
	"github.com/finsplit/finsplit-backend/internal/infra/db/mongodb/bill_repository"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type FindGroupsRepository struct {
	Db *mongo.Database
}

func NewFindGroupsRepository(db *mongo.Database) *FindGroupsRepository {
	return &FindGroupsRepository{
		Db: db,
	}
}

// GroupsWithActualPipeline matches the caller's groups inside the
// (startTime, endTime] creation window and joins each one against its
// bills to compute the actual spent amount. Bills reference groups by
// stringified id, hence the $toString before the lookup.
func GroupsWithActualPipeline(userId string, startTime time.Time, endTime time.Time) mongo.Pipeline {
	match := bson.M{
		"created_at": bson.M{"$gt": startTime.UTC(), "$lte": endTime.UTC()},
	}
	if userId != "" {
		match["user_id"] = userId
	}

	return mongo.Pipeline{
		{{Key: "$match", Value: match}},
		{{Key: "$addFields", Value: bson.M{"document_id": bson.M{"$toString": "$_id"}}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         bill_repository.BillCollection,
			"localField":   "document_id",
			"foreignField": "group_id",
			"as":           "group_bills",
		}}},
		{{Key: "$addFields", Value: bson.M{"actual": bson.M{"$sum": "$group_bills.value"}}}},
		{{Key: "$unset", Value: bson.A{"document_id", "group_bills"}}},
	}
}

func (r *FindGroupsRepository) Find(userId string, startTime time.Time, endTime time.Time) ([]models.Group, error) {
	collection := r.Db.Collection(GroupCollection)

	cursor, err := collection.Aggregate(context.Background(), GroupsWithActualPipeline(userId, startTime, endTime))
	if err != nil {
		return nil, err
	}

	var groups []models.Group
	if err := cursor.All(context.Background(), &groups); err != nil {
		return nil, err
	}

	return groups, nil
}
