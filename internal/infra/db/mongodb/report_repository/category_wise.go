package report_repository

import (
	"context"

	"github.com/finsplit/finsplit-backend/internal/domain/models"
	"github.com/finsplit/finsplit-backend/internal/domain/usecase"
	"github.com/finsplit/finsplit-backend/internal/infra/db/mongodb/transaction_repository"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type FindCategoryWiseReportRepository struct {
	Db *mongo.Database
}

func NewFindCategoryWiseReportRepository(db *mongo.Database) *FindCategoryWiseReportRepository {
	return &FindCategoryWiseReportRepository{
		Db: db,
	}
}

// CategoryWisePipeline groups the window's records by category instead of
// by day, keeping count and the value scalars per category.
func CategoryWisePipeline(filter *usecase.ReportFilter) mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$match", Value: bson.M{
			"user_id": filter.UserId,
			"created_at": bson.M{
				"$gt":  filter.StartTime.UTC(),
				"$lte": filter.EndTime.UTC(),
			},
		}}},
		{{Key: "$group", Value: bson.M{
			"_id":   "$category_id",
			"count": bson.M{"$sum": 1},
			"total": bson.M{"$sum": "$value"},
			"max":   bson.M{"$max": "$value"},
			"min":   bson.M{"$min": "$value"},
			"avg":   bson.M{"$avg": "$value"},
		}}},
	}
}

func (r *FindCategoryWiseReportRepository) Find(kind models.TransactionKind, filter *usecase.ReportFilter) (map[string]models.CategoryAggregate, error) {
	name, ok := transaction_repository.CollectionName(kind)
	if !ok {
		return nil, transaction_repository.ErrInvalidKind
	}
	collection := r.Db.Collection(name)

	cursor, err := collection.Aggregate(context.Background(), CategoryWisePipeline(filter))
	if err != nil {
		return nil, err
	}

	var rows []models.CategoryAggregate
	if err := cursor.All(context.Background(), &rows); err != nil {
		return nil, err
	}

	aggregates := make(map[string]models.CategoryAggregate, len(rows))
	for _, row := range rows {
		aggregates[row.CategoryId] = row
	}

	return aggregates, nil
}
