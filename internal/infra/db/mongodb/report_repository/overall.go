package report_repository

import (
	"context"

	"github.com/finsplit/finsplit-backend/internal/domain/models"
	"github.com/finsplit/finsplit-backend/internal/domain/usecase"
	"github.com/finsplit/finsplit-backend/internal/infra/db/mongodb/helpers"
	"github.com/finsplit/finsplit-backend/internal/infra/db/mongodb/transaction_repository"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type FindOverallReportRepository struct {
	Db *mongo.Database
}

func NewFindOverallReportRepository(db *mongo.Database) *FindOverallReportRepository {
	return &FindOverallReportRepository{
		Db: db,
	}
}

type overallRow struct {
	Data  []models.Transaction `bson:"data"`
	Total float64              `bson:"total"`
	Min   models.ValueExtreme  `bson:"min"`
	Max   models.ValueExtreme  `bson:"max"`
	Avg   float64              `bson:"avg"`
}

// OverallReportPipeline matches records inside the (start, end] window,
// sorts them chronologically and collapses everything into a single row
// carrying the matched records plus sum, min, max and avg over value. The
// min/max accumulators keep the category that produced the extreme; value
// must stay the first key so document comparison orders by it.
func OverallReportPipeline(filter *usecase.ReportFilter) mongo.Pipeline {
	match := bson.M{
		"user_id": filter.UserId,
		"created_at": bson.M{
			"$gt":  filter.StartTime.UTC(),
			"$lte": filter.EndTime.UTC(),
		},
	}
	if filter.CategoryId != "" {
		match["category_id"] = filter.CategoryId
	}

	extreme := bson.D{
		{Key: "value", Value: "$value"},
		{Key: "category_id", Value: "$category_id"},
	}

	return mongo.Pipeline{
		{{Key: "$match", Value: match}},
		{{Key: "$sort", Value: bson.D{{Key: "created_at", Value: 1}}}},
		{{Key: "$group", Value: bson.M{
			"_id":   nil,
			"data":  bson.M{"$push": "$$ROOT"},
			"total": bson.M{"$sum": "$value"},
			"max":   bson.M{"$max": extreme},
			"min":   bson.M{"$min": extreme},
			"avg":   bson.M{"$avg": "$value"},
		}}},
		{{Key: "$unset", Value: "_id"}},
	}
}

// Find runs the overall aggregation and buckets the matched records into
// 24-hour slots. An empty window yields a zeroed report, never nil.
func (r *FindOverallReportRepository) Find(kind models.TransactionKind, filter *usecase.ReportFilter) (*models.WindowReport, error) {
	name, ok := transaction_repository.CollectionName(kind)
	if !ok {
		return nil, transaction_repository.ErrInvalidKind
	}
	collection := r.Db.Collection(name)

	cursor, err := collection.Aggregate(context.Background(), OverallReportPipeline(filter))
	if err != nil {
		return nil, err
	}

	var rows []overallRow
	if err := cursor.All(context.Background(), &rows); err != nil {
		return nil, err
	}

	report := &models.WindowReport{}
	if len(rows) == 0 {
		return report, nil
	}

	row := rows[0]
	report.Total = row.Total
	report.Min = row.Min
	report.Max = row.Max
	report.Avg = row.Avg
	report.Min.Percentage = helpers.Percentage(report.Min.Value, report.Total)
	report.Max.Percentage = helpers.Percentage(report.Max.Value, report.Total)

	entries := helpers.BucketTransactionsByDay(row.Data, filter.StartTime, filter.EndTime)
	for i := range entries {
		entries[i].Total = report.Total
		entries[i].Min = report.Min
		entries[i].Max = report.Max
		entries[i].Avg = report.Avg
	}
	report.DayWise = entries

	return report, nil
}
