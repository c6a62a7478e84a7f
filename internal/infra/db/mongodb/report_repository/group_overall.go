package report_repository

import (
	"context"
	"fmt"
	"sync"

	"github.com/finsplit/finsplit-backend/internal/domain/models"
	"github.com/finsplit/finsplit-backend/internal/infra/db/mongodb/bill_repository"
	"github.com/finsplit/finsplit-backend/internal/infra/db/mongodb/group_repository"
	"github.com/finsplit/finsplit-backend/internal/utils"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type FindGroupOverallRepository struct {
	Db *mongo.Database
}

func NewFindGroupOverallRepository(db *mongo.Database) *FindGroupOverallRepository {
	return &FindGroupOverallRepository{
		Db: db,
	}
}

type groupBillsRow struct {
	Total float64       `bson:"total"`
	Data  []models.Bill `bson:"data"`
}

// GroupBillsPipeline collapses a group's bills into their value sum plus
// the full bill list.
func GroupBillsPipeline(groupId primitive.ObjectID) mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"group_id": groupId.Hex()}}},
		{{Key: "$group", Value: bson.M{
			"_id":   nil,
			"total": bson.M{"$sum": "$value"},
			"data":  bson.M{"$push": "$$ROOT"},
		}}},
		{{Key: "$unset", Value: "_id"}},
	}
}

// Find fetches the group's estimation and the aggregate over its bills
// concurrently and merges them. Returns nil when the group does not exist.
func (r *FindGroupOverallRepository) Find(groupId primitive.ObjectID) (*models.GroupOverall, error) {
	var (
		group    *models.Group
		groupErr error
		rows     []groupBillsRow
		billsErr error
	)

	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer utils.RecoveryWithCallback(&wg, func(cause any) {
			groupErr = fmt.Errorf("group fetch panicked: %v", cause)
		})
		var found models.Group
		err := r.Db.Collection(group_repository.GroupCollection).
			FindOne(context.Background(), bson.M{"_id": groupId}).Decode(&found)
		if err == nil {
			group = &found
		} else if err != mongo.ErrNoDocuments {
			groupErr = err
		}
		wg.Done()
	}()

	go func() {
		defer utils.RecoveryWithCallback(&wg, func(cause any) {
			billsErr = fmt.Errorf("bill aggregate panicked: %v", cause)
		})
		cursor, err := r.Db.Collection(bill_repository.BillCollection).
			Aggregate(context.Background(), GroupBillsPipeline(groupId))
		if err != nil {
			billsErr = err
		} else {
			billsErr = cursor.All(context.Background(), &rows)
		}
		wg.Done()
	}()

	wg.Wait()

	if groupErr != nil {
		return nil, groupErr
	}
	if billsErr != nil {
		return nil, billsErr
	}
	if group == nil {
		return nil, nil
	}

	overall := &models.GroupOverall{
		Estimation: group.Estimation,
		Data:       []models.Bill{},
	}
	if len(rows) > 0 {
		overall.Total = rows[0].Total
		overall.Data = rows[0].Data
	}

	return overall, nil
}
