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

type FindPersonWiseBillsRepository struct {
	Db *mongo.Database
}

func NewFindPersonWiseBillsRepository(db *mongo.Database) *FindPersonWiseBillsRepository {
	return &FindPersonWiseBillsRepository{
		Db: db,
	}
}

// PersonWiseRow is one participant's aggregate across a group's bills:
// every embedded share unwound to its own row, grouped back by person.
type PersonWiseRow struct {
	PersonId string                 `bson:"_id"`
	Total    float64                `bson:"total"`
	Bills    []models.PersonBillRow `bson:"bills"`
}

// PersonWiseBillsPipeline unwinds each bill's persons array and groups the
// rows by participant, summing that participant's shares.
func PersonWiseBillsPipeline(groupId primitive.ObjectID) mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"group_id": groupId.Hex()}}},
		{{Key: "$unwind", Value: "$persons"}},
		{{Key: "$group", Value: bson.M{
			"_id":   "$persons.person_id",
			"total": bson.M{"$sum": "$persons.value"},
			"bills": bson.M{"$push": "$$ROOT"},
		}}},
	}
}

// MergePersonWise folds the group roster's paid tallies into the per-person
// aggregates. Every roster member gets an entry even with no bills, and
// rows referencing persons no longer on the roster are kept so stale
// references stay visible.
func MergePersonWise(persons []models.GroupPerson, rows []PersonWiseRow) map[string]models.PersonWiseEntry {
	entries := make(map[string]models.PersonWiseEntry, len(persons))

	for _, row := range rows {
		entries[row.PersonId] = models.PersonWiseEntry{
			Total: row.Total,
			Bills: row.Bills,
		}
	}

	for _, person := range persons {
		entry := entries[person.Id.Hex()]
		entry.Paid = person.Paid
		entries[person.Id.Hex()] = entry
	}

	return entries
}

// Find fetches the group document and the per-person bill aggregate
// concurrently, then merges paid tallies into the aggregates. Returns nil
// when the group does not exist.
func (r *FindPersonWiseBillsRepository) Find(groupId primitive.ObjectID) (map[string]models.PersonWiseEntry, error) {
	var (
		group    *models.Group
		groupErr error
		rows     []PersonWiseRow
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
			billsErr = fmt.Errorf("person-wise aggregate panicked: %v", cause)
		})
		cursor, err := r.Db.Collection(bill_repository.BillCollection).
			Aggregate(context.Background(), PersonWiseBillsPipeline(groupId))
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

	return MergePersonWise(group.Persons, rows), nil
}
