package group_repository

import (
	"context"
	"log"
	"time"

	"github.com/finsplit/finsplit-backend/internal/domain/models"
	"github.com/finsplit/finsplit-backend/internal/infra/db/mongodb/bill_repository"
	"github.com/finsplit/finsplit-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type RemovePersonRepository struct {
	Db *mongo.Database
}

func NewRemovePersonRepository(db *mongo.Database) *RemovePersonRepository {
	return &RemovePersonRepository{
		Db: db,
	}
}

// Remove takes a person off the group roster after re-apportioning their
// share of every bill they were part of. Bills are rewritten in one bulk
// write (updates for redistributed bills, deletes for bills left with no
// participants), then the person is pulled from the group. The two steps
// are not wrapped in a transaction; a failure between them is logged so
// the stranded state is visible to operators. Returns mongo.ErrNoDocuments
// when the group does not exist or does not carry the person.
func (r *RemovePersonRepository) Remove(groupId primitive.ObjectID, personId primitive.ObjectID) error {
	bills := r.Db.Collection(bill_repository.BillCollection)
	groups := r.Db.Collection(GroupCollection)

	filter := bson.M{
		"group_id":          groupId.Hex(),
		"persons.person_id": personId.Hex(),
	}
	cursor, err := bills.Find(context.Background(), filter)
	if err != nil {
		return err
	}

	var affected []models.Bill
	if err := cursor.All(context.Background(), &affected); err != nil {
		return err
	}

	outcome := helpers.RedistributeShares(affected, personId.Hex())

	writes := make([]mongo.WriteModel, 0, len(outcome.Updated)+len(outcome.Deleted))
	for _, bill := range outcome.Updated {
		writes = append(writes, mongo.NewUpdateOneModel().
			SetFilter(bson.M{"_id": bill.Id}).
			SetUpdate(bson.M{"$set": bson.M{
				"persons":    bill.Persons,
				"updated_at": time.Now(),
			}}))
	}
	for _, billId := range outcome.Deleted {
		writes = append(writes, mongo.NewDeleteOneModel().
			SetFilter(bson.M{"_id": billId}))
	}

	if len(writes) > 0 {
		if _, err := bills.BulkWrite(context.Background(), writes); err != nil {
			return err
		}
	}

	update := bson.M{
		"$pull": bson.M{"persons": bson.M{"id": personId}},
		"$set":  bson.M{"updated_at": time.Now()},
	}
	rosterFilter := bson.M{"_id": groupId, "persons.id": personId}
	result, err := groups.UpdateOne(context.Background(), rosterFilter, update)
	if err != nil {
		log.Printf("person %s redistributed out of %d bills but still on roster of group %s: %v",
			personId.Hex(), len(writes), groupId.Hex(), err)
		return err
	}
	if result.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}

	return nil
}
