package bill_repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type UpdateBillRepository struct {
	Db *mongo.Database
}

func NewUpdateBillRepository(db *mongo.Database) *UpdateBillRepository {
	return &UpdateBillRepository{
		Db: db,
	}
}

func (r *UpdateBillRepository) Update(billId primitive.ObjectID, fields map[string]any) error {
	collection := r.Db.Collection(BillCollection)

	set := bson.M{"updated_at": time.Now()}
	for field, value := range fields {
		set[field] = value
	}

	result, err := collection.UpdateOne(context.Background(), bson.M{"_id": billId}, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}

	return nil
}
