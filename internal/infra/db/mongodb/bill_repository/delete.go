package bill_repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type DeleteBillRepository struct {
	Db *mongo.Database
}

func NewDeleteBillRepository(db *mongo.Database) *DeleteBillRepository {
	return &DeleteBillRepository{
		Db: db,
	}
}

func (r *DeleteBillRepository) Delete(billId primitive.ObjectID) error {
	collection := r.Db.Collection(BillCollection)

	_, err := collection.DeleteOne(context.Background(), bson.M{"_id": billId})
	return err
}
