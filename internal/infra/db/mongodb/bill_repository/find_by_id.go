package bill_repository

import (
	"context"

	"github.com/finsplit/finsplit-backend/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type FindBillByIdRepository struct {
	Db *mongo.Database
}

func NewFindBillByIdRepository(db *mongo.Database) *FindBillByIdRepository {
	return &FindBillByIdRepository{
		Db: db,
	}
}

func (r *FindBillByIdRepository) Find(billId primitive.ObjectID) (*models.Bill, error) {
	collection := r.Db.Collection(BillCollection)

	var bill models.Bill
	err := collection.FindOne(context.Background(), bson.M{"_id": billId}).Decode(&bill)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &bill, nil
}
