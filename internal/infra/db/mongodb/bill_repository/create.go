package bill_repository

import (
	"context"
	"time"

	"github.com/finsplit/finsplit-backend/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

const BillCollection = "spb_bills"

type CreateBillsRepository struct {
	Db *mongo.Database
}

func NewCreateBillsRepository(db *mongo.Database) *CreateBillsRepository {
	return &CreateBillsRepository{
		Db: db,
	}
}

func (r *CreateBillsRepository) Create(bills []models.Bill) error {
	collection := r.Db.Collection(BillCollection)

	documents := make([]any, len(bills))
	for i, bill := range bills {
		bill.Id = primitive.NewObjectID()
		bill.CreatedAt = time.Now()
		bill.UpdatedAt = time.Now()
		documents[i] = bill
	}

	_, err := collection.InsertMany(context.Background(), documents)
	return err
}
