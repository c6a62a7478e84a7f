package transaction_repository

import (
	"context"
	"time"

	"github.com/finsplit/finsplit-backend/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type CreateTransactionRepository struct {
	Db *mongo.Database
}

func NewCreateTransactionRepository(db *mongo.Database) *CreateTransactionRepository {
	return &CreateTransactionRepository{
		Db: db,
	}
}

func (r *CreateTransactionRepository) Create(kind models.TransactionKind, transaction *models.Transaction) (*models.Transaction, error) {
	name, ok := CollectionName(kind)
	if !ok {
		return nil, ErrInvalidKind
	}
	collection := r.Db.Collection(name)

	transactionToSave := &models.Transaction{
		Id:         primitive.NewObjectID(),
		UserId:     transaction.UserId,
		CategoryId: transaction.CategoryId,
		Value:      transaction.Value,
		Remarks:    transaction.Remarks,
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
	}

	_, err := collection.InsertOne(context.Background(), transactionToSave)
	if err != nil {
		return nil, err
	}

	return transactionToSave, nil
}

func (r *CreateTransactionRepository) CreateMany(kind models.TransactionKind, transactions []models.Transaction) error {
	name, ok := CollectionName(kind)
	if !ok {
		return ErrInvalidKind
	}
	collection := r.Db.Collection(name)

	documents := make([]any, len(transactions))
	for i, transaction := range transactions {
		transaction.Id = primitive.NewObjectID()
		transaction.CreatedAt = time.Now()
		transaction.UpdatedAt = time.Now()
		documents[i] = transaction
	}

	_, err := collection.InsertMany(context.Background(), documents)
	return err
}
