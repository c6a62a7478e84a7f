package transaction_repository

import (
	"context"

	"github.com/finsplit/finsplit-backend/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type DeleteTransactionRepository struct {
	Db *mongo.Database
}

func NewDeleteTransactionRepository(db *mongo.Database) *DeleteTransactionRepository {
	return &DeleteTransactionRepository{
		Db: db,
	}
}

func (r *DeleteTransactionRepository) Delete(kind models.TransactionKind, id primitive.ObjectID) error {
	name, ok := CollectionName(kind)
	if !ok {
		return ErrInvalidKind
	}
	collection := r.Db.Collection(name)

	_, err := collection.DeleteOne(context.Background(), bson.M{"_id": id})
	return err
}
