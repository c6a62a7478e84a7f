package transaction_repository

import (
	"context"
	"time"

	"github.com/finsplit/finsplit-backend/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type UpdateTransactionRepository struct {
	Db *mongo.Database
}

func NewUpdateTransactionRepository(db *mongo.Database) *UpdateTransactionRepository {
	return &UpdateTransactionRepository{
		Db: db,
	}
}

func (r *UpdateTransactionRepository) Update(kind models.TransactionKind, id primitive.ObjectID, fields map[string]any) error {
	name, ok := CollectionName(kind)
	if !ok {
		return ErrInvalidKind
	}
	collection := r.Db.Collection(name)

	set := bson.M{"updated_at": time.Now()}
	for field, value := range fields {
		set[field] = value
	}

	result, err := collection.UpdateOne(context.Background(), bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}

	return nil
}
