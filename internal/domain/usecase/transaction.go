package usecase

import (
	"github.com/finsplit/finsplit-backend/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CreateTransactionRepository interface {
	Create(kind models.TransactionKind, transaction *models.Transaction) (*models.Transaction, error)
}

type CreateTransactionsRepository interface {
	CreateMany(kind models.TransactionKind, transactions []models.Transaction) error
}

type UpdateTransactionRepository interface {
	Update(kind models.TransactionKind, id primitive.ObjectID, fields map[string]any) error
}

type DeleteTransactionRepository interface {
	Delete(kind models.TransactionKind, id primitive.ObjectID) error
}
