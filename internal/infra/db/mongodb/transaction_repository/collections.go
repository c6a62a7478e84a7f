package transaction_repository

import (
	"errors"

	"github.com/finsplit/finsplit-backend/internal/domain/models"
)

var ErrInvalidKind = errors.New("invalid transaction type")

// collectionNames maps a transaction kind to its storage partition. The
// three kinds share one record shape and differ only in which collection
// holds them.
var collectionNames = map[models.TransactionKind]string{
	models.TransactionCredit:     "user_credit",
	models.TransactionDebit:      "user_debit",
	models.TransactionEstimation: "user_estimation",
}

func CollectionName(kind models.TransactionKind) (string, bool) {
	name, ok := collectionNames[kind]
	return name, ok
}
