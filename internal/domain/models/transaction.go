package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TransactionKind selects which of the three parallel collections holds a
// record. The kind is expressed by the collection, not by a field.
type TransactionKind string

const (
	TransactionCredit     TransactionKind = "credit"
	TransactionDebit      TransactionKind = "debit"
	TransactionEstimation TransactionKind = "estimation"
)

type Transaction struct {
	Id         primitive.ObjectID `json:"id" bson:"_id"`
	UserId     string             `json:"userId" bson:"user_id"`
	CategoryId string             `json:"categoryId" bson:"category_id"`
	Value      float64            `json:"value" bson:"value"`
	Remarks    string             `json:"remarks" bson:"remarks"`
	CreatedAt  time.Time          `json:"createdAt" bson:"created_at"`
	UpdatedAt  time.Time          `json:"updatedAt" bson:"updated_at"`
}
