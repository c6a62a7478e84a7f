package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type GroupPerson struct {
	Id   primitive.ObjectID `json:"id" bson:"id"`
	Name string             `json:"name" bson:"name"`
	Paid float64            `json:"paid" bson:"paid"`
}

type Group struct {
	Id         primitive.ObjectID `json:"id" bson:"_id"`
	Title      string             `json:"title" bson:"title"`
	Estimation float64            `json:"estimation" bson:"estimation"`
	Persons    []GroupPerson      `json:"persons" bson:"persons"`
	UserId     string             `json:"userId" bson:"user_id"`
	// Actual is the sum of the group's bill values, computed at read time
	// by a lookup against the bill collection. It is never persisted.
	Actual    float64   `json:"actual" bson:"actual,omitempty"`
	CreatedAt time.Time `json:"createdAt" bson:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updated_at"`
}
