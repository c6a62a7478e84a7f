package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// BillPerson is one participant's share of a bill. PersonId references an
// entry in the owning group's persons list by its hex id.
type BillPerson struct {
	PersonId string  `json:"personId" bson:"person_id"`
	Value    float64 `json:"value" bson:"value"`
}

// Bill belongs to exactly one group. GroupId is the stringified group id so
// bills can be looked up from the group collection without an ObjectID cast.
type Bill struct {
	Id        primitive.ObjectID `json:"id" bson:"_id"`
	GroupId   string             `json:"groupId" bson:"group_id"`
	Name      string             `json:"name" bson:"name"`
	Value     float64            `json:"value" bson:"value"`
	Persons   []BillPerson       `json:"persons" bson:"persons"`
	CreatedAt time.Time          `json:"createdAt" bson:"created_at"`
	UpdatedAt time.Time          `json:"updatedAt" bson:"updated_at"`
}
