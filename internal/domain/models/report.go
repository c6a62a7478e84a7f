package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ValueExtreme carries the extreme value of a window together with the
// category that produced it. Percentage is value/total*100, computed after
// the aggregation runs and left at 0 when the window total is 0.
type ValueExtreme struct {
	Value      float64 `json:"value" bson:"value"`
	CategoryId string  `json:"categoryId" bson:"category_id"`
	Percentage float64 `json:"percentage" bson:"percentage,omitempty"`
}

// DayWiseEntry is one non-empty 24-hour bucket of a window report. The
// window scalars are repeated on every bucket so a chart row is
// self-contained.
type DayWiseEntry struct {
	Day   time.Time     `json:"day"`
	Data  []Transaction `json:"data"`
	Total float64       `json:"total"`
	Min   ValueExtreme  `json:"min"`
	Max   ValueExtreme  `json:"max"`
	Avg   float64       `json:"avg"`
}

// WindowReport is the result of the overall aggregation over one
// transaction collection: the day-bucketed series plus window scalars.
// Zero-valued when nothing matched.
type WindowReport struct {
	DayWise []DayWiseEntry `json:"dayWise"`
	Total   float64        `json:"total"`
	Min     ValueExtreme   `json:"min"`
	Max     ValueExtreme   `json:"max"`
	Avg     float64        `json:"avg"`
}

// CategoryAggregate is the per-category rollup of the dimension-wise
// aggregation.
type CategoryAggregate struct {
	CategoryId string  `json:"categoryId" bson:"_id"`
	Count      int     `json:"count" bson:"count"`
	Total      float64 `json:"total" bson:"total"`
	Max        float64 `json:"max" bson:"max"`
	Min        float64 `json:"min" bson:"min"`
	Avg        float64 `json:"avg" bson:"avg"`
}

// GroupOverall merges a group's estimation with the aggregate over its
// bills.
type GroupOverall struct {
	Estimation float64 `json:"estimation"`
	Total      float64 `json:"total"`
	Data       []Bill  `json:"data"`
}

// PersonBillRow is a bill unwound to a single participant share.
type PersonBillRow struct {
	Id      primitive.ObjectID `json:"id" bson:"_id"`
	GroupId string             `json:"groupId" bson:"group_id"`
	Name    string             `json:"name" bson:"name"`
	Value   float64            `json:"value" bson:"value"`
	Person  BillPerson         `json:"person" bson:"persons"`
}

// PersonWiseEntry is one participant's rollup: the total they owe across
// the group's bills, the unwound bill rows, and what they have paid so far
// (carried on the group's persons list).
type PersonWiseEntry struct {
	Total float64         `json:"total"`
	Bills []PersonBillRow `json:"bills"`
	Paid  float64         `json:"paid"`
}
