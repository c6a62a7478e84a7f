package report_repository

import (
	"testing"
	"time"

	"github.com/finsplit/finsplit-backend/internal/domain/models"
	"github.com/finsplit/finsplit-backend/internal/domain/usecase"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

func stageValue(t *testing.T, pipeline mongo.Pipeline, index int, name string) any {
	t.Helper()
	if index >= len(pipeline) {
		t.Fatalf("pipeline has %d stages, wanted stage %d (%s)", len(pipeline), index, name)
	}
	stage := pipeline[index]
	if len(stage) != 1 || stage[0].Key != name {
		t.Fatalf("stage %d = %v, want single %s stage", index, stage, name)
	}
	return stage[0].Value
}

func TestOverallReportPipeline(t *testing.T) {
	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 3)
	filter := &usecase.ReportFilter{
		UserId:    "u1",
		StartTime: start,
		EndTime:   end,
	}

	pipeline := OverallReportPipeline(filter)

	match := stageValue(t, pipeline, 0, "$match").(bson.M)
	if match["user_id"] != "u1" {
		t.Errorf("match user_id = %v, want u1", match["user_id"])
	}
	window := match["created_at"].(bson.M)
	if !window["$gt"].(time.Time).Equal(start) {
		t.Errorf("window lower bound = %v, want exclusive %v", window["$gt"], start)
	}
	if !window["$lte"].(time.Time).Equal(end) {
		t.Errorf("window upper bound = %v, want inclusive %v", window["$lte"], end)
	}
	if _, filtered := match["category_id"]; filtered {
		t.Error("category filter applied without a category id")
	}

	stageValue(t, pipeline, 1, "$sort")

	group := stageValue(t, pipeline, 2, "$group").(bson.M)
	if group["_id"] != nil {
		t.Errorf("group _id = %v, want nil (single row)", group["_id"])
	}
	for _, accumulator := range []string{"data", "total", "max", "min", "avg"} {
		if _, ok := group[accumulator]; !ok {
			t.Errorf("group stage missing %s accumulator", accumulator)
		}
	}

	// the extreme documents must compare by value first
	max := group["max"].(bson.M)["$max"].(bson.D)
	if max[0].Key != "value" {
		t.Errorf("max accumulator leads with %s, want value", max[0].Key)
	}
}

func TestOverallReportPipelineCategoryFilter(t *testing.T) {
	filter := &usecase.ReportFilter{
		UserId:     "u1",
		CategoryId: "groceries",
		StartTime:  time.Now().Add(-24 * time.Hour),
		EndTime:    time.Now(),
	}

	match := stageValue(t, OverallReportPipeline(filter), 0, "$match").(bson.M)
	if match["category_id"] != "groceries" {
		t.Errorf("match category_id = %v, want groceries", match["category_id"])
	}
}

func TestCategoryWisePipeline(t *testing.T) {
	filter := &usecase.ReportFilter{
		UserId:    "u1",
		StartTime: time.Now().Add(-24 * time.Hour),
		EndTime:   time.Now(),
	}

	pipeline := CategoryWisePipeline(filter)

	group := stageValue(t, pipeline, 1, "$group").(bson.M)
	if group["_id"] != "$category_id" {
		t.Errorf("group dimension = %v, want $category_id", group["_id"])
	}
	for _, accumulator := range []string{"count", "total", "max", "min", "avg"} {
		if _, ok := group[accumulator]; !ok {
			t.Errorf("group stage missing %s accumulator", accumulator)
		}
	}
}

func TestPersonWiseBillsPipeline(t *testing.T) {
	groupId := primitive.NewObjectID()

	pipeline := PersonWiseBillsPipeline(groupId)

	match := stageValue(t, pipeline, 0, "$match").(bson.M)
	if match["group_id"] != groupId.Hex() {
		t.Errorf("match group_id = %v, want stringified %v", match["group_id"], groupId.Hex())
	}
	if unwind := stageValue(t, pipeline, 1, "$unwind"); unwind != "$persons" {
		t.Errorf("unwind path = %v, want $persons", unwind)
	}
	group := stageValue(t, pipeline, 2, "$group").(bson.M)
	if group["_id"] != "$persons.person_id" {
		t.Errorf("group dimension = %v, want $persons.person_id", group["_id"])
	}
}

func TestMergePersonWise(t *testing.T) {
	alice := models.GroupPerson{Id: primitive.NewObjectID(), Name: "Alice", Paid: 25}
	bob := models.GroupPerson{Id: primitive.NewObjectID(), Name: "Bob", Paid: 0}
	ghost := primitive.NewObjectID().Hex()

	rows := []PersonWiseRow{
		{PersonId: alice.Id.Hex(), Total: 70, Bills: []models.PersonBillRow{{Name: "dinner", Value: 100}}},
		{PersonId: ghost, Total: 5},
	}

	entries := MergePersonWise([]models.GroupPerson{alice, bob}, rows)

	if entry := entries[alice.Id.Hex()]; entry.Total != 70 || entry.Paid != 25 || len(entry.Bills) != 1 {
		t.Errorf("alice entry = %+v, want total 70, paid 25, 1 bill", entry)
	}
	if entry, ok := entries[bob.Id.Hex()]; !ok || entry.Total != 0 || entry.Paid != 0 {
		t.Errorf("bob entry = %+v, want zeroed entry present", entry)
	}
	if entry, ok := entries[ghost]; !ok || entry.Total != 5 {
		t.Errorf("stale participant entry = %+v, want kept with total 5", entry)
	}
}
