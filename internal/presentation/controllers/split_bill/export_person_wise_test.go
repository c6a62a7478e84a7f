package split_bill

import (
	"testing"

	"github.com/finsplit/finsplit-backend/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestRenderSettlementSheet(t *testing.T) {
	aliceId := primitive.NewObjectID()
	bobId := primitive.NewObjectID()

	group := &models.Group{
		Id:    primitive.NewObjectID(),
		Title: "trip",
		Persons: []models.GroupPerson{
			{Id: aliceId, Name: "Alice", Paid: 70},
			{Id: bobId, Name: "Bob", Paid: 0},
		},
	}

	entries := map[string]models.PersonWiseEntry{
		aliceId.Hex(): {
			Total: 55,
			Paid:  70,
			Bills: []models.PersonBillRow{
				{Name: "dinner"},
				{Name: "cab"},
			},
		},
		bobId.Hex(): {
			Total: 45,
			Paid:  0,
			Bills: []models.PersonBillRow{
				{Name: "dinner"},
			},
		},
	}

	file, err := renderSettlementSheet(group, entries)
	if err != nil {
		t.Fatalf("renderSettlementSheet: %v", err)
	}

	cell := func(ref string) string {
		value, err := file.GetCellValue("Settlement", ref)
		if err != nil {
			t.Fatalf("GetCellValue(%s): %v", ref, err)
		}
		return value
	}

	if got := cell("A1"); got != "Person" {
		t.Errorf("header A1 = %q, want Person", got)
	}

	// rows sort by roster name: Alice before Bob
	if got := cell("A2"); got != "Alice" {
		t.Errorf("A2 = %q, want Alice", got)
	}
	if got := cell("B2"); got != "55" {
		t.Errorf("B2 = %q, want 55", got)
	}
	if got := cell("C2"); got != "70" {
		t.Errorf("C2 = %q, want 70", got)
	}
	if got := cell("D2"); got != "15" {
		t.Errorf("D2 = %q, want 15", got)
	}
	if got := cell("E2"); got != "cab, dinner" {
		t.Errorf("E2 = %q, want cab, dinner", got)
	}

	if got := cell("A3"); got != "Bob" {
		t.Errorf("A3 = %q, want Bob", got)
	}
	if got := cell("D3"); got != "-45" {
		t.Errorf("D3 = %q, want -45", got)
	}
}
