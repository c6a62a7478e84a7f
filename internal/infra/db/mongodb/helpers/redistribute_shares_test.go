package helpers

import (
	"math"
	"testing"

	"github.com/finsplit/finsplit-backend/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func billWithShares(id primitive.ObjectID, value float64, shares map[string]float64, order []string) models.Bill {
	persons := make([]models.BillPerson, 0, len(order))
	for _, personId := range order {
		persons = append(persons, models.BillPerson{PersonId: personId, Value: shares[personId]})
	}
	return models.Bill{
		Id:      id,
		GroupId: "g1",
		Name:    "bill",
		Value:   value,
		Persons: persons,
	}
}

func shareOf(t *testing.T, bill models.Bill, personId string) float64 {
	t.Helper()
	for _, person := range bill.Persons {
		if person.PersonId == personId {
			return person.Value
		}
	}
	t.Fatalf("person %s not found on bill %s", personId, bill.Id.Hex())
	return 0
}

func TestRedistributeShares(t *testing.T) {
	billId := primitive.NewObjectID()

	tests := []struct {
		name     string
		bills    []models.Bill
		personId string
		validate func(t *testing.T, outcome *RedistributeOutcome)
	}{
		{
			name: "departing share split across remaining in list order",
			bills: []models.Bill{
				billWithShares(billId, 100, map[string]float64{"A": 40, "B": 30, "C": 30}, []string{"A", "B", "C"}),
			},
			personId: "B",
			validate: func(t *testing.T, outcome *RedistributeOutcome) {
				if len(outcome.Deleted) != 0 {
					t.Fatalf("expected no deletions, got %d", len(outcome.Deleted))
				}
				if len(outcome.Updated) != 1 {
					t.Fatalf("expected 1 updated bill, got %d", len(outcome.Updated))
				}
				bill := outcome.Updated[0]
				if len(bill.Persons) != 2 {
					t.Fatalf("expected 2 remaining participants, got %d", len(bill.Persons))
				}
				if got := shareOf(t, bill, "A"); got != 55 {
					t.Errorf("A share = %v, want 55", got)
				}
				if got := shareOf(t, bill, "C"); got != 45 {
					t.Errorf("C share = %v, want 45", got)
				}
			},
		},
		{
			name: "sole participant leaving deletes the bill",
			bills: []models.Bill{
				billWithShares(billId, 80, map[string]float64{"A": 80}, []string{"A"}),
			},
			personId: "A",
			validate: func(t *testing.T, outcome *RedistributeOutcome) {
				if len(outcome.Updated) != 0 {
					t.Fatalf("expected no updates, got %d", len(outcome.Updated))
				}
				if len(outcome.Deleted) != 1 || outcome.Deleted[0] != billId {
					t.Fatalf("expected bill %s marked for deletion, got %v", billId.Hex(), outcome.Deleted)
				}
			},
		},
		{
			name: "zero departing share leaves everyone unchanged",
			bills: []models.Bill{
				billWithShares(billId, 60, map[string]float64{"A": 30, "B": 0, "C": 30}, []string{"A", "B", "C"}),
			},
			personId: "B",
			validate: func(t *testing.T, outcome *RedistributeOutcome) {
				bill := outcome.Updated[0]
				if got := shareOf(t, bill, "A"); got != 30 {
					t.Errorf("A share = %v, want 30", got)
				}
				if got := shareOf(t, bill, "C"); got != 30 {
					t.Errorf("C share = %v, want 30", got)
				}
			},
		},
		{
			name: "uneven division concentrates rounding on the tail",
			bills: []models.Bill{
				billWithShares(billId, 40, map[string]float64{"A": 10, "B": 10, "C": 10, "D": 10}, []string{"A", "B", "C", "D"}),
			},
			personId: "A",
			validate: func(t *testing.T, outcome *RedistributeOutcome) {
				// 10 over [B, C, D]: round(10/3)=3, round(7/2)=4, round(3/1)=3.
				bill := outcome.Updated[0]
				if got := shareOf(t, bill, "B"); got != 13 {
					t.Errorf("B share = %v, want 13", got)
				}
				if got := shareOf(t, bill, "C"); got != 14 {
					t.Errorf("C share = %v, want 14", got)
				}
				if got := shareOf(t, bill, "D"); got != 13 {
					t.Errorf("D share = %v, want 13", got)
				}
			},
		},
		{
			name: "negative departing share never reduces anyone",
			bills: []models.Bill{
				billWithShares(billId, 50, map[string]float64{"A": 30, "B": -10, "C": 30}, []string{"A", "B", "C"}),
			},
			personId: "B",
			validate: func(t *testing.T, outcome *RedistributeOutcome) {
				bill := outcome.Updated[0]
				if got := shareOf(t, bill, "A"); got != 30 {
					t.Errorf("A share = %v, want 30", got)
				}
				if got := shareOf(t, bill, "C"); got != 30 {
					t.Errorf("C share = %v, want 30", got)
				}
			},
		},
		{
			name: "bills without the person are untouched",
			bills: []models.Bill{
				billWithShares(billId, 20, map[string]float64{"A": 20}, []string{"A"}),
			},
			personId: "Z",
			validate: func(t *testing.T, outcome *RedistributeOutcome) {
				if len(outcome.Updated) != 0 || len(outcome.Deleted) != 0 {
					t.Fatalf("expected no changes, got %+v", outcome)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			outcome := RedistributeShares(tt.bills, tt.personId)
			tt.validate(t, outcome)
		})
	}
}

func TestRedistributeSharesConservesTotals(t *testing.T) {
	shareSets := [][]float64{
		{40, 30, 30},
		{1, 1, 1, 1, 1, 1, 1},
		{100, 3, 7, 13},
		{25, 25, 25, 25},
	}

	for _, shares := range shareSets {
		persons := make([]models.BillPerson, len(shares))
		var total float64
		for i, value := range shares {
			persons[i] = models.BillPerson{PersonId: string(rune('A' + i)), Value: value}
			total += value
		}
		bill := models.Bill{Id: primitive.NewObjectID(), Value: total, Persons: persons}

		outcome := RedistributeShares([]models.Bill{bill}, "A")
		if len(outcome.Updated) != 1 {
			t.Fatalf("shares %v: expected 1 updated bill", shares)
		}

		var after float64
		for _, person := range outcome.Updated[0].Persons {
			if person.Value < shares[person.PersonId[0]-'A'] {
				t.Errorf("shares %v: %s decreased to %v", shares, person.PersonId, person.Value)
			}
			after += person.Value
		}
		drift := math.Abs(after - total)
		if drift > float64(len(shares)) {
			t.Errorf("shares %v: redistributed sum %v drifts %v from total %v", shares, after, drift, total)
		}
	}
}
