package split_bill

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/finsplit/finsplit-backend/internal/domain/models"
	presentationProtocols "github.com/finsplit/finsplit-backend/internal/presentation/protocols"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type findBillStub struct {
	bill *models.Bill
	err  error
}

func (s *findBillStub) Find(billId primitive.ObjectID) (*models.Bill, error) {
	return s.bill, s.err
}

type updateBillStub struct {
	fields map[string]any
	calls  int
	err    error
}

func (s *updateBillStub) Update(billId primitive.ObjectID, fields map[string]any) error {
	s.fields = fields
	s.calls++
	return s.err
}

func updateBillRequest(t *testing.T, billId primitive.ObjectID, body string) presentationProtocols.HttpRequest {
	t.Helper()

	req := httptest.NewRequest(http.MethodPatch, "/split-bill/bill/"+billId.Hex(), nil)
	req.SetPathValue("id", billId.Hex())

	return presentationProtocols.HttpRequest{
		Body:   io.NopCloser(strings.NewReader(body)),
		Header: req.Header,
		Req:    req,
	}
}

func TestUpdateBillShareSum(t *testing.T) {
	billId := primitive.NewObjectID()
	storedBill := &models.Bill{
		Id:    billId,
		Value: 100,
		Persons: []models.BillPerson{
			{PersonId: primitive.NewObjectID().Hex(), Value: 60},
			{PersonId: primitive.NewObjectID().Hex(), Value: 40},
		},
	}

	tests := []struct {
		name       string
		body       string
		bill       *models.Bill
		wantStatus int
		wantUpdate bool
	}{
		{
			name:       "value alone breaking stored shares is rejected",
			body:       `{"value": 250}`,
			bill:       storedBill,
			wantStatus: http.StatusUnprocessableEntity,
		},
		{
			name:       "value alone matching stored shares passes",
			body:       `{"value": 100}`,
			bill:       storedBill,
			wantStatus: http.StatusOK,
			wantUpdate: true,
		},
		{
			name:       "value alone on a missing bill is not found",
			body:       `{"value": 100}`,
			bill:       nil,
			wantStatus: http.StatusNotFound,
		},
		{
			name: "value with fresh matching shares passes",
			body: `{"value": 250, "persons": [
				{"personId": "` + storedBill.Persons[0].PersonId + `", "value": 150},
				{"personId": "` + storedBill.Persons[1].PersonId + `", "value": 100}
			]}`,
			bill:       storedBill,
			wantStatus: http.StatusOK,
			wantUpdate: true,
		},
		{
			name: "fresh shares not summing to value are rejected",
			body: `{"value": 250, "persons": [
				{"personId": "` + storedBill.Persons[0].PersonId + `", "value": 150}
			]}`,
			bill:       storedBill,
			wantStatus: http.StatusUnprocessableEntity,
		},
		{
			name:       "name only skips the share check",
			body:       `{"name": "dinner"}`,
			bill:       nil,
			wantStatus: http.StatusOK,
			wantUpdate: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			update := &updateBillStub{}
			controller := NewUpdateBillController(&findBillStub{bill: tt.bill}, update)

			response := controller.Handle(updateBillRequest(t, billId, tt.body))

			if response.StatusCode != tt.wantStatus {
				t.Fatalf("status = %d, want %d", response.StatusCode, tt.wantStatus)
			}
			if tt.wantUpdate && update.calls == 0 {
				t.Error("expected the update to be persisted")
			}
			if !tt.wantUpdate && update.calls > 0 {
				t.Errorf("update persisted fields %v, want no write", update.fields)
			}
		})
	}
}
