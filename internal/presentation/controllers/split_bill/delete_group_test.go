package split_bill

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	presentationProtocols "github.com/finsplit/finsplit-backend/internal/presentation/protocols"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type deleteBillsByGroupStub struct {
	order *[]string
	err   error
}

func (s *deleteBillsByGroupStub) DeleteByGroupId(groupId primitive.ObjectID) error {
	*s.order = append(*s.order, "bills")
	return s.err
}

type deleteGroupStub struct {
	order *[]string
	err   error
}

func (s *deleteGroupStub) Delete(groupId primitive.ObjectID) error {
	*s.order = append(*s.order, "group")
	return s.err
}

func deleteGroupRequest(t *testing.T, id string) presentationProtocols.HttpRequest {
	t.Helper()

	req := httptest.NewRequest(http.MethodDelete, "/split-bill/group/"+id, nil)
	req.SetPathValue("id", id)

	return presentationProtocols.HttpRequest{
		Header: req.Header,
		Req:    req,
	}
}

func TestDeleteGroupCascade(t *testing.T) {
	tests := []struct {
		name       string
		billsErr   error
		groupErr   error
		wantStatus int
		wantOrder  []string
	}{
		{
			name:       "bills deleted before the group",
			wantStatus: http.StatusOK,
			wantOrder:  []string{"bills", "group"},
		},
		{
			name:       "bills failure short-circuits the group delete",
			billsErr:   errors.New("write concern"),
			wantStatus: http.StatusInternalServerError,
			wantOrder:  []string{"bills"},
		},
		{
			name:       "group failure after bills is a server error",
			groupErr:   errors.New("write concern"),
			wantStatus: http.StatusInternalServerError,
			wantOrder:  []string{"bills", "group"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var order []string
			controller := NewDeleteGroupController(
				&deleteBillsByGroupStub{order: &order, err: tt.billsErr},
				&deleteGroupStub{order: &order, err: tt.groupErr},
			)

			response := controller.Handle(deleteGroupRequest(t, primitive.NewObjectID().Hex()))

			if response.StatusCode != tt.wantStatus {
				t.Fatalf("status = %d, want %d", response.StatusCode, tt.wantStatus)
			}
			if len(order) != len(tt.wantOrder) {
				t.Fatalf("calls = %v, want %v", order, tt.wantOrder)
			}
			for i := range order {
				if order[i] != tt.wantOrder[i] {
					t.Fatalf("calls = %v, want %v", order, tt.wantOrder)
				}
			}
		})
	}
}

func TestDeleteGroupInvalidId(t *testing.T) {
	var order []string
	controller := NewDeleteGroupController(
		&deleteBillsByGroupStub{order: &order},
		&deleteGroupStub{order: &order},
	)

	response := controller.Handle(deleteGroupRequest(t, "not-an-id"))

	if response.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", response.StatusCode, http.StatusBadRequest)
	}
	if len(order) != 0 {
		t.Errorf("calls = %v, want none", order)
	}
}
