package split_bill

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	presentationProtocols "github.com/finsplit/finsplit-backend/internal/presentation/protocols"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type removePersonStub struct {
	err   error
	calls int
}

func (s *removePersonStub) Remove(groupId primitive.ObjectID, personId primitive.ObjectID) error {
	s.calls++
	return s.err
}

func removePersonRequest(t *testing.T, groupId string, personId string) presentationProtocols.HttpRequest {
	t.Helper()

	req := httptest.NewRequest(http.MethodDelete,
		"/split-bill/person?group_id="+groupId+"&person_id="+personId, nil)

	return presentationProtocols.HttpRequest{
		Header: req.Header,
		Req:    req,
	}
}

func TestRemovePerson(t *testing.T) {
	groupId := primitive.NewObjectID().Hex()
	personId := primitive.NewObjectID().Hex()

	tests := []struct {
		name       string
		groupId    string
		personId   string
		removeErr  error
		wantStatus int
		wantCalls  int
	}{
		{
			name:       "removal succeeds",
			groupId:    groupId,
			personId:   personId,
			wantStatus: http.StatusOK,
			wantCalls:  1,
		},
		{
			name:       "unknown group or person is not found",
			groupId:    groupId,
			personId:   personId,
			removeErr:  mongo.ErrNoDocuments,
			wantStatus: http.StatusNotFound,
			wantCalls:  1,
		},
		{
			name:       "store failure is a server error",
			groupId:    groupId,
			personId:   personId,
			removeErr:  errors.New("write concern"),
			wantStatus: http.StatusInternalServerError,
			wantCalls:  1,
		},
		{
			name:       "invalid group id",
			groupId:    "nope",
			personId:   personId,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "invalid person id",
			groupId:    groupId,
			personId:   "nope",
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stub := &removePersonStub{err: tt.removeErr}
			controller := NewRemovePersonController(stub)

			response := controller.Handle(removePersonRequest(t, tt.groupId, tt.personId))

			if response.StatusCode != tt.wantStatus {
				t.Fatalf("status = %d, want %d", response.StatusCode, tt.wantStatus)
			}
			if stub.calls != tt.wantCalls {
				t.Errorf("repository called %d times, want %d", stub.calls, tt.wantCalls)
			}
		})
	}
}
