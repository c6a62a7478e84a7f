package split_bill

import (
	"net/http"

	"github.com/finsplit/finsplit-backend/internal/domain/usecase"
	"github.com/finsplit/finsplit-backend/internal/presentation/helpers"
	presentationProtocols "github.com/finsplit/finsplit-backend/internal/presentation/protocols"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type RemovePersonController struct {
	RemovePersonRepository usecase.RemovePersonRepository
}

func NewRemovePersonController(removePerson usecase.RemovePersonRepository) *RemovePersonController {
	return &RemovePersonController{
		RemovePersonRepository: removePerson,
	}
}

// Handle drops the person from the roster and redistributes their bill
// shares among the remaining participants of each affected bill.
func (c *RemovePersonController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	queries := r.Req.URL.Query()

	groupId, err := primitive.ObjectIDFromHex(queries.Get("group_id"))
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Message: "invalid group id",
		}, http.StatusBadRequest)
	}
	personId, err := primitive.ObjectIDFromHex(queries.Get("person_id"))
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Message: "invalid person id",
		}, http.StatusBadRequest)
	}

	if err := c.RemovePersonRepository.Remove(groupId, personId); err != nil {
		if err == mongo.ErrNoDocuments {
			return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
				Message: "person not found in group",
			}, http.StatusNotFound)
		}
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Message: "error removing person from group",
		}, http.StatusInternalServerError)
	}

	return helpers.CreateResponse(&MessageResponse{
		Message: "Person Removed",
	}, http.StatusOK)
}
