package split_bill

import (
	"net/http"

	"github.com/finsplit/finsplit-backend/internal/domain/models"
	"github.com/finsplit/finsplit-backend/internal/domain/usecase"
	"github.com/finsplit/finsplit-backend/internal/presentation/helpers"
	presentationProtocols "github.com/finsplit/finsplit-backend/internal/presentation/protocols"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type GroupOverallController struct {
	FindGroupOverallRepository usecase.FindGroupOverallRepository
}

func NewGroupOverallController(findGroupOverall usecase.FindGroupOverallRepository) *GroupOverallController {
	return &GroupOverallController{
		FindGroupOverallRepository: findGroupOverall,
	}
}

type GroupOverallResponse struct {
	Data    *models.GroupOverall `json:"data"`
	Message string               `json:"message"`
}

func (c *GroupOverallController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	groupId, err := primitive.ObjectIDFromHex(r.Req.PathValue("id"))
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Message: "invalid group id",
		}, http.StatusBadRequest)
	}

	overall, err := c.FindGroupOverallRepository.Find(groupId)
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Message: "error fetching group report",
		}, http.StatusInternalServerError)
	}
	if overall == nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Message: "group not found",
		}, http.StatusNotFound)
	}

	return helpers.CreateResponse(&GroupOverallResponse{
		Data:    overall,
		Message: "Fetched Group Data",
	}, http.StatusOK)
}
