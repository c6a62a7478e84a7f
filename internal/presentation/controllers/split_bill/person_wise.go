package split_bill

import (
	"net/http"

	"github.com/finsplit/finsplit-backend/internal/domain/models"
	"github.com/finsplit/finsplit-backend/internal/domain/usecase"
	"github.com/finsplit/finsplit-backend/internal/presentation/helpers"
	presentationProtocols "github.com/finsplit/finsplit-backend/internal/presentation/protocols"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type PersonWiseController struct {
	FindPersonWiseBillsRepository usecase.FindPersonWiseBillsRepository
}

func NewPersonWiseController(findPersonWise usecase.FindPersonWiseBillsRepository) *PersonWiseController {
	return &PersonWiseController{
		FindPersonWiseBillsRepository: findPersonWise,
	}
}

type PersonWiseResponse struct {
	Data    map[string]models.PersonWiseEntry `json:"data"`
	Message string                            `json:"message"`
}

func (c *PersonWiseController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	groupId, err := primitive.ObjectIDFromHex(r.Req.PathValue("id"))
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Message: "invalid group id",
		}, http.StatusBadRequest)
	}

	entries, err := c.FindPersonWiseBillsRepository.Find(groupId)
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Message: "error fetching person wise report",
		}, http.StatusInternalServerError)
	}
	if entries == nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Message: "group not found",
		}, http.StatusNotFound)
	}

	return helpers.CreateResponse(&PersonWiseResponse{
		Data:    entries,
		Message: "Fetched Person Wise Data",
	}, http.StatusOK)
}
