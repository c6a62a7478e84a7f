package split_bill

import (
	"net/http"

	"github.com/finsplit/finsplit-backend/internal/domain/models"
	"github.com/finsplit/finsplit-backend/internal/domain/usecase"
	"github.com/finsplit/finsplit-backend/internal/presentation/helpers"
	presentationProtocols "github.com/finsplit/finsplit-backend/internal/presentation/protocols"
	"github.com/go-playground/validator/v10"
)

type GetGroupsController struct {
	FindGroupsRepository usecase.FindGroupsRepository
	Validate             *validator.Validate
}

func NewGetGroupsController(findGroups usecase.FindGroupsRepository) *GetGroupsController {
	validate := validator.New(validator.WithRequiredStructEnabled())

	return &GetGroupsController{
		FindGroupsRepository: findGroups,
		Validate:             validate,
	}
}

type GetGroupsResponse struct {
	Data    []models.Group `json:"data"`
	Message string         `json:"message"`
}

func (c *GetGroupsController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	filter, _, errResponse := helpers.GetReportFilterByQueries(&r.UrlParams, r.Header.Get("UserId"), c.Validate)
	if errResponse != nil {
		return errResponse
	}

	groups, err := c.FindGroupsRepository.Find(filter.UserId, filter.StartTime, filter.EndTime)
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Message: "error fetching groups",
		}, http.StatusInternalServerError)
	}
	if groups == nil {
		groups = []models.Group{}
	}

	return helpers.CreateResponse(&GetGroupsResponse{
		Data:    groups,
		Message: "Fetched Month Data",
	}, http.StatusOK)
}
