package transaction

import (
	"net/http"

	"github.com/finsplit/finsplit-backend/internal/domain/models"
	"github.com/finsplit/finsplit-backend/internal/domain/usecase"
	"github.com/finsplit/finsplit-backend/internal/presentation/helpers"
	presentationProtocols "github.com/finsplit/finsplit-backend/internal/presentation/protocols"
	"github.com/go-playground/validator/v10"
)

type GetSingleCategoryReportController struct {
	FindOverallReportRepository usecase.FindOverallReportRepository
	Validate                    *validator.Validate
}

func NewGetSingleCategoryReportController(findOverall usecase.FindOverallReportRepository) *GetSingleCategoryReportController {
	validate := validator.New(validator.WithRequiredStructEnabled())

	return &GetSingleCategoryReportController{
		FindOverallReportRepository: findOverall,
		Validate:                    validate,
	}
}

type GetSingleCategoryResponse struct {
	Data    *models.WindowReport `json:"data"`
	Message string               `json:"message"`
}

// Handle drills into one category of one collection. The type parameter
// defaults to debit, where single-category drill-downs almost always live.
func (c *GetSingleCategoryReportController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	filter, kindParam, errResponse := helpers.GetReportFilterByQueries(&r.UrlParams, r.Header.Get("UserId"), c.Validate)
	if errResponse != nil {
		return errResponse
	}

	if filter.CategoryId == "" {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Message: "category_id is required",
		}, http.StatusBadRequest)
	}

	kind, ok := parseKind(kindParam, models.TransactionDebit)
	if !ok {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Message: "invalid transaction type",
		}, http.StatusBadRequest)
	}

	report, err := c.FindOverallReportRepository.Find(kind, filter)
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Message: "error fetching category report",
		}, http.StatusInternalServerError)
	}

	return helpers.CreateResponse(&GetSingleCategoryResponse{
		Data:    report,
		Message: "Fetched Category Data",
	}, http.StatusOK)
}
