package transaction

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"sync"

	"github.com/finsplit/finsplit-backend/internal/domain/models"
	"github.com/finsplit/finsplit-backend/internal/domain/usecase"
	"github.com/finsplit/finsplit-backend/internal/infra/db/mongodb/repositories/redis_repository"
	"github.com/finsplit/finsplit-backend/internal/presentation/helpers"
	presentationProtocols "github.com/finsplit/finsplit-backend/internal/presentation/protocols"
	"github.com/finsplit/finsplit-backend/internal/utils"
	"github.com/go-playground/validator/v10"
)

type GetCategoryWiseReportController struct {
	FindCategoryWiseReportRepository usecase.FindCategoryWiseReportRepository
	Validate                         *validator.Validate
}

func NewGetCategoryWiseReportController(findCategoryWise usecase.FindCategoryWiseReportRepository) *GetCategoryWiseReportController {
	validate := validator.New(validator.WithRequiredStructEnabled())

	return &GetCategoryWiseReportController{
		FindCategoryWiseReportRepository: findCategoryWise,
		Validate:                         validate,
	}
}

type CategoryWiseData struct {
	Credits     map[string]models.CategoryAggregate `json:"credits"`
	Debits      map[string]models.CategoryAggregate `json:"debits"`
	Estimations map[string]models.CategoryAggregate `json:"estimations"`
}

type GetCategoryWiseResponse struct {
	Data    *CategoryWiseData `json:"data"`
	Message string            `json:"message"`
}

// Handle rolls every transaction collection up by category over the
// requested window, one concurrent aggregation per collection.
func (c *GetCategoryWiseReportController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	filter, _, errResponse := helpers.GetReportFilterByQueries(&r.UrlParams, r.Header.Get("UserId"), c.Validate)
	if errResponse != nil {
		return errResponse
	}

	redisURL := os.Getenv("REDIS_URL")
	cacheKey := fmt.Sprintf("report:category-wise:%s:%d:%d",
		filter.UserId, filter.StartTime.Unix(), filter.EndTime.Unix())

	if redisURL != "" {
		cached, err := redis_repository.FindReportByKey(redisURL, cacheKey)
		if err != nil {
			log.Printf("error reading cached report: %v", err)
		}
		if cached != nil {
			return helpers.CreateRawResponse(cached, http.StatusOK)
		}
	}

	var wg sync.WaitGroup
	aggregates := make([]map[string]models.CategoryAggregate, len(allKinds))
	errs := make(chan error, len(allKinds))

	for i, kind := range allKinds {
		wg.Add(1)
		go func(index int, kind models.TransactionKind) {
			defer utils.RecoveryWithCallback(&wg, func(cause any) {
				errs <- fmt.Errorf("panic recovered: %v", cause)
			})

			aggregate, err := c.FindCategoryWiseReportRepository.Find(kind, filter)
			if err != nil {
				errs <- err
				wg.Done()
				return
			}

			aggregates[index] = aggregate
			wg.Done()
		}(i, kind)
	}

	wg.Wait()
	close(errs)

	for err := range errs {
		log.Printf("error aggregating category wise report: %v", err)
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Message: "error fetching category wise report",
		}, http.StatusInternalServerError)
	}

	response := &GetCategoryWiseResponse{
		Data: &CategoryWiseData{
			Credits:     aggregates[0],
			Debits:      aggregates[1],
			Estimations: aggregates[2],
		},
		Message: "Fetched Category Wise Data",
	}

	if redisURL != "" {
		if err := redis_repository.SaveReportToRedis(redisURL, cacheKey, response, reportCacheTTL); err != nil {
			log.Printf("error caching report: %v", err)
		}
	}

	return helpers.CreateResponse(response, http.StatusOK)
}
