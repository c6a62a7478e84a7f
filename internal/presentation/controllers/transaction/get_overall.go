package transaction

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/finsplit/finsplit-backend/internal/domain/models"
	"github.com/finsplit/finsplit-backend/internal/domain/usecase"
	"github.com/finsplit/finsplit-backend/internal/infra/db/mongodb/repositories/redis_repository"
	"github.com/finsplit/finsplit-backend/internal/presentation/helpers"
	presentationProtocols "github.com/finsplit/finsplit-backend/internal/presentation/protocols"
	"github.com/finsplit/finsplit-backend/internal/utils"
	"github.com/go-playground/validator/v10"
)

const reportCacheTTL = 5 * time.Minute

type GetOverallReportController struct {
	FindOverallReportRepository usecase.FindOverallReportRepository
	Validate                    *validator.Validate
}

func NewGetOverallReportController(findOverall usecase.FindOverallReportRepository) *GetOverallReportController {
	validate := validator.New(validator.WithRequiredStructEnabled())

	return &GetOverallReportController{
		FindOverallReportRepository: findOverall,
		Validate:                    validate,
	}
}

type OverallReportData struct {
	Income     *models.WindowReport `json:"income"`
	Spend      *models.WindowReport `json:"spend"`
	Estimation *models.WindowReport `json:"estimation"`
}

type GetOverallReportResponse struct {
	Data    *OverallReportData `json:"data"`
	Message string             `json:"message"`
}

// Handle aggregates all three transaction collections over the requested
// window, fanning the three queries out concurrently. Results are cached
// in Redis keyed by user, window and category filter.
func (c *GetOverallReportController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	filter, _, errResponse := helpers.GetReportFilterByQueries(&r.UrlParams, r.Header.Get("UserId"), c.Validate)
	if errResponse != nil {
		return errResponse
	}

	redisURL := os.Getenv("REDIS_URL")
	cacheKey := fmt.Sprintf("report:overall:%s:%d:%d:%s",
		filter.UserId, filter.StartTime.Unix(), filter.EndTime.Unix(), filter.CategoryId)

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
	reports := make([]*models.WindowReport, len(allKinds))
	errs := make(chan error, len(allKinds))

	for i, kind := range allKinds {
		wg.Add(1)
		go func(index int, kind models.TransactionKind) {
			defer utils.RecoveryWithCallback(&wg, func(cause any) {
				errs <- fmt.Errorf("panic recovered: %v", cause)
			})

			report, err := c.FindOverallReportRepository.Find(kind, filter)
			if err != nil {
				errs <- err
				wg.Done()
				return
			}

			reports[index] = report
			wg.Done()
		}(i, kind)
	}

	wg.Wait()
	close(errs)

	for err := range errs {
		log.Printf("error aggregating overall report: %v", err)
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Message: "error fetching overall report",
		}, http.StatusInternalServerError)
	}

	response := &GetOverallReportResponse{
		Data: &OverallReportData{
			Income:     reports[0],
			Spend:      reports[1],
			Estimation: reports[2],
		},
		Message: "Fetched Month Data",
	}

	if redisURL != "" {
		if err := redis_repository.SaveReportToRedis(redisURL, cacheKey, response, reportCacheTTL); err != nil {
			log.Printf("error caching report: %v", err)
		}
	}

	return helpers.CreateResponse(response, http.StatusOK)
}
