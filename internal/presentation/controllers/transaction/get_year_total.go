package transaction

import (
	"fmt"
	"log"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/finsplit/finsplit-backend/internal/domain/models"
	"github.com/finsplit/finsplit-backend/internal/domain/usecase"
	"github.com/finsplit/finsplit-backend/internal/presentation/helpers"
	presentationProtocols "github.com/finsplit/finsplit-backend/internal/presentation/protocols"
	"github.com/finsplit/finsplit-backend/internal/utils"
)

type GetYearTotalController struct {
	FindOverallReportRepository usecase.FindOverallReportRepository
}

func NewGetYearTotalController(findOverall usecase.FindOverallReportRepository) *GetYearTotalController {
	return &GetYearTotalController{
		FindOverallReportRepository: findOverall,
	}
}

type YearTotalData struct {
	Credit     float64 `json:"credit"`
	Debit      float64 `json:"debit"`
	Estimation float64 `json:"estimation"`
}

type GetYearTotalResponse struct {
	Data    *YearTotalData `json:"data"`
	Message string         `json:"message"`
}

// Handle totals each collection over one calendar year, UTC.
func (c *GetYearTotalController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	year, err := strconv.Atoi(r.UrlParams.Get("year"))
	if err != nil || year < 1970 || year > 9999 {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Message: "invalid year",
		}, http.StatusBadRequest)
	}

	filter := &usecase.ReportFilter{
		UserId:    r.Header.Get("UserId"),
		StartTime: time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC),
		EndTime:   time.Date(year+1, time.January, 1, 0, 0, 0, 0, time.UTC),
	}

	var wg sync.WaitGroup
	totals := make([]float64, len(allKinds))
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

			totals[index] = report.Total
			wg.Done()
		}(i, kind)
	}

	wg.Wait()
	close(errs)

	for err := range errs {
		log.Printf("error aggregating year total: %v", err)
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Message: "error fetching year total",
		}, http.StatusInternalServerError)
	}

	return helpers.CreateResponse(&GetYearTotalResponse{
		Data: &YearTotalData{
			Credit:     totals[0],
			Debit:      totals[1],
			Estimation: totals[2],
		},
		Message: "Fetched Year Data",
	}, http.StatusOK)
}
