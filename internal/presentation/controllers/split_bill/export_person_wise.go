package split_bill

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"sort"
	"time"

	"github.com/finsplit/finsplit-backend/internal/domain/models"
	"github.com/finsplit/finsplit-backend/internal/domain/usecase"
	"github.com/finsplit/finsplit-backend/internal/infra/db/mongodb/repositories/redis_repository"
	"github.com/finsplit/finsplit-backend/internal/presentation/helpers"
	presentationProtocols "github.com/finsplit/finsplit-backend/internal/presentation/protocols"
	"github.com/xuri/excelize/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const exportCacheTTL = 5 * time.Minute

type ExportPersonWiseController struct {
	FindGroupByIdRepository       usecase.FindGroupByIdRepository
	FindPersonWiseBillsRepository usecase.FindPersonWiseBillsRepository
}

func NewExportPersonWiseController(
	findGroupById usecase.FindGroupByIdRepository,
	findPersonWise usecase.FindPersonWiseBillsRepository,
) *ExportPersonWiseController {
	return &ExportPersonWiseController{
		FindGroupByIdRepository:       findGroupById,
		FindPersonWiseBillsRepository: findPersonWise,
	}
}

// Handle renders the settlement sheet for a group: one row per person with
// their share total, what they paid and the resulting balance. The rendered
// spreadsheet is cached in Redis so repeated downloads skip the aggregation.
func (c *ExportPersonWiseController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	groupId, err := primitive.ObjectIDFromHex(r.Req.PathValue("id"))
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Message: "invalid group id",
		}, http.StatusBadRequest)
	}

	redisURL := os.Getenv("REDIS_URL")
	cacheKey := fmt.Sprintf("export:person-wise:%s", groupId.Hex())

	if redisURL != "" {
		cached, err := redis_repository.FindExcelByKey(redisURL, cacheKey)
		if err != nil {
			log.Printf("error reading cached export: %v", err)
		}
		if cached != nil {
			return excelResponse(cached, groupId.Hex())
		}
	}

	group, err := c.FindGroupByIdRepository.Find(groupId)
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Message: "error fetching group",
		}, http.StatusInternalServerError)
	}
	if group == nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Message: "group not found",
		}, http.StatusNotFound)
	}

	entries, err := c.FindPersonWiseBillsRepository.Find(groupId)
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Message: "error fetching person wise report",
		}, http.StatusInternalServerError)
	}

	file, err := renderSettlementSheet(group, entries)
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Message: "error rendering spreadsheet",
		}, http.StatusInternalServerError)
	}

	if redisURL != "" {
		if err := redis_repository.SaveExcelToRedis(redisURL, cacheKey, file, exportCacheTTL); err != nil {
			log.Printf("error caching export: %v", err)
		}
	}

	return excelResponse(file, groupId.Hex())
}

func renderSettlementSheet(group *models.Group, entries map[string]models.PersonWiseEntry) (*excelize.File, error) {
	file := excelize.NewFile()
	sheet := "Settlement"
	if err := file.SetSheetName("Sheet1", sheet); err != nil {
		return nil, err
	}

	header := []any{"Person", "Owes", "Paid", "Balance", "Bills"}
	if err := file.SetSheetRow(sheet, "A1", &header); err != nil {
		return nil, err
	}

	names := make(map[string]string, len(group.Persons))
	for _, person := range group.Persons {
		names[person.Id.Hex()] = person.Name
	}

	personIds := make([]string, 0, len(entries))
	for personId := range entries {
		personIds = append(personIds, personId)
	}
	// stable row order keyed by roster name, unknown ids last
	sort.Slice(personIds, func(i, j int) bool {
		return names[personIds[i]] < names[personIds[j]]
	})

	for i, personId := range personIds {
		entry := entries[personId]
		name := names[personId]
		if name == "" {
			name = personId
		}

		billNames := make([]string, 0, len(entry.Bills))
		for _, bill := range entry.Bills {
			billNames = append(billNames, bill.Name)
		}
		sort.Strings(billNames)

		bills := ""
		for j, billName := range billNames {
			if j > 0 {
				bills += ", "
			}
			bills += billName
		}

		row := []any{name, entry.Total, entry.Paid, entry.Paid - entry.Total, bills}
		cell := fmt.Sprintf("A%d", i+2)
		if err := file.SetSheetRow(sheet, cell, &row); err != nil {
			return nil, err
		}
	}

	return file, nil
}

func excelResponse(file *excelize.File, groupId string) *presentationProtocols.HttpResponse {
	buf := new(bytes.Buffer)
	if err := file.Write(buf); err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Message: "error serializing spreadsheet",
		}, http.StatusInternalServerError)
	}

	headers := http.Header{}
	headers.Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	headers.Set("Content-Disposition", fmt.Sprintf("attachment; filename=settlement-%s.xlsx", groupId))

	return &presentationProtocols.HttpResponse{
		Body:       io.NopCloser(buf),
		StatusCode: http.StatusOK,
		Headers:    headers,
	}
}
