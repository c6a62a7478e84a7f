package transaction

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/finsplit/finsplit-backend/internal/domain/models"
	"github.com/finsplit/finsplit-backend/internal/domain/usecase"
	"github.com/finsplit/finsplit-backend/internal/presentation/helpers"
	presentationProtocols "github.com/finsplit/finsplit-backend/internal/presentation/protocols"
	"github.com/go-playground/validator/v10"
	"github.com/xuri/excelize/v2"
)

const importRowLimit = 10000

type ImportTransactionsController struct {
	CreateTransactionsRepository usecase.CreateTransactionsRepository
	Validate                     *validator.Validate
}

func NewImportTransactionsController(createTransactions usecase.CreateTransactionsRepository) *ImportTransactionsController {
	validate := validator.New(validator.WithRequiredStructEnabled())

	return &ImportTransactionsController{
		CreateTransactionsRepository: createTransactions,
		Validate:                     validate,
	}
}

type importRow struct {
	Type     string `validate:"required,oneof=credit debit estimation"`
	Category string `validate:"required,min=1,max=255"`
	Value    float64
	Remarks  string `validate:"omitempty,max=512"`
}

type ImportTransactionsResponse struct {
	Data    map[string]int `json:"data"`
	Message string         `json:"message"`
}

// Handle ingests a spreadsheet with Type, Category, Value and Remarks
// columns, groups the rows by transaction type and bulk inserts each group
// into its collection.
func (c *ImportTransactionsController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	userId := r.Header.Get("UserId")

	if err := r.Req.ParseMultipartForm(32 << 20); err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Message: "invalid multipart form",
		}, http.StatusBadRequest)
	}

	file, _, err := r.Req.FormFile("file")
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Message: "missing 'file' field in form-data",
		}, http.StatusBadRequest)
	}
	defer file.Close()

	rows, err := parseImportSheet(file)
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Message: err.Error(),
		}, http.StatusBadRequest)
	}

	if len(rows) == 0 {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Message: "no rows to import",
		}, http.StatusBadRequest)
	}
	if len(rows) > importRowLimit {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Message: "maximum of " + strconv.Itoa(importRowLimit) + " rows per import",
		}, http.StatusBadRequest)
	}

	grouped := make(map[models.TransactionKind][]models.Transaction)
	counts := make(map[string]int)
	for i, row := range rows {
		if err := c.Validate.Struct(row); err != nil {
			return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
				Message: fmt.Sprintf("row %d: %s", i+2, helpers.GetErrorMessages(c.Validate, err)),
			}, http.StatusUnprocessableEntity)
		}
		if row.Value < 0 {
			return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
				Message: fmt.Sprintf("row %d: value must not be negative", i+2),
			}, http.StatusUnprocessableEntity)
		}

		kind := models.TransactionKind(row.Type)
		grouped[kind] = append(grouped[kind], models.Transaction{
			UserId:     userId,
			CategoryId: row.Category,
			Value:      row.Value,
			Remarks:    row.Remarks,
		})
		counts[row.Type]++
	}

	for kind, transactions := range grouped {
		if err := c.CreateTransactionsRepository.CreateMany(kind, transactions); err != nil {
			return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
				Message: "error importing transactions",
			}, http.StatusInternalServerError)
		}
	}

	return helpers.CreateResponse(&ImportTransactionsResponse{
		Data:    counts,
		Message: "Transactions Imported",
	}, http.StatusCreated)
}

// parseImportSheet reads the first sheet, resolving columns by header name
// so column order does not matter.
func parseImportSheet(file multipart.File) ([]importRow, error) {
	buf := new(bytes.Buffer)
	if _, err := io.Copy(buf, file); err != nil {
		return nil, fmt.Errorf("error reading upload: %w", err)
	}

	sheet, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	if err != nil {
		return nil, fmt.Errorf("error opening spreadsheet: %w", err)
	}
	defer sheet.Close()

	iter, err := sheet.Rows(sheet.GetSheetName(0))
	if err != nil {
		return nil, err
	}
	if !iter.Next() {
		return nil, fmt.Errorf("spreadsheet has no header row")
	}

	headers, _ := iter.Columns()
	columns := make(map[string]int, len(headers))
	for i, header := range headers {
		columns[strings.ToLower(strings.TrimSpace(header))] = i
	}
	for _, required := range []string{"type", "category", "value"} {
		if _, ok := columns[required]; !ok {
			return nil, fmt.Errorf("missing column %q", required)
		}
	}

	cell := func(cols []string, name string) string {
		index, ok := columns[name]
		if !ok || index >= len(cols) {
			return ""
		}
		return strings.TrimSpace(cols[index])
	}

	var rows []importRow
	for iter.Next() {
		cols, _ := iter.Columns()
		if len(cols) == 0 {
			continue
		}

		rawValue := cell(cols, "value")
		value, err := strconv.ParseFloat(strings.ReplaceAll(rawValue, ",", "."), 64)
		if err != nil {
			return nil, fmt.Errorf("row %d: invalid value %q", len(rows)+2, rawValue)
		}

		rows = append(rows, importRow{
			Type:     strings.ToLower(cell(cols, "type")),
			Category: cell(cols, "category"),
			Value:    value,
			Remarks:  cell(cols, "remarks"),
		})
	}

	return rows, nil
}
