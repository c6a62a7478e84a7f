package helpers

import (
	"net/http"
	"net/url"
	"time"

	"github.com/finsplit/finsplit-backend/internal/domain/usecase"
	presentationProtocols "github.com/finsplit/finsplit-backend/internal/presentation/protocols"
	"github.com/go-playground/validator/v10"
)

type ReportFilterParams struct {
	StartTime  string `json:"startTime" validate:"required"`
	EndTime    string `json:"endTime" validate:"required"`
	CategoryId string `json:"categoryId" validate:"omitempty,max=255"`
	Type       string `json:"type" validate:"omitempty,oneof=credit debit estimation"`
}

// ParseWindowTime accepts RFC 3339 instants or bare dates; both normalize
// to UTC.
func ParseWindowTime(value string) (time.Time, error) {
	if parsed, err := time.Parse(time.RFC3339, value); err == nil {
		return parsed.UTC(), nil
	}
	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, err
	}
	return parsed.UTC(), nil
}

// GetReportFilterByQueries validates the window query parameters and
// resolves them into a report filter. The kind string is returned
// separately so callers that fan out over all kinds can ignore it.
func GetReportFilterByQueries(urlQueries *url.Values, userId string, validate *validator.Validate) (*usecase.ReportFilter, string, *presentationProtocols.HttpResponse) {
	params := &ReportFilterParams{
		StartTime:  urlQueries.Get("start_time"),
		EndTime:    urlQueries.Get("end_time"),
		CategoryId: urlQueries.Get("category_id"),
		Type:       urlQueries.Get("type"),
	}

	if err := validate.Struct(params); err != nil {
		return nil, "", CreateResponse(&presentationProtocols.ErrorResponse{
			Message: GetErrorMessages(validate, err),
		}, http.StatusBadRequest)
	}

	startTime, err := ParseWindowTime(params.StartTime)
	if err != nil {
		return nil, "", CreateResponse(&presentationProtocols.ErrorResponse{
			Message: "invalid start_time",
		}, http.StatusBadRequest)
	}

	endTime, err := ParseWindowTime(params.EndTime)
	if err != nil {
		return nil, "", CreateResponse(&presentationProtocols.ErrorResponse{
			Message: "invalid end_time",
		}, http.StatusBadRequest)
	}

	if !endTime.After(startTime) {
		return nil, "", CreateResponse(&presentationProtocols.ErrorResponse{
			Message: "end_time must be after start_time",
		}, http.StatusBadRequest)
	}

	return &usecase.ReportFilter{
		UserId:     userId,
		CategoryId: params.CategoryId,
		StartTime:  startTime,
		EndTime:    endTime,
	}, params.Type, nil
}
