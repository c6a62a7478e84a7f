package split_bill

import (
	"encoding/json"
	"net/http"

	"github.com/finsplit/finsplit-backend/internal/domain/models"
	"github.com/finsplit/finsplit-backend/internal/domain/usecase"
	"github.com/finsplit/finsplit-backend/internal/presentation/helpers"
	presentationProtocols "github.com/finsplit/finsplit-backend/internal/presentation/protocols"
	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type AddPersonController struct {
	AddPersonsToGroupRepository usecase.AddPersonsToGroupRepository
	Validate                    *validator.Validate
}

func NewAddPersonController(addPersons usecase.AddPersonsToGroupRepository) *AddPersonController {
	validate := validator.New(validator.WithRequiredStructEnabled())

	return &AddPersonController{
		AddPersonsToGroupRepository: addPersons,
		Validate:                    validate,
	}
}

type addPersonEntry struct {
	Name string `json:"name" validate:"required,min=1,max=255"`
}

type AddPersonResponse struct {
	Data    *models.Group `json:"data"`
	Message string        `json:"message"`
}

// Handle accepts a single person object or an array of them and appends them
// to the group roster in one update.
func (c *AddPersonController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	groupId, err := primitive.ObjectIDFromHex(r.Req.PathValue("id"))
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Message: "invalid group id",
		}, http.StatusBadRequest)
	}

	var raw json.RawMessage
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Message: "invalid body request",
		}, http.StatusBadRequest)
	}

	var entries []addPersonEntry
	if err := json.Unmarshal(raw, &entries); err != nil {
		var single addPersonEntry
		if err := json.Unmarshal(raw, &single); err != nil {
			return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
				Message: "invalid body request",
			}, http.StatusBadRequest)
		}
		entries = []addPersonEntry{single}
	}

	if len(entries) == 0 {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Message: "no persons to add",
		}, http.StatusBadRequest)
	}

	names := make([]string, len(entries))
	for i, entry := range entries {
		if err := c.Validate.Struct(entry); err != nil {
			return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
				Message: helpers.GetErrorMessages(c.Validate, err),
			}, http.StatusUnprocessableEntity)
		}
		names[i] = entry.Name
	}

	group, err := c.AddPersonsToGroupRepository.Add(groupId, names)
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Message: "error adding persons to group",
		}, http.StatusInternalServerError)
	}
	if group == nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Message: "group not found",
		}, http.StatusNotFound)
	}

	return helpers.CreateResponse(&AddPersonResponse{
		Data:    group,
		Message: "Person Added",
	}, http.StatusOK)
}
