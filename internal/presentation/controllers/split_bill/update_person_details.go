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

type UpdatePersonDetailsController struct {
	UpdatePersonDetailsRepository usecase.UpdatePersonDetailsRepository
	Validate                      *validator.Validate
}

func NewUpdatePersonDetailsController(updatePerson usecase.UpdatePersonDetailsRepository) *UpdatePersonDetailsController {
	validate := validator.New(validator.WithRequiredStructEnabled())

	return &UpdatePersonDetailsController{
		UpdatePersonDetailsRepository: updatePerson,
		Validate:                      validate,
	}
}

type updatePersonData struct {
	Name *string  `json:"name" validate:"omitempty,min=1,max=255"`
	Paid *float64 `json:"paid"`
}

type UpdatePersonDetailsBody struct {
	GroupId  string           `json:"groupId" validate:"required,len=24,hexadecimal"`
	PersonId string           `json:"personId" validate:"required,len=24,hexadecimal"`
	Data     updatePersonData `json:"data"`
}

type UpdatePersonDetailsResponse struct {
	Data    *models.Group `json:"data"`
	Message string        `json:"message"`
}

func (c *UpdatePersonDetailsController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	var body UpdatePersonDetailsBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Message: "invalid body request",
		}, http.StatusBadRequest)
	}

	if err := c.Validate.Struct(body); err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Message: helpers.GetErrorMessages(c.Validate, err),
		}, http.StatusUnprocessableEntity)
	}

	groupId, err := primitive.ObjectIDFromHex(body.GroupId)
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Message: "invalid group id",
		}, http.StatusBadRequest)
	}
	personId, err := primitive.ObjectIDFromHex(body.PersonId)
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Message: "invalid person id",
		}, http.StatusBadRequest)
	}

	fields := map[string]any{}
	if body.Data.Name != nil {
		fields["name"] = *body.Data.Name
	}
	if body.Data.Paid != nil {
		fields["paid"] = *body.Data.Paid
	}
	if len(fields) == 0 {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Message: "no fields to update",
		}, http.StatusBadRequest)
	}

	group, err := c.UpdatePersonDetailsRepository.Update(groupId, personId, fields)
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Message: "error updating person details",
		}, http.StatusInternalServerError)
	}
	if group == nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Message: "person not found in group",
		}, http.StatusNotFound)
	}

	return helpers.CreateResponse(&UpdatePersonDetailsResponse{
		Data:    group,
		Message: "Person Updated",
	}, http.StatusOK)
}
