package split_bill

import (
	"encoding/json"
	"net/http"

	"github.com/finsplit/finsplit-backend/internal/domain/usecase"
	"github.com/finsplit/finsplit-backend/internal/presentation/helpers"
	presentationProtocols "github.com/finsplit/finsplit-backend/internal/presentation/protocols"
	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type UpdateGroupController struct {
	UpdateGroupRepository usecase.UpdateGroupRepository
	Validate              *validator.Validate
}

func NewUpdateGroupController(updateGroup usecase.UpdateGroupRepository) *UpdateGroupController {
	validate := validator.New(validator.WithRequiredStructEnabled())

	return &UpdateGroupController{
		UpdateGroupRepository: updateGroup,
		Validate:              validate,
	}
}

type UpdateGroupBody struct {
	Title      *string  `json:"title" validate:"omitempty,min=1,max=255"`
	Estimation *float64 `json:"estimation" validate:"omitempty,gte=0"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

func (c *UpdateGroupController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	groupId, err := primitive.ObjectIDFromHex(r.Req.PathValue("id"))
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Message: "invalid group id",
		}, http.StatusBadRequest)
	}

	var body UpdateGroupBody
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

	fields := map[string]any{}
	if body.Title != nil {
		fields["title"] = *body.Title
	}
	if body.Estimation != nil {
		fields["estimation"] = *body.Estimation
	}
	if len(fields) == 0 {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Message: "no fields to update",
		}, http.StatusBadRequest)
	}

	if err := c.UpdateGroupRepository.Update(groupId, fields); err != nil {
		if err == mongo.ErrNoDocuments {
			return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
				Message: "group not found",
			}, http.StatusNotFound)
		}
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Message: "error updating group",
		}, http.StatusInternalServerError)
	}

	return helpers.CreateResponse(&MessageResponse{
		Message: "Group Updated",
	}, http.StatusOK)
}
