package split_bill

import (
	"encoding/json"
	"net/http"

	"github.com/finsplit/finsplit-backend/internal/domain/models"
	"github.com/finsplit/finsplit-backend/internal/domain/usecase"
	"github.com/finsplit/finsplit-backend/internal/presentation/helpers"
	presentationProtocols "github.com/finsplit/finsplit-backend/internal/presentation/protocols"
	"github.com/go-playground/validator/v10"
)

type CreateGroupController struct {
	CreateGroupRepository usecase.CreateGroupRepository
	Validate              *validator.Validate
}

func NewCreateGroupController(createGroup usecase.CreateGroupRepository) *CreateGroupController {
	validate := validator.New(validator.WithRequiredStructEnabled())

	return &CreateGroupController{
		CreateGroupRepository: createGroup,
		Validate:              validate,
	}
}

type createGroupPerson struct {
	Name string `json:"name" validate:"required,min=1,max=255"`
}

type CreateGroupBody struct {
	Title      string              `json:"title" validate:"required,min=1,max=255"`
	Estimation float64             `json:"estimation" validate:"gte=0"`
	Persons    []createGroupPerson `json:"persons" validate:"dive"`
}

type CreateGroupResponse struct {
	Data    *models.Group `json:"data"`
	Message string        `json:"message"`
}

func (c *CreateGroupController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	var body CreateGroupBody
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

	persons := make([]models.GroupPerson, len(body.Persons))
	for i, person := range body.Persons {
		persons[i] = models.GroupPerson{Name: person.Name}
	}

	group, err := c.CreateGroupRepository.Create(&models.Group{
		Title:      body.Title,
		Estimation: body.Estimation,
		Persons:    persons,
		UserId:     r.Header.Get("UserId"),
	})
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Message: "error creating group",
		}, http.StatusInternalServerError)
	}

	return helpers.CreateResponse(&CreateGroupResponse{
		Data:    group,
		Message: "Group Created",
	}, http.StatusCreated)
}
