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

type CreateBillController struct {
	CreateBillsRepository usecase.CreateBillsRepository
	Validate              *validator.Validate
}

func NewCreateBillController(createBills usecase.CreateBillsRepository) *CreateBillController {
	validate := validator.New(validator.WithRequiredStructEnabled())

	return &CreateBillController{
		CreateBillsRepository: createBills,
		Validate:              validate,
	}
}

type createBillPerson struct {
	PersonId string  `json:"personId" validate:"required,len=24,hexadecimal"`
	Value    float64 `json:"value"`
}

type CreateBillBody struct {
	GroupId string             `json:"groupId" validate:"required,len=24,hexadecimal"`
	Name    string             `json:"name" validate:"required,min=1,max=255"`
	Value   float64            `json:"value" validate:"gte=0"`
	Persons []createBillPerson `json:"persons" validate:"dive"`
}

// Handle accepts a single bill object or an array of them; both paths run
// through the same validation and one bulk insert.
func (c *CreateBillController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	var raw json.RawMessage
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Message: "invalid body request",
		}, http.StatusBadRequest)
	}

	var bodies []CreateBillBody
	if err := json.Unmarshal(raw, &bodies); err != nil {
		var single CreateBillBody
		if err := json.Unmarshal(raw, &single); err != nil {
			return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
				Message: "invalid body request",
			}, http.StatusBadRequest)
		}
		bodies = []CreateBillBody{single}
	}

	if len(bodies) == 0 {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Message: "no bills to create",
		}, http.StatusBadRequest)
	}

	bills := make([]models.Bill, len(bodies))
	for i, body := range bodies {
		if err := c.Validate.Struct(body); err != nil {
			return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
				Message: helpers.GetErrorMessages(c.Validate, err),
			}, http.StatusUnprocessableEntity)
		}

		persons := make([]models.BillPerson, len(body.Persons))
		for j, person := range body.Persons {
			persons[j] = models.BillPerson{PersonId: person.PersonId, Value: person.Value}
		}

		if !helpers.SharesMatchBillValue(body.Value, persons) {
			return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
				Message: "bill shares do not sum to the bill value",
			}, http.StatusUnprocessableEntity)
		}

		bills[i] = models.Bill{
			GroupId: body.GroupId,
			Name:    body.Name,
			Value:   body.Value,
			Persons: persons,
		}
	}

	if err := c.CreateBillsRepository.Create(bills); err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Message: "error creating bills",
		}, http.StatusInternalServerError)
	}

	return helpers.CreateResponse(&MessageResponse{
		Message: "Bill Created",
	}, http.StatusCreated)
}
