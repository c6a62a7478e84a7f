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
	"go.mongodb.org/mongo-driver/mongo"
)

type UpdateBillController struct {
	FindBillByIdRepository usecase.FindBillByIdRepository
	UpdateBillRepository   usecase.UpdateBillRepository
	Validate               *validator.Validate
}

func NewUpdateBillController(
	findBillById usecase.FindBillByIdRepository,
	updateBill usecase.UpdateBillRepository,
) *UpdateBillController {
	validate := validator.New(validator.WithRequiredStructEnabled())

	return &UpdateBillController{
		FindBillByIdRepository: findBillById,
		UpdateBillRepository:   updateBill,
		Validate:               validate,
	}
}

type UpdateBillBody struct {
	Name    *string            `json:"name" validate:"omitempty,min=1,max=255"`
	Value   *float64           `json:"value" validate:"omitempty,gte=0"`
	Persons []createBillPerson `json:"persons" validate:"omitempty,dive"`
}

func (c *UpdateBillController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	billId, err := primitive.ObjectIDFromHex(r.Req.PathValue("id"))
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Message: "invalid bill id",
		}, http.StatusBadRequest)
	}

	var body UpdateBillBody
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
	if body.Name != nil {
		fields["name"] = *body.Name
	}
	if body.Value != nil {
		fields["value"] = *body.Value

		// a new total without new shares must still sum against the
		// stored shares
		if body.Persons == nil {
			bill, err := c.FindBillByIdRepository.Find(billId)
			if err != nil {
				return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
					Message: "error fetching bill",
				}, http.StatusInternalServerError)
			}
			if bill == nil {
				return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
					Message: "bill not found",
				}, http.StatusNotFound)
			}
			if !helpers.SharesMatchBillValue(*body.Value, bill.Persons) {
				return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
					Message: "bill shares do not sum to the bill value",
				}, http.StatusUnprocessableEntity)
			}
		}
	}
	if body.Persons != nil {
		// reapportioning shares requires the total to check them against
		if body.Value == nil {
			return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
				Message: "value is required when updating bill shares",
			}, http.StatusBadRequest)
		}

		persons := make([]models.BillPerson, len(body.Persons))
		for i, person := range body.Persons {
			persons[i] = models.BillPerson{PersonId: person.PersonId, Value: person.Value}
		}
		if !helpers.SharesMatchBillValue(*body.Value, persons) {
			return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
				Message: "bill shares do not sum to the bill value",
			}, http.StatusUnprocessableEntity)
		}
		fields["persons"] = persons
	}

	if len(fields) == 0 {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Message: "no fields to update",
		}, http.StatusBadRequest)
	}

	if err := c.UpdateBillRepository.Update(billId, fields); err != nil {
		if err == mongo.ErrNoDocuments {
			return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
				Message: "bill not found",
			}, http.StatusNotFound)
		}
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Message: "error updating bill",
		}, http.StatusInternalServerError)
	}

	return helpers.CreateResponse(&MessageResponse{
		Message: "Bill Updated",
	}, http.StatusOK)
}
