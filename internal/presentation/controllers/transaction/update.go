package transaction

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

type UpdateTransactionController struct {
	UpdateTransactionRepository usecase.UpdateTransactionRepository
	Validate                    *validator.Validate
}

func NewUpdateTransactionController(updateTransaction usecase.UpdateTransactionRepository) *UpdateTransactionController {
	validate := validator.New(validator.WithRequiredStructEnabled())

	return &UpdateTransactionController{
		UpdateTransactionRepository: updateTransaction,
		Validate:                    validate,
	}
}

type updateTransactionData struct {
	CategoryId *string  `json:"categoryId" validate:"omitempty,min=1,max=255"`
	Value      *float64 `json:"value" validate:"omitempty,gte=0"`
	Remarks    *string  `json:"remarks" validate:"omitempty,max=512"`
}

type UpdateTransactionBody struct {
	Id   string                `json:"id" validate:"required,len=24,hexadecimal"`
	Data updateTransactionData `json:"data"`
}

func (c *UpdateTransactionController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	kind, ok := parseKind(r.Req.PathValue("type"), "")
	if !ok {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Message: "invalid transaction type",
		}, http.StatusBadRequest)
	}

	var body UpdateTransactionBody
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

	transactionId, err := primitive.ObjectIDFromHex(body.Id)
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Message: "invalid transaction id",
		}, http.StatusBadRequest)
	}

	fields := map[string]any{}
	if body.Data.CategoryId != nil {
		fields["category_id"] = *body.Data.CategoryId
	}
	if body.Data.Value != nil {
		fields["value"] = *body.Data.Value
	}
	if body.Data.Remarks != nil {
		fields["remarks"] = *body.Data.Remarks
	}
	if len(fields) == 0 {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Message: "no fields to update",
		}, http.StatusBadRequest)
	}

	if err := c.UpdateTransactionRepository.Update(kind, transactionId, fields); err != nil {
		if err == mongo.ErrNoDocuments {
			return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
				Message: "transaction not found",
			}, http.StatusNotFound)
		}
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Message: "error updating transaction",
		}, http.StatusInternalServerError)
	}

	return helpers.CreateResponse(&MessageResponse{
		Message: "Transaction Updated",
	}, http.StatusOK)
}
