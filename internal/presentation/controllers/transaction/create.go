package transaction

import (
	"encoding/json"
	"net/http"

	"github.com/finsplit/finsplit-backend/internal/domain/models"
	"github.com/finsplit/finsplit-backend/internal/domain/usecase"
	"github.com/finsplit/finsplit-backend/internal/presentation/helpers"
	presentationProtocols "github.com/finsplit/finsplit-backend/internal/presentation/protocols"
	"github.com/go-playground/validator/v10"
)

type CreateTransactionController struct {
	CreateTransactionRepository usecase.CreateTransactionRepository
	Validate                    *validator.Validate
}

func NewCreateTransactionController(createTransaction usecase.CreateTransactionRepository) *CreateTransactionController {
	validate := validator.New(validator.WithRequiredStructEnabled())

	return &CreateTransactionController{
		CreateTransactionRepository: createTransaction,
		Validate:                    validate,
	}
}

type CreateTransactionBody struct {
	CategoryId string  `json:"categoryId" validate:"required,min=1,max=255"`
	Value      float64 `json:"value" validate:"gte=0"`
	Remarks    string  `json:"remarks" validate:"omitempty,max=512"`
}

type CreateTransactionResponse struct {
	Data    *models.Transaction `json:"data"`
	Message string              `json:"message"`
}

func (c *CreateTransactionController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	kind, ok := parseKind(r.Req.PathValue("type"), "")
	if !ok {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Message: "invalid transaction type",
		}, http.StatusBadRequest)
	}

	var body CreateTransactionBody
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

	created, err := c.CreateTransactionRepository.Create(kind, &models.Transaction{
		UserId:     r.Header.Get("UserId"),
		CategoryId: body.CategoryId,
		Value:      body.Value,
		Remarks:    body.Remarks,
	})
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Message: "error creating transaction",
		}, http.StatusInternalServerError)
	}

	return helpers.CreateResponse(&CreateTransactionResponse{
		Data:    created,
		Message: "Transaction Created",
	}, http.StatusCreated)
}
