package transaction

import (
	"net/http"

	"github.com/finsplit/finsplit-backend/internal/domain/usecase"
	"github.com/finsplit/finsplit-backend/internal/presentation/helpers"
	presentationProtocols "github.com/finsplit/finsplit-backend/internal/presentation/protocols"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type DeleteTransactionController struct {
	DeleteTransactionRepository usecase.DeleteTransactionRepository
}

func NewDeleteTransactionController(deleteTransaction usecase.DeleteTransactionRepository) *DeleteTransactionController {
	return &DeleteTransactionController{
		DeleteTransactionRepository: deleteTransaction,
	}
}

func (c *DeleteTransactionController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	queries := r.Req.URL.Query()

	kind, ok := parseKind(queries.Get("type"), "")
	if !ok {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Message: "invalid transaction type",
		}, http.StatusBadRequest)
	}

	transactionId, err := primitive.ObjectIDFromHex(queries.Get("id"))
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Message: "invalid transaction id",
		}, http.StatusBadRequest)
	}

	if err := c.DeleteTransactionRepository.Delete(kind, transactionId); err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Message: "error deleting transaction",
		}, http.StatusInternalServerError)
	}

	return helpers.CreateResponse(&MessageResponse{
		Message: "Transaction Deleted",
	}, http.StatusOK)
}
