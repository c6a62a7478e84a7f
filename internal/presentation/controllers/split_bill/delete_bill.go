package split_bill

import (
	"net/http"

	"github.com/finsplit/finsplit-backend/internal/domain/usecase"
	"github.com/finsplit/finsplit-backend/internal/presentation/helpers"
	presentationProtocols "github.com/finsplit/finsplit-backend/internal/presentation/protocols"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type DeleteBillController struct {
	DeleteBillRepository usecase.DeleteBillRepository
}

func NewDeleteBillController(deleteBill usecase.DeleteBillRepository) *DeleteBillController {
	return &DeleteBillController{
		DeleteBillRepository: deleteBill,
	}
}

func (c *DeleteBillController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	billId, err := primitive.ObjectIDFromHex(r.Req.PathValue("id"))
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Message: "invalid bill id",
		}, http.StatusBadRequest)
	}

	if err := c.DeleteBillRepository.Delete(billId); err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Message: "error deleting bill",
		}, http.StatusInternalServerError)
	}

	return helpers.CreateResponse(&MessageResponse{
		Message: "Bill Deleted",
	}, http.StatusOK)
}
