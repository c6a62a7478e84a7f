package split_bill

import (
	"net/http"

	"github.com/finsplit/finsplit-backend/internal/domain/usecase"
	"github.com/finsplit/finsplit-backend/internal/presentation/helpers"
	presentationProtocols "github.com/finsplit/finsplit-backend/internal/presentation/protocols"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type DeleteGroupController struct {
	DeleteBillsByGroupIdRepository usecase.DeleteBillsByGroupIdRepository
	DeleteGroupRepository          usecase.DeleteGroupRepository
}

func NewDeleteGroupController(
	deleteBillsByGroupId usecase.DeleteBillsByGroupIdRepository,
	deleteGroup usecase.DeleteGroupRepository,
) *DeleteGroupController {
	return &DeleteGroupController{
		DeleteBillsByGroupIdRepository: deleteBillsByGroupId,
		DeleteGroupRepository:          deleteGroup,
	}
}

// Handle cascades the delete: bills first so a crash mid-way cannot leave
// orphaned bills pointing at a vanished group.
func (c *DeleteGroupController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	groupId, err := primitive.ObjectIDFromHex(r.Req.PathValue("id"))
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Message: "invalid group id",
		}, http.StatusBadRequest)
	}

	if err := c.DeleteBillsByGroupIdRepository.DeleteByGroupId(groupId); err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Message: "error deleting group bills",
		}, http.StatusInternalServerError)
	}

	if err := c.DeleteGroupRepository.Delete(groupId); err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Message: "error deleting group",
		}, http.StatusInternalServerError)
	}

	return helpers.CreateResponse(&MessageResponse{
		Message: "Group Deleted",
	}, http.StatusOK)
}
