package factory

import (
	"github.com/finsplit/finsplit-backend/internal/infra/db/mongodb/bill_repository"
	"github.com/finsplit/finsplit-backend/internal/infra/db/mongodb/group_repository"
	"github.com/finsplit/finsplit-backend/internal/infra/db/mongodb/report_repository"
	controllers "github.com/finsplit/finsplit-backend/internal/presentation/controllers/split_bill"
	"go.mongodb.org/mongo-driver/mongo"
)

func MakeCreateGroupController(db *mongo.Database) *controllers.CreateGroupController {
	createGroup := group_repository.NewCreateGroupRepository(db)
	return controllers.NewCreateGroupController(createGroup)
}

func MakeGetGroupsController(db *mongo.Database) *controllers.GetGroupsController {
	findGroups := group_repository.NewFindGroupsRepository(db)
	return controllers.NewGetGroupsController(findGroups)
}

func MakeUpdateGroupController(db *mongo.Database) *controllers.UpdateGroupController {
	updateGroup := group_repository.NewUpdateGroupRepository(db)
	return controllers.NewUpdateGroupController(updateGroup)
}

func MakeDeleteGroupController(db *mongo.Database) *controllers.DeleteGroupController {
	deleteBillsByGroupId := bill_repository.NewDeleteBillsByGroupIdRepository(db)
	deleteGroup := group_repository.NewDeleteGroupRepository(db)
	return controllers.NewDeleteGroupController(deleteBillsByGroupId, deleteGroup)
}

func MakeCreateBillController(db *mongo.Database) *controllers.CreateBillController {
	createBills := bill_repository.NewCreateBillsRepository(db)
	return controllers.NewCreateBillController(createBills)
}

func MakeUpdateBillController(db *mongo.Database) *controllers.UpdateBillController {
	findBillById := bill_repository.NewFindBillByIdRepository(db)
	updateBill := bill_repository.NewUpdateBillRepository(db)
	return controllers.NewUpdateBillController(findBillById, updateBill)
}

func MakeDeleteBillController(db *mongo.Database) *controllers.DeleteBillController {
	deleteBill := bill_repository.NewDeleteBillRepository(db)
	return controllers.NewDeleteBillController(deleteBill)
}

func MakeAddPersonController(db *mongo.Database) *controllers.AddPersonController {
	addPersons := group_repository.NewAddPersonsToGroupRepository(db)
	return controllers.NewAddPersonController(addPersons)
}

func MakeUpdatePersonDetailsController(db *mongo.Database) *controllers.UpdatePersonDetailsController {
	updatePerson := group_repository.NewUpdatePersonDetailsRepository(db)
	return controllers.NewUpdatePersonDetailsController(updatePerson)
}

func MakeRemovePersonController(db *mongo.Database) *controllers.RemovePersonController {
	removePerson := group_repository.NewRemovePersonRepository(db)
	return controllers.NewRemovePersonController(removePerson)
}

func MakeGroupOverallController(db *mongo.Database) *controllers.GroupOverallController {
	findGroupOverall := report_repository.NewFindGroupOverallRepository(db)
	return controllers.NewGroupOverallController(findGroupOverall)
}

func MakePersonWiseController(db *mongo.Database) *controllers.PersonWiseController {
	findPersonWise := report_repository.NewFindPersonWiseBillsRepository(db)
	return controllers.NewPersonWiseController(findPersonWise)
}

func MakeExportPersonWiseController(db *mongo.Database) *controllers.ExportPersonWiseController {
	findGroupById := group_repository.NewFindGroupByIdRepository(db)
	findPersonWise := report_repository.NewFindPersonWiseBillsRepository(db)
	return controllers.NewExportPersonWiseController(findGroupById, findPersonWise)
}
