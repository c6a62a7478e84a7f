package usecase

import (
	"time"

	"github.com/finsplit/finsplit-backend/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CreateGroupRepository interface {
	Create(group *models.Group) (*models.Group, error)
}

type FindGroupsRepository interface {
	Find(userId string, startTime time.Time, endTime time.Time) ([]models.Group, error)
}

type FindGroupByIdRepository interface {
	Find(groupId primitive.ObjectID) (*models.Group, error)
}

type UpdateGroupRepository interface {
	Update(groupId primitive.ObjectID, fields map[string]any) error
}

type DeleteGroupRepository interface {
	Delete(groupId primitive.ObjectID) error
}

type CreateBillsRepository interface {
	Create(bills []models.Bill) error
}

type FindBillByIdRepository interface {
	Find(billId primitive.ObjectID) (*models.Bill, error)
}

type UpdateBillRepository interface {
	Update(billId primitive.ObjectID, fields map[string]any) error
}

type DeleteBillRepository interface {
	Delete(billId primitive.ObjectID) error
}

type DeleteBillsByGroupIdRepository interface {
	DeleteByGroupId(groupId primitive.ObjectID) error
}

type AddPersonsToGroupRepository interface {
	Add(groupId primitive.ObjectID, names []string) (*models.Group, error)
}

// UpdatePersonDetailsRepository applies a partial merge on one person
// subdocument. The paid field is applied as an increment so repeated
// "I paid X more" calls accumulate; every other field overwrites.
type UpdatePersonDetailsRepository interface {
	Update(groupId primitive.ObjectID, personId primitive.ObjectID, fields map[string]any) (*models.Group, error)
}

type RemovePersonRepository interface {
	Remove(groupId primitive.ObjectID, personId primitive.ObjectID) error
}
