package usecase

import (
	"time"

	"github.com/finsplit/finsplit-backend/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ReportFilter is the window plus optional dimension filters every report
// operation takes. StartTime/EndTime bound the window as (start, end].
type ReportFilter struct {
	UserId     string
	CategoryId string
	StartTime  time.Time
	EndTime    time.Time
}

type FindOverallReportRepository interface {
	Find(kind models.TransactionKind, filter *ReportFilter) (*models.WindowReport, error)
}

type FindCategoryWiseReportRepository interface {
	Find(kind models.TransactionKind, filter *ReportFilter) (map[string]models.CategoryAggregate, error)
}

type FindGroupOverallRepository interface {
	Find(groupId primitive.ObjectID) (*models.GroupOverall, error)
}

type FindPersonWiseBillsRepository interface {
	Find(groupId primitive.ObjectID) (map[string]models.PersonWiseEntry, error)
}
