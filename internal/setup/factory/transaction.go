package factory

import (
	"github.com/finsplit/finsplit-backend/internal/infra/db/mongodb/report_repository"
	"github.com/finsplit/finsplit-backend/internal/infra/db/mongodb/transaction_repository"
	controllers "github.com/finsplit/finsplit-backend/internal/presentation/controllers/transaction"
	"go.mongodb.org/mongo-driver/mongo"
)

func MakeCreateTransactionController(db *mongo.Database) *controllers.CreateTransactionController {
	createTransaction := transaction_repository.NewCreateTransactionRepository(db)
	return controllers.NewCreateTransactionController(createTransaction)
}

func MakeUpdateTransactionController(db *mongo.Database) *controllers.UpdateTransactionController {
	updateTransaction := transaction_repository.NewUpdateTransactionRepository(db)
	return controllers.NewUpdateTransactionController(updateTransaction)
}

func MakeDeleteTransactionController(db *mongo.Database) *controllers.DeleteTransactionController {
	deleteTransaction := transaction_repository.NewDeleteTransactionRepository(db)
	return controllers.NewDeleteTransactionController(deleteTransaction)
}

func MakeGetOverallReportController(db *mongo.Database) *controllers.GetOverallReportController {
	findOverall := report_repository.NewFindOverallReportRepository(db)
	return controllers.NewGetOverallReportController(findOverall)
}

func MakeGetCategoryWiseReportController(db *mongo.Database) *controllers.GetCategoryWiseReportController {
	findCategoryWise := report_repository.NewFindCategoryWiseReportRepository(db)
	return controllers.NewGetCategoryWiseReportController(findCategoryWise)
}

func MakeGetSingleCategoryReportController(db *mongo.Database) *controllers.GetSingleCategoryReportController {
	findOverall := report_repository.NewFindOverallReportRepository(db)
	return controllers.NewGetSingleCategoryReportController(findOverall)
}

func MakeGetYearTotalController(db *mongo.Database) *controllers.GetYearTotalController {
	findOverall := report_repository.NewFindOverallReportRepository(db)
	return controllers.NewGetYearTotalController(findOverall)
}

func MakeImportTransactionsController(db *mongo.Database) *controllers.ImportTransactionsController {
	createTransactions := transaction_repository.NewCreateTransactionRepository(db)
	return controllers.NewImportTransactionsController(createTransactions)
}
