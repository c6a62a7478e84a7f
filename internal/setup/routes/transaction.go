package routes

import (
	"net/http"

	"github.com/finsplit/finsplit-backend/internal/setup/adapters"
	"github.com/finsplit/finsplit-backend/internal/setup/factory"
	"github.com/finsplit/finsplit-backend/internal/setup/middlewares"
	"go.mongodb.org/mongo-driver/mongo"
)

func TransactionRoutes(server *http.ServeMux, db *mongo.Database) {
	server.Handle("POST /transaction/{type}", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeCreateTransactionController(db)),
	))

	server.Handle("PATCH /transaction/{type}", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeUpdateTransactionController(db)),
	))

	server.Handle("DELETE /transaction", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeDeleteTransactionController(db)),
	))

	server.Handle("POST /transaction/import", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeImportTransactionsController(db)),
	))

	server.Handle("GET /report/overall", middlewares.VerifyAccessToken(
		middlewares.AllowCacheHeader(
			adapters.AdaptRoute(factory.MakeGetOverallReportController(db)),
		),
	))

	server.Handle("GET /report/category-wise", middlewares.VerifyAccessToken(
		middlewares.AllowCacheHeader(
			adapters.AdaptRoute(factory.MakeGetCategoryWiseReportController(db)),
		),
	))

	server.Handle("GET /report/category", middlewares.VerifyAccessToken(
		middlewares.AllowCacheHeader(
			adapters.AdaptRoute(factory.MakeGetSingleCategoryReportController(db)),
		),
	))

	server.Handle("GET /report/year-total", middlewares.VerifyAccessToken(
		middlewares.AllowCacheHeader(
			adapters.AdaptRoute(factory.MakeGetYearTotalController(db)),
		),
	))
}
