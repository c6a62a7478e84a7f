package routes

import (
	"net/http"

	"github.com/finsplit/finsplit-backend/internal/setup/adapters"
	"github.com/finsplit/finsplit-backend/internal/setup/factory"
	"github.com/finsplit/finsplit-backend/internal/setup/middlewares"
	"go.mongodb.org/mongo-driver/mongo"
)

func SplitBillRoutes(server *http.ServeMux, db *mongo.Database) {
	server.Handle("POST /split-bill/group", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeCreateGroupController(db)),
	))

	server.Handle("GET /split-bill/group", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeGetGroupsController(db)),
	))

	server.Handle("PATCH /split-bill/group/{id}", middlewares.VerifyAccessToken(
		middlewares.IsGroupOwner(
			adapters.AdaptRoute(factory.MakeUpdateGroupController(db)),
			db,
		),
	))

	server.Handle("DELETE /split-bill/group/{id}", middlewares.VerifyAccessToken(
		middlewares.IsGroupOwner(
			adapters.AdaptRoute(factory.MakeDeleteGroupController(db)),
			db,
		),
	))

	server.Handle("POST /split-bill/group/{id}/person", middlewares.VerifyAccessToken(
		middlewares.IsGroupOwner(
			adapters.AdaptRoute(factory.MakeAddPersonController(db)),
			db,
		),
	))

	server.Handle("PATCH /split-bill/person", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeUpdatePersonDetailsController(db)),
	))

	server.Handle("DELETE /split-bill/person", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeRemovePersonController(db)),
	))

	server.Handle("POST /split-bill/bill", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeCreateBillController(db)),
	))

	server.Handle("PATCH /split-bill/bill/{id}", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeUpdateBillController(db)),
	))

	server.Handle("DELETE /split-bill/bill/{id}", middlewares.VerifyAccessToken(
		adapters.AdaptRoute(factory.MakeDeleteBillController(db)),
	))

	server.Handle("GET /split-bill/group/{id}/overall", middlewares.VerifyAccessToken(
		middlewares.IsGroupOwner(
			middlewares.AllowCacheHeader(
				adapters.AdaptRoute(factory.MakeGroupOverallController(db)),
			),
			db,
		),
	))

	server.Handle("GET /split-bill/group/{id}/person-wise", middlewares.VerifyAccessToken(
		middlewares.IsGroupOwner(
			middlewares.AllowCacheHeader(
				adapters.AdaptRoute(factory.MakePersonWiseController(db)),
			),
			db,
		),
	))

	server.Handle("GET /split-bill/group/{id}/person-wise/export", middlewares.VerifyAccessToken(
		middlewares.IsGroupOwner(
			adapters.AdaptRoute(factory.MakeExportPersonWiseController(db)),
			db,
		),
	))
}
