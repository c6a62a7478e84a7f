package setup

import (
	"net/http"
	"os"

	"github.com/finsplit/finsplit-backend/internal/infra/db/mongodb/helpers"
	"github.com/finsplit/finsplit-backend/internal/setup/config"
)

func Server() *http.ServeMux {
	mux := http.NewServeMux()

	databaseName := os.Getenv("MONGO_DATABASE")
	if databaseName == "" {
		databaseName = "finsplit"
	}
	db := helpers.MongoHelper(os.Getenv("MONGO_URI"), databaseName)

	config.SetupRoutes(mux, db)

	return mux
}
