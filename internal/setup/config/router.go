package config

import (
	"net/http"

	"github.com/finsplit/finsplit-backend/internal/setup/routes"
	"go.mongodb.org/mongo-driver/mongo"
)

func SetupRoutes(server *http.ServeMux, db *mongo.Database) {
	apiServer := http.NewServeMux()
	routes.SplitBillRoutes(apiServer, db)
	routes.TransactionRoutes(apiServer, db)

	server.Handle("/api/", http.StripPrefix("/api", apiServer))
}
