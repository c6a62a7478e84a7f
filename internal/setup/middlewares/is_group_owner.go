package middlewares

import (
	"net/http"

	"github.com/finsplit/finsplit-backend/internal/infra/db/mongodb/group_repository"
	"github.com/finsplit/finsplit-backend/internal/infra/db/mongodb/helpers"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// IsGroupOwner guards group-scoped routes: the {id} path segment must name
// a group owned by the authenticated user. Runs after VerifyAccessToken so
// the UserId header is already set.
func IsGroupOwner(next http.Handler, db *mongo.Database) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		groupId, err := primitive.ObjectIDFromHex(r.PathValue("id"))
		if err != nil {
			http.Error(w, "Invalid group ID", http.StatusBadRequest)
			return
		}

		collection := db.Collection(group_repository.GroupCollection)
		result := collection.FindOne(helpers.Ctx, bson.M{"_id": groupId})
		if result.Err() != nil {
			http.Error(w, "Group not found", http.StatusNotFound)
			return
		}

		var group struct {
			UserId string `bson:"user_id"`
		}
		if err := result.Decode(&group); err != nil {
			http.Error(w, "Error decoding group", http.StatusInternalServerError)
			return
		}

		if group.UserId != r.Header.Get("UserId") {
			http.Error(w, "User not allowed to access this group", http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r)
	})
}
