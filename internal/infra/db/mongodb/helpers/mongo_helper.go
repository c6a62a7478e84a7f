package helpers

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var Ctx = context.TODO()

const connectTimeout = 10 * time.Second

// MongoHelper dials the store and pings it before handing the database
// handle back; startup aborts when the store is unreachable.
func MongoHelper(URI string, databaseName string) *mongo.Database {
	ctx, cancel := context.WithTimeout(Ctx, connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(URI))
	if err != nil {
		log.Fatalf("error connecting to MongoDB: %v", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		log.Fatalf("error pinging MongoDB: %v", err)
	}

	log.Printf("connected to MongoDB database %s", databaseName)

	return client.Database(databaseName)
}
