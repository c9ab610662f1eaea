package db

import (
	"context"
	"log"

	"sanchaari/globals"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	Client              *mongo.Client
	UserCollection      *mongo.Collection
	ItineraryCollection *mongo.Collection
)

// Init connects to MongoDB and prepares the collections and indexes. Call
// once from main before the server starts accepting requests.
func Init(ctx context.Context) error {
	uri := globals.Getenv("MONGODB_URI", "mongodb://localhost:27017")

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return err
	}
	if err := client.Ping(ctx, nil); err != nil {
		return err
	}

	Client = client
	database := client.Database(globals.Getenv("MONGODB_DB", "sanchaari"))
	UserCollection = database.Collection("users")
	ItineraryCollection = database.Collection("itineraries")

	if err := createIndexes(ctx); err != nil {
		// index creation failing shouldn't keep the server down
		log.Printf("Failed to create indexes: %v", err)
	}
	return nil
}

// Close disconnects the Mongo client.
func Close(ctx context.Context) error {
	if Client == nil {
		return nil
	}
	return Client.Disconnect(ctx)
}

func createIndexes(ctx context.Context) error {
	_, err := UserCollection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "username", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return err
	}
	_, err = ItineraryCollection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "userid", Value: 1}},
	})
	return err
}
