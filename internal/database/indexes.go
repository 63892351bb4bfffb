package database

import (
	"context"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func EnsureCatalogIndexes(db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	indexes := db.Collection("products").Indexes()

	idIndex := mongo.IndexModel{
		Keys: bson.D{{Key: "id", Value: 1}},
		Options: options.Index().
			SetName("productId_unique").
			SetUnique(true),
	}

	log.Println("EnsureCatalogIndexes: creating productId_unique index")
	_, err := indexes.CreateOne(ctx, idIndex)
	if err != nil {
		log.Println("EnsureCatalogIndexes: productId index error:", err)
		return err
	}
	log.Println("EnsureCatalogIndexes: productId_unique index created")
	return nil
}
