package catalog

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"storefront/internal/models"
)

// LoadFromMongo reads the products collection once at startup and builds the
// in-memory catalog from it. The collection is treated as a static source:
// nothing is ever written back, and changes after startup are not observed.
func LoadFromMongo(ctx context.Context, db *mongo.Database) (*Catalog, error) {
	findCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	findOptions := options.Find().SetSort(bson.D{{Key: "id", Value: 1}})

	cursor, err := db.Collection("products").Find(findCtx, bson.M{}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(findCtx)

	products, err := decodeProducts(findCtx, cursor)
	if err != nil {
		return nil, err
	}

	return New(products)
}

// normalizeProductDocument tolerates the numeric and scalar shapes older
// seed scripts wrote, so a legacy document never fails the whole load.
func normalizeProductDocument(raw bson.M) (models.Product, error) {
	raw["id"] = normalizeInt(raw["id"])
	raw["stock"] = normalizeInt(raw["stock"])

	if img, ok := raw["images"].(string); ok {
		raw["images"] = []string{img}
	}

	if dp, ok := raw["discountPrice"]; ok {
		switch typed := dp.(type) {
		case int32:
			raw["discountPrice"] = float64(typed)
		case int64:
			raw["discountPrice"] = float64(typed)
		case float64:
			if typed <= 0 {
				delete(raw, "discountPrice")
			}
		default:
			delete(raw, "discountPrice")
		}
	}

	data, err := bson.Marshal(raw)
	if err != nil {
		return models.Product{}, err
	}

	var p models.Product
	if err := bson.Unmarshal(data, &p); err != nil {
		return models.Product{}, err
	}

	return p, nil
}

func normalizeInt(val interface{}) int {
	switch typed := val.(type) {
	case int32:
		return int(typed)
	case int64:
		return int(typed)
	case float64:
		return int(typed)
	case int:
		return typed
	default:
		return 0
	}
}

func decodeProducts(ctx context.Context, cursor *mongo.Cursor) ([]models.Product, error) {
	products := make([]models.Product, 0)

	for cursor.Next(ctx) {
		var raw bson.M
		if err := cursor.Decode(&raw); err != nil {
			return nil, err
		}

		product, err := normalizeProductDocument(raw)
		if err != nil {
			return nil, err
		}

		products = append(products, product)
	}

	if err := cursor.Err(); err != nil {
		return nil, err
	}

	return products, nil
}
