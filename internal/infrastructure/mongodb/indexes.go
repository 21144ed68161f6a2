package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes crea los índices de la aplicación de forma idempotente.
// La unicidad de clave natural por usuario se refuerza aquí con índices únicos
// parciales (solo documentos sin borrado lógico): es la guarda real contra la
// carrera entre dos creaciones concurrentes con el mismo nombre.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	notDeletedFilter := bson.M{"deletedAt": bson.M{"$eq": nil}}

	type colIndexes struct {
		name    string
		indexes []mongo.IndexModel
	}

	naturalKey := func(field string) []mongo.IndexModel {
		return []mongo.IndexModel{
			{
				Keys: bson.D{{Key: field, Value: 1}, {Key: "userId", Value: 1}},
				Options: options.Index().
					SetUnique(true).
					SetPartialFilterExpression(notDeletedFilter),
			},
			{Keys: bson.D{{Key: "userId", Value: 1}, {Key: "createdAt", Value: -1}}},
		}
	}

	all := []colIndexes{
		{
			name: "users",
			indexes: []mongo.IndexModel{
				{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
			},
		},
		{name: "categories", indexes: naturalKey("name")},
		{name: "products", indexes: naturalKey("name")},
		{name: "providers", indexes: naturalKey("name")},
		{name: "notes", indexes: naturalKey("title")},
		{name: "expenses", indexes: naturalKey("title")},
		{
			name: "sales",
			indexes: []mongo.IndexModel{
				{Keys: bson.D{{Key: "userId", Value: 1}, {Key: "createdAt", Value: -1}}},
				{Keys: bson.D{{Key: "products.productId", Value: 1}}},
			},
		},
	}

	for _, ci := range all {
		if _, err := db.Collection(ci.name).Indexes().CreateMany(ctx, ci.indexes); err != nil {
			return fmt.Errorf("crear índices de %s: %w", ci.name, err)
		}
	}
	return nil
}
