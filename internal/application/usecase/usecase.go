// Package usecase implementa los servicios de dominio. Todas las operaciones
// siguen el mismo orden: existencia del usuario autenticado, integridad de las
// referencias provistas, unicidad de la clave natural y recién ahí persistencia.
package usecase

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/JuanesPachon/Stockia/internal/domain"
	"github.com/JuanesPachon/Stockia/internal/domain/repository"
)

// guard chequeos compartidos por todos los servicios de dominio.
type guard struct {
	users repository.UserRepository
}

// requireUser resuelve la existencia del usuario autenticado antes de
// cualquier otro chequeo; domain.ErrUserNotFound si no existe.
func (g guard) requireUser(ctx context.Context, userID string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return primitive.NilObjectID, domain.ErrInvalidID
	}
	ok, err := g.users.Exists(ctx, oid)
	if err != nil {
		return primitive.NilObjectID, err
	}
	if !ok {
		return primitive.NilObjectID, domain.ErrUserNotFound
	}
	return oid, nil
}

// parseID interpreta un id de path/cuerpo; domain.ErrInvalidID si no tiene la
// forma de ObjectID.
func parseID(s string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(s)
	if err != nil {
		return primitive.NilObjectID, domain.ErrInvalidID
	}
	return oid, nil
}

// parseOptionalID interpreta una referencia opcional; (nil, nil) si está ausente.
func parseOptionalID(s *string) (*primitive.ObjectID, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	oid, err := parseID(*s)
	if err != nil {
		return nil, err
	}
	return &oid, nil
}

// checkCategoryRef valida que la categoría referida exista, sea del usuario y
// esté viva.
func checkCategoryRef(ctx context.Context, categories repository.CategoryRepository, id *primitive.ObjectID, userID primitive.ObjectID) error {
	if id == nil {
		return nil
	}
	ok, err := categories.ExistsOwned(ctx, *id, userID)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrCategoryNotFound
	}
	return nil
}

// checkProviderRef valida que el proveedor referido exista, sea del usuario y
// esté vivo.
func checkProviderRef(ctx context.Context, providers repository.ProviderRepository, id *primitive.ObjectID, userID primitive.ObjectID) error {
	if id == nil {
		return nil
	}
	ok, err := providers.ExistsOwned(ctx, *id, userID)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrProviderNotFound
	}
	return nil
}
