package domain

import "errors"

// Errores de dominio (sin dependencias externas). Los handlers los traducen
// al código HTTP documentado; los repositorios remapean el error de índice
// único del driver a ErrDuplicate.
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrCategoryNotFound   = errors.New("categoría no encontrada o no pertenece al usuario")
	ErrProviderNotFound   = errors.New("proveedor no encontrado o no pertenece al usuario")
	ErrProductNotFound    = errors.New("producto no encontrado o no pertenece al usuario")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrInvalidCredentials = errors.New("credenciales inválidas")
	ErrInvalidID          = errors.New("formato de id inválido")
)
