package usecase

import "context"

// Image buffer en memoria de una imagen subida por el cliente.
type Image struct {
	Filename string
	Data     []byte
}

// ImageStore puerto del almacenamiento de objetos para imágenes de productos.
type ImageStore interface {
	// Upload sube el buffer y devuelve el path a persistir como imageUrl.
	Upload(ctx context.Context, filename string, data []byte) (string, error)
	// Remove elimina un objeto previamente subido.
	Remove(ctx context.Context, path string) error
	// IsGeneratedPath indica si el path fue generado por Upload; solo esos se
	// eliminan al reemplazar una imagen.
	IsGeneratedPath(path string) bool
}
