package dto

// Response envelope estándar de la API: {success, message?, error?, data?}.
// Error lleva la clase de error (duplicate, not_found, server...), nunca el
// detalle interno.
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Error   string      `json:"error,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// ValidationResponse cuerpo HTTP 400 con todos los mensajes de validación.
type ValidationResponse struct {
	Success bool     `json:"success"`
	Errors  []string `json:"errors"`
}

// RefResponse campos de despliegue de una entidad referenciada (join a nivel
// de aplicación). Se adjunta null cuando la referencia no existe o fue borrada.
type RefResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
