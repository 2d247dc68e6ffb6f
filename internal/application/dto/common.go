package dto

// Pagination metadatos de página en respuestas de listado.
type Pagination struct {
	Total      int `json:"total"`
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	TotalPages int `json:"totalPages"`
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// MessageResponse respuesta simple con mensaje (delete, acciones sin cuerpo).
type MessageResponse struct {
	Message string `json:"message"`
}
