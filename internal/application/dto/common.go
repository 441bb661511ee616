package dto

// Envelope de respuesta compartido por toda la API.
// Éxito:  {"success": true,  "message": "...", "data": ...}
// Fallo:  {"success": false, "message": "...", "errors": [...]}

// SuccessResponse cuerpo de toda respuesta exitosa.
type SuccessResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

// ErrorResponse cuerpo de toda respuesta de error.
type ErrorResponse struct {
	Success bool     `json:"success"`
	Message string   `json:"message"`
	Errors  []string `json:"errors,omitempty"`
}

// OK construye el envelope de éxito.
func OK(message string, data interface{}) SuccessResponse {
	return SuccessResponse{Success: true, Message: message, Data: data}
}

// Fail construye el envelope de error.
func Fail(message string, errs ...string) ErrorResponse {
	return ErrorResponse{Success: false, Message: message, Errors: errs}
}

// PageRequest paginación para listados.
type PageRequest struct {
	Limit  int `query:"limit" validate:"omitempty,min=1,max=100"`
	Offset int `query:"offset" validate:"omitempty,min=0"`
}

// DefaultPage aplica valores por defecto si Limit/Offset son cero.
func (p *PageRequest) DefaultPage() {
	if p.Limit <= 0 {
		p.Limit = 50
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
}
