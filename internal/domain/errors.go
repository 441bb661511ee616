package domain

import "errors"

// Errores de dominio (sin dependencias externas).
// El handler HTTP los mapea al envelope de error y al status code correspondiente.
var (
	ErrNotFound           = errors.New("recurso no encontrado")                       // 404
	ErrUserNotFound       = errors.New("usuario no encontrado")                       // 404
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")                 // 409
	ErrInvalidInput       = errors.New("entrada inválida")                            // 400
	ErrUnauthorized       = errors.New("no autorizado")                               // 401
	ErrTokenRevoked       = errors.New("token revocado")                              // 401
	ErrForbidden          = errors.New("acceso denegado")                             // 403
	ErrAccountInactive    = errors.New("cuenta inactiva")                             // 403
	ErrConflict           = errors.New("conflicto con el estado actual")              // 409
	ErrOversell           = errors.New("no se puede vender más de lo asignado")       // 400 (invariante de negocio)
	ErrInsufficientStock  = errors.New("stock insuficiente")                          // 400 (invariante de negocio)
	ErrNoSalarySet        = errors.New("el empleado no tiene salario configurado")    // 400
	ErrInvalidRole        = errors.New("rol inválido")                                // 400
)
