package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrConflict           = errors.New("conflicto con el estado actual")

	// ErrSuspendReasonRequired la suspensión exige un motivo del conjunto cerrado.
	ErrSuspendReasonRequired = errors.New("la suspensión requiere un motivo válido")

	// ErrSchemaDrift la columna esperada no existe en el esquema en vivo.
	// El mensaje envuelto indica la migración exacta a ejecutar.
	ErrSchemaDrift = errors.New("el esquema de la base de datos está desactualizado")
)
