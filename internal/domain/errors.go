package domain

import "errors"

// Errores de dominio (sin dependencias externas). Los textos van en inglés
// porque pueden viajar en las respuestas de la API.
var (
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")
)
