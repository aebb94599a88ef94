package domain

import "errors"

var (
	ErrNotFound          = errors.New("no encontrado")
	ErrEmptyCart         = errors.New("carrito vacío")
	ErrInvalidTransition = errors.New("transición de pedido inválida")
	ErrNotAdmin          = errors.New("requiere modo admin")
)
