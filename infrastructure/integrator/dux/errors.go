package dux

import "errors"

var (
	ErrUnknownResource = errors.New("recurso do Dux desconhecido")
	ErrMissingParam    = errors.New("parâmetro obrigatório ausente")
	ErrInvalidDate     = errors.New("data deve estar no formato yyyy-MM-dd")
)
