package lexer

import (
	"fmt"
	"strings"
)

// TipoErro identifica a categoria de um erro léxico
type TipoErro int

const (
	CaractereIlegal TipoErro = iota // Caractere que não inicia nenhum lexema
	NumeroInvalido                  // Literal numérico fora do intervalo suportado
)

// String retorna o nome exibido da categoria
func (t TipoErro) String() string {
	switch t {
	case CaractereIlegal:
		return "Illegal Character"
	case NumeroInvalido:
		return "Invalid Number"
	default:
		return "Unknown Error"
	}
}

// Erro representa uma falha léxica com o trecho do código que a causou
type Erro struct {
	PosInicio Position // Início do trecho
	PosFim    Position // Posição logo após o trecho
	Tipo      TipoErro // Categoria do erro
	Dados     string   // Caractere ou lexema ofensivo
}

// NovoErro cria um novo erro léxico
func NovoErro(tipo TipoErro, inicio, fim Position, dados string) *Erro {
	return &Erro{
		PosInicio: inicio,
		PosFim:    fim,
		Tipo:      tipo,
		Dados:     dados,
	}
}

// Nome retorna o rótulo da categoria do erro
func (e *Erro) Nome() string {
	return e.Tipo.String()
}

// ComoTexto formata o erro em duas linhas: categoria e dados, depois
// fonte e linha (contada a partir de 1)
func (e *Erro) ComoTexto() string {
	var builder strings.Builder
	builder.WriteString(e.Nome())
	builder.WriteString(": ")
	builder.WriteString(e.Dados)
	builder.WriteString(" \n")
	builder.WriteString(fmt.Sprintf("File %s, line %d", e.PosInicio.Fn, e.PosInicio.Ln+1))
	return builder.String()
}

// Error implementa a interface error
func (e *Erro) Error() string {
	return e.ComoTexto()
}
