package lexer

import (
	"math"
	"strconv"
	"strings"
)

// TokenType representa o tipo de token
type TokenType int

const (
	// Tipos de tokens
	TK_INT   TokenType = iota // Números inteiros
	TK_FLOAT                  // Números de ponto flutuante
	PLUS                      // Operador de adição (+)
	MINUS                     // Operador de subtração (-)
	MUL                       // Operador de multiplicação (*)
	DIV                       // Operador de divisão (/)
	LBRA                      // Parêntese esquerdo (()
	RBRA                      // Parêntese direito ())
)

// String retorna uma representação em string do tipo de token
func (t TokenType) String() string {
	switch t {
	case TK_INT:
		return "TK_INT"
	case TK_FLOAT:
		return "TK_FLOAT"
	case PLUS:
		return "PLUS"
	case MINUS:
		return "MINUS"
	case MUL:
		return "MUL"
	case DIV:
		return "DIV"
	case LBRA:
		return "LBRA"
	case RBRA:
		return "RBRA"
	default:
		return "UNKNOWN"
	}
}

// simbolos mapeia cada caractere de operador ou delimitador para seu tipo
var simbolos = map[rune]TokenType{
	'+': PLUS,
	'-': MINUS,
	'*': MUL,
	'/': DIV,
	'(': LBRA,
	')': RBRA,
}

// Token representa um token encontrado no código fonte. As únicas
// implementações são Simbolo, Inteiro e Flutuante.
type Token interface {
	Tipo() TokenType
	String() string

	token()
}

// Simbolo é um operador ou delimitador, sem valor
type Simbolo struct {
	Type TokenType
}

func (s Simbolo) Tipo() TokenType { return s.Type }
func (s Simbolo) String() string  { return s.Type.String() }
func (Simbolo) token()            {}

// Inteiro é um literal inteiro já convertido
type Inteiro struct {
	Valor int64
}

func (Inteiro) Tipo() TokenType { return TK_INT }
func (i Inteiro) String() string {
	return TK_INT.String() + ":" + strconv.FormatInt(i.Valor, 10)
}
func (Inteiro) token() {}

// Flutuante é um literal de ponto flutuante já convertido
type Flutuante struct {
	Valor float64
}

func (Flutuante) Tipo() TokenType { return TK_FLOAT }
func (f Flutuante) String() string {
	return TK_FLOAT.String() + ":" + formatarFlutuante(f.Valor)
}
func (Flutuante) token() {}

// formatarFlutuante usa notação fixa para expoentes em [-4, 16) e sempre
// mostra a parte fracionária: 3 vira "3.0", 1e16 vira "1e+16"
func formatarFlutuante(valor float64) string {
	switch {
	case math.IsInf(valor, 1):
		return "inf"
	case math.IsInf(valor, -1):
		return "-inf"
	}

	cientifico := strconv.FormatFloat(valor, 'e', -1, 64)
	_, textoExpoente, _ := strings.Cut(cientifico, "e")
	expoente, _ := strconv.Atoi(textoExpoente)
	if expoente < -4 || expoente >= 16 {
		return cientifico
	}

	texto := strconv.FormatFloat(valor, 'f', -1, 64)
	if !strings.Contains(texto, ".") {
		texto += ".0"
	}
	return texto
}

// NovoSimbolo cria o token de um operador ou delimitador
func NovoSimbolo(tipoToken TokenType) Token {
	return Simbolo{Type: tipoToken}
}

// ENumero verifica se o token é um número
func ENumero(t Token) bool {
	switch t.(type) {
	case Inteiro, Flutuante:
		return true
	}
	return false
}

// EParenteses verifica se o token é um parêntese
func EParenteses(t Token) bool {
	return t.Tipo() == LBRA || t.Tipo() == RBRA
}
