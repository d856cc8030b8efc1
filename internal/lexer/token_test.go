package lexer

import (
	"bytes"
	"testing"

	"github.com/m1gwings/treedrawer/tree"
	"github.com/stretchr/testify/assert"
)

func TestToken_String(t *testing.T) {
	for expected, token := range map[string]Token{
		"PLUS":           NovoSimbolo(PLUS),
		"RBRA":           NovoSimbolo(RBRA),
		"TK_INT:0":       Inteiro{Valor: 0},
		"TK_INT:42":      Inteiro{Valor: 42},
		"TK_FLOAT:1.2":   Flutuante{Valor: 1.2},
		"TK_FLOAT:3.0":   Flutuante{Valor: 3},
		"TK_FLOAT:1e+21": Flutuante{Valor: 1e21},
		"TK_FLOAT:0.0":   Flutuante{Valor: 0},

		"TK_FLOAT:1234567.5":              Flutuante{Valor: 1234567.5},
		"TK_FLOAT:1000000.0":              Flutuante{Valor: 1000000.0},
		"TK_FLOAT:0.0001":                 Flutuante{Valor: 0.0001},
		"TK_FLOAT:1e-05":                  Flutuante{Valor: 1e-05},
		"TK_FLOAT:1000000000000000.0":     Flutuante{Valor: 1e15},
		"TK_FLOAT:1e+16":                  Flutuante{Valor: 1e16},
		"TK_FLOAT:1.2345678901234568e+16": Flutuante{Valor: 1.2345678901234568e+16},
	} {
		assert.Equal(t, expected, token.String())
	}
}

func TestToken_Classificacao(t *testing.T) {
	assert.True(t, EParenteses(NovoSimbolo(LBRA)))
	assert.True(t, EParenteses(NovoSimbolo(RBRA)))
	assert.False(t, EParenteses(NovoSimbolo(DIV)))
	assert.False(t, EParenteses(Inteiro{Valor: 1}))
	assert.True(t, ENumero(Inteiro{Valor: 1}))
	assert.True(t, ENumero(Flutuante{Valor: 1}))
	assert.False(t, ENumero(NovoSimbolo(PLUS)))
	assert.Equal(t, "UNKNOWN", TokenType(99).String())
}

func TestImprimirTokens(t *testing.T) {
	var buf bytes.Buffer
	ImprimirTokens(&buf, []Token{Inteiro{Valor: 3}, NovoSimbolo(PLUS), Flutuante{Valor: 0.5}})
	assert.Equal(t, ""+
		"TIPO       VALOR          \n"+
		"--------------------------\n"+
		"TK_INT     3              \n"+
		"PLUS                      \n"+
		"TK_FLOAT   0.5            \n", buf.String())
}

func TestVisualizadorTokens(t *testing.T) {
	arvore := NovoVisualizador().CriarArvore("<stdin>", []Token{Inteiro{Valor: 7}, NovoSimbolo(MUL)})

	primeiro, err := arvore.Child(0)
	assert.NoError(t, err)
	assert.Equal(t, tree.NodeString("TK_INT"), primeiro.Val())

	valor, err := primeiro.Child(0)
	assert.NoError(t, err)
	assert.Equal(t, tree.NodeString("7"), valor.Val())

	segundo, err := arvore.Child(1)
	assert.NoError(t, err)
	assert.Equal(t, tree.NodeString("MUL"), segundo.Val())

	_, err = segundo.Child(0)
	assert.Error(t, err)
}
