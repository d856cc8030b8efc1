package lexer

import (
	"fmt"
	"io"
	"strings"

	"github.com/m1gwings/treedrawer/tree"
)

// VisualizadorTokens cria representações visuais de uma sequência de tokens
type VisualizadorTokens struct{}

// NovoVisualizador cria um novo visualizador
func NovoVisualizador() *VisualizadorTokens {
	return &VisualizadorTokens{}
}

// CriarArvore monta uma árvore com a fonte na raiz e um filho por token.
// Tokens numéricos carregam o valor como folha.
func (v *VisualizadorTokens) CriarArvore(fn string, tokens []Token) *tree.Tree {
	arvore := tree.NewTree(tree.NodeString(fn))

	for _, token := range tokens {
		filho := arvore.AddChild(tree.NodeString(token.Tipo().String()))

		switch t := token.(type) {
		case Inteiro, Flutuante:
			_, valor, _ := strings.Cut(t.String(), ":")
			filho.AddChild(tree.NodeString(valor))
		}
	}

	return arvore
}

// ImprimirArvore imprime a árvore de tokens
func (v *VisualizadorTokens) ImprimirArvore(w io.Writer, fn string, tokens []Token) {
	fmt.Fprintln(w, "=== Árvore de Tokens ===")
	fmt.Fprintln(w, v.CriarArvore(fn, tokens))
	fmt.Fprintln(w)
}
