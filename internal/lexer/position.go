package lexer

import "fmt"

// Position representa uma posição no código fonte
type Position struct {
	Idx int    // Posição absoluta no texto (-1 antes do primeiro avanço)
	Ln  int    // Linha no código, a partir de 0
	Col int    // Coluna no código, a partir de 0
	Fn  string // Nome da fonte
	Fc  string // Texto completo da fonte
}

// NovaPosicao cria uma nova posição
func NovaPosicao(idx, ln, col int, fn, fc string) *Position {
	return &Position{
		Idx: idx,
		Ln:  ln,
		Col: col,
		Fn:  fn,
		Fc:  fc,
	}
}

// posicaoInicial retorna o cursor antes do primeiro caractere
func posicaoInicial(fn, fc string) *Position {
	return NovaPosicao(-1, 0, -1, fn, fc)
}

// Avancar move a posição um caractere para frente. caractere é o
// caractere que está sendo deixado para trás.
func (p *Position) Avancar(caractere rune) *Position {
	p.Idx++
	p.Col++

	if caractere == '\n' {
		p.Ln++
		p.Col = 0
	}

	return p
}

// Copiar retorna uma cópia independente da posição
func (p *Position) Copiar() Position {
	return *p
}

// String retorna uma representação em string da posição
func (p Position) String() string {
	return fmt.Sprintf("%s, linha %d, coluna %d", p.Fn, p.Ln+1, p.Col+1)
}
