package lexer

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/khevencolino/Basic/internal/debug"
)

// fimDeEntrada marca que o cursor passou do último caractere
const fimDeEntrada rune = -1

// CaractereSaida encerra a sessão quando encontrado na entrada
const CaractereSaida = 'Q'

// ErrEncerramentoSolicitado é retornado por Tokenizar quando a entrada
// contém o caractere de saída. Não é um erro léxico.
var ErrEncerramentoSolicitado = errors.New("Exited successfully")

// Lexer representa o analisador léxico
type Lexer struct {
	caracteres []rune    // Código fonte de entrada
	pos        *Position // Posição atual no código
	atual      rune      // Caractere sob o cursor
	log        logrus.FieldLogger
}

// NovoLexer cria um novo analisador léxico já posicionado no primeiro
// caractere da entrada
func NovoLexer(fn, entrada string) *Lexer {
	lexer := &Lexer{
		caracteres: []rune(entrada),
		pos:        posicaoInicial(fn, entrada),
		atual:      fimDeEntrada,
		log:        debug.Logger().WithField("fonte", fn),
	}
	lexer.avancar()
	return lexer
}

// avancar move o cursor um caractere para frente
func (l *Lexer) avancar() {
	l.pos.Avancar(l.atual)
	if l.pos.Idx < len(l.caracteres) {
		l.atual = l.caracteres[l.pos.Idx]
	} else {
		l.atual = fimDeEntrada
	}
}

// Tokenizar converte a entrada em uma lista de tokens. Para no primeiro
// caractere ilegal, retornando um *Erro e nenhum token.
func (l *Lexer) Tokenizar() ([]Token, error) {
	var tokens []Token

	for l.atual != fimDeEntrada {
		switch {
		case l.atual == ' ' || l.atual == '\t':
			l.avancar()

		case ehDigito(l.atual):
			token, err := l.lerNumero()
			if err != nil {
				return nil, l.falhar(err)
			}
			tokens = append(tokens, l.emitir(token))

		case ehSimbolo(l.atual):
			tokens = append(tokens, l.emitir(NovoSimbolo(simbolos[l.atual])))
			l.avancar()

		case l.atual == CaractereSaida:
			l.log.Debug("caractere de saída encontrado")
			return nil, ErrEncerramentoSolicitado

		default:
			inicio := l.pos.Copiar()
			caractere := l.atual
			l.avancar()
			return nil, l.falhar(NovoErro(CaractereIlegal, inicio, l.pos.Copiar(), "'"+string(caractere)+"'"))
		}
	}

	return tokens, nil
}

// lerNumero acumula dígitos e no máximo um ponto decimal. Um segundo
// ponto não é consumido.
func (l *Lexer) lerNumero() (Token, *Erro) {
	inicio := l.pos.Copiar()
	var texto strings.Builder
	pontos := 0

	for l.atual != fimDeEntrada && (ehDigito(l.atual) || l.atual == '.') {
		if l.atual == '.' {
			if pontos == 1 {
				break
			}
			pontos++
		}
		texto.WriteRune(l.atual)
		l.avancar()
	}

	if pontos == 0 {
		valor, err := strconv.ParseInt(texto.String(), 10, 64)
		if err != nil {
			return nil, NovoErro(NumeroInvalido, inicio, l.pos.Copiar(), texto.String())
		}
		return Inteiro{Valor: valor}, nil
	}

	// Estouro vira ±Inf sem erro
	valor, err := strconv.ParseFloat(texto.String(), 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return nil, NovoErro(NumeroInvalido, inicio, l.pos.Copiar(), texto.String())
	}
	return Flutuante{Valor: valor}, nil
}

func (l *Lexer) emitir(token Token) Token {
	l.log.WithFields(logrus.Fields{
		"idx":    l.pos.Idx,
		"linha":  l.pos.Ln,
		"coluna": l.pos.Col,
	}).Debugf("token %s", token)
	return token
}

func (l *Lexer) falhar(err *Erro) *Erro {
	l.log.WithFields(logrus.Fields{
		"idx":    err.PosInicio.Idx,
		"linha":  err.PosInicio.Ln,
		"coluna": err.PosInicio.Col,
	}).Debugf("%s: %s", err.Nome(), err.Dados)
	return err
}

func ehDigito(r rune) bool {
	return r >= '0' && r <= '9'
}

func ehSimbolo(r rune) bool {
	_, ok := simbolos[r]
	return ok
}

// ValidarParenteses verifica se os parênteses estão balanceados
func ValidarParenteses(tokens []Token) error {
	contadorParenteses := 0
	for i, token := range tokens {
		if !EParenteses(token) {
			continue
		}

		switch token.Tipo() {
		case LBRA:
			contadorParenteses++
		case RBRA:
			contadorParenteses--
			if contadorParenteses < 0 {
				return fmt.Errorf("parênteses não balanceados: ')' extra no token %d", i+1)
			}
		}
	}

	if contadorParenteses > 0 {
		return fmt.Errorf("parênteses não balanceados: %d '(' sem ')' correspondente", contadorParenteses)
	}

	return nil
}

// FormatarTokens formata os tokens como uma lista: [TK_INT:1, PLUS]
func FormatarTokens(tokens []Token) string {
	partes := make([]string, len(tokens))
	for i, token := range tokens {
		partes[i] = token.String()
	}
	return "[" + strings.Join(partes, ", ") + "]"
}

// ImprimirTokens imprime todos os tokens de forma formatada
func ImprimirTokens(w io.Writer, tokens []Token) {
	fmt.Fprintf(w, "%-10s %-15s\n", "TIPO", "VALOR")
	fmt.Fprintln(w, strings.Repeat("-", 26))

	for _, token := range tokens {
		valor := ""
		if ENumero(token) {
			_, valor, _ = strings.Cut(token.String(), ":")
		}
		fmt.Fprintf(w, "%-10s %-15s\n", token.Tipo(), valor)
	}
}
