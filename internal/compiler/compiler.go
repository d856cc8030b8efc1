package compiler

import (
	"github.com/khevencolino/Basic/internal/debug"
	"github.com/khevencolino/Basic/internal/lexer"
	"github.com/khevencolino/Basic/internal/utils"
)

// Executar realiza a análise léxica de texto, identificado por fn nas
// mensagens de erro. Retorna os tokens, um *lexer.Erro ou
// lexer.ErrEncerramentoSolicitado.
func Executar(fn, texto string) ([]lexer.Token, error) {
	tokens, err := lexer.NovoLexer(fn, texto).Tokenizar()
	if err != nil {
		return nil, err
	}

	debug.Printf("%d tokens encontrados em %s", len(tokens), fn)
	return tokens, nil
}

// ExecutarArquivo lê um arquivo e realiza sua análise léxica
func ExecutarArquivo(arquivoEntrada string) ([]lexer.Token, error) {
	conteudo, err := utils.LerArquivo(arquivoEntrada)
	if err != nil {
		return nil, err
	}

	return Executar(arquivoEntrada, conteudo)
}
