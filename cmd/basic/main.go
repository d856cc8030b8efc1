package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"

	"github.com/khevencolino/Basic/internal/compiler"
	"github.com/khevencolino/Basic/internal/debug"
	"github.com/khevencolino/Basic/internal/lexer"
)

const prompt = "basic > "

// tamanhoMaximoLinha limita uma linha do modo interativo
const tamanhoMaximoLinha = 16 * 1024 * 1024

// opcoes guarda as flags da linha de comando
type opcoes struct {
	arvore  bool
	tokens  bool
	validar bool
}

func main() {
	os.Exit(Run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// Run executa o analisador sobre um arquivo ou, sem argumentos, em modo
// interativo. Retorna o código de saída do processo.
func Run(args []string, entrada io.Reader, saida, saidaErro io.Writer) int {
	flags := pflag.NewFlagSet("basic", pflag.ContinueOnError)
	flags.SetOutput(saidaErro)
	debugAtivo := flags.Bool("debug", false, "ativar mensagens de debug")
	arvore := flags.Bool("arvore", false, "mostrar os tokens como árvore")
	tabela := flags.Bool("tokens", false, "mostrar os tokens em uma tabela")
	validar := flags.Bool("validar", false, "verificar se os parênteses estão balanceados")
	flags.Usage = func() {
		fmt.Fprintf(saidaErro, "USO:\n    basic [flags] [arquivo]\n\n"+
			"O arquivo deve conter uma única linha: quebras de linha, inclusive\n"+
			"a final, são caracteres ilegais.\n\nFLAGS:\n")
		flags.PrintDefaults()
	}

	if err := flags.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		return 1
	}

	debug.DefinirSaida(saidaErro)
	debug.Ativar(*debugAtivo)

	op := opcoes{arvore: *arvore, tokens: *tabela, validar: *validar}

	if flags.NArg() > 1 {
		fmt.Fprintln(saidaErro, "Erro: apenas um arquivo de entrada é aceito")
		return 1
	}

	if flags.NArg() == 1 {
		arquivo := flags.Arg(0)
		tokens, err := compiler.ExecutarArquivo(arquivo)
		if err != nil {
			if encerrar, codigo := tratarErro(err, saida, saidaErro); encerrar {
				return codigo
			}
			return 1
		}
		if err := mostrar(saida, arquivo, tokens, op); err != nil {
			fmt.Fprintf(saidaErro, "Erro: %v\n", err)
			return 1
		}
		return 0
	}

	return repl(entrada, saida, saidaErro, op)
}

// repl lê uma linha por vez até o fim da entrada ou o caractere de saída
func repl(entrada io.Reader, saida, saidaErro io.Writer, op opcoes) int {
	scanner := bufio.NewScanner(entrada)
	scanner.Buffer(make([]byte, 0, 64*1024), tamanhoMaximoLinha)
	for {
		fmt.Fprint(saida, prompt)
		if !scanner.Scan() {
			fmt.Fprintln(saida)
			if err := scanner.Err(); err != nil {
				fmt.Fprintf(saidaErro, "Erro: %v\n", errors.Wrap(err, "erro ao ler entrada"))
				return 1
			}
			return 0
		}

		tokens, err := compiler.Executar("<stdin>", scanner.Text())
		if err != nil {
			if encerrar, codigo := tratarErro(err, saida, saidaErro); encerrar {
				return codigo
			}
			continue
		}

		if err := mostrar(saida, "<stdin>", tokens, op); err != nil {
			fmt.Fprintf(saida, "%v\n", err)
		}
	}
}

// tratarErro mostra erros léxicos na saída. Informa se a execução deve
// terminar e com qual código.
func tratarErro(err error, saida, saidaErro io.Writer) (bool, int) {
	if err == nil {
		return false, 0
	}

	if errors.Is(err, lexer.ErrEncerramentoSolicitado) {
		fmt.Fprintln(saidaErro, err)
		return true, 0
	}

	var erroLexico *lexer.Erro
	if errors.As(err, &erroLexico) {
		fmt.Fprintln(saida, erroLexico.ComoTexto())
		return false, 0
	}

	fmt.Fprintf(saidaErro, "Erro: %v\n", err)
	return true, 1
}

func mostrar(saida io.Writer, fn string, tokens []lexer.Token, op opcoes) error {
	if op.validar {
		if err := lexer.ValidarParenteses(tokens); err != nil {
			return err
		}
	}

	switch {
	case op.arvore:
		lexer.NovoVisualizador().ImprimirArvore(saida, fn, tokens)
	case op.tokens:
		lexer.ImprimirTokens(saida, tokens)
	default:
		fmt.Fprintln(saida, lexer.FormatarTokens(tokens))
	}
	return nil
}
