package compiler

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khevencolino/Basic/internal/lexer"
)

func TestExecutar(t *testing.T) {
	tokens, err := Executar("<stdin>", "12 - 0.5")
	require.NoError(t, err)
	assert.Equal(t, "[TK_INT:12, MINUS, TK_FLOAT:0.5]", lexer.FormatarTokens(tokens))

	tokens, err = Executar("<stdin>", "5 + @")
	assert.Empty(t, tokens)
	var erro *lexer.Erro
	require.ErrorAs(t, err, &erro)
	assert.Equal(t, "Illegal Character: '@' \nFile <stdin>, line 1", erro.ComoTexto())

	_, err = Executar("<stdin>", "Q")
	assert.ErrorIs(t, err, lexer.ErrEncerramentoSolicitado)
}

func TestExecutarArquivo(t *testing.T) {
	dir := t.TempDir()
	caminho := filepath.Join(dir, "prog.bas")
	require.NoError(t, os.WriteFile(caminho, []byte("(1 + 2) * 3"), 0644))

	tokens, err := ExecutarArquivo(caminho)
	require.NoError(t, err)
	assert.Len(t, tokens, 7)

	require.NoError(t, os.WriteFile(caminho, []byte("1 + x"), 0644))
	_, err = ExecutarArquivo(caminho)
	var erro *lexer.Erro
	require.ErrorAs(t, err, &erro)
	assert.Equal(t, caminho, erro.PosInicio.Fn)

	_, err = ExecutarArquivo(filepath.Join(dir, "nao-existe.bas"))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "erro ao ler arquivo")
}
