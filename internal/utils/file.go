package utils

import (
	"os"

	"github.com/pkg/errors"
)

// LerArquivo lê um arquivo e retorna seu conteúdo
func LerArquivo(nomeArquivo string) (string, error) {
	bytesConteudo, err := os.ReadFile(nomeArquivo)
	if err != nil {
		return "", errors.Wrapf(err, "erro ao ler arquivo %s", nomeArquivo)
	}
	return string(bytesConteudo), nil
}
