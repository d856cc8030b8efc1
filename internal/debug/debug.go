package debug

import (
	"io"

	"github.com/sirupsen/logrus"
)

var logger = novoLogger()

func novoLogger() *logrus.Logger {
	l := logrus.New()
	l.SetLevel(logrus.InfoLevel)
	return l
}

// Ativar liga ou desliga as mensagens de debug
func Ativar(ativo bool) {
	if ativo {
		logger.SetLevel(logrus.DebugLevel)
	} else {
		logger.SetLevel(logrus.InfoLevel)
	}
}

// Ativado informa se as mensagens de debug estão ligadas
func Ativado() bool {
	return logger.IsLevelEnabled(logrus.DebugLevel)
}

// DefinirSaida troca o destino das mensagens
func DefinirSaida(w io.Writer) {
	logger.SetOutput(w)
}

// Logger retorna o logger compartilhado
func Logger() logrus.FieldLogger {
	return logger
}

func Printf(format string, args ...interface{}) {
	logger.Debugf(format, args...)
}
