// Package logger arma el logger estructurado del backoffice sobre zerolog:
// consola legible en desarrollo, JSON una línea por evento en el resto.
package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Config opciones del logger.
type Config struct {
	Env   string // "development" activa la salida de consola
	Level string // trace..error; cualquier otro valor cae a info
}

// Logger envoltorio inyectable; los métodos exponen los eventos de zerolog
// tal cual para no perder el encadenado de campos.
type Logger struct {
	zl zerolog.Logger
}

// New construye el logger según la configuración y lo instala también como
// logger global de zerolog (hay paquetes de infraestructura que loguean
// directo por el global).
func New(cfg Config) *Logger {
	var out io.Writer = os.Stdout
	if strings.EqualFold(cfg.Env, "development") {
		out = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.Kitchen}
	}

	level, err := zerolog.ParseLevel(strings.ToLower(cfg.Level))
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	zl := zerolog.New(out).Level(level).With().Timestamp().Logger()
	log.Logger = zl

	return &Logger{zl: zl}
}

func (l *Logger) Trace() *zerolog.Event { return l.zl.Trace() }
func (l *Logger) Debug() *zerolog.Event { return l.zl.Debug() }
func (l *Logger) Info() *zerolog.Event  { return l.zl.Info() }
func (l *Logger) Warn() *zerolog.Event  { return l.zl.Warn() }
func (l *Logger) Error() *zerolog.Event { return l.zl.Error() }
func (l *Logger) Fatal() *zerolog.Event { return l.zl.Fatal() }

// With abre un contexto para un sublogger con campos fijos.
func (l *Logger) With() zerolog.Context { return l.zl.With() }

// Zerolog expone el logger interno para quien necesite la API completa.
func (l *Logger) Zerolog() zerolog.Logger { return l.zl }
