package logs

import (
	"io"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/natefinch/lumberjack"
	"github.com/reusedev/observer-hub/config"
	"github.com/rs/zerolog"
)

var (
	Logger zerolog.Logger
)

func InitLogger() {
	Logger = New(os.Stdout, config.GConfig)
}

// New builds a logger that writes to out in the configured format and, when a
// log file is configured, also writes JSON lines to a rotated file.
func New(out io.Writer, cfg *config.Config) zerolog.Logger {
	writers := []io.Writer{out}
	if cfg.LogFormat == config.FormatConsole {
		writers[0] = zerolog.ConsoleWriter{Out: out}
	}
	if cfg.LogFile != "" {
		writers = append(writers, &lumberjack.Logger{
			Filename:   cfg.LogFile,
			MaxSize:    cfg.LogMaxSize,
			MaxBackups: cfg.LogMaxBackups,
			MaxAge:     cfg.LogMaxAge,
			Compress:   true,
		})
	}

	return zerolog.New(io.MultiWriter(writers...)).
		Level(parseLogLevel(cfg.LogLevel)).
		With().
		Timestamp().
		Str("run_id", uuid.NewString()).
		Logger()
}

func parseLogLevel(levelStr string) zerolog.Level {
	switch strings.ToLower(levelStr) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "fatal":
		return zerolog.FatalLevel
	case "panic":
		return zerolog.PanicLevel
	default:
		return zerolog.InfoLevel
	}
}
