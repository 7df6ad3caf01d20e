// Package log builds the zap logger shared by the CLI and the HTTP server.
package log

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Conf holds logging options.
type Conf struct {
	Output     string // "stderr", "stdout" or "file"
	Path       string
	Filename   string
	Level      string
	RotateSize int // MB per file
	RotateNum  int // rotated files kept
	KeepDays   int
}

// SetDefaults returns the default configuration.
func SetDefaults() *Conf {
	return &Conf{
		Output:     "stderr",
		Path:       "./logs",
		Filename:   "wordbrain.log",
		Level:      "INFO",
		RotateSize: 100,
		RotateNum:  10,
		KeepDays:   7,
	}
}

// Validate checks c and fills in rotation defaults for file output.
func (c *Conf) Validate() error {
	switch c.Output {
	case "", "stderr", "stdout":
	case "file":
		if c.Path == "" {
			return errors.New("log path is required when output is 'file'")
		}
		if c.Filename == "" {
			c.Filename = "wordbrain.log"
		}
		if c.RotateSize <= 0 {
			c.RotateSize = 100
		}
		if c.RotateNum <= 0 {
			c.RotateNum = 10
		}
		if c.KeepDays <= 0 {
			c.KeepDays = 7
		}
	default:
		return errors.Errorf("unknown log output %q", c.Output)
	}
	return nil
}

// New builds a sugared logger from conf.
func New(conf *Conf) (*zap.SugaredLogger, error) {
	if err := conf.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid log config")
	}

	var ws zapcore.WriteSyncer
	switch conf.Output {
	case "file":
		ws = fileWriter(conf)
	case "stdout":
		ws = zapcore.Lock(os.Stdout)
	default:
		// stdout is left to command output
		ws = zapcore.Lock(os.Stderr)
	}

	core := zapcore.NewCore(encoder(), ws, ParseLevel(conf.Level))
	logger := zap.New(core, zap.AddCaller())

	logger.Sugar().Debugw("log initialized",
		"output", conf.Output,
		"level", conf.Level,
	)
	return logger.Sugar(), nil
}

// Nop returns a logger that discards everything.
func Nop() *zap.SugaredLogger {
	return zap.NewNop().Sugar()
}

func fileWriter(conf *Conf) zapcore.WriteSyncer {
	return zapcore.AddSync(&lumberjack.Logger{
		Filename:   filepath.Join(conf.Path, conf.Filename),
		MaxSize:    conf.RotateSize,
		MaxBackups: conf.RotateNum,
		MaxAge:     conf.KeepDays,
		Compress:   true,
	})
}

func encoder() zapcore.Encoder {
	cfg := zap.NewDevelopmentEncoderConfig()
	cfg.TimeKey = "time"
	cfg.LevelKey = "level"
	cfg.CallerKey = "caller"
	cfg.MessageKey = "msg"
	cfg.EncodeLevel = zapcore.CapitalLevelEncoder
	cfg.EncodeTime = timeEncoder
	cfg.EncodeDuration = zapcore.StringDurationEncoder
	cfg.EncodeCaller = zapcore.ShortCallerEncoder
	return zapcore.NewConsoleEncoder(cfg)
}

func timeEncoder(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString(t.Format("2006-01-02 15:04:05"))
}

// ParseLevel maps a case-insensitive level name to a zap level, defaulting to INFO.
func ParseLevel(level string) zapcore.Level {
	switch strings.ToUpper(strings.TrimSpace(level)) {
	case "DEBUG":
		return zapcore.DebugLevel
	case "INFO":
		return zapcore.InfoLevel
	case "WARN", "WARNING":
		return zapcore.WarnLevel
	case "ERROR":
		return zapcore.ErrorLevel
	case "FATAL":
		return zapcore.FatalLevel
	default:
		return zapcore.InfoLevel
	}
}
