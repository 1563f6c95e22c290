package logger

import (
	"os"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

var Log *zap.Logger

type Config struct {
	Level      string
	Filename   string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
}

// InitLogger builds the global logger: JSON entries to stdout and to a
// size-rotated file. The file side is buffered; Sync flushes it.
func InitLogger(cfg *Config) error {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		return err
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	encoder := zapcore.NewJSONEncoder(encoderConfig)

	fileSyncer := &zapcore.BufferedWriteSyncer{
		WS: zapcore.AddSync(&lumberjack.Logger{
			Filename:   cfg.Filename,
			MaxSize:    cfg.MaxSizeMB,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAgeDays,
			Compress:   cfg.Compress,
		}),
		Size:          256 * 1024,
		FlushInterval: 5 * time.Second,
	}
	syncer := zapcore.NewMultiWriteSyncer(zapcore.AddSync(os.Stdout), fileSyncer)

	Log = zap.New(zapcore.NewCore(encoder, syncer, level), zap.AddCaller())
	zap.ReplaceGlobals(Log)
	return nil
}

// Sync flushes buffered entries; call it on shutdown.
func Sync() {
	if Log != nil {
		Log.Sync()
	}
}
