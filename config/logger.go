package config

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// LogConfig ...
type LogConfig struct {
	Level string `mapstructure:"level"`

	// Output is stdout or file
	Output string `mapstructure:"output"`
	File   string `mapstructure:"file"`

	MaxSize    int  `mapstructure:"max_size"`
	MaxBackups int  `mapstructure:"max_backups"`
	MaxAge     int  `mapstructure:"max_age"`
	Compress   bool `mapstructure:"compress"`
}

// NewLogger creates a zap logger, log rotation when output is file
func NewLogger(conf LogConfig) *zap.Logger {
	level := zap.NewAtomicLevel()
	err := level.UnmarshalText([]byte(conf.Level))
	if err != nil {
		panic(err)
	}

	if conf.Output != "file" {
		zapConf := zap.NewProductionConfig()
		if level.Level() == zapcore.DebugLevel {
			zapConf = zap.NewDevelopmentConfig()
		}
		zapConf.Level = level

		logger, err := zapConf.Build()
		if err != nil {
			panic(err)
		}
		return logger
	}

	writer := &lumberjack.Logger{
		Filename:   conf.File,
		MaxSize:    conf.MaxSize,
		MaxBackups: conf.MaxBackups,
		MaxAge:     conf.MaxAge,
		Compress:   conf.Compress,
	}

	encoderConf := zap.NewProductionEncoderConfig()
	encoderConf.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(zapcore.NewJSONEncoder(encoderConf), zapcore.AddSync(writer), level)
	return zap.New(core, zap.AddCaller())
}
