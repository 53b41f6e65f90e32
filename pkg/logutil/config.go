// Copyright 2022 Matrix Origin
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package logutil

import (
	"context"
	"os"
	"sync"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/matrixorigin/linkedmap/pkg/common/moerr"
)

const (
	defaultLogLevel   = "info"
	defaultLogFormat  = "console"
	defaultTimeLayout = "2006/01/02 15:04:05.000000 -0700"
)

// LogConfig log config
type LogConfig struct {
	Level      string `toml:"level"`
	Format     string `toml:"format"`
	Filename   string `toml:"filename"`
	MaxSize    int    `toml:"max-size"`
	MaxDays    int    `toml:"max-days"`
	MaxBackups int    `toml:"max-backups"`
	// StacktraceLevel is the lowest level that records a stack trace, fatal by default.
	StacktraceLevel string `toml:"stacktrace-level"`
}

// ZapSink pairs an encoder with the syncer it writes to.
type ZapSink struct {
	enc zapcore.Encoder
	out zapcore.WriteSyncer
}

// Adjust fills the empty fields with defaults.
func (cfg *LogConfig) Adjust() {
	if cfg.Level == "" {
		cfg.Level = defaultLogLevel
	}
	if cfg.Format == "" {
		cfg.Format = defaultLogFormat
	}
}

func (cfg *LogConfig) getLevel() zap.AtomicLevel {
	level := zap.NewAtomicLevel()
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level.SetLevel(zapcore.InfoLevel)
	}
	return level
}

func (cfg *LogConfig) getStacktraceLevel() zapcore.Level {
	level := zapcore.FatalLevel
	if cfg.StacktraceLevel == "" {
		return level
	}
	if err := level.UnmarshalText([]byte(cfg.StacktraceLevel)); err != nil {
		return zapcore.FatalLevel
	}
	return level
}

func (cfg *LogConfig) getOptions() []zap.Option {
	return []zap.Option{zap.AddStacktrace(cfg.getStacktraceLevel()), zap.AddCaller()}
}

func (cfg *LogConfig) getSyncer() zapcore.WriteSyncer {
	if cfg.Filename == "" {
		return getConsoleSyncer()
	}
	if stat, err := os.Stat(cfg.Filename); err == nil && stat.IsDir() {
		panic("log file can't be a directory")
	}
	return zapcore.AddSync(&lumberjack.Logger{
		Filename:   cfg.Filename,
		MaxSize:    cfg.MaxSize,
		MaxAge:     cfg.MaxDays,
		MaxBackups: cfg.MaxBackups,
		LocalTime:  true,
		Compress:   false,
	})
}

func (cfg *LogConfig) getEncoder() zapcore.Encoder {
	return getLoggerEncoder(cfg.Format)
}

func (cfg *LogConfig) getSinks() []ZapSink {
	return []ZapSink{{cfg.getEncoder(), cfg.getSyncer()}}
}

var (
	consoleSyncerOnce sync.Once
	consoleSyncer     zapcore.WriteSyncer
)

func getConsoleSyncer() zapcore.WriteSyncer {
	consoleSyncerOnce.Do(func() {
		consoleSyncer = zapcore.Lock(os.Stdout)
	})
	return consoleSyncer
}

func getLoggerEncoder(format string) zapcore.Encoder {
	encoderConfig := zapcore.EncoderConfig{
		MessageKey:     "msg",
		LevelKey:       "level",
		TimeKey:        "time",
		NameKey:        "name",
		CallerKey:      "caller",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.CapitalLevelEncoder,
		EncodeTime:     formatTime,
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
		EncodeName:     zapcore.FullNameEncoder,
	}

	switch format {
	case "json":
		return zapcore.NewJSONEncoder(encoderConfig)
	case "console":
		return zapcore.NewConsoleEncoder(encoderConfig)
	default:
		panic(moerr.NewInternalError(context.Background(), "unsupported log format: %s", format))
	}
}

func formatTime(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString(t.Format(defaultTimeLayout))
}
