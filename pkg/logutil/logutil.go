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
	"sync/atomic"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var _globalLogger atomic.Value

func init() {
	SetupMOLogger(&LogConfig{
		Level:  defaultLogLevel,
		Format: defaultLogFormat,
	})
}

// SetupMOLogger sets up the global logger from conf. It panics on an
// unsupported format or a log file path that is a directory.
func SetupMOLogger(conf *LogConfig) {
	logger := initMOLogger(conf)
	replaceGlobalLogger(logger)
}

func initMOLogger(cfg *LogConfig) *zap.Logger {
	sinks := cfg.getSinks()
	level := cfg.getLevel()
	cores := make([]zapcore.Core, 0, len(sinks))
	for _, sink := range sinks {
		cores = append(cores, zapcore.NewCore(sink.enc, sink.out, level))
	}
	return zap.New(zapcore.NewTee(cores...), cfg.getOptions()...)
}

// GetGlobalLogger returns the current global zap logger.
func GetGlobalLogger() *zap.Logger {
	return _globalLogger.Load().(*zap.Logger)
}

// ReplaceGlobalLogger replaces the global logger, e.g. with zap.NewNop() in tests.
// It returns a function that restores the previous logger.
func ReplaceGlobalLogger(logger *zap.Logger) func() {
	prev := GetGlobalLogger()
	replaceGlobalLogger(logger)
	return func() { replaceGlobalLogger(prev) }
}

func replaceGlobalLogger(logger *zap.Logger) {
	_globalLogger.Store(logger)
}
