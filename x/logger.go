/*
 * SPDX-FileCopyrightText: © Hypermode Inc. <hello@hypermode.com>
 * SPDX-License-Identifier: Apache-2.0
 */

package x

import (
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// LoggerConf describes where a structured logger writes and how its files are
// rotated.
type LoggerConf struct {
	// Output is either "stdout" or a directory the log file is created in.
	Output string
	// Compress gzips rotated files.
	Compress bool
	// Days is the number of days rotated files are kept.
	Days int64
	// Size is the size in MB after which the file is rotated.
	Size int64
	// MessageKey is the JSON key the log message is stored under.
	MessageKey string
}

// Logger writes JSON lines through zap. A nil *Logger discards everything so
// callers do not have to check whether logging is enabled.
type Logger struct {
	logger *zap.Logger
	// closer is the rotating file, nil when writing to stdout.
	closer io.Closer
}

// InitLogger builds a Logger writing to conf.Output. filename is used when the
// output is a directory.
func InitLogger(conf *LoggerConf, filename string) (*Logger, error) {
	if conf == nil {
		return nil, nil
	}
	var w zapcore.WriteSyncer
	var closer io.Closer
	if conf.Output == "stdout" {
		w = zapcore.Lock(os.Stdout)
	} else {
		if err := os.MkdirAll(conf.Output, 0700); err != nil {
			return nil, errors.Wrapf(err, "while creating log directory %s", conf.Output)
		}
		lj := &lumberjack.Logger{
			Filename: filepath.Join(conf.Output, filename),
			MaxSize:  int(conf.Size),
			MaxAge:   int(conf.Days),
			Compress: conf.Compress,
		}
		w, closer = zapcore.AddSync(lj), lj
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	if conf.MessageKey != "" {
		encCfg.MessageKey = conf.MessageKey
	}
	core := zapcore.NewCore(zapcore.NewJSONEncoder(encCfg), w, zap.DebugLevel)
	return &Logger{logger: zap.New(core), closer: closer}, nil
}

// AuditI logs msg at info level. args are alternating keys and values.
func (l *Logger) AuditI(msg string, args ...interface{}) {
	if l == nil {
		return
	}
	l.logger.Info(msg, fields(args)...)
}

// AuditE logs msg at error level. args are alternating keys and values.
func (l *Logger) AuditE(msg string, args ...interface{}) {
	if l == nil {
		return
	}
	l.logger.Error(msg, fields(args)...)
}

func fields(args []interface{}) []zap.Field {
	flds := make([]zap.Field, 0, len(args)/2)
	for i := 0; i+1 < len(args); i += 2 {
		key, ok := args[i].(string)
		if !ok {
			continue
		}
		flds = append(flds, zap.Any(key, args[i+1]))
	}
	return flds
}

// Close flushes buffered entries and closes the log file.
func (l *Logger) Close() error {
	if l == nil {
		return nil
	}
	_ = l.logger.Sync()
	if l.closer == nil {
		return nil
	}
	return errors.Wrap(l.closer.Close(), "while closing log file")
}
