package logs

import (
	"io"

	"github.com/labstack/gommon/log"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func NewZap(level string) (*Zap, error) {
	var logger *zap.Logger
	lvl := zap.NewAtomicLevel()
	err := lvl.UnmarshalText([]byte(level))
	if err != nil {
		return nil, err
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = lvl
	logger, err = cfg.Build()
	if err != nil {
		return nil, err
	}
	return &Zap{
		SugaredLogger: logger.Sugar(),
		level:         &lvl,
	}, err
}

type Zap struct {
	*zap.SugaredLogger
	level  *zap.AtomicLevel
	prefix string
	writer io.Writer
}

func (z *Zap) extractTags(args ...interface{}) (fields []interface{}, arguments []interface{}) {
	//check to see which ones are zap fields
	for _, arg := range args {
		switch arg.(type) {
		case zapcore.Field:
			fields = append(fields, arg)
		default:
			arguments = append(arguments, arg)
		}
	}
	return fields, arguments
}

func (z *Zap) Printf(format string, args ...interface{}) {
	fields, arguments := z.extractTags(args...)
	logger := z.SugaredLogger
	if len(fields) > 0 {
		logger = logger.With(fields...)
	}
	logger.Infof(format, arguments...)
}

func (z *Zap) Print(args ...interface{}) {
	fields, _ := z.extractTags(args...)
	z.Info(fields...)
}

func (z *Zap) Errorf(format string, args ...interface{}) {
	fields, arguments := z.extractTags(args...)
	logger := z.SugaredLogger
	if len(fields) > 0 {
		logger = logger.With(fields...)
	}
	logger.Errorf(format, arguments...)
}

func (z *Zap) Error(args ...interface{}) {
	fields, _ := z.extractTags(args...)
	z.SugaredLogger.Error(fields...)
}

func (z *Zap) Warnf(format string, args ...interface{}) {
	fields, arguments := z.extractTags(args...)
	logger := z.SugaredLogger
	if len(fields) > 0 {
		logger = logger.With(fields...)
	}
	logger.Warnf(format, arguments...)
}

func (z *Zap) Warn(args ...interface{}) {
	fields, _ := z.extractTags(args...)
	z.SugaredLogger.Warn(fields...)
}

func (z *Zap) Debugf(format string, args ...interface{}) {
	fields, arguments := z.extractTags(args...)
	logger := z.SugaredLogger
	if len(fields) > 0 {
		logger = logger.With(fields...)
	}
	logger.Debugf(format, arguments...)
}

func (z *Zap) Debug(args ...interface{}) {
	fields, _ := z.extractTags(args...)
	z.SugaredLogger.Debug(fields...)
}

func (z *Zap) Output() io.Writer {
	return z.writer
}

func (z *Zap) SetOutput(w io.Writer) {
	z.writer = w
}

func (z *Zap) Prefix() string {
	return z.prefix
}

func (z *Zap) SetPrefix(p string) {
	z.prefix = p
	z.SugaredLogger = z.Named(p)
}

func (z *Zap) Level() log.Lvl {
	switch z.level.Level() {
	case zapcore.DebugLevel:
		return log.DEBUG
	case zapcore.InfoLevel:
		return log.INFO
	case zapcore.WarnLevel:
		return log.WARN
	case zapcore.ErrorLevel, zapcore.FatalLevel, zapcore.PanicLevel:
		return log.ERROR
	}
	return log.OFF
}

func (z *Zap) SetLevel(v log.Lvl) {
	switch v {
	case log.DEBUG:
		z.level.SetLevel(zapcore.DebugLevel)
	case log.INFO:
		z.level.SetLevel(zapcore.InfoLevel)
	case log.WARN:
		z.level.SetLevel(zapcore.WarnLevel)
	case log.ERROR:
		z.level.SetLevel(zapcore.ErrorLevel)
	}
}
