package logger

import (
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/agendavel/agenda-rules-api/internal/core/ports/out"
)

// ZapLogger implements the logger port on top of zap. Every line carries
// the module name and the event key, timestamps rendered in the
// configured timezone.
type ZapLogger struct {
	base          *zap.Logger
	defaultFields out.LogFields
	module        string
}

func NewZapLogger(timezone string) (*ZapLogger, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		loc = time.UTC
	}

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.EncodeTime = func(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
		enc.AppendString(t.In(loc).Format("2006-01-02 15:04:05.000"))
	}
	encoderCfg.TimeKey = "timestamp"
	encoderCfg.MessageKey = "event"

	cfg := zap.NewProductionConfig()
	cfg.EncoderConfig = encoderCfg

	base, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		return nil, err
	}

	return &ZapLogger{
		base:          base,
		defaultFields: make(out.LogFields),
	}, nil
}

func (l *ZapLogger) WithFields(fields out.LogFields) out.LoggerPort {
	newLogger := &ZapLogger{
		base:          l.base,
		defaultFields: make(out.LogFields),
		module:        l.module,
	}

	for k, v := range l.defaultFields {
		newLogger.defaultFields[k] = v
	}
	for k, v := range fields {
		newLogger.defaultFields[k] = v
	}

	return newLogger
}

func (l *ZapLogger) WithModule(module string) out.LoggerPort {
	return &ZapLogger{
		base:          l.base,
		defaultFields: l.defaultFields,
		module:        module,
	}
}

func (l *ZapLogger) Debug(event string, fields out.LogFields) {
	l.base.Debug(event, l.zapFields(fields)...)
}

func (l *ZapLogger) Info(event string, fields out.LogFields) {
	l.base.Info(event, l.zapFields(fields)...)
}

func (l *ZapLogger) Warn(event string, fields out.LogFields) {
	l.base.Warn(event, l.zapFields(fields)...)
}

func (l *ZapLogger) Error(event string, fields out.LogFields) {
	l.base.Error(event, l.zapFields(fields)...)
}

func (l *ZapLogger) zapFields(fields out.LogFields) []zap.Field {
	module := l.module
	if module == "" {
		module = "unknown"
	}

	zapFields := make([]zap.Field, 0, len(l.defaultFields)+len(fields)+1)
	zapFields = append(zapFields, zap.String("module", module))

	for k, v := range l.defaultFields {
		zapFields = append(zapFields, zap.Any(k, v))
	}
	for k, v := range fields {
		zapFields = append(zapFields, zap.Any(k, v))
	}

	return zapFields
}
