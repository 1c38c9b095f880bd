package logger

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// GormLogger routes GORM's SQL tracing into the application logger.
type GormLogger struct {
	target        *Logger
	level         gormlogger.LogLevel
	slowThreshold time.Duration
}

// NewGormLogger bridges GORM to target. Queries slower than slowThreshold are logged at WARN.
func NewGormLogger(target *Logger, slowThreshold time.Duration) *GormLogger {
	level := gormlogger.Warn
	if target != nil && target.GetLevel() == DEBUG {
		level = gormlogger.Info
	}
	return &GormLogger{target: target, level: level, slowThreshold: slowThreshold}
}

// LogMode implements gormlogger.Interface.
func (g *GormLogger) LogMode(level gormlogger.LogLevel) gormlogger.Interface {
	clone := *g
	clone.level = level
	return &clone
}

// Info implements gormlogger.Interface.
func (g *GormLogger) Info(_ context.Context, msg string, args ...interface{}) {
	if g.target != nil && g.level >= gormlogger.Info {
		g.target.logf(2, INFO, "gorm: "+msg, args...)
	}
}

// Warn implements gormlogger.Interface.
func (g *GormLogger) Warn(_ context.Context, msg string, args ...interface{}) {
	if g.target != nil && g.level >= gormlogger.Warn {
		g.target.logf(2, WARN, "gorm: "+msg, args...)
	}
}

// Error implements gormlogger.Interface.
func (g *GormLogger) Error(_ context.Context, msg string, args ...interface{}) {
	if g.target != nil && g.level >= gormlogger.Error {
		g.target.logf(2, ERROR, "gorm: "+msg, args...)
	}
}

// Trace implements gormlogger.Interface.
func (g *GormLogger) Trace(_ context.Context, begin time.Time, fc func() (string, int64), err error) {
	if g.target == nil || g.level <= gormlogger.Silent {
		return
	}
	elapsed := time.Since(begin)
	switch {
	case err != nil && !errors.Is(err, gorm.ErrRecordNotFound) && g.level >= gormlogger.Error:
		sql, rows := fc()
		g.target.logf(2, ERROR, "gorm: %v [%v] rows=%d %s", err, elapsed, rows, sql)
	case g.slowThreshold > 0 && elapsed > g.slowThreshold && g.level >= gormlogger.Warn:
		sql, rows := fc()
		g.target.logf(2, WARN, "gorm: slow query [%v > %v] rows=%d %s", elapsed, g.slowThreshold, rows, sql)
	case g.level >= gormlogger.Info:
		sql, rows := fc()
		g.target.logf(2, DEBUG, "gorm: [%v] rows=%d %s", elapsed, rows, sql)
	}
}
