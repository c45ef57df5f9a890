// Package logging provides config-driven categorized logging for stepboard.
// Each category gets a named zap logger writing JSON lines to a rotated file,
// since the terminal UI owns stdout. Logging is controlled by debug_mode in
// .stepboard/config.yaml (or --verbose); when disabled every logger is a no-op.
package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"stepboard/internal/config"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Category represents a log category/system
type Category string

const (
	CategoryBoot        Category = "boot"        // Startup, config resolution
	CategoryDirectory   Category = "directory"   // Remote user directory fetches
	CategoryLeaderboard Category = "leaderboard" // Normalize, rank, sort, filter
	CategorySession     Category = "session"     // Login flag and navigation gate
	CategoryUI          Category = "ui"          // Screen transitions and key handling
	CategoryCLI         Category = "cli"         // Non-interactive subcommands
)

var (
	mu      sync.RWMutex
	root    = zap.NewNop()
	loggers = make(map[Category]*zap.Logger)
	cfg     config.LoggingConfig
	sink    *lumberjack.Logger
)

// Initialize builds the root logger from cfg. verbose forces debug mode at
// debug level regardless of the file setting. Calling Initialize again
// replaces the previous logger.
func Initialize(c config.LoggingConfig, verbose bool) error {
	if verbose {
		c.DebugMode = true
		c.Level = "debug"
	}

	if !c.DebugMode {
		reset(c, zap.NewNop(), nil)
		return nil
	}

	if c.File == "" {
		return fmt.Errorf("logging enabled but no log file configured")
	}
	if err := os.MkdirAll(filepath.Dir(c.File), 0755); err != nil {
		return fmt.Errorf("failed to create logs directory: %w", err)
	}

	lj := &lumberjack.Logger{
		Filename:   c.File,
		MaxSize:    c.MaxSizeMB,
		MaxBackups: c.MaxBackups,
		MaxAge:     c.MaxAgeDays,
	}

	reset(c, New(zapcore.AddSync(lj), c.Level), lj)

	boot := Get(CategoryBoot)
	boot.Info("logging initialized",
		zap.String("file", c.File),
		zap.String("level", c.Level),
		zap.Int("categories", len(c.Categories)))
	return nil
}

// New builds a JSON zap logger writing to w at the named level.
func New(w zapcore.WriteSyncer, level string) *zap.Logger {
	lvl := zapcore.InfoLevel
	if err := lvl.Set(strings.ToLower(level)); err != nil {
		lvl = zapcore.InfoLevel
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.TimeKey = "ts"
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(zapcore.NewJSONEncoder(encCfg), w, zap.NewAtomicLevelAt(lvl))
	return zap.New(core, zap.AddCaller())
}

// Use installs an already-built logger. Tests use it with zaptest/observer.
func Use(l *zap.Logger, c config.LoggingConfig) {
	reset(c, l, nil)
}

func reset(c config.LoggingConfig, l *zap.Logger, lj *lumberjack.Logger) {
	mu.Lock()
	defer mu.Unlock()

	if sink != nil {
		_ = root.Sync()
		_ = sink.Close()
	}
	cfg = c
	root = l
	sink = lj
	loggers = make(map[Category]*zap.Logger)
}

// IsCategoryEnabled returns whether a specific category is enabled
func IsCategoryEnabled(category Category) bool {
	mu.RLock()
	defer mu.RUnlock()
	return cfg.IsCategoryEnabled(string(category))
}

// Get returns (or creates) a logger for the given category.
// Returns a no-op logger if debug mode is disabled or category is disabled.
func Get(category Category) *zap.Logger {
	if !IsCategoryEnabled(category) {
		return zap.NewNop()
	}

	mu.RLock()
	if l, ok := loggers[category]; ok {
		mu.RUnlock()
		return l
	}
	mu.RUnlock()

	mu.Lock()
	defer mu.Unlock()

	if l, ok := loggers[category]; ok {
		return l
	}
	l := root.Named(string(category))
	loggers[category] = l
	return l
}

// Close flushes and closes the log file, leaving no-op loggers behind.
func Close() error {
	mu.Lock()
	defer mu.Unlock()

	var err error
	if sink != nil {
		_ = root.Sync()
		err = sink.Close()
	}
	root = zap.NewNop()
	sink = nil
	cfg = config.LoggingConfig{}
	loggers = make(map[Category]*zap.Logger)
	return err
}
