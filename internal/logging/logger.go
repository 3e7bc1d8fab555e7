package logging

// Leveled logging for cbusdefs, backed by zap.

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LogLevel represents the logging level
type LogLevel int

const (
	LogLevelSilent LogLevel = iota
	LogLevelError
	LogLevelInfo
	LogLevelVerbose
	LogLevelDebug
)

var levelNames = map[LogLevel]string{
	LogLevelSilent:  "silent",
	LogLevelError:   "error",
	LogLevelInfo:    "info",
	LogLevelVerbose: "verbose",
	LogLevelDebug:   "debug",
}

func (l LogLevel) String() string {
	if name, ok := levelNames[l]; ok {
		return name
	}
	return fmt.Sprintf("LogLevel(%d)", int(l))
}

// ParseLevel accepts the level names used by --log-level and the config file.
func ParseLevel(raw string) (LogLevel, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "silent", "quiet", "off":
		return LogLevelSilent, nil
	case "error":
		return LogLevelError, nil
	case "", "info":
		return LogLevelInfo, nil
	case "verbose":
		return LogLevelVerbose, nil
	case "debug", "trace":
		return LogLevelDebug, nil
	default:
		return LogLevelInfo, fmt.Errorf("unknown log level %q", raw)
	}
}

// zapLevel is the most verbose zap level a LogLevel lets through.
func (l LogLevel) zapLevel() zapcore.Level {
	switch {
	case l <= LogLevelSilent:
		return zapcore.FatalLevel + 1
	case l == LogLevelError:
		return zapcore.ErrorLevel
	case l >= LogLevelDebug:
		return zapcore.DebugLevel
	default:
		return zapcore.InfoLevel
	}
}

// Logger provides leveled logging. Errors always reach stderr; other
// messages reach stdout only at verbose and debug. The log file, if any,
// receives everything the level allows.
type Logger struct {
	mu    sync.Mutex
	level LogLevel
	atom  zap.AtomicLevel
	file  *os.File
	zl    *zap.Logger
	sugar *zap.SugaredLogger
}

func consoleEncoder(withTime bool) zapcore.Encoder {
	cfg := zapcore.EncoderConfig{
		MessageKey:       "msg",
		LevelKey:         "level",
		EncodeLevel:      zapcore.CapitalLevelEncoder,
		ConsoleSeparator: ": ",
	}
	if withTime {
		cfg.TimeKey = "ts"
		cfg.EncodeTime = zapcore.ISO8601TimeEncoder
		cfg.ConsoleSeparator = " "
	}
	return zapcore.NewConsoleEncoder(cfg)
}

// NewLogger creates a new logger
func NewLogger(level LogLevel, logFile string) (*Logger, error) {
	l := &Logger{level: level, atom: zap.NewAtomicLevelAt(level.zapLevel())}

	isError := func(lvl zapcore.Level) bool {
		return l.atom.Enabled(lvl) && lvl >= zapcore.ErrorLevel
	}
	isChatter := func(lvl zapcore.Level) bool {
		return l.atom.Enabled(lvl) && lvl < zapcore.ErrorLevel && l.GetLevel() >= LogLevelVerbose
	}
	cores := []zapcore.Core{
		zapcore.NewCore(consoleEncoder(false), zapcore.Lock(os.Stderr), zap.LevelEnablerFunc(isError)),
		zapcore.NewCore(consoleEncoder(false), zapcore.Lock(os.Stdout), zap.LevelEnablerFunc(isChatter)),
	}

	if logFile != "" {
		file, err := os.Create(logFile)
		if err != nil {
			return nil, fmt.Errorf("create log file: %w", err)
		}
		l.file = file
		cores = append(cores, zapcore.NewCore(consoleEncoder(true), zapcore.AddSync(file), l.atom))
	}

	l.zl = zap.New(zapcore.NewTee(cores...))
	l.sugar = l.zl.Sugar()
	return l, nil
}

// Nop returns a logger that discards everything.
func Nop() *Logger {
	zl := zap.NewNop()
	return &Logger{level: LogLevelSilent, atom: zap.NewAtomicLevelAt(LogLevelSilent.zapLevel()), zl: zl, sugar: zl.Sugar()}
}

// Zap exposes the underlying logger for packages that take a *zap.Logger.
func (l *Logger) Zap() *zap.Logger {
	return l.zl
}

// Close flushes buffered entries and closes the log file.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	_ = l.zl.Sync()
	if l.file != nil {
		err := l.file.Close()
		l.file = nil
		return err
	}
	return nil
}

func (l *Logger) enabled(level LogLevel) bool {
	return l.GetLevel() >= level
}

// Error logs an error message
func (l *Logger) Error(format string, v ...interface{}) {
	if l.enabled(LogLevelError) {
		l.sugar.Errorf(format, v...)
	}
}

// Info logs an info message
func (l *Logger) Info(format string, v ...interface{}) {
	if l.enabled(LogLevelInfo) {
		l.sugar.Infof(format, v...)
	}
}

// Verbose logs a verbose message
func (l *Logger) Verbose(format string, v ...interface{}) {
	if l.enabled(LogLevelVerbose) {
		l.sugar.Infof(format, v...)
	}
}

// Debug logs a debug message
func (l *Logger) Debug(format string, v ...interface{}) {
	if l.enabled(LogLevelDebug) {
		l.sugar.Debugf(format, v...)
	}
}

// SetLevel sets the logging level
func (l *Logger) SetLevel(level LogLevel) {
	l.mu.Lock()
	l.level = level
	l.mu.Unlock()
	l.atom.SetLevel(level.zapLevel())
}

// GetLevel returns the current logging level
func (l *Logger) GetLevel() LogLevel {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.level
}

// LogStartup records the command being run and where its settings came from.
func (l *Logger) LogStartup(command, configPath string) {
	l.Info("cbusdefs %s", command)
	if configPath != "" {
		l.Verbose("  Config: %s", configPath)
	}
	l.Verbose("  Log level: %s", l.GetLevel())
}

// LogHex logs hex data (for debug level)
func (l *Logger) LogHex(label string, data []byte) {
	if l.enabled(LogLevelDebug) {
		l.Debug("%s: % x", label, data)
	}
}
