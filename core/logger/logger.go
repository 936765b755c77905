package logger

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

const (
	ColorReset  = "\033[0m"
	ColorRed    = "\033[31m"
	ColorGreen  = "\033[32m"
	ColorYellow = "\033[33m"
	ColorBlue   = "\033[34m"
	ColorPurple = "\033[35m"
	ColorCyan   = "\033[36m"
	ColorWhite  = "\033[37m"
	ColorGray   = "\033[90m"
)

type LogLevel int

const (
	DEBUG LogLevel = iota
	INFO
	SUCCESS
	WARN
	ERROR
)

func (l LogLevel) String() string {
	switch l {
	case DEBUG:
		return "DEBUG"
	case INFO:
		return "INFO"
	case SUCCESS:
		return "OK"
	case WARN:
		return "WARN"
	case ERROR:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

func (l LogLevel) color() string {
	switch l {
	case DEBUG:
		return ColorGray
	case INFO:
		return ColorBlue
	case SUCCESS:
		return ColorGreen
	case WARN:
		return ColorYellow
	case ERROR:
		return ColorRed
	default:
		return ColorWhite
	}
}

// sink is one destination. WARN and ERROR go to errOut when it is set.
type sink struct {
	out    io.Writer
	errOut io.Writer
	color  bool
}

type ColoredLogger struct {
	verbose    bool
	timestamps bool
	mu         sync.RWMutex
	sinks      []*sink
}

var globalLogger *ColoredLogger

func init() {
	globalLogger = &ColoredLogger{
		sinks: []*sink{{out: os.Stdout, errOut: os.Stderr, color: true}},
	}
}

func SetVerbose(verbose bool) {
	globalLogger.mu.Lock()
	defer globalLogger.mu.Unlock()
	globalLogger.verbose = verbose
}

func IsVerbose() bool {
	globalLogger.mu.RLock()
	defer globalLogger.mu.RUnlock()
	return globalLogger.verbose
}

func SetTimestamps(enabled bool) {
	globalLogger.mu.Lock()
	defer globalLogger.mu.Unlock()
	globalLogger.timestamps = enabled
}

// SetColor toggles ANSI colors on the console sink.
func SetColor(enabled bool) {
	globalLogger.mu.Lock()
	defer globalLogger.mu.Unlock()
	globalLogger.sinks[0].color = enabled
}

// SetOutput replaces the console sink. A nil errOut sends everything to out.
func SetOutput(out, errOut io.Writer) {
	globalLogger.mu.Lock()
	defer globalLogger.mu.Unlock()
	globalLogger.sinks[0].out = out
	globalLogger.sinks[0].errOut = errOut
}

// AddWriter mirrors every message to w, e.g. a log file.
func AddWriter(w io.Writer, color bool) {
	globalLogger.mu.Lock()
	defer globalLogger.mu.Unlock()
	globalLogger.sinks = append(globalLogger.sinks, &sink{out: w, color: color})
}

// Reset drops extra writers and restores the console defaults.
func Reset() {
	globalLogger.mu.Lock()
	defer globalLogger.mu.Unlock()
	globalLogger.verbose = false
	globalLogger.timestamps = false
	globalLogger.sinks = []*sink{{out: os.Stdout, errOut: os.Stderr, color: true}}
}

func (cl *ColoredLogger) formatMessage(level LogLevel, message string, color bool) string {
	var ts string
	if cl.timestamps {
		ts = time.Now().Format("06-01-02 15:04:05") + " "
	}

	if !color {
		return fmt.Sprintf("%s%-5s %s\n", ts, level.String(), message)
	}

	if ts != "" {
		ts = ColorGray + ts + ColorReset
	}
	return fmt.Sprintf("%s%s%-5s%s %s\n", ts, level.color(), level.String(), ColorReset, message)
}

func (cl *ColoredLogger) log(level LogLevel, format string, args ...interface{}) {
	cl.mu.RLock()
	defer cl.mu.RUnlock()

	if level == DEBUG && !cl.verbose {
		return
	}

	message := fmt.Sprintf(format, args...)
	for _, s := range cl.sinks {
		w := s.out
		if level >= WARN && s.errOut != nil {
			w = s.errOut
		}
		io.WriteString(w, cl.formatMessage(level, message, s.color))
	}
}

func Debug(format string, args ...interface{}) {
	globalLogger.log(DEBUG, format, args...)
}

func Info(format string, args ...interface{}) {
	globalLogger.log(INFO, format, args...)
}

func Success(format string, args ...interface{}) {
	globalLogger.log(SUCCESS, format, args...)
}

func Warn(format string, args ...interface{}) {
	globalLogger.log(WARN, format, args...)
}

func Error(format string, args ...interface{}) {
	globalLogger.log(ERROR, format, args...)
}
