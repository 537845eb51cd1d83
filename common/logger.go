package common

import (
	"fmt"
	"io"
	"log"
	"path"
	"runtime"
	"strings"
	"time"
)

// ILogger is the logging contract every pipeline stage writes through; no
// stage calls the standard library's log package directly.
type ILogger interface {
	ShouldLog(level LogLevel) bool
	Log(level LogLevel, msg string)
	Panic(err error)
}

type ILoggerCloser interface {
	ILogger
	CloseLog()
}

type ILoggerResetable interface {
	OpenLog()
	MinimumLogLevel() LogLevel
	ILoggerCloser
}

const maxLogSize = 100 * 1024 * 1024

// lineEnding is fixed to "\n": unlike the teacher, which special-cases
// Windows' CRLF convention for on-disk job logs, this translator's log is a
// debugging aid read by humans with modern editors on any platform.
const lineEnding = "\n"

// runLogger is one translation run's logger: one rotating file plus the
// in-memory minimum level filter. Ported from the teacher's per-job logger,
// the job ID replaced by a run ID scoped to a single CLI invocation.
type runLogger struct {
	runID             string
	minimumLevelToLog LogLevel
	file              io.WriteCloser
	logFileFolder     string
	logger            *log.Logger
	sanitizer         LogSanitizer
}

func NewRunLogger(runID string, minimumLevelToLog LogLevel, logFileFolder string) ILoggerResetable {
	return &runLogger{
		runID:             runID,
		minimumLevelToLog: minimumLevelToLog,
		logFileFolder:     logFileFolder,
		sanitizer:         NewTranslatorLogSanitizer(),
	}
}

func (rl *runLogger) OpenLog() {
	if rl.minimumLevelToLog == ELogLevel.None() {
		return
	}

	file, err := NewRotatingWriter(path.Join(rl.logFileFolder, rl.runID+".log"), maxLogSize)
	PanicIfErr(err)
	rl.file = file

	flags := log.LstdFlags | log.LUTC
	rl.logger = log.New(rl.file, "", flags)
	rl.logger.Println("run", rl.runID, "start", time.Now().UTC().Format(time.RFC3339))
	rl.logger.Println("OS", runtime.GOOS, runtime.GOARCH)
}

func (rl *runLogger) MinimumLogLevel() LogLevel {
	return rl.minimumLevelToLog
}

func (rl *runLogger) ShouldLog(level LogLevel) bool {
	if level == ELogLevel.None() {
		return false
	}
	return level <= rl.minimumLevelToLog
}

func (rl *runLogger) CloseLog() {
	if rl.minimumLevelToLog == ELogLevel.None() {
		return
	}
	rl.logger.Println("run", rl.runID, "end")
	_ = rl.file.Close()
}

func (rl *runLogger) Log(level LogLevel, msg string) {
	msg = rl.sanitizer.SanitizeLogMessage(msg)
	if lineEnding != "\n" {
		msg = strings.Replace(msg, "\n", lineEnding, -1)
	}
	if rl.ShouldLog(level) {
		prefix := ""
		if level <= ELogLevel.Warning() {
			prefix = fmt.Sprintf("%s: ", level)
		}
		rl.logger.Println(prefix + msg)
	}
}

func (rl *runLogger) Panic(err error) {
	if rl.logger != nil {
		rl.logger.Println(err)
	}
	panic(err)
}

// NopLogger discards everything; used by callers (and most tests) that do
// not care about diagnostics provenance.
type NopLogger struct{}

func (NopLogger) ShouldLog(LogLevel) bool   { return false }
func (NopLogger) Log(LogLevel, string)      {}
func (NopLogger) Panic(err error)           { panic(err) }
func (NopLogger) OpenLog()                  {}
func (NopLogger) CloseLog()                 {}
func (NopLogger) MinimumLogLevel() LogLevel { return ELogLevel.None() }
