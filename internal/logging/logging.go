// A simple logging module that mimics the behavior of Python's logging module.
//
// All it does basically is wrap Go's logger with nice multi-level logging calls, and
// allows you to set the logging level of your app in runtime.
//
// Logging is done just like calling fmt.Sprintf:
//
//	logging.Info("Wrote %d tables to %s", n, target)
//
// example output:
//
//	[INFO 01:20:26.004 main.go:160] Loaded 13 languages
//	[DEBUG 01:20:26.006 main.go:112] Language css: 1256 tokens in 27 buckets
package logging

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"runtime"
	"strings"
	"sync"
	"time"
)

const (
	DEBUG    = 1
	INFO     = 2
	WARNING  = 4
	WARN     = 4
	ERROR    = 8
	NOTICE   = 16 //notice is like info but for really important stuff ;)
	CRITICAL = 32
	QUIET    = ERROR | NOTICE | CRITICAL               //setting for errors only
	NORMAL   = INFO | WARN | ERROR | NOTICE | CRITICAL // default setting - all besides debug
	ALL      = 255
	NOTHING  = 0
)

var levelsAscending = []int{DEBUG, INFO, WARNING, ERROR, NOTICE, CRITICAL}

var levelsByName = map[string]int{
	"DEBUG":    DEBUG,
	"INFO":     INFO,
	"WARNING":  WARN,
	"WARN":     WARN,
	"ERROR":    ERROR,
	"NOTICE":   NOTICE,
	"CRITICAL": CRITICAL,
	"QUIET":    QUIET,
	"NORMAL":   NORMAL,
	"ALL":      ALL,
	"NOTHING":  NOTHING,
}

// warnings and errors only unless asked otherwise
var level = WARN | QUIET

// Set the logging level.
//
// Contrary to Python that specifies a minimal level, this logger is set with a bit mask
// of active levels.
//
// e.g. for INFO and ERROR use:
//
//	SetLevel(logging.INFO | logging.ERROR)
func SetLevel(l int) {
	level = l
}

// Level returns the active level bit mask
func Level() int {
	return level
}

// Set a minimal level for loggin, setting all levels higher than this level as well.
//
// the severity order is DEBUG, INFO, WARNING, ERROR, NOTICE, CRITICAL
func SetMinimalLevel(l int) {
	newLevel := 0
	for _, lvl := range levelsAscending {
		if lvl >= l {
			newLevel |= lvl
		}
	}
	SetLevel(newLevel)
}

// Set minimal level by string, useful for config files and command line arguments. Case insensitive.
func SetMinimalLevelByName(l string) error {
	l = strings.ToUpper(strings.TrimSpace(l))
	lvl, found := levelsByName[l]
	if !found {
		return fmt.Errorf("Invalid level %s", l)
	}

	SetMinimalLevel(lvl)
	return nil
}

// LoggingHandler is a pluggable log sink
type LoggingHandler interface {
	SetFormatter(Formatter)
	SetOutput(io.Writer)
	Output() io.Writer
	Emit(ctx *MessageContext, message string, args ...interface{}) error
}

type standardHandler struct {
	formatter Formatter
	out       io.Writer
	mu        sync.Mutex
}

func (l *standardHandler) SetFormatter(f Formatter) {
	l.formatter = f
}

func (l *standardHandler) SetOutput(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.out = w
}

func (l *standardHandler) Output() io.Writer {
	return l.out
}

func (l *standardHandler) Emit(ctx *MessageContext, message string, args ...interface{}) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	_, err := fmt.Fprintln(l.out, l.formatter.Format(ctx, message, args...))
	return err
}

var currentHandler LoggingHandler = &standardHandler{
	formatter: DefaultFormatter,
	out:       os.Stderr,
}

func CurrentHandler() LoggingHandler {
	return currentHandler
}

// SetOutput redirects the current handler
func SetOutput(w io.Writer) {
	currentHandler.SetOutput(w)
}

type MessageContext struct {
	Level     string
	File      string
	Line      int
	TimeStamp time.Time
}

// get the stack (line + file) context to return the caller to the log
func getContext(level string, skipDepth int) *MessageContext {
	_, file, line, _ := runtime.Caller(skipDepth)
	file = path.Base(file)

	return &MessageContext{
		Level:     level,
		File:      file,
		TimeStamp: time.Now(),
		Line:      line,
	}
}

func writeMessage(level string, msg string, args ...interface{}) {
	writeMessageDepth(4, level, msg, args...)
}

func writeMessageDepth(depth int, level string, msg string, args ...interface{}) {
	ctx := getContext(level, depth)

	// We go over the args, and replace any function pointer with the signature
	// func() interface{} with the return value of executing it now.
	// This allows lazy evaluation of arguments which are return values
	for i, arg := range args {
		if fn, ok := arg.(func() interface{}); ok {
			args[i] = fn()
		}
	}

	if err := currentHandler.Emit(ctx, msg, args...); err != nil {
		printLogError(err, ctx, msg, args...)
	}
}

func printLogError(err error, ctx *MessageContext, msg string, args ...interface{}) {
	errMsg := err.Error()
	errw := err
	for {
		errw = errors.Unwrap(errw)
		if errw == nil {
			break
		}
		errMsg += ": " + errw.Error()
	}
	fmt.Fprintf(os.Stderr, "Error writing log message: %s\n", errMsg)
	fmt.Fprintln(os.Stderr, DefaultFormatter.Format(ctx, msg, args...))
}

// Output debug logging messages
func Debug(msg string, args ...interface{}) {
	if level&DEBUG != 0 {
		writeMessage("DEBUG", msg, args...)
	}
}

// output INFO level messages
func Info(msg string, args ...interface{}) {
	if level&INFO != 0 {
		writeMessage("INFO", msg, args...)
	}
}

// Output WARNING level messages
func Warning(msg string, args ...interface{}) {
	if level&WARN != 0 {
		writeMessage("WARNING", msg, args...)
	}
}
