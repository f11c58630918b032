package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	InfoLogger  *log.Logger
	ErrorLogger *log.Logger
	DebugLogger *log.Logger
	WarnLogger  *log.Logger

	debugEnabled = os.Getenv("ENVIRONMENT") == "development"
)

func init() {
	configure(os.Stdout, os.Stderr)
}

// Options controls where log output goes. An empty File keeps stdout/stderr.
type Options struct {
	Environment string
	File        string
	MaxSizeMB   int
	MaxBackups  int
	MaxAgeDays  int
}

// Setup reconfigures the level loggers. When a file is given, all levels
// share one rotating writer.
func Setup(opts Options) io.Closer {
	debugEnabled = opts.Environment == "development"

	if strings.TrimSpace(opts.File) == "" {
		configure(os.Stdout, os.Stderr)
		log.SetOutput(os.Stderr)
		return nopCloser{}
	}

	w := &lumberjack.Logger{
		Filename:   opts.File,
		MaxSize:    opts.MaxSizeMB,
		MaxBackups: opts.MaxBackups,
		MaxAge:     opts.MaxAgeDays,
		Compress:   true,
	}
	configure(w, w)
	log.SetOutput(w)
	return w
}

func configure(out, errOut io.Writer) {
	flags := log.Ldate | log.Ltime | log.Lshortfile
	InfoLogger = log.New(out, "INFO: ", flags)
	ErrorLogger = log.New(errOut, "ERROR: ", flags)
	DebugLogger = log.New(out, "DEBUG: ", flags)
	WarnLogger = log.New(out, "WARN: ", flags)
}

// Writer returns the destination of info-level output, for components such
// as the HTTP request logger that take an io.Writer.
func Writer() io.Writer {
	return InfoLogger.Writer()
}

func Info(format string, v ...interface{}) {
	InfoLogger.Output(2, fmt.Sprintf(format, v...))
}

func Error(format string, v ...interface{}) {
	ErrorLogger.Output(2, fmt.Sprintf(format, v...))
}

func Debug(format string, v ...interface{}) {
	if debugEnabled {
		DebugLogger.Output(2, fmt.Sprintf(format, v...))
	}
}

func Warn(format string, v ...interface{}) {
	WarnLogger.Output(2, fmt.Sprintf(format, v...))
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
