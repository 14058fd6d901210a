package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

const logDir = "logs"

// Options controls where NewLogger writes.
type Options struct {
	Name  string
	Level string
	// Dir defaults to "logs".
	Dir         string
	DisableFile bool
	Console     io.Writer
}

// NewLogger builds the JSON logger shared by services and handlers. Entries go to
// logs/<name>.log through an async buffered writer and are mirrored to the console.
func NewLogger(opts Options) (*logrus.Logger, func(), error) {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: time.RFC3339,
		FieldMap: logrus.FieldMap{
			logrus.FieldKeyTime: "time",
			logrus.FieldKeyMsg:  "msg",
		},
	})
	logger.SetLevel(ParseLevel(opts.Level))

	console := opts.Console
	if console == nil {
		console = os.Stdout
	}

	if opts.DisableFile {
		logger.SetOutput(console)
		return logger, func() {}, nil
	}

	dir := opts.Dir
	if dir == "" {
		dir = logDir
	}
	name := opts.Name
	if name == "" {
		name = "api"
	}
	logFile := filepath.Clean(filepath.Join(dir, name+".log"))
	if !strings.HasPrefix(logFile, filepath.Clean(dir)) {
		return nil, nil, fmt.Errorf("invalid log file path %q", logFile)
	}
	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, nil, fmt.Errorf("failed to create logs directory: %w", err)
	}

	asyncWriter, err := NewAsyncFileWriter(logFile, 32*1024)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize async log writer: %w", err)
	}
	logger.SetOutput(asyncWriter)
	logger.AddHook(NewConsoleHook(console))

	return logger, asyncWriter.Close, nil
}

// ParseLevel accepts the usual names in any case; unknown values fall back to info.
func ParseLevel(level string) logrus.Level {
	lvl, err := logrus.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil {
		return logrus.InfoLevel
	}
	return lvl
}
