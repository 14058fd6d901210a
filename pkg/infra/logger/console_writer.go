package logger

import (
	"io"
	"sync"

	"github.com/sirupsen/logrus"
)

// ConsoleHook mirrors entries to a console writer while the logger's main
// output goes to the log file.
type ConsoleHook struct {
	mu        sync.Mutex
	out       io.Writer
	formatter logrus.Formatter
}

// NewConsoleHook reuses the logger's formatter unless one is given.
func NewConsoleHook(out io.Writer, formatter ...logrus.Formatter) *ConsoleHook {
	h := &ConsoleHook{out: out}
	if len(formatter) > 0 {
		h.formatter = formatter[0]
	}
	return h
}

func (h *ConsoleHook) Fire(entry *logrus.Entry) error {
	f := h.formatter
	if f == nil {
		f = entry.Logger.Formatter
	}
	line, err := f.Format(entry)
	if err != nil {
		return err
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	_, err = h.out.Write(line)
	return err
}

func (h *ConsoleHook) Levels() []logrus.Level {
	return logrus.AllLevels
}
