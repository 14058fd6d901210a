package logger_test

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/Setharkk/Skyent-dev/pkg/infra/logger"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want logrus.Level
	}{
		{"INFO", logrus.InfoLevel},
		{"debug", logrus.DebugLevel},
		{" Warning ", logrus.WarnLevel},
		{"", logrus.InfoLevel},
		{"verbose", logrus.InfoLevel},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, logger.ParseLevel(tt.in))
		})
	}
}

func TestNewLogger_WritesFileAndConsole(t *testing.T) {
	dir := t.TempDir()
	var console bytes.Buffer

	log, closeFn, err := logger.NewLogger(logger.Options{
		Name:    "test",
		Level:   "debug",
		Dir:     dir,
		Console: &console,
	})
	require.NoError(t, err)

	log.WithField("component", "logger").Debug("hello")
	closeFn()

	data, err := os.ReadFile(filepath.Join(dir, "test.log"))
	require.NoError(t, err)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(data), &entry))
	assert.Equal(t, "hello", entry["msg"])
	assert.Equal(t, "logger", entry["component"])
	assert.Contains(t, console.String(), `"msg":"hello"`)
}

func TestNewLogger_ConsoleOnly(t *testing.T) {
	var console bytes.Buffer
	log, closeFn, err := logger.NewLogger(logger.Options{DisableFile: true, Console: &console})
	require.NoError(t, err)
	defer closeFn()

	log.Info("ready")
	assert.Contains(t, console.String(), "ready")
}

func TestConsoleHook_CustomFormatter(t *testing.T) {
	var out bytes.Buffer
	log := logrus.New()
	log.SetOutput(io.Discard)
	log.AddHook(logger.NewConsoleHook(&out, &logrus.TextFormatter{DisableTimestamp: true, DisableColors: true}))

	log.Info("bonjour")
	assert.Equal(t, "level=info msg=bonjour\n", out.String())
}
