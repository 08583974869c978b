package logging

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNew_Levels(t *testing.T) {
	logger, closeFn, err := New(false, "")
	require.NoError(t, err)
	defer closeFn()
	assert.False(t, logger.Core().Enabled(zap.DebugLevel))
	assert.True(t, logger.Core().Enabled(zap.InfoLevel))

	debugLogger, closeDebug, err := New(true, "")
	require.NoError(t, err)
	defer closeDebug()
	assert.True(t, debugLogger.Core().Enabled(zap.DebugLevel))
}

func TestNew_WritesJSONToLogFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "vault.log")

	logger, closeFn, err := New(false, path)
	require.NoError(t, err)
	logger.Info("document uploaded", zap.String("id", "7"))
	logger.Debug("hidden at info level")
	closeFn()

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 1)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "document uploaded", entry["msg"])
	assert.Equal(t, "7", entry["id"])
	assert.Equal(t, "info", entry["level"])
	assert.Contains(t, entry, "timestamp")
}
