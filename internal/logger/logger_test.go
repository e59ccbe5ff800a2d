package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

type logEntry map[string]any

func TestLoggerInfoWithFields(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "info", HumanReadable: false, Writer: buf})
	require.NoError(t, err)

	log = log.WithFields(map[string]any{"command": "demo", "snapshot": "scene.yaml"})
	log.Info("panel ready")

	var entry logEntry
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "panel ready", entry["message"])
	require.Equal(t, "demo", entry["command"])
	require.Equal(t, "scene.yaml", entry["snapshot"])
	require.Equal(t, "info", entry["level"])
}

func TestLoggerDebugRespectsLevel(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "info", HumanReadable: false, Writer: buf})
	require.NoError(t, err)

	log.Debug("this should not appear")
	log.Zerolog().Debug().Msg("nor this")
	require.Equal(t, "", strings.TrimSpace(buf.String()))
}

func TestLoggerErrorIncludesContext(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "debug", HumanReadable: false, Writer: buf})
	require.NoError(t, err)

	log = log.WithFields(map[string]any{"path": "preset.json"})
	log.Error(errors.New("boom"), "failed to save snapshot")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var entry logEntry
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	require.Equal(t, "failed to save snapshot", entry["message"])
	require.Equal(t, "preset.json", entry["path"])
	require.Equal(t, "boom", entry["error"])
}

func TestLoggerRejectsUnknownLevel(t *testing.T) {
	t.Parallel()

	_, err := New(Options{Level: "loud"})
	require.Error(t, err)
}

func TestZerologSharesOutput(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "debug", Writer: buf})
	require.NoError(t, err)

	log.Zerolog().Debug().Str("property", "speed").Msg("controller added")
	require.Contains(t, buf.String(), `"property":"speed"`)
}

func TestNilAndDiscardLoggers(t *testing.T) {
	t.Parallel()

	var nilLogger *Logger
	nilLogger.Info("ignored")
	require.Nil(t, nilLogger.WithFields(map[string]any{"a": 1}))
	require.NotNil(t, nilLogger.Zerolog())
	require.NotNil(t, nilLogger.Panel("Demo"))
	nilLogger.Snapshot("saved", "preset.json", 2)
	require.NoError(t, nilLogger.Close())

	Discard().Error(errors.New("x"), "ignored")
}

func TestLoggerVerboseOverridesLevel(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "warn", Verbose: true, Writer: buf})
	require.NoError(t, err)

	log.Debug("folder opened")
	require.Contains(t, buf.String(), "folder opened")
}

func TestLoggerPanelAndCommandFields(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "debug", Writer: buf})
	require.NoError(t, err)

	panelLog := log.Command("demo").Panel("Demo Scene")
	panelLog.Debug().Str("property", "speed").Msg("controller added")

	var entry logEntry
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "demo", entry["command"])
	require.Equal(t, "Demo Scene", entry["panel"])
	require.Equal(t, "speed", entry["property"])
}

func TestLoggerSnapshotEntry(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Writer: buf})
	require.NoError(t, err)

	log.Snapshot("loaded", "scene.yaml", 3)

	var entry logEntry
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "snapshot loaded", entry["message"])
	require.Equal(t, "loaded", entry["action"])
	require.Equal(t, "scene.yaml", entry["path"])
	require.EqualValues(t, 3, entry["values"])
}

func TestLoggerAppendsToFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "logs", "panel.log")
	for _, msg := range []string{"first run", "second run"} {
		log, err := New(Options{File: path})
		require.NoError(t, err)
		log.Info(msg)
		require.NoError(t, log.Close())
		require.NoError(t, log.Close())
	}

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 2)
	require.Contains(t, lines[0], "first run")
	require.Contains(t, lines[1], "second run")
}

func TestLoggerFileErrors(t *testing.T) {
	t.Parallel()

	blocker := filepath.Join(t.TempDir(), "not-a-dir")
	require.NoError(t, os.WriteFile(blocker, nil, 0o644))

	_, err := New(Options{File: filepath.Join(blocker, "panel.log")})
	require.ErrorContains(t, err, "create log directory")
}
