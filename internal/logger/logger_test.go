package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	return entry
}

func TestInfoWithFields(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	New(Options{Writer: buf}).
		WithFields(map[string]any{"vrf": "CORP", "host": "10.0.0.1"}).
		Info("reconciling vrf")

	entry := decode(t, buf)
	require.Equal(t, "reconciling vrf", entry["message"])
	require.Equal(t, "CORP", entry["vrf"])
	require.Equal(t, "10.0.0.1", entry["host"])
	require.Equal(t, "info", entry["level"])
	require.Contains(t, entry, "time")
}

func TestWithChains(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	New(Options{Verbose: true, Writer: buf}).With("run_id", "abc").With("vrf", "GUEST").Debug("planned")

	entry := decode(t, buf)
	require.Equal(t, "abc", entry["run_id"])
	require.Equal(t, "GUEST", entry["vrf"])
	require.Equal(t, "debug", entry["level"])
}

func TestDebugNeedsVerbose(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	New(Options{Writer: buf}).Debug("hidden")
	require.Empty(t, strings.TrimSpace(buf.String()))
}

func TestErrorAttachesCause(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	New(Options{Writer: buf}).With("vrf", "CORP").Error(errors.New("boom"), "read failed")

	entry := decode(t, buf)
	require.Equal(t, "read failed", entry["message"])
	require.Equal(t, "error", entry["level"])
	require.Equal(t, "boom", entry["error"])
}

func TestBufferIsNotATerminal(t *testing.T) {
	t.Parallel()

	require.False(t, IsTerminal(&bytes.Buffer{}))
	require.False(t, IsTerminal(nil))
}

func TestNilAndNopLoggersAreSafe(t *testing.T) {
	t.Parallel()

	var log *Logger
	require.NotPanics(t, func() {
		log.Info("ignored")
		log.Warn("ignored")
		log.Error(nil, "ignored")
		require.Nil(t, log.With("k", "v"))
		require.Nil(t, log.WithFields(map[string]any{"k": "v"}))
	})

	require.NotPanics(t, func() {
		Nop().With("k", "v").Info("discarded")
	})
}
