package log

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKvToArgs(t *testing.T) {
	t.Run("NoArgs", func(t *testing.T) {
		assert.Equal(t, []any{}, kvToArgs())
	})

	t.Run("OneArg", func(t *testing.T) {
		result := kvToArgs(KV{"mode": 3})
		assert.Equal(t, []any{"mode", 3}, result)
	})

	t.Run("PickOnlyFirst", func(t *testing.T) {
		result := kvToArgs(KV{"path": "employees.db"}, KV{"driver": "sqlite3"})
		assert.Equal(t, []any{"path", "employees.db"}, result)
	})

	t.Run("SortedByKey", func(t *testing.T) {
		result := kvToArgs(KV{"rows": 100, "elapsed": "1s", "mode": 5})
		assert.Equal(t, []any{"elapsed", "1s", "mode", 5, "rows", 100}, result)
	})
}

func TestKvToArgsNs(t *testing.T) {
	t.Run("NoArgs", func(t *testing.T) {
		assert.Equal(t, []any{"ns", NsDatabase}, kvToArgsNs(NsDatabase))
	})

	t.Run("NamespaceFirst", func(t *testing.T) {
		result := kvToArgsNs(NsCLI, KV{"mode": 1, "args": 0})
		assert.Equal(t, []any{"ns", NsCLI, "args", 0, "mode", 1}, result)
	})
}

func TestLogger(t *testing.T) {
	t.Run("ZeroValueNotInitialized", func(t *testing.T) {
		assert.False(t, Logger{}.IsInitialized())
		assert.True(t, NewLogger(&bytes.Buffer{}, false).IsInitialized())
	})

	t.Run("DebugHiddenByDefault", func(t *testing.T) {
		buf := &bytes.Buffer{}
		logger := NewLogger(buf, false)
		logger.DebugNs(NsDatabase, "opened")
		logger.Info("started")
		assert.Empty(t, buf.String())

		logger.Warn("slow query")
		assert.Contains(t, buf.String(), "slow query")
	})

	t.Run("DebugWhenVerbose", func(t *testing.T) {
		buf := &bytes.Buffer{}
		logger := NewLogger(buf, true).With(KV{"runId": "abc"})
		logger.DebugNs(NsDatabase, "opened", KV{"path": "employees.db"})

		entry := map[string]any{}
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		assert.Equal(t, "opened", entry["msg"])
		assert.Equal(t, NsDatabase, entry["ns"])
		assert.Equal(t, "employees.db", entry["path"])
		assert.Equal(t, "abc", entry["runId"])
	})
}
