package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lines(t *testing.T, buf *bytes.Buffer) []map[string]interface{} {
	t.Helper()
	var out []map[string]interface{}
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var m map[string]interface{}
		require.NoError(t, json.Unmarshal([]byte(line), &m))
		out = append(out, m)
	}
	return out
}

func TestZeroLogger_WritesDefaultFields(t *testing.T) {
	var buf bytes.Buffer
	l := NewZeroLogger(&buf, LevelInfo, Fields{"service": "qrmenu", "env": "test"})

	l.Info("category created", map[string]interface{}{"id": "c1"})
	l.Error(errors.New("store down"), map[string]interface{}{"op": "list"})

	got := lines(t, &buf)
	require.Len(t, got, 2)
	assert.Equal(t, "info", got[0]["level"])
	assert.Equal(t, "category created", got[0]["message"])
	assert.Equal(t, "qrmenu", got[0]["service"])
	assert.Equal(t, "c1", got[0]["id"])
	assert.Equal(t, "error", got[1]["level"])
	assert.Equal(t, "store down", got[1]["error"])
}

func TestZeroLogger_Levels(t *testing.T) {
	var buf bytes.Buffer
	l := NewZeroLogger(&buf, LevelError, nil)

	l.Info("hidden", nil)
	l.Debug("hidden", nil)
	assert.Empty(t, buf.String())

	l.SetLevel(LevelDebug)
	l.Debug("shown", nil)
	assert.Len(t, lines(t, &buf), 1)

	buf.Reset()
	l.SetLevel(LevelOff)
	l.Error(errors.New("x"), nil)
	assert.Empty(t, buf.String())
}

func TestZeroLogger_FatalExits(t *testing.T) {
	var buf bytes.Buffer
	l := NewZeroLogger(&buf, LevelInfo, nil)
	code := -1
	l.exit = func(c int) { code = c }

	l.Fatal(errors.New("cannot start"), nil)
	assert.Equal(t, 1, code)
	assert.Contains(t, buf.String(), "cannot start")
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, LevelError, ParseLevel(" error "))
	assert.Equal(t, LevelOff, ParseLevel("off"))
	assert.Equal(t, LevelInfo, ParseLevel("verbose"))
	assert.Equal(t, "FATAL", LevelFatal.String())
}
