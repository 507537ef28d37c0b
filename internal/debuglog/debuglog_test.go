package debuglog

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLevelFromEnv(t *testing.T) {
	require.Equal(t, LevelSilent, LevelFromEnv(""))
	require.Equal(t, LevelDebug, LevelFromEnv("1"))
	require.Equal(t, LevelDebug, LevelFromEnv("yes"))
	require.Equal(t, LevelTrace, LevelFromEnv("trace"))
}

func TestLoggerGatesByLevel(t *testing.T) {
	var buf bytes.Buffer
	l := New(LevelDebug, &buf)

	l.Debugf("hello %d", 1)
	l.Tracef("not shown")
	require.Equal(t, "debug: hello 1\n", buf.String())

	buf.Reset()
	l = New(LevelTrace, &buf)
	l.Tracef("shown")
	require.Equal(t, "trace: shown\n", buf.String())

	buf.Reset()
	l = New(LevelSilent, &buf)
	l.Debugf("dropped")
	require.Empty(t, buf.String())
}

func TestNilLoggerIsSafe(t *testing.T) {
	var l *Logger
	l.Debugf("no panic")
	l.Tracef("no panic")
}
