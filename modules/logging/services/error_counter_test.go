package services

import (
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLogger(counter *ErrorCounter) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	logger.AddHook(counter)
	return logger
}

func TestErrorCounter_CountsErrorLevels(t *testing.T) {
	t.Parallel()

	counter := NewErrorCounter(10)
	logger := newLogger(counter)

	logger.Info("ignored")
	logger.Warn("ignored")
	logger.WithField("path", "/users").Error("first")
	logger.Error("second")

	assert.Equal(t, 2, counter.Count())
	recent := counter.Recent()
	require.Len(t, recent, 2)
	assert.Equal(t, "second", recent[0].Message)
	assert.Equal(t, "first", recent[1].Message)
	assert.Equal(t, "/users", recent[1].Fields["path"])
}

func TestErrorCounter_KeepsLimit(t *testing.T) {
	t.Parallel()

	counter := NewErrorCounter(2)
	logger := newLogger(counter)
	for _, msg := range []string{"a", "b", "c"} {
		logger.Error(msg)
	}

	assert.Equal(t, 3, counter.Count())
	recent := counter.Recent()
	require.Len(t, recent, 2)
	assert.Equal(t, "c", recent[0].Message)
	assert.Equal(t, "b", recent[1].Message)

	counter.Reset()
	assert.Zero(t, counter.Count())
	assert.Empty(t, counter.Recent())
}
