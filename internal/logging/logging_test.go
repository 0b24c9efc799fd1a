package logging_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"artichat/internal/logging"
)

func TestNew_WritesToOut(t *testing.T) {
	var buf bytes.Buffer
	l, closer, err := logging.New(logging.Options{Level: "debug", Out: &buf})
	require.NoError(t, err)
	defer closer.Close()

	assert.Equal(t, logrus.DebugLevel, l.GetLevel())
	logging.Component(l, "session").Debug("hello")
	assert.Contains(t, buf.String(), "component=session")
	assert.Contains(t, buf.String(), "hello")
}

func TestNew_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chat.log")
	l, closer, err := logging.New(logging.Options{File: path})
	require.NoError(t, err)

	l.Info("to file")
	require.NoError(t, closer.Close())

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(b), "to file")
}

func TestNew_DefaultsDiscardAtInfo(t *testing.T) {
	l, _, err := logging.New(logging.Options{})
	require.NoError(t, err)
	assert.Equal(t, logrus.InfoLevel, l.GetLevel())
}

func TestNew_BadLevel(t *testing.T) {
	_, _, err := logging.New(logging.Options{Level: "loud"})
	assert.Error(t, err)
}
