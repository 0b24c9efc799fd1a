package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"artichat/internal/relay"
)

func TestRootCmd_Defaults(t *testing.T) {
	cmd := newRootCmd()
	listen, err := cmd.Flags().GetString("listen")
	require.NoError(t, err)
	assert.Equal(t, relay.DefaultAddr, listen)
}

func TestRootCmd_BadLogLevel(t *testing.T) {
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"--log-level", "chatty"})
	require.Error(t, cmd.Execute())
}

func TestRootCmd_BadListenAddr(t *testing.T) {
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"--listen", "not-an-address"})
	require.Error(t, cmd.Execute())
}
