// Copyright (c) 2018 The Reef Core developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/reefcore/reefd/chaincfg"
	"github.com/stretchr/testify/require"
)

func TestNewCheckpointFromStr(t *testing.T) {
	tests := []struct {
		in      string
		height  int32
		wantErr bool
	}{
		{
			in:     "0:0000010e08cdaff5220e3db48752673b1b05b08129a2c8121e88350d6d5ef0ef",
			height: 0,
		},
		{
			in:     "1938:0000000009cc1f28c974798e6222442be48a61a8f23a1497d4cdada1c38a76c4",
			height: 1938,
		},
		{in: "", wantErr: true},
		{in: "1000", wantErr: true},
		{in: "1000:", wantErr: true},
		{in: "abc:0000010e08cdaff5220e3db48752673b1b05b08129a2c8121e88350d6d5ef0ef", wantErr: true},
		{in: "4294967296:00", wantErr: true},
		{in: "1:zz", wantErr: true},
		{in: "1:2:3", wantErr: true},
	}

	for _, test := range tests {
		checkpoint, err := newCheckpointFromStr(test.in)
		if test.wantErr {
			require.Error(t, err, test.in)
			continue
		}
		require.NoError(t, err, test.in)
		require.Equal(t, test.height, checkpoint.Height)
		require.NotNil(t, checkpoint.Hash)
	}

	checkpoints, err := parseCheckpoints(nil)
	require.NoError(t, err)
	require.Nil(t, checkpoints)

	_, err = parseCheckpoints([]string{tests[0].in, "bogus"})
	require.Error(t, err)
}

func TestParseAndSetDebugLevels(t *testing.T) {
	defer setLogLevels(defaultLogLevel)

	tests := []struct {
		in      string
		wantErr bool
	}{
		{in: "debug"},
		{in: "CHCF=trace"},
		{in: "CHCF=trace,MAIN=warn"},
		{in: "loud", wantErr: true},
		{in: "CHCF", wantErr: true},
		{in: "XXXX=debug", wantErr: true},
		{in: "CHAN=loud", wantErr: true},
		{in: "CHAN=debug,MAIN", wantErr: true},
	}
	for _, test := range tests {
		err := parseAndSetDebugLevels(test.in)
		if test.wantErr {
			require.Error(t, err, test.in)
		} else {
			require.NoError(t, err, test.in)
		}
	}

	require.Equal(t, []string{"CHAN", "CHCF", "MAIN"}, supportedSubsystems())
}

func TestLoadConfig(t *testing.T) {
	defer setLogLevels(defaultLogLevel)

	dir := t.TempDir()
	configFile := filepath.Join(dir, "reefparams.conf")
	err := os.WriteFile(configFile, []byte("[Application Options]\n"+
		"network=test\ndebuglevel=debug\n"), 0600)
	require.NoError(t, err)

	// Options come from the config file.
	cfg, _, err := loadConfig([]string{"-C", configFile, "--nologfile"})
	require.NoError(t, err)
	require.Equal(t, "test", cfg.Network)
	require.Equal(t, chaincfg.TestNet, cfg.params.Network)
	require.Equal(t, "debug", cfg.DebugLevel)

	// The command line takes precedence over the config file.
	cfg, _, err = loadConfig([]string{"-C", configFile, "--nologfile",
		"--network=regtest", "--checkpoint",
		"0:00000f06f0373d435738e2be9b7e042e004718ad9fce41b4f3ec8bf99284925f"})
	require.NoError(t, err)
	require.Equal(t, chaincfg.RegTest, cfg.params.Network)
	require.Len(t, cfg.checkpoints, 1)

	// The log file is written below the network directory.
	logDir := filepath.Join(dir, "logs")
	cfg, _, err = loadConfig([]string{"-C", configFile, "--logdir", logDir})
	require.NoError(t, err)
	require.DirExists(t, filepath.Join(logDir, "test"))
	require.NotNil(t, logRotator)
	logRotator.Close()
	logRotator = nil

	// A missing explicit config file is an error.
	_, _, err = loadConfig([]string{"-C", filepath.Join(dir, "missing.conf")})
	require.Error(t, err)

	_, _, err = loadConfig([]string{"-C", configFile, "--nologfile",
		"--network=testnet3"})
	var unknownErr *chaincfg.UnknownNetworkError
	require.True(t, errors.As(err, &unknownErr))
	require.Equal(t, "testnet3", unknownErr.Name)

	_, _, err = loadConfig([]string{"-C", configFile, "--nologfile",
		"--checkpoint", "12"})
	require.Error(t, err)

	_, _, err = loadConfig([]string{"-C", configFile, "--nologfile",
		"--debuglevel", "XXXX=info"})
	require.Error(t, err)

	_, _, err = loadConfig([]string{"-C", configFile, "--nologfile",
		"--no-such-option"})
	require.Error(t, err)
}

func TestCleanAndExpandPath(t *testing.T) {
	t.Setenv("REEFPARAMS_TEST_DIR", "/tmp/reef")
	require.Equal(t, "/tmp/reef/logs",
		cleanAndExpandPath("$REEFPARAMS_TEST_DIR/./logs/"))
	require.Equal(t, filepath.Join(filepath.Dir(defaultHomeDir), "logs"),
		cleanAndExpandPath("~/logs"))
}
