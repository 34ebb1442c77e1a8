// Copyright (c) 2018 The Reef Core developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"testing"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/reefcore/reefd/chaincfg"
	"github.com/stretchr/testify/require"
)

const genesisPubKeyHex = "040a3ada5ba6280b99f49a92ba47221e6a72af844ec49d0c8bbdae1ec09a4c79b2" +
	"2e42eefe670ae04490556f91780eb57de76493d020c91d0c421c2fa052b28a2b"

func TestWriteProfile(t *testing.T) {
	now := time.Unix(1526191846, 0)
	tests := []struct {
		net  chaincfg.Network
		want []string
	}{
		{
			net: chaincfg.MainNet,
			want: []string{
				"Network:",
				"main\n",
				"6ab19cd5",
				"0000010e08cdaff5220e3db48752673b1b05b08129a2c8121e88350d6d5ef0ef",
				"Genesis proof of work:      ok",
				"Retargeting:                enabled",
				"Deployment csv:             bit 0, 1523675804-1555459200 (open)",
				"159.89.90.181:13058",
				"seed1.reefcoin.io",
				"Checkpoints:                1 (latest 0 ",
			},
		},
		{
			net: chaincfg.RegTest,
			want: []string{
				"769d5ed7",
				"00000f06f0373d435738e2be9b7e042e004718ad9fce41b4f3ec8bf99284925f",
				"Retargeting:                disabled",
				"Proof of work limit:        207fffff",
				"Alert key:                  none",
			},
		},
	}

	for _, test := range tests {
		params, err := chaincfg.ParamsFor(test.net)
		require.NoError(t, err)

		var buf bytes.Buffer
		require.NoError(t, writeProfile(&buf, params, now))
		for _, want := range test.want {
			require.Contains(t, buf.String(), want, test.net.String())
		}
	}
}

func TestRun(t *testing.T) {
	params, err := chaincfg.ParamsFor(chaincfg.MainNet)
	require.NoError(t, err)
	now := time.Now()

	other := chainhash.DoubleHashH([]byte("reef"))
	cfg := &config{
		PubKeys: []string{genesisPubKeyHex},
		checkpoints: []chaincfg.Checkpoint{
			{Height: 0, Hash: params.GenesisHash},
			{Height: 5, Hash: &other},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, run(&buf, cfg, params, now))
	out := buf.String()
	require.Contains(t, out, "Checkpoint 0 "+params.GenesisHash.String()+": match")
	require.Contains(t, out, "Checkpoint 5 "+other.String()+": unchecked")
	require.Contains(t, out, "RQuNbLnS4oJxXUF7G2usjkQRDfygDzC3Mj")
	require.NotContains(t, out, "GenesisBlock")

	// A mismatching checkpoint fails the run after reporting it.
	cfg = &config{
		Dump: true,
		checkpoints: []chaincfg.Checkpoint{
			{Height: 0, Hash: &other},
		},
	}
	buf.Reset()
	err = run(&buf, cfg, params, now)
	require.ErrorIs(t, err, errCheckpointMismatch)
	require.Contains(t, buf.String(), ": mismatch")
	require.Contains(t, buf.String(), "GenesisBlock")

	cfg = &config{PubKeys: []string{"04abcd"}}
	require.Error(t, run(&buf, cfg, params, now))
}

func TestPubKeyAddress(t *testing.T) {
	tests := []struct {
		net  chaincfg.Network
		want string
	}{
		{chaincfg.MainNet, "RQuNbLnS4oJxXUF7G2usjkQRDfygDzC3Mj"},
		{chaincfg.TestNet, "RpEyaT5imymqLuPCHTFCDsgCrBEcwBz1FU"},
		{chaincfg.RegTest, "nLUjnzHQzBQX41VcXrESxGZKwuNjDCZh2X"},
	}
	for _, test := range tests {
		params, err := chaincfg.ParamsFor(test.net)
		require.NoError(t, err)

		addr, err := pubKeyAddress(params, genesisPubKeyHex)
		require.NoError(t, err)
		require.Equal(t, test.want, addr)
	}

	params, err := chaincfg.ParamsFor(chaincfg.MainNet)
	require.NoError(t, err)
	_, err = pubKeyAddress(params, "not hex")
	require.Error(t, err)
}
