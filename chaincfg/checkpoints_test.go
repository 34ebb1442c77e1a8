// Copyright (c) 2018 The Reef Core developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"math"
	"testing"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/stretchr/testify/require"
)

func TestCheckpointVerify(t *testing.T) {
	for n := Network(0); n < numNetworks; n++ {
		params, err := ParamsFor(n)
		require.NoError(t, err)

		table := &params.Checkpoints
		require.Equal(t, CheckpointMatch, table.Verify(0, params.GenesisHash),
			n.String())

		other := chainhash.DoubleHashH([]byte("reef"))
		require.Equal(t, CheckpointMismatch, table.Verify(0, &other), n.String())
		require.Equal(t, CheckpointUnchecked, table.Verify(1, &other), n.String())
		require.Equal(t, CheckpointUnchecked, table.Verify(-1, &other), n.String())

		latest := table.LatestCheckpoint()
		require.NotNil(t, latest)
		require.Equal(t, int32(0), latest.Height)
	}
}

func TestCheckpointLookup(t *testing.T) {
	hashes := make([]*chainhash.Hash, 4)
	for i := range hashes {
		hash := chainhash.DoubleHashH([]byte{byte(i)})
		hashes[i] = &hash
	}
	table := CheckpointTable{
		Checkpoints: []Checkpoint{
			{0, hashes[0]},
			{1000, hashes[1]},
			{2500, hashes[2]},
			{9000, hashes[3]},
		},
	}
	require.NoError(t, table.validate(MainNet))

	for i, checkpoint := range table.Checkpoints {
		got, ok := table.Lookup(checkpoint.Height)
		require.True(t, ok)
		require.Equal(t, hashes[i], got.Hash)
		require.Equal(t, CheckpointMatch, table.Verify(checkpoint.Height, hashes[i]))
	}
	for _, height := range []int32{1, 999, 1001, 9001} {
		_, ok := table.Lookup(height)
		require.False(t, ok, height)
	}
	require.Equal(t, CheckpointMismatch, table.Verify(2500, hashes[1]))
	require.Equal(t, int32(9000), table.LatestCheckpoint().Height)

	var empty CheckpointTable
	require.Nil(t, empty.LatestCheckpoint())
	require.Equal(t, CheckpointUnchecked, empty.Verify(0, hashes[0]))

	require.Equal(t, "mismatch", CheckpointMismatch.String())
	require.Equal(t, "Unknown CheckpointResult (9)", CheckpointResult(9).String())
}

func TestGuessVerificationProgress(t *testing.T) {
	checkpointTime := time.Unix(1526191846, 0)
	table := CheckpointTable{
		LastCheckpointTime:  checkpointTime,
		TxCountAtCheckpoint: 1000,
		EstimatedTxPerDay:   500,
	}
	day := 24 * time.Hour

	tests := []struct {
		name    string
		chainTx uint64
		tipTime time.Time
		now     time.Time
		want    float64
	}{
		{
			name:    "empty chain",
			chainTx: 0,
			tipTime: checkpointTime,
			now:     checkpointTime.Add(day),
			want:    0,
		},
		{
			// 500 cheap done; 500 cheap and 5*500 expensive left.
			name:    "before checkpoint",
			chainTx: 500,
			tipTime: checkpointTime.Add(-day),
			now:     checkpointTime.Add(day),
			want:    500.0 / (500 + 500 + 2500),
		},
		{
			// 1000 cheap and 5*500 expensive done; 5*500 left.
			name:    "after checkpoint",
			chainTx: 1500,
			tipTime: checkpointTime.Add(day),
			now:     checkpointTime.Add(2 * day),
			want:    3500.0 / (3500 + 2500),
		},
		{
			name:    "tip is now",
			chainTx: 1500,
			tipTime: checkpointTime.Add(day),
			now:     checkpointTime.Add(day),
			want:    1,
		},
		{
			name:    "tip in the future",
			chainTx: 1500,
			tipTime: checkpointTime.Add(3 * day),
			now:     checkpointTime.Add(day),
			want:    1,
		},
	}

	for _, test := range tests {
		got := table.GuessVerificationProgress(test.chainTx, test.tipTime,
			test.now)
		require.InDelta(t, test.want, got, 1e-9, test.name)
	}

	// The regression test network has no sync statistics.
	regtest, err := ParamsFor(RegTest)
	require.NoError(t, err)
	got := regtest.Checkpoints.GuessVerificationProgress(1,
		time.Unix(1526191646, 0), time.Now())
	require.False(t, math.IsNaN(got))
	require.InDelta(t, 1, got, 1e-9)
}
