// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2018 The Reef Core developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"cmp"
	"fmt"
	"slices"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

// sigCheckVerificationFactor is how much more expensive a block is to verify
// once it is past the last checkpoint and signatures have to be checked.
const sigCheckVerificationFactor = 5.0

// Checkpoint identifies a known good point in the block chain.  Using
// checkpoints allows a few optimizations for old blocks during initial download
// and also prevents forks from old blocks.
type Checkpoint struct {
	Height int32
	Hash   *chainhash.Hash
}

// CheckpointResult is the outcome of checking a block against the checkpoint
// table.
type CheckpointResult int

const (
	// CheckpointUnchecked means there is no checkpoint at the height.
	CheckpointUnchecked CheckpointResult = iota

	// CheckpointMatch means the block hash equals the checkpoint.
	CheckpointMatch

	// CheckpointMismatch means the block hash differs from the checkpoint
	// and the chain containing it must be rejected.
	CheckpointMismatch
)

var checkpointResultStrings = map[CheckpointResult]string{
	CheckpointUnchecked: "unchecked",
	CheckpointMatch:     "match",
	CheckpointMismatch:  "mismatch",
}

// String returns the CheckpointResult as a human-readable name.
func (r CheckpointResult) String() string {
	if s := checkpointResultStrings[r]; s != "" {
		return s
	}
	return fmt.Sprintf("Unknown CheckpointResult (%d)", int(r))
}

// CheckpointTable holds the hardcoded checkpoints of a network together with
// the statistics used to estimate sync progress past the last one.
type CheckpointTable struct {
	// Checkpoints ordered from oldest to newest.
	Checkpoints []Checkpoint

	// LastCheckpointTime is the timestamp of the last checkpoint block.
	LastCheckpointTime time.Time

	// TxCountAtCheckpoint is the total number of transactions between
	// genesis and the last checkpoint.
	TxCountAtCheckpoint uint64

	// EstimatedTxPerDay is the estimated number of transactions per day
	// after the last checkpoint.
	EstimatedTxPerDay float64
}

func cmpCheckpointHeight(c Checkpoint, height int32) int {
	return cmp.Compare(c.Height, height)
}

// Lookup returns the checkpoint at the passed height, if any.
func (t *CheckpointTable) Lookup(height int32) (Checkpoint, bool) {
	i, ok := slices.BinarySearchFunc(t.Checkpoints, height,
		cmpCheckpointHeight)
	if !ok {
		return Checkpoint{}, false
	}
	return t.Checkpoints[i], true
}

// Verify checks the passed block hash against the checkpoint at the passed
// height.
func (t *CheckpointTable) Verify(height int32, hash *chainhash.Hash) CheckpointResult {
	checkpoint, ok := t.Lookup(height)
	if !ok {
		return CheckpointUnchecked
	}
	if !checkpoint.Hash.IsEqual(hash) {
		log.Debugf("Block %v at height %d does not match checkpoint "+
			"hash %v", hash, height, checkpoint.Hash)
		return CheckpointMismatch
	}
	return CheckpointMatch
}

// LatestCheckpoint returns the most recent checkpoint or nil when the table
// is empty.
func (t *CheckpointTable) LatestCheckpoint() *Checkpoint {
	if len(t.Checkpoints) == 0 {
		return nil
	}
	return &t.Checkpoints[len(t.Checkpoints)-1]
}

// GuessVerificationProgress estimates the fraction of the total verification
// work done for a chain whose tip has chainTx transactions in total and the
// passed timestamp.  Blocks up to the last checkpoint are cheap; blocks after it
// cost sigCheckVerificationFactor times as much, and the remaining blocks are
// extrapolated with EstimatedTxPerDay.
func (t *CheckpointTable) GuessVerificationProgress(chainTx uint64, tipTime, now time.Time) float64 {
	if chainTx == 0 {
		return 0
	}

	const secondsPerDay = 24 * 60 * 60
	var workBefore, workAfter float64
	if chainTx <= t.TxCountAtCheckpoint {
		cheapBefore := float64(chainTx)
		cheapAfter := float64(t.TxCountAtCheckpoint - chainTx)
		expensiveAfter := now.Sub(t.LastCheckpointTime).Seconds() /
			secondsPerDay * t.EstimatedTxPerDay
		workBefore = cheapBefore
		workAfter = cheapAfter + expensiveAfter*sigCheckVerificationFactor
	} else {
		cheapBefore := float64(t.TxCountAtCheckpoint)
		expensiveBefore := float64(chainTx - t.TxCountAtCheckpoint)
		expensiveAfter := now.Sub(tipTime).Seconds() / secondsPerDay *
			t.EstimatedTxPerDay
		workBefore = cheapBefore + expensiveBefore*sigCheckVerificationFactor
		workAfter = expensiveAfter * sigCheckVerificationFactor
	}

	// A tip from the future would otherwise report more than all work done.
	if workAfter < 0 {
		workAfter = 0
	}
	return workBefore / (workBefore + workAfter)
}

// validate ensures the checkpoints are ordered by strictly increasing height
// and all carry a hash.
func (t *CheckpointTable) validate(net Network) error {
	for i, checkpoint := range t.Checkpoints {
		if checkpoint.Hash == nil {
			return integrityError(net, "checkpoints",
				"checkpoint at height %d has no hash",
				checkpoint.Height)
		}
		if i > 0 && checkpoint.Height <= t.Checkpoints[i-1].Height {
			return integrityError(net, "checkpoints",
				"checkpoint at height %d is not after height %d",
				checkpoint.Height, t.Checkpoints[i-1].Height)
		}
	}
	return nil
}
