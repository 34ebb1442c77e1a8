// Copyright (c) 2013-2017 The btcsuite developers
// Copyright (c) 2018 The Reef Core developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockchain

import (
	"fmt"
	"math/big"
	"time"

	btcdchain "github.com/btcsuite/btcd/blockchain"
	"github.com/btcsuite/btcd/wire"
	"github.com/reefcore/reefd/chaincfg"
)

// retargetAdjustmentFactor is the largest factor by which the target may move
// in either direction at a single readjustment.
const retargetAdjustmentFactor = 4

// RetargetWindow describes the tip a new block is built on, as far as the
// difficulty readjustment needs to know about it.
type RetargetWindow struct {
	// LastHeight is the height of the tip.
	LastHeight int32

	// LastBits is the difficulty of the tip in compact form.
	LastBits uint32

	// LastTime is the timestamp of the tip.
	LastTime time.Time

	// FirstTime is the timestamp of the block BlocksPerRetarget() blocks
	// before the block being built, that is the first block of the
	// readjustment interval ending at the tip.  With an interval of one
	// block, as on the main network, it is the previous block's time and
	// equals LastTime.  It is only used when the next block starts a new
	// interval.
	FirstTime time.Time

	// PrevNonMinBits is the difficulty of the most recent block that was
	// not mined under the minimum difficulty exception.  Zero means LastBits.
	// It is only used on networks that reduce the minimum difficulty.
	PrevNonMinBits uint32
}

// CalcNextRequiredDifficulty calculates the required difficulty for the block
// after the tip described by window, given the timestamp of the new block.
//
// Networks that do not retarget keep the difficulty of the tip.  Otherwise
// the difficulty only changes on interval boundaries, where the target is
// scaled by the actual over the desired timespan of the interval, limited to
// a factor of four and to the proof of work limit.  Networks that reduce the
// minimum difficulty allow a block at the limit once twice the target spacing
// passed without a block.
func CalcNextRequiredDifficulty(params *chaincfg.Params, window RetargetWindow,
	newBlockTime time.Time) uint32 {

	c := &params.Consensus
	if c.NoRetargeting {
		return window.LastBits
	}

	// Genesis block.
	if window.LastHeight < 0 {
		return c.PowLimitBits
	}

	blocksPerRetarget := c.BlocksPerRetarget()
	if (window.LastHeight+1)%blocksPerRetarget != 0 {
		if !c.ReduceMinDifficulty {
			return window.LastBits
		}

		allowMinTime := window.LastTime.Add(2 * c.TargetTimePerBlock)
		if newBlockTime.After(allowMinTime) {
			log.Debugf("Block at height %d allows minimum difficulty "+
				"(%v since previous block)", window.LastHeight+1,
				newBlockTime.Sub(window.LastTime))
			return c.PowLimitBits
		}
		if window.PrevNonMinBits != 0 {
			return window.PrevNonMinBits
		}
		return window.LastBits
	}

	// Limit the amount of adjustment that can occur to the previous
	// difficulty.
	targetTimespan := int64(c.TargetTimespan / time.Second)
	minRetargetTimespan := targetTimespan / retargetAdjustmentFactor
	maxRetargetTimespan := targetTimespan * retargetAdjustmentFactor
	actualTimespan := window.LastTime.Unix() - window.FirstTime.Unix()
	adjustedTimespan := actualTimespan
	if actualTimespan < minRetargetTimespan {
		adjustedTimespan = minRetargetTimespan
	} else if actualTimespan > maxRetargetTimespan {
		adjustedTimespan = maxRetargetTimespan
	}

	// Calculate new target difficulty as:
	//  currentDifficulty * (adjustedTimespan / targetTimespan)
	// The result uses integer division which means it will be slightly
	// rounded down.
	oldTarget := btcdchain.CompactToBig(window.LastBits)
	newTarget := new(big.Int).Mul(oldTarget, big.NewInt(adjustedTimespan))
	newTarget.Div(newTarget, big.NewInt(targetTimespan))

	// Limit new value to the proof of work limit.
	if newTarget.Cmp(c.PowLimit) > 0 {
		newTarget.Set(c.PowLimit)
	}

	// Log new target difficulty and return it.  The new target logging is
	// intentionally converting the bits back to a number instead of using
	// newTarget since conversion to the compact representation loses
	// precision.
	newTargetBits := btcdchain.BigToCompact(newTarget)
	log.Debugf("Difficulty retarget at block height %d", window.LastHeight+1)
	log.Debugf("Old target %08x (%064x)", window.LastBits, oldTarget)
	log.Debugf("New target %08x (%064x)", newTargetBits,
		btcdchain.CompactToBig(newTargetBits))
	log.Debugf("Actual timespan %v, adjusted timespan %v, target timespan %v",
		time.Duration(actualTimespan)*time.Second,
		time.Duration(adjustedTimespan)*time.Second, c.TargetTimespan)

	return newTargetBits
}

// CalcWork calculates a work value from difficulty bits.  See the btcd
// blockchain package for the derivation.
func CalcWork(bits uint32) *big.Int {
	return btcdchain.CalcWork(bits)
}

// CheckProofOfWork ensures the header's target is within the network's proof
// of work limit and that its hash, as computed by the network's proof of work
// function, does not exceed the target.  A btcd blockchain.RuleError is
// returned on failure.
func CheckProofOfWork(params *chaincfg.Params, header *wire.BlockHeader) error {
	// The target difficulty must be larger than zero.
	target := btcdchain.CompactToBig(header.Bits)
	if target.Sign() <= 0 {
		str := fmt.Sprintf("block target difficulty of %064x is too low",
			target)
		return btcdchain.RuleError{
			ErrorCode:   btcdchain.ErrUnexpectedDifficulty,
			Description: str,
		}
	}

	// The target difficulty must be less than the maximum allowed.
	if target.Cmp(params.Consensus.PowLimit) > 0 {
		str := fmt.Sprintf("block target difficulty of %064x is higher "+
			"than max of %064x", target, params.Consensus.PowLimit)
		return btcdchain.RuleError{
			ErrorCode:   btcdchain.ErrUnexpectedDifficulty,
			Description: str,
		}
	}

	// The block hash must be less than the claimed target.
	hash := params.BlockHash(header)
	hashNum := btcdchain.HashToBig(&hash)
	if hashNum.Cmp(target) > 0 {
		str := fmt.Sprintf("block hash of %064x is higher than expected "+
			"max of %064x", hashNum, target)
		return btcdchain.RuleError{
			ErrorCode:   btcdchain.ErrHighHash,
			Description: str,
		}
	}

	log.Tracef("Block %v meets target %08x", hash, header.Bits)
	return nil
}
