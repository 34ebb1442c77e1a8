// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2018 The Reef Core developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"math/big"
	"time"

	"github.com/btcsuite/btcd/blockchain"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

// ConsensusParams holds the consensus-critical constants of a network.  An
// instance is filled once by its network constructor and never modified
// afterwards.
type ConsensusParams struct {
	// GenesisHash is the X16S hash of the genesis block header.
	GenesisHash chainhash.Hash

	// SubsidyReductionInterval is the interval of blocks before the subsidy
	// is reduced.
	SubsidyReductionInterval int32

	// Masternode payment schedule.  These are interpreted by the payment
	// distribution code only.
	MasternodePaymentsStartBlock     int32
	MasternodePaymentsIncreaseBlock  int32
	MasternodePaymentsIncreasePeriod int32
	InstantSendKeepLock              int32
	MasternodeMinimumConfirmations   int32
	BudgetPaymentsStartBlock         int32
	BudgetPaymentsCycleBlocks        int32
	BudgetPaymentsWindowBlocks       int32
	BudgetProposalEstablishingTime   time.Duration
	SuperblockStartBlock             int32
	SuperblockCycle                  int32
	GovernanceMinQuorum              int32
	GovernanceFilterElements         int32

	// Legacy block version majority voting.  A new version is enforced
	// once MajorityEnforceBlockUpgrade of the last MajorityWindow blocks
	// carry it and older versions are rejected after
	// MajorityRejectBlockOutdated.
	MajorityEnforceBlockUpgrade int32
	MajorityRejectBlockOutdated int32
	MajorityWindow              int32

	// BIP0034Height is the height at which BIP0034 became active, or -1
	// when it is not active on the network.  BIP0034Hash is the hash of
	// the block at that height.
	BIP0034Height int32
	BIP0034Hash   chainhash.Hash

	// PowLimit defines the highest allowed proof of work value for a block
	// as a uint256.
	PowLimit *big.Int

	// PowLimitBits defines the highest allowed proof of work value for a
	// block in compact form.
	PowLimitBits uint32

	// TargetTimespan is the desired amount of time that should elapse
	// before the block difficulty requirement is examined to determine how
	// it should be changed in order to maintain the desired block
	// generation rate.
	TargetTimespan time.Duration

	// TargetTimePerBlock is the desired amount of time to generate each
	// block.
	TargetTimePerBlock time.Duration

	// ReduceMinDifficulty defines whether the network allows blocks at the
	// minimum difficulty once twice the target spacing has passed without
	// a block.  Only test networks set this.
	ReduceMinDifficulty bool

	// NoRetargeting freezes the difficulty at the value of the previous
	// block regardless of timestamps.
	NoRetargeting bool

	// These fields are related to voting on consensus rule changes as
	// defined by BIP0009.
	//
	// RuleChangeActivationThreshold is the number of blocks in a threshold
	// state retarget window for which a positive vote for a rule change
	// must be cast in order to lock in a rule change. It should typically
	// be 95% for the main network and 75% for test networks.
	//
	// MinerConfirmationWindow is the number of blocks in each threshold
	// state retarget window.
	//
	// Deployments define the specific consensus rule changes to be voted
	// on.
	RuleChangeActivationThreshold uint32
	MinerConfirmationWindow       uint32
	Deployments                   DeploymentTable

	// MinimumChainWork is the least total work a chain must have before
	// it is considered for syncing.
	MinimumChainWork *big.Int

	// AssumeValid is a block whose ancestors' signatures are assumed to
	// be valid.
	AssumeValid chainhash.Hash
}

// BlocksPerRetarget returns the number of blocks between difficulty
// readjustments.
func (c *ConsensusParams) BlocksPerRetarget() int32 {
	return int32(c.TargetTimespan / c.TargetTimePerBlock)
}

// validate checks the internal consistency of the consensus constants.
func (c *ConsensusParams) validate(net Network) error {
	if got := blockchain.BigToCompact(c.PowLimit); got != c.PowLimitBits {
		return integrityError(net, "pow limit",
			"compact form %08x does not match %08x", got,
			c.PowLimitBits)
	}
	if c.TargetTimePerBlock <= 0 || c.TargetTimespan < c.TargetTimePerBlock {
		return integrityError(net, "target timespan",
			"timespan %v must cover at least one block of %v",
			c.TargetTimespan, c.TargetTimePerBlock)
	}
	if c.RuleChangeActivationThreshold > c.MinerConfirmationWindow {
		return integrityError(net, "rule change activation threshold",
			"threshold %d exceeds window of %d blocks",
			c.RuleChangeActivationThreshold,
			c.MinerConfirmationWindow)
	}
	return c.Deployments.validate(net)
}
