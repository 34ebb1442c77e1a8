// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2018 The Reef Core developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"time"

	"github.com/btcsuite/btcd/wire"
)

// MainNetMagic is the message start of the main network: 6a b1 9c d5.
const MainNetMagic wire.BitcoinNet = 0xd59cb16a

var (
	// mainNetGenesisHash is the hash of the first block in the block chain
	// for the main network.
	mainNetGenesisHash = newHashFromStr("0000010e08cdaff5220e3db48752673b1b05b08129a2c8121e88350d6d5ef0ef")

	// genesisMerkleRoot is the merkle root of the genesis block.  All
	// networks share the genesis coinbase and therefore the root.
	genesisMerkleRoot = newHashFromStr("5441361edd31ed9073d5efc41f2ec32154fbee009d19c7ba32e6f25ff1165a52")
)

// newMainNetParams returns the network parameters for the main Reef network.
func newMainNetParams() (*Params, error) {
	p := &Params{
		Network:          MainNet,
		Name:             "main",
		Net:              MainNetMagic,
		DefaultPort:      "13058",
		MaxTipAge:        90 * time.Minute, // ~36 blocks behind
		PruneAfterHeight: 100000,
		DNSSeeds: []DNSSeed{
			{"seed1", "seed1.reefcoin.io"},
			{"seed2", "seed2.reefcoin.io"},
			{"seed3", "159.89.90.181"},
			{"seed4", "138.68.91.38"},
		},
		FixedSeeds: []FixedSeed{
			newFixedSeed("159.89.90.181", 13058),
			newFixedSeed("138.68.91.38", 13058),
		},
		PoWFunction: X16SHash,

		Consensus: ConsensusParams{
			SubsidyReductionInterval:         60000,
			MasternodePaymentsStartBlock:     2, // block after premine
			MasternodePaymentsIncreaseBlock:  158000000,
			MasternodePaymentsIncreasePeriod: 576 * 30,
			InstantSendKeepLock:              24,
			MasternodeMinimumConfirmations:   15,
			BudgetPaymentsStartBlock:         2100000000,
			BudgetPaymentsCycleBlocks:        16616,
			BudgetPaymentsWindowBlocks:       100,
			BudgetProposalEstablishingTime:   24 * time.Hour,
			SuperblockStartBlock:             2100000000,
			SuperblockCycle:                  16616,
			GovernanceMinQuorum:              10,
			GovernanceFilterElements:         20000,
			MajorityEnforceBlockUpgrade:      750,
			MajorityRejectBlockOutdated:      950,
			MajorityWindow:                   1000,
			BIP0034Height:                    227931,
			BIP0034Hash:                      *newHashFromStr("000000000000024b89b42a942fe0d9fea3bb44ab7bd1b19115dd6a759c0808b8"),
			PowLimit:                         mainPowLimit,
			PowLimitBits:                     0x1e0fffff,
			TargetTimespan:                   time.Minute,
			TargetTimePerBlock:               time.Minute,
			ReduceMinDifficulty:              false,
			NoRetargeting:                    false,

			// Consensus rule change deployments.
			//
			// The miner confirmation window is defined as:
			//   target proof of work timespan / target proof of work spacing
			RuleChangeActivationThreshold: 1916, // 95% of MinerConfirmationWindow
			MinerConfirmationWindow:       2016,
			Deployments: DeploymentTable{
				DeploymentTestDummy: {
					BitNumber:  28,
					StartTime:  1199145601, // January 1, 2008 UTC
					ExpireTime: 1230767999, // December 31, 2008 UTC
				},
				DeploymentCSV: {
					BitNumber:  0,
					StartTime:  1523675804, // April 14, 2018 UTC
					ExpireTime: 1555459200, // April 17, 2019 UTC
				},
			},

			MinimumChainWork: newBigFromHex("010d96c32fd677"), // block 1938
			AssumeValid:      *newHashFromStr("0000000009cc1f28c974798e6222442be48a61a8f23a1497d4cdada1c38a76c4"),
		},

		Checkpoints: CheckpointTable{
			Checkpoints: []Checkpoint{
				{0, mainNetGenesisHash},
			},
			LastCheckpointTime:  time.Unix(1526191846, 0),
			TxCountAtCheckpoint: 0,
			EstimatedTxPerDay:   500,
		},

		MiningRequiresPeers:           false,
		DefaultConsistencyChecks:      false,
		RequireStandard:               true,
		MineBlocksOnDemand:            false,
		TestnetToBeDeprecatedFieldRPC: false,

		PoolMaxTransactions:        3,
		FulfilledRequestExpireTime: time.Hour,

		AlertPubKey:              "044513449073a8efe161dc42e7c07c61c4a8f59297dc8ebacbc2f77345084d058399022bc6a0db0719739f183d14b04893fb78c3b9bd9a3f88ecf8ea06adae99fe",
		SporkPubKey:              "04d9491a6cf40a2afaf51de3939eadca259a95843b637f82c772a5719bc64051409031803a1c33f1f9b14c24a2d6937fe5b76ffa99a9730aa27726f9934cabf7f4",
		MasternodePaymentsPubKey: "041fda8a1eff0a55d4d5c2d10f426e9c204d8faa228e3bbbaccd716a0db59bbfbe15dc17975f41e554ad551316b97586ddf5bec909a9fc3fc36c17a9611294fcf8",

		// Address encoding magics
		PubKeyHashAddrID: 60, // starts with R
		ScriptHashAddrID: 16, // starts with 7
		PrivateKeyID:     33, // starts with 2 (uncompressed) or 5/6 (compressed)

		// BIP32 hierarchical deterministic extended key magics
		HDPrivateKeyID: [4]byte{0x04, 0x88, 0xad, 0xe4}, // starts with xprv
		HDPublicKeyID:  [4]byte{0x04, 0x88, 0xb2, 0x1e}, // starts with xpub

		// BIP44 coin type used in the hierarchical deterministic path for
		// address generation.
		HDCoinType: 5,
	}

	return finalize(p, genesisInputs{
		time:    1526191846,
		nonce:   4585107,
		bits:    0x1e0ffff0,
		version: 1,
	}, mainNetGenesisHash, genesisMerkleRoot)
}
