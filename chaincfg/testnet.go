// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2018 The Reef Core developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"math"
	"math/big"
	"time"

	"github.com/btcsuite/btcd/wire"
)

// TestNetMagic is the message start of the test network: 70 a7 7d d6.
const TestNetMagic wire.BitcoinNet = 0xd67da770

// testNetGenesisHash is the hash of the first block in the block chain for the
// test network.
var testNetGenesisHash = newHashFromStr("000000bcc46441623bf58ecd450460e8ad9465c018c0bcbb6f4d1ceef00f8d5c")

// newTestNetParams returns the network parameters for the public Reef test
// network.
func newTestNetParams() (*Params, error) {
	p := &Params{
		Network:     TestNet,
		Name:        "test",
		Net:         TestNetMagic,
		DefaultPort: "13717",

		// Allow mining on top of old blocks.
		MaxTipAge:        math.MaxInt32 * time.Second,
		PruneAfterHeight: 1000,

		DNSSeeds:    nil,
		FixedSeeds:  nil,
		PoWFunction: X16SHash,

		Consensus: ConsensusParams{
			SubsidyReductionInterval:         130000,
			MasternodePaymentsStartBlock:     2,
			MasternodePaymentsIncreaseBlock:  46000,
			MasternodePaymentsIncreasePeriod: 576,
			InstantSendKeepLock:              6,
			MasternodeMinimumConfirmations:   1,
			BudgetPaymentsStartBlock:         2100000000,
			BudgetPaymentsCycleBlocks:        50,
			BudgetPaymentsWindowBlocks:       10,
			BudgetProposalEstablishingTime:   20 * time.Minute,
			SuperblockStartBlock:             2100000000,
			SuperblockCycle:                  24, // hourly
			GovernanceMinQuorum:              1,
			GovernanceFilterElements:         500,
			MajorityEnforceBlockUpgrade:      51,
			MajorityRejectBlockOutdated:      75,
			MajorityWindow:                   100,
			BIP0034Height:                    21111,
			BIP0034Hash:                      *newHashFromStr("0000000023b3a96d3484e5abb3755c413e7d41500f8e2a5c3f0dd01299cd8ef8"),
			PowLimit:                         testNetPowLimit,
			PowLimitBits:                     0x1e0fffff,
			TargetTimespan:                   time.Minute,
			TargetTimePerBlock:               time.Minute,
			ReduceMinDifficulty:              true,
			NoRetargeting:                    false,

			// Consensus rule change deployments.
			//
			// The miner confirmation window is defined as:
			//   target proof of work timespan / target proof of work spacing
			RuleChangeActivationThreshold: 1512, // 75% of MinerConfirmationWindow
			MinerConfirmationWindow:       2016,
			Deployments: DeploymentTable{
				DeploymentTestDummy: {
					BitNumber:  28,
					StartTime:  1199145601, // January 1, 2008 UTC
					ExpireTime: 1230767999, // December 31, 2008 UTC
				},
				DeploymentCSV: {
					BitNumber:  0,
					StartTime:  1523923200, // April 17, 2018 UTC
					ExpireTime: 1555459200, // April 17, 2019 UTC
				},
			},

			MinimumChainWork: new(big.Int),
		},

		Checkpoints: CheckpointTable{
			Checkpoints: []Checkpoint{
				{0, testNetGenesisHash},
			},
			LastCheckpointTime:  time.Unix(1526191746, 0),
			TxCountAtCheckpoint: 0,
			EstimatedTxPerDay:   500,
		},

		MiningRequiresPeers:           false,
		DefaultConsistencyChecks:      false,
		RequireStandard:               false,
		MineBlocksOnDemand:            false,
		TestnetToBeDeprecatedFieldRPC: true,

		PoolMaxTransactions:        3,
		FulfilledRequestExpireTime: 5 * time.Minute,

		AlertPubKey:              "04f9e05c65b8cf20e31464d7f35504b62999f845c9242bc6b1bcd1993c643e3ca40527a13de58afa831dccdeacae82b39c01602daf3a7f4151032f5dacefa36932",
		SporkPubKey:              "04bd429fcefdd9775510ebb36e824e8184659c72fdc09e4083f129b5de2971032941a43e1114c0da68ece23d5e60dc830fa40b525fb64c2447ed411b4830531a92",
		MasternodePaymentsPubKey: "04640195cd018340f4782744b2937099ad224624471076f40a9b1b1b14b908b3690577f4ecb585ce004e378184715d1a3d6bdba0a65a9802535a2c014cc49f7ea6",

		// Address encoding magics
		PubKeyHashAddrID: 61, // starts with R
		ScriptHashAddrID: 10, // starts with 5
		PrivateKeyID:     33, // starts with 2 (uncompressed) or 5/6 (compressed)

		// BIP32 hierarchical deterministic extended key magics
		HDPrivateKeyID: [4]byte{0x04, 0x35, 0x83, 0x94}, // starts with tprv
		HDPublicKeyID:  [4]byte{0x04, 0x35, 0x87, 0xcf}, // starts with tpub

		// BIP44 coin type used in the hierarchical deterministic path for
		// address generation.
		HDCoinType: 1,
	}

	return finalize(p, genesisInputs{
		time:    1526191746,
		nonce:   6892045,
		bits:    0x1e0ffff0,
		version: 1,
	}, testNetGenesisHash, genesisMerkleRoot)
}
