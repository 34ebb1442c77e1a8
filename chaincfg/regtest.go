// Copyright (c) 2014-2016 The btcsuite developers
// Copyright (c) 2018 The Reef Core developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	"math/big"
	"time"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
)

// RegTestMagic is the message start of the regression test network:
// 76 9d 5e d7.
const RegTestMagic wire.BitcoinNet = 0xd75e9d76

// regTestGenesisHash is the hash of the first block in the block chain for the
// regression test network.
var regTestGenesisHash = newHashFromStr("00000f06f0373d435738e2be9b7e042e004718ad9fce41b4f3ec8bf99284925f")

// regTestDeploymentExpiry is the expire time used for deployments that are
// open for the whole life of a regression test chain.
const regTestDeploymentExpiry = 999999999999

// newRegTestParams returns the network parameters for the regression test
// Reef network.  Not to be confused with the test Reef network, this network
// is intended for local use and has neither seeds nor difficulty adjustment.
func newRegTestParams() (*Params, error) {
	p := &Params{
		Network:          RegTest,
		Name:             "regtest",
		Net:              RegTestMagic,
		DefaultPort:      "13617",
		MaxTipAge:        6 * time.Hour, // ~144 blocks behind
		PruneAfterHeight: 1000,
		DNSSeeds:         nil, // NOTE: There must NOT be any seeds.
		FixedSeeds:       nil,
		PoWFunction:      X16SHash,

		Consensus: ConsensusParams{
			SubsidyReductionInterval:         150,
			MasternodePaymentsStartBlock:     240,
			MasternodePaymentsIncreaseBlock:  350,
			MasternodePaymentsIncreasePeriod: 10,
			InstantSendKeepLock:              6,
			MasternodeMinimumConfirmations:   1,
			BudgetPaymentsStartBlock:         1000,
			BudgetPaymentsCycleBlocks:        50,
			BudgetPaymentsWindowBlocks:       10,
			BudgetProposalEstablishingTime:   20 * time.Minute,
			SuperblockStartBlock:             1500,
			SuperblockCycle:                  10,
			GovernanceMinQuorum:              1,
			GovernanceFilterElements:         100,
			MajorityEnforceBlockUpgrade:      750,
			MajorityRejectBlockOutdated:      950,
			MajorityWindow:                   1000,
			BIP0034Height:                    -1, // Not necessarily active on regtest
			BIP0034Hash:                      chainhash.Hash{},
			PowLimit:                         regressionPowLimit,
			PowLimitBits:                     0x207fffff,
			TargetTimespan:                   time.Hour,
			TargetTimePerBlock:               time.Minute,
			ReduceMinDifficulty:              true,
			NoRetargeting:                    true,

			// Consensus rule change deployments.
			//
			// The miner confirmation window is defined as:
			//   target proof of work timespan / target proof of work spacing
			RuleChangeActivationThreshold: 108, // 75% of MinerConfirmationWindow
			MinerConfirmationWindow:       144,
			Deployments: DeploymentTable{
				DeploymentTestDummy: {
					BitNumber:  28,
					StartTime:  0, // Always available for vote
					ExpireTime: regTestDeploymentExpiry,
				},
				DeploymentCSV: {
					BitNumber:  0,
					StartTime:  0, // Always available for vote
					ExpireTime: regTestDeploymentExpiry,
				},
			},

			MinimumChainWork: new(big.Int),
		},

		Checkpoints: CheckpointTable{
			Checkpoints: []Checkpoint{
				{0, regTestGenesisHash},
			},
			LastCheckpointTime:  time.Unix(0, 0),
			TxCountAtCheckpoint: 0,
			EstimatedTxPerDay:   0,
		},

		MiningRequiresPeers:           false,
		DefaultConsistencyChecks:      true,
		RequireStandard:               false,
		MineBlocksOnDemand:            true,
		TestnetToBeDeprecatedFieldRPC: false,

		FulfilledRequestExpireTime: 5 * time.Minute,

		// Address encoding magics
		PubKeyHashAddrID: 112, // starts with n
		ScriptHashAddrID: 10,  // starts with 5
		PrivateKeyID:     240, // starts with 9 (uncompressed) or c (compressed)

		// BIP32 hierarchical deterministic extended key magics
		HDPrivateKeyID: [4]byte{0x04, 0x35, 0x83, 0x94}, // starts with tprv
		HDPublicKeyID:  [4]byte{0x04, 0x35, 0x87, 0xcf}, // starts with tpub

		// BIP44 coin type used in the hierarchical deterministic path for
		// address generation.
		HDCoinType: 1,
	}

	return finalize(p, genesisInputs{
		time:    1526191646,
		nonce:   824823,
		bits:    0x1e146cc0,
		version: 1,
	}, regTestGenesisHash, genesisMerkleRoot)
}
