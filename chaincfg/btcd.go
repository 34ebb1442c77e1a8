// Copyright (c) 2018 The Reef Core developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincfg

import (
	btcdchaincfg "github.com/btcsuite/btcd/chaincfg"
)

// BtcdParams returns a btcd view of the network for the btcutil address, WIF
// and hdkeychain encoders, which take their version bytes from a btcd
// chaincfg.Params.
//
// The view carries identity, address and key encoding fields only.  Its
// deployments are left unset, so it must not be handed to btcd's block
// validation code.
func (p *Params) BtcdParams() *btcdchaincfg.Params {
	dnsSeeds := make([]btcdchaincfg.DNSSeed, 0, len(p.DNSSeeds))
	for _, seed := range p.DNSSeeds {
		dnsSeeds = append(dnsSeeds, btcdchaincfg.DNSSeed{Host: seed.Host})
	}
	checkpoints := make([]btcdchaincfg.Checkpoint, 0,
		len(p.Checkpoints.Checkpoints))
	for _, checkpoint := range p.Checkpoints.Checkpoints {
		checkpoints = append(checkpoints, btcdchaincfg.Checkpoint{
			Height: checkpoint.Height,
			Hash:   checkpoint.Hash,
		})
	}

	return &btcdchaincfg.Params{
		Name:                          p.Name,
		Net:                           p.Net,
		DefaultPort:                   p.DefaultPort,
		DNSSeeds:                      dnsSeeds,
		GenesisBlock:                  p.GenesisBlock,
		GenesisHash:                   p.GenesisHash,
		PowLimit:                      p.Consensus.PowLimit,
		PowLimitBits:                  p.Consensus.PowLimitBits,
		BIP0034Height:                 p.Consensus.BIP0034Height,
		SubsidyReductionInterval:      p.Consensus.SubsidyReductionInterval,
		TargetTimespan:                p.Consensus.TargetTimespan,
		TargetTimePerBlock:            p.Consensus.TargetTimePerBlock,
		ReduceMinDifficulty:           p.Consensus.ReduceMinDifficulty,
		MinDiffReductionTime:          2 * p.Consensus.TargetTimePerBlock,
		GenerateSupported:             p.MineBlocksOnDemand,
		Checkpoints:                   checkpoints,
		RuleChangeActivationThreshold: p.Consensus.RuleChangeActivationThreshold,
		MinerConfirmationWindow:       p.Consensus.MinerConfirmationWindow,
		RelayNonStdTxs:                !p.RequireStandard,
		PubKeyHashAddrID:              p.PubKeyHashAddrID,
		ScriptHashAddrID:              p.ScriptHashAddrID,
		PrivateKeyID:                  p.PrivateKeyID,
		HDPrivateKeyID:                p.HDPrivateKeyID,
		HDPublicKeyID:                 p.HDPublicKeyID,
		HDCoinType:                    p.HDCoinType,
	}
}
